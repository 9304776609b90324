package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-coach/internal/handlers"
	"interview-coach/internal/models"
	"interview-coach/internal/services"
)

const testMaxFileSize = 1024

// newTestApp wires the handlers the same way cmd/api does, with mock delays
// set to zero.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	app := fiber.New()

	storage := services.NewStorageService(t.TempDir())
	require.NoError(t, storage.EnsureUploadDir())

	questionsHandler := handlers.NewQuestionsHandler(services.NewCatalogService(), 0)
	resumeHandler := handlers.NewResumeHandler(
		services.NewResumeAnalyzerService(),
		services.NewPDFParserService(),
		storage,
		testMaxFileSize,
		0,
	)
	answerHandler := handlers.NewAnswerHandler(
		services.NewScorerService(),
		services.NewFeedbackService(services.NewTranslatorService()),
		0,
	)

	api := app.Group("/api")
	api.Post("/generate-questions", questionsHandler.HandleGenerateQuestions)
	api.Post("/analyze-resume", resumeHandler.HandleAnalyzeResume)
	api.Post("/analyze-resume/upload", resumeHandler.HandleUploadResume)
	api.Post("/analyze", answerHandler.HandleAnalyzeAnswer)

	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out))
}

func TestGenerateQuestionsKnownRole(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/generate-questions", models.GenerateQuestionsRequest{
		JobTitle:   "Senior Software Engineer",
		Experience: "5 years",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got models.GenerateQuestionsResponse
	decodeBody(t, resp, &got)

	require.Len(t, got.Questions, 10)
	assert.Equal(t,
		"Tell me about your experience with software development and programming languages",
		got.Questions[0])
}

func TestGenerateQuestionsUnknownRoleGetsDefault(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/generate-questions", models.GenerateQuestionsRequest{
		JobTitle: "Astronaut",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got models.GenerateQuestionsResponse
	decodeBody(t, resp, &got)

	require.Len(t, got.Questions, 10)
	assert.Equal(t,
		"Tell me about yourself and your professional background",
		got.Questions[0])
}

func TestGenerateQuestionsRequiresJobTitle(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/generate-questions", models.GenerateQuestionsRequest{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var got map[string]string
	decodeBody(t, resp, &got)
	assert.Equal(t, "jobTitle is required", got["error"])
}

func TestAnalyzeResumeRejectsShortText(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/analyze-resume", models.AnalyzeResumeRequest{
		ResumeText: "too short",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var got map[string]string
	decodeBody(t, resp, &got)
	assert.Equal(t, "Resume text too short", got["error"])
}

func TestAnalyzeResume(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/api/analyze-resume", models.AnalyzeResumeRequest{
		ResumeText: "Python developer with 3 years of experience. Master of Science. Delivered a reporting project for finance.",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got models.AnalyzeResumeResponse
	decodeBody(t, resp, &got)

	require.NotNil(t, got.ResumeData)
	assert.Equal(t, []string{"Python"}, got.ResumeData.Skills)
	assert.Equal(t, "3 years", got.ResumeData.ExperienceYears)
	assert.Equal(t, "Master's Degree", got.ResumeData.Education)
	assert.Equal(t, "Project mentioned in resume", got.ResumeData.KeyProjects[0])
	assert.Len(t, got.ResumeData.Strengths, 4)
	assert.Len(t, got.Questions, 10)
}

func TestAnalyzeAnswerRequiresQuestionAndTranscript(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name string
		req  models.AnalyzeAnswerRequest
	}{
		{"missing transcript", models.AnalyzeAnswerRequest{Question: "Why this role?"}},
		{"missing question", models.AnalyzeAnswerRequest{Transcript: "Because I like it"}},
		{"missing both", models.AnalyzeAnswerRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, app, "/api/analyze", tt.req)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var got map[string]string
			decodeBody(t, resp, &got)
			assert.Equal(t, "Question and transcript required", got["error"])
		})
	}
}

func TestAnalyzeAnswer(t *testing.T) {
	app := newTestApp(t)

	transcript := strings.TrimSpace(strings.Repeat("detail ", 97)) + " for example 42"
	resp := postJSON(t, app, "/api/analyze", models.AnalyzeAnswerRequest{
		Question:   "Describe a challenging bug you encountered and how you resolved it",
		Transcript: transcript,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got models.AnalyzeAnswerResponse
	decodeBody(t, resp, &got)

	assert.True(t, got.Success)
	assert.Equal(t, 8.5, got.Scores.Clarity)
	assert.Equal(t, 8.0, got.Scores.Structure)
	assert.Equal(t, 8.5, got.Scores.Content)
	assert.Equal(t, 8.3, got.Scores.Overall)

	assert.Contains(t, got.FeedbackEnglish, "**What You Did Well:**")
	assert.Contains(t, got.FeedbackUrdu, "**Aap ne achha kiya:**")
}

func postMultipart(t *testing.T, app *fiber.App, filename string, content []byte) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-resume/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestUploadResumeRequiresFile(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-resume/upload", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var got map[string]string
	decodeBody(t, resp, &got)
	assert.Equal(t, "resume file is required", got["error"])
}

func TestUploadResumeRejectsNonPDF(t *testing.T) {
	app := newTestApp(t)

	resp := postMultipart(t, app, "resume.txt", []byte("plain text resume"))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var got map[string]string
	decodeBody(t, resp, &got)
	assert.Contains(t, got["error"], "invalid file extension")
}

func TestUploadResumeRejectsOversizeFile(t *testing.T) {
	app := newTestApp(t)

	resp := postMultipart(t, app, "resume.pdf", bytes.Repeat([]byte("x"), testMaxFileSize+1))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var got map[string]string
	decodeBody(t, resp, &got)
	assert.Contains(t, got["error"], "Resume file too large")
}
