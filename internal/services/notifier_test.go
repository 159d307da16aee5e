package services_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-parser/internal/services"
)

func TestNotifySendsFullPayload(t *testing.T) {
	var gotHeader string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotHeader = r.Header.Get("X-Candidate-Email")

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &gotBody))

		w.Write([]byte("accepted"))
	}))
	defer server.Close()

	record := map[string]interface{}{
		"fullName":        "John Doe",
		"email":           "john@x.com",
		"github":          "github.com/johndoe",
		"linkedin":        "linkedin.com/in/johndoe",
		"technicalSkills": []interface{}{"Go", "SQL"},
		"employment":      []interface{}{map[string]interface{}{"company": "Acme"}},
		"education":       []interface{}{map[string]interface{}{"institution": "MIT"}},
	}

	webhook := services.NewWebhookService(server.URL, 5*time.Second)
	result := webhook.Notify(context.Background(), record, "john@x.com", "https://cv.example.com/john.pdf")

	require.Equal(t, "success", result.Status)
	require.Equal(t, "accepted", result.Response)
	require.Equal(t, "john@x.com", gotHeader)

	cvData := gotBody["cv_data"].(map[string]interface{})
	personalInfo := cvData["personal_info"].(map[string]interface{})
	require.Equal(t, "John Doe", personalInfo["name"])
	require.Equal(t, "john@x.com", personalInfo["email"])
	require.Equal(t, "github.com/johndoe", personalInfo["github"])
	require.Equal(t, "linkedin.com/in/johndoe", personalInfo["linkedin"])

	require.Equal(t, []interface{}{"Go", "SQL"}, cvData["qualifications"])
	require.Equal(t, []interface{}{}, cvData["projects"])
	require.Equal(t, "https://cv.example.com/john.pdf", cvData["cv_public_link"])
	require.Contains(t, cvData, "work_experience")

	metadata := gotBody["metadata"].(map[string]interface{})
	require.Equal(t, "John Doe", metadata["applicant_name"])
	require.Equal(t, "john@x.com", metadata["email"])
	require.Equal(t, "testing", metadata["status"])
	require.Equal(t, true, metadata["cv_processed"])

	_, err := time.Parse(time.RFC3339, metadata["processed_timestamp"].(string))
	require.NoError(t, err)
}

func TestNotifyDefaultsForSparseRecord(t *testing.T) {
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotBody)
	}))
	defer server.Close()

	webhook := services.NewWebhookService(server.URL, 5*time.Second)
	result := webhook.Notify(context.Background(), map[string]interface{}{}, "candidate@example.com", "https://cv.example.com/x.pdf")

	require.Equal(t, "success", result.Status)

	cvData := gotBody["cv_data"].(map[string]interface{})
	personalInfo := cvData["personal_info"].(map[string]interface{})
	require.Equal(t, "", personalInfo["name"])
	require.Equal(t, "candidate@example.com", personalInfo["email"])
	require.Equal(t, []interface{}{}, cvData["education"])
	require.Equal(t, []interface{}{}, cvData["qualifications"])
	require.NotContains(t, cvData, "work_experience")

	metadata := gotBody["metadata"].(map[string]interface{})
	require.Equal(t, "Unknown Candidate", metadata["applicant_name"])
	require.Equal(t, "testing", metadata["status"])
	require.Equal(t, true, metadata["cv_processed"])
}

func TestNotifySoftFailsOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	webhook := services.NewWebhookService(server.URL, 5*time.Second)
	result := webhook.Notify(context.Background(), map[string]interface{}{}, "candidate@example.com", "")

	require.Equal(t, "error", result.Status)
	require.Contains(t, result.Error, "500")
}

func TestNotifySoftFailsOnUnreachableEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	webhook := services.NewWebhookService(url, 2*time.Second)
	result := webhook.Notify(context.Background(), map[string]interface{}{}, "candidate@example.com", "")

	require.Equal(t, "error", result.Status)
	require.NotEmpty(t, result.Error)
}
