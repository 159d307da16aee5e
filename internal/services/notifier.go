package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"alfredoptarigan/resume-parser/internal/models"
)

// notificationStatus tags every payload; the collaborator distinguishes
// test and production traffic by it.
const notificationStatus = "testing"

type WebhookService interface {
	Notify(ctx context.Context, record map[string]interface{}, candidateEmail, resumeURL string) *models.WebhookResult
}

type webhookService struct {
	client *http.Client
	url    string
}

func NewWebhookService(url string, timeout time.Duration) WebhookService {
	return &webhookService{
		client: &http.Client{Timeout: timeout},
		url:    url,
	}
}

// Notify posts the candidate record to the webhook endpoint. Failures are
// absorbed into the result; a webhook problem never aborts the request.
func (w *webhookService) Notify(ctx context.Context, record map[string]interface{}, candidateEmail, resumeURL string) *models.WebhookResult {
	log.Printf("📤 Sending webhook notification for %s\n", candidateEmail)

	payload := BuildNotificationPayload(record, candidateEmail, resumeURL)

	body, err := json.Marshal(payload)
	if err != nil {
		return &models.WebhookResult{Status: "error", Error: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return &models.WebhookResult{Status: "error", Error: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Candidate-Email", candidateEmail)

	resp, err := w.client.Do(req)
	if err != nil {
		log.Printf("⚠️  Error sending webhook notification: %v\n", err)
		return &models.WebhookResult{Status: "error", Error: err.Error()}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("⚠️  Webhook returned %s\n", resp.Status)
		return &models.WebhookResult{Status: "error", Error: "unexpected status: " + resp.Status}
	}

	log.Printf("✅ Webhook notification sent successfully: %d\n", resp.StatusCode)
	return &models.WebhookResult{Status: "success", Response: string(respBody)}
}

// BuildNotificationPayload reshapes a candidate record into the fixed
// webhook structure. Absent fields default to empty strings or lists; the
// submitted resume URL is carried through as the public link.
func BuildNotificationPayload(record map[string]interface{}, candidateEmail, resumeURL string) models.NotificationPayload {
	name := stringField(record, "fullName")

	applicantName := name
	if applicantName == "" {
		applicantName = "Unknown Candidate"
	}

	email := stringField(record, "email")
	if email == "" {
		email = candidateEmail
	}

	payload := models.NotificationPayload{
		CVData: models.CVData{
			PersonalInfo: models.PersonalInfo{
				Name:     name,
				Email:    email,
				Github:   stringField(record, "github"),
				Linkedin: stringField(record, "linkedin"),
			},
			Education:      listField(record, "education"),
			Qualifications: listField(record, "technicalSkills"),
			Projects:       []interface{}{},
			CVPublicLink:   resumeURL,
		},
		Metadata: models.Metadata{
			ApplicantName:      applicantName,
			Email:              candidateEmail,
			Status:             notificationStatus,
			CVProcessed:        true,
			ProcessedTimestamp: time.Now().Format(time.RFC3339),
		},
	}

	if employment, ok := record["employment"]; ok {
		payload.CVData.WorkExperience = employment
	}

	return payload
}

func stringField(record map[string]interface{}, key string) string {
	if value, ok := record[key].(string); ok {
		return value
	}
	return ""
}

func listField(record map[string]interface{}, key string) interface{} {
	if value, ok := record[key]; ok && value != nil {
		return value
	}
	return []interface{}{}
}
