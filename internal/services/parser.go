package services

import (
	"context"
	"log"

	"alfredoptarigan/resume-parser/internal/models"
)

// fallbackCandidateEmail is used when the parsed resume carries no email.
const fallbackCandidateEmail = "candidate@example.com"

type ResumeParserService interface {
	ParseResume(ctx context.Context, resumeURL string) (*models.ParseResumeResponse, error)
}

type resumeParserService struct {
	fetcher   DocumentFetcher
	pdfParser PDFParserService
	extractor ExtractorService
	webhook   WebhookService
	storage   StorageService
}

func NewResumeParserService(
	fetcher DocumentFetcher,
	pdfParser PDFParserService,
	extractor ExtractorService,
	webhook WebhookService,
	storage StorageService,
) ResumeParserService {
	return &resumeParserService{
		fetcher:   fetcher,
		pdfParser: pdfParser,
		extractor: extractor,
		webhook:   webhook,
		storage:   storage,
	}
}

// ParseResume runs the whole pipeline for one request: fetch the document,
// extract its text, structure it with the model, notify the webhook, and
// report both results. Fetch and PDF failures abort; extraction-service and
// webhook failures degrade the response instead.
func (s *resumeParserService) ParseResume(ctx context.Context, resumeURL string) (*models.ParseResumeResponse, error) {
	log.Printf("🔄 Processing resume from URL: %s\n", resumeURL)

	filePath, err := s.fetcher.Fetch(ctx, resumeURL)
	if err != nil {
		return nil, err
	}

	// The downloaded file must be gone once the request is answered, no
	// matter which later stage fails. Removal is best-effort.
	defer func() {
		if err := s.storage.DeleteFile(filePath); err != nil {
			log.Printf("⚠️  Error removing temporary file %s: %v\n", filePath, err)
			return
		}
		log.Printf("🗑️  Removed temporary file: %s\n", filePath)
	}()

	resumeText, err := s.pdfParser.ExtractText(filePath)
	if err != nil {
		return nil, err
	}

	var parsedData interface{}
	var record map[string]interface{}

	rawData, err := s.extractor.ExtractCandidateData(ctx, resumeText)
	if err != nil {
		log.Printf("⚠️  Extraction service failed, continuing with degraded data: %v\n", err)
		record = map[string]interface{}{"error": err.Error()}
		parsedData = record
	} else {
		record = NormalizeCandidateData(rawData)
		parsedData = rawData
	}

	candidateEmail := stringField(record, "email")
	if candidateEmail == "" {
		candidateEmail = fallbackCandidateEmail
	}

	record["cvUrl"] = resumeURL

	webhookResult := s.webhook.Notify(ctx, record, candidateEmail, resumeURL)
	log.Printf("📬 Webhook notification result: %s\n", webhookResult.Status)

	log.Println("✅ Successfully processed resume")
	return &models.ParseResumeResponse{
		ParsedData:    parsedData,
		WebhookResult: webhookResult,
	}, nil
}
