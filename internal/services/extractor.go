package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"google.golang.org/genai"
)

type ExtractorService interface {
	ExtractCandidateData(ctx context.Context, resumeText string) (string, error)
}

type extractorService struct {
	client    *genai.Client
	modelName string
	timeout   time.Duration
}

func NewExtractorService(apiKey, modelName string, timeout time.Duration) (ExtractorService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &extractorService{
		client:    client,
		modelName: modelName,
		timeout:   timeout,
	}, nil
}

// ExtractCandidateData sends the resume text to the model with the fixed
// extraction instruction and returns the raw response verbatim. Parsing the
// response is the caller's job. Deterministic sampling, bounded output.
func (s *extractorService) ExtractCandidateData(ctx context.Context, resumeText string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	temperature := float32(0)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 1500,
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: resumeExtractionPrompt}},
		},
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.modelName, genai.Text(resumeText), config)
	if err != nil {
		log.Printf("❌ Gemini API error: %v\n", err)
		return "", &ExtractionServiceError{Err: err}
	}

	if resp == nil {
		return "", &ExtractionServiceError{Err: errors.New("no response generated (nil response)")}
	}

	text := resp.Text()
	if text == "" {
		return "", &ExtractionServiceError{Err: errors.New("no text content in response")}
	}

	log.Println("✅ Resume successfully parsed by Gemini")
	return text, nil
}
