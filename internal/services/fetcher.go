package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

type DocumentFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type documentFetcher struct {
	client  *http.Client
	storage StorageService
}

func NewDocumentFetcher(storage StorageService, timeout time.Duration) DocumentFetcher {
	return &documentFetcher{
		client:  &http.Client{Timeout: timeout},
		storage: storage,
	}
}

// Fetch downloads the document and stores it in the transient directory.
// Any transport error or non-2xx status is a FetchError.
func (f *documentFetcher) Fetch(ctx context.Context, url string) (string, error) {
	log.Printf("📥 Downloading PDF from: %s\n", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{URL: url, Err: fmt.Errorf("unexpected status: %s", resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}

	filePath, err := f.storage.SaveDocument(body)
	if err != nil {
		return "", fmt.Errorf("failed to store downloaded document: %w", err)
	}

	log.Printf("✅ PDF downloaded successfully to %s\n", filePath)
	return filePath, nil
}
