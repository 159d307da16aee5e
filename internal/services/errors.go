package services

import "fmt"

// FetchError means the document could not be downloaded: bad URL,
// unreachable host, or a non-2xx response. The HTTP layer maps it to a
// client error.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("error downloading file from %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ExtractionError means the downloaded file could not be read as a PDF.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("error reading PDF file %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// ExtractionServiceError means the language-model call failed. The pipeline
// absorbs it as degraded data instead of aborting the request.
type ExtractionServiceError struct {
	Err error
}

func (e *ExtractionServiceError) Error() string {
	return fmt.Sprintf("extraction service error: %v", e.Err)
}

func (e *ExtractionServiceError) Unwrap() error { return e.Err }
