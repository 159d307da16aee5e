package models

type ParseResumeRequest struct {
	URL string `json:"url"`
}

type ParseResumeResponse struct {
	// ParsedData is the raw model output on success (a JSON string), or an
	// error object when the extraction service soft-fails.
	ParsedData    interface{}    `json:"parsed_data"`
	WebhookResult *WebhookResult `json:"webhook_result"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type WebhookResult struct {
	Status   string `json:"status"`
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}
