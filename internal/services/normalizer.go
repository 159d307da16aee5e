package services

import "encoding/json"

// NormalizeCandidateData parses the extraction service's raw output into a
// candidate record. Anything that is not a JSON object is wrapped as
// {"raw_text": raw}. Total: always returns a mapping, never fails.
func NormalizeCandidateData(raw string) map[string]interface{} {
	var record map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &record); err != nil || record == nil {
		return map[string]interface{}{"raw_text": raw}
	}
	return record
}
