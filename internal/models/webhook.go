package models

// NotificationPayload is the fixed shape expected by the recruitment webhook.
type NotificationPayload struct {
	CVData   CVData   `json:"cv_data"`
	Metadata Metadata `json:"metadata"`
}

type CVData struct {
	PersonalInfo   PersonalInfo  `json:"personal_info"`
	Education      interface{}   `json:"education"`
	Qualifications interface{}   `json:"qualifications"`
	Projects       []interface{} `json:"projects"`
	WorkExperience interface{}   `json:"work_experience,omitempty"`
	CVPublicLink   string        `json:"cv_public_link"`
}

type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Github   string `json:"github"`
	Linkedin string `json:"linkedin"`
}

type Metadata struct {
	ApplicantName      string `json:"applicant_name"`
	Email              string `json:"email"`
	Status             string `json:"status"`
	CVProcessed        bool   `json:"cv_processed"`
	ProcessedTimestamp string `json:"processed_timestamp"`
}
