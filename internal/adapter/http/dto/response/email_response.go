package response

// EmailSentResponse confirms a notification email was handed to the
// transactional email provider.
type EmailSentResponse struct {
	Success   bool `json:"success"`
	EmailSent bool `json:"email_sent"`
}

func EmailSent() EmailSentResponse {
	return EmailSentResponse{Success: true, EmailSent: true}
}
