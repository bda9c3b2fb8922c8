package interfaces

import "context"

// IEmailSender abstracts the transactional email integration.
type IEmailSender interface {
	Send(ctx context.Context, to, subject, body, messageType string) error
}
