package notification

import "context"

// Dispatcher delivers a plan message to a client. Implementations must return
// an error on failure instead of hanging; enforcing the timeout is their job,
// not the caller's.
type Dispatcher interface {
	Send(ctx context.Context, recipientEmail, subject, body string) error
}
