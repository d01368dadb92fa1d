package ports

import "context"

// Mailer is the outbound notification sink. Delivery is synchronous and on
// the request path; callers decide how a failure maps to their response.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
