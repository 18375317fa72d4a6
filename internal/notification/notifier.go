// Package notification provides best-effort email notifications for
// workflow events. Delivery failures are reported to the caller but must
// never unwind the state change that triggered them.
package notification

import "context"

// Kinds of workflow notifications.
const (
	KindReviewerAssigned = "reviewer_assigned"
	KindReviewSubmitted  = "review_submitted"
	KindRevisionStatus   = "revision_status"
)

// Data carries template context for a notification.
type Data struct {
	// PaperTitle is the title of the paper the event relates to.
	PaperTitle string
	// Detail is a kind-specific line (recommendation, new status, ...).
	Detail string
}

// Notifier sends a workflow notification to a recipient email address.
type Notifier interface {
	Notify(ctx context.Context, recipient, kind string, data Data) error
}

// Nop is a Notifier that does nothing. Used in tests and when SMTP is
// not configured.
type Nop struct{}

// Notify implements Notifier.
func (Nop) Notify(_ context.Context, _, _ string, _ Data) error {
	return nil
}
