package notification

import "fmt"

// renderSubject builds the email subject line for a notification kind.
func renderSubject(kind string, data Data) string {
	switch kind {
	case KindReviewerAssigned:
		return fmt.Sprintf("Review invitation: %s", data.PaperTitle)
	case KindReviewSubmitted:
		return fmt.Sprintf("A review was submitted for %s", data.PaperTitle)
	case KindRevisionStatus:
		return fmt.Sprintf("Revision update for %s", data.PaperTitle)
	default:
		return fmt.Sprintf("Update on %s", data.PaperTitle)
	}
}

// renderBody builds the HTML body for a notification kind.
func renderBody(kind string, data Data) string {
	switch kind {
	case KindReviewerAssigned:
		return fmt.Sprintf(
			"<p>You have been assigned as a reviewer for <b>%s</b>.</p>"+
				"<p>Please sign in to the reviewer portal to see the manuscript.</p>",
			data.PaperTitle)
	case KindReviewSubmitted:
		return fmt.Sprintf(
			"<p>A reviewer submitted a review for <b>%s</b>.</p><p>%s</p>",
			data.PaperTitle, data.Detail)
	case KindRevisionStatus:
		return fmt.Sprintf(
			"<p>A revision of <b>%s</b> changed status.</p><p>%s</p>",
			data.PaperTitle, data.Detail)
	default:
		return fmt.Sprintf("<p>There is an update on <b>%s</b>.</p>", data.PaperTitle)
	}
}
