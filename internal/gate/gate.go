// Package gate decides what happens when the visitor applies to a job.
//
//	anonymous ───────────────► RedirectToAuth
//	signed in, incomplete ───► ShowCompletionNotice
//	signed in, complete ─────► ApplyAccepted
package gate

import "github.com/atinyakov/pakjobs/internal/models"

// Outcome is the result of an apply attempt.
type Outcome string

const (
	RedirectToAuth       Outcome = "redirect-to-auth"
	ShowCompletionNotice Outcome = "show-completion-notice"
	ApplyAccepted        Outcome = "apply-accepted"
)

// Decision carries the outcome and the title of the job applied to.
type Decision struct {
	Outcome  Outcome `json:"decision"`
	JobTitle string  `json:"jobTitle,omitempty"`
}

// Decide runs the gate for job. It has no side effects; navigation and
// notices are up to the caller.
func Decide(s models.Session, job models.JobPosting) Decision {
	u, ok := s.User()
	switch {
	case !ok:
		return Decision{Outcome: RedirectToAuth}
	case !u.IsProfileComplete:
		return Decision{Outcome: ShowCompletionNotice, JobTitle: job.Title}
	default:
		return Decision{Outcome: ApplyAccepted, JobTitle: job.Title}
	}
}
