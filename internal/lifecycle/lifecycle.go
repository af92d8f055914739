// Package lifecycle owns the article moderation state machine. Every
// function mutates the passed article in place and keeps the status,
// reject_reason and approved_at fields consistent: a reason exists only on a
// rejected article, an approval time only on an approved one, never both.
//
// Authorization happens before these functions are called; they trust the
// caller.
package lifecycle

import (
	"errors"
	"strings"
	"time"

	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/models"
)

// ErrEmptyReason is returned by Reject when the reason is blank. The article
// is left untouched.
var ErrEmptyReason = errors.New("rejection reason is required")

// Approve moves the article to approved from any state, stamping the
// approval time and clearing any earlier rejection reason.
func Approve(a *models.Article, now time.Time) {
	a.Status = models.StatusApproved
	a.ApprovedAt = &now
	a.RejectReason = nil
	a.UpdatedAt = &now
}

// Reject moves the article to rejected from any state. The reason is
// mandatory; a previously published article loses its approval time.
func Reject(a *models.Article, reason string, now time.Time) error {
	if strings.TrimSpace(reason) == "" {
		return ErrEmptyReason
	}
	a.Status = models.StatusRejected
	a.RejectReason = &reason
	a.ApprovedAt = nil
	a.UpdatedAt = &now
	return nil
}

// Resubmit applies the author-edit rule: any edit puts the article back in
// the review queue, so published content was always reviewed in its current
// form. Editing a pending article keeps it pending.
func Resubmit(a *models.Article, now time.Time) {
	switch a.Status {
	case models.StatusApproved:
		a.Status = models.StatusPending
		a.ApprovedAt = nil
		a.RejectReason = nil
	case models.StatusRejected:
		a.Status = models.StatusPending
		a.RejectReason = nil
	}
	a.UpdatedAt = &now
}
