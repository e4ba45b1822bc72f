package domain

import (
	"math"
	"time"
)

// ArchiveInactivityDays is the minimum number of days since the last update
// before a lead may be archived
const ArchiveInactivityDays = 180

// InactiveDays returns the whole days elapsed between updatedAt and now,
// rounded up
func InactiveDays(updatedAt, now time.Time) int {
	elapsed := now.Sub(updatedAt)
	if elapsed < 0 {
		elapsed = -elapsed
	}
	return int(math.Ceil(elapsed.Hours() / 24))
}

// CheckLeadStatusTransition decides whether a lead may move to next.
// A nil next means the update does not touch the status.
//
// A lead in New may only move to Contacted, and a lead may only be archived
// once it has been inactive for ArchiveInactivityDays.
func CheckLeadStatusTransition(current *Lead, next *LeadStatus, now time.Time) error {
	if next == nil {
		return nil
	}
	if current.Status == LeadStatusNew && *next != LeadStatusContacted {
		return NewValidationError(MsgNewLeadMustBeContacted)
	}
	if *next == LeadStatusArchived && InactiveDays(current.UpdatedAt, now) < ArchiveInactivityDays {
		return NewValidationError(MsgArchiveRequiresInactive)
	}
	return nil
}
