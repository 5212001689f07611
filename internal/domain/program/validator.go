package program

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// OverlapError reports every sibling tier whose spend range conflicts with a
// candidate range, so the editor can highlight all of them at once.
type OverlapError struct {
	Candidate SpendRange
	TierNames []string
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("spend range %s overlaps tiers: %s", e.Candidate, strings.Join(e.TierNames, ", "))
}

// ValidateSpendRange checks a candidate range against every sibling tier,
// excluding the tier being edited (identified by ID so that an unchanged
// update never self-rejects). It must run before any persistence call.
//
// Validation here is advisory when editing a tier with spend already in
// flight: past tier placements are never re-graded.
func ValidateSpendRange(candidate SpendRange, siblings []MembershipTier, excludeID uuid.UUID) *OverlapError {
	var conflicts []string
	for i := range siblings {
		sib := &siblings[i]
		if excludeID != uuid.Nil && sib.ID() == excludeID {
			continue
		}
		if candidate.Overlaps(sib.SpendRange()) {
			conflicts = append(conflicts, sib.Name())
		}
	}
	if len(conflicts) == 0 {
		return nil
	}
	return &OverlapError{Candidate: candidate, TierNames: conflicts}
}
