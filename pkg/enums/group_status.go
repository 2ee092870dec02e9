package enums

import "fmt"

// GroupStatus tracks the lifecycle of a product group offer.
type GroupStatus string

const (
	GroupStatusPending   GroupStatus = "pending"
	GroupStatusAccepted  GroupStatus = "accepted"
	GroupStatusDeclined  GroupStatus = "declined"
	GroupStatusDelivered GroupStatus = "delivered"
)

var validGroupStatuses = []GroupStatus{
	GroupStatusPending,
	GroupStatusAccepted,
	GroupStatusDeclined,
	GroupStatusDelivered,
}

// groupTransitions holds the allowed forward moves. Declined and delivered
// are terminal; delivery requires acceptance first.
var groupTransitions = map[GroupStatus][]GroupStatus{
	GroupStatusPending:  {GroupStatusAccepted, GroupStatusDeclined},
	GroupStatusAccepted: {GroupStatusDelivered},
}

// String implements fmt.Stringer.
func (g GroupStatus) String() string {
	return string(g)
}

// IsValid reports whether the value is a known GroupStatus.
func (g GroupStatus) IsValid() bool {
	for _, candidate := range validGroupStatuses {
		if candidate == g {
			return true
		}
	}
	return false
}

// CanTransitionTo reports whether moving to next is an allowed forward step.
func (g GroupStatus) CanTransitionTo(next GroupStatus) bool {
	for _, candidate := range groupTransitions[g] {
		if candidate == next {
			return true
		}
	}
	return false
}

// ParseGroupStatus converts raw input into a GroupStatus.
func ParseGroupStatus(value string) (GroupStatus, error) {
	for _, candidate := range validGroupStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product group status %q", value)
}
