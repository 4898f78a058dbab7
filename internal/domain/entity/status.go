package entity

// ApprovalStatus is the three-state moderation status shared by products,
// reviews and withdrawals. Transitions are only offered from PENDING; the
// backend is the actual enforcer, the console mirrors the rule to avoid
// obviously invalid requests.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

// IsValid checks if the ApprovalStatus is a valid value.
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	default:
		return false
	}
}

// IsPending reports whether a moderation decision is still open.
func (s ApprovalStatus) IsPending() bool {
	return s == ApprovalPending
}

// IsDecision reports whether s is a terminal decision an admin may set.
func (s ApprovalStatus) IsDecision() bool {
	return s == ApprovalApproved || s == ApprovalRejected
}
