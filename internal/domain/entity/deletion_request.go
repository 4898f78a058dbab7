package entity

import "time"

// AccountType distinguishes what kind of account a deletion request targets.
type AccountType string

const (
	AccountTypeUser   AccountType = "User"
	AccountTypeVendor AccountType = "Vendor"
)

// IsValid checks if the AccountType is a valid value.
func (t AccountType) IsValid() bool {
	return t == AccountTypeUser || t == AccountTypeVendor
}

// DeletionStatus is the lifecycle of a deletion request. DELETED is set by
// the backend once an approved request has actually been carried out.
type DeletionStatus string

const (
	DeletionPending  DeletionStatus = "PENDING"
	DeletionApproved DeletionStatus = "APPROVED"
	DeletionRejected DeletionStatus = "REJECTED"
	DeletionDeleted  DeletionStatus = "DELETED"
)

// IsPending reports whether a superadmin decision is still open.
func (s DeletionStatus) IsPending() bool {
	return s == DeletionPending
}

// DeletionAction is the decision a superadmin submits for a pending request.
type DeletionAction string

const (
	DeletionActionApprove DeletionAction = "APPROVE"
	DeletionActionReject  DeletionAction = "REJECT"
)

// IsValid checks if the DeletionAction is a valid value.
func (a DeletionAction) IsValid() bool {
	return a == DeletionActionApprove || a == DeletionActionReject
}

// DeletionRequest is an admin-submitted request to delete a user or vendor
// account, decided by a superadmin.
type DeletionRequest struct {
	ID             string         `json:"_id"`
	AccountID      string         `json:"accountId"`
	AccountType    AccountType    `json:"accountType"`
	RequestedBy    UserRef        `json:"requestedBy"`
	Reason         string         `json:"reason,omitempty"`
	Status         DeletionStatus `json:"status"`
	DecisionReason string         `json:"decisionReason,omitempty"`
	DecidedBy      *UserRef       `json:"decidedBy,omitempty"`
	RequestedAt    time.Time      `json:"requestedAt"`
	DecidedAt      *time.Time     `json:"decidedAt,omitempty"`
	DeletedAt      *time.Time     `json:"deletedAt,omitempty"`
}
