package entity

import (
	"encoding/json"
	"time"
)

// VerificationStatus is the vendor verification lifecycle.
type VerificationStatus string

const (
	VerificationNotVerified VerificationStatus = "NOT_VERIFIED"
	VerificationPending     VerificationStatus = "PENDING"
	VerificationApproved    VerificationStatus = "APPROVED"
	VerificationRejected    VerificationStatus = "REJECTED"
)

// IsValid checks if the VerificationStatus is a valid value.
func (s VerificationStatus) IsValid() bool {
	switch s {
	case VerificationNotVerified, VerificationPending, VerificationApproved, VerificationRejected:
		return true
	default:
		return false
	}
}

// CanDecide reports whether an approve/reject decision is still open.
// Vendors start as NOT_VERIFIED and may be decided before ever reaching
// PENDING, so both pre-states accept a decision.
func (s VerificationStatus) CanDecide() bool {
	return s == VerificationNotVerified || s == VerificationPending
}

// VerificationDocument is a document a vendor uploaded for verification.
// Older backend records store bare URL strings, newer ones full objects.
type VerificationDocument struct {
	Name string `json:"name,omitempty"`
	URL  string `json:"url"`
	Type string `json:"type,omitempty"`
}

// UnmarshalJSON accepts either "https://..." or {"url": "https://...", ...}.
func (d *VerificationDocument) UnmarshalJSON(data []byte) error {
	var url string
	if err := json.Unmarshal(data, &url); err == nil {
		d.URL = url

		return nil
	}

	type plain VerificationDocument

	return json.Unmarshal(data, (*plain)(d))
}

// Vendor is a selling business on the marketplace.
type Vendor struct {
	ID                    string                 `json:"_id"`
	User                  UserRef                `json:"userId"`
	BusinessName          string                 `json:"businessName"`
	CommissionRate        float64                `json:"commissionRate"`
	IsActive              bool                   `json:"isActive"`
	IsSponsored           bool                   `json:"isSponsored"`
	Rating                float64                `json:"rating"`
	TotalProducts         int                    `json:"totalProducts"`
	TotalSales            float64                `json:"totalSales"`
	VerificationStatus    VerificationStatus     `json:"verificationStatus"`
	VerificationDocuments []VerificationDocument `json:"verificationDocuments,omitempty"`
	RejectionReason       string                 `json:"rejectionReason,omitempty"`
	CreatedAt             time.Time              `json:"createdAt"`
	UpdatedAt             time.Time              `json:"updatedAt"`
}
