package entity

import "time"

// Review is a product review awaiting or past moderation.
type Review struct {
	ID        string         `json:"_id"`
	User      UserRef        `json:"userId"`
	Product   ProductRef     `json:"productId"`
	Rating    int            `json:"rating"`
	Comment   string         `json:"comment"`
	Status    ApprovalStatus `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}
