package entity

import "time"

// Product is a vendor's listed item. Approval transitions are offered only
// while PENDING; products are the one record the console may hard delete.
type Product struct {
	ID                 string         `json:"_id"`
	VendorID           string         `json:"vendorId"`
	Name               string         `json:"name"`
	Description        string         `json:"description,omitempty"`
	Price              float64        `json:"price"`
	OriginalPrice      float64        `json:"originalPrice,omitempty"`
	DiscountPercentage float64        `json:"discountPercentage,omitempty"`
	Thumbnail          string         `json:"thumbnail,omitempty"`
	Images             []string       `json:"images,omitempty"`
	IsActive           bool           `json:"isActive"`
	ApprovalStatus     ApprovalStatus `json:"approvalStatus"`
	SoldCount          int            `json:"soldCount,omitempty"`
	ViewCount          int            `json:"viewCount,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}
