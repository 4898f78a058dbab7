package entity

import "time"

// WithdrawalDetails holds the vendor's payout bank account.
type WithdrawalDetails struct {
	BankAccount string `json:"bankAccount"`
	BankName    string `json:"bankName"`
	AccountName string `json:"accountName"`
}

// Withdrawal is a vendor payout request, approvable while PENDING.
type Withdrawal struct {
	ID        string            `json:"_id"`
	User      UserRef           `json:"userId"`
	Reference string            `json:"reference"`
	Amount    float64           `json:"amount"`
	Currency  string            `json:"currency"`
	Gateway   string            `json:"gateway"`
	Status    ApprovalStatus    `json:"status"`
	Details   WithdrawalDetails `json:"withdrawalDetails"`
	CreatedAt time.Time         `json:"createdAt"`
}
