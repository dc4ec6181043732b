package models

import (
	"time"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
)

// Payment is an append-only record of money owed to a user. Rows created by
// the review workflow snapshot the agreement rate at approval time; settlement
// is handled by an external capture process that only advances Status.
type Payment struct {
	ID           string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID       string        `json:"userId" gorm:"column:user_id;type:uuid;not null"`
	SubmissionID *string       `json:"submissionId,omitempty" gorm:"column:submission_id;type:uuid;index"`
	Amount       float64       `json:"amount" gorm:"type:numeric(10,2)"`
	Status       PaymentStatus `json:"status" gorm:"default:'PENDING'"`
	Description  string        `json:"description"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

func (Payment) TableName() string {
	return "payments"
}
