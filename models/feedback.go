package models

import (
	"time"
)

// Feedback is reviewer commentary on a submission, visible to the creator.
// Immutable once created.
type Feedback struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	SubmissionID string    `json:"submissionId" gorm:"column:submission_id;type:uuid;not null;index"`
	SenderID     string    `json:"senderId" gorm:"column:sender_id;type:uuid;not null"`
	ReceiverID   string    `json:"receiverId" gorm:"column:receiver_id;type:uuid;not null"`
	Content      string    `json:"content"`
	Rating       *int      `json:"rating,omitempty" gorm:"check:rating >= 1 AND rating <= 5"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (Feedback) TableName() string {
	return "feedback"
}
