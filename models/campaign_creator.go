package models

import (
	"time"
)

type AgreementStatus string

const (
	AgreementPending  AgreementStatus = "PENDING"
	AgreementApproved AgreementStatus = "APPROVED"
	AgreementRejected AgreementStatus = "REJECTED"
)

// CampaignCreator is the agreement linking a creator to a campaign. Once
// approved it fixes the rate paid per approved submission.
type CampaignCreator struct {
	ID          string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CampaignID  string          `json:"campaignId" gorm:"column:campaign_id;type:uuid;not null;index"`
	CreatorID   string          `json:"creatorId" gorm:"column:creator_id;type:uuid;not null;index"`
	PaymentRate float64         `json:"paymentRate" gorm:"column:payment_rate;type:numeric(10,2)"`
	Status      AgreementStatus `json:"status" gorm:"default:'PENDING'"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type ApplicationDecision struct {
	Status      AgreementStatus `json:"status" binding:"required"`
	PaymentRate float64         `json:"paymentRate"`
}

func (CampaignCreator) TableName() string {
	return "campaign_creators"
}
