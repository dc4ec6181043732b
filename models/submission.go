package models

import (
	"time"
)

type SubmissionStatus string

const (
	SubmissionPendingReview SubmissionStatus = "PENDING_REVIEW"
	SubmissionNeedsRevision SubmissionStatus = "NEEDS_REVISION"
	SubmissionApproved      SubmissionStatus = "APPROVED"
	SubmissionRejected      SubmissionStatus = "REJECTED"
	SubmissionPublished     SubmissionStatus = "PUBLISHED"
)

type Submission struct {
	ID                string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CampaignID        string           `json:"campaignId" gorm:"column:campaign_id;type:uuid;not null;index"`
	CreatorID         string           `json:"creatorId" gorm:"column:creator_id;type:uuid;not null;index"`
	CampaignCreatorID string           `json:"campaignCreatorId" gorm:"column:campaign_creator_id;type:uuid;not null"`
	ContentURL        string           `json:"contentUrl" gorm:"column:content_url" binding:"required"`
	Caption           string           `json:"caption"`
	Status            SubmissionStatus `json:"status" gorm:"default:'PENDING_REVIEW';index"`
	RevisionNotes     *string          `json:"revisionNotes,omitempty" gorm:"column:revision_notes"`
	SubmittedAt       time.Time        `json:"submittedAt" gorm:"column:submitted_at"`
	ReviewedAt        *time.Time       `json:"reviewedAt,omitempty" gorm:"column:reviewed_at"`
	PublishedAt       *time.Time       `json:"publishedAt,omitempty" gorm:"column:published_at"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

type SubmissionCreate struct {
	CampaignID        string `json:"campaignId" binding:"required"`
	CampaignCreatorID string `json:"campaignCreatorId" binding:"required"`
	ContentURL        string `json:"contentUrl" binding:"required"`
	Caption           string `json:"caption"`
}

// SubmissionReview is the body of a reviewer's decision on a submission.
type SubmissionReview struct {
	Status        SubmissionStatus `json:"status" binding:"required"`
	RevisionNotes string           `json:"revisionNotes"`
	Feedback      string           `json:"feedback"`
	Rating        *int             `json:"rating"`
}

func (Submission) TableName() string {
	return "submissions"
}
