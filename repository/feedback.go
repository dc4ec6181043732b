package repository

import (
	"creatoramp-backend/models"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) CreateFeedback(feedback *models.Feedback) error {
	return r.db.Create(feedback).Error
}

func (r *FeedbackRepository) ListBySubmission(submissionID string) ([]models.Feedback, error) {
	var rows []models.Feedback
	err := r.db.Where("submission_id = ?", submissionID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}
