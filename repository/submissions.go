package repository

import (
	"math"
	"time"

	"creatoramp-backend/models"

	"gorm.io/gorm"
)

// SubmissionRepository is the durable store behind the review workflow. One
// instance is constructed at startup with the shared gorm handle and injected
// wherever submissions are read or written.
type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// FindApprovedAgreement returns the APPROVED campaign_creators row for the
// pair, or gorm.ErrRecordNotFound when the creator is not approved for the
// campaign.
func (r *SubmissionRepository) FindApprovedAgreement(campaignID, creatorID string) (*models.CampaignCreator, error) {
	var agreement models.CampaignCreator
	err := r.db.Where("campaign_id = ? AND creator_id = ? AND status = ?",
		campaignID, creatorID, models.AgreementApproved).
		First(&agreement).Error
	if err != nil {
		return nil, err
	}
	return &agreement, nil
}

func (r *SubmissionRepository) GetAgreementByID(id string) (*models.CampaignCreator, error) {
	var agreement models.CampaignCreator
	if err := r.db.First(&agreement, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &agreement, nil
}

func (r *SubmissionRepository) CreateSubmission(submission *models.Submission) error {
	return r.db.Create(submission).Error
}

func (r *SubmissionRepository) GetSubmission(id string) (*models.Submission, error) {
	var submission models.Submission
	if err := r.db.First(&submission, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

// SubmissionFilter narrows ListSubmissions; zero values mean no filter.
type SubmissionFilter struct {
	CampaignID string
	CreatorID  string
	Status     models.SubmissionStatus
}

// ListSubmissions returns one page ordered by submitted time descending,
// along with the total page count for the filter. An empty page is not an
// error.
func (r *SubmissionRepository) ListSubmissions(filter SubmissionFilter, page, pageSize int) ([]models.Submission, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	query := r.db.Model(&models.Submission{})
	if filter.CampaignID != "" {
		query = query.Where("campaign_id = ?", filter.CampaignID)
	}
	if filter.CreatorID != "" {
		query = query.Where("creator_id = ?", filter.CreatorID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var submissions []models.Submission
	err := query.Order("submitted_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&submissions).Error
	if err != nil {
		return nil, 0, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	return submissions, totalPages, nil
}

// UpdateDecision is the only mutation path for a submission's status. It
// writes status, revision notes and reviewed_at in one update; published_at is
// cleared since decisions never produce PUBLISHED.
func (r *SubmissionRepository) UpdateDecision(id string, status models.SubmissionStatus, revisionNotes *string, reviewedAt time.Time) error {
	return r.db.Model(&models.Submission{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":         status,
			"revision_notes": revisionNotes,
			"reviewed_at":    reviewedAt,
			"published_at":   nil,
		}).Error
}

// MarkPublished advances an APPROVED submission to PUBLISHED. Returns the
// number of rows touched so the caller can tell a missed guard from success.
func (r *SubmissionRepository) MarkPublished(id string, publishedAt time.Time) (int64, error) {
	result := r.db.Model(&models.Submission{}).
		Where("id = ? AND status = ?", id, models.SubmissionApproved).
		Updates(map[string]interface{}{
			"status":       models.SubmissionPublished,
			"published_at": publishedAt,
		})
	return result.RowsAffected, result.Error
}
