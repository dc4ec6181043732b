package repository

import (
	"creatoramp-backend/models"

	"gorm.io/gorm"
)

// PaymentRepository owns the append-only payments table. Rows are created by
// the payment issuer; only their status is advanced afterwards, by the
// external capture process.
type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) CreatePayment(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

// PaymentFilter narrows ListPayments; zero values mean no filter.
type PaymentFilter struct {
	UserID string
	Status models.PaymentStatus
}

func (r *PaymentRepository) ListPayments(filter PaymentFilter) ([]models.Payment, error) {
	var payments []models.Payment
	query := r.db.Order("created_at DESC")
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	err := query.Find(&payments).Error
	return payments, err
}

// HasPaymentForSubmission reports whether a payment row already references
// the submission. The issuer uses it to dedupe repeated approvals.
func (r *PaymentRepository) HasPaymentForSubmission(submissionID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Payment{}).
		Where("submission_id = ?", submissionID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
