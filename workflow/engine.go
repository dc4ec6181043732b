package workflow

import (
	"errors"
	"time"

	"creatoramp-backend/events"
	"creatoramp-backend/models"
	"creatoramp-backend/repository"
	"creatoramp-backend/utils"

	"gorm.io/gorm"
)

// Engine applies reviewer decisions to submissions. The decision write is the
// source of truth; payment issuance happens behind the event bus and feedback
// creation is best-effort, so neither can fail a reviewer's action.
type Engine struct {
	submissions *repository.SubmissionRepository
	feedback    *repository.FeedbackRepository
	bus         *events.Bus
}

func NewEngine(submissions *repository.SubmissionRepository, feedback *repository.FeedbackRepository, bus *events.Bus) *Engine {
	return &Engine{
		submissions: submissions,
		feedback:    feedback,
		bus:         bus,
	}
}

// Decision is one reviewer action on a submission.
type Decision struct {
	Status        models.SubmissionStatus
	RevisionNotes string
	Feedback      string
	Rating        *int
	ReviewerID    string
}

// reviewerStatus reports whether a decision may carry the status. PUBLISHED
// is reachable through Publish alone, never through ApplyDecision.
func reviewerStatus(status models.SubmissionStatus) bool {
	switch status {
	case models.SubmissionApproved, models.SubmissionNeedsRevision, models.SubmissionRejected:
		return true
	}
	return false
}

// CreateSubmission inserts a PENDING_REVIEW submission after checking that
// the creator holds an APPROVED agreement for the campaign. The submitted
// timestamp is set here and never changes.
func (e *Engine) CreateSubmission(creatorID string, input models.SubmissionCreate) (*models.Submission, error) {
	agreement, err := e.submissions.FindApprovedAgreement(input.CampaignID, creatorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotApproved
		}
		return nil, err
	}
	if agreement.ID != input.CampaignCreatorID {
		return nil, ErrNotApproved
	}

	submission := models.Submission{
		CampaignID:        input.CampaignID,
		CreatorID:         creatorID,
		CampaignCreatorID: agreement.ID,
		ContentURL:        input.ContentURL,
		Caption:           input.Caption,
		Status:            models.SubmissionPendingReview,
		SubmittedAt:       time.Now(),
	}
	if err := e.submissions.CreateSubmission(&submission); err != nil {
		return nil, err
	}
	return &submission, nil
}

// ApplyDecision validates and persists a reviewer's decision. A submission
// may be re-reviewed regardless of its current status (admin override), so
// only existence is checked. On approval a SubmissionApproved event is
// published for the payment issuer; non-empty reviewer notes become a
// Feedback row for the creator.
func (e *Engine) ApplyDecision(submissionID string, decision Decision) (string, error) {
	if !reviewerStatus(decision.Status) {
		return "", ErrInvalidTransition
	}

	submission, err := e.submissions.GetSubmission(submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}

	var notes *string
	if decision.RevisionNotes != "" {
		notes = &decision.RevisionNotes
	}

	if err := e.submissions.UpdateDecision(submission.ID, decision.Status, notes, time.Now()); err != nil {
		return "", err
	}

	if decision.Status == models.SubmissionApproved {
		e.bus.Publish(events.SubmissionApproved{
			SubmissionID: submission.ID,
			CreatorID:    submission.CreatorID,
			AgreementID:  submission.CampaignCreatorID,
			OccurredAt:   time.Now(),
		})
	}

	e.recordFeedback(submission, decision)

	return submission.ID, nil
}

// Publish advances an APPROVED submission to PUBLISHED and stamps
// published_at. The approval event is re-published so a submission published
// before its payment was issued still gets one; the issuer dedupes.
func (e *Engine) Publish(submissionID string) (string, error) {
	submission, err := e.submissions.GetSubmission(submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}

	rows, err := e.submissions.MarkPublished(submission.ID, time.Now())
	if err != nil {
		return "", err
	}
	if rows == 0 {
		// not APPROVED, nothing to publish
		return "", ErrInvalidTransition
	}

	e.bus.Publish(events.SubmissionApproved{
		SubmissionID: submission.ID,
		CreatorID:    submission.CreatorID,
		AgreementID:  submission.CampaignCreatorID,
		OccurredAt:   time.Now(),
	})

	return submission.ID, nil
}

// recordFeedback stores the reviewer's commentary when any was supplied.
// Failures are logged only: the decision already stands.
func (e *Engine) recordFeedback(submission *models.Submission, decision Decision) {
	content := decision.Feedback
	if content == "" {
		content = decision.RevisionNotes
	}
	if content == "" {
		return
	}

	row := models.Feedback{
		SubmissionID: submission.ID,
		SenderID:     decision.ReviewerID,
		ReceiverID:   submission.CreatorID,
		Content:      content,
		Rating:       decision.Rating,
	}
	if err := e.feedback.CreateFeedback(&row); err != nil {
		utils.LogErrorWithUser(decision.ReviewerID, err, "Feedback creation failed for submission "+submission.ID)
	}
}
