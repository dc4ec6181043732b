package events

import (
	"fmt"
	"sync"
	"time"

	"creatoramp-backend/models"
	"creatoramp-backend/repository"
	"creatoramp-backend/utils"
)

const paymentDescription = "Payment for approved submission"

// PaymentIssuer turns SubmissionApproved events into PENDING payment rows.
// The amount is the agreement's payment_rate snapshotted at this moment.
// Issuance is best-effort: a submission whose payment cannot be created keeps
// its reviewed status, and the failure is logged for reconciliation.
type PaymentIssuer struct {
	submissions *repository.SubmissionRepository
	payments    *repository.PaymentRepository
	maxRetries  int
	backoff     time.Duration

	wg sync.WaitGroup
}

func NewPaymentIssuer(submissions *repository.SubmissionRepository, payments *repository.PaymentRepository) *PaymentIssuer {
	return &PaymentIssuer{
		submissions: submissions,
		payments:    payments,
		maxRetries:  3,
		backoff:     500 * time.Millisecond,
	}
}

// Start consumes the bus on its own goroutine until the bus is closed.
func (i *PaymentIssuer) Start(bus *Bus) {
	i.wg.Add(1)
	go func() {
		defer i.wg.Done()
		for event := range bus.Events() {
			i.Handle(event)
		}
	}()
}

// Wait blocks until the consumer goroutine has drained the closed bus.
func (i *PaymentIssuer) Wait() {
	i.wg.Wait()
}

// Handle issues the payment for one approval event. A payment already
// referencing the submission means a re-review or a double-publish; nothing
// more is owed, so the event is skipped.
func (i *PaymentIssuer) Handle(event SubmissionApproved) {
	exists, err := i.payments.HasPaymentForSubmission(event.SubmissionID)
	if err != nil {
		utils.LogError(err, "Could not check existing payments for submission "+event.SubmissionID)
		// fall through: worst case is a duplicate row the sweep reconciles
	}
	if exists {
		utils.LogInfo("Payment already issued for submission " + event.SubmissionID + ", skipping")
		return
	}

	agreement, err := i.submissions.GetAgreementByID(event.AgreementID)
	if err != nil {
		utils.LogError(err, fmt.Sprintf("Payment rate lookup failed for submission %s (agreement %s)", event.SubmissionID, event.AgreementID))
		return
	}

	submissionID := event.SubmissionID
	payment := models.Payment{
		UserID:       event.CreatorID,
		SubmissionID: &submissionID,
		Amount:       agreement.PaymentRate,
		Status:       models.PaymentPending,
		Description:  paymentDescription,
	}

	for attempt := 1; attempt <= i.maxRetries; attempt++ {
		err = i.payments.CreatePayment(&payment)
		if err == nil {
			utils.LogSuccessWithUser(event.CreatorID, "Payment issued for submission "+event.SubmissionID)
			return
		}
		if attempt < i.maxRetries {
			time.Sleep(i.backoff * time.Duration(attempt))
		}
	}

	utils.LogError(err, "Payment creation failed after retries for submission "+event.SubmissionID)
}
