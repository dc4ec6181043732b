package workflow

import (
	"io"
	"log"
	"os"
	"testing"
	"time"

	"creatoramp-backend/events"
	"creatoramp-backend/models"
	"creatoramp-backend/repository"
	"creatoramp-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func newTestEngine(db *gorm.DB, bus *events.Bus) *Engine {
	return NewEngine(
		repository.NewSubmissionRepository(db),
		repository.NewFeedbackRepository(db),
		bus,
	)
}

func expectSubmissionFetch(mock sqlmock.Sqlmock, id, status string) {
	mock.ExpectQuery(`SELECT \* FROM "submissions" WHERE id = \$1`).
		WillReturnRows(mock.NewRows([]string{"id", "campaign_id", "creator_id", "campaign_creator_id", "status", "submitted_at"}).
			AddRow(id, "campaign-1", "creator-1", "agreement-1", status, time.Now()))
}

func TestApplyDecision_RejectsUnknownStatus(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	engine := newTestEngine(gormDB, events.NewBus(8))

	for _, status := range []models.SubmissionStatus{
		models.SubmissionPendingReview,
		models.SubmissionPublished,
		"DELETED",
		"",
	} {
		_, err := engine.ApplyDecision("submission-1", Decision{Status: status, ReviewerID: "r1"})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	}

	// nothing reached the store
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyDecision_AllowsReReview(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	// re-reviewing an already REJECTED submission is an admin override
	expectSubmissionFetch(mock, "submission-1", "REJECTED")
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "submissions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	bus := events.NewBus(8)
	engine := newTestEngine(gormDB, bus)

	id, err := engine.ApplyDecision("submission-1", Decision{
		Status:     models.SubmissionApproved,
		ReviewerID: "r1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "submission-1", id)

	select {
	case event := <-bus.Events():
		assert.Equal(t, "agreement-1", event.AgreementID)
	default:
		t.Fatal("expected a SubmissionApproved event")
	}
}

func TestApplyDecision_FeedbackFailureDoesNotFailDecision(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectSubmissionFetch(mock, "submission-1", "PENDING_REVIEW")
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "submissions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// the feedback insert blows up, the decision still stands
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "feedback"`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	engine := newTestEngine(gormDB, events.NewBus(8))

	id, err := engine.ApplyDecision("submission-1", Decision{
		Status:        models.SubmissionRejected,
		RevisionNotes: "wrong track entirely",
		ReviewerID:    "r1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "submission-1", id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyDecision_FeedbackFieldPreferredOverNotes(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectSubmissionFetch(mock, "submission-1", "PENDING_REVIEW")
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "submissions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "feedback" (.+) RETURNING "id"`).
		WithArgs("submission-1", "r1", "creator-1", "great hook, keep it", 4, sqlmock.AnyArg()).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("feedback-uuid"))
	mock.ExpectCommit()

	engine := newTestEngine(gormDB, events.NewBus(8))

	rating := 4
	_, err := engine.ApplyDecision("submission-1", Decision{
		Status:        models.SubmissionNeedsRevision,
		RevisionNotes: "trim first 3s",
		Feedback:      "great hook, keep it",
		Rating:        &rating,
		ReviewerID:    "r1",
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSubmission_AgreementMismatch(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "campaign_creators" WHERE campaign_id = \$1 AND creator_id = \$2 AND status = \$3`).
		WillReturnRows(mock.NewRows([]string{"id", "campaign_id", "creator_id", "payment_rate", "status"}).
			AddRow("agreement-1", "campaign-1", "creator-1", 150.00, "APPROVED"))

	engine := newTestEngine(gormDB, events.NewBus(8))

	// referencing someone else's agreement row is refused
	_, err := engine.CreateSubmission("creator-1", models.SubmissionCreate{
		CampaignID:        "campaign-1",
		CampaignCreatorID: "agreement-of-another-creator",
		ContentURL:        "https://www.tiktok.com/@creator/video/123",
	})

	assert.ErrorIs(t, err, ErrNotApproved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPublish_NotFound(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "submissions" WHERE id = \$1`).
		WillReturnError(gorm.ErrRecordNotFound)

	engine := newTestEngine(gormDB, events.NewBus(8))

	_, err := engine.Publish("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
