package submissions

import (
	"errors"
	"net/http"
	"strconv"

	"creatoramp-backend/models"
	"creatoramp-backend/repository"
	"creatoramp-backend/utils"
	"creatoramp-backend/workflow"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	engine      *workflow.Engine
	submissions *repository.SubmissionRepository
	feedback    *repository.FeedbackRepository
}

func New(engine *workflow.Engine, submissions *repository.SubmissionRepository, feedback *repository.FeedbackRepository) *Handler {
	return &Handler{
		engine:      engine,
		submissions: submissions,
		feedback:    feedback,
	}
}

// @Summary Submit content for a campaign
// @Description Create a new submission for a campaign the creator is approved for
// @Tags submissions
// @Accept json
// @Produce json
// @Param submission body models.SubmissionCreate true "Submission information"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "success: true, id: submission id"
// @Failure 400 {object} map[string]interface{} "success: false, error: Invalid input"
// @Failure 401 {object} map[string]interface{} "success: false, error: Unauthorized"
// @Failure 403 {object} map[string]interface{} "success: false, error: Creator not approved"
// @Failure 500 {object} map[string]interface{} "success: false, error: Error message"
// @Router /submissions [post]
func (h *Handler) CreateSubmission(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendError(c, http.StatusUnauthorized, "User not found in token")
		return
	}

	var input models.SubmissionCreate
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	if !utils.ValidateContentURL(input.ContentURL) {
		utils.SendError(c, http.StatusBadRequest, "contentUrl must be a valid http(s) URL")
		return
	}

	submission, err := h.engine.CreateSubmission(userID.(string), input)
	if err != nil {
		if errors.Is(err, workflow.ErrNotApproved) {
			utils.LogErrorWithUser(userID, err, "Submission rejected, creator not approved for campaign")
			utils.SendError(c, http.StatusForbidden, "You are not approved for this campaign")
			return
		}
		utils.LogErrorWithUser(userID, err, "Error creating submission")
		utils.SendError(c, http.StatusInternalServerError, "Error creating submission: "+err.Error())
		return
	}

	utils.LogSuccessWithUser(userID, "Submission created for campaign "+input.CampaignID)
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"id":      submission.ID,
	})
}

// @Summary List submissions
// @Description Retrieve submissions with optional filters, newest first
// @Tags submissions
// @Produce json
// @Param campaignId query string false "Filter by campaign"
// @Param creatorId query string false "Filter by creator"
// @Param status query string false "Filter by status"
// @Param page query int false "Page number (default 1)"
// @Param pageSize query int false "Page size (default 10)"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "success, submissions, totalPages, currentPage"
// @Failure 500 {object} map[string]interface{} "success: false, error: Error message"
// @Router /submissions [get]
func (h *Handler) ListSubmissions(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	filter := repository.SubmissionFilter{
		CampaignID: c.Query("campaignId"),
		CreatorID:  c.Query("creatorId"),
		Status:     models.SubmissionStatus(c.Query("status")),
	}

	items, totalPages, err := h.submissions.ListSubmissions(filter, page, pageSize)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving submissions: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"submissions": items,
		"totalPages":  totalPages,
		"currentPage": page,
	})
}

// @Summary Get a submission by ID
// @Description Retrieve a single submission
// @Tags submissions
// @Produce json
// @Param id path string true "Submission ID"
// @Security BearerAuth
// @Success 200 {object} models.Submission
// @Failure 404 {object} map[string]interface{} "success: false, error: Submission not found"
// @Router /submissions/{id} [get]
func (h *Handler) GetSubmissionByID(c *gin.Context) {
	submission, err := h.submissions.GetSubmission(c.Param("id"))
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Submission not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"submission": submission,
	})
}

// @Summary List feedback on a submission
// @Description Retrieve reviewer feedback left on a submission, newest first
// @Tags submissions
// @Produce json
// @Param id path string true "Submission ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "success, feedback"
// @Failure 500 {object} map[string]interface{} "success: false, error: Error message"
// @Router /submissions/{id}/feedback [get]
func (h *Handler) ListFeedback(c *gin.Context) {
	rows, err := h.feedback.ListBySubmission(c.Param("id"))
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving feedback: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"feedback": rows,
	})
}

// @Summary Review a submission
// @Description Apply a reviewer decision (APPROVED, NEEDS_REVISION or REJECTED) to a submission
// @Tags submissions
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Param review body models.SubmissionReview true "Review decision"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "success: true, submissionId"
// @Failure 400 {object} map[string]interface{} "success: false, error: Invalid status"
// @Failure 401 {object} map[string]interface{} "success: false, error: Unauthorized"
// @Failure 404 {object} map[string]interface{} "success: false, error: Submission not found"
// @Failure 500 {object} map[string]interface{} "success: false, error: Error message"
// @Router /submissions/{id}/review [post]
func (h *Handler) ReviewSubmission(c *gin.Context) {
	reviewerID, exists := c.Get("user_id")
	if !exists {
		utils.SendError(c, http.StatusUnauthorized, "User not found in token")
		return
	}

	var input models.SubmissionReview
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	submissionID, err := h.engine.ApplyDecision(c.Param("id"), workflow.Decision{
		Status:        input.Status,
		RevisionNotes: input.RevisionNotes,
		Feedback:      input.Feedback,
		Rating:        input.Rating,
		ReviewerID:    reviewerID.(string),
	})
	if err != nil {
		switch {
		case errors.Is(err, workflow.ErrInvalidTransition):
			utils.SendError(c, http.StatusBadRequest, "Invalid review status: "+string(input.Status))
		case errors.Is(err, workflow.ErrNotFound):
			utils.SendError(c, http.StatusNotFound, "Submission not found")
		default:
			utils.LogErrorWithUser(reviewerID, err, "Error applying review decision")
			utils.SendError(c, http.StatusInternalServerError, "Error applying decision: "+err.Error())
		}
		return
	}

	utils.LogSuccessWithUser(reviewerID, "Submission "+submissionID+" reviewed: "+string(input.Status))
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"submissionId": submissionID,
	})
}

// @Summary Publish an approved submission
// @Description Mark an APPROVED submission as PUBLISHED
// @Tags submissions
// @Produce json
// @Param id path string true "Submission ID"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "success: true, submissionId"
// @Failure 400 {object} map[string]interface{} "success: false, error: Submission is not approved"
// @Failure 404 {object} map[string]interface{} "success: false, error: Submission not found"
// @Failure 500 {object} map[string]interface{} "success: false, error: Error message"
// @Router /submissions/{id}/publish [post]
func (h *Handler) PublishSubmission(c *gin.Context) {
	userID, _ := c.Get("user_id")

	submissionID, err := h.engine.Publish(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, workflow.ErrNotFound):
			utils.SendError(c, http.StatusNotFound, "Submission not found")
		case errors.Is(err, workflow.ErrInvalidTransition):
			utils.SendError(c, http.StatusBadRequest, "Only approved submissions can be published")
		default:
			utils.LogErrorWithUser(userID, err, "Error publishing submission")
			utils.SendError(c, http.StatusInternalServerError, "Error publishing submission: "+err.Error())
		}
		return
	}

	utils.LogSuccessWithUser(userID, "Submission "+submissionID+" published")
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"submissionId": submissionID,
	})
}
