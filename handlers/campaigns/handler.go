package campaigns

import (
	"errors"
	"net/http"

	"creatoramp-backend/models"
	"creatoramp-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// @Summary Create a new campaign
// @Description Create a new campaign owned by the authenticated artist
// @Tags campaigns
// @Accept json
// @Produce json
// @Param campaign body models.CampaignCreate true "Campaign information"
// @Security BearerAuth
// @Success 201 {object} models.Campaign
// @Failure 400 {object} map[string]interface{} "success: false, error: Invalid input"
// @Failure 401 {object} map[string]interface{} "success: false, error: Unauthorized"
// @Failure 500 {object} map[string]interface{} "success: false, error: Error message"
// @Router /campaigns [post]
func (h *Handler) CreateCampaign(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendError(c, http.StatusUnauthorized, "User not found in token")
		return
	}

	var input models.CampaignCreate
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	campaign := models.Campaign{
		ArtistID:    userID.(string),
		Title:       input.Title,
		Description: input.Description,
		TrackTitle:  input.TrackTitle,
		TrackURL:    input.TrackURL,
		Budget:      input.Budget,
		Status:      models.CampaignActive,
	}

	if err := h.db.Create(&campaign).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating campaign")
		utils.SendError(c, http.StatusInternalServerError, "Error creating campaign: "+err.Error())
		return
	}

	utils.LogSuccessWithUser(userID, "Campaign created: "+campaign.ID)
	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"campaign": campaign,
	})
}

// @Summary Get all campaigns
// @Description Retrieve campaigns, optionally filtered by status or artist
// @Tags campaigns
// @Produce json
// @Param status query string false "Filter by status"
// @Param artistId query string false "Filter by artist"
// @Success 200 {array} models.Campaign
// @Failure 500 {object} map[string]interface{} "success: false, error: Error message"
// @Router /campaigns [get]
func (h *Handler) GetAllCampaigns(c *gin.Context) {
	var campaigns []models.Campaign
	query := h.db.Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if artistID := c.Query("artistId"); artistID != "" {
		query = query.Where("artist_id = ?", artistID)
	}

	if err := query.Find(&campaigns).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error retrieving campaigns: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"campaigns": campaigns,
	})
}

// @Summary Get a campaign by ID
// @Description Retrieve a campaign by its ID
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} models.Campaign
// @Failure 404 {object} map[string]interface{} "success: false, error: Campaign not found"
// @Router /campaigns/{id} [get]
func (h *Handler) GetCampaignByID(c *gin.Context) {
	var campaign models.Campaign
	if err := h.db.First(&campaign, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Campaign not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"campaign": campaign,
	})
}

// @Summary Apply to a campaign
// @Description Creator applies to a campaign, creating a pending agreement
// @Tags campaigns
// @Produce json
// @Param id path string true "Campaign ID"
// @Security BearerAuth
// @Success 201 {object} models.CampaignCreator
// @Failure 401 {object} map[string]interface{} "success: false, error: Unauthorized"
// @Failure 404 {object} map[string]interface{} "success: false, error: Campaign not found"
// @Failure 409 {object} map[string]interface{} "success: false, error: Already applied"
// @Failure 500 {object} map[string]interface{} "success: false, error: Error message"
// @Router /campaigns/{id}/apply [post]
func (h *Handler) ApplyToCampaign(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendError(c, http.StatusUnauthorized, "User not found in token")
		return
	}

	var campaign models.Campaign
	if err := h.db.First(&campaign, "id = ?", c.Param("id")).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Campaign not found")
		return
	}

	var existing models.CampaignCreator
	err := h.db.Where("campaign_id = ? AND creator_id = ?", campaign.ID, userID).
		First(&existing).Error
	if err == nil {
		utils.SendError(c, http.StatusConflict, "You already applied to this campaign")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.SendError(c, http.StatusInternalServerError, "Error checking existing application")
		return
	}

	agreement := models.CampaignCreator{
		CampaignID: campaign.ID,
		CreatorID:  userID.(string),
		Status:     models.AgreementPending,
	}

	if err := h.db.Create(&agreement).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating application")
		utils.SendError(c, http.StatusInternalServerError, "Error creating application: "+err.Error())
		return
	}

	utils.LogSuccessWithUser(userID, "Application created for campaign "+campaign.ID)
	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"application": agreement,
	})
}

// @Summary Decide on a campaign application
// @Description Approve or reject a creator's application; approval fixes the payment rate
// @Tags campaigns
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param creatorId path string true "Creator ID"
// @Param decision body models.ApplicationDecision true "Decision with payment rate"
// @Security BearerAuth
// @Success 200 {object} models.CampaignCreator
// @Failure 400 {object} map[string]interface{} "success: false, error: Invalid decision"
// @Failure 404 {object} map[string]interface{} "success: false, error: Application not found"
// @Failure 500 {object} map[string]interface{} "success: false, error: Error message"
// @Router /campaigns/{id}/applications/{creatorId} [post]
func (h *Handler) DecideApplication(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var input models.ApplicationDecision
	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	if input.Status != models.AgreementApproved && input.Status != models.AgreementRejected {
		utils.SendError(c, http.StatusBadRequest, "Decision must be APPROVED or REJECTED")
		return
	}
	if input.Status == models.AgreementApproved && input.PaymentRate <= 0 {
		utils.SendError(c, http.StatusBadRequest, "An approved application requires a positive payment rate")
		return
	}

	var agreement models.CampaignCreator
	err := h.db.Where("campaign_id = ? AND creator_id = ?", c.Param("id"), c.Param("creatorId")).
		First(&agreement).Error
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "Application not found")
		return
	}

	updates := map[string]interface{}{
		"status": input.Status,
	}
	if input.Status == models.AgreementApproved {
		updates["payment_rate"] = input.PaymentRate
	}

	if err := h.db.Model(&agreement).Updates(updates).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error updating application")
		utils.SendError(c, http.StatusInternalServerError, "Error updating application: "+err.Error())
		return
	}

	utils.LogSuccessWithUser(userID, "Application "+agreement.ID+" decided: "+string(input.Status))
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"application": agreement,
	})
}
