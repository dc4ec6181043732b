package models

import (
	"time"
)

type CampaignStatus string

const (
	CampaignActive CampaignStatus = "ACTIVE"
	CampaignClosed CampaignStatus = "CLOSED"
)

type Campaign struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ArtistID    string         `json:"artistId" gorm:"column:artist_id;type:uuid;not null"`
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	TrackTitle  string         `json:"trackTitle" gorm:"column:track_title"`
	TrackURL    string         `json:"trackUrl" gorm:"column:track_url"`
	Budget      float64        `json:"budget" gorm:"type:numeric(10,2)"`
	Status      CampaignStatus `json:"status" gorm:"default:'ACTIVE'"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type CampaignCreate struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	TrackTitle  string  `json:"trackTitle"`
	TrackURL    string  `json:"trackUrl"`
	Budget      float64 `json:"budget"`
}

func (Campaign) TableName() string {
	return "campaigns"
}
