package models

import (
	"time"
)

type Role string

const (
	AdminRole   Role = "ADMIN"
	ArtistRole  Role = "ARTIST"
	CreatorRole Role = "CREATOR"
)

type User struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email          string    `json:"email" gorm:"uniqueIndex" binding:"required,email"`
	Password       string    `json:"-"`
	UserName       string    `json:"username"`
	Role           Role      `json:"role"`
	Bio            string    `json:"bio"`
	ProfilePicture string    `json:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type UserCreate struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	UserName string `json:"username"`
	Role     Role   `json:"role"`
}

type UserLogin struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (User) TableName() string {
	return "users"
}
