package db

import (
	"creatoramp-backend/models"
	"creatoramp-backend/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and runs migrations. The returned
// handle is owned by the caller: constructed once at startup, passed into the
// repositories, and closed on shutdown via Close.
func Connect(dsn string) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: utils.GetGormLogger(),
	})
	if err != nil {
		utils.LogError(err, "Error connecting to the database")
		return nil, err
	}

	err = database.AutoMigrate(
		&models.User{},
		&models.Campaign{},
		&models.CampaignCreator{},
		&models.Submission{},
		&models.Payment{},
		&models.Feedback{},
	)
	if err != nil {
		utils.LogError(err, "Error migrating database")
		return nil, err
	}

	utils.LogSuccess("Database connection successful")
	return database, nil
}

func Close(database *gorm.DB) error {
	sqlDB, err := database.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
