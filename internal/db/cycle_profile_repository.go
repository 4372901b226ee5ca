package db

import (
	"github.com/terraincognita07/blushy/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CycleProfileRepository struct {
	database *gorm.DB
}

func NewCycleProfileRepository(database *gorm.DB) *CycleProfileRepository {
	return &CycleProfileRepository{database: database}
}

// Load returns the stored profile, or the defaults when none was saved yet.
func (repo *CycleProfileRepository) Load() (models.CycleProfile, error) {
	profile := models.CycleProfile{}
	result := repo.database.Where("id = ?", models.CycleProfileID).Limit(1).Find(&profile)
	if result.Error != nil {
		return models.CycleProfile{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DefaultCycleProfile(), nil
	}
	return profile, nil
}

func (repo *CycleProfileRepository) Save(profile *models.CycleProfile) error {
	profile.ID = models.CycleProfileID
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(profile).Error
}
