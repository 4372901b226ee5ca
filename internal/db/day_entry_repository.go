package db

import (
	"time"

	"github.com/terraincognita07/blushy/internal/models"
	"gorm.io/gorm"
)

type DayEntryRepository struct {
	database *gorm.DB
}

func NewDayEntryRepository(database *gorm.DB) *DayEntryRepository {
	return &DayEntryRepository{database: database}
}

func (repo *DayEntryRepository) ListAll() ([]models.DayEntry, error) {
	entries := make([]models.DayEntry, 0)
	if err := repo.database.Order("date ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListRange returns entries whose date lies in [from, to]. Nil bounds are open.
func (repo *DayEntryRepository) ListRange(from *time.Time, to *time.Time) ([]models.DayEntry, error) {
	query := repo.database.Model(&models.DayEntry{})
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date <= ?", *to)
	}

	entries := make([]models.DayEntry, 0)
	if err := query.Order("date ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *DayEntryRepository) FindByKey(key string) (models.DayEntry, bool, error) {
	entry := models.DayEntry{}
	result := repo.database.Where("day_key = ?", key).Limit(1).Find(&entry)
	if result.Error != nil {
		return models.DayEntry{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.DayEntry{}, false, nil
	}
	return entry, true, nil
}

func (repo *DayEntryRepository) Save(entry *models.DayEntry) error {
	return repo.database.Save(entry).Error
}

func (repo *DayEntryRepository) DeleteByKey(key string) error {
	return repo.database.Where("day_key = ?", key).Delete(&models.DayEntry{}).Error
}
