package db

import (
	"slices"

	"github.com/terraincognita07/blushy/internal/models"
	"gorm.io/gorm"
)

type ChatMessageRepository struct {
	database *gorm.DB
}

func NewChatMessageRepository(database *gorm.DB) *ChatMessageRepository {
	return &ChatMessageRepository{database: database}
}

func (repo *ChatMessageRepository) Append(message *models.ChatMessage) error {
	return repo.database.Create(message).Error
}

// ListRecent returns the newest limit messages in chronological order.
func (repo *ChatMessageRepository) ListRecent(limit int) ([]models.ChatMessage, error) {
	messages := make([]models.ChatMessage, 0, limit)
	if err := repo.database.
		Order("created_at DESC, rowid DESC").
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, err
	}
	slices.Reverse(messages)
	return messages, nil
}

func (repo *ChatMessageRepository) DeleteAll() error {
	return repo.database.Where("1 = 1").Delete(&models.ChatMessage{}).Error
}
