package models

import "time"

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

type ChatMessage struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Role      string    `gorm:"not null" json:"role"`
	Content   string    `gorm:"not null" json:"content"`
	Fallback  bool      `gorm:"not null;default:false" json:"fallback"`
	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
}
