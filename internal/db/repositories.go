package db

import "gorm.io/gorm"

type Repositories struct {
	Days         *DayEntryRepository
	Profiles     *CycleProfileRepository
	ChatMessages *ChatMessageRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Days:         NewDayEntryRepository(database),
		Profiles:     NewCycleProfileRepository(database),
		ChatMessages: NewChatMessageRepository(database),
	}
}
