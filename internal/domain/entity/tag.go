package entity

import (
	"time"
)

// Tag представляет тег для фильтрации викторин
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName определяет имя таблицы для GORM
func (Tag) TableName() string {
	return "tags"
}
