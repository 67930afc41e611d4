package repository

import (
	"time"
)

// CacheRepository определяет методы для работы с кешем.
// Используется внешним слоем (список викторин, rate limiting);
// движок подсчета очков кешем не пользуется.
type CacheRepository interface {
	Get(key string) (string, error)
	Set(key string, value interface{}, expiration time.Duration) error
	Delete(key string) error
	SetJSON(key string, value interface{}, expiration time.Duration) error
	GetJSON(key string, dest interface{}) error
}
