package models

import (
	"time"
)

// BeginningOfTime — сентинель "начала времён", дефолтный watermark нового пользователя.
var BeginningOfTime = time.Date(1987, 4, 2, 0, 0, 1, 0, time.UTC)

type User struct {
	ID        uint      `gorm:"primaryKey"`
	Username  string    `gorm:"uniqueIndex;not null"`
	LastFetch time.Time `gorm:"not null"`
}
