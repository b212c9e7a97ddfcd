package models

import (
	"time"
)

// MessageMaxLen — максимум рун в тексте сообщения, лишнее молча обрезается при записи.
const MessageMaxLen = 100

type Message struct {
	ID         uint      `gorm:"primaryKey"`
	SenderID   uint      `gorm:"not null"`
	ReceiverID uint      `gorm:"not null;index"`
	Content    string    `gorm:"size:100;not null"`
	Timestamp  time.Time `gorm:"not null;index"`

	// Связи
	Sender   User `gorm:"foreignKey:SenderID"`
	Receiver User `gorm:"foreignKey:ReceiverID"`
}
