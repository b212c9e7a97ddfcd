package database

import (
	"time"

	"github.com/thereayou/babbel/internal/models"
)

func (d *Database) SaveMessage(message *models.Message) error {
	return d.db.Create(message).Error
}

// GetReceivedMessage ищет сообщение по id строго среди входящих получателя.
// "Не твоё" и "не существует" снаружи неразличимы.
func (d *Database) GetReceivedMessage(receiverID, id uint) (*models.Message, error) {
	var message models.Message
	err := d.db.
		Where("receiver_id = ? AND id = ?", receiverID, id).
		Preload("Sender").
		First(&message).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (d *Database) DeleteMessage(id uint) error {
	return d.db.Delete(&models.Message{}, "id = ?", id).Error
}

// GetReceivedMessagesBetween возвращает входящие в окне [start, end], границы включительно.
func (d *Database) GetReceivedMessagesBetween(receiverID uint, start, end time.Time) ([]models.Message, error) {
	var messages []models.Message

	err := d.db.
		Where("receiver_id = ? AND timestamp BETWEEN ? AND ?", receiverID, start, end).
		Order("timestamp ASC, id ASC").
		Preload("Sender").
		Find(&messages).Error

	return messages, err
}

func (d *Database) GetAllReceivedMessages(receiverID uint) ([]models.Message, error) {
	var messages []models.Message

	err := d.db.
		Where("receiver_id = ?", receiverID).
		Order("timestamp ASC, id ASC").
		Preload("Sender").
		Preload("Receiver").
		Find(&messages).Error

	return messages, err
}

func (d *Database) GetAllMessages() ([]models.Message, error) {
	var messages []models.Message

	err := d.db.
		Order("id ASC").
		Preload("Sender").
		Preload("Receiver").
		Find(&messages).Error

	return messages, err
}
