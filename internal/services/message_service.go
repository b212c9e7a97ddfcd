package services

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/thereayou/babbel/internal/database"
	"github.com/thereayou/babbel/internal/models"
	"gorm.io/gorm"
)

type MessageService struct {
	db *database.Database
}

func NewMessageService(db *database.Database) *MessageService {
	return &MessageService{db: db}
}

// Send сохраняет сообщение от sender пользователю receiverName.
// Слишком длинный текст молча обрезается до models.MessageMaxLen рун.
func (s *MessageService) Send(sender *models.User, receiverName, content string) error {
	receiver, err := s.db.FindUserByUsername(receiverName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Receiver %q does not exist", receiverName)
			return fmt.Errorf("%w: user %q", ErrNotFound, receiverName)
		}
		return err
	}

	if utf8.RuneCountInString(content) > models.MessageMaxLen {
		log.Printf("Message length exceeds %d, truncating", models.MessageMaxLen)
		content = string([]rune(content)[:models.MessageMaxLen])
	}

	message := &models.Message{
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
		Content:    content,
		Timestamp:  time.Now().UTC(),
	}

	return s.db.SaveMessage(message)
}

// FetchByID возвращает входящее сообщение owner-а по id из строки.
// Чужое сообщение и несуществующее снаружи неразличимы: оба — ErrNotFound.
func (s *MessageService) FetchByID(owner *models.User, rawID string) (*models.Message, error) {
	id, err := parseMessageID(rawID)
	if err != nil {
		return nil, err
	}

	message, err := s.db.GetReceivedMessage(owner.ID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("No message id %d found for user %s", id, owner.Username)
			return nil, fmt.Errorf("%w: message %d", ErrNotFound, id)
		}
		return nil, err
	}

	return message, nil
}

// FetchRange возвращает входящие owner-а в окне, выведенном из start/end (см. ResolveRange).
// Побочный эффект: после каждого чтения watermark сдвигается на now — в том числе
// для чисто исторических запросов с одним end.
func (s *MessageService) FetchRange(owner *models.User, start, end *time.Time) ([]models.Message, error) {
	now := time.Now().UTC()
	from, to := ResolveRange(start, end, owner.LastFetch, now)

	messages, err := s.db.GetReceivedMessagesBetween(owner.ID, from, to)
	if err != nil {
		return nil, err
	}

	if err := s.db.UpdateLastFetch(owner.ID, now); err != nil {
		return nil, err
	}
	owner.LastFetch = now

	return messages, nil
}

// DeleteOne удаляет входящее сообщение owner-а по id из строки.
// Любая причина неудачи (мусорный id, чужое, несуществующее) — просто false.
func (s *MessageService) DeleteOne(owner *models.User, rawID string) bool {
	message, err := s.FetchByID(owner, rawID)
	if err != nil {
		return false
	}

	if err := s.db.DeleteMessage(message.ID); err != nil {
		log.Printf("Failed to delete message %d: %v", message.ID, err)
		return false
	}

	return true
}

// DeleteMany пытается удалить каждый id независимо (дубликаты не схлопываются)
// и возвращает число успешных удалений.
func (s *MessageService) DeleteMany(owner *models.User, rawIDs []string) int {
	deleted := 0
	for _, rawID := range rawIDs {
		if s.DeleteOne(owner, rawID) {
			deleted++
		} else {
			log.Printf("Attempted deletion of message %s failed for user %s", rawID, owner.Username)
		}
	}
	return deleted
}

func parseMessageID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a valid message id", ErrBadRequest, raw)
	}
	return uint(id), nil
}
