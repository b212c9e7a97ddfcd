package dto

import (
	"github.com/thereayou/babbel/internal/models"
)

const timestampFormat = "2006-01-02 15:04:05"

// SendMessageRequest тело POST /:username/message. Принимаем и форму, и JSON.
type SendMessageRequest struct {
	Receiver string `json:"receiver" form:"receiver" binding:"required"`
	Message  string `json:"message" form:"message" binding:"required"`
}

// DeleteMessagesRequest необязательное тело DELETE /:username/message.
type DeleteMessagesRequest struct {
	IDs []int64 `json:"ids"`
}

// MessageResponse проводное представление сообщения.
type MessageResponse struct {
	ID        uint   `json:"id"`
	Sender    string `json:"sender"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func NewMessageResponse(message *models.Message) MessageResponse {
	return MessageResponse{
		ID:        message.ID,
		Sender:    message.Sender.Username,
		Message:   message.Content,
		Timestamp: message.Timestamp.Format(timestampFormat),
	}
}
