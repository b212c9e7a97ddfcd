package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thereayou/babbel/internal/handlers/dto"
	"github.com/thereayou/babbel/internal/middleware"
	"github.com/thereayou/babbel/internal/models"
	"github.com/thereayou/babbel/internal/services"
)

type MessageHandler struct {
	svc *services.MessageService
}

func NewMessageHandler(svc *services.MessageService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

// GetMessage обрабатывает GET /:username/message/:id.
func (h *MessageHandler) GetMessage(c *gin.Context) {
	user := currentUser(c)

	message, err := h.svc.FetchByID(user, c.Param("id"))
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse(message))
}

// SendMessage обрабатывает POST /:username/message.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	user := currentUser(c)

	var req dto.SendMessageRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.svc.Send(user, req.Receiver, req.Message); err != nil {
		c.Status(statusFromError(err))
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteMessages обрабатывает DELETE /:username/message и /:username/message/:id.
// id берётся из пути и/или из тела {"ids": [...]}; контракт нарочно огрублённый:
// хотя бы одно удаление прошло — 204, ни одного — 400. Поштучный исход не отдаётся.
func (h *MessageHandler) DeleteMessages(c *gin.Context) {
	user := currentUser(c)

	var rawIDs []string
	if raw := c.Param("id"); raw != "" {
		rawIDs = append(rawIDs, raw)
	}

	// Кривое или отсутствующее тело молча игнорируем, как и кривые id в списке.
	var req dto.DeleteMessagesRequest
	if err := c.ShouldBindJSON(&req); err == nil {
		for _, id := range req.IDs {
			rawIDs = append(rawIDs, strconv.FormatInt(id, 10))
		}
	}

	if h.svc.DeleteMany(user, rawIDs) == 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListMessages обрабатывает GET /:username/messages?start=&end=.
func (h *MessageHandler) ListMessages(c *gin.Context) {
	user := currentUser(c)

	var start, end *time.Time
	if raw, ok := c.GetQuery("start"); ok {
		t, err := services.ParseTimestamp(raw)
		if err != nil {
			c.Status(statusFromError(err))
			return
		}
		start = &t
	}
	if raw, ok := c.GetQuery("end"); ok {
		t, err := services.ParseTimestamp(raw)
		if err != nil {
			c.Status(statusFromError(err))
			return
		}
		end = &t
	}

	messages, err := h.svc.FetchRange(user, start, end)
	if err != nil {
		c.Status(statusFromError(err))
		return
	}

	result := make([]dto.MessageResponse, len(messages))
	for i := range messages {
		result[i] = dto.NewMessageResponse(&messages[i])
	}

	c.JSON(http.StatusOK, result)
}

func currentUser(c *gin.Context) *models.User {
	return c.MustGet(middleware.UserKey).(*models.User)
}

// Ошибки наружу уходят голым статусом, без тела.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, services.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
