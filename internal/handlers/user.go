package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thereayou/babbel/internal/database"
	"github.com/thereayou/babbel/internal/handlers/dto"
	"github.com/thereayou/babbel/internal/models"
)

type UserHandler struct {
	db *database.Database
}

func NewUserHandler(db *database.Database) *UserHandler {
	return &UserHandler{db: db}
}

// CreateUser обрабатывает POST /users. Имя пользователя — вся его "учётка".
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user := &models.User{
		Username:  req.Username,
		LastFetch: models.BeginningOfTime,
	}

	// Единственная причина падения на практике — дубликат имени.
	if err := h.db.SaveUser(user); err != nil {
		log.Printf("Failed to create user %q: %v", req.Username, err)
		c.Status(http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       user.ID,
		"username": user.Username,
	})
}
