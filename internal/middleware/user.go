package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thereayou/babbel/internal/database"
)

const UserKey = "user"

// ResolveUser разрешает :username из пути в пользователя и кладёт его в контекст.
// Неизвестное имя — 404 до вызова обработчика.
func ResolveUser(db *database.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")

		user, err := db.FindUserByUsername(username)
		if err != nil {
			log.Printf("User %q does not exist, returning 404", username)
			c.AbortWithStatus(http.StatusNotFound)
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}
