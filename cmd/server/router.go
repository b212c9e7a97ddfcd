package server

import (
	"github.com/gin-gonic/gin"
	"github.com/thereayou/babbel/internal/database"
	"github.com/thereayou/babbel/internal/handlers"
	"github.com/thereayou/babbel/internal/middleware"
)

func APIEndpoints(r *gin.Engine, db *database.Database, userH *handlers.UserHandler, messageH *handlers.MessageHandler, viewH *handlers.ViewHandler) {
	r.Use(middleware.RequestID())

	r.POST("/users", userH.CreateUser)

	// Отладочные страницы
	r.GET("/dates/", viewH.Dates)
	r.GET("/db/", viewH.DBDump)

	// Всё под /:username/ проходит через резолв пользователя: неизвестное имя — 404.
	user := r.Group("/:username", middleware.ResolveUser(db))
	{
		user.GET("/", viewH.Inbox)

		user.GET("/message/:id", messageH.GetMessage)
		user.POST("/message", messageH.SendMessage)
		user.DELETE("/message", messageH.DeleteMessages)
		user.DELETE("/message/:id", messageH.DeleteMessages)

		user.GET("/messages", messageH.ListMessages)
	}
}
