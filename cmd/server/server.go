package server

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/thereayou/babbel/internal/database"
	"github.com/thereayou/babbel/internal/handlers"
	"github.com/thereayou/babbel/internal/services"
)

type Server struct {
	Router *gin.Engine
	DB     *database.Database
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	dbConn := &database.Database{}
	if err := dbConn.Connect(); err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	if os.Getenv("POPULATE_DB") != "false" {
		if err := dbConn.Populate(); err != nil {
			log.Fatalf("Populate failed: %v", err)
		}
	}

	messageSvc := services.NewMessageService(dbConn)

	userH := handlers.NewUserHandler(dbConn)
	messageH := handlers.NewMessageHandler(messageSvc)
	viewH := handlers.NewViewHandler(dbConn)

	router := gin.Default()
	APIEndpoints(router, dbConn, userH, messageH, viewH)

	return &Server{
		Router: router,
		DB:     dbConn,
	}
}

func (s *Server) Run() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on port %s", port)
	if err := s.Router.Run(":" + port); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}
