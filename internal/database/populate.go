package database

import (
	"log"
	"time"

	"github.com/thereayou/babbel/internal/models"
)

// Populate заполняет пустую базу тестовыми пользователями и сообщениями.
// На непустой базе ничего не делает.
func (d *Database) Populate() error {
	count, err := d.CountUsers()
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("User table non-empty, not populating database")
		return nil
	}

	log.Println("Populating database with dummy data...")

	users := make(map[string]*models.User, 3)
	for _, name := range []string{"a", "b", "c"} {
		user := &models.User{Username: name, LastFetch: models.BeginningOfTime}
		if err := d.SaveUser(user); err != nil {
			return err
		}
		users[name] = user
	}

	messages := []*models.Message{
		{
			SenderID:   users["a"].ID,
			ReceiverID: users["b"].ID,
			Content:    "Hej, a skriver till b nu",
			Timestamp:  time.Now().UTC(),
		},
		{
			SenderID:   users["b"].ID,
			ReceiverID: users["c"].ID,
			Content:    "Hej från b till c i maj 2016",
			Timestamp:  time.Date(2016, 5, 7, 13, 37, 0, 0, time.UTC),
		},
		{
			SenderID:   users["b"].ID,
			ReceiverID: users["c"].ID,
			Content:    "Hej, b till c lite senare i maj 2016",
			Timestamp:  time.Date(2016, 5, 7, 14, 37, 0, 0, time.UTC),
		},
	}
	for _, message := range messages {
		if err := d.SaveMessage(message); err != nil {
			return err
		}
	}

	log.Println("Database has been populated")
	return nil
}
