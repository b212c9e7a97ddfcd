package database

import (
	"time"

	"github.com/thereayou/babbel/internal/models"
)

func (d *Database) SaveUser(user *models.User) error {
	if err := d.db.Create(user).Error; err != nil {
		return err
	}
	return nil
}

func (d *Database) FindUserByUsername(username string) (*models.User, error) {
	user := models.User{}
	if err := d.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *Database) UpdateLastFetch(id uint, t time.Time) error {
	return d.db.Model(&models.User{}).Where("id = ?", id).Update("last_fetch", t).Error
}

func (d *Database) CountUsers() (int64, error) {
	var count int64
	err := d.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

func (d *Database) GetAllUsers() ([]models.User, error) {
	var users []models.User
	err := d.db.Order("id ASC").Find(&users).Error
	return users, err
}
