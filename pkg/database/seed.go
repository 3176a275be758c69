package database

import (
	"errors"
	"log"

	"github.com/folio/pkg/config"
	"github.com/folio/pkg/entities"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed creates the initial admin user and a default profile when the tables
// are empty. Existing rows are never touched.
func Seed(db *gorm.DB, admin config.Admin) error {
	if admin.Email != "" {
		var user entities.User
		err := db.Where("email = ?", admin.Email).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			user = entities.User{
				Email:    admin.Email,
				Name:     admin.Name,
				Password: string(hash),
			}
			if err := db.Create(&user).Error; err != nil {
				return err
			}
			log.Printf("[info] admin user created: %s (change the seed password after first login)", admin.Email)
		} else if err != nil {
			return err
		}
	}

	var count int64
	if err := db.Model(&entities.Profile{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		profile := entities.Profile{
			Name:  admin.Name,
			Title: "Software Developer",
			Email: admin.Email,
		}
		if err := db.Create(&profile).Error; err != nil {
			return err
		}
		log.Printf("[info] default profile created")
	}

	return nil
}
