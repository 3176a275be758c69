package database

import (
	"github.com/folio/pkg/entities"
	"gorm.io/gorm"
)

// AutoMigrate runs database migrations
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.User{},
		&entities.Profile{},
		&entities.Project{},
		&entities.Testimonial{},
		&entities.Skill{},
		&entities.Education{},
		&entities.Experience{},
		&entities.Service{},
		&entities.SiteSettings{},
	)
}
