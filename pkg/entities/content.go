package entities

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentBase gives content records a generated string id and timestamps.
type ContentBase struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *ContentBase) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// StringList stores a list of tags as comma-joined text.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return strings.Join(l, ","), nil
}

func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
	case string:
		if v == "" {
			*l = nil
		} else {
			*l = strings.Split(v, ",")
		}
	case []byte:
		return l.Scan(string(v))
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
	return nil
}

func (StringList) GormDataType() string {
	return "text"
}

type Project struct {
	ContentBase
	Title       string     `json:"title" gorm:"type:varchar(255);not null"`
	Category    string     `json:"category" gorm:"type:varchar(100)"`
	Categories  StringList `json:"categories"`
	Description string     `json:"description" gorm:"type:text"`
	ImageURL    string     `json:"imageUrl" gorm:"type:varchar(512)"`
	WebpURL     string     `json:"webpUrl" gorm:"type:varchar(512)"`
	DemoURL     string     `json:"demoUrl" gorm:"type:varchar(512)"`
	GithubURL   string     `json:"githubUrl" gorm:"type:varchar(512)"`
	IsActive    bool       `json:"isActive" gorm:"default:true"`
	Order       int        `json:"order" gorm:"column:display_order;default:0"`
}

type Testimonial struct {
	ContentBase
	Name        string `json:"name" gorm:"type:varchar(255);not null"`
	Role        string `json:"role" gorm:"type:varchar(255)"`
	Company     string `json:"company" gorm:"type:varchar(255)"`
	Text        string `json:"text" gorm:"type:text;not null"`
	LinkedinURL string `json:"linkedinUrl" gorm:"type:varchar(512)"`
	AvatarURL   string `json:"avatarUrl" gorm:"type:varchar(512)"`
	IsActive    bool   `json:"isActive" gorm:"default:true"`
}

type Skill struct {
	ContentBase
	Name       string `json:"name" gorm:"type:varchar(255);not null"`
	Percentage int    `json:"percentage" gorm:"default:75"`
	Category   string `json:"category" gorm:"type:varchar(100)"`
	IconURL    string `json:"iconUrl" gorm:"type:varchar(512)"`
	Order      int    `json:"order" gorm:"column:display_order;default:0"`
}

type Education struct {
	ContentBase
	Institution string `json:"institution" gorm:"type:varchar(255);not null"`
	Degree      string `json:"degree" gorm:"type:varchar(255)"`
	Field       string `json:"field" gorm:"type:varchar(255)"`
	StartDate   string `json:"startDate" gorm:"type:varchar(50)"`
	EndDate     string `json:"endDate" gorm:"type:varchar(50)"`
	Order       int    `json:"order" gorm:"column:display_order;default:0"`
}

type Experience struct {
	ContentBase
	JobTitle    string `json:"jobTitle" gorm:"type:varchar(255);not null"`
	Company     string `json:"company" gorm:"type:varchar(255)"`
	StartDate   string `json:"startDate" gorm:"type:varchar(50)"`
	EndDate     string `json:"endDate" gorm:"type:varchar(50)"`
	Description string `json:"description" gorm:"type:text"`
	Order       int    `json:"order" gorm:"column:display_order;default:0"`
}

type Service struct {
	ContentBase
	Title       string `json:"title" gorm:"type:varchar(255);not null"`
	Description string `json:"description" gorm:"type:text"`
	IconKey     string `json:"iconKey" gorm:"type:varchar(50)"`
	Order       int    `json:"order" gorm:"column:display_order;default:0"`
}
