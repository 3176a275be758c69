package entities

// Profile is the single person record rendered on the public site. One row is
// seeded at startup; PUT replaces its fields in place.
type Profile struct {
	ContentBase
	Name      string `json:"name" gorm:"type:varchar(255);not null"`
	Title     string `json:"title" gorm:"type:varchar(255)"`
	Email     string `json:"email" gorm:"type:varchar(255)"`
	Phone     string `json:"phone" gorm:"type:varchar(50)"`
	AltPhone  string `json:"altPhone" gorm:"type:varchar(50)"`
	Location  string `json:"location" gorm:"type:varchar(255)"`
	Bio       string `json:"bio" gorm:"type:text"`
	AvatarURL string `json:"avatarUrl" gorm:"type:varchar(512)"`
	Github    string `json:"github" gorm:"type:varchar(512)"`
	Linkedin  string `json:"linkedin" gorm:"type:varchar(512)"`
	Whatsapp  string `json:"whatsapp" gorm:"type:varchar(512)"`
	CvURL     string `json:"cvUrl" gorm:"type:varchar(512)"`
}

// SiteSettings is a singleton row of site-wide display options.
type SiteSettings struct {
	ContentBase
	SiteTitle         string `json:"siteTitle" gorm:"type:varchar(255)"`
	MetaDescription   string `json:"metaDescription" gorm:"type:text"`
	GoogleAnalyticsID string `json:"googleAnalyticsId" gorm:"type:varchar(100)"`
	MaintenanceMode   bool   `json:"maintenanceMode" gorm:"default:false"`
}
