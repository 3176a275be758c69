package dtos

type ProjectDTO struct {
	Title       string   `json:"title" binding:"required"`
	Category    string   `json:"category"`
	Categories  []string `json:"categories"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl" binding:"omitempty,ishttpurl"`
	WebpURL     string   `json:"webpUrl" binding:"omitempty,ishttpurl"`
	DemoURL     string   `json:"demoUrl" binding:"omitempty,ishttpurl"`
	GithubURL   string   `json:"githubUrl" binding:"omitempty,ishttpurl"`
	IsActive    *bool    `json:"isActive"`
	Order       int      `json:"order"`
}

type TestimonialDTO struct {
	Name        string `json:"name" binding:"required"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Text        string `json:"text" binding:"required"`
	LinkedinURL string `json:"linkedinUrl" binding:"omitempty,ishttpurl"`
	AvatarURL   string `json:"avatarUrl" binding:"omitempty,ishttpurl"`
	IsActive    *bool  `json:"isActive"`
}

type SkillDTO struct {
	Name       string `json:"name" binding:"required"`
	Percentage *int   `json:"percentage"`
	Category   string `json:"category"`
	IconURL    string `json:"iconUrl" binding:"omitempty,ishttpurl"`
	Order      int    `json:"order"`
}

type EducationDTO struct {
	Institution string `json:"institution" binding:"required"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Order       int    `json:"order"`
}

type ExperienceDTO struct {
	JobTitle    string `json:"jobTitle" binding:"required"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type ServiceDTO struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	IconKey     string `json:"iconKey"`
	Order       int    `json:"order"`
}

type ProfileDTO struct {
	Name      string `json:"name" binding:"required"`
	Title     string `json:"title"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	AltPhone  string `json:"altPhone"`
	Location  string `json:"location"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatarUrl" binding:"omitempty,ishttpurl"`
	Github    string `json:"github"`
	Linkedin  string `json:"linkedin"`
	Whatsapp  string `json:"whatsapp"`
	CvURL     string `json:"cvUrl" binding:"omitempty,ishttpurl"`
}

type SiteSettingsDTO struct {
	SiteTitle         string `json:"siteTitle"`
	MetaDescription   string `json:"metaDescription"`
	GoogleAnalyticsID string `json:"googleAnalyticsId"`
	MaintenanceMode   *bool  `json:"maintenanceMode"`
}

type UploadResultDTO struct {
	URL          string `json:"url"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Format       string `json:"format"`
	ResourceType string `json:"resource_type"`
}
