package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App        App        `yaml:"app"`
	Database   Database   `yaml:"database"`
	Auth       Auth       `yaml:"auth"`
	Smtp       Smtp       `yaml:"smtp"`
	OAuth      OAuth      `yaml:"oauth"`
	Cloudinary Cloudinary `yaml:"cloudinary"`
	Admin      Admin      `yaml:"admin"`
	Allows     Allows     `yaml:"allows"`
}

type App struct {
	Name    string `yaml:"name"`
	Port    string `yaml:"port"`
	Host    string `yaml:"host"`
	BaseURL string `yaml:"base_url"`
}

type Database struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
	Name string `yaml:"name"`
}

type Auth struct {
	Secret          string `yaml:"secret"`
	TokenTTLHours   int    `yaml:"token_ttl_hours"`
	ResetTTLMinutes int    `yaml:"reset_ttl_minutes"`
	SecureCookies   bool   `yaml:"secure_cookies"`
}

type Smtp struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
	From string `yaml:"from"`
}

type OAuth struct {
	GoogleClientID     string `yaml:"google_client_id"`
	GoogleClientSecret string `yaml:"google_client_secret"`
	GoogleRedirectURL  string `yaml:"google_redirect_url"`
}

type Cloudinary struct {
	CloudName    string `yaml:"cloud_name"`
	UploadPreset string `yaml:"upload_preset"`
}

// Admin seeds the initial administrator account on first boot.
type Admin struct {
	Email    string `yaml:"email"`
	Name     string `yaml:"name"`
	Password string `yaml:"password"`
}

type Allows struct {
	Methods []string `yaml:"methods"`
	Origins []string `yaml:"origins"`
	Headers []string `yaml:"headers"`
}

func InitConfig() *Config {
	var configs Config
	file_name, _ := filepath.Abs("./config.yaml")
	yaml_file, _ := os.ReadFile(file_name)
	yaml.Unmarshal(yaml_file, &configs)

	// Override with environment variables if they exist (for Docker)
	if dbHost := os.Getenv("DB_HOST"); dbHost != "" {
		configs.Database.Host = dbHost
	}
	if dbPort := os.Getenv("DB_PORT"); dbPort != "" {
		configs.Database.Port = dbPort
	}
	if dbUser := os.Getenv("DB_USER"); dbUser != "" {
		configs.Database.User = dbUser
	}
	if dbPassword := os.Getenv("DB_PASSWORD"); dbPassword != "" {
		configs.Database.Pass = dbPassword
	}
	if dbName := os.Getenv("DB_NAME"); dbName != "" {
		configs.Database.Name = dbName
	}

	if appHost := os.Getenv("APP_HOST"); appHost != "" {
		configs.App.Host = appHost
	}
	if appPort := os.Getenv("APP_PORT"); appPort != "" {
		configs.App.Port = appPort
	}
	if appName := os.Getenv("APP_NAME"); appName != "" {
		configs.App.Name = appName
	}
	if baseURL := os.Getenv("BASE_URL"); baseURL != "" {
		configs.App.BaseURL = baseURL
	}

	if secret := os.Getenv("SECRET"); secret != "" {
		configs.Auth.Secret = secret
	}

	if smtpHost := os.Getenv("SMTP_HOST"); smtpHost != "" {
		configs.Smtp.Host = smtpHost
	}
	if smtpUser := os.Getenv("SMTP_USER"); smtpUser != "" {
		configs.Smtp.User = smtpUser
	}
	if smtpPass := os.Getenv("SMTP_PASSWORD"); smtpPass != "" {
		configs.Smtp.Pass = smtpPass
	}

	if clientID := os.Getenv("GOOGLE_CLIENT_ID"); clientID != "" {
		configs.OAuth.GoogleClientID = clientID
	}
	if clientSecret := os.Getenv("GOOGLE_CLIENT_SECRET"); clientSecret != "" {
		configs.OAuth.GoogleClientSecret = clientSecret
	}

	if cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME"); cloudName != "" {
		configs.Cloudinary.CloudName = cloudName
	}
	if preset := os.Getenv("CLOUDINARY_UPLOAD_PRESET"); preset != "" {
		configs.Cloudinary.UploadPreset = preset
	}

	if configs.Auth.TokenTTLHours == 0 {
		configs.Auth.TokenTTLHours = 24
	}
	if configs.Auth.ResetTTLMinutes == 0 {
		configs.Auth.ResetTTLMinutes = 60
	}
	if configs.App.BaseURL == "" {
		configs.App.BaseURL = "http://localhost:" + configs.App.Port
	}

	return &configs
}
