package server

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/Depado/ginprom"
	"github.com/folio/app/api/routes"
	"github.com/folio/pkg/config"
	"github.com/folio/pkg/database"
	"github.com/folio/pkg/mailer"
	"github.com/folio/pkg/middleware"

	"github.com/folio/pkg/domains/auth"
	"github.com/folio/pkg/domains/content"
	"github.com/folio/pkg/domains/upload"
	"github.com/folio/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func LaunchHttpServer(cfg *config.Config) {
	log.Println("Starting HTTP Server...")
	gin.SetMode(gin.ReleaseMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		cv := utils.NewCustomValidator()
		v.RegisterValidation("isemail", cv.IsValidEmail)
		v.RegisterValidation("ishttpurl", cv.IsValidHttpURL)
	}

	app := gin.New()
	app.Use(gin.LoggerWithFormatter(func(log gin.LogFormatterParams) string {
		return fmt.Sprintf("[%s] - %s \"%s %s %s %d %s\"\n",
			log.TimeStamp.Format("2006-01-02 15:04:05"),
			log.ClientIP,
			log.Method,
			log.Path,
			log.Request.Proto,
			log.StatusCode,
			log.Latency,
		)
	}))
	app.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	app.Use(gin.Recovery())
	app.Use(otelgin.Middleware(cfg.App.Name))
	app.Use(middleware.ClaimIp())
	app.Use(middleware.SecurityHeaders())
	corsCfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With", "Origin", "Accept"},
		AllowOrigins:     []string{"*"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.Allows.Origins) > 0 {
		corsCfg.AllowOrigins = cfg.Allows.Origins
	}
	if len(cfg.Allows.Methods) > 0 {
		corsCfg.AllowMethods = cfg.Allows.Methods
	}
	if len(cfg.Allows.Headers) > 0 {
		corsCfg.AllowHeaders = cfg.Allows.Headers
	}
	app.Use(cors.New(corsCfg))

	p := ginprom.New(
		ginprom.Engine(app),
		ginprom.Subsystem("gin"),
		ginprom.Path("/metrics"),
		ginprom.Ignore("/docs/*any"),
	)
	app.Use(p.Instrument())

	app.Static("/static", "./web/static")
	app.LoadHTMLGlob("web/templates/*")

	db := database.DBClient()
	api := app.Group("/api/v1")

	checkAuth := middleware.CheckAuth(cfg.Auth.Secret)

	// Auth routes
	mail := mailer.FromConfig(cfg.Smtp)
	auth_repo := auth.NewRepo(db)
	auth_service := auth.NewService(auth_repo, cfg.Auth, cfg.App.BaseURL, mail)
	google := auth.NewGoogleProvider(cfg.OAuth)
	routes.AuthRoutes(api.Group("/auth"), auth_service, google, cfg.Auth)

	// Content routes
	content_repo := content.NewRepo(db)
	content_service := content.NewService(content_repo)
	routes.ContentRoutes(api, content_service, checkAuth)

	// Upload proxy
	upload_service := upload.NewService(cfg.Cloudinary)
	routes.UploadRoutes(api, upload_service, checkAuth)

	// HTML pages
	routes.PublicPages(app, content_service)
	routes.AdminPages(app, middleware.RouteGuard(cfg.Auth.Secret))

	fmt.Println("Server is running on port " + cfg.App.Port)
	if err := app.Run(net.JoinHostPort(cfg.App.Host, cfg.App.Port)); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
