package cmd

import (
	"log"

	"github.com/folio/pkg/config"
	"github.com/folio/pkg/database"
	"github.com/folio/pkg/server"
	"github.com/folio/pkg/utils"
)

func StartApp() {
	utils.LoadEnv()
	config := config.InitConfig()
	database.InitDB(config.Database)
	if err := database.Seed(database.DBClient(), config.Admin); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
	server.LaunchHttpServer(config)
}
