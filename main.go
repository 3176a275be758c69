package main

import (
	"github.com/folio/app/cmd"
)

// @title Portfolio CMS API
// @version 1.0
// @description Public portfolio content API with a session-gated admin panel.

// @host  localhost:8000
// @BasePath /api/v1

func main() {
	cmd.StartApp()
}
