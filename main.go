package main

import (
	"github.com/glowmate/api/app/cmd"

	_ "github.com/glowmate/api/docs"
)

// @title GlowMate API
// @version 1.0
// @description Skincare product catalog, reviews and waitlist API with token based authentication.

// @host  localhost:8000
// @BasePath /api/v1

func main() {
	cmd.StartApp()
}
