package cmd

import (
	"github.com/glowmate/api/pkg/config"
	"github.com/glowmate/api/pkg/database"
	"github.com/glowmate/api/pkg/redis"
	"github.com/glowmate/api/pkg/server"
	"github.com/glowmate/api/pkg/utils"
)

func StartApp() {
	utils.LoadEnv()
	cfg := config.InitConfig()
	database.InitDB(cfg.Database)
	redis.InitRedis(cfg.Redis)
	server.LaunchHttpServer(cfg)
}
