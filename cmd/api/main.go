package main

import (
	"github.com/daniilsm/sickday-go/internal/api/middleware"
	"github.com/daniilsm/sickday-go/internal/api/routes"
	"github.com/daniilsm/sickday-go/internal/config"
	"github.com/daniilsm/sickday-go/internal/db"
	"github.com/daniilsm/sickday-go/internal/storage"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	middleware.Init()
	db.Init()
	storage.InitMinio()

	r := gin.Default()
	routes.RegisterRoutes(r, db.DB)
	r.Run(":" + config.ServerPort)
}
