package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/e-campus-bff/config"
	"github.com/vnkhanh/e-campus-bff/middleware"
	"github.com/vnkhanh/e-campus-bff/routes"
	"github.com/vnkhanh/e-campus-bff/services"
)

func main() {
	cfg := config.LoadConfig()

	services.Upstream = services.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)
	middleware.InitMetrics()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r = routes.SetupRouter(r)

	log.Println("Proxying upstream at " + cfg.UpstreamBaseURL)
	log.Println("Server running at Port:" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
