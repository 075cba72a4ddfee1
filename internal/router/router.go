package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pathiram/backend/config"
	"github.com/pathiram/backend/internal/embed"
	"github.com/pathiram/backend/internal/handler"
)

func Setup(
	cfg *config.Config,
	previewHandler *handler.PreviewHandler,
	docHandler *handler.DocumentHandler,
	locationHandler *handler.LocationHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	api := r.Group("/api")
	{
		api.GET("/document-types", previewHandler.DocumentTypes)
		api.GET("/amount-words", previewHandler.AmountWords)
		api.POST("/preview/:type", previewHandler.Preview)
		api.POST("/export/:type", previewHandler.Export)

		docs := api.Group("/documents")
		{
			docs.POST("/:type", docHandler.Create)
			docs.GET("", docHandler.List)
			docs.GET("/:id", docHandler.Get)
			docs.PUT("/:id", docHandler.Update)
			docs.DELETE("/:id", docHandler.Delete)
			docs.GET("/:id/export", docHandler.Export)
		}
		api.GET("/document-numbers/:number", docHandler.GetByNumber)

		locations := api.Group("/locations")
		{
			locations.GET("/states", locationHandler.States)
			locations.GET("/states/:id/districts", locationHandler.Districts)
			locations.GET("/districts/:id/taluks", locationHandler.Taluks)
			locations.GET("/taluks/:id/villages", locationHandler.Villages)
		}
	}

	embed.SetupRouter(r)

	return r
}
