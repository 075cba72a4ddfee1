package main

import (
	"context"
	"flag"
	"log"
	"os"

	"k8s.io/klog/v2"

	"github.com/pathiram/backend/config"
	"github.com/pathiram/backend/internal/eventbus"
	"github.com/pathiram/backend/internal/handler"
	"github.com/pathiram/backend/internal/pkg/cache"
	"github.com/pathiram/backend/internal/pkg/database"
	"github.com/pathiram/backend/internal/pkg/docnumber"
	"github.com/pathiram/backend/internal/repository"
	"github.com/pathiram/backend/internal/router"
	"github.com/pathiram/backend/internal/service"
	"github.com/pathiram/backend/internal/service/exporter"
	"github.com/pathiram/backend/internal/subscriber"
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	klog.V(6).Info("server starting...")

	cfg := config.GetConfig()

	if err := os.MkdirAll(cfg.Data.Dir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	db, err := database.InitDB(cfg.Database.Type, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	docRepo := repository.NewDocumentRepository(db)
	locationRepo := repository.NewLocationRepository(db)

	lookupCache := cache.New(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
	defer lookupCache.Close()

	bus := eventbus.NewDocEventBus()
	subscriber.NewDocEventSubscriber().Register(bus)

	exp := exporter.NewDefault(exporter.Options{
		Fonts:         exporter.FontSet{Latin: cfg.Export.LatinFont, Tamil: cfg.Export.TamilFont},
		TamilFontPath: cfg.Export.TamilFontPath,
		LatinFontPath: cfg.Export.LatinFontPath,
	})

	previewService, err := service.NewPreviewService()
	if err != nil {
		log.Fatalf("Failed to load preview template: %v", err)
	}
	docService := service.NewDocumentService(cfg, docRepo, exp, docnumber.New(), bus)
	locationService := service.NewLocationService(locationRepo, lookupCache, cfg.Cache.TTL)

	seedLocations(locationService)

	previewHandler := handler.NewPreviewHandler(previewService, docService)
	docHandler := handler.NewDocumentHandler(docService)
	locationHandler := handler.NewLocationHandler(locationService)

	r := router.Setup(cfg, previewHandler, docHandler, locationHandler)

	log.Printf("Server starting on port %s...", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// seedLocations fills an empty location table from the bundled list.
func seedLocations(locationService *service.LocationService) {
	n, err := locationService.Seed(context.Background())
	if err != nil {
		klog.Warningf("seed locations: %v", err)
		return
	}
	if n > 0 {
		klog.V(6).Infof("seeded %d states", n)
	}
}
