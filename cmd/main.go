package main

import (
	"log"

	"github.com/arianmtabibian/nutrition-app-sub000/config"
	"github.com/arianmtabibian/nutrition-app-sub000/routes"
	"github.com/arianmtabibian/nutrition-app-sub000/services"
	"github.com/arianmtabibian/nutrition-app-sub000/utils"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	config.InitDB()
	utils.InitS3()

	bus := services.NewRefreshBus()
	hub := services.NewRealtimeHub()
	bus.Subscribe(hub.BroadcastRefresh)

	r := routes.SetupRouter(bus, hub, logger)

	logger.Info("server starting", zap.String("addr", ":8080"))
	if err := r.Run(":8080"); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
