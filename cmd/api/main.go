package main

import (
	"log"

	"courierhub/internal/config"
	"courierhub/internal/domain/model"
	"courierhub/internal/handler"
	"courierhub/internal/identity"
	"courierhub/internal/infra/db"
	infraRepo "courierhub/internal/infra/repository"
	"courierhub/internal/logging"
	"courierhub/internal/pricing"
	"courierhub/internal/server"
	"courierhub/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, relying on process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.NewLogger(cfg.LogLevel)

	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	if err := gormDB.AutoMigrate(
		&model.SenderProfile{},
		&model.TravellerProfile{},
		&model.Order{},
		&model.Complaint{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	senderRepo := infraRepo.NewSenderGormRepository(gormDB)
	travellerRepo := infraRepo.NewTravellerGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	complaintRepo := infraRepo.NewComplaintGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	pricer := pricing.NewEngine(cfg.PriceMin, cfg.PriceMax)

	var provider identity.Provider
	switch cfg.AuthMode {
	case "http":
		provider = identity.NewHTTPProvider(cfg.AuthURL, cfg.AuthAPIKey)
	default:
		provider = identity.NewJWTProvider(cfg.JWTSecret)
	}
	if cfg.RedisAddr != "" {
		provider = identity.NewCachingProvider(provider, cfg.RedisAddr, cfg.RedisPassword, cfg.IdentityCacheTTL)
	}

	profileUC := usecase.NewProfileUsecase(senderRepo, travellerRepo)
	orderUC := usecase.NewOrderUsecase(txManager, orderRepo, senderRepo, travellerRepo, pricer)
	complaintUC := usecase.NewComplaintUsecase(txManager, complaintRepo, orderRepo, senderRepo, travellerRepo)

	profileH := handler.NewProfileHandler(profileUC)
	orderH := handler.NewOrderHandler(orderUC)
	complaintH := handler.NewComplaintHandler(complaintUC)
	priceH := handler.NewPriceHandler(orderUC)

	srv := server.New(cfg, logger, provider, profileH, orderH, complaintH, priceH)

	logger.Info("listening", "port", cfg.Port, "auth_mode", cfg.AuthMode)
	if err := srv.Start(); err != nil {
		log.Fatal(err)
	}
}
