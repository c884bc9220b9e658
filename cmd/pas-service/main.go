package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mercuryins/pas-service/internal/auth"
	"github.com/mercuryins/pas-service/internal/config"
	"github.com/mercuryins/pas-service/internal/db"
	"github.com/mercuryins/pas-service/internal/excel"
	httphandler "github.com/mercuryins/pas-service/internal/http"
	"github.com/mercuryins/pas-service/internal/http/middleware"
	"github.com/mercuryins/pas-service/internal/logger"
	"github.com/mercuryins/pas-service/internal/pdf"
	"github.com/mercuryins/pas-service/internal/repository"
	"github.com/mercuryins/pas-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	if err := db.Seed(context.Background(), database, log); err != nil {
		log.Fatal().Err(err).Msg("failed to seed users")
	}

	userRepo := repository.NewUserRepository(database)
	vehicleRepo := repository.NewVehicleRepository(database)
	quoteRepo := repository.NewQuoteRepository(database)
	policyRepo := repository.NewPolicyRepository(database)
	claimRepo := repository.NewClaimRepository(database)

	tokens := auth.NewTokenManager(cfg.Auth.AccessSecret, cfg.Auth.AccessTTL)
	policySeq := service.NewPolicyNumberSeq()
	rating := service.NewRatingEngine()

	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo)
	quoteService := service.NewQuoteService(quoteRepo, policyRepo, userRepo, vehicleRepo, rating, policySeq)
	policyService := service.NewPolicyService(
		policyRepo, quoteRepo, userRepo, vehicleRepo, claimRepo,
		policySeq, pdf.NewGenerator(), excel.NewGenerator(),
	)
	claimService := service.NewClaimService(claimRepo, policyRepo, userRepo)

	handler := httphandler.NewHandler(authService, userService, quoteService, policyService, claimService, log)
	authMiddleware := middleware.Auth(tokens)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting pas service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
