package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/sahulat/backend/config"
	httpDelivery "github.com/sahulat/backend/internal/delivery/http"
	"github.com/sahulat/backend/internal/domain"
	"github.com/sahulat/backend/internal/infrastructure/openrouter"
	"github.com/sahulat/backend/internal/infrastructure/store"
	"github.com/sahulat/backend/internal/infrastructure/websearch"
	"github.com/sahulat/backend/internal/logger"
	"github.com/sahulat/backend/internal/usecase"
)

func main() {
	// Local development convenience; missing .env is fine
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.New(cfg.Server.Environment)
	log.WithFields(logrus.Fields{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"locale":      cfg.Locale.DefaultLocale,
	}).Info("Starting Sahulat Backend v1.0.0")

	// Infrastructure
	programStore := store.NewMemoryStore(store.SeedPrograms())

	completion := openrouter.NewClient(
		cfg.OpenRouter.APIKey,
		cfg.OpenRouter.BaseURL,
		cfg.OpenRouter.Referer,
		cfg.OpenRouter.Timeout,
		log.WithComponent("openrouter"),
	)
	if !completion.Configured() {
		log.Warn("OpenRouter API key not configured, responses will use the deterministic fallback")
	}

	var providers []websearch.Provider
	if cfg.Search.SerperAPIKey != "" {
		providers = append(providers, websearch.NewSerperProvider(
			cfg.Search.SerperAPIKey, cfg.Search.SerperBaseURL, cfg.Search.Timeout))
	} else {
		log.Warn("Serper API key not configured, web search falls back to DuckDuckGo only")
	}
	providers = append(providers, websearch.NewDuckDuckGoProvider(cfg.Search.DDGBaseURL, cfg.Search.Timeout))

	searchService := websearch.NewService(providers, cfg.Locale.DefaultCountry,
		log.WithComponent("websearch"))

	// Usecase layer
	extractor := usecase.NewProfileExtractor(cfg.Locale.DefaultCountry)
	profiles := usecase.NewProfileService()
	recommender := usecase.NewRecommendationService(completion, searchService,
		log.WithComponent("recommendation"))

	// Delivery
	handler := httpDelivery.NewHandler(
		extractor,
		profiles,
		recommender,
		programStore,
		programStore,
		domain.Locale(cfg.Locale.DefaultLocale),
		log.WithComponent("http"),
	)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.WithField("addr", addr).Info("Server listening")

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
