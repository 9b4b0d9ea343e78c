package main

import (
	"github.com/joho/godotenv"

	"misteri/internal/recipes/handler"
	"misteri/internal/recipes/repository"
	"misteri/internal/recipes/service"
	"misteri/internal/recipes/validator"
	"misteri/pkg/app"
	"misteri/pkg/client"
	"misteri/pkg/config"
	"misteri/pkg/events"
)

const ServiceName = "recipes"

func main() {
	// a missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	cfg := config.Load(ServiceName)
	cfg.Log.Info("Starting Recipes service")

	recipeAPI := client.NewHttpClient(cfg.RecipeAPIBaseURL, cfg.UpstreamTimeout)
	profileAPI := client.NewHttpClient(cfg.ProfileAPIBaseURL, cfg.UpstreamTimeout).
		WithHeader("Accept", "application/vnd.github+json").
		WithHeader("User-Agent", ServiceName)
	if cfg.ProfileAPIToken != "" {
		profileAPI.WithHeader("Authorization", "Bearer "+cfg.ProfileAPIToken)
	}

	publisher := initPublisher(cfg)
	recipeService, profileService := initServices(cfg, recipeAPI, profileAPI, publisher)

	healthHandler := handler.NewHealthHandler(map[string]handler.Pinger{
		repository.RecipeAPI:  client.Probe{Client: recipeAPI, Path: "/categories.php"},
		repository.ProfileAPI: client.Probe{Client: profileAPI, Path: "/rate_limit"},
	}, cfg.Log)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(healthHandler,
		handler.NewRecipeHandler(recipeService, cfg.Log),
		handler.NewProfileHandler(profileService, cfg.Log),
	)
	serverApp.OnShutdown("events", publisher)
	serverApp.Run()
}

func initPublisher(cfg *config.Config) events.Publisher {
	if !cfg.EventsEnabled() {
		cfg.Log.Info("Event publishing disabled, no Kafka brokers configured")
		return events.NoopPublisher{}
	}

	producer, err := events.NewProducer(cfg)
	if err != nil {
		cfg.Log.Fatal("Failed to create event producer", "error", err)
	}
	producer.Use(events.LoggingMiddleware(cfg.Log.With("component", "events")))

	cfg.Log.Info("Event publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	return producer
}

func initServices(
	cfg *config.Config,
	recipeAPI, profileAPI repository.Getter,
	publisher events.Publisher,
) (service.RecipeService, service.ProfileService) {
	viewValidator := validator.NewViewValidator(cfg.Log)

	recipeService := service.NewRecipeService(
		repository.NewHttpRecipeRepository(recipeAPI),
		viewValidator,
		publisher,
		cfg,
	)
	profileService := service.NewProfileService(
		repository.NewHttpProfileRepository(profileAPI),
		viewValidator,
		cfg,
	)

	cfg.Log.Info("Recipes service initialized",
		"recipe_api", cfg.RecipeAPIBaseURL,
		"profile_api", cfg.ProfileAPIBaseURL,
	)
	return recipeService, profileService
}
