package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/priyansh/carmitra/internal/api"
	"github.com/priyansh/carmitra/internal/api/controller"
	"github.com/priyansh/carmitra/internal/config"
	"github.com/priyansh/carmitra/internal/infrastructure/llm"
	"github.com/priyansh/carmitra/internal/service"
	"github.com/priyansh/carmitra/internal/session"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// A local .env may carry CARMITRA_GROQ_API_KEY; absence is fine.
	_ = godotenv.Load()

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if conf.Groq.APIKey == "" {
		log.Fatal("groq api key is not set (config.yaml groq.api_key or CARMITRA_GROQ_API_KEY)")
	}

	provider := llm.NewGroqClient(
		conf.Groq.APIKey,
		conf.Groq.BaseURL,
		conf.Groq.Model,
		conf.Groq.Temperature,
		conf.Groq.MaxTokens,
		conf.Groq.TopP,
	)

	sessions := session.NewManager()

	ctrls := api.Controllers{
		Policy:       controller.NewPolicyController(service.NewPolicyService(provider)),
		Finance:      controller.NewFinanceController(service.NewFinanceService(provider)),
		Depreciation: controller.NewDepreciationController(service.NewDepreciationService(provider)),
		Comparison:   controller.NewComparisonController(service.NewComparisonService(provider)),
		Browser:      controller.NewBrowserController(service.NewBrowserService(provider)),
		FinePrint:    controller.NewFinePrintController(service.NewFinePrintService(provider)),
		Insights:     controller.NewInsightsController(service.NewInsightsService(provider)),
		Assistant:    controller.NewAssistantController(service.NewAssistantService(provider)),
	}

	r := gin.Default()
	api.RegisterRoutes(r, sessions, ctrls)

	slog.Info("carmitra server starting", "port", conf.Server.Port, "model", conf.Groq.Model)
	if err := r.Run(conf.Server.Port); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
