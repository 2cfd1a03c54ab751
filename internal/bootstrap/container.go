package bootstrap

import (
	"fmt"

	"onemore-backend/internal/config"
	"onemore-backend/internal/controller"
	"onemore-backend/internal/pkg/logger"
	"onemore-backend/internal/repository"
	"onemore-backend/internal/service"
	"onemore-backend/pkg/llm"
	"onemore-backend/pkg/llm/openai"
)

// Container wires every dependency once at startup.
type Container struct {
	Logger logger.ILogger
	Store  *repository.DocumentStore

	AuthService service.IAuthService

	AuthController      controller.IAuthController
	RecordController    controller.IRecordController
	CatalogController   controller.ICatalogController
	WorkoutController   controller.IWorkoutController
	NutritionController controller.INutritionController
	SocialController    controller.ISocialController
	ChatbotController   controller.IChatbotController
}

func NewContainer(cfg *config.Config, log logger.ILogger) (*Container, error) {
	store, err := repository.OpenDocumentStore(cfg.App.DataFilePath, log)
	if err != nil {
		return nil, fmt.Errorf("open document store: %w", err)
	}

	// No credential means the chatbot runs on the local fallback only.
	var llmProvider llm.LLMProvider
	if cfg.Ai.Enabled() {
		llmProvider = openai.NewProvider(cfg.Ai.APIKey, cfg.Ai.BaseURL, cfg.Ai.Model, cfg.Ai.Timeout, cfg.Ai.SiteURL, cfg.Ai.AppName)
	}

	authService := service.NewAuthService(store, cfg, log)
	recordService := service.NewRecordService(store)
	catalogService := service.NewCatalogService(store)
	workoutService := service.NewWorkoutService(store)
	nutritionService := service.NewNutritionService(store)
	socialService := service.NewSocialService(store)
	chatbotService := service.NewChatbotService(store, llmProvider, cfg.Ai.Timeout, log)

	return &Container{
		Logger: log,
		Store:  store,

		AuthService: authService,

		AuthController:      controller.NewAuthController(authService),
		RecordController:    controller.NewRecordController(recordService),
		CatalogController:   controller.NewCatalogController(catalogService),
		WorkoutController:   controller.NewWorkoutController(workoutService),
		NutritionController: controller.NewNutritionController(nutritionService),
		SocialController:    controller.NewSocialController(socialService),
		ChatbotController:   controller.NewChatbotController(chatbotService),
	}, nil
}
