package routes

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/johnper68/twilio-bot-occipedido/docs" // This will be auto-generated
	response "github.com/johnper68/twilio-bot-occipedido/internal/adapter/http/dto/response"
	"github.com/johnper68/twilio-bot-occipedido/internal/adapter/http/handlers"
	repository2 "github.com/johnper68/twilio-bot-occipedido/internal/adapter/persistence/repository"
	"github.com/johnper68/twilio-bot-occipedido/internal/infrastructure/appsheet"
	"github.com/johnper68/twilio-bot-occipedido/internal/usecase"
)

var router = gin.Default()

const defaultPort = "3000"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	err := router.Run(":" + port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	api, err := appsheet.NewClientFromEnv()
	if err != nil {
		log.Fatalf("Failed to configure the record store client: %v", err.Error())
	}

	productRepo := repository2.NewProductAppSheetRepository(api)
	orderRepo := repository2.NewOrderAppSheetRepository(api)
	sessions := repository2.NewSessionMemoryStore()

	orderUseCase := usecase.NewOrderUseCase(orderRepo, api.Locale())
	dialogueUseCase := usecase.NewDialogueUseCase(sessions, productRepo, orderUseCase, api.Locale())

	webhookHandler := handlers.NewWebhookHandler(dialogueUseCase)

	root := router.Group("/")
	addPingRoutes(root)
	addWebhookRoutes(root, webhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		// A panicked turn still answers the channel with a generic failure
		// reply instead of dropping the connection.
		log.Printf("Recovered from panic: %v", recovered)
		c.Data(http.StatusOK, response.TwiMLContentType, response.NewTwiML("❌ Ocurrió un error. Intenta más tarde.").Render())
		c.Abort()
	}))
}
