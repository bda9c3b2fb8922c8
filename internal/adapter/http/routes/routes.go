package routes

import (
	"log"
	"strconv"

	_ "fiscalai/docs" // swag generated documentation
	"fiscalai/internal/adapter/http/handlers"
	"fiscalai/internal/adapter/http/validators"
	repository "fiscalai/internal/adapter/persistence/repository"
	"fiscalai/internal/config"
	"fiscalai/internal/infrastructure/assistant"
	"fiscalai/internal/infrastructure/database"
	"fiscalai/internal/infrastructure/email"
	"fiscalai/internal/infrastructure/nuvemfiscal"
	"fiscalai/internal/usecase"
	"fiscalai/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()
	validators.Register()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	cfg := config.Load()
	ddb := database.ConnectDynamoDB()

	companyRepo := repository.NewCompanyDynamoRepository(ddb)
	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb)
	statusRepo := repository.NewIntegrationStatusDynamoRepository(ddb)
	notificationRepo := repository.NewNotificationDynamoRepository(ddb)

	fiscalGateway := nuvemfiscal.NewClient(cfg.NuvemFiscal, nuvemfiscal.NewTokenProvider(cfg.NuvemFiscal))

	var assistantGateway interfaces.IAssistantGateway
	if ag, err := assistant.NewOpenAIAssistant(cfg.OpenAI); err != nil {
		log.Printf("Assistant gateway not configured: %v", err)
	} else {
		assistantGateway = ag
	}

	var emailSender interfaces.IEmailSender
	if es, err := email.NewClient(cfg.Email); err != nil {
		log.Printf("Email integration not configured: %v", err)
	} else {
		emailSender = es
	}

	companyUseCase := usecase.NewCompanyUseCase(companyRepo, fiscalGateway)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, companyRepo, notificationRepo, fiscalGateway)
	connectionUseCase := usecase.NewConnectionUseCase(statusRepo, companyRepo, fiscalGateway)
	webhookUseCase := usecase.NewWebhookUseCase(cfg.Webhook.PagarmeSecret, notificationRepo)
	assistantUseCase := usecase.NewAssistantUseCase(assistantGateway)
	emailUseCase := usecase.NewEmailUseCase(emailSender)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)

	companyHandler := handlers.NewCompanyHandler(companyUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	connectionHandler := handlers.NewConnectionHandler(connectionUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)
	assistantHandler := handlers.NewAssistantHandler(assistantUseCase)
	emailHandler := handlers.NewEmailHandler(emailUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addFiscalRoutes(v1, companyHandler, invoiceHandler, connectionHandler)
	addIntegrationRoutes(v1, webhookHandler, assistantHandler, emailHandler, notificationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
