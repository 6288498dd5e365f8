package routes

import (
	"log"
	"os"
	"strconv"

	_ "construfin/docs" // swagger docs registration
	"construfin/internal/adapter/http/handlers"
	"construfin/internal/adapter/persistence/repository"
	"construfin/internal/infrastructure/audit"
	"construfin/internal/infrastructure/database"
	"construfin/internal/infrastructure/forecast"
	"construfin/internal/infrastructure/notify"
	"construfin/internal/infrastructure/payments"
	"construfin/internal/usecase"
	"construfin/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	queue := getRoutes()
	defer queue.Close()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() *usecase.RecalcQueue {
	ddb := database.ConnectDynamoDB()

	projectRepo := repository.NewProjectDynamoRepository(ddb)
	phaseRepo := repository.NewPhaseDynamoRepository(ddb)
	orderRepo := repository.NewPurchaseOrderDynamoRepository(ddb)
	labourRepo := repository.NewLabourDynamoRepository(ddb)
	feeRepo := repository.NewProfessionalFeeDynamoRepository(ddb)
	investorRepo := repository.NewInvestorDynamoRepository(ddb)

	tx := repository.NewDynamoTransactionCoordinator(ddb)
	ledger := repository.NewSpendingLedgerStore()

	capitalValidator := usecase.NewCapitalValidator(projectRepo)
	budgetValidator := usecase.NewBudgetValidator(projectRepo, phaseRepo)

	forecastProvider := forecast.NewHTTPForecastProvider()
	engine := usecase.NewRecalculationUseCase(projectRepo, phaseRepo, forecastProvider)
	queue := usecase.NewRecalcQueue(engine, 0)

	auditRecorder := audit.NewDynamoAuditRecorder(ddb)
	notifier := notify.NewLogNotifier()
	advisor := usecase.NewRejectionRetryAdvisor()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	projectUseCase := usecase.NewProjectUseCase(projectRepo, phaseRepo, queue)
	phaseUseCase := usecase.NewPhaseUseCase(phaseRepo, projectRepo, queue)
	orderUseCase := usecase.NewPurchaseOrderUseCase(orderRepo, capitalValidator, ledger, tx, engine, advisor, auditRecorder, notifier)
	labourUseCase := usecase.NewLabourUseCase(labourRepo, budgetValidator, ledger, tx, queue, auditRecorder, notifier)
	feeUseCase := usecase.NewProfessionalFeeUseCase(feeRepo, tx, paymentGateway, auditRecorder, notifier)
	investorUseCase := usecase.NewInvestorAllocationUseCase(investorRepo, projectRepo, capitalValidator, tx, queue)

	projectHandler := handlers.NewProjectHandler(projectUseCase)
	phaseHandler := handlers.NewPhaseHandler(phaseUseCase)
	orderHandler := handlers.NewPurchaseOrderHandler(orderUseCase)
	labourHandler := handlers.NewLabourHandler(labourUseCase)
	feeHandler := handlers.NewProfessionalFeeHandler(feeUseCase)
	investorHandler := handlers.NewInvestorHandler(investorUseCase)
	recalcHandler := handlers.NewRecalculationHandler(engine)
	validationHandler := handlers.NewValidationHandler(capitalValidator, budgetValidator)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addFinanceRoutes(v1, financeHandlers{
		projects:   projectHandler,
		phases:     phaseHandler,
		orders:     orderHandler,
		labour:     labourHandler,
		fees:       feeHandler,
		investors:  investorHandler,
		recalc:     recalcHandler,
		validation: validationHandler,
	})

	return queue
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
