package routes

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	_ "gardenroom-billing/docs" // generated swagger docs
	"gardenroom-billing/internal/adapter/http/handlers"
	"gardenroom-billing/internal/adapter/persistence/repository"
	"gardenroom-billing/internal/domain/pricing"
	"gardenroom-billing/internal/infrastructure/database"
	"gardenroom-billing/internal/usecase"
	"gardenroom-billing/internal/usecase/interfaces"

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

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	quoteRepo, paymentRepo, seqRepo := buildRepositories()

	estimator := pricing.NewEstimator(pricing.DefaultPriceList())
	allocator := usecase.NewQuoteNumberAllocator(seqRepo)

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, estimator, allocator)
	ledgerUseCase := usecase.NewPaymentLedgerUseCase(paymentRepo, quoteRepo)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	paymentHandler := handlers.NewPaymentHandler(ledgerUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, quoteHandler, paymentHandler)
}

// buildRepositories selects the storage backend at composition time.
// Both backends implement the same repository interfaces; nothing above
// this function knows which store is in play.
func buildRepositories() (interfaces.IQuoteRepository, interfaces.IPaymentHistoryRepository, interfaces.ISequenceRepository) {
	backend := strings.ToLower(strings.TrimSpace(getenvDefault("STORAGE_BACKEND", "dynamodb")))
	switch backend {
	case "mysql":
		db := database.ConnectMySQL()
		if err := repository.AutoMigrateMySQL(db); err != nil {
			log.Fatalf("mysql migration failed: %v", err)
		}
		log.Printf("[storage] using mysql backend")
		return repository.NewQuoteMySQLRepository(db),
			repository.NewPaymentHistoryMySQLRepository(db),
			repository.NewSequenceMySQLRepository(db)
	case "dynamodb":
		ddb := database.ConnectDynamoDB()
		log.Printf("[storage] using dynamodb backend")
		return repository.NewQuoteDynamoRepository(ddb),
			repository.NewPaymentHistoryDynamoRepository(ddb),
			repository.NewSequenceDynamoRepository(ddb)
	default:
		log.Fatalf("unknown STORAGE_BACKEND %q (want dynamodb or mysql)", backend)
		return nil, nil, nil
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
