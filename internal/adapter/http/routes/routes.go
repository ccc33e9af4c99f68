package routes

import (
	"log"
	"os"
	"strconv"

	_ "github.com/925PRESSUREGLASS/webapp-sub000/docs" // This will be auto-generated
	"github.com/925PRESSUREGLASS/webapp-sub000/internal/adapter/http/handlers"
	repository2 "github.com/925PRESSUREGLASS/webapp-sub000/internal/adapter/persistence/repository"
	"github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/catalog"
	"github.com/925PRESSUREGLASS/webapp-sub000/internal/domain/pricing"
	"github.com/925PRESSUREGLASS/webapp-sub000/internal/infrastructure/database"
	"github.com/925PRESSUREGLASS/webapp-sub000/internal/infrastructure/payments"
	"github.com/925PRESSUREGLASS/webapp-sub000/internal/usecase"
	"github.com/925PRESSUREGLASS/webapp-sub000/internal/usecase/interfaces"

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
	ddb := database.ConnectDynamoDB()

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	numberingRepo := repository2.NewNumberingDynamoRepository(ddb)

	cat := catalog.New()
	calc := pricing.NewCalculator(cat)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, calc)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, quoteRepo, numberingRepo, paymentGateway, calc, cat)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	catalogHandler := handlers.NewCatalogHandler(cat)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotingRoutes(v1, catalogHandler, quoteHandler, invoiceHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
