package routes

import (
	"log"
	"os"
	"strconv"

	_ "varejo_xpto/docs" // swagger registration
	"varejo_xpto/internal/adapter/http/handlers"
	"varejo_xpto/internal/adapter/messaging"
	infra "varejo_xpto/internal/infrastructure/messaging"
	"varejo_xpto/internal/metrics"
	"varejo_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the ingress server
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
	topicARN := os.Getenv("INITIALIZE_ORDER_TOPIC_ARN")
	if topicARN == "" {
		log.Fatalf("INITIALIZE_ORDER_TOPIC_ARN is required")
	}

	publisher := messaging.NewSNSTopicPublisher(infra.ConnectSNS(), topicARN)
	submitUseCase := usecase.NewSubmitOrderUseCase(publisher)

	registry := metrics.NewRegistry()
	orderHandler := handlers.NewOrderHandler(submitUseCase, registry)

	router.GET("/metrics", gin.WrapH(registry.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
