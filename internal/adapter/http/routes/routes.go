package routes

import (
	"log"
	"os"
	"strconv"

	_ "csob_gateway/docs" // This will be auto-generated
	"csob_gateway/internal/adapter/http/handlers"
	"csob_gateway/internal/adapter/persistence/repository"
	"csob_gateway/internal/diagnostics"
	"csob_gateway/internal/diagnostics/panel"
	"csob_gateway/internal/domain/entities"
	"csob_gateway/internal/infrastructure/database"
	"csob_gateway/internal/usecase"

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

	recorder := diagnostics.NewRecorder()
	registerMerchantConfig(recorder)

	archiveRepo := repository.NewDiagnosticArchiveDynamoRepository(ddb)
	archiveUseCase := usecase.NewDiagnosticArchiveUseCase(archiveRepo, recorder)

	diagnosticsHandler := handlers.NewDiagnosticsHandler(recorder, panel.New(recorder), archiveUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDiagnosticsRoutes(v1, diagnosticsHandler)
}

// registerMerchantConfig builds the merchant descriptor from env vars and
// registers it with the recorder. A misconfigured merchant only degrades
// the panel (it renders a warning), the service still starts.
func registerMerchantConfig(rec *diagnostics.Recorder) {
	cfg, err := entities.NewMerchantConfig(entities.MerchantConfigParams{
		MerchantID:         os.Getenv("GATEWAY_MERCHANT_ID"),
		PrivateKeyPath:     os.Getenv("GATEWAY_PRIVATE_KEY_PATH"),
		PrivateKeyPassword: os.Getenv("GATEWAY_PRIVATE_KEY_PASSWORD"),
		BankPublicKeyPath:  os.Getenv("GATEWAY_BANK_PUBLIC_KEY_PATH"),
		ShopName:           os.Getenv("GATEWAY_SHOP_NAME"),
		ReturnURL:          os.Getenv("GATEWAY_RETURN_URL"),
		APIURL:             os.Getenv("GATEWAY_API_URL"),
	})
	if err != nil {
		log.Printf("[diagnostics][routes] merchant configuration not registered: %v", err)
		return
	}

	rec.SetActiveConfig(cfg)
	log.Printf("[diagnostics][routes] merchant configuration registered merchant_id=%s api_url=%s", cfg.MerchantID, cfg.APIURL)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
