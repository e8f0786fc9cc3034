package routes

import (
	"path/filepath"

	"employee-directory/internal/api/handlers"
	"employee-directory/internal/api/middleware"
	"employee-directory/internal/archive"
	"employee-directory/internal/config"
	"employee-directory/internal/models"
	"employee-directory/internal/render"
	"employee-directory/internal/repository"
	"employee-directory/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "employee-directory/docs" // registers the swagger spec
)

// Dependencies are built once in main and shared by every route
type Dependencies struct {
	Records repository.RecordRepositoryInterface
	Index   models.DirectoryIndex
	Checks  map[string]handlers.ReadinessCheck
	Version string
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(cfg *config.Config, deps Dependencies) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	site := cfg.Site()

	// Initialize services
	directoryService := service.NewDirectoryService(deps.Records, deps.Index, site, cfg.ResolverConcurrency)
	profileService := service.NewProfileService(deps.Records, site, render.ProfileOptions{
		SmallCodeSize: cfg.QRSmallSize,
		LargeCodeSize: cfg.QRLargeSize,
	})
	employeeCardService := service.NewEmployeeCardService(archive.NewBuilder(), site, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(deps.Version, deps.Checks)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)
	profileHandler := handlers.NewProfileHandler(profileService)
	employeeCardHandler := handlers.NewEmployeeCardHandler(employeeCardService, cfg.MaxUploadBytes())

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Profile view, addressed by the URL embedded in contact cards and scannable codes
	router.GET(models.ProfilePath, profileHandler.GetProfile)

	v1 := router.Group("/api/v1")
	{
		employees := v1.Group("/employees")
		{
			employees.GET("", directoryHandler.ListEmployees)
			employees.GET("/:slug/contact.vcf", profileHandler.GetContactCard)
			employees.GET("/:slug/qrcode", profileHandler.GetQRCode)
		}

		manage := v1.Group("/manage")
		{
			manage.GET("/employees", directoryHandler.ListManagementEntries)
		}

		v1.POST("/employee-cards", employeeCardHandler.CreateEmployeeCard)
	}

	// Employee folders are served as-is when records live on local disk
	if cfg.RecordSource == config.RecordSourceFile {
		router.Static("/"+cfg.EmployeesFolder, EmployeesRoot(cfg))
	}

	return router
}

// EmployeesRoot is the local directory holding one folder per employee
func EmployeesRoot(cfg *config.Config) string {
	return filepath.Join(cfg.DataDir, cfg.EmployeesFolder)
}
