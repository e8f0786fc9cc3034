package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"employee-directory/internal/api/handlers"
	"employee-directory/internal/api/routes"
	"employee-directory/internal/config"
	"employee-directory/internal/logger"
	"employee-directory/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

//	@title			Employee Directory API
//	@version		1.0
//	@description	Static employee directory: directory listing, profiles with contact cards and scannable codes, and packaging of new employee cards.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8080
//	@BasePath	/

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	// Load the curated directory index
	index, err := repository.LoadDirectoryIndex(cfg.DirectoryIndexFile)
	if err != nil {
		logrus.Fatal("Failed to load directory index:", err)
	}
	logrus.Infof("Loaded directory index with %d employees", len(index))

	// Initialize record storage
	records, err := repository.NewRecordRepository(cfg.RecordSource, routes.EmployeesRoot(cfg), cfg.RecordBaseURL, cfg.HTTPTimeout(), validator.New())
	if err != nil {
		logrus.Fatal("Failed to initialize record storage:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(cfg, routes.Dependencies{
		Records: records,
		Index:   index,
		Checks:  readinessChecks(cfg),
		Version: version,
	})

	logrus.WithFields(logrus.Fields{
		"record_source": cfg.RecordSource,
		"site":          cfg.SiteBaseURL,
	}).Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

// readinessChecks verifies the employees folder exists when records live on disk
func readinessChecks(cfg *config.Config) map[string]handlers.ReadinessCheck {
	if cfg.RecordSource != config.RecordSourceFile {
		return nil
	}

	root := routes.EmployeesRoot(cfg)
	return map[string]handlers.ReadinessCheck{
		"records": func(ctx context.Context) error {
			info, err := os.Stat(root)
			if err != nil {
				return err
			}
			if !info.IsDir() {
				return fmt.Errorf("%s is not a directory", root)
			}
			return nil
		},
	}
}
