package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	httpHdlr "jobtrack/handler/http"
	coreidentity "jobtrack/src/core/identity"
	"jobtrack/src/core/job"
	identityClient "jobtrack/src/infrastructure/identity"
	"jobtrack/src/log"
	"jobtrack/src/storage/postgres/jobctrl"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the jobtrack API server",
	Long:  `The serve command starts the HTTP server that provides the job tracking API.`,
	Run:   RunServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func RunServer(cmd *cobra.Command, args []string) {
	db, err := openDatabase()
	if err != nil {
		log.Error(err, "Failed to connect to database")
		return
	}

	repo := jobctrl.NewRepository(db)

	// Pick the session verifier. "static" is for local development; the
	// remote mode delegates to the hosted identity provider.
	var verifier coreidentity.Verifier
	switch viper.GetString("identity.mode") {
	case "remote":
		verifier = identityClient.NewClient(viper.GetString("identity.url"), &http.Client{
			Timeout: 10 * time.Second,
		})
	default:
		verifier = identityClient.NewStaticVerifier(map[string]string{
			viper.GetString("identity.dev_token"): viper.GetString("identity.dev_owner"),
		})
		log.Info("using static dev verifier; set IDENTITY_MODE=remote for production")
	}

	// Initialize HTTP handler with individual services
	handler := httpHdlr.NewHandler(
		job.NewService(repo),
		job.NewStatsService(repo),
		job.NewSystemService(repo),
		verifier,
	)

	// Setup gin router
	r := gin.New()
	r.Use(gin.Recovery())

	// Register routes
	handler.RegisterRoutes(r)

	// Create HTTP server
	srv := &http.Server{
		Addr:        ":" + viper.GetString("server.port"),
		Handler:     r,
		ReadTimeout: requestTimeout(),
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(err, "Failed to start server")
			return
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Parse shutdown timeout
	timeout, err := time.ParseDuration(viper.GetString("server.shutdown_timeout"))
	if err != nil {
		log.Error(err, "Invalid shutdown timeout, using default 5s")
		timeout = 5 * time.Second
	}

	// Create context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error(err, "Server forced to shutdown")
	}

	// Get underlying *sql.DB and close it
	sqlDB, err := db.DB()
	if err != nil {
		log.Error(err, "Failed to get underlying *sql.DB")
	} else if err := sqlDB.Close(); err != nil {
		log.Error(err, "Error closing database connection")
	}

	log.Info("Server exited")
}

func openDatabase() (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		viper.GetString("postgres.host"),
		viper.GetString("postgres.user"),
		viper.GetString("postgres.password"),
		viper.GetString("postgres.db"),
		viper.GetString("postgres.port"),
	)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func requestTimeout() time.Duration {
	timeout, err := time.ParseDuration(viper.GetString("server.request_timeout"))
	if err != nil {
		return 15 * time.Second
	}
	return timeout
}
