package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"bloglist/internal/handlers"
	"bloglist/internal/logger"
	"bloglist/internal/repository"
	"bloglist/internal/repository/db"
	"bloglist/internal/server"
	"bloglist/internal/service"

	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := logger.Get(logger.InfoLevel)

	if err := loadConfig(); err != nil {
		log.Infow("no config file found; relying on environment", "err", err)
	}

	database, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	repos := repository.NewRepository(database)
	services := service.NewService(repos)
	apiHandler := handlers.NewHandler(services, log)

	srv := &server.Server{}
	go func() {
		port := viper.GetString("port")
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, apiHandler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()

	waitForShutdown(srv, log)
}

// loadConfig reads configs/config.yml and lets environment variables
// (PORT, DB_PATH, JWT_SIGNING_KEY) override file values.
func loadConfig() error {
	viper.AddConfigPath("configs")
	viper.SetConfigName("config")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	return viper.ReadInConfig()
}

func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "bloglist.db")
		dbPath = "bloglist.db"
	}
	return db.InitDB(dbPath)
}

// waitForShutdown listens for termination signals and drains the server.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
