package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bakery-storefront/internal/client"
	"bakery-storefront/internal/config"
	"bakery-storefront/internal/repository"
	"bakery-storefront/internal/server"
	"bakery-storefront/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	// The backend speaks plain JSON numbers for money fields.
	decimal.MarshalJSONWithoutQuotes = true

	db := client.InitSqliteClient(cfg.Database.Path)
	backendClient := client.NewBackendClient(&cfg.Backend)

	cartRepo := repository.NewCartRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	cartService := service.NewCartService(cartRepo)
	checkoutService := service.NewCheckoutService(
		backendClient,
		cartRepo,
		transactionRepo,
		cfg.Backend.RequestTimeout,
	)
	userService := service.NewUserService(backendClient, sessionRepo)
	transactionService := service.NewTransactionService(backendClient, sessionRepo)

	srv := server.NewServer(
		sessionRepo,
		cartService,
		checkoutService,
		userService,
		transactionService,
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
