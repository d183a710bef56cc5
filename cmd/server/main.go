package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/atlasbank/retail-banking-demo/internal/adapter/http/controller"
	"github.com/atlasbank/retail-banking-demo/internal/adapter/http/middleware"
	"github.com/atlasbank/retail-banking-demo/internal/adapter/http/router"
	"github.com/atlasbank/retail-banking-demo/internal/adapter/repository/memory"
	"github.com/atlasbank/retail-banking-demo/internal/config"
	"github.com/atlasbank/retail-banking-demo/internal/usecase/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	sessionStore := memory.NewSessionStore()
	rateRepo := memory.NewRateRepository()

	rateService := services.NewRateService(rateRepo)
	authService := services.NewAuthService(
		sessionStore,
		cfg.SessionSecret,
		cfg.SessionTTL,
		cfg.BankCode,
		cfg.BranchCode,
		cfg.CardDailyLimit,
		cfg.DemoOpeningBalance,
		cfg.DemoOpeningSavings,
	)
	accountService := services.NewAccountService(sessionStore, cfg.HomeCurrency)
	ledgerService := services.NewLedgerService(sessionStore, rateService, cfg.HomeCurrency)
	beneficiaryService := services.NewBeneficiaryService(sessionStore)
	cardService := services.NewCardService(sessionStore)
	telecomService := services.NewTelecomService(sessionStore)

	authMiddleware := middleware.SessionAuth(cfg.SessionSecret, sessionStore)

	mux := router.New(
		controller.NewAuthController(authService),
		controller.NewAccountController(accountService),
		controller.NewTransferController(ledgerService),
		controller.NewPaymentController(ledgerService),
		controller.NewTelecomController(ledgerService, telecomService),
		controller.NewCardController(cardService),
		controller.NewBeneficiaryController(beneficiaryService),
		controller.NewRateController(rateService, ledgerService),
		authMiddleware,
	)

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("retail banking demo listening on %s", cfg.ListenAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("listen: %v", err)
	}
}
