package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/GlebRadaev/loanapp/internal/app"
	"github.com/rs/zerolog/log"
	"go.uber.org/zap"
)

//	@title			Loan Application API
//	@version		1.0
//	@description	Decides loan applications by loan to value rate and credit score,
//	@description	keeps the decided ones for this run and reports status counts,
//	@description	approved loan value and mean LTV.

// @host		localhost:8080
// @BasePath	/
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	loanApp := app.New()
	if err := loanApp.Start(ctx); err != nil {
		// zap is not configured when config or logger setup fails
		log.Fatal().Err(err).Msg("Can't start loan application service")
	}

	if err := loanApp.Wait(ctx, cancel); err != nil {
		zap.L().Fatal("Loan application service stopped with errors", zap.Error(err))
	}

	zap.L().Info("Loan application service stopped")
}
