package app

import (
	"context"
	"io"

	"go.uber.org/zap"

	"qrreservation/backend/tools/stations-smoke/internal/clients"
	"qrreservation/backend/tools/stations-smoke/internal/config"
	"qrreservation/backend/tools/stations-smoke/internal/smoke"
)

// App wires stations-smoke dependencies.
type App struct {
	tester *smoke.Tester
	logger *zap.Logger
}

// New constructs application graph. Console report goes to out.
func New(cfg *config.Config, logger *zap.Logger, out io.Writer) *App {
	httpClient := clients.NewDefaultHTTPClient(cfg.Timeout())
	stationsClient := clients.NewStationsClient(cfg.API.BaseURL, httpClient)

	tester := smoke.NewTester(stationsClient, smoke.Options{
		RestaurantID: cfg.Auth.RestaurantID,
		Payload:      cfg.Station,
		Timeout:      cfg.Timeout(),
		Out:          out,
	}, logger)

	return &App{
		tester: tester,
		logger: logger,
	}
}

// Run performs the smoke check once.
func (a *App) Run(ctx context.Context) smoke.Result {
	res := a.tester.Run(ctx)
	a.logger.Debug("stations smoke finished", zap.Stringer("outcome", res.Outcome))
	return res
}
