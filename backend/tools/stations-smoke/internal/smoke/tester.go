// Package smoke runs the one-shot stations endpoint check.
package smoke

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"qrreservation/backend/tools/stations-smoke/internal/models"
	"qrreservation/backend/tools/stations-smoke/internal/token"
)

// StationCreator is the client surface the tester needs.
type StationCreator interface {
	URL() string
	CreateStation(ctx context.Context, bearer string, payload models.StationPayload) (int, []byte, error)
}

// Options configures a Tester.
type Options struct {
	RestaurantID int64
	Payload      models.StationPayload
	Timeout      time.Duration
	Out          io.Writer
}

// Tester sends one station creation request and reports the outcome.
type Tester struct {
	client StationCreator
	opts   Options
	logger *zap.Logger
}

// NewTester returns tester.
func NewTester(client StationCreator, opts Options, logger *zap.Logger) *Tester {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tester{client: client, opts: opts, logger: logger}
}

// Run performs exactly one request. It never retries and never panics; every
// failure is folded into the returned Result.
func (t *Tester) Run(ctx context.Context) (res Result) {
	tok := token.Synthetic(t.opts.RestaurantID)
	url := t.client.URL()

	writePreamble(t.opts.Out, url, tok, t.opts.Payload)

	defer func() {
		if r := recover(); r != nil {
			res = classify(0, nil, fmt.Errorf("panic: %v", r))
			t.logger.Error("stations smoke panicked", zap.Any("panic", r))
			writeResult(t.opts.Out, res)
		}
	}()

	if t.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.opts.Timeout)
		defer cancel()
	}

	t.logger.Debug("sending station create request",
		zap.String("url", url),
		zap.Int64("restaurant_id", t.opts.RestaurantID),
		zap.Duration("timeout", t.opts.Timeout),
	)

	started := time.Now()
	status, body, err := t.client.CreateStation(ctx, tok, t.opts.Payload)
	res = classify(status, body, err)
	t.log(res, time.Since(started))

	writeResult(t.opts.Out, res)
	return res
}

func (t *Tester) log(res Result, elapsed time.Duration) {
	switch {
	case res.TransportFault():
		t.logger.Warn("stations request failed",
			zap.Error(res.Err),
			zap.Bool("timeout", errors.Is(res.Err, context.DeadlineExceeded)),
			zap.Duration("elapsed", elapsed),
		)
	case res.Outcome == Succeeded:
		t.logger.Info("station created", zap.Int("status", res.StatusCode), zap.Duration("elapsed", elapsed))
	default:
		t.logger.Warn("unexpected status code",
			zap.Int("status", res.StatusCode),
			zap.Int("expected", ExpectedStatus),
			zap.Duration("elapsed", elapsed),
		)
	}
}
