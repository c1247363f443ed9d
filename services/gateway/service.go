package gateway

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/NilFoundation/ledger-gateway/common/logging"
	"github.com/NilFoundation/ledger-gateway/internal/ledger"
	"github.com/NilFoundation/ledger-gateway/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

const (
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 2 * time.Minute
	shutdownTimeout   = 10 * time.Second
)

// ResolveFunc produces the contract handle. It may deploy the contract, so it can take a while.
type ResolveFunc func(ctx context.Context) (ledger.Contract, error)

type Service struct {
	cfg       *Config
	resolve   ResolveFunc
	contracts *ContractHolder
	api       LedgerAPI
	handler   http.Handler
	meter     telemetry.Meter
	logger    logging.Logger
}

func NewService(cfg *Config, resolve ResolveFunc, logger logging.Logger) (*Service, error) {
	page, err := loadPage(cfg.Page)
	if err != nil {
		return nil, err
	}

	meter := telemetry.NewMeter(meterName)
	metrics, err := newGatewayMetrics(meter)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics: %w", err)
	}

	contracts := &ContractHolder{}
	api := NewLedgerAPI(contracts, cfg.TokenSymbol, metrics, logger)

	return &Service{
		cfg:       cfg,
		resolve:   resolve,
		contracts: contracts,
		api:       api,
		handler:   newHandler(api, contracts, page, metrics, logger),
		meter:     meter,
		logger:    logger,
	}, nil
}

func (s *Service) Handler() http.Handler {
	return s.handler
}

func (s *Service) API() LedgerAPI {
	return s.api
}

// Run listens on the configured endpoint and serves until ctx is done or the contract cannot be resolved.
func (s *Service) Run(ctx context.Context) error {
	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", s.cfg.Endpoint)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Endpoint, err)
	}
	return s.Serve(ctx, listener)
}

// Serve serves HTTP on listener while the contract is being resolved.
// Routes answer 503 until resolution succeeds. A resolution failure stops the server.
func (s *Service) Serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info().Str(logging.FieldEndpoint, listener.Addr().String()).Msg("Starting HTTP server")
		if err := server.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		s.logger.Info().Msg("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		err := s.resolveContract(gCtx)
		if err != nil && gCtx.Err() != nil {
			// interrupted by shutdown
			return nil
		}
		return err
	})

	return g.Wait()
}

func (s *Service) resolveContract(ctx context.Context) error {
	measurer, err := telemetry.NewMeasurer(s.meter, "contract.resolve")
	if err != nil {
		return err
	}

	s.logger.Info().Msg("Resolving ledger contract...")
	contract, err := s.resolve(ctx)
	if err != nil {
		measurer.Measure(ctx, attribute.Bool("success", false))
		return fmt.Errorf("failed to resolve ledger contract: %w", err)
	}
	measurer.Measure(ctx, attribute.Bool("success", true))

	s.contracts.Set(contract)
	s.logger.Info().
		Stringer(logging.FieldContractAddress, contract.Address()).
		Str(logging.FieldEndpoint, s.cfg.Endpoint).
		Msg("Ledger gateway is ready")
	return nil
}
