// Package server wires the card renderer into its HTTP and gRPC listeners.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/murkotick/shoe-card-service/internal/app/card/domain/services"
	"github.com/murkotick/shoe-card-service/internal/app/card/queries/render_card"
	"github.com/murkotick/shoe-card-service/internal/app/card/queries/render_cards"
	"github.com/murkotick/shoe-card-service/internal/config"
	"github.com/murkotick/shoe-card-service/internal/pkg/clock"
	"github.com/murkotick/shoe-card-service/internal/pkg/currency"
	"github.com/murkotick/shoe-card-service/internal/pkg/inflect"
	"github.com/murkotick/shoe-card-service/internal/pkg/nav"
	grpccard "github.com/murkotick/shoe-card-service/internal/transport/grpc/card"
	"github.com/murkotick/shoe-card-service/internal/transport/grpc/health"
	httpcard "github.com/murkotick/shoe-card-service/internal/transport/http/card"
)

// ShutdownTimeout bounds graceful shutdown of both listeners.
const ShutdownTimeout = 5 * time.Second

// NewQueries builds the single and batch render handlers from cfg.
func NewQueries(cfg config.Config, clk clock.Clock, log *zap.Logger) (httpcard.Queries, error) {
	cf, err := currency.New(cfg.CurrencyCode, cfg.CurrencySymbol, cfg.Locale)
	if err != nil {
		return httpcard.Queries{}, err
	}

	single := render_card.NewHandler(
		services.NewVariantResolver(clk, cfg.NewReleaseWindow),
		services.NewPresenter(cf, inflect.English{}),
		services.NewStyler(cfg.Palette),
		nav.NewPathBuilder(cfg.ProductPathTemplate),
		log,
	)
	return httpcard.Queries{
		Render: single,
		Batch:  render_cards.NewHandler(single, cfg.BatchConcurrency),
	}, nil
}

type Server struct {
	cfg    config.Config
	log    *zap.Logger
	window time.Duration
	http   *http.Server
	grpc   *grpc.Server
	health *health.Server
}

func New(cfg config.Config, clk clock.Clock, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}
	q, err := NewQueries(cfg, clk, log)
	if err != nil {
		return nil, err
	}

	grpcSrv := grpc.NewServer()
	grpccard.Register(grpcSrv, grpccard.NewHandler(grpccard.Queries(q)))

	return &Server{
		cfg:    cfg,
		log:    log,
		window: q.Render.Resolver.Window(),
		http: &http.Server{
			Handler:           httpcard.NewRouter(httpcard.NewHandler(q), log),
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		grpc:   grpcSrv,
		health: health.Register(grpcSrv, grpccard.ServiceName),
	}, nil
}

// Run listens on the configured addresses and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	httpLis, err := net.Listen("tcp", s.cfg.HTTPAddr)
	if err != nil {
		return err
	}
	grpcLis, err := net.Listen("tcp", s.cfg.GRPCAddr)
	if err != nil {
		_ = httpLis.Close()
		return err
	}
	return s.Serve(ctx, httpLis, grpcLis)
}

// Serve serves on the given listeners until ctx is done or either server
// fails, then shuts both down.
func (s *Server) Serve(ctx context.Context, httpLis, grpcLis net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("gRPC server listening", zap.String("addr", grpcLis.Addr().String()))
		return s.grpc.Serve(grpcLis)
	})

	g.Go(func() error {
		s.log.Info("HTTP server listening",
			zap.String("addr", httpLis.Addr().String()),
			zap.String("currency", s.cfg.CurrencyCode),
			zap.Duration("new_release_window", s.window))
		if err := s.http.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.shutdown()
		return nil
	})

	return g.Wait()
}

func (s *Server) shutdown() {
	s.health.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(ctx); err != nil {
		s.log.Warn("http shutdown", zap.Error(err))
	}

	stopped := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		s.grpc.Stop()
	}
	s.log.Info("server stopped")
}
