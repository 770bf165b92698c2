// Package app assembles the ID service from its configuration and runs it.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/weiawesome/snowflake128/internal/config"
	"github.com/weiawesome/snowflake128/internal/generator"
	idgrpc "github.com/weiawesome/snowflake128/internal/grpc"
	"github.com/weiawesome/snowflake128/internal/handler"
	"github.com/weiawesome/snowflake128/internal/nodeid"
	"github.com/weiawesome/snowflake128/internal/service"
	pkglog "github.com/weiawesome/snowflake128/pkg/log"
	"github.com/weiawesome/snowflake128/pkg/snowflake"
)

const (
	acquireTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

// ErrNodeIDLost is returned by Run when the node ID lease is lost.
var ErrNodeIDLost = errors.New("node id lease lost")

// App is a fully wired ID service instance.
type App struct {
	logger   zerolog.Logger
	provider nodeid.Provider
	redis    *redis.Client
	nodeID   uint32
	svc      service.IDService

	grpcServer *grpc.Server
	grpcLis    net.Listener
	httpServer *http.Server
	httpLis    net.Listener
}

// New acquires a node ID, builds the generators and opens the listeners. The
// caller must call Run, which releases everything when it returns.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	a := &App{logger: logger}

	if err := a.acquireNodeID(ctx, cfg); err != nil {
		a.closeRedis()
		return nil, err
	}

	svc, err := buildService(cfg, a.nodeID, logger, a.ready)
	if err != nil {
		a.release()
		return nil, err
	}
	a.svc = svc

	a.grpcServer = idgrpc.NewServer(svc, logger)
	a.grpcLis, err = idgrpc.Listen(cfg.GRPC.Addr())
	if err != nil {
		a.release()
		return nil, err
	}

	if cfg.HTTP.Enabled {
		gin.SetMode(gin.ReleaseMode)
		r := gin.New()
		r.Use(gin.Recovery())
		r.Use(pkglog.GinMiddleware(logger))
		handler.NewHandler(svc, a.ready).RegisterRoutes(r)

		a.httpServer = &http.Server{Handler: r, ReadHeaderTimeout: 5 * time.Second}
		a.httpLis, err = net.Listen("tcp", cfg.HTTP.Addr())
		if err != nil {
			a.grpcLis.Close()
			a.release()
			return nil, fmt.Errorf("failed to listen on %s: %w", cfg.HTTP.Addr(), err)
		}
	}

	return a, nil
}

func (a *App) acquireNodeID(ctx context.Context, cfg *config.Config) error {
	switch cfg.Snowflake.NodeSource {
	case config.NodeSourceRedis:
		a.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := a.redis.Ping(pingCtx).Err(); err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		a.provider = nodeid.NewRedisLease(a.redis, cfg.Redis.KeyPrefix, cfg.Redis.LeaseTTL,
			nodeid.WithLeaseLogger(a.logger))
	default:
		a.provider = nodeid.Static{ID: cfg.Snowflake.NodeID}
	}

	acquireCtx, cancel := context.WithTimeout(ctx, acquireTimeout)
	defer cancel()
	id, err := a.provider.Acquire(acquireCtx)
	if err != nil {
		return fmt.Errorf("failed to acquire node id: %w", err)
	}
	a.nodeID = id
	return nil
}

func buildService(cfg *config.Config, nodeID uint32, logger zerolog.Logger, ready func() error) (service.IDService, error) {
	sf, err := snowflake.New(nodeID, cfg.Snowflake.APIVersion,
		snowflake.WithRollbackGuard(cfg.Snowflake.RollbackGuard),
		snowflake.WithLogger(logger.With().Str(pkglog.FieldIDKind, generator.KindSnowflake).Logger()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake generator: %w", err)
	}
	logger.Info().
		Uint32(pkglog.FieldNodeID, nodeID).
		Uint32(pkglog.FieldAPIVersion, cfg.Snowflake.APIVersion).
		Bool("rollback_guard", cfg.Snowflake.RollbackGuard).
		Msg("snowflake generator initialized")

	nanoidGen, err := generator.NewNanoIDGenerator(cfg.NanoID.Size, cfg.NanoID.Alphabet)
	if err != nil {
		return nil, fmt.Errorf("failed to create nanoid generator: %w", err)
	}
	cuid2Gen, err := generator.NewCUID2Generator(cfg.CUID2.Length)
	if err != nil {
		return nil, fmt.Errorf("failed to create cuid2 generator: %w", err)
	}

	registry, err := generator.NewRegistry(
		generator.NewSnowflakeGenerator(sf, nil),
		generator.NewUUIDGenerator(),
		generator.NewULIDGenerator(),
		generator.NewKSUIDGenerator(),
		nanoidGen,
		cuid2Gen,
	)
	if err != nil {
		return nil, err
	}

	return service.NewIDService(registry, cfg.EntityTypes, service.WithReadiness(ready))
}

// NodeID returns the node ID this instance generates snowflakes under.
func (a *App) NodeID() uint32 {
	return a.nodeID
}

// GRPCAddr returns the address the gRPC server listens on.
func (a *App) GRPCAddr() net.Addr {
	return a.grpcLis.Addr()
}

// HTTPAddr returns the address the HTTP server listens on, or nil if HTTP
// is disabled.
func (a *App) HTTPAddr() net.Addr {
	if a.httpLis == nil {
		return nil
	}
	return a.httpLis.Addr()
}

func (a *App) ready() error {
	select {
	case <-a.provider.Lost():
		return ErrNodeIDLost
	default:
		return nil
	}
}

// Run serves until ctx is done or the node ID lease is lost, then shuts the
// servers down gracefully and releases the node ID.
func (a *App) Run(ctx context.Context) error {
	defer a.release()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info().Str("addr", a.grpcLis.Addr().String()).Msg("grpc server listening")
		if err := a.grpcServer.Serve(a.grpcLis); err != nil {
			return fmt.Errorf("grpc server: %w", err)
		}
		return nil
	})

	if a.httpServer != nil {
		g.Go(func() error {
			a.logger.Info().Str("addr", a.httpLis.Addr().String()).Msg("http server listening")
			if err := a.httpServer.Serve(a.httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("http server: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		var err error
		select {
		case <-gCtx.Done():
		case <-a.provider.Lost():
			a.logger.Error().Uint32(pkglog.FieldNodeID, a.nodeID).Msg("node id lease lost, stopping")
			err = ErrNodeIDLost
		}

		a.logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if a.httpServer != nil {
			if serr := a.httpServer.Shutdown(shutdownCtx); serr != nil {
				a.logger.Warn().Err(serr).Msg("http server shutdown")
			}
		}
		a.grpcServer.GracefulStop()
		return err
	})

	return g.Wait()
}

func (a *App) release() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.provider.Release(ctx); err != nil && !errors.Is(err, nodeid.ErrNotAcquired) {
		a.logger.Warn().Err(err).Msg("failed to release node id")
	}
	a.closeRedis()
}

func (a *App) closeRedis() {
	if a.redis != nil {
		a.redis.Close()
		a.redis = nil
	}
}
