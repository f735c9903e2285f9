package main

import (
	"context"
	"time"

	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/osmosis-labs/psq/domain"
	"github.com/osmosis-labs/psq/domain/cache"
	"github.com/osmosis-labs/psq/domain/mvc"
	sharesdomain "github.com/osmosis-labs/psq/domain/shares"
	"github.com/osmosis-labs/psq/log"
	"github.com/osmosis-labs/psq/middleware"
	poolsclients "github.com/osmosis-labs/psq/pools/clients"
	poolsUseCase "github.com/osmosis-labs/psq/pools/usecase"
	"github.com/osmosis-labs/psq/psqutil/prefetcher"
	sharesHttpDelivery "github.com/osmosis-labs/psq/shares/delivery/http"
	sharesRepository "github.com/osmosis-labs/psq/shares/repository"
	sharesUseCase "github.com/osmosis-labs/psq/shares/usecase"
	systemhttpdelivery "github.com/osmosis-labs/psq/system/delivery/http"
)

// PoolShareQueryServer defines an interface for the pool share query server (PSQ).
// It keeps an in-memory registry of GAMM pools refreshed from the chain and
// exposes endpoints for querying user share positions derived from it.
type PoolShareQueryServer interface {
	GetSharesUsecase() mvc.SharesUsecase
	GetPoolsUsecase() mvc.PoolsUsecase
	GetLogger() log.Logger
	Shutdown(context.Context) error
	Start(context.Context) error
}

type poolShareQueryServer struct {
	sharesUsecase  mvc.SharesUsecase
	poolsUsecase   mvc.PoolsUsecase
	poolPrefetcher *prefetcher.IntervalPrefetcher[[]sharesdomain.Pool]
	e              *echo.Echo
	address        string
	logger         log.Logger
}

var _ PoolShareQueryServer = &poolShareQueryServer{}

// GetSharesUsecase implements PoolShareQueryServer.
func (psq *poolShareQueryServer) GetSharesUsecase() mvc.SharesUsecase {
	return psq.sharesUsecase
}

// GetPoolsUsecase implements PoolShareQueryServer.
func (psq *poolShareQueryServer) GetPoolsUsecase() mvc.PoolsUsecase {
	return psq.poolsUsecase
}

// GetLogger implements PoolShareQueryServer.
func (psq *poolShareQueryServer) GetLogger() log.Logger {
	return psq.logger
}

// Shutdown implements PoolShareQueryServer.
func (psq *poolShareQueryServer) Shutdown(ctx context.Context) error {
	psq.poolPrefetcher.Close()
	return psq.e.Shutdown(ctx)
}

// Start implements PoolShareQueryServer.
func (psq *poolShareQueryServer) Start(ctx context.Context) error {
	go psq.poolPrefetcher.Start(ctx)

	psq.logger.Info("Starting pool share query server", zap.String("address", psq.address))
	return psq.e.Start(psq.address)
}

// NewPoolShareQueryServer creates a new pool share query server (PSQ).
func NewPoolShareQueryServer(appCodec codec.Codec, config domain.Config, logger log.Logger) (PoolShareQueryServer, error) {
	// Setup echo server
	e := echo.New()
	middleware := middleware.InitMiddleware(config.CORS)
	e.Use(middleware.CORS)
	e.Use(middleware.InstrumentMiddleware)
	e.Use(middleware.TraceWithParamsMiddleware("psq"))

	// Initialize the pool registry and the client that feeds it.
	poolsUsecase := poolsUseCase.NewPoolsUsecase()
	poolClient, err := poolsclients.NewPoolClient(config.ChainGRPCGatewayEndpoint, appCodec, config.Pools.PageLimit)
	if err != nil {
		return nil, err
	}

	poolPrefetcher := prefetcher.NewIntervalPrefetcher(
		poolClient.AllPools,
		poolsUsecase.StorePools,
		time.Duration(config.Pools.RefreshIntervalSeconds)*time.Second,
		logger.Named("pool_prefetcher"),
	)

	// Initialize the share module: grpc client, snapshot repository,
	// derivation cache and use case.
	shareClient, err := sharesdomain.NewShareGRPCClient(config.ChainGRPCGatewayEndpoint)
	if err != nil {
		return nil, err
	}

	snapshotRepository := sharesRepository.NewAccountSnapshotRepository(
		shareClient,
		time.Duration(config.Shares.SnapshotTTLSeconds)*time.Second,
	)

	derivationCache, err := cache.New(config.Shares.CacheSize)
	if err != nil {
		return nil, err
	}

	sharesUsecase := sharesUseCase.NewSharesUsecase(poolsUsecase, snapshotRepository, shareClient, derivationCache, logger.Named("shares"))

	// HTTP handlers
	sharesHttpDelivery.NewSharesHandler(e, sharesUsecase, logger)
	systemhttpdelivery.NewSystemHandler(e, config, logger)

	return &poolShareQueryServer{
		sharesUsecase:  sharesUsecase,
		poolsUsecase:   poolsUsecase,
		poolPrefetcher: poolPrefetcher,
		logger:         logger,
		e:              e,
		address:        config.ServerAddress,
	}, nil
}
