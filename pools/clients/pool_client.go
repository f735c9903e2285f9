package clients

import (
	"context"

	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/types/query"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/osmosis-labs/osmosis/v25/x/gamm/pool-models/balancer"
	gammtypes "github.com/osmosis-labs/osmosis/v25/x/gamm/types"

	"github.com/osmosis-labs/psq/domain"
	sharesdomain "github.com/osmosis-labs/psq/domain/shares"
)

// balancerPoolTypeURL identifies balancer pool protos in the GAMM pool listing.
// Other pool types (stableswap, concentrated, cosmwasm) have no share weights
// and are skipped.
const balancerPoolTypeURL = "/osmosis.gamm.v1beta1.Pool"

// PoolClient lists the chain's GAMM balancer pools, projected into the
// registry pool model.
type PoolClient interface {
	AllPools(ctx context.Context) ([]sharesdomain.Pool, error)
}

type poolClient struct {
	gammQueryClient gammtypes.QueryClient
	appCodec        codec.Codec
	pageLimit       uint64
}

var _ PoolClient = &poolClient{}

// NewPoolClient creates a pool client against the given chain GRPC gateway.
func NewPoolClient(grpcURI string, appCodec codec.Codec, pageLimit uint64) (PoolClient, error) {
	grpcClient, err := grpc.NewClient(grpcURI,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return nil, err
	}

	return &poolClient{
		gammQueryClient: gammtypes.NewQueryClient(grpcClient),
		appCodec:        appCodec,
		pageLimit:       pageLimit,
	}, nil
}

// AllPools implements PoolClient.
func (c *poolClient) AllPools(ctx context.Context) ([]sharesdomain.Pool, error) {
	pools := []sharesdomain.Pool{}

	var nextKey []byte
	for {
		response, err := c.gammQueryClient.Pools(ctx, &gammtypes.QueryPoolsRequest{
			Pagination: &query.PageRequest{
				Key:   nextKey,
				Limit: c.pageLimit,
			},
		})
		if err != nil {
			domain.PSQPoolIngestErrorCounter.Inc()
			return nil, err
		}

		for _, anyPool := range response.Pools {
			if anyPool.TypeUrl != balancerPoolTypeURL {
				continue
			}

			var balancerPool balancer.Pool
			if err := c.appCodec.Unmarshal(anyPool.Value, &balancerPool); err != nil {
				domain.PSQPoolIngestErrorCounter.Inc()
				return nil, err
			}

			pools = append(pools, projectBalancerPool(balancerPool))
		}

		if response.Pagination == nil || len(response.Pagination.NextKey) == 0 {
			break
		}
		nextKey = response.Pagination.NextKey
	}

	return pools, nil
}

// projectBalancerPool reduces the chain balancer pool model to the fields
// share derivations need.
func projectBalancerPool(pool balancer.Pool) sharesdomain.Pool {
	assets := make([]sharesdomain.PoolAsset, 0, len(pool.PoolAssets))
	for _, poolAsset := range pool.PoolAssets {
		assets = append(assets, sharesdomain.PoolAsset{
			Token:  poolAsset.Token,
			Weight: poolAsset.Weight,
		})
	}

	return sharesdomain.Pool{
		ID:          pool.Id,
		TotalShare:  pool.TotalShares.Amount,
		TotalWeight: pool.TotalWeight,
		Assets:      assets,
	}
}
