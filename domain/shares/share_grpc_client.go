package sharesdomain

import (
	"context"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	lockup "github.com/osmosis-labs/osmosis/v25/x/lockup/types"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// ShareGRPCClient represents the GRPC client for the share module to query
// account balances and lockups from the chain.
type ShareGRPCClient interface {
	// AllBalances returns all liquid bank balances of the address.
	AllBalances(ctx context.Context, address string) (sdk.Coins, error)

	// AccountLockedCoins returns the locked coins of the address,
	// including coins that are in the process of unlocking.
	AccountLockedCoins(ctx context.Context, address string) (sdk.Coins, error)

	// AccountUnlockingCoins returns the coins of the address that are
	// in the process of unlocking.
	AccountUnlockingCoins(ctx context.Context, address string) (sdk.Coins, error)

	// AccountLockedDuration returns the lock records of the address whose
	// lock duration equals exactly the given duration.
	AccountLockedDuration(ctx context.Context, address string, duration time.Duration) ([]lockup.PeriodLock, error)
}

type shareGRPCClient struct {
	bankQueryClient   banktypes.QueryClient
	lockupQueryClient lockup.QueryClient
}

var _ ShareGRPCClient = &shareGRPCClient{}

// NewShareGRPCClient creates a share GRPC client over a single connection
// to the given chain GRPC gateway.
func NewShareGRPCClient(grpcURI string) (ShareGRPCClient, error) {
	grpcClient, err := grpc.NewClient(grpcURI,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return nil, err
	}

	return &shareGRPCClient{
		bankQueryClient:   banktypes.NewQueryClient(grpcClient),
		lockupQueryClient: lockup.NewQueryClient(grpcClient),
	}, nil
}

// AllBalances implements ShareGRPCClient.
func (c *shareGRPCClient) AllBalances(ctx context.Context, address string) (sdk.Coins, error) {
	response, err := c.bankQueryClient.AllBalances(ctx, &banktypes.QueryAllBalancesRequest{Address: address})
	if err != nil {
		return nil, err
	}

	return response.Balances, nil
}

// AccountLockedCoins implements ShareGRPCClient.
func (c *shareGRPCClient) AccountLockedCoins(ctx context.Context, address string) (sdk.Coins, error) {
	response, err := c.lockupQueryClient.AccountLockedCoins(ctx, &lockup.AccountLockedCoinsRequest{Owner: address})
	if err != nil {
		return nil, err
	}

	return response.Coins, nil
}

// AccountUnlockingCoins implements ShareGRPCClient.
func (c *shareGRPCClient) AccountUnlockingCoins(ctx context.Context, address string) (sdk.Coins, error) {
	response, err := c.lockupQueryClient.AccountUnlockingCoins(ctx, &lockup.AccountUnlockingCoinsRequest{Owner: address})
	if err != nil {
		return nil, err
	}

	return response.Coins, nil
}

// AccountLockedDuration implements ShareGRPCClient.
func (c *shareGRPCClient) AccountLockedDuration(ctx context.Context, address string, duration time.Duration) ([]lockup.PeriodLock, error) {
	response, err := c.lockupQueryClient.AccountLockedDuration(ctx, &lockup.AccountLockedDurationRequest{
		Owner:    address,
		Duration: duration,
	})
	if err != nil {
		return nil, err
	}

	return response.Locks, nil
}
