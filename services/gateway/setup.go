package gateway

import (
	"context"
	"fmt"

	"github.com/NilFoundation/ledger-gateway/common/logging"
	"github.com/NilFoundation/ledger-gateway/internal/chainclient"
	"github.com/NilFoundation/ledger-gateway/internal/ledger"
)

// NewSender signs locally when a private key is configured, otherwise it relies on an account unlocked on the node.
func NewSender(ctx context.Context, cfg *Config, client chainclient.EthClient) (chainclient.Sender, error) {
	if cfg.PrivateKey != "" {
		return chainclient.NewKeySender(ctx, client, cfg.privateKeyHex(), cfg.GasPrice())
	}
	return chainclient.NewNodeAccountSender(ctx, client, optionalAddress(cfg.From), cfg.GasPrice())
}

func NewResolver(
	client chainclient.EthClient,
	sender chainclient.Sender,
	cfg *Config,
	logger logging.Logger,
) ResolveFunc {
	params := cfg.ResolveParams()
	return func(ctx context.Context) (ledger.Contract, error) {
		return ledger.Resolve(ctx, client, sender, params, logger)
	}
}

// Run connects to the node and serves the gateway until ctx is done.
func Run(ctx context.Context, cfg *Config, logger logging.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	client, err := chainclient.Dial(ctx, cfg.RpcEndpoint, logging.NewLogger("chain"))
	if err != nil {
		return err
	}
	defer client.Close()

	sender, err := NewSender(ctx, cfg, client)
	if err != nil {
		return fmt.Errorf("failed to set up transaction sender: %w", err)
	}
	logger.Info().Stringer(logging.FieldTxFrom, sender.From()).Msg("Transactions will be sent from account")

	service, err := NewService(cfg, NewResolver(client, sender, cfg, logging.NewLogger("ledger")), logger)
	if err != nil {
		return err
	}
	return service.Run(ctx)
}
