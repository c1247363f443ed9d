package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/NilFoundation/ledger-gateway/common/logging"
	"github.com/NilFoundation/ledger-gateway/internal/chainclient"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

var ErrNothingToResolve = errors.New("neither contract address nor artifact is configured")

type ResolveParams struct {
	// Address attaches to an existing deployment and takes precedence over the artifact.
	Address *ethcommon.Address

	// ArtifactPath points to a truffle build artifact. Its ABI replaces the built-in one.
	ArtifactPath string

	// Redeploy ignores the addresses recorded in the artifact.
	Redeploy bool

	Options Options
}

// Resolve produces the contract handle the gateway serves.
// The order is: configured address, the artifact's deployment on the current network, a fresh deployment.
func Resolve(
	ctx context.Context,
	client chainclient.EthClient,
	sender chainclient.Sender,
	params ResolveParams,
	logger logging.Logger,
) (Contract, error) {
	var artifact *Artifact
	if params.ArtifactPath != "" {
		var err error
		if artifact, err = LoadArtifact(params.ArtifactPath); err != nil {
			return nil, err
		}
	}

	if params.Address != nil {
		abiJSON := DefaultABI()
		if artifact != nil {
			abiJSON = artifact.ABI
		}
		logger.Info().Stringer(logging.FieldContractAddress, params.Address).Msg("Attaching to configured contract")
		return Bind(ctx, client, sender, *params.Address, abiJSON, params.Options, logger)
	}

	if artifact == nil {
		return nil, ErrNothingToResolve
	}

	if !params.Redeploy {
		contract, err := bindRecorded(ctx, client, sender, artifact, params.Options, logger)
		switch {
		case err == nil:
			return contract, nil
		case errors.Is(err, ErrNoDeployment), errors.Is(err, ErrNoCode):
			logger.Info().Err(err).Msg("No usable deployment recorded in artifact, deploying")
		default:
			return nil, err
		}
	}

	return Deploy(ctx, client, sender, artifact, params.Options, logger)
}

func bindRecorded(
	ctx context.Context,
	client chainclient.EthClient,
	sender chainclient.Sender,
	artifact *Artifact,
	opts Options,
	logger logging.Logger,
) (Contract, error) {
	networkID, err := client.NetworkID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch network id: %w", err)
	}

	address, err := artifact.DeployedAddress(networkID)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Stringer(logging.FieldChainId, networkID).
		Stringer(logging.FieldContractAddress, address).
		Msg("Attaching to contract recorded in artifact")
	return Bind(ctx, client, sender, address, artifact.ABI, opts, logger)
}
