package ledger

import (
	"context"
	"fmt"

	"github.com/NilFoundation/ledger-gateway/common/logging"
	"github.com/NilFoundation/ledger-gateway/internal/chainclient"
	ethcommon "github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
)

// Deploy sends the artifact's creation bytecode, waits for the receipt and binds the new contract.
func Deploy(
	ctx context.Context,
	client chainclient.EthClient,
	sender chainclient.Sender,
	artifact *Artifact,
	opts Options,
	logger logging.Logger,
) (Contract, error) {
	code, err := artifact.Code()
	if err != nil {
		return nil, err
	}

	txHash, err := sender.Send(ctx, chainclient.TxRequest{Data: code, Gas: opts.DeployGasLimit})
	if err != nil {
		return nil, decodeContractError("deploy", err)
	}
	logger.Info().
		Str("contractName", artifact.ContractName).
		Hex(logging.FieldTxHash, txHash.Bytes()).
		Stringer(logging.FieldTxFrom, sender.From()).
		Uint64(logging.FieldTxGas, opts.DeployGasLimit).
		Msg("deployment transaction sent")

	receipt, err := chainclient.WaitForReceipt(ctx, client, txHash, opts.ReceiptTimeout)
	if err != nil {
		return nil, fmt.Errorf("error during waiting for deployment receipt: %w", err)
	}
	chainclient.LogReceiptDetails(logger, receipt)

	if receipt.Status != ethtypes.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: deployment %s", ErrTxFailed, txHash.Hex())
	}
	if receipt.ContractAddress == (ethcommon.Address{}) {
		return nil, fmt.Errorf("deployment receipt %s has no contract address", txHash.Hex())
	}

	return Bind(ctx, client, sender, receipt.ContractAddress, artifact.ABI, opts, logger)
}
