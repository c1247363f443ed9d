package concurrent

import (
	"context"
	"os"
	"os/signal"

	"github.com/NilFoundation/ledger-gateway/common/logging"
)

// OnSignal runs f once one of sigs arrives, or returns without running it when ctx is done.
//
// Graceful shutdown of a command:
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	go concurrent.OnSignal(ctx, logger, cancel, syscall.SIGINT, syscall.SIGTERM)
func OnSignal(ctx context.Context, logger logging.Logger, f func(), sigs ...os.Signal) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)
	defer signal.Stop(ch)

	select {
	case sig := <-ch:
		logger.Warn().Stringer("signal", sig).Msg("Signal received, shutting down")
		f()
	case <-ctx.Done():
	}
}
