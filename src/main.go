package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/yashkumarverma/minicron/src/cmd"
	"github.com/yashkumarverma/minicron/src/utils"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := utils.NewLogger()
	defer logger.Sync()
	ctx = utils.LoggerWithCtx(ctx, logger)

	config := utils.GetConfig(ctx)

	if err := cmd.Execute(ctx, config); err != nil {
		logger.Debugw("Command failed", "error", err)
		cancel()
		os.Exit(1)
	}
}
