package main

import (
	"context"
	"log"
	"os"

	"pkt.systems/psi"
	"pkt.systems/pslog"

	"github.com/VoxDroid/spliminal/cmd"
)

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)
	return cmd.Execute(ctx)
}
