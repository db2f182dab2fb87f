package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zgen/internal/cli"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zgen"))

	ctx, cancel := zapp.SignalContext(context.Background())
	code := run(ctx, os.Args[1:])
	cancel()

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		code = 1
	}
	os.Exit(code)
}

// run dispatches a subcommand and returns the process exit code. With no
// subcommand, or only flags, it generates the corpus.
func run(_ context.Context, args []string) int {
	cmd := "generate"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "version":
		fmt.Printf("zgen %s\n", version)
	case "generate":
		cli.CmdGenerate(args)
	case "sample":
		cli.CmdSample(args)
	default:
		fmt.Fprintf(os.Stderr, "zgen: unknown command %q\n", cmd)
		return 1
	}
	return 0
}
