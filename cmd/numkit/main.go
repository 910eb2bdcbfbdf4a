// SPDX-License-Identifier: MIT

// Command numkit integrates functions and manipulates dense matrices from the
// command line. See "numkit --help".
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/katalvlaran/numkit/internal/cli"
	"github.com/katalvlaran/numkit/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "numkit:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = cli.NewRootCommand(cfg).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "numkit:", err)
		os.Exit(1)
	}
}
