package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/outofforest/logger"
	"github.com/outofforest/parallel"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/outofforest/circledrawer/session"
)

func main() {
	flags := pflag.NewFlagSet("circledrawer", pflag.ExitOnError)
	scriptFile := flags.String("script", "", "path to the script file, stdin is read if empty")
	_ = flags.Parse(os.Args[1:])

	log := logger.New(logger.DefaultConfig)
	ctx := logger.WithLogger(context.Background(), log)

	if err := run(ctx, *scriptFile, os.Stdout); err != nil {
		log.Error("Session failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, scriptFile string, out io.Writer) error {
	script := io.Reader(os.Stdin)
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			return errors.WithStack(err)
		}
		defer f.Close()

		script = f
	}

	commandCh := make(chan session.Command)
	resultCh := make(chan session.Result)

	return parallel.Run(ctx, func(ctx context.Context, spawn parallel.SpawnFn) error {
		spawn("feed", parallel.Continue, func(ctx context.Context) error {
			return session.Feed(ctx, script, commandCh)
		})
		spawn("run", parallel.Continue, func(ctx context.Context) error {
			return session.Run(ctx, session.NewMemoryStore(), commandCh, resultCh)
		})
		spawn("print", parallel.Continue, func(ctx context.Context) error {
			log := logger.Get(ctx)
			for result := range resultCh {
				if result.Err != nil {
					log.Warn("Command failed",
						zap.Int("line", result.LineNo),
						zap.String("command", result.Line),
						zap.Error(result.Err))
					continue
				}
				if _, err := fmt.Fprintln(out, result.Output); err != nil {
					return errors.WithStack(err)
				}
			}
			return nil
		})
		return nil
	})
}
