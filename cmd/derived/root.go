package main

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ib-77/result/internal/logging"
	"github.com/ib-77/result/pkg/result"
	"github.com/ib-77/result/pkg/result/files"
)

const defaultPath = "war-and-peace.txt"

type options struct {
	count   bool
	verbose bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "derived [path...]",
		Short:        "Read text files and print their contents or the read error",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := logging.InfoLevel
			if opts.verbose {
				level = logging.DebugLevel
			}
			logger, err := logging.New(level)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx := logger.With(logging.String("run_id", uuid.NewString())).WithContext(cmd.Context())
			cmd.SetContext(ctx)

			run(cmd, args, opts)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.count, "count", false, "print the number of successful reads")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, paths []string, opts *options) {
	if len(paths) == 0 {
		paths = []string{defaultPath}
	}

	logger := logging.FromContext(cmd.Context())
	out := cmd.OutOrStdout()

	results := files.ReadAll(paths...)
	for i, res := range results {
		logger.Debug("read file",
			logging.String("path", paths[i]),
			logging.Bool("success", res.IsSuccess()))
		printResult(out, res)
	}

	if opts.count {
		n := result.CountSuccesses(results)
		logger.Info("reads finished",
			logging.Int("total", len(results)),
			logging.Int("successful", n))
		fmt.Fprintf(out, "successful reads: %d\n", n)
	}
}

func printResult(w io.Writer, res files.Text) {
	res.Handle(
		func(contents string) { fmt.Fprintln(w, contents) },
		func(err error) { fmt.Fprintln(w, "IO-Error : "+err.Error()) },
	)
}
