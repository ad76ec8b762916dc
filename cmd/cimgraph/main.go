package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/OFFIS-RIT/cimgraph/internal/util"
	"github.com/OFFIS-RIT/cimgraph/pkg/logger"
	"github.com/OFFIS-RIT/cimgraph/pkg/logger/console"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type globalOptions struct {
	logFile string
	debug   bool

	file *os.File
}

func rootCmd() *cobra.Command {
	var opts globalOptions

	cmd := &cobra.Command{
		Use:   "cimgraph",
		Short: "Build CIM datasets from grid operator exports",
		Long: `cimgraph turns flat grid operator exports into CIM entity graphs.

Commands:
- netbewust-laden builds the NBL forecast dataset from charge point and asset CSVs
- edges derives the type-level edges of a CGMES JSON-LD graph
- schema prints the JSON Schema of the forecast dataset`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return opts.close()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logFile, "log", "", "Append log output to this file")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(
		netbewustCmd(),
		edgesCmd(),
		schemaCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "cimgraph version %s\n", Version)
			},
		},
	)

	return cmd
}

// setup loads .env and initialises the loggers. --log adds a file backend
// next to stderr.
func (o *globalOptions) setup() error {
	util.LoadEnv()

	debug := o.debug || util.GetEnvBool("DEBUG", false)
	instances := []logger.LoggerInstance{
		console.NewConsoleLogger(console.ConsoleLoggerParams{Debug: debug}),
	}

	if o.logFile != "" {
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		o.file = f
		instances = append(instances, console.NewConsoleLogger(console.ConsoleLoggerParams{
			Debug:  debug,
			Output: f,
		}))
	}

	logger.Init(instances...)
	return nil
}

func (o *globalOptions) close() error {
	if o.file == nil {
		return nil
	}
	err := o.file.Close()
	o.file = nil
	return err
}
