package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/termrain/internal/config"
	"github.com/san-kum/termrain/internal/viz"
)

const usage = ` Usage: rain
No arguments supported yet. It's just rain, after all.
Hit 'q' to exit.
`

// main runs the rain. Any argument prints the usage and exits with status 0.
// Errors are printed to stdout once the terminal has been restored.
func main() {
	rootCmd := newRootCmd(func() error {
		rng := rand.New(rand.NewSource(time.Now().UnixNano() ^ int64(os.Getpid())))
		return viz.Run(config.DefaultConfig(), rng)
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stdout, err)
		os.Exit(1)
	}
}

func newRootCmd(run func() error) *cobra.Command {
	cmd := &cobra.Command{
		Use:                "rain",
		Short:              "digital rain in the terminal",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				printUsage(cmd.OutOrStdout())
				return nil
			}
			return run()
		},
	}
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		printUsage(c.OutOrStdout())
	})
	return cmd
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, usage)
}
