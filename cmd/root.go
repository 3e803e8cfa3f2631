package cmd

import (
	"fmt"
	"os"

	"github.com/avarner/serbench/cmd/bench"
	"github.com/avarner/serbench/cmd/sizes"
	"github.com/spf13/cobra"
)

const (
	Version = "0.3.1"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "serbench",
		Short: "serialization benchmark suite",
		Long: fmt.Sprintf(`serbench (v%s)

A micro-benchmark suite comparing serialization pipelines (CBOR,
MessagePack, gob, JSON) over one fixed document shape, measuring
encoded size and encode/decode throughput.`, Version),
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of serbench",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("serbench v%s\n", Version)
		},
	}
)

func init() {
	// Add subcommands
	RootCmd.AddCommand(sizes.SizesCmd)
	RootCmd.AddCommand(bench.BenchCmd)
	RootCmd.AddCommand(versionCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
