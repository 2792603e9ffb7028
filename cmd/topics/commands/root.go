// ABOUTME: Root command setup for the Topics CLI
// ABOUTME: Wires global flags and subcommands, exposes Execute for main
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Global flags shared by subcommands
var (
	verbose      bool
	quiet        bool
	outputFormat string
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "topics",
		Short: "Topic clustering for study materials",
		Long: `Topics groups embedded content chunks into topic-coherent clusters
so quiz and flashcard generation can sample evenly across a document's
topics instead of over-representing its first sections.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose && quiet {
				return fmt.Errorf("--verbose and --quiet are mutually exclusive")
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, table, json")

	cmd.AddCommand(NewClusterCmd())
	cmd.AddCommand(NewEmbedCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
