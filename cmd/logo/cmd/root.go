package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	debugTokens     bool
	debugPrimitives bool
	debugProcs      bool
)

var rootCmd = &cobra.Command{
	Use:   "logo",
	Short: "A Logo interpreter",
	Long: `logo is a Go implementation of the Logo programming language.

Logo is a dynamically-scoped, word-and-list oriented language built
around turtle graphics, template-driven iteration (MAP/FILTER/REDUCE/
CASCADE), and a procedure table a running program can inspect and
rewrite (POT/POTS/SAVE).`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVar(&debugTokens, "debug-tokens", false, "print tokenization debug output (interpreter's debug_tokens)")
	rootCmd.PersistentFlags().BoolVar(&debugPrimitives, "debug-primitives", false, "print PRIMITIVE: name ARGS: ... on every primitive call")
	rootCmd.PersistentFlags().BoolVar(&debugProcs, "debug-procs", false, "print PROCEDURE: name ARGS: ... on every user-defined procedure call")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
