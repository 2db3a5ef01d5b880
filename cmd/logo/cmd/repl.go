package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwaldbieser/logopy/internal/interp/runtime"
	"github.com/cwaldbieser/logopy/pkg/logo"
	"github.com/cwaldbieser/logopy/pkg/logoconfig"
	"github.com/cwaldbieser/logopy/pkg/turtle"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Logo session",
	Long: `Start a line-oriented read-eval-print loop.

An incomplete TO ... END procedure definition prompts for continuation
lines ("> ") instead of reporting an error, the way the reference
interpreter's input widget aggregates a multi-line definition before
running it.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().StringSliceVar(&scriptFolders, "script-folder", nil, "directory LOAD should search (repeatable)")
	replCmd.Flags().StringVar(&backendName, "backend", "", "turtle backend to install: nop or turtle (overrides .logorc.yaml)")
}

func runRepl(_ *cobra.Command, _ []string) error {
	cfg, err := logoconfig.LoadFirst(".logorc.yaml")
	if err != nil {
		return err
	}

	interp := logo.CreateInterpreter()
	interp.DebugTokens = debugTokens
	interp.SetDebugPrimitives(debugPrimitives)
	interp.SetDebugProcs(debugProcs)

	folders := append([]string{}, cfg.ScriptFolders...)
	folders = append(folders, scriptFolders...)
	interp.SetScriptFolders(folders)

	name := backendName
	if name == "" {
		name = cfg.Backend
	}
	if name == "turtle" {
		t := turtle.New()
		t.SetUndoBufferSize(cfg.UndoBufferSize)
		interp.InstallBackend(t)
	} else {
		interp.InstallBackend(runtime.NopBackend{Out: os.Stdout, Err: os.Stderr})
	}

	state := &logo.ReplState{}
	scanner := bufio.NewScanner(os.Stdin)
	prompt := "? "
	fmt.Print(prompt)
	for scanner.Scan() {
		if _, err := interp.ReceiveInput(scanner.Text(), state); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if state.Pending() {
			prompt = "> "
		} else {
			prompt = "? "
		}
		fmt.Print(prompt)
	}
	fmt.Println()
	return scanner.Err()
}
