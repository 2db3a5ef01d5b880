package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cwaldbieser/logopy/internal/interp/runtime"
	"github.com/cwaldbieser/logopy/pkg/logo"
	"github.com/cwaldbieser/logopy/pkg/logoconfig"
	"github.com/cwaldbieser/logopy/pkg/turtle"
)

var (
	evalExpr      string
	scriptFolders []string
	backendName   string
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Logo script file or expression",
	Long: `Execute a Logo program from a file or inline code.

Examples:
  # Run a script file
  logo run draw.logo

  # Evaluate inline code
  logo run -e "print sum 1 2"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "run inline code instead of reading from file")
	runCmd.Flags().StringSliceVar(&scriptFolders, "script-folder", nil, "directory LOAD should search (repeatable)")
	runCmd.Flags().StringVar(&backendName, "backend", "", "turtle backend to install: nop or turtle (overrides .logorc.yaml)")
}

func runScript(cmd *cobra.Command, args []string) error {
	var input, filename string
	switch {
	case evalExpr != "":
		input, filename = evalExpr, "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := logo.ReadSource(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = content
	default:
		return fmt.Errorf("either provide a file path or use -e for inline code")
	}

	cfg, err := logoconfig.LoadFirst(".logorc.yaml")
	if err != nil {
		return err
	}

	interp := logo.CreateInterpreter()
	interp.DebugTokens = debugTokens
	interp.SetDebugPrimitives(debugPrimitives)
	interp.SetDebugProcs(debugProcs)

	folders := append([]string{}, cfg.ScriptFolders...)
	if filename != "<eval>" {
		folders = append(folders, filepath.Dir(filename))
	}
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

	if _, err := interp.ProcessInstructionList(input); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return fmt.Errorf("execution failed")
	}
	interp.Backend().WaitComplete()
	return nil
}
