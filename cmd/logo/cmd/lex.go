package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwaldbieser/logopy/internal/lexer"
	"github.com/cwaldbieser/logopy/pkg/logo"
	"github.com/cwaldbieser/logopy/pkg/token"
)

var (
	lexShowPos  bool
	lexOnlyWord bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Logo script or expression",
	Long: `Tokenize (lex) a Logo program and print the resulting tokens.

Examples:
  # Tokenize a script file
  logo lex draw.logo

  # Tokenize inline code
  logo lex -e "forward 100 right 90"

  # Show token positions
  logo lex --show-pos draw.logo`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexOnlyWord, "only-words", false, "show only WORD tokens")
}

func lexScript(_ *cobra.Command, args []string) error {
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

	toks, err := lexer.New(input).Tokenize()
	if err != nil {
		return err
	}

	for _, tok := range toks {
		if lexOnlyWord && tok.Kind != token.WORD {
			continue
		}
		printToken(tok)
	}
	fmt.Printf("--- %d token(s) from %s\n", len(toks), filename)
	return nil
}

func printToken(tok token.Token) {
	output := fmt.Sprintf("[%-8s] %q", tok.Kind, tok.Literal)
	if lexShowPos {
		output += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}
	fmt.Println(output)
}
