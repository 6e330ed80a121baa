package cmd

import (
	"fmt"
	"os"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"lumen/config"
	"lumen/eval"
	"lumen/parser"
	"lumen/types"
)

var (
	evalExpr string
	dumpAST  bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a lumen script file or inline expression",
	Long: `Execute a lumen program from a file or an inline expression.

Examples:
  lumen run script.lm
  lumen run -e "let x = 5; puts(x * x);"
  lumen run --dump-ast script.lm`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from a file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed AST before evaluating")
}

func runScript(_ *cobra.Command, args []string) error {
	var input string

	switch {
	case evalExpr != "":
		input = evalExpr
	case len(args) == 1:
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
		input = string(content)
	default:
		return fmt.Errorf("provide a file path or use -e for inline code")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	l := parser.NewLexer(input)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, msg := range errs {
			exitWithError("%s", msg)
		}
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	if dumpAST {
		fmt.Printf("%# v\n", pretty.Formatter(program))
	}

	evaluator := eval.NewEvaluatorWithDepth(cfg.MaxCallDepth)
	env := types.NewEnvironment()
	result := evaluator.Run(program, env)

	if result != nil && result.Kind() == types.ERROR {
		exitWithError("%s", result.String())
		return fmt.Errorf("evaluation failed")
	}

	if result != nil {
		fmt.Println(result.String())
	}
	return nil
}
