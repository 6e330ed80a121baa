// Package repl implements an interactive read-eval-print loop that
// shares one binding context across every line of input, the way a
// single connection shares one player frame for its whole session.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"lumen/config"
	"lumen/eval"
	"lumen/parser"
	"lumen/types"
)

const continuePrompt = ".. "

// REPL is one interactive session: its own scanner, its own top-level
// environment, and its own evaluator instance so that the call-depth
// count of one session can never bleed into another.
type REPL struct {
	in        io.Reader
	out       io.Writer
	cfg       *config.Config
	env       *types.Environment
	evaluator *eval.Evaluator
	log       *slog.Logger
	sessionID uuid.UUID
}

// New creates a REPL reading from in and writing to out, configured by cfg.
func New(in io.Reader, out io.Writer, cfg *config.Config, logger *slog.Logger) *REPL {
	if logger == nil {
		logger = slog.Default()
	}
	return &REPL{
		in:        in,
		out:       out,
		cfg:       cfg,
		env:       types.NewEnvironment(),
		evaluator: eval.NewEvaluatorWithDepth(cfg.MaxCallDepth),
		log:       logger,
		sessionID: uuid.New(),
	}
}

// Run drives the loop until in is exhausted (EOF) or the scanner errs.
func (r *REPL) Run() {
	r.log.Info("repl session started", "session_id", r.sessionID.String())
	defer r.log.Info("repl session ended", "session_id", r.sessionID.String())

	var history io.Writer
	if r.cfg.HistoryFile != "" {
		f, err := os.OpenFile(r.cfg.HistoryFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			r.log.Warn("cannot open history file", "path", r.cfg.HistoryFile, "error", err)
		} else {
			defer f.Close()
			history = f
		}
	}

	scanner := bufio.NewScanner(r.in)

	for {
		fmt.Fprint(r.out, r.cfg.Prompt)
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		if history != nil {
			fmt.Fprintln(history, line)
		}

		r.evalLine(line)
	}
}

func (r *REPL) evalLine(line string) {
	l := parser.NewLexer(line)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		r.printParserErrors(errs)
		return
	}

	result := r.evaluator.Run(program, r.env)
	if result == nil {
		return
	}
	fmt.Fprintln(r.out, result.String())
}

func (r *REPL) printParserErrors(errors []string) {
	for _, msg := range errors {
		fmt.Fprintln(r.out, "\t"+msg)
	}
}
