package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/chzyer/readline"

	"github.com/co-dan/plzoo/lexer"
	"github.com/co-dan/plzoo/parser"
	"github.com/co-dan/plzoo/session"
)

const contPrompt = "   ... "

// runToplevel drives the interactive loop from the accumulated
// context: readline when stdin is a terminal, a plain scanner loop
// when input is piped in. Both terminate on EOF or #quit.
func runToplevel(x *session.Executor, env session.Context, cfg *config, tty bool) error {
	if tty {
		return runReadline(x, env, cfg)
	}
	return runPlain(x, env)
}

func runReadline(x *session.Executor, env session.Context, cfg *config) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            cfg.Prompt,
		HistoryFile:       cfg.HistoryFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "#quit;",
		HistorySearchFold: true,
		AutoComplete:      directiveCompleter(),
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	var buf strings.Builder
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			buf.Reset()
			rl.SetPrompt(cfg.Prompt)
			fmt.Fprintln(x.Out, "Interrupted.")
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(x.Out)
			return nil
		}
		if err != nil {
			return err
		}

		buf.WriteString(line)
		buf.WriteString("\n")
		if !terminated(line) {
			rl.SetPrompt(contPrompt)
			continue
		}
		rl.SetPrompt(cfg.Prompt)

		src := buf.String()
		buf.Reset()
		env, err = executeChunk(x, env, src)
		if err != nil {
			return err
		}
	}
}

func runPlain(x *session.Executor, env session.Context) error {
	sc := bufio.NewScanner(os.Stdin)
	var buf strings.Builder
	var err error
	for sc.Scan() {
		line := sc.Text()
		buf.WriteString(line)
		buf.WriteString("\n")
		if !terminated(line) {
			continue
		}
		src := buf.String()
		buf.Reset()
		env, err = executeChunk(x, env, src)
		if err != nil {
			return err
		}
	}
	if strings.TrimSpace(buf.String()) != "" {
		if _, err = executeChunk(x, env, buf.String()); err != nil {
			return err
		}
	}
	return sc.Err()
}

// executeChunk parses one buffered chunk and executes its directives
// against env. The loop is fault tolerant: language errors are
// formatted and printed, the failing directive has no effect beyond
// what the executor already applied, and execution continues. A SIGINT
// during normalization cancels it and reports "Interrupted.". Only
// Halt and unexpected errors escape.
func executeChunk(x *session.Executor, env session.Context, src string) (session.Context, error) {
	dirs, err := parser.New(lexer.New(src)).ParseProgram()
	if err != nil {
		fmt.Fprintln(x.Err, err)
		return env, nil
	}
	for _, d := range dirs {
		ictx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		next, err := x.Execute(ictx, true, env, d)
		stop()
		env = next
		if err == nil {
			continue
		}
		var halt session.Halt
		switch {
		case errors.As(err, &halt):
			return env, halt
		case errors.Is(err, context.Canceled):
			fmt.Fprintln(x.Out, "Interrupted.")
		case session.Recoverable(err):
			fmt.Fprintln(x.Err, err)
		default:
			return env, err
		}
	}
	return env, nil
}

// terminated reports whether line ends the directive being buffered,
// ignoring a trailing -- comment.
func terminated(line string) bool {
	if i := strings.Index(line, "--"); i >= 0 {
		line = line[:i]
	}
	return strings.HasSuffix(strings.TrimSpace(line), ";")
}

func directiveCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("#constant"),
		readline.PcItem("#context"),
		readline.PcItem("#eager"),
		readline.PcItem("#lazy"),
		readline.PcItem("#deep"),
		readline.PcItem("#shallow"),
		readline.PcItem("#help"),
		readline.PcItem("#quit"),
	)
}
