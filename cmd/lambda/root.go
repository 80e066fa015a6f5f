package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/co-dan/plzoo/session"
)

const version = "1.0.0"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lambda [file ...]",
		Short: "An interactive toplevel for the untyped lambda calculus",
		Long: `lambda is an interactive toplevel for the untyped lambda calculus.

It keeps a growing context of constants and definitions and normalizes
expressions under a selectable evaluation mode (#eager/#lazy,
#deep/#shallow). Files given with -l or as bare arguments are preloaded
in order; bare file arguments also suppress the interactive prompt.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}

	fl := cmd.Flags()
	fl.BoolP("version", "v", false, "print version and exit")
	fl.IntP("verbosity", "V", 0, "output verbosity (2 traces preloaded directives)")
	fl.BoolP("non-interactive", "n", false, "do not run the interactive toplevel")
	fl.StringArrayP("load", "l", nil, "preload a file non-interactively (repeatable)")
	fl.String("wrapper", "", "line-editing wrapper program to exec around the toplevel")
	fl.Bool("no-wrapper", false, "do not exec a line-editing wrapper")
	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	fl := cmd.Flags()

	if v, _ := fl.GetBool("version"); v {
		fmt.Fprintf(cmd.OutOrStdout(), "lambda %s\n", version)
		return nil
	}

	cfg, err := loadConfig(fl)
	if err != nil {
		return err
	}

	prompt := !cfg.NonInteractive && len(args) == 0
	tty := isatty.IsTerminal(os.Stdin.Fd())

	// Hand the terminal to a line-editing wrapper first; on success the
	// replaced process never reaches the session below.
	if prompt && tty && !cfg.NoWrapper {
		execWrapper(cfg.Wrapper)
	}

	x := session.NewExecutor(cmd.OutOrStdout(), cmd.ErrOrStderr())
	x.Verbosity = cfg.Verbosity

	env := session.NewContext()
	loads, _ := fl.GetStringArray("load")
	env, err = x.LoadFiles(cmd.Context(), env, loads, false)
	if err != nil {
		return err
	}
	// Bare file arguments print like a transcript of an interactive
	// session; only the prompt afterwards is suppressed.
	env, err = x.LoadFiles(cmd.Context(), env, args, true)
	if err != nil {
		return err
	}

	if !prompt {
		return nil
	}
	if tty {
		fmt.Fprintf(cmd.OutOrStdout(), "lambda %s -- untyped lambda calculus. Type #help; for help.\n", version)
	}
	return runToplevel(x, env, cfg, tty)
}
