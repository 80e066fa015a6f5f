package session

import (
	"context"
	"fmt"
	"os"

	"github.com/co-dan/plzoo/lexer"
	"github.com/co-dan/plzoo/parser"
)

// LoadFile parses path into directives and folds Execute over them.
// The first error aborts the rest of the file; directives before the
// failing one stay reflected in the returned context.
func (x *Executor) LoadFile(ctx context.Context, env Context, path string, interactive bool) (Context, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return env, err
	}
	dirs, err := parser.New(lexer.New(string(src))).ParseProgram()
	if err != nil {
		return env, fmt.Errorf("%s: %w", path, err)
	}
	for _, d := range dirs {
		if x.Verbosity >= 2 {
			fmt.Fprintf(x.Err, "lambda: %s: %s\n", path, d)
		}
		env, err = x.Execute(ctx, interactive, env, d)
		if err != nil {
			return env, fmt.Errorf("%s: %w", path, err)
		}
	}
	return env, nil
}

// LoadFiles folds LoadFile over paths in order, stopping the whole
// chain at the first error.
func (x *Executor) LoadFiles(ctx context.Context, env Context, paths []string, interactive bool) (Context, error) {
	var err error
	for _, path := range paths {
		env, err = x.LoadFile(ctx, env, path, interactive)
		if err != nil {
			return env, err
		}
	}
	return env, nil
}
