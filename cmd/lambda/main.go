package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/co-dan/plzoo/session"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var halt session.Halt
		if errors.As(err, &halt) {
			os.Exit(halt.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
