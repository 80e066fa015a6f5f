package main

import (
	"os"
	"os/exec"
	"syscall"
)

// wrapperSentinel is appended to the re-exec'd argument list so the
// wrapped child does not try to wrap itself again.
const wrapperSentinel = "--no-wrapper"

// execWrapper tries to replace the current process image with each
// candidate line-editing wrapper in turn, invoked as
//
//	<wrapper> <this binary> <original args> --no-wrapper
//
// On success the call never returns. A candidate that cannot be found
// or exec'd is skipped silently; when every candidate fails, execution
// falls through to the unwrapped session.
func execWrapper(candidates []string) {
	exe, err := os.Executable()
	if err != nil {
		return
	}
	for _, cand := range candidates {
		if cand == "" {
			continue
		}
		path, err := exec.LookPath(cand)
		if err != nil {
			continue
		}
		argv := append([]string{cand, exe}, os.Args[1:]...)
		argv = append(argv, wrapperSentinel)
		// Exec only returns on failure; try the next candidate.
		_ = syscall.Exec(path, argv, os.Environ())
	}
}
