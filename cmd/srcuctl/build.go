package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// buildCommand implements 'srcuctl build': vet the named packages for
// Enter/Leave misuse, then hand off to 'go build' unchanged.
func buildCommand(args []string) {
	targets := vetTargetsFromArgs(args)
	if err := runVet(targets); err != nil {
		fmt.Fprintf(os.Stderr, "srcuvet: %v\n", err)
		os.Exit(1)
	}

	cmd := exec.Command("go", append([]string{"build"}, args...)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	if err := cmd.Run(); err != nil {
		os.Exit(exitCodeOf(err))
	}
}

// vetTargetsFromArgs extracts the package/file arguments a go build or
// go run invocation would operate on, skipping flags: anything starting
// with '-' is treated as a flag, the argument after -o is skipped as
// its value, and everything else is a target. srcuvet itself does no
// flag parsing and treats every argument it receives as a target.
func vetTargetsFromArgs(args []string) []string {
	var targets []string
	skipNext := false
	for _, a := range args {
		if skipNext {
			skipNext = false
			continue
		}
		if len(a) > 0 && a[0] == '-' {
			if a == "-o" {
				skipNext = true
			}
			continue
		}
		targets = append(targets, a)
	}
	if len(targets) == 0 {
		targets = []string{"."}
	}
	return targets
}

// runVet invokes the srcuvet binary found on PATH. If it isn't
// installed, build/run/test degrade to a warning rather than a hard
// failure — srcuvet is a companion lint, not a required dependency of
// the srcu module itself.
func runVet(targets []string) error {
	path, err := exec.LookPath("srcuvet")
	if err != nil {
		fmt.Fprintln(os.Stderr, "srcuctl: srcuvet not found on PATH, skipping misuse check")
		return nil
	}

	cmd := exec.Command(path, targets...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func exitCodeOf(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "srcuctl: %v\n", err)
	return 1
}
