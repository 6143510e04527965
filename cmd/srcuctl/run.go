package main

import (
	"fmt"
	"os"
	"os/exec"
)

// runCommand implements 'srcuctl run': vet, then hand off to 'go run'.
func runCommand(args []string) {
	targets := vetTargetsFromArgs(args)
	if err := runVet(targets); err != nil {
		fmt.Fprintf(os.Stderr, "srcuvet: %v\n", err)
		os.Exit(1)
	}

	cmd := exec.Command("go", append([]string{"run"}, args...)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	if err := cmd.Run(); err != nil {
		os.Exit(exitCodeOf(err))
	}
}
