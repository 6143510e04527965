package main

import (
	"fmt"
	"os"
	"os/exec"
)

// testCommand implements 'srcuctl test': vet, then hand off to
// 'go test -race'. The race flag is always added.
func testCommand(args []string) {
	targets := vetTargetsFromArgs(args)
	if err := runVet(targets); err != nil {
		fmt.Fprintf(os.Stderr, "srcuvet: %v\n", err)
		os.Exit(1)
	}

	goArgs := append([]string{"test", "-race"}, args...)
	cmd := exec.Command("go", goArgs...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	if err := cmd.Run(); err != nil {
		os.Exit(exitCodeOf(err))
	}
}
