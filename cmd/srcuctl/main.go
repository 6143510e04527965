// Package main implements the srcuctl CLI tool.
//
// srcuctl is a thin companion to the go tool for programs that use the
// srcu package. It does not instrument anything: its job is to run
// srcuvet (the misuse linter in cmd/srcuvet) before the usual go
// build/run/test step, so a program that pairs Enter/Leave incorrectly
// is caught before it ever runs.
//
// Usage:
//
//	srcuctl build main.go     # vet, then go build
//	srcuctl run main.go       # vet, then go run
//	srcuctl test ./...        # vet, then go test -race
//	srcuctl info              # print module path and Go version
//	srcuctl bench             # compare expedited vs. normal grace-period latency
package main

import (
	"fmt"
	"os"

	_ "go.uber.org/automaxprocs"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "build":
		buildCommand(args)
	case "run":
		runCommand(args)
	case "test":
		testCommand(args)
	case "info":
		infoCommand(args)
	case "bench":
		benchCommand(args)
	case "version", "--version", "-v":
		fmt.Printf("srcuctl version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`srcuctl - companion tool for the srcu package

USAGE:
    srcuctl <command> [arguments]

COMMANDS:
    build      Vet for Enter/Leave misuse, then go build
    run        Vet for Enter/Leave misuse, then go run
    test       Vet for Enter/Leave misuse, then go test -race
    info       Print module path and Go version
    bench      Compare expedited vs. normal grace-period latency
    version    Show version information
    help       Show this help message

EXAMPLES:
    srcuctl build ./cmd/myapp
    srcuctl run ./examples/single_reader
    srcuctl test ./...
    srcuctl bench -readers 64 -hold 10ms

ABOUT:
    srcuctl never rewrites your source. It runs srcuvet's read-only
    analysis first and refuses to proceed past a finding; everything
    after that point is an ordinary go build/run/test invocation.
`)
}
