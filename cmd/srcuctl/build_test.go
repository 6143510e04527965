package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVetTargetsFromArgsSkipsFlags(t *testing.T) {
	targets := vetTargetsFromArgs([]string{"-race", "./...", "-v"})
	require.Equal(t, []string{"./..."}, targets)
}

func TestVetTargetsFromArgsSkipsOutputFlagValue(t *testing.T) {
	targets := vetTargetsFromArgs([]string{"-o", "myapp", "main.go"})
	require.Equal(t, []string{"main.go"}, targets)
}

func TestVetTargetsFromArgsDefaultsToCurrentDirectory(t *testing.T) {
	targets := vetTargetsFromArgs(nil)
	require.Equal(t, []string{"."}, targets)
}

func TestVetTargetsFromArgsMultipleTargets(t *testing.T) {
	targets := vetTargetsFromArgs([]string{"main.go", "helper.go"})
	require.Equal(t, []string{"main.go", "helper.go"}, targets)
}
