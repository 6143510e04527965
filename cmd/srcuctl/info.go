package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/mod/modfile"
)

// infoCommand implements 'srcuctl info': prints the calling module's
// path and Go version by parsing its go.mod directly, without
// shelling out to 'go list'.
func infoCommand(_ []string) {
	path, err := findGoMod(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "srcuctl: %v\n", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "srcuctl: reading %s: %v\n", path, err)
		os.Exit(1)
	}

	f, err := modfile.Parse(path, data, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "srcuctl: parsing %s: %v\n", path, err)
		os.Exit(1)
	}

	fmt.Printf("module:     %s\n", f.Module.Mod.Path)
	if f.Go != nil {
		fmt.Printf("go version: %s\n", f.Go.Version)
	}
	fmt.Printf("toolchain:  %s\n", runtime.Version())
	fmt.Printf("requires:   %d direct, %d indirect\n", countRequires(f, false), countRequires(f, true))
}

func countRequires(f *modfile.File, indirect bool) int {
	n := 0
	for _, r := range f.Require {
		if r.Indirect == indirect {
			n++
		}
	}
	return n
}

// findGoMod walks up from dir looking for a go.mod, the same way the
// go tool resolves the current module root.
func findGoMod(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(abs, "go.mod")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("no go.mod found above %s", dir)
		}
		abs = parent
	}
}
