package main

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	targets := os.Args[1:]
	if len(targets) == 0 {
		targets = []string{"."}
	}

	var allErrs []*VetError
	for _, target := range targets {
		files, err := goFilesUnder(target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "srcuvet: %v\n", err)
			os.Exit(1)
		}
		for _, f := range files {
			errs, err := checkFile(f)
			if err != nil {
				fmt.Fprintf(os.Stderr, "srcuvet: %v\n", err)
				os.Exit(1)
			}
			allErrs = append(allErrs, errs...)
		}
	}

	for _, e := range allErrs {
		fmt.Fprintln(os.Stderr, e)
	}
	if len(allErrs) > 0 {
		os.Exit(1)
	}
}

func checkFile(path string) ([]*VetError, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	var errs []*VetError
	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		errs = append(errs, checkFunc(fset, fn)...)
	}
	return errs, nil
}

// goFilesUnder resolves a target (a single .go file, a directory, or
// a "./..." pattern) into the list of non-test .go files it names.
func goFilesUnder(target string) ([]string, error) {
	if strings.HasSuffix(target, ".go") {
		return []string{target}, nil
	}

	root := strings.TrimSuffix(strings.TrimSuffix(target, "/..."), "...")
	if root == "" {
		root = "."
	}

	var files []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			name := info.Name()
			if name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if name == "vendor" || name == "testdata" {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, ".go") && !strings.HasSuffix(path, "_test.go") {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
