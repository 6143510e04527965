package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/require"
)

func parseFunc(t *testing.T, src string) (*token.FileSet, *ast.FuncDecl) {
	t.Helper()
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "test.go", "package p\n"+src, 0)
	require.NoError(t, err)

	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			return fset, fn
		}
	}
	t.Fatal("no function declaration found")
	return nil, nil
}

func TestCheckFuncBalancedIsClean(t *testing.T) {
	fset, fn := parseFunc(t, `
func f(d *Domain) {
	tok := d.Enter()
	d.Leave(tok)
}
`)
	require.Empty(t, checkFunc(fset, fn))
}

func TestCheckFuncMissingLeaveIsFlagged(t *testing.T) {
	fset, fn := parseFunc(t, `
func f(d *Domain) {
	tok := d.Enter()
	_ = tok
}
`)
	errs := checkFunc(fset, fn)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Message, "no matching Leave")
}

func TestCheckFuncDoubleLeaveIsFlagged(t *testing.T) {
	fset, fn := parseFunc(t, `
func f(d *Domain) {
	tok := d.Enter()
	d.Leave(tok)
	d.Leave(tok)
}
`)
	errs := checkFunc(fset, fn)
	require.Len(t, errs, 1)
	require.Contains(t, errs[0].Message, "2 times")
}

func TestCheckFuncIgnoresUnrelatedAssignments(t *testing.T) {
	fset, fn := parseFunc(t, `
func f() {
	x := 1
	y := x + 1
	_ = y
}
`)
	require.Empty(t, checkFunc(fset, fn))
}
