// Package main implements srcuvet, a read-only static check for
// common Enter/Leave misuse in code that uses the srcu package.
//
// It walks each function body looking for a call to a method named
// Enter whose result is bound to a local variable, then checks that
// the same variable is later passed to a call to a method named
// Leave in the same function. A variable that never reaches a Leave
// call is reported as a likely leaked reader; a variable passed to
// more than one Leave call is reported as a likely double-leave.
//
// This is a syntactic check, not a type-checked one: it triggers on
// the method names Enter/Leave regardless of receiver type, the same
// tradeoff go vet's printf check makes for Printf-shaped functions
// that aren't fmt.Printf. False positives are possible on unrelated
// types that happen to share these method names; false negatives are
// possible when a Token is threaded through a helper function before
// reaching Leave. Neither direction is fixed automatically — srcuvet
// only ever reports.
package main

import (
	"fmt"
	"go/ast"
	"go/token"
)

type tokenBinding struct {
	name      string
	enterPos  token.Pos
	leaveSeen int
}

// checkFunc inspects one function body for Enter/Leave balance.
func checkFunc(fset *token.FileSet, fn *ast.FuncDecl) []*VetError {
	if fn.Body == nil {
		return nil
	}

	bindings := map[string]*tokenBinding{}
	var order []string

	ast.Inspect(fn.Body, func(n ast.Node) bool {
		switch stmt := n.(type) {
		case *ast.AssignStmt:
			recordEnterAssignment(stmt, bindings, &order)
		case *ast.ExprStmt:
			if call, ok := stmt.X.(*ast.CallExpr); ok {
				recordLeaveCall(call, bindings)
			}
		case *ast.DeferStmt:
			recordLeaveCall(stmt.Call, bindings)
		}
		return true
	})

	var errs []*VetError
	for _, name := range order {
		b := bindings[name]
		switch {
		case b.leaveSeen == 0:
			errs = append(errs, newVetError(fset, b.enterPos,
				fmt.Sprintf("variable %q holds an Enter() result with no matching Leave() call in this function", name)).
				withSuggestion("pair every Enter() with exactly one Leave(), even on error paths (consider defer)"))
		case b.leaveSeen > 1:
			errs = append(errs, newVetError(fset, b.enterPos,
				fmt.Sprintf("variable %q is passed to Leave() %d times", name, b.leaveSeen)).
				withSuggestion("call Leave() exactly once per Enter()"))
		}
	}
	return errs
}

func recordEnterAssignment(stmt *ast.AssignStmt, bindings map[string]*tokenBinding, order *[]string) {
	if len(stmt.Lhs) != 1 || len(stmt.Rhs) != 1 {
		return
	}
	ident, ok := stmt.Lhs[0].(*ast.Ident)
	if !ok || ident.Name == "_" {
		return
	}
	call, ok := stmt.Rhs[0].(*ast.CallExpr)
	if !ok {
		return
	}
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "Enter" {
		return
	}

	bindings[ident.Name] = &tokenBinding{name: ident.Name, enterPos: ident.Pos()}
	*order = append(*order, ident.Name)
}

func recordLeaveCall(call *ast.CallExpr, bindings map[string]*tokenBinding) {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "Leave" || len(call.Args) != 1 {
		return
	}
	arg, ok := call.Args[0].(*ast.Ident)
	if !ok {
		return
	}
	if b, ok := bindings[arg.Name]; ok {
		b.leaveSeen++
	}
}
