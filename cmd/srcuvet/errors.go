package main

import (
	"fmt"
	"go/token"
)

// VetError reports one suspected misuse, with file position attached.
//
// Adapted from the instrumentation engine's InstrumentationError: same
// file:line:column plus message plus optional suggestion shape, minus
// the AST-rewriting half of that type — srcuvet only ever reads code,
// never modifies it.
type VetError struct {
	File       string
	Line       int
	Column     int
	Message    string
	Suggestion string
}

func (e *VetError) Error() string {
	result := fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Message)
	if e.Suggestion != "" {
		result += fmt.Sprintf("\n\tsuggestion: %s", e.Suggestion)
	}
	return result
}

func newVetError(fset *token.FileSet, pos token.Pos, msg string) *VetError {
	p := fset.Position(pos)
	return &VetError{File: p.Filename, Line: p.Line, Column: p.Column, Message: msg}
}

func (e *VetError) withSuggestion(s string) *VetError {
	e.Suggestion = s
	return e
}
