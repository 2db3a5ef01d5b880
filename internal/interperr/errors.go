// Package interperr defines the error and control-flow-signal types
// raised while lexing, parsing, and evaluating a Logo program, along
// with the source-context-and-caret formatting used to report them.
//
// Control flow (StopSignal, OutputSignal, HaltSignal) is deliberately
// kept separate from error types: STOP/OUTPUT unwind a procedure call
// the way a return statement would, they are not failures.
package interperr

import (
	"fmt"
	"strings"

	"github.com/cwaldbieser/logopy/pkg/token"
)

// LogoError is the base error raised for any runtime fault: unknown
// procedure, wrong number of inputs, type mismatch, and so on.
type LogoError struct {
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// NewLogoError builds a LogoError. Pos may be the zero value when no
// source position is available (e.g. an error raised from within a
// native builtin that only has the offending value, not a token).
func NewLogoError(pos token.Position, message, source, file string) *LogoError {
	return &LogoError{Pos: pos, Message: message, Source: source, File: file}
}

func (e *LogoError) Error() string { return e.Format(false) }

// Format renders the error with a source-line-and-caret, mirroring
// the teacher's CompilerError.Format.
func (e *LogoError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column)
	} else if e.Pos.Line > 0 {
		fmt.Fprintf(&sb, "Error at line %d:%d\n", e.Pos.Line, e.Pos.Column)
	}

	if line := sourceLine(e.Source, e.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// ParseError is raised by the lexer/parser for malformed source: an
// unmatched bracket, a dangling infix operator, an illegal token.
type ParseError struct {
	*LogoError
}

// NewParseError builds a ParseError.
func NewParseError(pos token.Position, message, source, file string) *ParseError {
	return &ParseError{LogoError: NewLogoError(pos, message, source, file)}
}

// ExpectedEndError is the distinguished ParseError raised when a `TO`
// procedure definition runs out of tokens before an `END` is seen. It
// is its own type (rather than a plain ParseError) so a REPL can tell
// "this input is incomplete, read another line" apart from "this
// input is wrong" and prompt for continuation instead of reporting a
// failure.
type ExpectedEndError struct {
	*ParseError
}

// NewExpectedEndError builds an ExpectedEndError for procedure name.
func NewExpectedEndError(pos token.Position, procName, source, file string) *ExpectedEndError {
	msg := fmt.Sprintf("expected END to close procedure %q", procName)
	return &ExpectedEndError{ParseError: NewParseError(pos, msg, source, file)}
}

// StopSignal unwinds execution of a procedure body up to the nearest
// enclosing execute_procedure call, the way STOP does. It is not an
// error: it is caught and discarded by the procedure that owns the
// current call frame.
type StopSignal struct{}

func (StopSignal) Error() string { return "STOP outside of a procedure call" }

// OutputSignal unwinds execution the same way StopSignal does, but
// carries the value OUTPUT produced.
type OutputSignal struct {
	Value interface{}
}

func (OutputSignal) Error() string { return "OUTPUT outside of a procedure call" }

// HaltSignal unwinds all the way out of program execution; it is
// raised by the HALT primitive (or an external interrupt such as a
// turtle-backend stop button) and caught only by pkg/logo's
// ReceiveInput, the REPL's input path, which resets the halt flag and
// keeps accepting input.
type HaltSignal struct{}

func (HaltSignal) Error() string { return "program halted" }
