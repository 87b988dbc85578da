package compiler_errors

import (
	"fmt"
	"io"
	"os"
)

type CompilerError interface {
	GetMessage() string
}

// PositionedError is a CompilerError that knows the byte offset it occurred
// at.
type PositionedError interface {
	CompilerError
	GetPos() int
}

type ErrorHandler interface {
	AddError(err CompilerError)
	HasErrors() bool
	Flush()
	FailNow()
}

type CompilerErrorHandler struct {
	errors []CompilerError
	writer io.Writer
}

func NewErrorHandler(outputWriter io.Writer) ErrorHandler {
	return &CompilerErrorHandler{
		errors: make([]CompilerError, 0),
		writer: outputWriter,
	}
}

func (eh *CompilerErrorHandler) AddError(err CompilerError) {
	eh.errors = append(eh.errors, err)
}

func (eh *CompilerErrorHandler) HasErrors() bool {
	return len(eh.errors) > 0
}

// Flush writes every collected error and forgets them.
func (eh *CompilerErrorHandler) Flush() {
	if !eh.HasErrors() {
		return
	}

	fmt.Fprintln(eh.writer, "Build failed with errors:")

	for _, err := range eh.errors {
		fmt.Fprintf(eh.writer, "ERROR: %s\n", err.GetMessage())
	}

	eh.errors = eh.errors[:0]
}

func (eh *CompilerErrorHandler) FailNow() {
	eh.Flush()
	os.Exit(1)
}
