package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kievzenit/whilec/internal/compiler_errors"
	"github.com/kievzenit/whilec/internal/lexer"
	"github.com/kievzenit/whilec/internal/parser"
	"github.com/kievzenit/whilec/internal/printer"
	"github.com/kievzenit/whilec/internal/semantic_analyzer"
)

type options struct {
	tokens bool
	tree   bool
	dump   bool
	unused bool
}

func main() {
	var opts options
	flag.BoolVar(&opts.tokens, "tokens", false, "print the token stream")
	flag.BoolVar(&opts.tree, "tree", false, "pretty-print the syntax tree")
	flag.BoolVar(&opts.dump, "dump", false, "dump the node arena")
	flag.BoolVar(&opts.unused, "unused", true, "report assignments whose value is never read")
	flag.Parse()

	fileName, src, err := readSource(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	eh := compiler_errors.NewErrorHandler(os.Stderr)
	if !run(os.Stdout, fileName, src, opts, eh) {
		eh.FailNow()
	}
}

func readSource(fileName string) (string, string, error) {
	if fileName == "" || fileName == "-" {
		data, err := io.ReadAll(os.Stdin)
		return "<stdin>", string(data), err
	}

	data, err := os.ReadFile(fileName)
	return fileName, string(data), err
}

// run compiles src and writes the requested outputs to w. Errors go to eh;
// run reports whether src was accepted.
func run(w io.Writer, fileName, src string, opts options, eh compiler_errors.ErrorHandler) bool {
	tree, err := parser.Parse(src)
	if err != nil {
		var positioned compiler_errors.PositionedError
		if errors.As(err, &positioned) {
			eh.AddError(compiler_errors.Locate(fileName, src, positioned, lexer.Keywords()...))
		} else {
			eh.AddError(&compiler_errors.SourceError{FileName: fileName, Message: err.Error()})
		}
		return false
	}

	if opts.tokens {
		tokens, _ := lexer.Tokenize(src)
		for _, token := range tokens {
			if token.Kind == lexer.WHITESPACE {
				continue
			}
			fmt.Fprintf(w, "%s '%s'\n", token.String(), token.Text(src))
		}
	}

	if opts.tree {
		printer.Fprint(w, tree, src)
	}

	if opts.dump {
		fmt.Fprintln(w, tree.Dump())
	}

	if opts.unused {
		unused := semantic_analyzer.FindUnusedAssignments(tree, src)
		semantic_analyzer.SortByStart(tree, unused)
		for _, ref := range unused {
			line, column := compiler_errors.LineColumn(src, tree.Start(ref))
			fmt.Fprintf(w, "%s:%d:%d: value of '%s' is never used\n", fileName, line, column, tree.Text(ref, src))
		}
	}

	return true
}
