// Package printer renders a syntax tree as indented text, one node per line
// with its kind, operator, byte range and the source text it spans.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/kievzenit/whilec/internal/ast"
	"github.com/kievzenit/whilec/internal/lexer"
)

const indent = "   "

// Fprint writes tree to w. src must be the text the tree was parsed from.
func Fprint(w io.Writer, tree *ast.Tree, src string) {
	p := &printer{w: w, tree: tree, src: src}
	p.print(tree.Root(), "")
}

func Sprint(tree *ast.Tree, src string) string {
	var sb strings.Builder
	Fprint(&sb, tree, src)
	return sb.String()
}

type printer struct {
	w    io.Writer
	tree *ast.Tree
	src  string
}

func (p *printer) print(ref ast.NodeRef, prefix string) {
	start, end := p.tree.Range(ref)

	op := ""
	if ot := p.tree.Operator(ref); ot != lexer.UNDEFINED {
		op = " " + ot.String()
	}

	fmt.Fprintf(p.w, "%s{ %s%s [%d..%d] '%s'", prefix, p.tree.Kind(ref), op, start, end, p.tree.Text(ref, p.src))

	if !p.tree.HasLeft(ref) && !p.tree.HasRight(ref) {
		fmt.Fprintln(p.w, "}")
		return
	}
	fmt.Fprintln(p.w)

	if p.tree.HasLeft(ref) {
		p.print(p.tree.Left(ref), prefix+indent)
	}
	if p.tree.HasRight(ref) {
		p.print(p.tree.Right(ref), prefix+indent)
	}

	fmt.Fprintf(p.w, "%s}\n", prefix)
}
