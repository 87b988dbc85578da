// Package semantic_analyzer finds assignments whose value is never read.
//
// The analysis runs two walks over the tree. The first computes, for every
// while loop, the variables its body and condition read before binding them
// (the loop's free variables). The second walks the program in order,
// tracking the latest unread assignment of each variable, and uses the loop
// sets from the first walk to account for values that survive into the next
// iteration. Bodies of if statements are treated as always executed.
package semantic_analyzer

import (
	"sort"
	"strings"

	"github.com/kievzenit/whilec/internal/ast"
)

type varSet map[string]struct{}

func (s varSet) add(name string) {
	s[name] = struct{}{}
}

func (s varSet) has(name string) bool {
	_, ok := s[name]
	return ok
}

func (s varSet) sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

type SemanticAnalyzer struct {
	tree *ast.Tree
	src  string

	// frees is keyed by the WHILE node owning the scope, or by ast.NoNode
	// for the program itself.
	frees map[ast.NodeRef]varSet
}

func NewSemanticAnalyzer(tree *ast.Tree, src string) *SemanticAnalyzer {
	return &SemanticAnalyzer{
		tree: tree,
		src:  src,
	}
}

// FindUnusedAssignments returns the ASSIGNMENT nodes of tree whose value is
// never read. The order of the result is unspecified; see SortByStart.
func FindUnusedAssignments(tree *ast.Tree, src string) []ast.NodeRef {
	return NewSemanticAnalyzer(tree, src).FindUnusedAssignments()
}

func (sa *SemanticAnalyzer) FindUnusedAssignments() []ast.NodeRef {
	sa.calculateFreeVariables()

	unused := make([]ast.NodeRef, 0)
	pending := make(map[string]ast.NodeRef)
	sa.findUnused(sa.tree.Root(), pending, &unused)

	rest := make([]ast.NodeRef, 0, len(pending))
	for _, ref := range pending {
		rest = append(rest, ref)
	}
	SortByStart(sa.tree, rest)

	return append(unused, rest...)
}

// FreeVariables returns the sorted free variables of every while loop, keyed
// by its node, and of the whole program, keyed by ast.NoNode.
func (sa *SemanticAnalyzer) FreeVariables() map[ast.NodeRef][]string {
	sa.calculateFreeVariables()

	result := make(map[ast.NodeRef][]string, len(sa.frees))
	for scope, vars := range sa.frees {
		result[scope] = vars.sorted()
	}

	return result
}

func (sa *SemanticAnalyzer) calculateFreeVariables() {
	if sa.frees != nil {
		return
	}

	sa.frees = map[ast.NodeRef]varSet{
		ast.NoNode: {},
	}
	sa.calculateScope(sa.tree.Root(), ast.NoNode, varSet{})
}

func (sa *SemanticAnalyzer) calculateScope(node, scope ast.NodeRef, bound varSet) {
	switch sa.tree.Kind(node) {
	case ast.IF:
		sa.addFrees(scope, sa.tree.Left(node), bound)
		sa.calculateScope(sa.tree.Right(node), scope, bound)

	case ast.WHILE:
		sa.frees[node] = sa.exprVariables(sa.tree.Left(node))
		sa.calculateScope(sa.tree.Right(node), node, varSet{})

		for name := range sa.frees[node] {
			if !bound.has(name) {
				sa.frees[scope].add(name)
			}
		}

	case ast.ASSIGNMENT:
		sa.addFrees(scope, sa.tree.Right(node), bound)
		bound.add(sa.varName(sa.tree.Left(node)))

	case ast.STATEMENTS:
		sa.calculateScope(sa.tree.Left(node), scope, bound)
		sa.calculateScope(sa.tree.Right(node), scope, bound)
	}
}

func (sa *SemanticAnalyzer) addFrees(scope, expr ast.NodeRef, bound varSet) {
	for name := range sa.exprVariables(expr) {
		if !bound.has(name) {
			sa.frees[scope].add(name)
		}
	}
}

func (sa *SemanticAnalyzer) findUnused(node ast.NodeRef, pending map[string]ast.NodeRef, unused *[]ast.NodeRef) {
	switch sa.tree.Kind(node) {
	case ast.IF:
		sa.markRead(sa.tree.Left(node), pending)
		sa.findUnused(sa.tree.Right(node), pending, unused)

	case ast.WHILE:
		sa.markRead(sa.tree.Left(node), pending)
		sa.findUnused(sa.tree.Right(node), pending, unused)

		// A later iteration may read what was assigned before this one.
		for name := range sa.frees[node] {
			delete(pending, name)
		}

	case ast.ASSIGNMENT:
		name := sa.varName(sa.tree.Left(node))
		if previous, ok := pending[name]; ok {
			*unused = append(*unused, previous)
		}
		sa.markRead(sa.tree.Right(node), pending)
		pending[name] = node

	case ast.STATEMENTS:
		sa.findUnused(sa.tree.Left(node), pending, unused)
		sa.findUnused(sa.tree.Right(node), pending, unused)
	}
}

func (sa *SemanticAnalyzer) markRead(expr ast.NodeRef, pending map[string]ast.NodeRef) {
	for name := range sa.exprVariables(expr) {
		delete(pending, name)
	}
}

// varName strips the parentheses a grouped VAR's range was widened to.
func (sa *SemanticAnalyzer) varName(ref ast.NodeRef) string {
	return strings.Trim(sa.tree.Text(ref, sa.src), "() \t\r\n")
}

// exprVariables collects the names of every VAR reachable from expr.
func (sa *SemanticAnalyzer) exprVariables(expr ast.NodeRef) varSet {
	vars := varSet{}

	var collect func(ref ast.NodeRef)
	collect = func(ref ast.NodeRef) {
		switch sa.tree.Kind(ref) {
		case ast.VAR:
			vars.add(sa.varName(ref))
		case ast.BINOP:
			collect(sa.tree.Left(ref))
			collect(sa.tree.Right(ref))
		}
	}
	collect(expr)

	return vars
}

// SortByStart orders refs by the start offset of their nodes, which is
// source order for statements.
func SortByStart(tree *ast.Tree, refs []ast.NodeRef) {
	sort.SliceStable(refs, func(i, j int) bool {
		return tree.Start(refs[i]) < tree.Start(refs[j])
	})
}
