package ast

import (
	"fmt"
	"math"

	"github.com/kievzenit/whilec/internal/lexer"
	"github.com/sanity-io/litter"
)

type NodeKind int

const (
	IF NodeKind = iota
	WHILE
	ASSIGNMENT
	VAR
	CONST
	BINOP
	STATEMENTS
)

func (nk NodeKind) String() string {
	switch nk {
	case IF:
		return "IF"
	case WHILE:
		return "WHILE"
	case ASSIGNMENT:
		return "ASSIGNMENT"
	case VAR:
		return "VAR"
	case CONST:
		return "CONST"
	case BINOP:
		return "BINOP"
	case STATEMENTS:
		return "STATEMENTS"
	default:
		panic(fmt.Sprintf("NodeKind.String(): received illegal node kind: %d", nk))
	}
}

func (nk NodeKind) IsStatement() bool {
	return nk == ASSIGNMENT || nk == IF || nk == WHILE
}

func (nk NodeKind) IsScope() bool {
	return nk == IF || nk == WHILE
}

func (nk NodeKind) IsExpression() bool {
	return nk == BINOP || nk == VAR || nk == CONST
}

// NodeRef addresses a node inside the Tree that created it. Refs from
// different trees must never be mixed.
type NodeRef uint16

// NoNode marks an absent child or parent.
const NoNode NodeRef = math.MaxUint16

// MaxNodes is the number of nodes a single tree can hold.
const MaxNodes = int(NoNode)

type node struct {
	kind NodeKind

	left   NodeRef
	right  NodeRef
	parent NodeRef

	start int
	end   int

	op lexer.OperatorType
}

// Tree is an arena of syntax nodes. A Tree returned by Builder.Finish is
// never modified again.
type Tree struct {
	nodes []node
	root  NodeRef
}

func (t *Tree) get(ref NodeRef) *node {
	return &t.nodes[ref]
}

func (t *Tree) Root() NodeRef {
	return t.root
}

func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) Kind(ref NodeRef) NodeKind {
	return t.get(ref).kind
}

func (t *Tree) Left(ref NodeRef) NodeRef {
	return t.get(ref).left
}

func (t *Tree) Right(ref NodeRef) NodeRef {
	return t.get(ref).right
}

func (t *Tree) Parent(ref NodeRef) NodeRef {
	return t.get(ref).parent
}

func (t *Tree) HasLeft(ref NodeRef) bool {
	return t.Left(ref) != NoNode
}

func (t *Tree) HasRight(ref NodeRef) bool {
	return t.Right(ref) != NoNode
}

func (t *Tree) HasParent(ref NodeRef) bool {
	return t.Parent(ref) != NoNode
}

// Operator is UNDEFINED for every node that is not a BINOP.
func (t *Tree) Operator(ref NodeRef) lexer.OperatorType {
	return t.get(ref).op
}

// Range returns the half-open byte range [start, end) the node spans.
func (t *Tree) Range(ref NodeRef) (int, int) {
	n := t.get(ref)
	return n.start, n.end
}

func (t *Tree) Start(ref NodeRef) int {
	return t.get(ref).start
}

func (t *Tree) End(ref NodeRef) int {
	return t.get(ref).end
}

// Text slices the node's range out of the source the tree was parsed from.
func (t *Tree) Text(ref NodeRef, src string) string {
	start, end := t.Range(ref)
	return src[start:end]
}

type NodeInfo struct {
	Ref      NodeRef
	Kind     NodeKind
	Operator lexer.OperatorType
	Start    int
	End      int
	Left     NodeRef
	Right    NodeRef
	Parent   NodeRef
}

func (t *Tree) Node(ref NodeRef) NodeInfo {
	n := t.get(ref)
	return NodeInfo{
		Ref:      ref,
		Kind:     n.kind,
		Operator: n.op,
		Start:    n.start,
		End:      n.end,
		Left:     n.left,
		Right:    n.right,
		Parent:   n.parent,
	}
}

// Dump renders the whole arena in index order, for debugging.
func (t *Tree) Dump() string {
	nodes := make([]NodeInfo, 0, len(t.nodes))
	for i := range t.nodes {
		nodes = append(nodes, t.Node(NodeRef(i)))
	}

	return litter.Options{StripPackageNames: true}.Sdump(struct {
		Root  NodeRef
		Nodes []NodeInfo
	}{
		Root:  t.root,
		Nodes: nodes,
	})
}
