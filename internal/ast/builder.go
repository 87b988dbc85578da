package ast

import (
	"fmt"

	"github.com/kievzenit/whilec/internal/lexer"
)

// Builder grows a Tree. Every read accessor of Tree is available on the
// Builder while the tree is being built.
type Builder struct {
	*Tree
}

func NewBuilder() *Builder {
	return &Builder{
		Tree: &Tree{
			nodes: make([]node, 0),
			root:  NoNode,
		},
	}
}

func (b *Builder) NewNode(kind NodeKind, start, end int) NodeRef {
	return b.push(node{
		kind:  kind,
		start: start,
		end:   end,
		op:    lexer.UNDEFINED,
	})
}

func (b *Builder) NewBinOp(op lexer.OperatorType, start, end int) NodeRef {
	return b.push(node{
		kind:  BINOP,
		start: start,
		end:   end,
		op:    op,
	})
}

func (b *Builder) push(n node) NodeRef {
	if len(b.nodes) >= MaxNodes {
		panic(fmt.Sprintf("ast: tree cannot hold more than %d nodes", MaxNodes))
	}
	if n.start > n.end {
		panic(fmt.Sprintf("ast: invalid node range [%d..%d]", n.start, n.end))
	}

	n.left = NoNode
	n.right = NoNode
	n.parent = NoNode
	b.nodes = append(b.nodes, n)

	return NodeRef(len(b.nodes) - 1)
}

func (b *Builder) adopt(parent, child NodeRef) {
	if b.HasParent(child) {
		panic(fmt.Sprintf("ast: node %d already has parent %d", child, b.Parent(child)))
	}
	b.get(child).parent = parent
}

func (b *Builder) SetLeft(parent, child NodeRef) {
	b.adopt(parent, child)
	b.get(parent).left = child
}

func (b *Builder) SetRight(parent, child NodeRef) {
	b.adopt(parent, child)
	b.get(parent).right = child
}

func (b *Builder) SetRange(ref NodeRef, start, end int) {
	if start > end {
		panic(fmt.Sprintf("ast: invalid node range [%d..%d]", start, end))
	}
	n := b.get(ref)
	n.start = start
	n.end = end
}

// IsScopeUnfinished reports whether ref is an IF or WHILE whose body has not
// been attached yet.
func (b *Builder) IsScopeUnfinished(ref NodeRef) bool {
	return b.Kind(ref).IsScope() && !b.HasRight(ref)
}

// Finish sets the root and hands the tree over. The Builder must not be used
// afterwards.
func (b *Builder) Finish(root NodeRef) *Tree {
	tree := b.Tree
	tree.root = root
	b.Tree = nil

	return tree
}
