package parser

import (
	"fmt"

	"github.com/kievzenit/whilec/internal/ast"
	"github.com/kievzenit/whilec/internal/lexer"
)

const parenPriority = 10

var operatorPriorityLookup = map[lexer.OperatorType]int{
	lexer.LESS:           4,
	lexer.GREATER:        4,
	lexer.PLUS:           5,
	lexer.MINUS:          5,
	lexer.MULTIPLICATION: 6,
	lexer.DIVISION:       6,
}

type pendingOperator struct {
	token    lexer.Token
	priority int
}

// Parser builds a tree out of a token stream that already passed the
// lexical grammar. It trusts the stream's shape and panics when the stream
// breaks it.
type Parser struct {
	src string

	scanner lexer.TokenScanner
	builder *ast.Builder

	pending []ast.NodeRef
}

// Parse validates src with the lexical grammar and builds its tree. The
// returned error is always a *lexer.LexError.
func Parse(src string) (*ast.Tree, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}

	return NewParser(src, lexer.NewTokenScanner(tokens)).Parse(), nil
}

func NewParser(src string, scanner lexer.TokenScanner) *Parser {
	return &Parser{
		src:     src,
		scanner: scanner,
		builder: ast.NewBuilder(),
		pending: make([]ast.NodeRef, 0),
	}
}

func (p *Parser) Parse() *ast.Tree {
	for p.scanner.HasTokens() {
		token := p.scanner.Read()

		switch token.Kind {
		case lexer.IF:
			p.parseScopeStart(ast.IF, token)
		case lexer.WHILE:
			p.parseScopeStart(ast.WHILE, token)
		case lexer.END:
			p.parseScopeEnd(token)
		case lexer.IDENT:
			p.parseAssignment(token)
		default:
			p.unexpected(token)
		}
	}

	return p.builder.Finish(p.foldPending())
}

func (p *Parser) parseScopeStart(kind ast.NodeKind, token lexer.Token) {
	scope := p.builder.NewNode(kind, token.Begin, token.End())
	p.push(scope)
	p.builder.SetLeft(scope, p.parseExpr())
}

func (p *Parser) parseScopeEnd(token lexer.Token) {
	statements := p.pop()
	if p.builder.IsScopeUnfinished(statements) {
		panic(fmt.Sprintf("parser: empty scope closed at %d", token.Begin))
	}

	for !p.builder.IsScopeUnfinished(p.top()) {
		statements = p.newStatements(p.pop(), statements)
	}

	scope := p.top()
	p.builder.SetRight(scope, statements)
	p.builder.SetRange(scope, p.builder.Start(scope), token.End())
}

func (p *Parser) parseAssignment(token lexer.Token) {
	p.expect(lexer.ASSIGN)
	p.scanner.Read()

	expr := p.parseExpr()

	assignment := p.builder.NewNode(ast.ASSIGNMENT, token.Begin, p.builder.End(expr))
	p.builder.SetLeft(assignment, p.builder.NewNode(ast.VAR, token.Begin, token.End()))
	p.builder.SetRight(assignment, expr)
	p.push(assignment)
}

// parseExpr reads tokens while they continue the expression and resolves
// operator precedence with an operand stack and an operator stack.
func (p *Parser) parseExpr() ast.NodeRef {
	operands := make([]ast.NodeRef, 0)
	operators := make([]pendingOperator, 0)

	apply := func() {
		op := operators[len(operators)-1]
		operators = operators[:len(operators)-1]

		if len(operands) < 2 {
			panic(fmt.Sprintf("parser: operator at %d is missing an operand", op.token.Begin))
		}
		right := operands[len(operands)-1]
		left := operands[len(operands)-2]
		operands = operands[:len(operands)-2]

		binop := p.builder.NewBinOp(
			lexer.OperatorTypeOf(op.token, p.src),
			p.builder.Start(left),
			p.builder.End(right),
		)
		p.builder.SetLeft(binop, left)
		p.builder.SetRight(binop, right)
		operands = append(operands, binop)
	}

	openParens := 0
	expectOperand := true

loop:
	for p.scanner.HasTokens() {
		token := p.scanner.Peek()

		if expectOperand {
			switch token.Kind {
			case lexer.IDENT:
				operands = append(operands, p.builder.NewNode(ast.VAR, token.Begin, token.End()))
				expectOperand = false
			case lexer.CONST:
				operands = append(operands, p.builder.NewNode(ast.CONST, token.Begin, token.End()))
				expectOperand = false
			case lexer.LPAREN:
				operators = append(operators, pendingOperator{token: token, priority: parenPriority})
				openParens++
			default:
				p.unexpected(token)
			}

			p.scanner.Read()
			continue
		}

		switch token.Kind {
		case lexer.RPAREN:
			if openParens == 0 {
				break loop
			}
			for operators[len(operators)-1].token.Kind != lexer.LPAREN {
				apply()
			}
			open := operators[len(operators)-1]
			operators = operators[:len(operators)-1]
			openParens--

			group := operands[len(operands)-1]
			p.builder.SetRange(group, open.token.Begin, token.End())
		case lexer.OPERATOR:
			priority := operatorPriorityLookup[lexer.OperatorTypeOf(token, p.src)]
			for len(operators) > 0 {
				top := operators[len(operators)-1]
				if top.token.Kind == lexer.LPAREN || top.priority < priority {
					break
				}
				apply()
			}
			operators = append(operators, pendingOperator{token: token, priority: priority})
			expectOperand = true
		default:
			break loop
		}

		p.scanner.Read()
	}

	if expectOperand || openParens != 0 {
		panic("parser: expression ended unfinished")
	}

	for len(operators) > 0 {
		apply()
	}

	return operands[0]
}

func (p *Parser) newStatements(first, rest ast.NodeRef) ast.NodeRef {
	seq := p.builder.NewNode(ast.STATEMENTS, p.builder.Start(first), p.builder.End(rest))
	p.builder.SetLeft(seq, first)
	p.builder.SetRight(seq, rest)

	return seq
}

// foldPending chains the remaining top level statements into a right
// leaning sequence and returns its head.
func (p *Parser) foldPending() ast.NodeRef {
	for len(p.pending) > 1 {
		second := p.pop()
		first := p.pop()
		p.push(p.newStatements(first, second))
	}

	root := p.pop()
	if p.builder.IsScopeUnfinished(root) {
		panic("parser: scope is never closed")
	}

	return root
}

func (p *Parser) push(ref ast.NodeRef) {
	p.pending = append(p.pending, ref)
}

func (p *Parser) pop() ast.NodeRef {
	ref := p.top()
	p.pending = p.pending[:len(p.pending)-1]

	return ref
}

func (p *Parser) top() ast.NodeRef {
	if len(p.pending) == 0 {
		panic("parser: no pending statement")
	}

	return p.pending[len(p.pending)-1]
}

func (p *Parser) expect(kind lexer.TokenKind) {
	if !p.scanner.HasTokens() {
		panic(fmt.Sprintf("parser: expected %s, got end of input", kind))
	}
	if token := p.scanner.Peek(); token.Kind != kind {
		panic(fmt.Sprintf("parser: expected %s, got %s", kind, token))
	}
}

func (p *Parser) unexpected(token lexer.Token) {
	panic(fmt.Sprintf("parser: unexpected token %s", token))
}
