package shell

import (
	"fmt"
	"strconv"

	"mudskip/pkg/builtins"
	"mudskip/pkg/vm"
)

// Session is an interactive view onto one object graph: a global store with
// the standard builtins installed, plus a current scope chained to the root.
// It evaluates single-line statements of property reads, assignments, calls,
// and deletes against the lookup/mutation engine.
type Session struct {
	globals     *vm.Globals
	scope       vm.Value
	objectProto vm.Value
}

// New creates a session with the standard builtins installed as globals.
func New() (*Session, error) {
	globals := vm.NewGlobals()
	ctx := &builtins.RuntimeContext{
		DefineGlobal: func(name string, value vm.Value) error {
			globals.Define(name, value)
			return nil
		},
	}
	if err := builtins.InitializeStandard(ctx); err != nil {
		return nil, err
	}
	return &Session{
		globals:     globals,
		scope:       vm.NewScope(globals.Root()),
		objectProto: ctx.ObjectPrototype,
	}, nil
}

// Globals returns the session's global store.
func (s *Session) Globals() *vm.Globals {
	return s.globals
}

// Scope returns the current (innermost) scope object.
func (s *Session) Scope() vm.Value {
	return s.scope
}

// EnterScope pushes a fresh scope whose parent is the current one.
func (s *Session) EnterScope() {
	s.scope = vm.NewScope(s.scope)
}

// ExitScope pops back to the parent scope. A no-op at the session's base
// scope; the global root is never current, so builtins keep their bindings.
func (s *Session) ExitScope() {
	parent := vm.Parent(s.scope)
	if parent.IsObject() && !parent.Is(s.globals.Root()) {
		s.scope = parent
	}
}

// Eval evaluates one statement. The boolean result reports whether the
// statement produced a value worth printing.
func (s *Session) Eval(line string) (vm.Value, bool, error) {
	tokens, err := scan(line)
	if err != nil {
		return vm.Undefined, false, err
	}
	p := &parser{session: s, tokens: tokens}
	return p.statement()
}

// parser is a single-statement recursive descent parser over scanned tokens.
type parser struct {
	session *Session
	tokens  []token
	pos     int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokenEOF {
		p.pos++
	}
	return t
}

func (p *parser) expectPunct(text string) error {
	t := p.next()
	if t.kind != tokenPunct || t.text != text {
		return fmt.Errorf("expected %q", text)
	}
	return nil
}

func (p *parser) atPunct(text string) bool {
	t := p.peek()
	return t.kind == tokenPunct && t.text == text
}

// statement := "delete" path | path call | path "=" expr | expr
func (p *parser) statement() (vm.Value, bool, error) {
	if p.peek().kind == tokenEOF {
		return vm.Undefined, false, nil
	}
	if p.peek().kind == tokenIdent && p.peek().text == "delete" {
		p.next()
		segs, err := p.path()
		if err != nil {
			return vm.Undefined, false, err
		}
		owner, err := p.resolveOwner(segs)
		if err != nil {
			return vm.Undefined, false, err
		}
		vm.DelProp(owner, segs[len(segs)-1])
		return vm.Undefined, false, p.end()
	}

	// A statement starting with a path may be an assignment.
	if p.peek().kind == tokenIdent && !isLiteralIdent(p.peek().text) {
		start := p.pos
		segs, err := p.path()
		if err != nil {
			return vm.Undefined, false, err
		}
		if p.atPunct("=") {
			p.next()
			val, err := p.expression()
			if err != nil {
				return vm.Undefined, false, err
			}
			if err := p.assign(segs, val); err != nil {
				return vm.Undefined, false, err
			}
			return val, true, p.end()
		}
		// Not an assignment: rewind and evaluate as an expression.
		p.pos = start
	}

	val, err := p.expression()
	if err != nil {
		return vm.Undefined, false, err
	}
	return val, true, p.end()
}

func (p *parser) end() error {
	if p.peek().kind != tokenEOF {
		return fmt.Errorf("unexpected trailing input %q", p.peek().text)
	}
	return nil
}

// expression := literal | "{" "}" | "[" "]" | path call?
func (p *parser) expression() (vm.Value, error) {
	t := p.peek()
	switch {
	case t.kind == tokenNumber:
		p.next()
		f, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return vm.Undefined, fmt.Errorf("bad number %q", t.text)
		}
		return vm.NumberValue(f), nil
	case t.kind == tokenString:
		p.next()
		str, err := strconv.Unquote(t.text)
		if err != nil {
			return vm.Undefined, fmt.Errorf("bad string %s", t.text)
		}
		return vm.NewString(str), nil
	case t.kind == tokenPunct && t.text == "{":
		p.next()
		if err := p.expectPunct("}"); err != nil {
			return vm.Undefined, err
		}
		return vm.NewObject(p.session.objectProto), nil
	case t.kind == tokenPunct && t.text == "[":
		p.next()
		if err := p.expectPunct("]"); err != nil {
			return vm.Undefined, err
		}
		return vm.NewArray(), nil
	case t.kind == tokenIdent && isLiteralIdent(t.text):
		p.next()
		switch t.text {
		case "true":
			return vm.True, nil
		case "false":
			return vm.False, nil
		case "null":
			return vm.Null, nil
		default:
			return vm.Undefined, nil
		}
	case t.kind == tokenIdent:
		segs, err := p.path()
		if err != nil {
			return vm.Undefined, err
		}
		val, err := p.resolve(segs)
		if err != nil {
			return vm.Undefined, err
		}
		if p.atPunct("(") {
			args, err := p.arguments()
			if err != nil {
				return vm.Undefined, err
			}
			return vm.Call(val, args)
		}
		return val, nil
	}
	return vm.Undefined, fmt.Errorf("unexpected token %q", t.text)
}

// path := ident ("." ident)*
func (p *parser) path() ([]string, error) {
	t := p.next()
	if t.kind != tokenIdent {
		return nil, fmt.Errorf("expected name, got %q", t.text)
	}
	segs := []string{t.text}
	for p.atPunct(".") {
		p.next()
		t = p.next()
		if t.kind != tokenIdent {
			return nil, fmt.Errorf("expected property name after '.'")
		}
		segs = append(segs, t.text)
	}
	return segs, nil
}

// arguments := "(" (expression ("," expression)*)? ")"
func (p *parser) arguments() ([]vm.Value, error) {
	if err := p.expectPunct("("); err != nil {
		return nil, err
	}
	var args []vm.Value
	if p.atPunct(")") {
		p.next()
		return args, nil
	}
	for {
		v, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, v)
		if p.atPunct(",") {
			p.next()
			continue
		}
		return args, p.expectPunct(")")
	}
}

// resolve reads a full path: the head through the scope chain, each further
// segment through the prototype chain (so inherited methods arrive bound to
// their receiver).
func (p *parser) resolve(segs []string) (vm.Value, error) {
	val, err := vm.GetRec(p.session.scope, segs[0])
	if err != nil {
		return vm.Undefined, err
	}
	for _, seg := range segs[1:] {
		val, err = member(val, seg)
		if err != nil {
			return vm.Undefined, err
		}
	}
	return val, nil
}

// resolveOwner reads all but the final path segment, yielding the object
// the final segment belongs to.
func (p *parser) resolveOwner(segs []string) (vm.Value, error) {
	if len(segs) == 1 {
		return p.session.scope, nil
	}
	return p.resolve(segs[:len(segs)-1])
}

// assign writes through a path: a bare name follows lexical assignment
// semantics (SetRec), a dotted path writes an own property on its owner.
func (p *parser) assign(segs []string, val vm.Value) error {
	if len(segs) == 1 {
		return vm.SetRec(p.session.scope, segs[0], val)
	}
	owner, err := p.resolveOwner(segs)
	if err != nil {
		return err
	}
	if owner.IsUndefined() {
		_, err := vm.Get(owner, segs[len(segs)-1])
		return err
	}
	vm.Set(owner, segs[len(segs)-1], val)
	return nil
}

// member reads one property off a receiver. An Undefined receiver routes
// through Get so the read raises the receiver-kind TypeError.
func member(recv vm.Value, name string) (vm.Value, error) {
	if recv.IsUndefined() {
		return vm.Get(recv, name)
	}
	return vm.GetProto(recv, name)
}

func isLiteralIdent(text string) bool {
	switch text {
	case "true", "false", "null", "undefined":
		return true
	}
	return false
}
