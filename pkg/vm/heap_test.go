package vm

import (
	"testing"
)

func TestGlobalsDefineAndGet(t *testing.T) {
	g := NewGlobals()
	if g.Size() != 0 {
		t.Errorf("expected empty store, got size %d", g.Size())
	}
	idx := g.Define("answer", NumberValue(42))
	if idx != 0 {
		t.Errorf("expected first slot 0, got %d", idx)
	}
	v, ok := g.Get("answer")
	if !ok || v.AsNumber() != 42 {
		t.Errorf("expected answer=42, got %v (ok=%v)", v.Inspect(), ok)
	}
	v, ok = g.GetSlot(idx)
	if !ok || v.AsNumber() != 42 {
		t.Errorf("expected slot lookup to match, got %v (ok=%v)", v.Inspect(), ok)
	}
	if _, ok := g.Get("missing"); ok {
		t.Errorf("expected missing name to report ok=false")
	}
	if _, ok := g.GetSlot(99); ok {
		t.Errorf("expected out-of-range slot to report ok=false")
	}
}

func TestGlobalsRedefineReusesSlot(t *testing.T) {
	g := NewGlobals()
	first := g.Define("x", NumberValue(1))
	second := g.Define("x", NumberValue(2))
	if first != second {
		t.Errorf("expected redefinition to reuse slot %d, got %d", first, second)
	}
	if g.Size() != 1 {
		t.Errorf("expected size 1, got %d", g.Size())
	}
	v, _ := g.Get("x")
	if v.AsNumber() != 2 {
		t.Errorf("expected redefined value, got %v", v.Inspect())
	}
}

func TestGlobalsSet(t *testing.T) {
	g := NewGlobals()
	g.Define("y", NumberValue(1))
	if err := g.Set("y", NumberValue(5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := g.Get("y")
	if v.AsNumber() != 5 {
		t.Errorf("expected 5 after Set, got %v", v.Inspect())
	}
	if err := g.Set("never", NumberValue(1)); err == nil {
		t.Errorf("expected an error setting an undefined global")
	}
}

func TestGlobalsBackRootScope(t *testing.T) {
	g := NewGlobals()
	g.Define("shared", NumberValue(3))

	// A child scope resolves globals through the chain.
	child := NewScope(g.Root())
	v, err := GetRec(child, "shared")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.AsNumber() != 3 {
		t.Errorf("expected chained global resolution, got %v", v.Inspect())
	}

	// Globals are installed non-enumerable.
	rec, ok := GetProp(g.Root(), "shared")
	if !ok || rec.Enumerable {
		t.Errorf("expected a non-enumerable global binding")
	}
}
