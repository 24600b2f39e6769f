package vm

import (
	"testing"

	"mudskip/pkg/errors"
)

func TestGetMissingPropertyIsUndefined(t *testing.T) {
	obj := NewObject(Undefined)
	v, err := Get(obj, "nothing")
	if err != nil {
		t.Fatalf("expected no error reading a missing property, got %v", err)
	}
	if !v.IsUndefined() {
		t.Errorf("expected Undefined for a missing property, got %s", v.Inspect())
	}
}

func TestGetFromUndefinedReceiver(t *testing.T) {
	_, err := Get(Undefined, "x")
	if err == nil {
		t.Fatalf("expected TypeError reading from undefined receiver")
	}
	if !errors.IsType(err) {
		t.Errorf("expected a TypeError, got %T", err)
	}
	want := "TypeError: Cannot read property 'x' of undefined"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	obj := NewObject(Undefined)
	Set(obj, "n", NumberValue(7))
	v, err := Get(obj, "n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.AsNumber() != 7 {
		t.Errorf("expected 7, got %v", v.AsNumber())
	}

	// A second set updates in place: own count unchanged, identity kept.
	before, _ := GetProp(obj, "n")
	Set(obj, "n", NewString("seven"))
	after, _ := GetProp(obj, "n")
	if before != after {
		t.Errorf("expected the same record after overwrite")
	}
	if OwnLen(obj) != 1 {
		t.Errorf("expected own count 1 after overwrite, got %d", OwnLen(obj))
	}
	v, _ = Get(obj, "n")
	if v.AsString() != "seven" {
		t.Errorf("expected updated value, got %s", v.Inspect())
	}
}

func TestScopeChainResolution(t *testing.T) {
	s2 := NewScope(Undefined)
	s1 := NewScope(s2)
	s0 := NewScope(s1)
	Set(s2, "x", NumberValue(1))

	// Assignment through the chain mutates the owning scope.
	if err := SetRec(s0, "x", NumberValue(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := Get(s2, "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.AsNumber() != 2 {
		t.Errorf("expected write to land on the outer scope, got %v", v.AsNumber())
	}
	// The inner scopes gained nothing.
	if v, _ := Get(s0, "x"); !v.IsUndefined() {
		t.Errorf("expected own-only read on the inner scope to miss, got %s", v.Inspect())
	}
	if OwnLen(s0) != 0 || OwnLen(s1) != 0 {
		t.Errorf("expected no records created on inner scopes")
	}
	// The chained read still resolves.
	v, err = GetRec(s0, "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.AsNumber() != 2 {
		t.Errorf("expected chained read to find 2, got %v", v.AsNumber())
	}
}

func TestSetRecUndeclaredCreatesInnermost(t *testing.T) {
	outer := NewScope(Undefined)
	inner := NewScope(outer)
	if err := SetRec(inner, "fresh", NumberValue(9)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := GetProp(inner, "fresh"); !ok {
		t.Errorf("expected undeclared assignment to create a binding on the innermost scope")
	}
	if _, ok := GetProp(outer, "fresh"); ok {
		t.Errorf("expected no binding created on the outer scope")
	}
}

func TestGetRecMissIsUndefined(t *testing.T) {
	outer := NewScope(Undefined)
	inner := NewScope(outer)
	v, err := GetRec(inner, "absent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.IsUndefined() {
		t.Errorf("expected Undefined at chain end, got %s", v.Inspect())
	}
}

func TestPrototypeChainResolutionBindsReceiver(t *testing.T) {
	c := NewObject(Undefined)
	b := NewObject(c)
	a := NewObject(b)

	var got Value
	fn := NewNativeFunction("who", func(instance Value, args []Value) (Value, error) {
		got = instance
		return instance, nil
	})
	Set(c, "who", fn)

	resolved, err := GetProto(a, "who")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resolved.IsCallable() {
		t.Fatalf("expected a callable, got %s", resolved.Inspect())
	}
	if !BoundThis(resolved).Is(a) {
		t.Errorf("expected the resolved function bound to the original receiver")
	}
	if _, err := Call(resolved, nil); err != nil {
		t.Fatalf("unexpected call error: %v", err)
	}
	if !got.Is(a) {
		t.Errorf("expected the native body to recover receiver a, got %s", got.Inspect())
	}

	// Resolving through b instead binds b.
	resolved, err = GetProto(b, "who")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !BoundThis(resolved).Is(b) {
		t.Errorf("expected binding to follow the receiver, not the owner")
	}
}

func TestGetProtoNonFunctionValuesPassThrough(t *testing.T) {
	proto := NewObject(Undefined)
	obj := NewObject(proto)
	Set(proto, "n", NumberValue(3))
	v, err := GetProto(obj, "n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.AsNumber() != 3 {
		t.Errorf("expected inherited value 3, got %s", v.Inspect())
	}
	v, err = GetProto(obj, "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.IsUndefined() {
		t.Errorf("expected Undefined for a miss along the whole chain")
	}
}

func TestDeleteNeverTraverses(t *testing.T) {
	proto := NewObject(Undefined)
	obj := NewObject(proto)
	Set(proto, "inherited", NumberValue(1))
	DelProp(obj, "inherited")
	if _, ok := GetProp(proto, "inherited"); !ok {
		t.Errorf("expected delete on the child to leave the prototype untouched")
	}

	scopeParent := NewScope(Undefined)
	scope := NewScope(scopeParent)
	Set(scopeParent, "binding", NumberValue(2))
	DelProp(scope, "binding")
	if _, ok := GetProp(scopeParent, "binding"); !ok {
		t.Errorf("expected delete on the child scope to leave the parent untouched")
	}
}

func TestCircularFlag(t *testing.T) {
	obj := NewObject(Undefined)
	Set(obj, "self", obj)
	rec, ok := GetProp(obj, "self")
	if !ok {
		t.Fatalf("expected record present")
	}
	if !rec.Circular {
		t.Errorf("expected circular flag set for a self-reference")
	}
	// Reassigning to something else clears it.
	Set(obj, "self", NumberValue(1))
	if rec.Circular {
		t.Errorf("expected circular flag cleared after reassignment")
	}

	// A reference to a different object is not circular.
	other := NewObject(Undefined)
	Set(obj, "other", other)
	rec, _ = GetProp(obj, "other")
	if rec.Circular {
		t.Errorf("expected circular flag clear for a non-self reference")
	}
}

func TestPrototypeCycleSurfacesInternalError(t *testing.T) {
	a := NewObject(Undefined)
	b := NewObject(a)
	SetPrototype(a, b)

	_, err := GetProto(a, "missing")
	if err == nil {
		t.Fatalf("expected an error on a cyclic prototype chain")
	}
	if !errors.IsInternal(err) {
		t.Errorf("expected an InternalError, got %T", err)
	}
}

func TestScopeCycleSurfacesInternalError(t *testing.T) {
	a := NewScope(Undefined)
	b := NewScope(a)
	SetParent(a, b)

	if _, err := GetRec(a, "missing"); err == nil || !errors.IsInternal(err) {
		t.Errorf("expected an InternalError from a cyclic scope chain read")
	}
	if err := SetRec(a, "missing", NumberValue(1)); err == nil || !errors.IsInternal(err) {
		t.Errorf("expected an InternalError from a cyclic scope chain write")
	}
}

func TestChainAxesAreIndependent(t *testing.T) {
	// A value bound on a parent scope must not resolve through the
	// prototype chain, and vice versa.
	parent := NewScope(Undefined)
	obj := NewScope(parent)
	Set(parent, "viaScope", NumberValue(1))

	proto := NewObject(Undefined)
	SetPrototype(obj, proto)
	Set(proto, "viaProto", NumberValue(2))

	if v, _ := GetProto(obj, "viaScope"); !v.IsUndefined() {
		t.Errorf("expected prototype traversal to ignore the scope axis")
	}
	if v, _ := GetRec(obj, "viaProto"); !v.IsUndefined() {
		t.Errorf("expected scope traversal to ignore the prototype axis")
	}
}
