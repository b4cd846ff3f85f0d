package iri

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randlee/roslyn-graph/internal/symbols"
)

const base = "http://example.org/graph"

func testModule() *symbols.Module {
	return &symbols.Module{Name: "MyLib", Version: "1.2.3", Global: &symbols.Namespace{}}
}

func testNamespace(mod *symbols.Module, names ...string) *symbols.Namespace {
	ns := mod.Global
	for _, name := range names {
		child := &symbols.Namespace{Name: name, Parent: ns}
		ns.Namespaces = append(ns.Namespaces, child)
		ns = child
	}
	return ns
}

func namedType(mod *symbols.Module, ns *symbols.Namespace, name string) *symbols.NamedType {
	return &symbols.NamedType{Name: name, Module: mod, Namespace: ns}
}

func TestEscape_KeepsUnreservedBytes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Foo-bar_baz.Qux~7", escape("Foo-bar_baz.Qux~7"))
}

func TestEscape_EncodesReservedAndMultibyte(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Foo%20Bar", escape("Foo Bar"))
	assert.Equal(t, "List%601", escape("List`1"))
	assert.Equal(t, "Outer%2BInner", escape("Outer+Inner"))
	// U+00E9 is two UTF-8 bytes, each escaped on its own.
	assert.Equal(t, "caf%C3%A9", escape("café"))
}

func TestModule_IRI(t *testing.T) {
	t.Parallel()
	m := NewMinter(base + "/")
	assert.Equal(t, base+"/assembly/MyLib/1.2.3", m.Module(testModule()))
}

func TestNamespace_GlobalUsesReservedSegment(t *testing.T) {
	t.Parallel()
	m := NewMinter(base)
	mod := testModule()
	assert.Equal(t, base+"/namespace/_global_", m.Namespace(mod.Global))
	assert.Equal(t, base+"/namespace/_global_", m.Namespace(nil))
}

func TestNamespace_DottedPathSharedByDeclaredTypes(t *testing.T) {
	t.Parallel()
	m := NewMinter(base)
	mod := testModule()
	ns := testNamespace(mod, "A", "B", "C")
	want := base + "/namespace/A.B.C"
	assert.Equal(t, want, m.Namespace(ns))

	first := namedType(mod, ns, "First")
	second := namedType(mod, ns, "Second")
	assert.Equal(t, want, m.Namespace(first.Namespace))
	assert.Equal(t, want, m.Namespace(second.Namespace))
}

func TestType_NamedKeyedByModuleIdentity(t *testing.T) {
	t.Parallel()
	m := NewMinter(base)
	mod := testModule()
	ns := testNamespace(mod, "Acme", "Widgets")
	id, err := m.Type(namedType(mod, ns, "Foo"))
	require.NoError(t, err)
	assert.Equal(t, base+"/type/MyLib/1.2.3/Acme.Widgets.Foo", id)
}

func TestType_BuiltinWithoutModule(t *testing.T) {
	t.Parallel()
	m := NewMinter(base)
	dyn := &symbols.NamedType{Name: "dynamic", Special: symbols.SpecialDynamic}
	id, err := m.Type(dyn)
	require.NoError(t, err)
	assert.Equal(t, base+"/type/_builtin_/dynamic", id)
}

func TestType_DeterministicPerSymbol(t *testing.T) {
	t.Parallel()
	m := NewMinter(base)
	mod := testModule()
	typ := namedType(mod, testNamespace(mod, "Acme"), "Foo")
	first, err := m.Type(typ)
	require.NoError(t, err)
	second, err := m.Type(typ)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestType_NestingChainCarriesAllAncestors(t *testing.T) {
	t.Parallel()
	m := NewMinter(base)
	mod := testModule()
	ns := testNamespace(mod, "Acme")

	outer := namedType(mod, ns, "L1")
	var parent *symbols.NamedType = outer
	names := []string{"L2", "L3", "L4"}
	for _, name := range names {
		child := namedType(mod, ns, name)
		child.ContainingType = parent
		parent.Nested = append(parent.Nested, child)
		parent = child
	}

	id, err := m.Type(parent)
	require.NoError(t, err)
	// Each + joins escapes to %2B.
	assert.Equal(t, base+"/type/MyLib/1.2.3/Acme.L1%2BL2%2BL3%2BL4", id)
}

func TestType_GenericArityInMetadataName(t *testing.T) {
	t.Parallel()
	m := NewMinter(base)
	mod := testModule()
	ns := testNamespace(mod, "Acme")
	list := namedType(mod, ns, "List")
	list.TypeParameters = []*symbols.TypeParameter{{Name: "T", Owner: list}}

	id, err := m.Type(list)
	require.NoError(t, err)
	assert.Equal(t, base+"/type/MyLib/1.2.3/Acme.List%601", id)
}

func TestType_ConstructedGenericCarriesArguments(t *testing.T) {
	t.Parallel()
	m := NewMinter(base)
	mod := testModule()
	ns := testNamespace(mod, "Acme")

	def := namedType(mod, ns, "List")
	def.TypeParameters = []*symbols.TypeParameter{{Name: "T", Owner: def}}
	arg := namedType(mod, ns, "Item")
	inst := &symbols.NamedType{
		Name: "List", Module: mod, Namespace: ns,
		TypeArguments: []symbols.TypeRef{arg},
		Definition:    def,
	}

	id, err := m.Type(inst)
	require.NoError(t, err)
	assert.Equal(t, base+"/type/MyLib/1.2.3/Acme.List%601%5BAcme.Item%5D", id)
}

func TestType_OpenInstantiationOmitsArgumentList(t *testing.T) {
	t.Parallel()
	m := NewMinter(base)
	mod := testModule()
	ns := testNamespace(mod, "Acme")

	def := namedType(mod, ns, "List")
	def.TypeParameters = []*symbols.TypeParameter{{Name: "T", Owner: def}}
	owner := namedType(mod, ns, "Holder")
	tp := &symbols.TypeParameter{Name: "U", Owner: owner}
	inst := &symbols.NamedType{
		Name: "List", Module: mod, Namespace: ns,
		TypeArguments: []symbols.TypeRef{tp},
		Definition:    def,
	}

	id, err := m.Type(inst)
	require.NoError(t, err)
	// An open argument suppresses the bracketed list, arity stays.
	assert.Equal(t, base+"/type/MyLib/1.2.3/Acme.List%601", id)
}

func TestType_ArrayAppendsBracketsPerRank(t *testing.T) {
	t.Parallel()
	m := NewMinter(base)
	mod := testModule()
	ns := testNamespace(mod, "Acme")
	arr := &symbols.ArrayType{Element: namedType(mod, ns, "Foo"), Rank: 2}

	id, err := m.Type(arr)
	require.NoError(t, err)
	assert.Equal(t, base+"/type/MyLib/1.2.3/Acme.Foo%5B%5D%5B%5D", id)
}

func TestType_PointerAppendsStar(t *testing.T) {
	t.Parallel()
	m := NewMinter(base)
	mod := testModule()
	ns := testNamespace(mod, "Acme")
	ptr := &symbols.PointerType{Pointee: namedType(mod, ns, "Foo")}

	id, err := m.Type(ptr)
	require.NoError(t, err)
	assert.Equal(t, base+"/type/MyLib/1.2.3/Acme.Foo%2A", id)
}

func TestType_ParameterFoldsOwnerIntoIdentity(t *testing.T) {
	t.Parallel()
	m := NewMinter(base)
	mod := testModule()
	ns := testNamespace(mod, "Acme")

	a := namedType(mod, ns, "A")
	b := namedType(mod, ns, "B")
	tpA := &symbols.TypeParameter{Name: "T", Owner: a}
	tpB := &symbols.TypeParameter{Name: "T", Owner: b}

	idA, err := m.Type(tpA)
	require.NoError(t, err)
	idB, err := m.Type(tpB)
	require.NoError(t, err)
	assert.NotEqual(t, idA, idB)
	assert.Equal(t, base+"/type/MyLib/1.2.3/T%3AAcme.A.T", idA)
}

func TestType_ParameterOwnedByMethod(t *testing.T) {
	t.Parallel()
	m := NewMinter(base)
	mod := testModule()
	ns := testNamespace(mod, "Acme")
	owner := namedType(mod, ns, "Svc")
	method := &symbols.Method{Name: "Run", DeclaringType: owner}
	tp := &symbols.TypeParameter{Name: "T", Owner: method}

	id, err := m.Type(tp)
	require.NoError(t, err)
	assert.Equal(t, base+"/type/MyLib/1.2.3/T%3AAcme.Svc.Run.T", id)
}

func TestType_ParameterInvalidOwnerFailsFast(t *testing.T) {
	t.Parallel()
	m := NewMinter(base)
	tp := &symbols.TypeParameter{Name: "T", Owner: "not a symbol"}

	_, err := m.Type(tp)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidOwner))
}

func TestMember_OverloadsMintDistinctIRIs(t *testing.T) {
	t.Parallel()
	m := NewMinter(base)
	mod := testModule()
	str := namedType(mod, testNamespace(mod, "System"), "String")
	num := namedType(mod, testNamespace(mod, "System"), "Int32")
	typeIRI := base + "/type/MyLib/1.2.3/Acme.Svc"

	one := &symbols.Method{Name: "Run", Parameters: []*symbols.Parameter{
		{Name: "a", Ordinal: 0, Type: str},
	}}
	two := &symbols.Method{Name: "Run", Parameters: []*symbols.Parameter{
		{Name: "a", Ordinal: 0, Type: str},
		{Name: "b", Ordinal: 1, Type: num},
	}}
	three := &symbols.Method{Name: "Run", Parameters: []*symbols.Parameter{
		{Name: "a", Ordinal: 0, Type: num},
	}}

	ids := map[string]bool{
		m.Member(typeIRI, one):   true,
		m.Member(typeIRI, two):   true,
		m.Member(typeIRI, three): true,
	}
	assert.Len(t, ids, 3)
}

func TestMember_RefOutOverloadsCollide(t *testing.T) {
	t.Parallel()
	m := NewMinter(base)
	mod := testModule()
	str := namedType(mod, testNamespace(mod, "System"), "String")
	typeIRI := base + "/type/MyLib/1.2.3/Acme.Svc"

	byRef := &symbols.Method{Name: "TryGet", Parameters: []*symbols.Parameter{
		{Name: "v", Ordinal: 0, Type: str, RefKind: symbols.RefRef},
	}}
	byOut := &symbols.Method{Name: "TryGet", Parameters: []*symbols.Parameter{
		{Name: "v", Ordinal: 0, Type: str, RefKind: symbols.RefOut},
	}}

	// Known limitation: ref-kind alone never disambiguates, so these two
	// overloads share one identifier.
	assert.Equal(t, m.Member(typeIRI, byRef), m.Member(typeIRI, byOut))

	// By-reference versus by-value still disambiguates.
	byValue := &symbols.Method{Name: "TryGet", Parameters: []*symbols.Parameter{
		{Name: "v", Ordinal: 0, Type: str},
	}}
	assert.NotEqual(t, m.Member(typeIRI, byRef), m.Member(typeIRI, byValue))
}

func TestMember_IndexerUsesBracketSignature(t *testing.T) {
	t.Parallel()
	m := NewMinter(base)
	mod := testModule()
	num := namedType(mod, testNamespace(mod, "System"), "Int32")
	typeIRI := base + "/type/MyLib/1.2.3/Acme.Svc"

	indexer := &symbols.Property{Name: "Item", IsIndexer: true, Parameters: []*symbols.Parameter{
		{Name: "i", Ordinal: 0, Type: num},
	}}
	plain := &symbols.Property{Name: "Count"}
	field := &symbols.Field{Name: "count"}

	assert.Equal(t, typeIRI+"/member/Item[System.Int32]", m.Member(typeIRI, indexer))
	assert.Equal(t, typeIRI+"/member/Count", m.Member(typeIRI, plain))
	assert.Equal(t, typeIRI+"/member/count", m.Member(typeIRI, field))
}

func TestChildIdentifiers(t *testing.T) {
	t.Parallel()
	m := NewMinter(base)
	memberIRI := base + "/type/MyLib/1.2.3/Acme.Svc/member/Run()"

	assert.Equal(t, memberIRI+"/param/0", m.Parameter(memberIRI, 0))
	assert.Equal(t, memberIRI+"/typeparam/1", m.TypeParameterDecl(memberIRI, 1))
	assert.Equal(t, memberIRI+"/typearg/2", m.TypeArgument(memberIRI, 2))
}

func TestAttribute_SupportedTargets(t *testing.T) {
	t.Parallel()
	m := NewMinter(base)
	mod := testModule()
	typ := namedType(mod, testNamespace(mod, "Acme"), "Foo")

	id, err := m.Attribute(typ, base+"/type/MyLib/1.2.3/Acme.Foo", 1)
	require.NoError(t, err)
	assert.Equal(t, base+"/type/MyLib/1.2.3/Acme.Foo/attr/1", id)

	_, err = m.Attribute(mod, base+"/assembly/MyLib/1.2.3", 0)
	assert.NoError(t, err)
	_, err = m.Attribute(&symbols.Parameter{Name: "p"}, base+"/x/param/0", 0)
	assert.NoError(t, err)
}

func TestAttribute_UnsupportedTargetFailsFast(t *testing.T) {
	t.Parallel()
	m := NewMinter(base)
	_, err := m.Attribute("a namespace", base+"/namespace/Acme", 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedTarget))
}
