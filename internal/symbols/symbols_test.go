package symbols

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildNamespace(parent *Namespace, name string) *Namespace {
	ns := &Namespace{Name: name, Parent: parent}
	parent.Namespaces = append(parent.Namespaces, ns)
	return ns
}

func TestNamespace_FullName(t *testing.T) {
	t.Parallel()
	global := &Namespace{}
	a := buildNamespace(global, "A")
	b := buildNamespace(a, "B")
	c := buildNamespace(b, "C")

	assert.True(t, global.IsGlobal())
	assert.Equal(t, "", global.FullName())
	assert.Equal(t, "A.B.C", c.FullName())
}

func TestMetadataName_NamespaceAndNesting(t *testing.T) {
	t.Parallel()
	mod := &Module{Name: "Lib", Version: "1.0.0", Global: &Namespace{}}
	ns := buildNamespace(mod.Global, "Acme")

	outer := &NamedType{Name: "Outer", Module: mod, Namespace: ns}
	inner := &NamedType{Name: "Inner", Module: mod, Namespace: ns, ContainingType: outer}
	outer.Nested = append(outer.Nested, inner)

	assert.Equal(t, "Acme.Outer", outer.MetadataName())
	assert.Equal(t, "Acme.Outer+Inner", inner.MetadataName())
	assert.Equal(t, "Acme.Outer.Inner", inner.DisplayName())
}

func TestMetadataName_GenericArityOnEveryLevel(t *testing.T) {
	t.Parallel()
	mod := &Module{Name: "Lib", Version: "1.0.0", Global: &Namespace{}}
	ns := buildNamespace(mod.Global, "Acme")

	outer := &NamedType{Name: "Outer", Module: mod, Namespace: ns}
	outer.TypeParameters = []*TypeParameter{{Name: "T", Owner: outer}}
	inner := &NamedType{Name: "Inner", Module: mod, Namespace: ns, ContainingType: outer}
	inner.TypeParameters = []*TypeParameter{
		{Name: "U", Owner: inner},
		{Name: "V", Ordinal: 1, Owner: inner},
	}
	outer.Nested = append(outer.Nested, inner)

	assert.Equal(t, "Acme.Outer`1+Inner`2", inner.MetadataName())
	assert.Equal(t, "Acme.Outer.Inner<U, V>", inner.DisplayName())
}

func TestMetadataName_ConstructedGeneric(t *testing.T) {
	t.Parallel()
	mod := &Module{Name: "Lib", Version: "1.0.0", Global: &Namespace{}}
	ns := buildNamespace(mod.Global, "Acme")

	def := &NamedType{Name: "Dict", Module: mod, Namespace: ns}
	def.TypeParameters = []*TypeParameter{
		{Name: "K", Owner: def},
		{Name: "V", Ordinal: 1, Owner: def},
	}
	key := &NamedType{Name: "String", Module: mod, Namespace: buildNamespace(mod.Global, "System")}
	val := &NamedType{Name: "Item", Module: mod, Namespace: ns}
	inst := &NamedType{
		Name: "Dict", Module: mod, Namespace: ns,
		TypeArguments: []TypeRef{key, val},
		Definition:    def,
	}

	assert.True(t, inst.IsConstructed())
	assert.True(t, inst.IsGeneric())
	assert.False(t, def.IsConstructed())
	assert.Equal(t, "Acme.Dict`2[System.String,Acme.Item]", inst.MetadataName())
	assert.Equal(t, "Acme.Dict<System.String, Acme.Item>", inst.DisplayName())
}

func TestMetadataName_ArrayAndPointerModifiers(t *testing.T) {
	t.Parallel()
	mod := &Module{Name: "Lib", Version: "1.0.0", Global: &Namespace{}}
	ns := buildNamespace(mod.Global, "Acme")
	foo := &NamedType{Name: "Foo", Module: mod, Namespace: ns}

	arr := &ArrayType{Element: foo, Rank: 1}
	jagged := &ArrayType{Element: arr, Rank: 2}
	ptr := &PointerType{Pointee: foo}
	ptrArr := &ArrayType{Element: ptr, Rank: 1}

	assert.Equal(t, "Acme.Foo[]", arr.MetadataName())
	assert.Equal(t, "Acme.Foo[][][]", jagged.MetadataName())
	assert.Equal(t, "Acme.Foo*", ptr.MetadataName())
	assert.Equal(t, "Acme.Foo*[]", ptrArr.MetadataName())
}

func TestDeclaredTypes_ParentBeforeNestedNamespaceOrder(t *testing.T) {
	t.Parallel()
	mod := &Module{Name: "Lib", Version: "1.0.0", Global: &Namespace{}}
	a := buildNamespace(mod.Global, "A")
	b := buildNamespace(a, "B")

	top := &NamedType{Name: "Top", Module: mod, Namespace: a}
	nested := &NamedType{Name: "Nested", Module: mod, Namespace: a, ContainingType: top}
	top.Nested = append(top.Nested, nested)
	deep := &NamedType{Name: "Deep", Module: mod, Namespace: b}
	a.Types = append(a.Types, top)
	b.Types = append(b.Types, deep)

	var names []string
	for _, typ := range mod.DeclaredTypes() {
		names = append(names, typ.Name)
	}
	assert.Equal(t, []string{"Top", "Nested", "Deep"}, names)
}

func TestConstant_Format(t *testing.T) {
	t.Parallel()
	mod := &Module{Name: "Lib", Version: "1.0.0", Global: &Namespace{}}
	ns := buildNamespace(mod.Global, "Acme")
	foo := &NamedType{Name: "Foo", Module: mod, Namespace: ns}

	cases := []struct {
		name string
		c    Constant
		want string
	}{
		{"null", Constant{Kind: ConstNull}, "null"},
		{"string quoted", Constant{Kind: ConstString, Value: "hi \"there\""}, `"hi \"there\""`},
		{"typeof", Constant{Kind: ConstType, Type: foo}, "typeof(Acme.Foo)"},
		{"int", Constant{Kind: ConstPrimitive, Value: int64(42)}, "42"},
		{"bool", Constant{Kind: ConstPrimitive, Value: true}, "true"},
		{"array", Constant{Kind: ConstArray, Elements: []Constant{
			{Kind: ConstPrimitive, Value: int64(1)},
			{Kind: ConstString, Value: "x"},
		}}, `[1, "x"]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.c.Format())
		})
	}
}

func TestFormatConstants_AndNamedArguments(t *testing.T) {
	t.Parallel()
	args := []Constant{
		{Kind: ConstPrimitive, Value: int64(1)},
		{Kind: ConstString, Value: "two"},
	}
	require.Equal(t, `1, "two"`, FormatConstants(args))
	assert.Equal(t, "", FormatConstants(nil))

	named := []NamedArgument{
		{Name: "Level", Value: Constant{Kind: ConstPrimitive, Value: int64(3)}},
	}
	assert.Equal(t, "Level = 3", FormatNamedArguments(named))
}

func TestMethodKind_IsExplicit(t *testing.T) {
	t.Parallel()
	explicit := []MethodKind{
		MethodOrdinary, MethodConstructor, MethodStaticConstructor,
		MethodDestructor, MethodOperator, MethodConversion,
	}
	for _, k := range explicit {
		assert.True(t, k.IsExplicit(), k.String())
	}
	synthesized := []MethodKind{
		MethodPropertyGet, MethodPropertySet, MethodEventAdd, MethodEventRemove,
	}
	for _, k := range synthesized {
		assert.False(t, k.IsExplicit(), k.String())
	}
}
