// Package symbols models the reflective metadata of a compiled .NET module
// as a read-only, possibly cyclic object graph: modules own a namespace
// tree, namespaces own types, types own members, members own parameters and
// attributes. The graph is built once by a loader and never mutated during
// extraction.
package symbols

import (
	"strconv"
	"strings"
)

// Module identifies one compiled assembly. Exactly one module is the target
// of an extraction run; others are reached only as containers for external
// types.
type Module struct {
	Name           string
	Version        string
	Culture        string
	PublicKeyToken []byte
	Interactive    bool

	// Attributes holds the assembly-level attribute instances.
	Attributes []*Attribute

	// Global is the root namespace of the module's declaration tree.
	Global *Namespace
}

// DeclaredTypes flattens the module's namespace tree into a deterministic
// sequence: each namespace's types (parents before their nested types)
// precede its child namespaces.
func (m *Module) DeclaredTypes() []*NamedType {
	var out []*NamedType
	if m.Global != nil {
		collectNamespaceTypes(m.Global, &out)
	}
	return out
}

func collectNamespaceTypes(ns *Namespace, out *[]*NamedType) {
	for _, t := range ns.Types {
		collectTypeAndNested(t, out)
	}
	for _, child := range ns.Namespaces {
		collectNamespaceTypes(child, out)
	}
}

func collectTypeAndNested(t *NamedType, out *[]*NamedType) {
	*out = append(*out, t)
	for _, nested := range t.Nested {
		collectTypeAndNested(nested, out)
	}
}

// Namespace is one node of a module's namespace tree. The root (global)
// namespace has an empty name and no parent.
type Namespace struct {
	Name       string
	Parent     *Namespace
	Namespaces []*Namespace
	Types      []*NamedType
}

// IsGlobal reports whether this is the root namespace.
func (n *Namespace) IsGlobal() bool { return n.Parent == nil }

// FullName returns the dotted path of the namespace, or "" for the root.
func (n *Namespace) FullName() string {
	if n == nil || n.IsGlobal() {
		return ""
	}
	parent := n.Parent.FullName()
	if parent == "" {
		return n.Name
	}
	return parent + "." + n.Name
}

// TypeRef is a reference to any type shape: a named type, an array, a
// pointer, or a type parameter. The set of implementations is closed.
type TypeRef interface {
	// MetadataName is the CLR-style metadata name of the type: dotted
	// namespace prefix, `+`-joined nesting chain with backtick arity
	// suffixes, bracketed argument lists for constructed generics, and
	// trailing `[]` / `*` modifiers for arrays and pointers.
	MetadataName() string

	// DisplayName is the human-readable form, with generic arguments in
	// angle brackets.
	DisplayName() string

	typeRef()
}

// NamedType is a class, struct, interface, enum, delegate, or record
// declaration, or a constructed instantiation of a generic one.
type NamedType struct {
	Name          string
	Kind          TypeKind
	Accessibility Accessibility
	Special       SpecialType

	// Module is nil for types with no owning assembly (dynamic and
	// similar built-ins).
	Module    *Module
	Namespace *Namespace

	// ContainingType is non-nil for nested types.
	ContainingType *NamedType
	Nested         []*NamedType

	// BaseType is nil for interfaces and for the object root itself.
	BaseType   TypeRef
	Interfaces []*NamedType

	IsAbstract  bool
	IsSealed    bool
	IsStatic    bool
	IsValueType bool
	IsRecord    bool
	IsRefLike   bool
	IsReadOnly  bool
	IsUnmanaged bool

	// EnumUnderlying is the underlying integral type of an enum.
	EnumUnderlying TypeRef

	TypeParameters []*TypeParameter

	// TypeArguments is non-empty for constructed generics; Definition then
	// points at the unbound original definition.
	TypeArguments []TypeRef
	Definition    *NamedType

	Members    []Member
	Attributes []*Attribute

	IsCompilerGenerated bool

	// Doc is the raw documentation-comment XML blob, if any.
	Doc string
}

func (*NamedType) typeRef() {}

// IsGeneric reports whether the type declares type parameters or carries
// type arguments.
func (t *NamedType) IsGeneric() bool {
	return len(t.TypeParameters) > 0 || len(t.TypeArguments) > 0
}

// IsConstructed reports whether the type is a generic instantiation
// distinct from its own unbound definition.
func (t *NamedType) IsConstructed() bool {
	return len(t.TypeArguments) > 0 && t.Definition != nil && t.Definition != t
}

func (t *NamedType) arity() int {
	if n := len(t.TypeParameters); n > 0 {
		return n
	}
	return len(t.TypeArguments)
}

// nestingChain returns containing types outermost-first, ending with t.
func (t *NamedType) nestingChain() []*NamedType {
	var chain []*NamedType
	for cur := t; cur != nil; cur = cur.ContainingType {
		chain = append(chain, cur)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// MetadataName implements TypeRef.
func (t *NamedType) MetadataName() string {
	var sb strings.Builder
	chain := t.nestingChain()
	if ns := chain[0].Namespace.FullName(); ns != "" {
		sb.WriteString(ns)
		sb.WriteByte('.')
	}
	for i, ct := range chain {
		if i > 0 {
			sb.WriteByte('+')
		}
		sb.WriteString(ct.Name)
		if a := ct.arity(); a > 0 {
			sb.WriteByte('`')
			sb.WriteString(strconv.Itoa(a))
		}
	}
	if t.IsConstructed() && allConcrete(t.TypeArguments) {
		sb.WriteByte('[')
		for i, arg := range t.TypeArguments {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(arg.MetadataName())
		}
		sb.WriteByte(']')
	}
	return sb.String()
}

// allConcrete reports whether no argument is an open type parameter.
func allConcrete(args []TypeRef) bool {
	for _, a := range args {
		if _, open := a.(*TypeParameter); open {
			return false
		}
	}
	return true
}

// DisplayName implements TypeRef.
func (t *NamedType) DisplayName() string {
	var sb strings.Builder
	chain := t.nestingChain()
	if ns := chain[0].Namespace.FullName(); ns != "" {
		sb.WriteString(ns)
		sb.WriteByte('.')
	}
	for i, ct := range chain {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(ct.Name)
	}
	if len(t.TypeArguments) > 0 {
		sb.WriteByte('<')
		for i, arg := range t.TypeArguments {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(arg.DisplayName())
		}
		sb.WriteByte('>')
	} else if len(t.TypeParameters) > 0 {
		sb.WriteByte('<')
		for i, tp := range t.TypeParameters {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(tp.Name)
		}
		sb.WriteByte('>')
	}
	return sb.String()
}

// ArrayType is an array shape over an element type.
type ArrayType struct {
	Element TypeRef
	Rank    int
}

func (*ArrayType) typeRef() {}

// MetadataName implements TypeRef: one trailing "[]" per rank.
func (a *ArrayType) MetadataName() string {
	return a.Element.MetadataName() + strings.Repeat("[]", a.Rank)
}

// DisplayName implements TypeRef.
func (a *ArrayType) DisplayName() string {
	return a.Element.DisplayName() + strings.Repeat("[]", a.Rank)
}

// PointerType is an unsafe pointer shape over a pointee type.
type PointerType struct {
	Pointee TypeRef
}

func (*PointerType) typeRef() {}

// MetadataName implements TypeRef.
func (p *PointerType) MetadataName() string { return p.Pointee.MetadataName() + "*" }

// DisplayName implements TypeRef.
func (p *PointerType) DisplayName() string { return p.Pointee.DisplayName() + "*" }

// TypeParameter is a generic type parameter declared by a type or a method.
// Owner is the declaring *NamedType or *Method; identity always includes
// the owner, so T of A<T> and T of B<T> are distinct symbols.
type TypeParameter struct {
	Name     string
	Ordinal  int
	Variance Variance

	HasReferenceTypeConstraint bool
	HasValueTypeConstraint     bool
	HasUnmanagedConstraint     bool
	HasNotNullConstraint       bool
	HasConstructorConstraint   bool

	ConstraintTypes []TypeRef

	Owner any
}

func (*TypeParameter) typeRef() {}

// MetadataName implements TypeRef. Type parameters have no standalone
// metadata identity; the minter folds the owner in separately.
func (p *TypeParameter) MetadataName() string { return p.Name }

// DisplayName implements TypeRef.
func (p *TypeParameter) DisplayName() string { return p.Name }
