package metadata

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/randlee/roslyn-graph/internal/symbols"
)

// Load reads a symbol document from path and resolves it into a module
// graph.
func Load(path string) (*symbols.Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read symbol document: %w", err)
	}
	mod, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return mod, nil
}

// Parse unmarshals and resolves a symbol document.
func Parse(data []byte) (*symbols.Module, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse symbol document: %w", err)
	}
	return Resolve(&doc)
}

// Resolve turns the flat id-indexed document into the cyclic symbol
// graph. Pass one creates a shell for every named type; pass two places
// each shell in its namespace and nesting position; pass three wires
// bases, interfaces, generics, members, and attributes through the
// placed shells, so forward and circular references cost nothing. Type
// ids are processed in sorted order to keep the resulting walk
// deterministic.
func Resolve(doc *Document) (*symbols.Module, error) {
	token, err := decodeToken(doc.Module.PublicKeyToken)
	if err != nil {
		return nil, err
	}
	r := &resolver{
		doc: doc,
		target: &symbols.Module{
			Name:           doc.Module.Name,
			Version:        doc.Module.Version,
			Culture:        doc.Module.Culture,
			PublicKeyToken: token,
			Interactive:    doc.Module.Interactive,
			Global:         &symbols.Namespace{},
		},
		modules:    make(map[string]*symbols.Module),
		types:      make(map[string]*symbols.NamedType),
		namespaces: make(map[*symbols.Module]map[string]*symbols.Namespace),
	}
	if r.target.Name == "" {
		return nil, fmt.Errorf("symbol document: module name is required")
	}

	ids := make([]string, 0, len(doc.Types))
	for id := range doc.Types {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if err := r.shell(id, doc.Types[id]); err != nil {
			return nil, err
		}
	}
	for _, id := range ids {
		if err := r.place(id, doc.Types[id]); err != nil {
			return nil, fmt.Errorf("type %q: %w", id, err)
		}
	}
	for _, id := range ids {
		r.inheritNamespace(r.types[id])
	}
	for _, id := range ids {
		if err := r.wire(id, doc.Types[id]); err != nil {
			return nil, fmt.Errorf("type %q: %w", id, err)
		}
	}
	for _, id := range ids {
		if err := r.wireMemberRefs(id, doc.Types[id]); err != nil {
			return nil, fmt.Errorf("type %q: %w", id, err)
		}
	}
	if r.target.Attributes, err = r.attributes(doc.Module.Attributes, nil); err != nil {
		return nil, fmt.Errorf("module attributes: %w", err)
	}
	r.sortNamespaces(r.target.Global)
	return r.target, nil
}

func decodeToken(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	token, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("symbol document: public key token: %w", err)
	}
	return token, nil
}

type resolver struct {
	doc    *Document
	target *symbols.Module

	// modules interns external assemblies by name@version.
	modules map[string]*symbols.Module
	types   map[string]*symbols.NamedType

	// namespaces holds one dotted-path index per module; the target's
	// doubles as its Global tree.
	namespaces map[*symbols.Module]map[string]*symbols.Namespace
}

// shell creates the NamedType carrying everything that needs no
// cross-reference.
func (r *resolver) shell(id string, d *TypeDoc) error {
	if d == nil {
		return fmt.Errorf("type %q: empty entry", id)
	}
	kind, err := parseTypeKind(d.Kind)
	if err != nil {
		return fmt.Errorf("type %q: %w", id, err)
	}
	access, err := parseAccessibility(d.Accessibility)
	if err != nil {
		return fmt.Errorf("type %q: %w", id, err)
	}
	special, err := parseSpecialType(d.Special)
	if err != nil {
		return fmt.Errorf("type %q: %w", id, err)
	}
	t := &symbols.NamedType{
		Name:                d.Name,
		Kind:                kind,
		Accessibility:       access,
		Special:             special,
		Module:              r.moduleFor(d),
		IsAbstract:          d.Abstract,
		IsSealed:            d.Sealed,
		IsStatic:            d.Static,
		IsValueType:         d.ValueType,
		IsRecord:            d.Record,
		IsRefLike:           d.RefLike,
		IsReadOnly:          d.ReadOnly,
		IsUnmanaged:         d.Unmanaged,
		IsCompilerGenerated: d.CompilerGenerated,
		Doc:                 d.Doc,
	}
	for i, tp := range d.TypeParameters {
		t.TypeParameters = append(t.TypeParameters, &symbols.TypeParameter{
			Name:                       tp.Name,
			Ordinal:                    i,
			HasReferenceTypeConstraint: tp.ReferenceTypeConstraint,
			HasValueTypeConstraint:     tp.ValueTypeConstraint,
			HasUnmanagedConstraint:     tp.UnmanagedConstraint,
			HasNotNullConstraint:       tp.NotNullConstraint,
			HasConstructorConstraint:   tp.ConstructorConstraint,
			Owner:                      t,
		})
		v, err := parseVariance(tp.Variance)
		if err != nil {
			return fmt.Errorf("type %q: parameter %q: %w", id, tp.Name, err)
		}
		t.TypeParameters[i].Variance = v
	}
	r.types[id] = t
	return nil
}

func (r *resolver) moduleFor(d *TypeDoc) *symbols.Module {
	if d.Builtin {
		return nil
	}
	if d.Assembly == nil {
		return r.target
	}
	key := d.Assembly.Name + "@" + d.Assembly.Version
	if mod, ok := r.modules[key]; ok {
		return mod
	}
	mod := &symbols.Module{Name: d.Assembly.Name, Version: d.Assembly.Version}
	r.modules[key] = mod
	return mod
}

// place puts a shell at its namespace or nesting position. Nested
// types only get their containment link here; their namespace is filled
// in by inheritNamespace once every nesting link exists, since a nested
// id can sort before its parent's.
func (r *resolver) place(id string, d *TypeDoc) error {
	t := r.types[id]
	if d.ContainingType != "" {
		parent, ok := r.types[d.ContainingType]
		if !ok {
			return fmt.Errorf("unknown containing type %q", d.ContainingType)
		}
		t.ContainingType = parent
		parent.Nested = append(parent.Nested, t)
		return nil
	}
	t.Namespace = r.namespace(t.Module, d.Namespace)
	if t.Module == r.target {
		t.Namespace.Types = append(t.Namespace.Types, t)
	}
	return nil
}

// inheritNamespace copies the outermost containing type's namespace
// onto a nested shell.
func (r *resolver) inheritNamespace(t *symbols.NamedType) {
	if t.ContainingType == nil {
		return
	}
	top := t.ContainingType
	for top.ContainingType != nil {
		top = top.ContainingType
	}
	t.Namespace = top.Namespace
}

// wire fills in everything that references other types.
func (r *resolver) wire(id string, d *TypeDoc) error {
	t := r.types[id]
	scope := t.TypeParameters
	if d.Base != nil {
		base, err := r.typeRef(d.Base, scope)
		if err != nil {
			return fmt.Errorf("base: %w", err)
		}
		t.BaseType = base
	}
	for _, ifaceID := range d.Interfaces {
		iface, ok := r.types[ifaceID]
		if !ok {
			return fmt.Errorf("unknown interface %q", ifaceID)
		}
		t.Interfaces = append(t.Interfaces, iface)
	}
	if d.EnumUnderlying != nil {
		underlying, err := r.typeRef(d.EnumUnderlying, scope)
		if err != nil {
			return fmt.Errorf("enum underlying type: %w", err)
		}
		t.EnumUnderlying = underlying
	}
	for i, tpDoc := range d.TypeParameters {
		for _, cDoc := range tpDoc.ConstraintTypes {
			constraint, err := r.typeRef(&cDoc, scope)
			if err != nil {
				return fmt.Errorf("parameter %q constraint: %w", tpDoc.Name, err)
			}
			t.TypeParameters[i].ConstraintTypes = append(t.TypeParameters[i].ConstraintTypes, constraint)
		}
	}

	attrs, err := r.attributes(d.Attributes, scope)
	if err != nil {
		return err
	}
	t.Attributes = attrs

	for _, mDoc := range d.Members {
		mem, err := r.member(t, &mDoc, scope)
		if err != nil {
			return fmt.Errorf("member %q: %w", mDoc.Name, err)
		}
		t.Members = append(t.Members, mem)
	}
	return nil
}

// namespace returns the namespace node for a dotted path within mod,
// creating the chain as needed. The target module's chains hang off its
// Global root; external modules get detached trees of their own.
func (r *resolver) namespace(mod *symbols.Module, path string) *symbols.Namespace {
	index, ok := r.namespaces[mod]
	if !ok {
		index = make(map[string]*symbols.Namespace)
		if mod == r.target {
			index[""] = r.target.Global
		} else {
			index[""] = &symbols.Namespace{}
		}
		r.namespaces[mod] = index
	}
	if ns, ok := index[path]; ok {
		return ns
	}
	parentPath, name := "", path
	if i := strings.LastIndex(path, "."); i >= 0 {
		parentPath, name = path[:i], path[i+1:]
	}
	parent := r.namespace(mod, parentPath)
	ns := &symbols.Namespace{Name: name, Parent: parent}
	parent.Namespaces = append(parent.Namespaces, ns)
	index[path] = ns
	return ns
}

// sortNamespaces orders child namespaces by name, recursively, so the
// declared-type walk is stable regardless of document map order.
func (r *resolver) sortNamespaces(ns *symbols.Namespace) {
	sort.Slice(ns.Namespaces, func(i, j int) bool {
		return ns.Namespaces[i].Name < ns.Namespaces[j].Name
	})
	for _, child := range ns.Namespaces {
		r.sortNamespaces(child)
	}
}
