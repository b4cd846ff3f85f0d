package metadata

import (
	"encoding/json"
	"fmt"

	"github.com/randlee/roslyn-graph/internal/symbols"
)

// typeRef resolves a use-site type reference. scope carries the type
// parameters visible at the site, innermost first, for "typeParameter"
// refs.
func (r *resolver) typeRef(d *TypeRefDoc, scope []*symbols.TypeParameter) (symbols.TypeRef, error) {
	switch d.Kind {
	case "named":
		t, ok := r.types[d.Id]
		if !ok {
			return nil, fmt.Errorf("unknown type id %q", d.Id)
		}
		return t, nil

	case "array":
		if d.Element == nil {
			return nil, fmt.Errorf("array reference without element")
		}
		elem, err := r.typeRef(d.Element, scope)
		if err != nil {
			return nil, err
		}
		rank := d.Rank
		if rank == 0 {
			rank = 1
		}
		return &symbols.ArrayType{Element: elem, Rank: rank}, nil

	case "pointer":
		if d.Pointee == nil {
			return nil, fmt.Errorf("pointer reference without pointee")
		}
		pointee, err := r.typeRef(d.Pointee, scope)
		if err != nil {
			return nil, err
		}
		return &symbols.PointerType{Pointee: pointee}, nil

	case "typeParameter":
		for _, tp := range scope {
			if tp.Name == d.Name {
				return tp, nil
			}
		}
		return nil, fmt.Errorf("type parameter %q not in scope", d.Name)

	case "instantiation":
		def, ok := r.types[d.Definition]
		if !ok {
			return nil, fmt.Errorf("unknown generic definition %q", d.Definition)
		}
		args := make([]symbols.TypeRef, len(d.Arguments))
		for i := range d.Arguments {
			arg, err := r.typeRef(&d.Arguments[i], scope)
			if err != nil {
				return nil, err
			}
			args[i] = arg
		}
		return &symbols.NamedType{
			Name:           def.Name,
			Kind:           def.Kind,
			Accessibility:  def.Accessibility,
			Special:        def.Special,
			Module:         def.Module,
			Namespace:      def.Namespace,
			ContainingType: def.ContainingType,
			IsValueType:    def.IsValueType,
			IsRecord:       def.IsRecord,
			TypeArguments:  args,
			Definition:     def,
		}, nil

	default:
		return nil, fmt.Errorf("unknown type reference kind %q", d.Kind)
	}
}

// member builds one member from its document entry. typeScope is the
// owning type's parameter list; methods prepend their own.
func (r *resolver) member(owner *symbols.NamedType, d *MemberDoc, typeScope []*symbols.TypeParameter) (symbols.Member, error) {
	access, err := parseAccessibility(d.Accessibility)
	if err != nil {
		return nil, err
	}

	switch d.Kind {
	case "method", "constructor", "staticConstructor", "destructor", "operator", "conversion":
		m := &symbols.Method{
			Name:                d.Name,
			Accessibility:       access,
			Kind:                methodKindOf(d.Kind),
			IsStatic:            d.Static,
			IsAbstract:          d.Abstract,
			IsVirtual:           d.Virtual,
			IsOverride:          d.Override,
			IsSealed:            d.Sealed,
			IsExtern:            d.Extern,
			IsAsync:             d.Async,
			IsReadOnly:          d.ReadOnly,
			IsExtensionMethod:   d.ExtensionMethod,
			IsPartialDefinition: d.PartialDefinition,
			ReturnsVoid:         d.ReturnsVoid,
			DeclaringType:       owner,
			IsCompilerGenerated: d.CompilerGenerated,
			Doc:                 d.Doc,
		}
		for i, tp := range d.TypeParameters {
			v, err := parseVariance(tp.Variance)
			if err != nil {
				return nil, fmt.Errorf("type parameter %q: %w", tp.Name, err)
			}
			m.TypeParameters = append(m.TypeParameters, &symbols.TypeParameter{
				Name:                       tp.Name,
				Ordinal:                    i,
				Variance:                   v,
				HasReferenceTypeConstraint: tp.ReferenceTypeConstraint,
				HasValueTypeConstraint:     tp.ValueTypeConstraint,
				HasUnmanagedConstraint:     tp.UnmanagedConstraint,
				HasNotNullConstraint:       tp.NotNullConstraint,
				HasConstructorConstraint:   tp.ConstructorConstraint,
				Owner:                      m,
			})
		}
		scope := append(append([]*symbols.TypeParameter{}, m.TypeParameters...), typeScope...)
		for i, tp := range d.TypeParameters {
			for _, cDoc := range tp.ConstraintTypes {
				constraint, err := r.typeRef(&cDoc, scope)
				if err != nil {
					return nil, fmt.Errorf("type parameter %q constraint: %w", tp.Name, err)
				}
				m.TypeParameters[i].ConstraintTypes = append(m.TypeParameters[i].ConstraintTypes, constraint)
			}
		}
		if !d.ReturnsVoid && d.Type != nil {
			ret, err := r.typeRef(d.Type, scope)
			if err != nil {
				return nil, fmt.Errorf("return type: %w", err)
			}
			m.ReturnType = ret
		}
		if m.Parameters, err = r.parameters(d.Parameters, scope); err != nil {
			return nil, err
		}
		if m.Attrs, err = r.attributes(d.Attributes, scope); err != nil {
			return nil, err
		}
		if m.ReturnAttrs, err = r.attributes(d.ReturnAttributes, scope); err != nil {
			return nil, err
		}
		return m, nil

	case "property":
		getterAccess, setterAccess := access, access
		if d.GetterAccessibility != "" {
			if getterAccess, err = parseAccessibility(d.GetterAccessibility); err != nil {
				return nil, err
			}
		}
		if d.SetterAccessibility != "" {
			if setterAccess, err = parseAccessibility(d.SetterAccessibility); err != nil {
				return nil, err
			}
		}
		p := &symbols.Property{
			Name:                d.Name,
			Accessibility:       access,
			IsStatic:            d.Static,
			IsAbstract:          d.Abstract,
			IsVirtual:           d.Virtual,
			IsOverride:          d.Override,
			IsSealed:            d.Sealed,
			IsRequired:          d.Required,
			IsIndexer:           d.Indexer,
			HasGetter:           d.Getter,
			HasSetter:           d.Setter,
			GetterAccessibility: getterAccess,
			SetterAccessibility: setterAccess,
			IsInitOnly:          d.InitOnly,
			DeclaringType:       owner,
			IsCompilerGenerated: d.CompilerGenerated,
			Doc:                 d.Doc,
		}
		if d.Type != nil {
			if p.Type, err = r.typeRef(d.Type, typeScope); err != nil {
				return nil, fmt.Errorf("property type: %w", err)
			}
		}
		if p.Parameters, err = r.parameters(d.Parameters, typeScope); err != nil {
			return nil, err
		}
		if p.Attrs, err = r.attributes(d.Attributes, typeScope); err != nil {
			return nil, err
		}
		return p, nil

	case "field":
		f := &symbols.Field{
			Name:                d.Name,
			Accessibility:       access,
			IsStatic:            d.Static,
			IsReadOnly:          d.ReadOnly,
			IsConst:             d.Const,
			IsVolatile:          d.Volatile,
			IsRequired:          d.Required,
			DeclaringType:       owner,
			IsCompilerGenerated: d.CompilerGenerated,
			Doc:                 d.Doc,
		}
		if d.Type != nil {
			if f.Type, err = r.typeRef(d.Type, typeScope); err != nil {
				return nil, fmt.Errorf("field type: %w", err)
			}
		}
		if d.Constant != nil {
			c, err := r.constant(d.Constant, typeScope)
			if err != nil {
				return nil, fmt.Errorf("constant: %w", err)
			}
			f.HasConstant = true
			f.Constant = c
		}
		if f.Attrs, err = r.attributes(d.Attributes, typeScope); err != nil {
			return nil, err
		}
		return f, nil

	case "event":
		ev := &symbols.Event{
			Name:                d.Name,
			Accessibility:       access,
			IsStatic:            d.Static,
			IsAbstract:          d.Abstract,
			IsVirtual:           d.Virtual,
			IsOverride:          d.Override,
			IsSealed:            d.Sealed,
			DeclaringType:       owner,
			IsCompilerGenerated: d.CompilerGenerated,
			Doc:                 d.Doc,
		}
		if d.Type != nil {
			if ev.Type, err = r.typeRef(d.Type, typeScope); err != nil {
				return nil, fmt.Errorf("event type: %w", err)
			}
		}
		if ev.Attrs, err = r.attributes(d.Attributes, typeScope); err != nil {
			return nil, err
		}
		return ev, nil

	default:
		return nil, fmt.Errorf("unknown member kind %q", d.Kind)
	}
}

func (r *resolver) parameters(docs []ParameterDoc, scope []*symbols.TypeParameter) ([]*symbols.Parameter, error) {
	var out []*symbols.Parameter
	for i, d := range docs {
		refKind, err := parseRefKind(d.RefKind)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", d.Name, err)
		}
		p := &symbols.Parameter{
			Name:       d.Name,
			Ordinal:    i,
			RefKind:    refKind,
			IsOptional: d.Optional,
			IsParams:   d.Params,
			IsThis:     d.This,
			IsDiscard:  d.Discard,
		}
		if d.Type != nil {
			if p.Type, err = r.typeRef(d.Type, scope); err != nil {
				return nil, fmt.Errorf("parameter %q: %w", d.Name, err)
			}
		}
		if d.Default != nil {
			c, err := r.constant(d.Default, scope)
			if err != nil {
				return nil, fmt.Errorf("parameter %q default: %w", d.Name, err)
			}
			p.HasExplicitDefault = true
			p.Default = c
		}
		if p.Attrs, err = r.attributes(d.Attributes, scope); err != nil {
			return nil, fmt.Errorf("parameter %q: %w", d.Name, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// attributes resolves attribute instances. An empty or unknown attribute
// type id yields an instance with a nil type, which extraction skips, so
// documents can record attributes they could not resolve.
func (r *resolver) attributes(docs []AttributeDoc, scope []*symbols.TypeParameter) ([]*symbols.Attribute, error) {
	var out []*symbols.Attribute
	for _, d := range docs {
		a := &symbols.Attribute{Type: r.types[d.Type]}
		for i := range d.ConstructorArguments {
			c, err := r.constant(&d.ConstructorArguments[i], scope)
			if err != nil {
				return nil, fmt.Errorf("attribute argument: %w", err)
			}
			a.ConstructorArguments = append(a.ConstructorArguments, c)
		}
		for _, na := range d.NamedArguments {
			c, err := r.constant(&na.Value, scope)
			if err != nil {
				return nil, fmt.Errorf("attribute argument %q: %w", na.Name, err)
			}
			a.NamedArguments = append(a.NamedArguments, symbols.NamedArgument{Name: na.Name, Value: c})
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *resolver) constant(d *ConstantDoc, scope []*symbols.TypeParameter) (symbols.Constant, error) {
	switch d.Kind {
	case "null":
		return symbols.Constant{Kind: symbols.ConstNull}, nil
	case "string":
		var s string
		if err := json.Unmarshal(d.Value, &s); err != nil {
			return symbols.Constant{}, fmt.Errorf("string constant: %w", err)
		}
		return symbols.Constant{Kind: symbols.ConstString, Value: s}, nil
	case "primitive":
		v, err := decodePrimitive(d.Value)
		if err != nil {
			return symbols.Constant{}, err
		}
		return symbols.Constant{Kind: symbols.ConstPrimitive, Value: v}, nil
	case "type":
		if d.Type == nil {
			return symbols.Constant{}, fmt.Errorf("type constant without type")
		}
		ref, err := r.typeRef(d.Type, scope)
		if err != nil {
			return symbols.Constant{}, err
		}
		return symbols.Constant{Kind: symbols.ConstType, Type: ref}, nil
	case "array":
		c := symbols.Constant{Kind: symbols.ConstArray}
		for i := range d.Elements {
			el, err := r.constant(&d.Elements[i], scope)
			if err != nil {
				return symbols.Constant{}, err
			}
			c.Elements = append(c.Elements, el)
		}
		return c, nil
	default:
		return symbols.Constant{}, fmt.Errorf("unknown constant kind %q", d.Kind)
	}
}

// decodePrimitive keeps integral JSON numbers as int64 so 64-bit
// constants survive with their exact value; everything else falls back to
// float64, bool, or the raw text.
func decodePrimitive(raw json.RawMessage) (any, error) {
	var i int64
	if err := json.Unmarshal(raw, &i); err == nil {
		return i, nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	return nil, fmt.Errorf("primitive constant %s is not a scalar", string(raw))
}

// wireMemberRefs resolves override and explicit-implementation targets,
// after every type's member list exists. A reference into a type whose
// member list does not contain a match is dropped, not an error: external
// types routinely omit their members.
func (r *resolver) wireMemberRefs(id string, d *TypeDoc) error {
	t := r.types[id]
	for i, mDoc := range d.Members {
		if mDoc.Overrides == nil && len(mDoc.ExplicitImplements) == 0 {
			continue
		}
		switch mem := t.Members[i].(type) {
		case *symbols.Method:
			if mDoc.Overrides != nil {
				target, err := r.findMethod(mDoc.Overrides)
				if err != nil {
					return err
				}
				mem.Overrides = target
			}
			for j := range mDoc.ExplicitImplements {
				target, err := r.findMethod(&mDoc.ExplicitImplements[j])
				if err != nil {
					return err
				}
				if target != nil {
					mem.ExplicitImplementations = append(mem.ExplicitImplementations, target)
				}
			}
		case *symbols.Property:
			if mDoc.Overrides != nil {
				target, err := findMember[*symbols.Property](r, mDoc.Overrides)
				if err != nil {
					return err
				}
				mem.Overrides = target
			}
			for j := range mDoc.ExplicitImplements {
				target, err := findMember[*symbols.Property](r, &mDoc.ExplicitImplements[j])
				if err != nil {
					return err
				}
				if target != nil {
					mem.ExplicitImplementations = append(mem.ExplicitImplementations, target)
				}
			}
		case *symbols.Event:
			if mDoc.Overrides != nil {
				target, err := findMember[*symbols.Event](r, mDoc.Overrides)
				if err != nil {
					return err
				}
				mem.Overrides = target
			}
			for j := range mDoc.ExplicitImplements {
				target, err := findMember[*symbols.Event](r, &mDoc.ExplicitImplements[j])
				if err != nil {
					return err
				}
				if target != nil {
					mem.ExplicitImplementations = append(mem.ExplicitImplementations, target)
				}
			}
		default:
			return fmt.Errorf("member %q: kind cannot override", mDoc.Name)
		}
	}
	return nil
}

// findMethod resolves a method reference, narrowing by name and, when
// given, parameter count.
func (r *resolver) findMethod(ref *MemberRefDoc) (*symbols.Method, error) {
	owner, ok := r.types[ref.Type]
	if !ok {
		return nil, fmt.Errorf("unknown type id %q in member reference", ref.Type)
	}
	for _, mem := range owner.Members {
		m, ok := mem.(*symbols.Method)
		if !ok || m.Name != ref.Name {
			continue
		}
		if ref.ParameterCount != nil && len(m.Parameters) != *ref.ParameterCount {
			continue
		}
		return m, nil
	}
	return nil, nil
}

// findMember resolves a property or event reference by name.
func findMember[T symbols.Member](r *resolver, ref *MemberRefDoc) (T, error) {
	var zero T
	owner, ok := r.types[ref.Type]
	if !ok {
		return zero, fmt.Errorf("unknown type id %q in member reference", ref.Type)
	}
	for _, mem := range owner.Members {
		m, ok := mem.(T)
		if !ok || m.MemberName() != ref.Name {
			continue
		}
		return m, nil
	}
	return zero, nil
}
