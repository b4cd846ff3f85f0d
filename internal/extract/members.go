package extract

import (
	"fmt"

	"github.com/randlee/roslyn-graph/internal/ontology"
	"github.com/randlee/roslyn-graph/internal/symbols"
)

// extractMember dispatches an included member to its kind-specific
// routine. Methods route here only when user-declared; accessor kinds the
// compiler synthesizes for properties and events are covered by the
// property and event routines, never emitted as standalone members.
func (e *Extractor) extractMember(typeIRI string, mem symbols.Member) error {
	switch m := mem.(type) {
	case *symbols.Method:
		if !m.Kind.IsExplicit() {
			return nil
		}
		return e.extractMethod(typeIRI, m)
	case *symbols.Property:
		return e.extractProperty(typeIRI, m)
	case *symbols.Field:
		return e.extractField(typeIRI, m)
	case *symbols.Event:
		return e.extractEvent(typeIRI, m)
	default:
		return fmt.Errorf("extract: unknown member kind %T", mem)
	}
}

func (e *Extractor) extractMethod(typeIRI string, m *symbols.Method) error {
	id := e.minter.Member(typeIRI, m)
	e.sink.EmitIRI(id, ontology.RDFType, ontology.Member)
	e.sink.EmitIRI(id, ontology.RDFType, ontology.Method)
	if sub := methodSubkind(m.Kind); sub != "" {
		e.sink.EmitIRI(id, ontology.RDFType, sub)
	}
	e.sink.EmitLiteral(id, ontology.Name, m.Name)
	e.sink.EmitLiteral(id, ontology.Accessibility, m.Accessibility.String())

	e.sink.EmitBool(id, ontology.IsStatic, m.IsStatic)
	e.sink.EmitBool(id, ontology.IsAbstract, m.IsAbstract)
	e.sink.EmitBool(id, ontology.IsVirtual, m.IsVirtual)
	e.sink.EmitBool(id, ontology.IsOverride, m.IsOverride)
	e.sink.EmitBool(id, ontology.IsSealed, m.IsSealed)
	e.sink.EmitBool(id, ontology.IsExtern, m.IsExtern)
	e.sink.EmitBool(id, ontology.IsAsync, m.IsAsync)
	e.sink.EmitBool(id, ontology.IsReadOnly, m.IsReadOnly)
	e.sink.EmitBool(id, ontology.IsExtensionMethod, m.IsExtensionMethod)
	e.sink.EmitBool(id, ontology.IsPartialDefinition, m.IsPartialDefinition)

	e.sink.EmitIRI(typeIRI, ontology.HasMember, id)
	e.sink.EmitIRI(id, ontology.MemberOf, typeIRI)

	// Void returns produce no return-type link at all.
	if !m.ReturnsVoid && m.ReturnType != nil {
		ret, err := e.ensureType(m.ReturnType)
		if err != nil {
			return err
		}
		e.sink.EmitIRI(id, ontology.ReturnType, ret)
	}

	for _, tp := range m.TypeParameters {
		if err := e.extractTypeParameter(id, tp); err != nil {
			return err
		}
	}
	for _, p := range m.Parameters {
		if err := e.extractParameter(id, p); err != nil {
			return err
		}
	}

	if m.Overrides != nil {
		if overridden, ok := e.memberIRI(m.Overrides.DeclaringType, m.Overrides); ok {
			e.sink.EmitIRI(id, ontology.OverridesMethod, overridden)
		}
	}
	for _, impl := range m.ExplicitImplementations {
		if target, ok := e.memberIRI(impl.DeclaringType, impl); ok {
			e.sink.EmitIRI(id, ontology.ExplicitlyImplements, target)
		}
	}

	if e.opts.IncludeAttributes {
		for i, attr := range m.Attrs {
			if err := e.extractAttribute(m, id, i, attr); err != nil {
				return err
			}
		}
		// Return-type attributes share the member's index space so two
		// instances never collide on the same attr node.
		for i, attr := range m.ReturnAttrs {
			if err := e.extractAttribute(m, id, len(m.Attrs)+i, attr); err != nil {
				return err
			}
		}
	}

	e.emitXRefs(m, id)
	return nil
}

func methodSubkind(k symbols.MethodKind) string {
	switch k {
	case symbols.MethodConstructor:
		return ontology.Constructor
	case symbols.MethodStaticConstructor:
		return ontology.StaticConstructor
	case symbols.MethodDestructor:
		return ontology.Destructor
	case symbols.MethodOperator:
		return ontology.Operator
	case symbols.MethodConversion:
		return ontology.Conversion
	default:
		return ""
	}
}

func (e *Extractor) extractProperty(typeIRI string, p *symbols.Property) error {
	id := e.minter.Member(typeIRI, p)
	e.sink.EmitIRI(id, ontology.RDFType, ontology.Member)
	e.sink.EmitIRI(id, ontology.RDFType, ontology.Property)
	e.sink.EmitLiteral(id, ontology.Name, p.Name)
	e.sink.EmitLiteral(id, ontology.Accessibility, p.Accessibility.String())

	e.sink.EmitBool(id, ontology.IsStatic, p.IsStatic)
	e.sink.EmitBool(id, ontology.IsAbstract, p.IsAbstract)
	e.sink.EmitBool(id, ontology.IsVirtual, p.IsVirtual)
	e.sink.EmitBool(id, ontology.IsOverride, p.IsOverride)
	e.sink.EmitBool(id, ontology.IsSealed, p.IsSealed)
	e.sink.EmitBool(id, ontology.IsRequired, p.IsRequired)
	e.sink.EmitBool(id, ontology.IsInitOnly, p.IsInitOnly)
	e.sink.EmitBool(id, ontology.HasGetter, p.HasGetter)
	e.sink.EmitBool(id, ontology.HasSetter, p.HasSetter)
	if p.HasGetter {
		e.sink.EmitLiteral(id, ontology.GetterAccessibility, p.GetterAccessibility.String())
	}
	if p.HasSetter {
		e.sink.EmitLiteral(id, ontology.SetterAccessibility, p.SetterAccessibility.String())
	}

	e.sink.EmitIRI(typeIRI, ontology.HasMember, id)
	e.sink.EmitIRI(id, ontology.MemberOf, typeIRI)

	if p.Type != nil {
		propType, err := e.ensureType(p.Type)
		if err != nil {
			return err
		}
		e.sink.EmitIRI(id, ontology.PropertyType, propType)
	}

	// Indexer parameters only; ordinary properties declare none.
	for _, param := range p.Parameters {
		if err := e.extractParameter(id, param); err != nil {
			return err
		}
	}

	if p.Overrides != nil {
		if overridden, ok := e.memberIRI(p.Overrides.DeclaringType, p.Overrides); ok {
			e.sink.EmitIRI(id, ontology.OverridesMethod, overridden)
		}
	}
	for _, impl := range p.ExplicitImplementations {
		if target, ok := e.memberIRI(impl.DeclaringType, impl); ok {
			e.sink.EmitIRI(id, ontology.ExplicitlyImplements, target)
		}
	}

	if e.opts.IncludeAttributes {
		for i, attr := range p.Attrs {
			if err := e.extractAttribute(p, id, i, attr); err != nil {
				return err
			}
		}
	}

	e.emitXRefs(p, id)
	return nil
}

func (e *Extractor) extractField(typeIRI string, f *symbols.Field) error {
	id := e.minter.Member(typeIRI, f)
	e.sink.EmitIRI(id, ontology.RDFType, ontology.Member)
	e.sink.EmitIRI(id, ontology.RDFType, ontology.Field)
	e.sink.EmitLiteral(id, ontology.Name, f.Name)
	e.sink.EmitLiteral(id, ontology.Accessibility, f.Accessibility.String())

	e.sink.EmitBool(id, ontology.IsStatic, f.IsStatic)
	e.sink.EmitBool(id, ontology.IsReadOnly, f.IsReadOnly)
	e.sink.EmitBool(id, ontology.IsConst, f.IsConst)
	e.sink.EmitBool(id, ontology.IsVolatile, f.IsVolatile)
	e.sink.EmitBool(id, ontology.IsRequired, f.IsRequired)

	e.sink.EmitIRI(typeIRI, ontology.HasMember, id)
	e.sink.EmitIRI(id, ontology.MemberOf, typeIRI)

	if f.Type != nil {
		fieldType, err := e.ensureType(f.Type)
		if err != nil {
			return err
		}
		e.sink.EmitIRI(id, ontology.FieldType, fieldType)
	}

	if f.HasConstant {
		e.emitConstant(id, f.Constant)
	}

	if e.opts.IncludeAttributes {
		for i, attr := range f.Attrs {
			if err := e.extractAttribute(f, id, i, attr); err != nil {
				return err
			}
		}
	}
	return nil
}

// emitConstant writes a const field's compile-time value. 64-bit integral
// constants keep an explicit long datatype; everything else is the
// human-readable rendering.
func (e *Extractor) emitConstant(id string, c symbols.Constant) {
	if c.Kind == symbols.ConstPrimitive {
		if v, ok := c.Value.(int64); ok {
			e.sink.EmitLong(id, ontology.ConstantValue, v)
			return
		}
	}
	e.sink.EmitLiteral(id, ontology.ConstantValue, c.Format())
}

func (e *Extractor) extractEvent(typeIRI string, ev *symbols.Event) error {
	id := e.minter.Member(typeIRI, ev)
	e.sink.EmitIRI(id, ontology.RDFType, ontology.Member)
	e.sink.EmitIRI(id, ontology.RDFType, ontology.Event)
	e.sink.EmitLiteral(id, ontology.Name, ev.Name)
	e.sink.EmitLiteral(id, ontology.Accessibility, ev.Accessibility.String())

	e.sink.EmitBool(id, ontology.IsStatic, ev.IsStatic)
	e.sink.EmitBool(id, ontology.IsAbstract, ev.IsAbstract)
	e.sink.EmitBool(id, ontology.IsVirtual, ev.IsVirtual)
	e.sink.EmitBool(id, ontology.IsOverride, ev.IsOverride)
	e.sink.EmitBool(id, ontology.IsSealed, ev.IsSealed)

	e.sink.EmitIRI(typeIRI, ontology.HasMember, id)
	e.sink.EmitIRI(id, ontology.MemberOf, typeIRI)

	if ev.Type != nil {
		evType, err := e.ensureType(ev.Type)
		if err != nil {
			return err
		}
		e.sink.EmitIRI(id, ontology.EventType, evType)
	}

	if ev.Overrides != nil {
		if overridden, ok := e.memberIRI(ev.Overrides.DeclaringType, ev.Overrides); ok {
			e.sink.EmitIRI(id, ontology.OverridesMethod, overridden)
		}
	}
	for _, impl := range ev.ExplicitImplementations {
		if target, ok := e.memberIRI(impl.DeclaringType, impl); ok {
			e.sink.EmitIRI(id, ontology.ExplicitlyImplements, target)
		}
	}

	if e.opts.IncludeAttributes {
		for i, attr := range ev.Attrs {
			if err := e.extractAttribute(ev, id, i, attr); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Extractor) extractParameter(memberIRI string, p *symbols.Parameter) error {
	id := e.minter.Parameter(memberIRI, p.Ordinal)
	e.sink.EmitIRI(id, ontology.RDFType, ontology.Parameter)
	e.sink.EmitLiteral(id, ontology.Name, p.Name)
	e.sink.EmitInt(id, ontology.Ordinal, p.Ordinal)
	e.sink.EmitLiteral(id, ontology.RefKind, p.RefKind.String())

	e.sink.EmitBool(id, ontology.IsOptional, p.IsOptional)
	e.sink.EmitBool(id, ontology.IsParams, p.IsParams)
	e.sink.EmitBool(id, ontology.IsThis, p.IsThis)
	e.sink.EmitBool(id, ontology.IsDiscard, p.IsDiscard)

	e.sink.EmitIRI(memberIRI, ontology.HasParameter, id)
	e.sink.EmitIRI(id, ontology.ParameterOf, memberIRI)

	if p.Type != nil {
		paramType, err := e.ensureType(p.Type)
		if err != nil {
			return err
		}
		e.sink.EmitIRI(id, ontology.ParameterType, paramType)
	}

	if p.HasExplicitDefault {
		e.sink.EmitLiteral(id, ontology.DefaultValue, p.Default.Format())
	}

	if e.opts.IncludeAttributes {
		for i, attr := range p.Attrs {
			if err := e.extractAttribute(p, id, i, attr); err != nil {
				return err
			}
		}
	}
	return nil
}

// memberIRI mints the identifier of a member referenced from elsewhere
// (override targets, explicit interface implementations). The declaring
// type is only minted, never bodied: dangling links to symbols outside
// the walk are acceptable.
func (e *Extractor) memberIRI(owner *symbols.NamedType, mem symbols.Member) (string, bool) {
	if owner == nil {
		return "", false
	}
	typeIRI, err := e.minter.Type(owner)
	if err != nil {
		return "", false
	}
	return e.minter.Member(typeIRI, mem), true
}
