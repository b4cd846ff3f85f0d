package symbols

// Member is any named member of a type: method, property, field, or event.
// The set of implementations is closed; extraction dispatches on the
// concrete type.
type Member interface {
	MemberName() string
	MemberAccessibility() Accessibility
	DeclaredIn() *NamedType
	MemberAttributes() []*Attribute
	// Synthesized reports whether the compiler generated the member.
	Synthesized() bool
	// Documentation is the raw doc-comment XML blob, if any.
	Documentation() string

	member()
}

// Method is an ordinary method, constructor, static constructor,
// destructor, operator, conversion, or a compiler-synthesized accessor.
type Method struct {
	Name          string
	Accessibility Accessibility
	Kind          MethodKind

	IsStatic            bool
	IsAbstract          bool
	IsVirtual           bool
	IsOverride          bool
	IsSealed            bool
	IsExtern            bool
	IsAsync             bool
	IsReadOnly          bool
	IsExtensionMethod   bool
	IsPartialDefinition bool

	// ReturnsVoid suppresses the return-type link; ReturnType may be nil
	// in that case.
	ReturnsVoid bool
	ReturnType  TypeRef

	Parameters     []*Parameter
	TypeParameters []*TypeParameter

	Overrides               *Method
	ExplicitImplementations []*Method

	DeclaringType       *NamedType
	IsCompilerGenerated bool

	Attrs       []*Attribute
	ReturnAttrs []*Attribute

	Doc string
}

func (*Method) member() {}

func (m *Method) MemberName() string                  { return m.Name }
func (m *Method) MemberAccessibility() Accessibility  { return m.Accessibility }
func (m *Method) DeclaredIn() *NamedType              { return m.DeclaringType }
func (m *Method) MemberAttributes() []*Attribute      { return m.Attrs }
func (m *Method) Synthesized() bool                   { return m.IsCompilerGenerated }
func (m *Method) Documentation() string               { return m.Doc }

// Property is a property or indexer.
type Property struct {
	Name          string
	Accessibility Accessibility

	IsStatic   bool
	IsAbstract bool
	IsVirtual  bool
	IsOverride bool
	IsSealed   bool
	IsRequired bool
	IsIndexer  bool

	HasGetter            bool
	HasSetter            bool
	GetterAccessibility  Accessibility
	SetterAccessibility  Accessibility
	IsInitOnly           bool

	Type TypeRef

	// Parameters is non-empty only for indexers.
	Parameters []*Parameter

	Overrides               *Property
	ExplicitImplementations []*Property

	DeclaringType       *NamedType
	IsCompilerGenerated bool
	Attrs               []*Attribute
	Doc                 string
}

func (*Property) member() {}

func (p *Property) MemberName() string                 { return p.Name }
func (p *Property) MemberAccessibility() Accessibility { return p.Accessibility }
func (p *Property) DeclaredIn() *NamedType             { return p.DeclaringType }
func (p *Property) MemberAttributes() []*Attribute     { return p.Attrs }
func (p *Property) Synthesized() bool                  { return p.IsCompilerGenerated }
func (p *Property) Documentation() string              { return p.Doc }

// Field is a field, constant, or enum member.
type Field struct {
	Name          string
	Accessibility Accessibility

	IsStatic   bool
	IsReadOnly bool
	IsConst    bool
	IsVolatile bool
	IsRequired bool

	Type TypeRef

	HasConstant bool
	Constant    Constant

	DeclaringType       *NamedType
	IsCompilerGenerated bool
	Attrs               []*Attribute
	Doc                 string
}

func (*Field) member() {}

func (f *Field) MemberName() string                 { return f.Name }
func (f *Field) MemberAccessibility() Accessibility { return f.Accessibility }
func (f *Field) DeclaredIn() *NamedType             { return f.DeclaringType }
func (f *Field) MemberAttributes() []*Attribute     { return f.Attrs }
func (f *Field) Synthesized() bool                  { return f.IsCompilerGenerated }
func (f *Field) Documentation() string              { return f.Doc }

// Event is an event member.
type Event struct {
	Name          string
	Accessibility Accessibility

	IsStatic   bool
	IsAbstract bool
	IsVirtual  bool
	IsOverride bool
	IsSealed   bool

	Type TypeRef

	Overrides               *Event
	ExplicitImplementations []*Event

	DeclaringType       *NamedType
	IsCompilerGenerated bool
	Attrs               []*Attribute
	Doc                 string
}

func (*Event) member() {}

func (e *Event) MemberName() string                 { return e.Name }
func (e *Event) MemberAccessibility() Accessibility { return e.Accessibility }
func (e *Event) DeclaredIn() *NamedType             { return e.DeclaringType }
func (e *Event) MemberAttributes() []*Attribute     { return e.Attrs }
func (e *Event) Synthesized() bool                  { return e.IsCompilerGenerated }
func (e *Event) Documentation() string              { return e.Doc }

// Parameter is a formal parameter of a method, constructor, delegate, or
// indexer. Ordinal is the 0-based declaration position.
type Parameter struct {
	Name    string
	Ordinal int
	Type    TypeRef
	RefKind RefKind

	IsOptional bool
	IsParams   bool
	IsThis     bool
	IsDiscard  bool

	HasExplicitDefault bool
	Default            Constant

	Attrs []*Attribute
}
