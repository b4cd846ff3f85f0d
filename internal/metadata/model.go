// Package metadata loads a reflective symbol document, the JSON export of
// a compiled module's type surface, and resolves it into the in-memory
// symbol graph the extractor walks. The document is flat: every named
// type lives in one id-indexed map, and all cross-references go through
// ids, so cyclic type graphs round-trip without special casing.
package metadata

import "encoding/json"

// Document is the top-level symbol document.
type Document struct {
	Module ModuleDoc           `json:"module"`
	Types  map[string]*TypeDoc `json:"types"`
}

// ModuleDoc identifies the target module.
type ModuleDoc struct {
	Name           string         `json:"name"`
	Version        string         `json:"version"`
	Culture        string         `json:"culture,omitempty"`
	PublicKeyToken string         `json:"publicKeyToken,omitempty"`
	Interactive    bool           `json:"interactive,omitempty"`
	Attributes     []AttributeDoc `json:"attributes,omitempty"`
}

// AssemblyRef names the owning assembly of an external type.
type AssemblyRef struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// TypeDoc is one named type. Types declared in the target module carry no
// assembly field; external types name theirs; built-ins with no owning
// assembly set builtin instead.
type TypeDoc struct {
	Name          string `json:"name"`
	Namespace     string `json:"namespace,omitempty"`
	Kind          string `json:"kind"`
	Accessibility string `json:"accessibility,omitempty"`
	Special       string `json:"special,omitempty"`

	Assembly *AssemblyRef `json:"assembly,omitempty"`
	Builtin  bool         `json:"builtin,omitempty"`

	ContainingType string `json:"containingType,omitempty"`

	Base       *TypeRefDoc `json:"base,omitempty"`
	Interfaces []string    `json:"interfaces,omitempty"`

	Abstract  bool `json:"abstract,omitempty"`
	Sealed    bool `json:"sealed,omitempty"`
	Static    bool `json:"static,omitempty"`
	ValueType bool `json:"valueType,omitempty"`
	Record    bool `json:"record,omitempty"`
	RefLike   bool `json:"refLike,omitempty"`
	ReadOnly  bool `json:"readOnly,omitempty"`
	Unmanaged bool `json:"unmanaged,omitempty"`

	EnumUnderlying *TypeRefDoc `json:"enumUnderlying,omitempty"`

	TypeParameters []TypeParamDoc `json:"typeParameters,omitempty"`
	Members        []MemberDoc    `json:"members,omitempty"`
	Attributes     []AttributeDoc `json:"attributes,omitempty"`

	CompilerGenerated bool   `json:"compilerGenerated,omitempty"`
	Doc               string `json:"doc,omitempty"`
}

// TypeRefDoc references a type shape from a use site. Kind selects the
// variant: "named" (Id into the types map), "array" (Element, Rank),
// "pointer" (Pointee), "typeParameter" (Name resolved against the
// enclosing owner), or "instantiation" (Definition id plus Arguments).
type TypeRefDoc struct {
	Kind string `json:"kind"`

	Id string `json:"id,omitempty"`

	Element *TypeRefDoc `json:"element,omitempty"`
	Rank    int         `json:"rank,omitempty"`
	Pointee *TypeRefDoc `json:"pointee,omitempty"`

	Name string `json:"name,omitempty"`

	Definition string       `json:"definition,omitempty"`
	Arguments  []TypeRefDoc `json:"arguments,omitempty"`
}

// TypeParamDoc is one declared generic parameter.
type TypeParamDoc struct {
	Name     string `json:"name"`
	Variance string `json:"variance,omitempty"`

	ReferenceTypeConstraint bool `json:"referenceTypeConstraint,omitempty"`
	ValueTypeConstraint     bool `json:"valueTypeConstraint,omitempty"`
	UnmanagedConstraint     bool `json:"unmanagedConstraint,omitempty"`
	NotNullConstraint       bool `json:"notNullConstraint,omitempty"`
	ConstructorConstraint   bool `json:"constructorConstraint,omitempty"`

	ConstraintTypes []TypeRefDoc `json:"constraintTypes,omitempty"`
}

// MemberDoc is one member of a type. Kind selects the flavor: "method",
// "constructor", "staticConstructor", "destructor", "operator",
// "conversion", "property", "field", or "event".
type MemberDoc struct {
	Name          string `json:"name"`
	Kind          string `json:"kind"`
	Accessibility string `json:"accessibility,omitempty"`

	Static            bool `json:"static,omitempty"`
	Abstract          bool `json:"abstract,omitempty"`
	Virtual           bool `json:"virtual,omitempty"`
	Override          bool `json:"override,omitempty"`
	Sealed            bool `json:"sealed,omitempty"`
	Extern            bool `json:"extern,omitempty"`
	Async             bool `json:"async,omitempty"`
	ReadOnly          bool `json:"readOnly,omitempty"`
	Const             bool `json:"const,omitempty"`
	Volatile          bool `json:"volatile,omitempty"`
	Required          bool `json:"required,omitempty"`
	InitOnly          bool `json:"initOnly,omitempty"`
	ExtensionMethod   bool `json:"extensionMethod,omitempty"`
	PartialDefinition bool `json:"partialDefinition,omitempty"`
	Indexer           bool `json:"indexer,omitempty"`

	ReturnsVoid bool        `json:"returnsVoid,omitempty"`
	Type        *TypeRefDoc `json:"type,omitempty"`

	Getter              bool   `json:"getter,omitempty"`
	Setter              bool   `json:"setter,omitempty"`
	GetterAccessibility string `json:"getterAccessibility,omitempty"`
	SetterAccessibility string `json:"setterAccessibility,omitempty"`

	Constant *ConstantDoc `json:"constant,omitempty"`

	Parameters     []ParameterDoc `json:"parameters,omitempty"`
	TypeParameters []TypeParamDoc `json:"typeParameters,omitempty"`

	Overrides          *MemberRefDoc  `json:"overrides,omitempty"`
	ExplicitImplements []MemberRefDoc `json:"explicitImplements,omitempty"`
	Attributes         []AttributeDoc `json:"attributes,omitempty"`
	ReturnAttributes   []AttributeDoc `json:"returnAttributes,omitempty"`
	CompilerGenerated  bool           `json:"compilerGenerated,omitempty"`
	Doc                string         `json:"doc,omitempty"`
}

// MemberRefDoc points at a member of another type, by owning type id and
// member name. Ambiguous overloads resolve to the first declaration with
// a matching name and parameter count.
type MemberRefDoc struct {
	Type           string `json:"type"`
	Name           string `json:"name"`
	ParameterCount *int   `json:"parameterCount,omitempty"`
}

// ParameterDoc is one formal parameter, in declaration order.
type ParameterDoc struct {
	Name     string      `json:"name"`
	Type     *TypeRefDoc `json:"type,omitempty"`
	RefKind  string      `json:"refKind,omitempty"`
	Optional bool        `json:"optional,omitempty"`
	Params   bool        `json:"params,omitempty"`
	This     bool        `json:"this,omitempty"`
	Discard  bool        `json:"discard,omitempty"`

	Default    *ConstantDoc   `json:"default,omitempty"`
	Attributes []AttributeDoc `json:"attributes,omitempty"`
}

// AttributeDoc is one attribute instance. Type is the id of the attribute
// class; unresolvable instances leave it empty and are dropped during
// extraction.
type AttributeDoc struct {
	Type                 string             `json:"type,omitempty"`
	ConstructorArguments []ConstantDoc      `json:"constructorArguments,omitempty"`
	NamedArguments       []NamedArgumentDoc `json:"namedArguments,omitempty"`
}

// NamedArgumentDoc is a named attribute argument.
type NamedArgumentDoc struct {
	Name  string      `json:"name"`
	Value ConstantDoc `json:"value"`
}

// ConstantDoc is a compile-time constant. Kind is "null", "string",
// "primitive", "type", or "array"; Value holds the raw JSON scalar for
// the first three.
type ConstantDoc struct {
	Kind     string          `json:"kind"`
	Value    json.RawMessage `json:"value,omitempty"`
	Type     *TypeRefDoc     `json:"type,omitempty"`
	Elements []ConstantDoc   `json:"elements,omitempty"`
}
