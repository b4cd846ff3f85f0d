// Package ontology holds the RDF vocabulary the extractor emits against:
// the standard RDF/XSD namespaces, the shared cross-language type-graph
// vocabulary under the tg: prefix, and .NET-specific extensions under dt:.
package ontology

// Standard RDF/RDFS/XSD namespace IRIs.
const (
	RDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFS = "http://www.w3.org/2000/01/rdf-schema#"
	XSD  = "http://www.w3.org/2001/XMLSchema#"

	RDFType = RDF + "type"

	XSDString  = XSD + "string"
	XSDBoolean = XSD + "boolean"
	XSDInteger = XSD + "integer"
	XSDLong    = XSD + "long"
)

// Shared type-graph vocabulary (tg: prefix), common to the extractor
// family regardless of source language.
const (
	TgPrefix = "tg"
	TgNS     = "http://typegraph.example/ontology/"

	// Classes.
	Assembly      = TgNS + "Assembly"
	NamespaceNode = TgNS + "Namespace"
	Type          = TgNS + "Type"
	Class         = TgNS + "Class"
	Struct        = TgNS + "Struct"
	Interface     = TgNS + "Interface"
	Enum          = TgNS + "Enum"
	Delegate      = TgNS + "Delegate"
	Record        = TgNS + "Record"
	Member        = TgNS + "Member"
	Method        = TgNS + "Method"
	Constructor   = TgNS + "Constructor"
	Property      = TgNS + "Property"
	Field         = TgNS + "Field"
	Event         = TgNS + "Event"
	Parameter     = TgNS + "Parameter"
	TypeParameter = TgNS + "TypeParameter"
	Attribute     = TgNS + "Attribute"
	ArrayType     = TgNS + "ArrayType"
	PointerType   = TgNS + "PointerType"

	// Entity properties.
	Name          = TgNS + "name"
	FullName      = TgNS + "fullName"
	TypeKind      = TgNS + "typeKind"
	Accessibility = TgNS + "accessibility"
	Version       = TgNS + "version"

	// Type trait flags.
	IsAbstract  = TgNS + "isAbstract"
	IsSealed    = TgNS + "isSealed"
	IsStatic    = TgNS + "isStatic"
	IsGeneric   = TgNS + "isGeneric"
	IsValueType = TgNS + "isValueType"
	IsRecord    = TgNS + "isRecord"

	// Type relationships.
	DefinedInAssembly = TgNS + "definedInAssembly"
	InNamespace       = TgNS + "inNamespace"
	Inherits          = TgNS + "inherits"
	Implements        = TgNS + "implements"
	NestedIn          = TgNS + "nestedIn"
	HasMember         = TgNS + "hasMember"
	HasTypeParameter  = TgNS + "hasTypeParameter"
	HasAttribute      = TgNS + "hasAttribute"
	GenericDefinition = TgNS + "genericDefinition"
	TypeArgument      = TgNS + "typeArgument"
	ArrayElementType  = TgNS + "arrayElementType"
	Throws            = TgNS + "throws"
	RelatedTo         = TgNS + "relatedTo"

	// Member trait flags.
	IsVirtual  = TgNS + "isVirtual"
	IsOverride = TgNS + "isOverride"
	IsAsync    = TgNS + "isAsync"
	IsConst    = TgNS + "isConst"
	IsReadOnly = TgNS + "isReadOnly"

	// Member relationships.
	MemberOf        = TgNS + "memberOf"
	ReturnType      = TgNS + "returnType"
	PropertyType    = TgNS + "propertyType"
	FieldType       = TgNS + "fieldType"
	EventType       = TgNS + "eventType"
	HasParameter    = TgNS + "hasParameter"
	OverridesMethod = TgNS + "overridesMethod"

	// Parameter properties.
	Ordinal       = TgNS + "ordinal"
	ParameterType = TgNS + "parameterType"
	ParameterOf   = TgNS + "parameterOf"
	IsOptional    = TgNS + "isOptional"
	RefKind       = TgNS + "refKind"
	DefaultValue  = TgNS + "defaultValue"

	// Type parameter properties.
	Variance          = TgNS + "variance"
	TypeParameterOf   = TgNS + "typeParameterOf"
	ConstrainedToType = TgNS + "constrainedToType"

	// Namespace relationships.
	ParentNamespace = TgNS + "parentNamespace"

	// Attribute relationships.
	AttributeOf   = TgNS + "attributeOf"
	AttributeType = TgNS + "attributeType"
)

// .NET-specific extensions (dt: prefix).
const (
	DtPrefix = "dt"
	DtNS     = "http://dotnet.example/ontology/"

	// Classes.
	StaticConstructor = DtNS + "StaticConstructor"
	Destructor        = DtNS + "Destructor"
	Operator          = DtNS + "Operator"
	Conversion        = DtNS + "Conversion"
	TypeArgumentNode  = DtNS + "TypeArgument"

	// Assembly properties.
	Culture        = DtNS + "culture"
	PublicKeyToken = DtNS + "publicKeyToken"
	IsInteractive  = DtNS + "isInteractive"

	// Type trait flags beyond the shared set.
	IsRefLike      = DtNS + "isRefLike"
	IsReadOnlyType = DtNS + "isReadOnlyType"
	IsUnmanaged    = DtNS + "isUnmanagedType"
	SpecialType    = DtNS + "specialType"

	// Type relationships.
	EnumUnderlyingType = DtNS + "enumUnderlyingType"
	PointerElementType = DtNS + "pointerElementType"
	ArrayRank          = DtNS + "arrayRank"
	ArgumentType       = DtNS + "argumentType"
	ArgumentIndex      = DtNS + "index"

	// Member trait flags.
	IsExtern             = DtNS + "isExtern"
	IsVolatile           = DtNS + "isVolatile"
	IsRequired           = DtNS + "isRequired"
	IsInitOnly           = DtNS + "isInitOnly"
	IsExtensionMethod    = DtNS + "isExtensionMethod"
	IsPartialDefinition  = DtNS + "isPartialDefinition"
	HasGetter            = DtNS + "hasGetter"
	HasSetter            = DtNS + "hasSetter"
	GetterAccessibility  = DtNS + "getterAccessibility"
	SetterAccessibility  = DtNS + "setterAccessibility"
	ConstantValue        = DtNS + "constantValue"
	ExplicitlyImplements = DtNS + "explicitlyImplements"

	// Parameter trait flags.
	IsParams  = DtNS + "isParams"
	IsThis    = DtNS + "isThis"
	IsDiscard = DtNS + "isDiscard"

	// Type parameter constraint flags.
	HasReferenceTypeConstraint = DtNS + "hasReferenceTypeConstraint"
	HasValueTypeConstraint     = DtNS + "hasValueTypeConstraint"
	HasUnmanagedConstraint     = DtNS + "hasUnmanagedConstraint"
	HasNotNullConstraint       = DtNS + "hasNotNullConstraint"
	HasConstructorConstraint   = DtNS + "hasConstructorConstraint"

	// Attribute argument literals.
	ConstructorArguments = DtNS + "constructorArguments"
	NamedArguments       = DtNS + "namedArguments"
)
