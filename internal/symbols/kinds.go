package symbols

// Accessibility is the declared accessibility of a type or member.
type Accessibility int

const (
	AccessNone Accessibility = iota
	AccessPrivate
	AccessProtectedAndInternal
	AccessProtected
	AccessInternal
	AccessProtectedOrInternal
	AccessPublic
)

func (a Accessibility) String() string {
	switch a {
	case AccessPrivate:
		return "Private"
	case AccessProtectedAndInternal:
		return "ProtectedAndInternal"
	case AccessProtected:
		return "Protected"
	case AccessInternal:
		return "Internal"
	case AccessProtectedOrInternal:
		return "ProtectedOrInternal"
	case AccessPublic:
		return "Public"
	default:
		return "NotApplicable"
	}
}

// TypeKind is the declaration shape of a named type.
type TypeKind int

const (
	KindClass TypeKind = iota
	KindStruct
	KindInterface
	KindEnum
	KindDelegate
)

func (k TypeKind) String() string {
	switch k {
	case KindStruct:
		return "Struct"
	case KindInterface:
		return "Interface"
	case KindEnum:
		return "Enum"
	case KindDelegate:
		return "Delegate"
	default:
		return "Class"
	}
}

// SpecialType tags types with well-known runtime identities the extractor
// must recognize (the universal object root, void returns).
type SpecialType int

const (
	SpecialNone SpecialType = iota
	SpecialObject
	SpecialVoid
	SpecialString
	SpecialBoolean
	SpecialChar
	SpecialInt32
	SpecialInt64
	SpecialDouble
	SpecialDynamic
)

func (s SpecialType) String() string {
	switch s {
	case SpecialObject:
		return "System.Object"
	case SpecialVoid:
		return "System.Void"
	case SpecialString:
		return "System.String"
	case SpecialBoolean:
		return "System.Boolean"
	case SpecialChar:
		return "System.Char"
	case SpecialInt32:
		return "System.Int32"
	case SpecialInt64:
		return "System.Int64"
	case SpecialDouble:
		return "System.Double"
	case SpecialDynamic:
		return "dynamic"
	default:
		return ""
	}
}

// MethodKind distinguishes the flavors of method-shaped members. The
// accessor kinds (getter, setter, adder, remover) are synthesized by the
// compiler for properties and events; the extractor never walks them
// directly.
type MethodKind int

const (
	MethodOrdinary MethodKind = iota
	MethodConstructor
	MethodStaticConstructor
	MethodDestructor
	MethodOperator
	MethodConversion
	MethodPropertyGet
	MethodPropertySet
	MethodEventAdd
	MethodEventRemove
)

func (k MethodKind) String() string {
	switch k {
	case MethodConstructor:
		return "Constructor"
	case MethodStaticConstructor:
		return "StaticConstructor"
	case MethodDestructor:
		return "Destructor"
	case MethodOperator:
		return "Operator"
	case MethodConversion:
		return "Conversion"
	case MethodPropertyGet:
		return "PropertyGet"
	case MethodPropertySet:
		return "PropertySet"
	case MethodEventAdd:
		return "EventAdd"
	case MethodEventRemove:
		return "EventRemove"
	default:
		return "Ordinary"
	}
}

// IsExplicit reports whether a method of this kind is declared by the user
// rather than synthesized for a property or event accessor.
func (k MethodKind) IsExplicit() bool {
	switch k {
	case MethodOrdinary, MethodConstructor, MethodStaticConstructor,
		MethodDestructor, MethodOperator, MethodConversion:
		return true
	default:
		return false
	}
}

// RefKind is the pass-by-reference mode of a parameter.
type RefKind int

const (
	RefNone RefKind = iota
	RefRef
	RefOut
	RefIn
)

func (r RefKind) String() string {
	switch r {
	case RefRef:
		return "ref"
	case RefOut:
		return "out"
	case RefIn:
		return "in"
	default:
		return "none"
	}
}

// Variance is the declared variance of a type parameter.
type Variance int

const (
	Invariant Variance = iota
	Covariant
	Contravariant
)

func (v Variance) String() string {
	switch v {
	case Covariant:
		return "covariant"
	case Contravariant:
		return "contravariant"
	default:
		return "invariant"
	}
}
