package metadata

import (
	"fmt"

	"github.com/randlee/roslyn-graph/internal/symbols"
)

func parseTypeKind(s string) (symbols.TypeKind, error) {
	switch s {
	case "", "class":
		return symbols.KindClass, nil
	case "struct":
		return symbols.KindStruct, nil
	case "interface":
		return symbols.KindInterface, nil
	case "enum":
		return symbols.KindEnum, nil
	case "delegate":
		return symbols.KindDelegate, nil
	default:
		return 0, fmt.Errorf("unknown type kind %q", s)
	}
}

func parseAccessibility(s string) (symbols.Accessibility, error) {
	switch s {
	case "":
		return symbols.AccessNone, nil
	case "public":
		return symbols.AccessPublic, nil
	case "private":
		return symbols.AccessPrivate, nil
	case "protected":
		return symbols.AccessProtected, nil
	case "internal":
		return symbols.AccessInternal, nil
	case "protectedAndInternal":
		return symbols.AccessProtectedAndInternal, nil
	case "protectedOrInternal":
		return symbols.AccessProtectedOrInternal, nil
	default:
		return 0, fmt.Errorf("unknown accessibility %q", s)
	}
}

func parseSpecialType(s string) (symbols.SpecialType, error) {
	switch s {
	case "":
		return symbols.SpecialNone, nil
	case "object":
		return symbols.SpecialObject, nil
	case "void":
		return symbols.SpecialVoid, nil
	case "string":
		return symbols.SpecialString, nil
	case "boolean":
		return symbols.SpecialBoolean, nil
	case "char":
		return symbols.SpecialChar, nil
	case "int32":
		return symbols.SpecialInt32, nil
	case "int64":
		return symbols.SpecialInt64, nil
	case "double":
		return symbols.SpecialDouble, nil
	case "dynamic":
		return symbols.SpecialDynamic, nil
	default:
		return 0, fmt.Errorf("unknown special type %q", s)
	}
}

func parseVariance(s string) (symbols.Variance, error) {
	switch s {
	case "", "invariant":
		return symbols.Invariant, nil
	case "covariant":
		return symbols.Covariant, nil
	case "contravariant":
		return symbols.Contravariant, nil
	default:
		return 0, fmt.Errorf("unknown variance %q", s)
	}
}

func parseRefKind(s string) (symbols.RefKind, error) {
	switch s {
	case "", "none":
		return symbols.RefNone, nil
	case "ref":
		return symbols.RefRef, nil
	case "out":
		return symbols.RefOut, nil
	case "in":
		return symbols.RefIn, nil
	default:
		return 0, fmt.Errorf("unknown ref kind %q", s)
	}
}

// methodKindOf maps the method-family member kinds; callers have already
// matched the string against the family.
func methodKindOf(s string) symbols.MethodKind {
	switch s {
	case "constructor":
		return symbols.MethodConstructor
	case "staticConstructor":
		return symbols.MethodStaticConstructor
	case "destructor":
		return symbols.MethodDestructor
	case "operator":
		return symbols.MethodOperator
	case "conversion":
		return symbols.MethodConversion
	default:
		return symbols.MethodOrdinary
	}
}
