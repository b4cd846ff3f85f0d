package symbols

import (
	"fmt"
	"strings"
)

// Attribute is one attribute instance applied to a target symbol. Type is
// nil when the attribute's declaring type could not be resolved; such
// instances are skipped during extraction.
type Attribute struct {
	Type                 *NamedType
	ConstructorArguments []Constant
	NamedArguments       []NamedArgument
}

// NamedArgument is a named (property/field) argument of an attribute.
type NamedArgument struct {
	Name  string
	Value Constant
}

// ConstantKind classifies compile-time constant values carried by
// attribute arguments, parameter defaults, and const fields.
type ConstantKind int

const (
	ConstNull ConstantKind = iota
	ConstPrimitive
	ConstString
	ConstType
	ConstArray
)

// Constant is a compile-time constant value.
type Constant struct {
	Kind ConstantKind

	// Value holds the primitive (bool, int64, float64, ...) or string.
	Value any

	// Type is the referenced type for ConstType constants.
	Type TypeRef

	// Elements holds the items of a ConstArray constant.
	Elements []Constant
}

// Format renders the constant as a human-readable literal: "null" for
// null, a double-quoted string, typeof(DisplayName) for type constants, a
// bracketed comma-joined list for arrays, and the default string form
// otherwise.
func (c Constant) Format() string {
	switch c.Kind {
	case ConstNull:
		return "null"
	case ConstString:
		return fmt.Sprintf("%q", c.Value)
	case ConstType:
		if c.Type == nil {
			return "typeof(?)"
		}
		return "typeof(" + c.Type.DisplayName() + ")"
	case ConstArray:
		parts := make([]string, len(c.Elements))
		for i, el := range c.Elements {
			parts[i] = el.Format()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprintf("%v", c.Value)
	}
}

// FormatConstants renders a comma-joined argument list, or "" when empty.
func FormatConstants(args []Constant) string {
	if len(args) == 0 {
		return ""
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Format()
	}
	return strings.Join(parts, ", ")
}

// FormatNamedArguments renders "Name = value" pairs comma-joined, or ""
// when empty.
func FormatNamedArguments(args []NamedArgument) string {
	if len(args) == 0 {
		return ""
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Name + " = " + a.Value.Format()
	}
	return strings.Join(parts, ", ")
}
