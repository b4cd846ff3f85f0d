package roslyngraph

import (
	"github.com/randlee/roslyn-graph/internal/extract"
	"github.com/randlee/roslyn-graph/internal/sink"
	"github.com/randlee/roslyn-graph/internal/symbols"
)

// Public type aliases for the internal symbol model and sink types. These
// are Go type aliases (=), identical to the internal types at compile
// time; external consumers use these names without conversion.

type Module = symbols.Module
type Namespace = symbols.Namespace
type NamedType = symbols.NamedType
type ArrayType = symbols.ArrayType
type PointerType = symbols.PointerType
type TypeParameter = symbols.TypeParameter
type TypeRef = symbols.TypeRef
type Member = symbols.Member
type Method = symbols.Method
type Property = symbols.Property
type Field = symbols.Field
type Event = symbols.Event
type Parameter = symbols.Parameter
type Attribute = symbols.Attribute
type Constant = symbols.Constant

type TripleSink = sink.TripleSink
type Recorder = sink.Recorder
type Fact = sink.Fact
type NTriples = sink.NTriples
type Turtle = sink.Turtle
type Store = sink.Store

type Stats = extract.Stats
type CrossReferencer = extract.CrossReferencer
