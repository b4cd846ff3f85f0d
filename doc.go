// Package roslyngraph extracts the symbol graph of a compiled .NET module
// as RDF triples: assemblies, namespaces, types, members, parameters, and
// attributes become nodes with stable IRIs, and their relationships become
// edges suitable for bulk loading into a graph store.
//
// # Pipeline
//
// Extraction runs in three stages:
//
//  1. Load: parse a reflective symbol document (the JSON export of a
//     module's type surface) into an in-memory, possibly cyclic symbol
//     graph. See the internal/metadata package.
//
//  2. Extract: walk the namespace and type forest depth-first, apply the
//     visibility policy, mint a deterministic IRI for every entity, and
//     stream facts to a sink. Visited-sets break reference cycles, so
//     every entity is emitted exactly once per run.
//
//  3. Serialize: the sink renders facts as N-Triples, Turtle, an
//     in-memory recording, or rows in a SQLite database.
//
// # Usage
//
// Load a module, pick a sink, and extract:
//
//	mod, err := roslyngraph.LoadModule("mylib.symbols.json")
//	if err != nil { ... }
//
//	out := roslyngraph.NewTurtle(os.Stdout)
//	stats, err := roslyngraph.Extract(mod, out,
//		roslyngraph.WithBaseIRI("http://example.org/dotnet"),
//		roslyngraph.WithIncludePrivate(true),
//	)
//
// # Identifiers
//
// Every entity's IRI is minted from its declaration identity, never from
// object addresses, so repeated runs over the same module produce the
// same graph. Overloaded methods carry their parameter-type signature in
// the IRI; generic arity, nesting chains, and array/pointer modifiers are
// all part of a type's metadata name. Two methods that differ only in
// ref/out modifiers mint the same IRI; consumers depend on this and it is
// left as is.
package roslyngraph
