// Package ir provides the in-memory document model for QMLON.
//
// # Overview
//
// Every parsed document is a tree of *Value. A Value is a tagged union: Kind
// says which payload field is populated.
//
//   - BoolKind: Bool
//   - IntKind: Int
//   - FloatKind: Float
//   - StringKind: Str
//   - ObjectKind: Obj
//   - ListKind: List
//
// An Object has a type name (empty for anonymous objects), a map of
// properties and an ordered sequence of child objects:
//
//	sprite := ir.NewObject("Sprite")
//	sprite.Set("id", ir.FromString("hero"))
//	sprite.AddChild(ir.NewObject("Animation"))
//
// Trees are owned top down and have no parent pointers, so they are acyclic
// by construction. Nothing in this package mutates a tree behind the caller's
// back; a tree shared between goroutines must not be modified.
//
// # Narrowing
//
// AsBool, AsInt, AsFloat, AsString, AsObject and AsList return the payload or
// a *KindError which wraps ErrWrongKind.
//
// # JSON
//
// Values marshal to JSON: scalars and lists map directly, objects map to
//
//	{"type": "Sprite", "properties": {...}, "children": [...]}
//
// Integers and floats remain distinct across a round trip.
package ir
