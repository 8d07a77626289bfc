// Package schema builds QMLON schemas from parsed schema documents and
// validates documents against them.
//
// # Schema Documents
//
// A schema is itself a QMLON document. Its root object names the entry type
// in the root property, and each child of the root declares one object type:
//
//	Schema {
//	  root: "Sprite"
//	  Sprite {
//	    Property { name: "id" type: String { min: 1 } }
//	    Child { type: "Animation" min: 1 }
//	  }
//	  Animation {
//	    Property { name: "id" }
//	    Property { name: "loop" optional: true type: Boolean { } }
//	    Child { type: "Frame" min: 1 }
//	  }
//	  Frame { }
//	}
//
// A declaration with interface: true is an interface: objects of any type
// satisfy it as long as they satisfy its properties and children.
//
// Property types are validator descriptors, objects typed Boolean, Integer,
// Float, String, List or Object, or a list of them meaning any of them.
// Integer, Float, String and List accept min and max bounds (String bounds
// are lengths in bytes, List bounds are element counts), List accepts a type
// giving its element validators and Object a type naming a declared type.
//
// # Validation
//
// Validate is total: it answers false for anything it cannot accept,
// including a nil schema or value. Check makes the same decision and
// reports where and why it failed.
//
// A Schema is read only once built and may be used concurrently.
package schema
