// Package gomap binds validated QMLON documents onto Go values.
//
// Binding is driven by an explicit registry rather than reflection: a
// Binder[T] maps property names to setters and child type names to adders,
// each a typed function written or composed at startup.
//
//	pos := gomap.NewBinder[Position]().
//		Prop("x", gomap.Int(func(p *Position) *int { return &p.X })).
//		Prop("y", gomap.Int(func(p *Position) *int { return &p.Y }))
//	frame := gomap.NewBinder[Frame]().
//		Prop("position", gomap.Nested(pos, func(f *Frame) *Position { return &f.Position }))
//	anim := gomap.NewBinder[Animation]().
//		Child("Frame", gomap.AddChild(frame, func(a *Animation, f Frame) { a.Frames = append(a.Frames, f) }))
//
// Only an object's properties, children and their types are consulted.
// Properties without a setter and children without an adder are skipped
// unless the binder is strict. A child adder registered under "" receives
// children no other adder handles.
package gomap
