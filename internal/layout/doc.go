// Package layout renders component trees into styled terminal lines.
//
// A Component is a plain function from a Context (available width, the
// inheritable style of its parent and the hook runtime) to the rows it
// occupies. Containers such as Box, Stack and Flex compose children by
// rendering them against a derived Context and stitching their rows
// together; nothing is retained between passes except hook state.
//
// Typical usage:
//
//	view := layout.Stack(style.ParseClasses("gap-1"),
//		layout.Title("Shop"),
//		layout.Box(style.ParseClasses("border px-1"), layout.Text("hello", style.Attributes{})),
//	)
//	lines := view(layout.Context{Width: 40, Runtime: rt})
//	text, styles := layout.Combine(lines)
package layout
