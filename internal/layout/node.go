package layout

import (
	"fmt"

	"github.com/alexisbeaulieu97/cui/internal/hooks"
	"github.com/alexisbeaulieu97/cui/internal/style"
	cuierrors "github.com/alexisbeaulieu97/cui/pkg/errors"
)

// Context is threaded top-down through a render pass. A Width of zero means
// the available width is unknown and containers size to their content.
type Context struct {
	Width       int
	ParentStyle style.Attributes
	Runtime     *hooks.Runtime
}

// derive returns the context a container hands to its children.
func (c Context) derive(width int, own style.Attributes) Context {
	return Context{
		Width:       max(0, width),
		ParentStyle: style.ChildStyle(c.ParentStyle, own),
		Runtime:     c.Runtime,
	}
}

// Component renders itself into rows for the given context.
type Component func(ctx Context) []Line

// Node is anything a container accepts as a child: a Component, a render
// function, a []Line, a Line, a Segment or a string.
type Node any

// ToComponent normalises a child node. Unsupported node types panic with a
// ContractError.
func ToComponent(n Node) Component {
	switch v := n.(type) {
	case Component:
		return v
	case func(Context) []Line:
		return v
	case []Line:
		return func(Context) []Line { return v }
	case Line:
		return func(Context) []Line { return []Line{v} }
	case Segment:
		return func(Context) []Line { return []Line{{Segments: []Segment{v}}} }
	case string:
		return func(ctx Context) []Line {
			return []Line{{Segments: []Segment{Seg(v, style.Inherited(ctx.ParentStyle))}}}
		}
	case nil:
		return func(Context) []Line { return nil }
	default:
		panic(cuierrors.NewContractError("layout", fmt.Sprintf("unsupported child type %T", n)))
	}
}

func toComponents(nodes []Node) []Component {
	out := make([]Component, len(nodes))
	for i, n := range nodes {
		out[i] = ToComponent(n)
	}
	return out
}

// Definition gives a stateful component a stable identity. Define it once,
// typically as a package-level variable, and call Render per use.
type Definition struct {
	name string
	id   hooks.ComponentID
}

// Define allocates a new component identity.
func Define(name string) Definition {
	return Definition{name: name, id: hooks.NewID()}
}

// Name returns the definition's name.
func (d Definition) Name() string { return d.name }

// ID returns the definition's hook identity.
func (d Definition) ID() hooks.ComponentID { return d.id }

// Render binds fn to the definition. The returned Component prepares the
// hook cursor before every call and requires a Runtime in its Context.
func (d Definition) Render(fn func(h *hooks.Cursor, ctx Context) []Line) Component {
	return func(ctx Context) []Line {
		if ctx.Runtime == nil {
			panic(cuierrors.NewContractError(d.name, "stateful component rendered without a hook runtime"))
		}
		cur := ctx.Runtime.Prepare(d.id)
		lines := fn(cur, ctx)
		cur.Finish()
		return lines
	}
}

// resolveWidth returns the width a container lays out against: its own
// width attribute resolved against the parent's, or the parent's.
func resolveWidth(st style.Attributes, parent int) int {
	if d, ok := st.Width.Get(); ok {
		if w := d.Resolve(parent); w > 0 {
			return w
		}
	}
	return max(0, parent)
}
