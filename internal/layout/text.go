package layout

import (
	"github.com/alexisbeaulieu97/cui/internal/style"
	"github.com/alexisbeaulieu97/cui/internal/text"
)

// Text renders content with the paint inherited from the parent overlaid by
// st. When a width is known the content is fitted with st's wrap policy
// (word wrap by default); otherwise each paragraph is one row.
func Text(content string, st style.Attributes) Component {
	return func(ctx Context) []Line {
		own := style.ChildStyle(ctx.ParentStyle, st)
		paint := style.Inherited(own)
		content := own.Transform.Or(style.TransformNone).Apply(content)

		width := resolveWidth(st, ctx.Width)
		policy := st.Wrap.Or(text.WordWrap)
		if width == 0 {
			policy = text.NoWrap
		}

		rows := text.Lines(content, width, policy)
		if len(rows) == 0 {
			rows = []string{""}
		}

		out := make([]Line, len(rows))
		for i, r := range rows {
			out[i] = Line{Segments: []Segment{Seg(r, paint)}}
		}
		return out
	}
}

// Styled is Text with its attributes given as class shorthand.
func Styled(content, classes string) Component {
	return Text(content, style.ParseClasses(classes))
}

// Title renders content upper-cased in bold white.
func Title(content string) Component {
	return Text(content, style.Attributes{Paint: style.Paint{
		Color:     style.Of("white"),
		Bold:      style.Of(true),
		Transform: style.Of(style.TransformUppercase),
	}})
}

// Subtitle renders content in grey italics.
func Subtitle(content string) Component {
	return Text(content, style.Attributes{Paint: style.Paint{
		Color:  style.Of("gray"),
		Italic: style.Of(true),
	}})
}
