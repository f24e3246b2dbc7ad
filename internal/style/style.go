// Package style models the visual and layout attributes of rendered text.
//
// Attributes is a plain comparable struct: two styles are equal when their
// fields are equal, so callers may use == freely. Fields are split into an
// inheritable paint subset (colour, font, decoration) that flows from parent
// to child, and a layout-local subset (spacing, borders, flex, sizing) that
// only applies to the node that declares it.
package style

import (
	"github.com/alexisbeaulieu97/cui/internal/text"
)

// BorderVariant selects one of the fixed border glyph sets.
type BorderVariant string

const (
	BorderSingle  BorderVariant = "single"
	BorderDouble  BorderVariant = "double"
	BorderRounded BorderVariant = "rounded"
)

// Direction is the main axis of a flex container.
type Direction string

const (
	DirectionRow    Direction = "row"
	DirectionColumn Direction = "column"
)

// Justify distributes slack along the main axis.
type Justify string

const (
	JustifyStart   Justify = "start"
	JustifyCenter  Justify = "center"
	JustifyEnd     Justify = "end"
	JustifyBetween Justify = "between"
)

// Align positions content on the cross axis.
type Align string

const (
	AlignStart  Align = "start"
	AlignCenter Align = "center"
	AlignEnd    Align = "end"
)

// Paint holds the inheritable attributes.
type Paint struct {
	Color         Prop[string]
	Background    Prop[string]
	BorderColor   Prop[string]
	Bold          Prop[bool]
	Italic        Prop[bool]
	Faint         Prop[bool]
	Underline     Prop[bool]
	Strikethrough Prop[bool]
	Transform     Prop[Transform]
}

// Layout holds attributes that apply only to the node declaring them.
type Layout struct {
	PaddingX    Prop[int]
	PaddingY    Prop[int]
	Border      Prop[bool]
	BorderStyle Prop[BorderVariant]
	Direction   Prop[Direction]
	Justify     Prop[Justify]
	Align       Prop[Align]
	Gap         Prop[int]
	Width       Prop[Dimension]
	MinHeight   Prop[int]
	Wrap        Prop[text.WrapPolicy]
}

// Attributes is the full style of a node.
type Attributes struct {
	Paint
	Layout
}

// IsZero reports whether no attribute carries an opinion.
func (a Attributes) IsZero() bool {
	return a == Attributes{}
}

// Merge layers own on top of parent. Any attribute own sets or unsets wins.
func Merge(parent, own Attributes) Attributes {
	return Attributes{
		Paint: mergePaint(parent.Paint, own.Paint),
		Layout: Layout{
			PaddingX:    own.PaddingX.over(parent.PaddingX),
			PaddingY:    own.PaddingY.over(parent.PaddingY),
			Border:      own.Border.over(parent.Border),
			BorderStyle: own.BorderStyle.over(parent.BorderStyle),
			Direction:   own.Direction.over(parent.Direction),
			Justify:     own.Justify.over(parent.Justify),
			Align:       own.Align.over(parent.Align),
			Gap:         own.Gap.over(parent.Gap),
			Width:       own.Width.over(parent.Width),
			MinHeight:   own.MinHeight.over(parent.MinHeight),
			Wrap:        own.Wrap.over(parent.Wrap),
		},
	}
}

func mergePaint(parent, own Paint) Paint {
	return Paint{
		Color:         own.Color.over(parent.Color),
		Background:    own.Background.over(parent.Background),
		BorderColor:   own.BorderColor.over(parent.BorderColor),
		Bold:          own.Bold.over(parent.Bold),
		Italic:        own.Italic.over(parent.Italic),
		Faint:         own.Faint.over(parent.Faint),
		Underline:     own.Underline.over(parent.Underline),
		Strikethrough: own.Strikethrough.over(parent.Strikethrough),
		Transform:     own.Transform.over(parent.Transform),
	}
}

// Inherited projects the inheritable subset of a. Layout attributes are
// dropped so they never leak across a layout-owning boundary.
func Inherited(a Attributes) Attributes {
	return Attributes{Paint: a.Paint}
}

// ChildStyle computes the style a container hands to its children:
// the inheritable part of the parent's style overlaid with the container's own.
func ChildStyle(parent, own Attributes) Attributes {
	return Merge(Inherited(parent), own)
}

// Dimension is a width expressed either in cells or as a fraction of the
// available width.
type Dimension struct {
	Cells   int
	Percent float64
}

// Cells returns a fixed-size dimension.
func Cells(n int) Dimension { return Dimension{Cells: n} }

// Percent returns a dimension relative to the available width (0-100).
func Percent(p float64) Dimension { return Dimension{Percent: p} }

// Resolve converts d to cells against available. A percentage of an
// unknown (zero) width resolves to zero, meaning "unknown".
func (d Dimension) Resolve(available int) int {
	if d.Percent > 0 {
		if available <= 0 {
			return 0
		}
		return int(float64(available) * d.Percent / 100)
	}
	return d.Cells
}
