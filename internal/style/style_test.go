package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/cui/internal/text"
)

func TestMergeOwnKeysWin(t *testing.T) {
	t.Parallel()

	parent := Attributes{Paint: Paint{Color: Of("gray"), Bold: Of(true)}}
	own := Attributes{Paint: Paint{Color: Of("white")}}

	merged := Merge(parent, own)

	assert.Equal(t, "white", merged.Color.Or(""))
	assert.True(t, merged.Bold.Or(false))
}

func TestMergeUnsetCancelsInheritedValue(t *testing.T) {
	t.Parallel()

	parent := Attributes{Paint: Paint{Color: Of("gray"), Italic: Of(true)}}
	own := Attributes{Paint: Paint{Color: Unset[string]()}}

	merged := Merge(parent, own)

	_, ok := merged.Color.Get()
	assert.False(t, ok)
	assert.True(t, merged.Color.IsUnset())
	assert.True(t, merged.Italic.Or(false))

	// An unset value keeps cancelling further down the tree.
	grandchild := Merge(Inherited(merged), Attributes{})
	assert.True(t, grandchild.Color.IsUnset())
}

func TestInheritedDropsLayoutAttributes(t *testing.T) {
	t.Parallel()

	a := Attributes{
		Paint:  Paint{Color: Of("white"), Underline: Of(true)},
		Layout: Layout{PaddingX: Of(2), Border: Of(true), Width: Of(Cells(10))},
	}

	inherited := Inherited(a)

	assert.Equal(t, a.Paint, inherited.Paint)
	assert.Equal(t, Layout{}, inherited.Layout)
}

func TestChildStyleNeverLeaksParentLayout(t *testing.T) {
	t.Parallel()

	parent := Attributes{
		Paint:  Paint{Color: Of("gray")},
		Layout: Layout{Gap: Of(3)},
	}
	own := Attributes{Layout: Layout{PaddingY: Of(1)}}

	child := ChildStyle(parent, own)

	assert.Equal(t, "gray", child.Color.Or(""))
	assert.False(t, child.Gap.IsSet())
	assert.Equal(t, 1, child.PaddingY.Or(0))
}

func TestAttributesAreStructurallyComparable(t *testing.T) {
	t.Parallel()

	a := ParseClasses("text-white font-bold px-1")
	b := ParseClasses("px-1 font-bold text-white")

	assert.True(t, a == b)
	assert.False(t, a.IsZero())
	assert.True(t, Attributes{}.IsZero())
}

func TestDimensionResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		dim       Dimension
		available int
		expected  int
	}{
		{name: "cells", dim: Cells(12), available: 80, expected: 12},
		{name: "percent", dim: Percent(50), available: 80, expected: 40},
		{name: "third floors", dim: Percent(100.0 / 3), available: 80, expected: 26},
		{name: "percent of unknown", dim: Percent(50), available: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.dim.Resolve(tt.available))
		})
	}
}

func TestSerializeIsDeterministic(t *testing.T) {
	t.Parallel()

	a := Attributes{Paint: Paint{
		Bold:          Of(true),
		Color:         Of("white"),
		Strikethrough: Of(true),
		Background:    Of("#1e1e1e"),
	}}

	expected := "color: white; background-color: #1e1e1e; font-weight: bold; text-decoration: line-through;"
	assert.Equal(t, expected, Serialize(a))
	assert.Equal(t, "", Serialize(Attributes{Layout: Layout{Gap: Of(2)}}))
}

func TestParseDeclarationsReadsSerializedPaint(t *testing.T) {
	t.Parallel()

	a := Attributes{Paint: Paint{
		Color:     Of("#ff4800"),
		Italic:    Of(true),
		Underline: Of(true),
		Faint:     Of(true),
		Transform: Of(TransformUppercase),
	}}

	parsed := ParseDeclarations(Serialize(a))

	assert.Equal(t, "#ff4800", parsed.Color.Or(""))
	assert.True(t, parsed.Italic.Or(false))
	assert.True(t, parsed.Underline.Or(false))
	assert.False(t, parsed.Strikethrough.Or(true))
	assert.True(t, parsed.Faint.Or(false))
	assert.Equal(t, TransformUppercase, parsed.Transform.Or(TransformNone))
}

func TestParseClasses(t *testing.T) {
	t.Parallel()

	a := ParseClasses("text-[#169FC1] bg-[#1e1e1e] border border-double border-[#666] p-1 px-2 gap-1 flex justify-between items-center w-1/3 min-h-4 truncate uppercase unknown-class")

	assert.Equal(t, "#169FC1", a.Color.Or(""))
	assert.Equal(t, "#1e1e1e", a.Background.Or(""))
	assert.Equal(t, "#666", a.BorderColor.Or(""))
	assert.True(t, a.Border.Or(false))
	assert.Equal(t, BorderDouble, a.BorderStyle.Or(BorderSingle))
	assert.Equal(t, 2, a.PaddingX.Or(0))
	assert.Equal(t, 1, a.PaddingY.Or(0))
	assert.Equal(t, 1, a.Gap.Or(0))
	assert.Equal(t, DirectionRow, a.Direction.Or(DirectionColumn))
	assert.Equal(t, JustifyBetween, a.Justify.Or(JustifyStart))
	assert.Equal(t, AlignCenter, a.Align.Or(AlignStart))
	assert.Equal(t, 26, a.Width.Or(Dimension{}).Resolve(80))
	assert.Equal(t, 4, a.MinHeight.Or(0))
	assert.Equal(t, text.TruncateEnd, a.Wrap.Or(text.WordWrap))
	assert.Equal(t, TransformUppercase, a.Transform.Or(TransformNone))
}

func TestTransformApply(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "SEGFAULT", TransformUppercase.Apply("segfault"))
	assert.Equal(t, "dark mode", TransformLowercase.Apply("DARK MODE"))
	assert.Equal(t, "Dark Mode", TransformCapitalize.Apply("dark mode"))
	assert.Equal(t, "as is", TransformNone.Apply("as is"))
}

func TestBorderGlyphsDefaultToSingle(t *testing.T) {
	t.Parallel()

	require.Equal(t, "┌", BorderGlyphs("").TopLeft)
	require.Equal(t, "╔", BorderGlyphs(BorderDouble).TopLeft)
	require.Equal(t, "╭", BorderGlyphs(BorderRounded).TopLeft)
	require.Equal(t, "─", BorderGlyphs(BorderRounded).Top)
}

func TestResolveColorMapsNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#666666", string(ResolveColor("gray")))
	assert.Equal(t, "#abcdef", string(ResolveColor("#abcdef")))
}
