package style

import (
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/cui/internal/text"
)

// ParseClasses builds Attributes from a whitespace separated list of
// utility classes such as "text-white px-1 border border-double gap-1".
// Arbitrary values use brackets: "text-[#ff4800]", "bg-[#1e1e1e]".
// Unrecognised classes are ignored.
func ParseClasses(classes string) Attributes {
	var a Attributes
	for _, class := range strings.Fields(classes) {
		applyClass(&a, class)
	}
	return a
}

func applyClass(a *Attributes, class string) {
	switch class {
	case "font-bold":
		a.Bold = Of(true)
		return
	case "font-normal":
		a.Bold = Of(false)
		return
	case "italic":
		a.Italic = Of(true)
		return
	case "not-italic":
		a.Italic = Of(false)
		return
	case "opacity-50":
		a.Faint = Of(true)
		return
	case "underline":
		a.Underline = Of(true)
		return
	case "line-through":
		a.Strikethrough = Of(true)
		return
	case "no-underline":
		a.Underline = Of(false)
		a.Strikethrough = Of(false)
		return
	case "uppercase":
		a.Transform = Of(TransformUppercase)
		return
	case "lowercase":
		a.Transform = Of(TransformLowercase)
		return
	case "capitalize":
		a.Transform = Of(TransformCapitalize)
		return
	case "normal-case":
		a.Transform = Of(TransformNone)
		return
	case "border":
		a.Border = Of(true)
		return
	case "border-0", "border-none":
		a.Border = Of(false)
		return
	case "border-single", "border-solid":
		a.BorderStyle = Of(BorderSingle)
		return
	case "border-double":
		a.BorderStyle = Of(BorderDouble)
		return
	case "border-rounded", "rounded":
		a.BorderStyle = Of(BorderRounded)
		return
	case "flex", "flex-row":
		a.Direction = Of(DirectionRow)
		return
	case "flex-col":
		a.Direction = Of(DirectionColumn)
		return
	case "justify-start":
		a.Justify = Of(JustifyStart)
		return
	case "justify-center":
		a.Justify = Of(JustifyCenter)
		return
	case "justify-end":
		a.Justify = Of(JustifyEnd)
		return
	case "justify-between":
		a.Justify = Of(JustifyBetween)
		return
	case "items-start":
		a.Align = Of(AlignStart)
		return
	case "items-center":
		a.Align = Of(AlignCenter)
		return
	case "items-end":
		a.Align = Of(AlignEnd)
		return
	case "w-full":
		a.Width = Of(Percent(100))
		return
	case "text-wrap":
		a.Wrap = Of(text.WordWrap)
		return
	case "text-nowrap", "whitespace-nowrap":
		a.Wrap = Of(text.NoWrap)
		return
	case "truncate", "truncate-end":
		a.Wrap = Of(text.TruncateEnd)
		return
	case "truncate-start":
		a.Wrap = Of(text.TruncateStart)
		return
	case "truncate-middle":
		a.Wrap = Of(text.TruncateMiddle)
		return
	}

	prefix, value, ok := cutLast(class)
	if !ok {
		return
	}

	switch prefix {
	case "text":
		if color, ok := colorValue(value); ok {
			a.Color = Of(color)
		}
	case "bg":
		if color, ok := colorValue(value); ok {
			a.Background = Of(color)
		}
	case "border":
		if color, ok := colorValue(value); ok {
			a.BorderColor = Of(color)
		}
	case "p":
		if n, ok := intValue(value); ok {
			a.PaddingX = Of(n)
			a.PaddingY = Of(n)
		}
	case "px":
		if n, ok := intValue(value); ok {
			a.PaddingX = Of(n)
		}
	case "py":
		if n, ok := intValue(value); ok {
			a.PaddingY = Of(n)
		}
	case "gap":
		if n, ok := intValue(value); ok {
			a.Gap = Of(n)
		}
	case "min-h":
		if n, ok := intValue(value); ok {
			a.MinHeight = Of(n)
		}
	case "w":
		if d, ok := dimensionValue(value); ok {
			a.Width = Of(d)
		}
	}
}

// cutLast splits "min-h-3" into ("min-h", "3") and "text-[#fff]" into
// ("text", "[#fff]").
func cutLast(class string) (string, string, bool) {
	if i := strings.Index(class, "-["); i > 0 && strings.HasSuffix(class, "]") {
		return class[:i], class[i+1:], true
	}
	i := strings.LastIndex(class, "-")
	if i <= 0 || i == len(class)-1 {
		return "", "", false
	}
	return class[:i], class[i+1:], true
}

func colorValue(value string) (string, bool) {
	if strings.HasPrefix(value, "[") && strings.HasSuffix(value, "]") {
		inner := value[1 : len(value)-1]
		return inner, inner != ""
	}
	if _, ok := namedColors[value]; ok {
		return value, true
	}
	return "", false
}

func intValue(value string) (int, bool) {
	value = strings.TrimSuffix(strings.TrimPrefix(value, "["), "]")
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func dimensionValue(value string) (Dimension, bool) {
	if num, den, ok := strings.Cut(value, "/"); ok {
		n, errN := strconv.Atoi(num)
		d, errD := strconv.Atoi(den)
		if errN != nil || errD != nil || d <= 0 || n < 0 {
			return Dimension{}, false
		}
		return Percent(float64(n) * 100 / float64(d)), true
	}
	n, ok := intValue(value)
	if !ok {
		return Dimension{}, false
	}
	return Cells(n), true
}
