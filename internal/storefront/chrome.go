package storefront

import (
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/cui/internal/hooks"
	"github.com/alexisbeaulieu97/cui/internal/layout"
	"github.com/alexisbeaulieu97/cui/internal/shop"
	"github.com/alexisbeaulieu97/cui/internal/style"
)

const (
	headerRows = 1
	footerRows = 3
	chromeGap  = 1
)

// Default accent used when a product has no colour of its own.
const defaultHighlight = "#FF5C00"

var (
	white = fg("white")
	gray  = fg("gray")
	none  = style.Attributes{}
)

func fg(color string) style.Attributes {
	return style.Attributes{Paint: style.Paint{Color: style.Of(color)}}
}

func gap(n int) style.Attributes {
	return style.Attributes{Layout: style.Layout{Gap: style.Of(n)}}
}

func shade(selected bool) style.Attributes {
	if selected {
		return white
	}
	return gray
}

// hint is one key hint of the footer.
type hint struct {
	key  string
	text string
}

var headerDef = layout.Define("header")

// header shows the shop tabs on the left and the cart summary on the right.
func (s *Storefront) header() layout.Component {
	return headerDef.Render(func(h *hooks.Cursor, ctx layout.Context) []layout.Line {
		cart := s.useCart(h).Data
		route := s.router.Current()

		tab := func(key, label, target string) layout.Component {
			return layout.Flex(gap(1),
				layout.Text(key, white),
				layout.Text(label, shade(route == target)),
			)
		}

		return layout.Box(style.ParseClasses("px-2 bg-[#1e1e1e]"),
			layout.Flex(style.ParseClasses("justify-between gap-1"),
				layout.Flex(gap(5),
					layout.Text("terminal", white),
					tab("s", "shop", RouteShop),
				),
				layout.Flex(gap(1),
					tab("c", "cart", RouteCart),
					layout.Text(shop.FormatPrice(cart.Subtotal), white),
					layout.Text("["+strconv.Itoa(cart.Count())+"]", gray),
				),
			),
		)(ctx)
	})
}

// footer shows the shipping note, a rule and the key hints of the page.
func footer(hints []hint) layout.Component {
	parts := make([]layout.Node, len(hints))
	for i, h := range hints {
		parts[i] = layout.Flex(gap(1), layout.Text(h.key, white), layout.Text(h.text, gray))
	}

	return func(ctx layout.Context) []layout.Line {
		rule := layout.Text(strings.Repeat("─", max(1, ctx.Width)), fg("#666"))
		return layout.Stack(none,
			layout.Center(layout.Text("free shipping on US orders over $40", gray)),
			rule,
			layout.Center(layout.Flex(gap(3), parts...)),
		)(ctx)
	}
}

// page lays body out between the header and the footer, padding the body
// so the footer stays at the bottom of the screen.
func (s *Storefront) page(hints []hint, body layout.Node) layout.Component {
	bodyRows := max(0, s.opts.Height-headerRows-footerRows-2*chromeGap)
	return layout.Stack(gap(chromeGap),
		s.header(),
		layout.Stack(style.Attributes{Layout: style.Layout{MinHeight: style.Of(bodyRows)}}, body),
		footer(hints),
	)
}

var checkoutSteps = []string{"cart", "shipping", "payment", "confirmation"}

// breadcrumbs renders the checkout steps with the current one highlighted.
func breadcrumbs(current string) layout.Component {
	var parts []layout.Node
	for i, step := range checkoutSteps {
		parts = append(parts, layout.Text(step, shade(step == current)))
		if i < len(checkoutSteps)-1 {
			parts = append(parts, layout.Text("/", gray))
		}
	}
	return layout.Flex(gap(1), parts...)
}

// checkout is page with the checkout breadcrumbs above the content.
func (s *Storefront) checkout(current string, hints []hint, children ...layout.Node) layout.Component {
	body := append([]layout.Node{breadcrumbs(current)}, children...)
	return s.page(hints, layout.Stack(gap(1), body...))
}

// quantity renders "- n +" for a cart line; the markers are hidden when
// the line is not selected.
func quantity(n int, showMarkers bool) layout.Component {
	minus, plus := "-", "+"
	if !showMarkers {
		minus, plus = " ", " "
	}
	return layout.Flex(gap(1),
		layout.Text(minus, gray),
		layout.Text(strconv.Itoa(n), white),
		layout.Text(plus, gray),
	)
}
