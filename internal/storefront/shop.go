package storefront

import (
	"github.com/alexisbeaulieu97/cui/internal/hooks"
	"github.com/alexisbeaulieu97/cui/internal/keyboard"
	"github.com/alexisbeaulieu97/cui/internal/layout"
	"github.com/alexisbeaulieu97/cui/internal/shop"
	"github.com/alexisbeaulieu97/cui/internal/style"
)

const listGap = 2

var shopHints = []hint{
	{"↑/↓", "products"},
	{"+/-", "qty"},
	{"c", "cart"},
	{"q", "quit"},
}

var shopDef = layout.Define("shop")

func highlight(p shop.Product) string {
	if p.Color != "" {
		return p.Color
	}
	return defaultHighlight
}

// shopPage lists featured products and originals on the left and the
// selected product on the right.
func (s *Storefront) shopPage() layout.Component {
	return shopDef.Render(func(h *hooks.Cursor, ctx layout.Context) []layout.Line {
		selected, setSelected := hooks.UseState(h, 0)
		products := s.useProducts(h).Data
		cart := s.useCart(h).Data
		update := s.useUpdateCartItem(h)
		q := h.Runtime().Queries()

		current := func() (shop.Product, bool) {
			if selected < 0 || selected >= len(products) {
				return shop.Product{}, false
			}
			return products[selected], true
		}
		adjust := func(delta int) keyboard.Handler {
			return func(*keyboard.KeyEvent) bool {
				p, ok := current()
				if !ok || p.RequiresSubscription() {
					return false
				}
				return s.changeQuantity(q, update, p.DefaultVariant().ID, delta)
			}
		}

		s.keys.SetRouteHandlers(RouteShop,
			keyboard.On(func(*keyboard.KeyEvent) bool {
				setSelected.Update(func(i int) int { return min(i+1, max(0, len(products)-1)) })
				return true
			}, keyboard.KeyDown, "j"),
			keyboard.On(func(*keyboard.KeyEvent) bool {
				setSelected.Update(func(i int) int { return max(0, i-1) })
				return true
			}, keyboard.KeyUp, "k"),
			keyboard.On(adjust(1), keyboard.KeyRight, "l", "+"),
			keyboard.On(adjust(-1), keyboard.KeyLeft, "h", "-"),
			keyboard.On(s.goTo(RouteCart), keyboard.KeyEnter),
		)

		if len(products) == 0 {
			return s.page(shopHints, layout.Text("the shop is empty", gray))(ctx)
		}
		product, _ := current()
		accent := highlight(product)

		third := ctx.Width / 3
		listWidth := third
		detailsWidth := max(10, 2*third-listGap)

		var featured, originals []layout.Node
		featured = append(featured, layout.Text("~ featured ~", white))
		originals = append(originals, layout.Text("~ originals ~", white))
		for i, p := range products {
			item := productItem(p, i == selected, accent)
			if p.Featured {
				featured = append(featured, item)
			} else {
				originals = append(originals, item)
			}
		}

		list := layout.Stack(style.Attributes{Layout: style.Layout{Width: style.Of(style.Cells(listWidth))}},
			layout.Stack(none, featured...),
			layout.Break(),
			layout.Stack(none, originals...),
		)

		return s.page(shopHints, layout.Flex(gap(listGap),
			list,
			productDetails(product, cart, detailsWidth, accent),
		))(ctx)
	})
}

func productItem(p shop.Product, selected bool, accent string) layout.Component {
	box := style.Attributes{Layout: style.Layout{PaddingX: style.Of(2)}}
	text := gray
	if selected {
		box.Background = style.Of(accent)
		text = white
	}
	return layout.Box(box, layout.Text(p.Name, text))
}

func productDetails(p shop.Product, cart shop.Cart, width int, accent string) layout.Component {
	variant := p.DefaultVariant()

	var action layout.Node
	if p.RequiresSubscription() {
		action = layout.Flex(gap(1),
			layout.Box(style.ParseClasses("px-5 text-white bg-[#FF4800]"), "subscribe"),
			layout.Text("enter", gray),
		)
	} else {
		item, _ := cart.Item(variant.ID)
		action = quantity(item.Quantity, true)
	}

	return layout.Box(style.Attributes{Layout: style.Layout{
		PaddingX: style.Of(1),
		Width:    style.Of(style.Cells(width)),
	}}, layout.Stack(none,
		layout.Text(p.Name, white),
		layout.Stack(gap(1),
			layout.Text(variant.Name, gray),
			layout.Text(shop.FormatPrice(variant.Price), fg(accent)),
			layout.Text(p.Description, gray),
			action,
		),
	))
}
