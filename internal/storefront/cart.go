package storefront

import (
	"fmt"

	"github.com/alexisbeaulieu97/cui/internal/hooks"
	"github.com/alexisbeaulieu97/cui/internal/keyboard"
	"github.com/alexisbeaulieu97/cui/internal/layout"
	"github.com/alexisbeaulieu97/cui/internal/shop"
	"github.com/alexisbeaulieu97/cui/internal/style"
)

var cartHints = []hint{
	{"esc", "back"},
	{"↑/↓", "items"},
	{"+/-", "qty"},
	{"c", "checkout"},
}

var cartDef = layout.Define("cart")

// cartPage lists the cart lines; the selected line can be changed with
// +/- and Enter continues to shipping.
func (s *Storefront) cartPage() layout.Component {
	return cartDef.Render(func(h *hooks.Cursor, ctx layout.Context) []layout.Line {
		selected, setSelected := hooks.UseState(h, 0)
		products := s.useProducts(h).Data
		cart := s.useCart(h).Data
		update := s.useUpdateCartItem(h)
		q := h.Runtime().Queries()

		adjust := func(delta int) keyboard.Handler {
			return func(*keyboard.KeyEvent) bool {
				latest, _ := hooks.QueryDataAs[shop.Cart](q, keyCart)
				if selected >= len(latest.Items) {
					return false
				}
				return s.changeQuantity(q, update, latest.Items[selected].VariantID, delta)
			}
		}

		s.keys.SetRouteHandlers(RouteCart,
			keyboard.On(func(*keyboard.KeyEvent) bool {
				setSelected.Update(func(i int) int { return min(i+1, max(0, len(cart.Items)-1)) })
				return true
			}, keyboard.KeyDown, "j"),
			keyboard.On(func(*keyboard.KeyEvent) bool {
				setSelected.Update(func(i int) int { return max(0, i-1) })
				return true
			}, keyboard.KeyUp, "k"),
			keyboard.On(adjust(1), keyboard.KeyRight, "l", "+"),
			keyboard.On(adjust(-1), keyboard.KeyLeft, "h", "-"),
			keyboard.On(s.goTo(RouteShop), keyboard.KeyEscape),
			keyboard.On(s.goTo(RouteShipping), keyboard.KeyEnter, "c"),
		)

		if len(cart.Items) == 0 {
			return s.checkout(RouteCart, cartHints, layout.Text("Your cart is empty", gray))(ctx)
		}

		// Removing the last line leaves the selection past the end.
		selected = min(selected, len(cart.Items)-1)

		var lines []layout.Node
		for i, it := range cart.Items {
			p, v, ok := shop.FindVariant(products, it.VariantID)
			if !ok {
				continue
			}
			lines = append(lines, cartLine(it, p, v, i == selected))
		}

		return s.checkout(RouteCart, cartHints, layout.Stack(none, lines...))(ctx)
	})
}

func cartLine(it shop.CartItem, p shop.Product, v shop.Variant, selected bool) layout.Component {
	border := style.ParseClasses("px-1 border border-double")
	border.BorderColor = style.Of("gray")
	if selected {
		border.BorderColor = style.Of("white")
	}

	return layout.Box(border, layout.Stack(none,
		layout.Flex(style.ParseClasses("justify-between"),
			layout.Text(p.Name, shade(selected)),
			layout.Flex(gap(1),
				quantity(it.Quantity, selected),
				layout.Text(fmt.Sprintf("%7s", shop.FormatPrice(it.Subtotal)), gray),
			),
		),
		layout.Text(v.Name, gray),
	))
}
