// Package storefront is the console coffee shop built on the layout engine:
// a splash screen, the product list, the cart and the shipping step of
// checkout, with a shared header and footer.
package storefront

import (
	"context"
	"time"

	"github.com/alexisbeaulieu97/cui/internal/hooks"
	"github.com/alexisbeaulieu97/cui/internal/keyboard"
	"github.com/alexisbeaulieu97/cui/internal/layout"
	"github.com/alexisbeaulieu97/cui/internal/logger"
	"github.com/alexisbeaulieu97/cui/internal/router"
	"github.com/alexisbeaulieu97/cui/internal/shop"
	"github.com/alexisbeaulieu97/cui/internal/style"
)

// Routes served by the storefront.
const (
	RouteSplash   = "splash"
	RouteShop     = "shop"
	RouteCart     = "cart"
	RouteShipping = "shipping"
)

// Query and mutation keys.
const (
	keyProducts   = "products"
	keyCart       = "cart"
	keyAddresses  = "addresses"
	keyUpdateCart = "update-cart"
	keyAddAddress = "add-address"
)

// Timers schedules callbacks on the UI goroutine. loop.Loop implements it.
type Timers interface {
	After(d time.Duration, fn func()) (cancel func())
	Every(d time.Duration, fn func()) (cancel func())
}

// Deps are the collaborators the storefront drives.
type Deps struct {
	Store  shop.Store
	Router *router.Router
	Keys   *keyboard.Manager
	Timers Timers
	Log    *logger.Logger
	// Quit is called for the q shortcut. Nil disables it.
	Quit func()
}

// Options tune the presentation.
type Options struct {
	// Height is the number of rows the pages lay out for.
	Height int
	// SplashDuration is the minimum time the splash screen stays up.
	SplashDuration time.Duration
}

// Storefront wires the pages to their data and keys.
type Storefront struct {
	store  shop.Store
	router *router.Router
	keys   *keyboard.Manager
	timers Timers
	log    *logger.Logger
	quit   func()
	opts   Options

	splashShown bool
}

// New creates a Storefront. Call Register before rendering Root.
func New(deps Deps, opts Options) *Storefront {
	if opts.Height <= 0 {
		opts.Height = 24
	}
	return &Storefront{
		store:  deps.Store,
		router: deps.Router,
		keys:   deps.Keys,
		timers: deps.Timers,
		log:    deps.Log,
		quit:   deps.Quit,
		opts:   opts,
	}
}

// Resize sets the number of rows pages lay out for.
func (s *Storefront) Resize(height int) {
	if height > 0 {
		s.opts.Height = height
	}
}

// Register adds the pages to the router and installs the global shortcuts.
func (s *Storefront) Register() {
	s.router.Register(router.Page{Route: RouteSplash, Title: "terminal", View: s.splashPage()})
	s.router.Register(router.Page{Route: RouteShop, Title: "shop", View: s.shopPage()})
	s.router.Register(router.Page{Route: RouteCart, Title: "cart", View: s.cartPage()})
	s.router.Register(router.Page{Route: RouteShipping, Title: "shipping", View: s.shippingPage()})

	s.keys.SetGlobalHandlers(
		keyboard.On(s.goTo(RouteShop), "s"),
		keyboard.On(s.goTo(RouteCart), "c"),
		keyboard.On(func(*keyboard.KeyEvent) bool {
			if s.quit == nil {
				return false
			}
			s.quit()
			return true
		}, "q"),
	)
}

func (s *Storefront) navigate(route string) {
	if err := s.router.Navigate(route); err != nil {
		s.log.Error(err, "navigation failed")
	}
}

func (s *Storefront) goTo(route string) keyboard.Handler {
	return func(*keyboard.KeyEvent) bool {
		s.navigate(route)
		return true
	}
}

var rootDef = layout.Define("storefront")

// Root is the top-level component. It holds the splash screen up until the
// minimum splash time has passed and the catalog and cart have loaded, then
// renders the current page.
func (s *Storefront) Root() layout.Component {
	view := s.router.View()
	splash := s.splashPage()

	return rootDef.Render(func(h *hooks.Cursor, ctx layout.Context) []layout.Line {
		s.splashShown = false

		delayed, setDelayed := hooks.UseState(h, s.opts.SplashDuration <= 0)
		hooks.UseEffect(h, func() func() {
			if delayed {
				return nil
			}
			return s.timers.After(s.opts.SplashDuration, func() {
				setDelayed.Set(true)
				if s.router.Current() == RouteSplash {
					s.navigate(RouteShop)
				}
			})
		})
		products := s.useProducts(h)
		cart := s.useCart(h)

		if err := firstErr(products.Err, cart.Err); err != nil && (!products.HasData || !cart.HasData) {
			return layout.Stack(style.Attributes{},
				layout.Spacer(s.opts.Height/2-1),
				layout.Center(layout.Styled("could not reach the shop", "text-red")),
				layout.Center(layout.Styled(err.Error(), "text-gray truncate")),
			)(ctx)
		}
		if !delayed || !products.HasData || !cart.HasData {
			return splash(ctx)
		}
		return view(ctx)
	})
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Storefront) useProducts(h *hooks.Cursor) hooks.Query[[]shop.Product] {
	return hooks.UseQuery[[]shop.Product](h, keyProducts, s.store.ListProducts)
}

func (s *Storefront) useCart(h *hooks.Cursor) hooks.Query[shop.Cart] {
	return hooks.UseQuery[shop.Cart](h, keyCart, s.store.GetCart)
}

func (s *Storefront) useAddresses(h *hooks.Cursor) hooks.Query[[]shop.Address] {
	return hooks.UseQuery[[]shop.Address](h, keyAddresses, s.store.ListAddresses)
}

// cartUpdate is the variables of the cart mutation.
type cartUpdate struct {
	VariantID string
	Quantity  int
}

// useUpdateCartItem sets a cart line. The cached cart is updated right away;
// the server's cart replaces it on success and a failure refetches it.
func (s *Storefront) useUpdateCartItem(h *hooks.Cursor) hooks.Mutation[shop.Cart, cartUpdate] {
	q := h.Runtime().Queries()

	return hooks.UseMutation(h, keyUpdateCart,
		func(ctx context.Context, u cartUpdate) (shop.Cart, error) {
			return s.store.SetItem(ctx, u.VariantID, u.Quantity)
		},
		hooks.MutationOptions[shop.Cart, cartUpdate]{
			OptimisticUpdate: func(u cartUpdate) {
				cart, ok := hooks.QueryDataAs[shop.Cart](q, keyCart)
				if !ok {
					return
				}
				products, _ := hooks.QueryDataAs[[]shop.Product](q, keyProducts)
				_, variant, ok := shop.FindVariant(products, u.VariantID)
				if !ok {
					return
				}
				q.SetQueryData(keyCart, cart.WithQuantity(u.VariantID, u.Quantity, variant.Price))
			},
			OnSuccess: func(cart shop.Cart) { q.SetQueryData(keyCart, cart) },
			Rollback:  func() { q.Invalidate(keyCart) },
		})
}

// changeQuantity adds delta units of the product's default variant to the
// cart, based on the freshest cached cart.
func (s *Storefront) changeQuantity(q *hooks.QueryClient, m hooks.Mutation[shop.Cart, cartUpdate], variantID string, delta int) bool {
	cart, _ := hooks.QueryDataAs[shop.Cart](q, keyCart)
	current := 0
	if it, ok := cart.Item(variantID); ok {
		current = it.Quantity
	} else if delta < 0 {
		return false
	}
	m.Mutate(cartUpdate{VariantID: variantID, Quantity: max(0, current+delta)})
	return true
}
