package storefront

import (
	"maps"

	"github.com/alexisbeaulieu97/cui/internal/hooks"
	"github.com/alexisbeaulieu97/cui/internal/keyboard"
	"github.com/alexisbeaulieu97/cui/internal/layout"
	"github.com/alexisbeaulieu97/cui/internal/shop"
	"github.com/alexisbeaulieu97/cui/internal/style"
)

var shippingHints = []hint{
	{"esc", "back"},
	{"↑/↓", "addresses"},
	{"enter", "select"},
}

var formHints = []hint{
	{"tab", "next field"},
	{"enter", "save"},
	{"esc", "cancel"},
}

// addressForm is the state of the new address form.
type addressForm struct {
	open   bool
	focus  int
	input  shop.AddressInput
	errors map[string]string
}

// formTarget receives typing while the form is open.
type formTarget struct {
	set    hooks.Setter[addressForm]
	fields []shop.AddressField
}

func (t formTarget) HandleKey(ev *keyboard.KeyEvent) bool {
	if !ev.Printable() && ev.Key != keyboard.KeyBackspace {
		return false
	}
	t.set.Update(func(f addressForm) addressForm {
		key := t.fields[f.focus].Key
		if v, changed := layout.ApplyInputKey(ev, f.input.Get(key)); changed {
			f.input = f.input.Set(key, v)
			if _, ok := f.errors[key]; ok {
				f.errors = maps.Clone(f.errors)
				delete(f.errors, key)
			}
		}
		return f
	})
	return true
}

var shippingDef = layout.Define("shipping")

// shippingPage lets the shopper pick a saved address or add a new one.
func (s *Storefront) shippingPage() layout.Component {
	fields := shop.AddressFields()

	return shippingDef.Render(func(h *hooks.Cursor, ctx layout.Context) []layout.Line {
		selected, setSelected := hooks.UseState(h, 0)
		chosen, setChosen := hooks.UseState(h, "")
		form, setForm := hooks.UseState(h, addressForm{})
		unbind := hooks.UseRef[func()](h, nil)
		addresses := s.useAddresses(h)
		q := h.Runtime().Queries()

		closeForm := func() {
			if unbind.Current != nil {
				unbind.Current()
				unbind.Current = nil
			}
			setForm.Set(addressForm{})
		}

		save := hooks.UseMutation[shop.Address, shop.AddressInput](h, keyAddAddress, s.store.AddAddress,
			hooks.MutationOptions[shop.Address, shop.AddressInput]{
				OnSuccess: func(a shop.Address) {
					closeForm()
					setChosen.Set(a.ID)
					q.Invalidate(keyAddresses)
				},
			})

		bind := func() {
			release := s.keys.PushModalHandlers(
				keyboard.On(func(ev *keyboard.KeyEvent) bool {
					delta := 1
					if ev.Shift {
						delta = -1
					}
					setForm.Update(func(f addressForm) addressForm {
						f.focus = (f.focus + delta + len(fields)) % len(fields)
						return f
					})
					return true
				}, keyboard.KeyTab),
				keyboard.On(func(*keyboard.KeyEvent) bool {
					var submitted addressForm
					setForm.Update(func(f addressForm) addressForm {
						f.errors = f.input.Validate()
						submitted = f
						return f
					})
					if submitted.errors == nil {
						save.Mutate(submitted.input)
					}
					return true
				}, keyboard.KeyEnter),
				keyboard.On(func(*keyboard.KeyEvent) bool {
					closeForm()
					return true
				}, keyboard.KeyEscape),
			)
			s.keys.Focus(formTarget{set: setForm, fields: fields})
			unbind.Current = func() {
				release()
				s.keys.Blur()
			}
		}

		list := addresses.Data
		s.keys.SetRouteHandlers(RouteShipping,
			keyboard.On(func(*keyboard.KeyEvent) bool {
				setSelected.Update(func(i int) int { return min(i+1, len(list)) })
				return true
			}, keyboard.KeyDown, "j"),
			keyboard.On(func(*keyboard.KeyEvent) bool {
				setSelected.Update(func(i int) int { return max(0, i-1) })
				return true
			}, keyboard.KeyUp, "k"),
			keyboard.On(func(*keyboard.KeyEvent) bool {
				if !addresses.HasData {
					return false
				}
				if selected >= len(list) {
					setForm.Set(addressForm{open: true})
					bind()
					return true
				}
				setChosen.Set(list[selected].ID)
				s.log.WithFields(map[string]any{"address": list[selected].ID}).Info("shipping address selected")
				return true
			}, keyboard.KeyEnter),
			keyboard.On(s.goTo(RouteCart), keyboard.KeyEscape),
		)

		// A route change drops the form's key bindings; restore them when
		// the page comes back with the form still open.
		if form.open && s.keys.Focused() == nil {
			bind()
		}

		switch {
		case !addresses.HasData && addresses.Err != nil:
			return s.checkout(RouteShipping, shippingHints, layout.Text("could not load addresses", fg("red")))(ctx)
		case !addresses.HasData:
			return s.checkout(RouteShipping, shippingHints, layout.Text("Loading...", gray))(ctx)
		case form.open:
			var status layout.Node
			switch {
			case save.Loading:
				status = layout.Text("saving...", gray)
			case save.Err != nil:
				status = layout.Text(save.Err.Error(), fg("red"))
			}
			return s.checkout(RouteShipping, formHints, addressFormView(fields, form, ctx.Width), status)(ctx)
		}

		items := make([]layout.Node, 0, len(list)+2)
		for i, a := range list {
			items = append(items, addressCard(a, i == selected, a.ID == chosen))
		}
		items = append(items, layout.Box(cardStyle(selected == len(list)),
			layout.Center(layout.Text("add new address", gray))))

		if chosen != "" {
			for _, a := range list {
				if a.ID == chosen {
					items = append(items, layout.Text("shipping to "+a.Name+"; payment is not available in the console yet", white))
				}
			}
		}

		return s.checkout(RouteShipping, shippingHints, layout.Stack(gap(1), items...))(ctx)
	})
}

func cardStyle(selected bool) style.Attributes {
	st := style.ParseClasses("px-1 border")
	st.BorderColor = style.Of("gray")
	if selected {
		st.BorderColor = style.Of("white")
	}
	return st
}

func addressCard(a shop.Address, selected, chosen bool) layout.Component {
	name := a.Name
	if chosen {
		name += " ✓"
	}
	return layout.Box(cardStyle(selected), layout.Stack(none,
		layout.Text(name, shade(selected)),
		layout.Text(a.Street1, gray),
		layout.Flex(gap(1),
			layout.Text(a.City+",", gray),
			layout.Text(a.Province+",", gray),
			layout.Text(a.Country, gray),
		),
		layout.Text(a.Zip, gray),
	))
}

// addressFormView lays the inputs out in columns, filling each column
// before moving to the next.
func addressFormView(fields []shop.AddressField, form addressForm, width int) layout.Component {
	const columnGap = 2
	columns := max(1, min(3, width/24))
	perColumn := (len(fields) + columns - 1) / columns
	columnWidth := max(10, (width-columnGap*(columns-1))/columns)

	cols := make([]layout.Node, 0, columns)
	for start := 0; start < len(fields); start += perColumn {
		end := min(start+perColumn, len(fields))
		inputs := make([]layout.Node, 0, end-start)
		for i := start; i < end; i++ {
			f := fields[i]
			label := f.Label
			if f.Required {
				label += " *"
			}
			inputs = append(inputs, layout.Input(layout.InputProps{
				Value:   form.input.Get(f.Key),
				Label:   label,
				Error:   form.errors[f.Key],
				Focused: i == form.focus,
			}))
		}
		cols = append(cols, layout.Stack(style.Attributes{Layout: style.Layout{
			Width: style.Of(style.Cells(columnWidth)),
		}}, inputs...))
	}
	return layout.Flex(gap(columnGap), cols...)
}
