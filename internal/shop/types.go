// Package shop is the storefront's data source: the catalog, the cart and
// the shipping addresses of one shopper, behind the Store interface the UI
// fetches through.
package shop

import (
	"fmt"
	"slices"
)

// Subscription modes of a product.
const (
	SubscriptionAllowed  = "allowed"
	SubscriptionRequired = "required"
)

// Variant is one purchasable form of a product. Prices are in cents.
type Variant struct {
	ID    string `yaml:"id" validate:"required"`
	Name  string `yaml:"name" validate:"required"`
	Price int    `yaml:"price" validate:"gt=0"`
}

// Product is a catalog entry.
type Product struct {
	ID           string    `yaml:"id" validate:"required"`
	Name         string    `yaml:"name" validate:"required"`
	Description  string    `yaml:"description"`
	Featured     bool      `yaml:"featured,omitempty"`
	Subscription string    `yaml:"subscription,omitempty" validate:"omitempty,oneof=allowed required"`
	Color        string    `yaml:"color,omitempty" validate:"omitempty,hexcolor"`
	Variants     []Variant `yaml:"variants" validate:"required,min=1,dive"`
}

// RequiresSubscription reports whether the product can only be bought as a
// subscription, which the cart does not support.
func (p Product) RequiresSubscription() bool {
	return p.Subscription == SubscriptionRequired
}

// DefaultVariant returns the variant the storefront sells.
func (p Product) DefaultVariant() Variant {
	if len(p.Variants) == 0 {
		return Variant{}
	}
	return p.Variants[0]
}

// Catalog is the full product list.
type Catalog struct {
	Products []Product `yaml:"products" validate:"required,min=1,dive"`
}

// FindVariant returns the product and variant for a variant ID.
func FindVariant(products []Product, variantID string) (Product, Variant, bool) {
	for _, p := range products {
		for _, v := range p.Variants {
			if v.ID == variantID {
				return p, v, true
			}
		}
	}
	return Product{}, Variant{}, false
}

// CartItem is one line of the cart.
type CartItem struct {
	ID        string
	VariantID string
	Quantity  int
	Subtotal  int
}

// Cart is the shopper's cart. Subtotal is the sum of the item subtotals.
type Cart struct {
	Items    []CartItem
	Subtotal int
}

// Count returns the number of units in the cart.
func (c Cart) Count() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// Item returns the line for a variant.
func (c Cart) Item(variantID string) (CartItem, bool) {
	for _, it := range c.Items {
		if it.VariantID == variantID {
			return it, true
		}
	}
	return CartItem{}, false
}

// WithQuantity returns a copy of c with the variant's line set to qty units
// at price cents each. A quantity of zero or less removes the line. The
// receiver is never modified, so cached carts can be updated safely.
func (c Cart) WithQuantity(variantID string, qty, price int) Cart {
	qty = max(0, qty)
	items := slices.Clone(c.Items)

	idx := slices.IndexFunc(items, func(it CartItem) bool { return it.VariantID == variantID })
	switch {
	case idx >= 0 && qty == 0:
		items = slices.Delete(items, idx, idx+1)
	case idx >= 0:
		items[idx].Quantity = qty
		items[idx].Subtotal = qty * price
	case qty > 0:
		items = append(items, CartItem{VariantID: variantID, Quantity: qty, Subtotal: qty * price})
	}

	out := Cart{Items: items}
	for _, it := range items {
		out.Subtotal += it.Subtotal
	}
	return out
}

// Address is a saved shipping address.
type Address struct {
	ID       string
	Name     string
	Street1  string
	Street2  string
	City     string
	Province string
	Country  string
	Zip      string
	Phone    string
}

// FormatPrice renders cents as dollars, e.g. 2200 -> "$22.00".
func FormatPrice(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
