package shop

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cuierrors "github.com/alexisbeaulieu97/cui/pkg/errors"
)

func TestFormatPrice(t *testing.T) {
	tests := map[int]string{
		0:     "$0.00",
		5:     "$0.05",
		2200:  "$22.00",
		12345: "$123.45",
		-250:  "-$2.50",
	}
	for cents, want := range tests {
		assert.Equal(t, want, FormatPrice(cents))
	}
}

func TestDefaultCatalogIsValid(t *testing.T) {
	c := DefaultCatalog()
	require.NotEmpty(t, c.Products)

	p, v, ok := FindVariant(c.Products, "var_darkmode_12oz")
	require.True(t, ok)
	assert.Equal(t, "dark mode", p.Name)
	assert.Equal(t, 2200, v.Price)

	_, _, ok = FindVariant(c.Products, "missing")
	assert.False(t, ok)
}

func TestParseCatalogErrors(t *testing.T) {
	t.Run("syntax error reports line", func(t *testing.T) {
		_, err := ParseCatalog("bad.yaml", []byte("products:\n  - id: a\n    name: [unterminated\n"))
		var perr *cuierrors.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, "bad.yaml", perr.Path)
		assert.Positive(t, perr.Line)
	})

	t.Run("missing variants", func(t *testing.T) {
		_, err := ParseCatalog("c.yaml", []byte("products:\n  - id: a\n    name: a\n"))
		var verr *cuierrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Field, "variants")
	})

	t.Run("bad subscription mode", func(t *testing.T) {
		data := "products:\n  - id: a\n    name: a\n    subscription: weekly\n    variants:\n      - {id: v, name: v, price: 1}\n"
		_, err := ParseCatalog("c.yaml", []byte(data))
		var verr *cuierrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Field, "subscription")
	})

	t.Run("duplicate variant ids", func(t *testing.T) {
		data := "products:\n" +
			"  - id: a\n    name: a\n    variants:\n      - {id: v, name: v, price: 1}\n" +
			"  - id: b\n    name: b\n    variants:\n      - {id: v, name: v, price: 1}\n"
		_, err := ParseCatalog("c.yaml", []byte(data))
		var verr *cuierrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "products[1].variants[0].id", verr.Field)
	})
}

func TestLoadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := "products:\n  - id: a\n    name: cold brew\n    variants:\n      - {id: v1, name: 32oz, price: 1800}\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, c.Products, 1)
	assert.Equal(t, "cold brew", c.Products[0].Name)

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	var perr *cuierrors.ParseError
	require.ErrorAs(t, err, &perr)

	c, err = LoadCatalog("")
	require.NoError(t, err)
	assert.Equal(t, DefaultCatalog(), c)
}

func TestCartWithQuantity(t *testing.T) {
	var c Cart
	c = c.WithQuantity("a", 2, 1000)
	c = c.WithQuantity("b", 1, 500)
	assert.Equal(t, 2500, c.Subtotal)
	assert.Equal(t, 3, c.Count())

	before := c
	updated := c.WithQuantity("a", 5, 1000)
	assert.Equal(t, 5500, updated.Subtotal)
	assert.Equal(t, 2, before.Items[0].Quantity, "receiver must not change")

	removed := updated.WithQuantity("a", 0, 1000)
	require.Len(t, removed.Items, 1)
	assert.Equal(t, "b", removed.Items[0].VariantID)
	assert.Equal(t, 500, removed.Subtotal)

	same := removed.WithQuantity("zzz", -3, 100)
	assert.Equal(t, removed, same)
}

func TestMemoryStoreCart(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(DefaultCatalog())

	cart, err := s.GetCart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	cart, err = s.SetItem(ctx, "var_segfault_12oz", 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.NotEmpty(t, cart.Items[0].ID)
	assert.Equal(t, 4400, cart.Subtotal)

	_, err = s.SetItem(ctx, "nope", 1)
	require.Error(t, err)

	_, err = s.SetItem(ctx, "var_artisan_12oz", 1)
	require.ErrorContains(t, err, "subscription")

	cart, err = s.SetItem(ctx, "var_segfault_12oz", 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestMemoryStoreFailNext(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(DefaultCatalog())
	boom := errors.New("network down")
	s.FailNext(boom)

	_, err := s.SetItem(ctx, "var_segfault_12oz", 1)
	require.ErrorIs(t, err, boom)

	cart, err := s.GetCart(ctx)
	require.NoError(t, err, "failure applies to one call only")
	assert.Empty(t, cart.Items)
}

func TestMemoryStoreLatencyHonoursContext(t *testing.T) {
	s := NewMemoryStore(DefaultCatalog(), WithLatency(time.Hour))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.ListProducts(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestAddressValidation(t *testing.T) {
	var in AddressInput
	errs := in.Validate()
	assert.Equal(t, "name is required", errs["name"])
	assert.Equal(t, "street 1 is required", errs["street1"])
	assert.Equal(t, "postal code is required", errs["zip"])
	assert.NotContains(t, errs, "street2")
	assert.NotContains(t, errs, "phone")

	in = AddressInput{Name: "Ada", Street1: "1 Loop Rd", City: "Austin", Province: "TX", Country: "US", Zip: "7870"}
	errs = in.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, zipMessage, errs["zip"])

	in.Zip = "78701-1234"
	assert.Nil(t, in.Validate())
}

func TestAddressFieldsAndAccessors(t *testing.T) {
	fields := AddressFields()
	require.Len(t, fields, 8)
	assert.Equal(t, AddressField{Key: "name", Label: "name", Required: true}, fields[0])
	assert.Equal(t, AddressField{Key: "street2", Label: "street 2"}, fields[2])
	assert.Equal(t, "postal code", fields[7].Label)

	in := AddressInput{}.Set("city", "Berlin").Set("bogus", "x")
	assert.Equal(t, "Berlin", in.Get("city"))
	assert.Empty(t, in.Get("bogus"))
}

func TestMemoryStoreAddresses(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(DefaultCatalog(), WithAddresses(Address{ID: "shp_seed", Name: "Home"}))

	_, err := s.AddAddress(ctx, AddressInput{Name: "x"})
	require.Error(t, err)

	addr, err := s.AddAddress(ctx, AddressInput{Name: "Ada", Street1: "1 Loop Rd", City: "Austin", Province: "TX", Country: "US", Zip: "78701"})
	require.NoError(t, err)
	assert.NotEmpty(t, addr.ID)

	list, err := s.ListAddresses(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ada", list[1].Name)
}
