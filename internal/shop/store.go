package shop

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/cui/internal/logger"
)

// Store is the data source the storefront fetches through. Implementations
// must be safe for concurrent use; fetches run off the UI goroutine.
type Store interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetCart(ctx context.Context) (Cart, error)
	SetItem(ctx context.Context, variantID string, quantity int) (Cart, error)
	ListAddresses(ctx context.Context) ([]Address, error)
	AddAddress(ctx context.Context, in AddressInput) (Address, error)
}

// MemoryStore keeps one shopper's data in memory with an optional simulated
// network latency per call.
type MemoryStore struct {
	mu        sync.Mutex
	catalog   Catalog
	cart      Cart
	addresses []Address
	latency   time.Duration
	failNext  error
	nextID    int
	log       *logger.Logger
}

// StoreOption configures a MemoryStore.
type StoreOption func(*MemoryStore)

// WithLatency delays every call by d.
func WithLatency(d time.Duration) StoreOption {
	return func(s *MemoryStore) { s.latency = d }
}

// WithAddresses seeds saved addresses.
func WithAddresses(addrs ...Address) StoreOption {
	return func(s *MemoryStore) { s.addresses = append(s.addresses, addrs...) }
}

// WithStoreLogger sets the logger.
func WithStoreLogger(log *logger.Logger) StoreOption {
	return func(s *MemoryStore) { s.log = log }
}

// NewMemoryStore creates a store over catalog with an empty cart.
func NewMemoryStore(catalog Catalog, opts ...StoreOption) *MemoryStore {
	s := &MemoryStore{catalog: catalog}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FailNext makes the next call return err instead of doing its work.
func (s *MemoryStore) FailNext(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = err
}

func (s *MemoryStore) wait(ctx context.Context, op string) error {
	if s.latency > 0 {
		t := time.NewTimer(s.latency)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	s.mu.Lock()
	err := s.failNext
	s.failNext = nil
	s.mu.Unlock()
	if err != nil {
		s.log.WithFields(map[string]any{"op": op}).Warn("store call failed: " + err.Error())
		return err
	}
	return nil
}

// ListProducts returns the catalog.
func (s *MemoryStore) ListProducts(ctx context.Context) ([]Product, error) {
	if err := s.wait(ctx, "products"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.catalog.Products), nil
}

// GetCart returns the current cart.
func (s *MemoryStore) GetCart(ctx context.Context) (Cart, error) {
	if err := s.wait(ctx, "cart"); err != nil {
		return Cart{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(), nil
}

// SetItem sets the quantity of a variant in the cart and returns the
// updated cart. Subscription-only products cannot be added.
func (s *MemoryStore) SetItem(ctx context.Context, variantID string, quantity int) (Cart, error) {
	if err := s.wait(ctx, "set-item"); err != nil {
		return Cart{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, v, ok := FindVariant(s.catalog.Products, variantID)
	if !ok {
		return Cart{}, fmt.Errorf("unknown variant %q", variantID)
	}
	if p.RequiresSubscription() && quantity > 0 {
		return Cart{}, fmt.Errorf("product %q is subscription only", p.Name)
	}

	s.cart = s.cart.WithQuantity(variantID, quantity, v.Price)
	for i := range s.cart.Items {
		if s.cart.Items[i].ID == "" {
			s.cart.Items[i].ID = s.newID("itm")
		}
	}
	s.log.WithFields(map[string]any{"variant": variantID, "quantity": quantity}).Debug("cart item set")
	return s.snapshot(), nil
}

// ListAddresses returns the saved shipping addresses.
func (s *MemoryStore) ListAddresses(ctx context.Context) ([]Address, error) {
	if err := s.wait(ctx, "addresses"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.addresses), nil
}

// AddAddress validates and saves a new address.
func (s *MemoryStore) AddAddress(ctx context.Context, in AddressInput) (Address, error) {
	if err := s.wait(ctx, "add-address"); err != nil {
		return Address{}, err
	}
	if errs := in.Validate(); errs != nil {
		return Address{}, fmt.Errorf("invalid address: %d field(s) failed validation", len(errs))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	addr := in.Address(s.newID("shp"))
	s.addresses = append(s.addresses, addr)
	return addr, nil
}

func (s *MemoryStore) snapshot() Cart {
	return Cart{Items: slices.Clone(s.cart.Items), Subtotal: s.cart.Subtotal}
}

func (s *MemoryStore) newID(prefix string) string {
	s.nextID++
	return prefix + "_" + strconv.Itoa(s.nextID)
}
