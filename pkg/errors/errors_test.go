package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("cui.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "cui.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "cui.yaml:12")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("products[1].variants", "at least one variant required", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "products[1].variants", validationErr.Field)
	require.Contains(t, validationErr.Message, "at least one variant")
}

func TestContractErrorNamesComponent(t *testing.T) {
	t.Parallel()

	err := NewContractError("Box", "Box can only have one child")

	require.Equal(t, "contract violation [Box]: Box can only have one child", err.Error())
	require.Equal(t, "contract violation: bad", NewContractError("", "bad").Error())
}

func TestFetchErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("connection refused")
	err := NewFetchError("cart", underlying)

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	require.Equal(t, "cart", fetchErr.Key)
	require.True(t, stdErrors.Is(err, underlying))
}

func TestRouteErrorIncludesRoute(t *testing.T) {
	t.Parallel()

	err := NewRouteError("account", "page not implemented")

	var routeErr *RouteError
	require.ErrorAs(t, err, &routeErr)
	require.Equal(t, "account", routeErr.Route)
	require.Contains(t, err.Error(), "page not implemented")
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var fetchErr *FetchError
	var contractErr *ContractError

	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, fetchErr.Error())
	require.Nil(t, fetchErr.Unwrap())
	require.Empty(t, contractErr.Error())
}
