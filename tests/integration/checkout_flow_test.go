package integration

import (
	"net/http"
	"strings"
	"testing"
)

func validCheckoutForm() map[string]interface{} {
	return map[string]interface{}{
		"name":    "Анна Смирнова",
		"email":   uniqueEmail("checkout"),
		"phone":   "+7 900 123-45-67",
		"city":    "Москва",
		"address": "ул. Тверская, д. 1, кв. 2",
		"comment": "Позвонить за час",
	}
}

// TestCheckoutPlaceOrder runs the full add-to-cart then checkout flow.
func TestCheckoutPlaceOrder(t *testing.T) {
	skipIfNotRunning(t)

	sid := uniqueSessionID()
	headers := sessionHeader(sid)

	status, _ := httpPostWithHeaders(t, baseURL()+"/api/v1/cart/items",
		map[string]interface{}{"product_id": "guatemala-reserve"}, headers)
	requireStatus(t, status, http.StatusOK)

	status, order := httpPostWithHeaders(t, baseURL()+"/api/v1/checkout", validCheckoutForm(), headers)
	requireStatus(t, status, http.StatusCreated)

	number := extractString(t, order, "data.number")
	if !strings.HasPrefix(number, "RC-") {
		t.Fatalf("expected order number with RC- prefix, got %q", number)
	}
	if got := extractFloat(t, order, "data.item_count"); got != 1 {
		t.Fatalf("expected item_count 1 on order, got %v", got)
	}

	// The cart is cleared after a successful checkout.
	status, cleared := httpGetWithHeaders(t, baseURL()+"/api/v1/cart", headers)
	requireStatus(t, status, http.StatusOK)
	if got := extractFloat(t, cleared, "data.state.item_count"); got != 0 {
		t.Fatalf("expected empty cart after checkout, got item_count %v", got)
	}
}

// TestCheckoutEmptyCart verifies checkout rejects an empty cart.
func TestCheckoutEmptyCart(t *testing.T) {
	skipIfNotRunning(t)

	status, _ := httpPostWithHeaders(t, baseURL()+"/api/v1/checkout", validCheckoutForm(),
		sessionHeader(uniqueSessionID()))
	requireStatus(t, status, http.StatusBadRequest)
}

// TestCheckoutInvalidForm verifies validation failures return 400.
func TestCheckoutInvalidForm(t *testing.T) {
	skipIfNotRunning(t)

	sid := uniqueSessionID()
	headers := sessionHeader(sid)

	status, _ := httpPostWithHeaders(t, baseURL()+"/api/v1/cart/items",
		map[string]interface{}{"product_id": "decaf-reserve"}, headers)
	requireStatus(t, status, http.StatusOK)

	form := validCheckoutForm()
	form["email"] = "not-an-email"
	status, _ = httpPostWithHeaders(t, baseURL()+"/api/v1/checkout", form, headers)
	requireStatus(t, status, http.StatusBadRequest)
}
