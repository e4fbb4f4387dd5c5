package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

func addToCart(t *testing.T, r *gin.Engine, token string, itemName, size string) {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/api/v1/cart/items", token, gin.H{
		"menu_item_id": menuItemID(t, itemName),
		"size":         size,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func cartItems(t *testing.T, r *gin.Engine, token string) []interface{} {
	t.Helper()
	w := doRequest(t, r, http.MethodGet, "/api/v1/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	items, ok := decodeBody(t, w)["items"].([]interface{})
	require.True(t, ok)
	return items
}

func TestAddItem_SizeAdjustsPrice(t *testing.T) {
	r := setupTest(t)
	token := login(t, r, "user@gmail.com")

	w := doRequest(t, r, http.MethodPost, "/api/v1/cart/items", token, gin.H{
		"menu_item_id": menuItemID(t, "Classic Cheese"), // 8.99 base
		"size":         "M",
		"note":         "no onions",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.InDelta(t, 8.99*1.2, body["price"].(float64), delta)
	assert.Equal(t, "M", body["size"])
	assert.Equal(t, "no onions", body["note"])
	assert.EqualValues(t, 1, body["quantity"])
}

func TestAddItem_RepeatedAddsCreateSeparateLines(t *testing.T) {
	r := setupTest(t)
	token := login(t, r, "user@gmail.com")

	addToCart(t, r, token, "Classic Cheese", "S")
	addToCart(t, r, token, "Classic Cheese", "S")

	assert.Len(t, cartItems(t, r, token), 2)
}

func TestAddItem_InvalidSize(t *testing.T) {
	r := setupTest(t)
	token := login(t, r, "user@gmail.com")

	w := doRequest(t, r, http.MethodPost, "/api/v1/cart/items", token, gin.H{
		"menu_item_id": menuItemID(t, "Classic Cheese"),
		"size":         "XL",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddItem_CrossRestaurantNeedsConfirmation(t *testing.T) {
	r := setupTest(t)
	token := login(t, r, "user@gmail.com")

	addToCart(t, r, token, "Classic Cheese", "S") // Burger Kingpin

	// Declined switch leaves the cart untouched.
	w := doRequest(t, r, http.MethodPost, "/api/v1/cart/items", token, gin.H{
		"menu_item_id": menuItemID(t, "Salmon Roll"), // Sushi Master
		"size":         "S",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["requires_confirmation"])

	items := cartItems(t, r, token)
	require.Len(t, items, 1)
	assert.Equal(t, "Classic Cheese", items[0].(map[string]interface{})["name"])

	// Confirmed switch replaces the cart.
	w = doRequest(t, r, http.MethodPost, "/api/v1/cart/items", token, gin.H{
		"menu_item_id": menuItemID(t, "Salmon Roll"),
		"size":         "S",
		"replace_cart": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	items = cartItems(t, r, token)
	require.Len(t, items, 1)
	assert.Equal(t, "Salmon Roll", items[0].(map[string]interface{})["name"])
}

func TestRemoveItem_ByPosition(t *testing.T) {
	r := setupTest(t)
	token := login(t, r, "user@gmail.com")

	addToCart(t, r, token, "Classic Cheese", "S")
	addToCart(t, r, token, "Bacon Deluxe", "S")

	w := doRequest(t, r, http.MethodDelete, "/api/v1/cart/items/0", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	items := cartItems(t, r, token)
	require.Len(t, items, 1)
	assert.Equal(t, "Bacon Deluxe", items[0].(map[string]interface{})["name"])
}

func TestRemoveItem_OutOfRange(t *testing.T) {
	r := setupTest(t)
	token := login(t, r, "user@gmail.com")

	addToCart(t, r, token, "Classic Cheese", "S")

	for _, index := range []string{"1", "-1", "abc"} {
		w := doRequest(t, r, http.MethodDelete, "/api/v1/cart/items/"+index, token, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, "index %s", index)
	}
	assert.Len(t, cartItems(t, r, token), 1)
}

func TestGetCart_PromoPreview(t *testing.T) {
	r := setupTest(t)
	token := login(t, r, "user@gmail.com")

	addToCart(t, r, token, "Classic Cheese", "M") // 10.788, fee 2.99

	// Codes are case-normalized before matching.
	w := doRequest(t, r, http.MethodGet, "/api/v1/cart?promo=welcome10", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["promo_valid"])

	totals := body["totals"].(map[string]interface{})
	assert.InDelta(t, 10.788, totals["subtotal"].(float64), delta)
	assert.InDelta(t, 2.99, totals["delivery_fee"].(float64), delta)
	assert.InDelta(t, 13.778, totals["total_amount"].(float64), delta)
	assert.InDelta(t, 1.3778, totals["discount_amount"].(float64), delta)
	assert.InDelta(t, 12.4002, totals["final_amount"].(float64), delta)
}

func TestGetCart_PromoPreviewIsIdempotent(t *testing.T) {
	r := setupTest(t)
	token := login(t, r, "user@gmail.com")
	addToCart(t, r, token, "Pepperoni", "L")

	first := doRequest(t, r, http.MethodGet, "/api/v1/cart?promo=SAVE20", token, nil)
	second := doRequest(t, r, http.MethodGet, "/api/v1/cart?promo=SAVE20", token, nil)
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestGetCart_UnknownPromoYieldsNoDiscount(t *testing.T) {
	r := setupTest(t)
	token := login(t, r, "user@gmail.com")
	addToCart(t, r, token, "Salmon Roll", "S")

	w := doRequest(t, r, http.MethodGet, "/api/v1/cart?promo=NOPE99", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["promo_valid"])

	totals := body["totals"].(map[string]interface{})
	assert.Zero(t, totals["discount_amount"].(float64))
	assert.InDelta(t, totals["total_amount"].(float64), totals["final_amount"].(float64), delta)
}

func TestClearCart(t *testing.T) {
	r := setupTest(t)
	token := login(t, r, "user@gmail.com")

	addToCart(t, r, token, "Classic Cheese", "S")
	addToCart(t, r, token, "Bacon Deluxe", "L")

	w := doRequest(t, r, http.MethodDelete, "/api/v1/cart", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cartItems(t, r, token))
}

func TestCartsAreScopedPerUser(t *testing.T) {
	r := setupTest(t)
	johnToken := login(t, r, "user@gmail.com")

	signup := doRequest(t, r, http.MethodPost, "/api/v1/auth/signup", "", gin.H{
		"name":     "Second Customer",
		"email":    "second@example.com",
		"password": "pw",
	})
	require.Equal(t, http.StatusCreated, signup.Code)
	otherToken := decodeBody(t, signup)["token"].(string)

	addToCart(t, r, johnToken, "Classic Cheese", "S")

	assert.Len(t, cartItems(t, r, johnToken), 1)
	assert.Empty(t, cartItems(t, r, otherToken))
}
