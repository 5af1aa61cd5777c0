package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseThenCompleteOverHTTP(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginToken(t, app, "BobCrypto")

	resp := doJSON(t, app, http.MethodPost, "/api/products/product-1/purchase", token, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	order := body["data"].(map[string]interface{})
	assert.Equal(t, "escrow", order["status"])
	assert.Equal(t, float64(120), order["amount"])
	orderID := order["id"].(string)

	// The product is now pending.
	resp = doJSON(t, app, http.MethodGet, "/api/products/product-1", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	product := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, "pending", product["status"])

	// Release the escrow.
	resp = doJSON(t, app, http.MethodPost, "/api/orders/"+orderID+"/complete", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	completed := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, "completed", completed["status"])

	resp = doJSON(t, app, http.MethodGet, "/api/products/product-1", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	product = decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, "sold", product["status"])
}

func TestPurchasePendingProductConflicts(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginToken(t, app, "BobCrypto")

	resp := doJSON(t, app, http.MethodPost, "/api/products/product-1/purchase", token, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/products/product-1/purchase", token, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCancelRestoresListingOverHTTP(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginToken(t, app, "CharlieNFT")

	resp := doJSON(t, app, http.MethodPost, "/api/products/product-5/purchase", token, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	order := decodeBody(t, resp)["data"].(map[string]interface{})
	orderID := order["id"].(string)

	resp = doJSON(t, app, http.MethodPost, "/api/orders/"+orderID+"/cancel", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/products/product-5", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	product := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, "active", product["status"])
}

func TestGetMyOrders(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginToken(t, app, "BobCrypto")

	resp := doJSON(t, app, http.MethodGet, "/api/orders/", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	data := body["data"].([]interface{})
	assert.Len(t, data, 2) // seller on order-1, buyer on order-2
}

func TestCompleteUnknownOrderOverHTTP(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginToken(t, app, "BobCrypto")

	resp := doJSON(t, app, http.MethodPost, "/api/orders/no-such-order/complete", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPurchaseRequiresAuthOverHTTP(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/products/product-1/purchase", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
