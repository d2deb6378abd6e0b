package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_PriceBelowMinimumRejected(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/products/create",
		`{"name":"Latte","price":500,"category":"coffee"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Giá phải từ 1,000 VNĐ trở lên", body["message"])
}

func TestProduct_UnknownCategoryRejected(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/products/create",
		`{"name":"Latte","price":30000,"category":"smoothie"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Danh mục sản phẩm không hợp lệ", body["message"])
}

// Full soft-delete lifecycle: a deleted product disappears from every read
// and cannot be deleted twice.
func TestProduct_SoftDeleteLifecycle(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/products/create",
		`{"name":"Latte","price":30000,"category":"coffee"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, true, data["isActive"])
	// No image supplied: the placeholder is filled in.
	assert.NotEmpty(t, data["image"])
	id := data["id"].(string)

	resp = doJSON(t, app, http.MethodDelete, "/api/products/delete/"+id, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	deleted := body["data"].(map[string]interface{})
	assert.Equal(t, id, deleted["id"])
	assert.Equal(t, "Latte", deleted["name"])

	// Invisible to the list.
	resp = doJSON(t, app, http.MethodGet, "/api/products/all", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Empty(t, body["data"])

	// Invisible to direct reads.
	resp = doJSON(t, app, http.MethodGet, "/api/products/"+id, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Not repeatable.
	resp = doJSON(t, app, http.MethodDelete, "/api/products/delete/"+id, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// A soft-deleted product frees its name for a new active product.
func TestProduct_NameReusableAfterSoftDelete(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/products/create",
		`{"name":"Latte","price":30000,"category":"coffee"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decodeBody(t, resp)["data"].(map[string]interface{})["id"].(string)

	// Active duplicate is rejected.
	resp = doJSON(t, app, http.MethodPost, "/api/products/create",
		`{"name":"Latte","price":35000,"category":"coffee"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/products/delete/"+id, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/products/create",
		`{"name":"Latte","price":35000,"category":"coffee"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

func TestProduct_ListByCategory(t *testing.T) {
	app := newTestApp(t)

	for _, payload := range []string{
		`{"name":"Latte","price":30000,"category":"coffee"}`,
		`{"name":"Cacao nóng","price":25000,"category":"cacao"}`,
	} {
		resp := doJSON(t, app, http.MethodPost, "/api/products/create", payload)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doJSON(t, app, http.MethodGet, "/api/products/category/coffee", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	products := body["data"].([]interface{})
	require.Len(t, products, 1)
	assert.Equal(t, "Latte", products[0].(map[string]interface{})["name"])
}

// Update without an image keeps the stored one.
func TestProduct_UpdateKeepsImageWhenOmitted(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/products/create",
		`{"name":"Latte","price":30000,"category":"coffee","image":"https://cdn.example.com/latte.jpg"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decodeBody(t, resp)["data"].(map[string]interface{})["id"].(string)

	resp = doJSON(t, app, http.MethodPut, "/api/products/update/"+id,
		`{"name":"Latte","price":32000,"category":"coffee"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(32000), data["price"])
	assert.Equal(t, "https://cdn.example.com/latte.jpg", data["image"])
}
