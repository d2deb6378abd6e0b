package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTransaction_CreateAndList(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/transactions/add",
		`{"type":"income","category":"Bán hàng","amount":150000,"description":"ca sáng","date":"2026-08-01"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "income", data["type"])
	assert.Equal(t, float64(150000), data["amount"])

	resp = doJSON(t, app, http.MethodGet, "/api/transactions/all", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Len(t, body["data"], 1)
}

func TestTransaction_CreateRejectsBadType(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/transactions/add",
		`{"type":"transfer","category":"Khác","amount":1000,"date":"2026-08-01"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Thiếu thông tin bắt buộc", body["message"])
}

// An explicit zero amount is a valid ledger entry; only an absent amount is
// rejected.
func TestTransaction_ZeroAmountAccepted(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/transactions/add",
		`{"type":"expense","category":"Khác","amount":0,"date":"2026-08-01"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/transactions/add",
		`{"type":"expense","category":"Khác","date":"2026-08-01"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

// Malformed ids and missing documents are different failures.
func TestTransaction_DeleteInvalidVsUnknownID(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodDelete, "/api/transactions/not-an-id", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "ID không hợp lệ", body["message"])

	resp = doJSON(t, app, http.MethodDelete, "/api/transactions/"+primitive.NewObjectID().Hex(), "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, "Không tìm thấy giao dịch", body["message"])
}

func TestTransaction_DeleteReturnsRemovedEntry(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/transactions/add",
		`{"type":"expense","category":"Nguyên liệu","amount":80000,"date":"2026-08-02"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := decodeBody(t, resp)["data"].(map[string]interface{})["id"].(string)

	resp = doJSON(t, app, http.MethodDelete, "/api/transactions/"+id, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Xóa giao dịch thành công!", body["message"])
	deleted := body["deletedTransaction"].(map[string]interface{})
	assert.Equal(t, "Nguyên liệu", deleted["category"])
}

func TestTransaction_ReportDownload(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/transactions/add",
		`{"type":"income","category":"Bán hàng","amount":150000,"date":"2026-08-01"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/transactions/report?from=2026-08-01&to=2026-08-31", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "thuchi_2026-08-01_2026-08-31.pdf")
	resp.Body.Close()

	// Missing or inverted range is a client error.
	resp = doJSON(t, app, http.MethodGet, "/api/transactions/report?from=2026-08-31&to=2026-08-01", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/transactions/report", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
