// Package response writes the JSON bodies the storefront API speaks.
//
// Success payloads are written bare (the product list is a plain array,
// order creation returns {order_id, status, total}); errors use the
// {"detail": "..."} body existing storefront clients already parse.
package response

import (
	"encoding/json"
	"net/http"
)

type errorBody struct {
	Detail string `json:"detail"`
}

// JSON writes v as the response body with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// OK writes v with a 200 status.
func OK(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusOK, v)
}

// Error writes {"detail": detail} with the given status code.
func Error(w http.ResponseWriter, status int, detail string) {
	JSON(w, status, errorBody{Detail: detail})
}

// BadRequest writes a 400 with the given detail message.
func BadRequest(w http.ResponseWriter, detail string) {
	Error(w, http.StatusBadRequest, detail)
}

// NotFound writes a 404 with the given detail message.
func NotFound(w http.ResponseWriter, detail string) {
	Error(w, http.StatusNotFound, detail)
}
