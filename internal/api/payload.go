package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Kind says where a request carries its JSON payload. It is fixed when a
// route is registered, so handlers never branch on the HTTP method.
type Kind uint8

const (
	// KindQuery reads the payload from the "payload" query parameter.
	KindQuery Kind = iota + 1
	// KindBody reads the payload from the request body.
	KindBody
)

// QueryParam is the query parameter that carries a KindQuery payload.
const QueryParam = "payload"

// MaxBodyBytes bounds a KindBody payload.
const MaxBodyBytes = 1 << 20

func (k Kind) String() string {
	switch k {
	case KindQuery:
		return "query"
	case KindBody:
		return "body"
	default:
		return "unknown"
	}
}

// DecodeError is a payload rejection with the status it answers with.
type DecodeError struct {
	Status  int
	Message string
}

func (e *DecodeError) Error() string {
	return e.Message
}

// Decode reads a T from r according to kind.
func Decode[T any](kind Kind, r *http.Request) (T, error) {
	var v T
	switch kind {
	case KindQuery:
		if !r.URL.Query().Has(QueryParam) {
			return v, &DecodeError{
				Status:  http.StatusBadRequest,
				Message: "Failed to deserialize query string: missing field `payload`",
			}
		}
		if err := json.Unmarshal([]byte(r.URL.Query().Get(QueryParam)), &v); err != nil {
			return v, &DecodeError{
				Status:  http.StatusUnprocessableEntity,
				Message: fmt.Sprintf("Failed to deserialize the JSON payload: %v", err),
			}
		}
		return v, nil
	case KindBody:
		body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes+1))
		if err != nil || len(body) == 0 {
			return v, &DecodeError{Status: http.StatusBadRequest, Message: "No data received"}
		}
		if len(body) > MaxBodyBytes {
			return v, &DecodeError{Status: http.StatusRequestEntityTooLarge, Message: "Payload too large"}
		}
		if err := json.Unmarshal(body, &v); err != nil {
			return v, &DecodeError{
				Status:  http.StatusBadRequest,
				Message: fmt.Sprintf("Failed to parse the request body as JSON: %v", err),
			}
		}
		return v, nil
	default:
		return v, &DecodeError{Status: http.StatusInternalServerError, Message: "Unknown error"}
	}
}

// Handle adapts fn into a handler that decodes its input per kind and
// writes its result as JSON.
func Handle[Req, Res any](kind Kind, fn func(Req) Res) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := Decode[Req](kind, r)
		if err != nil {
			var decodeErr *DecodeError
			if errors.As(err, &decodeErr) {
				http.Error(w, decodeErr.Message, decodeErr.Status)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, fn(req))
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "Unknown error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}
