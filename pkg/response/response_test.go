package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusCreated, "Booking created", map[string]string{"id": "b1"})

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	body := decodeBody(t, rec)
	if body["success"] != true {
		t.Error("success flag not set")
	}
	if body["message"] != "Booking created" {
		t.Errorf("message = %v", body["message"])
	}
	if _, ok := body["errors"]; ok {
		t.Error("errors present on a success envelope")
	}
}

func TestSuccessWithMetaIncludesPagination(t *testing.T) {
	rec := httptest.NewRecorder()
	SuccessWithMeta(rec, http.StatusOK, "OK", nil, &Meta{Page: 2, Limit: 20, Total: 45, TotalPages: 3})

	body := decodeBody(t, rec)
	meta, ok := body["meta"].(map[string]interface{})
	if !ok {
		t.Fatalf("meta missing: %v", body)
	}
	if meta["total_pages"] != float64(3) {
		t.Errorf("total_pages = %v, want 3", meta["total_pages"])
	}
}

func TestValidationErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"Price": "invalid price"})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}

	body := decodeBody(t, rec)
	if body["success"] == true {
		t.Error("success flag set on an error envelope")
	}
	errs, ok := body["errors"].(map[string]interface{})
	if !ok {
		t.Fatalf("errors missing: %v", body)
	}
	if errs["Price"] != "invalid price" {
		t.Errorf("errors.Price = %v", errs["Price"])
	}
}

func TestStatusHelpersDefaultMessages(t *testing.T) {
	tests := []struct {
		name     string
		write    func(w http.ResponseWriter)
		wantCode int
		wantMsg  string
	}{
		{"unauthorized default", func(w http.ResponseWriter) { Unauthorized(w, "") }, http.StatusUnauthorized, "Unauthorized"},
		{"unauthorized custom", func(w http.ResponseWriter) { Unauthorized(w, "Token revoked") }, http.StatusUnauthorized, "Token revoked"},
		{"forbidden default", func(w http.ResponseWriter) { Forbidden(w, "") }, http.StatusForbidden, "Forbidden"},
		{"not found default", func(w http.ResponseWriter) { NotFound(w, "") }, http.StatusNotFound, "Resource not found"},
		{"internal default", func(w http.ResponseWriter) { InternalServerError(w, "") }, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)
			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if body := decodeBody(t, rec); body["message"] != tt.wantMsg {
				t.Errorf("message = %v, want %q", body["message"], tt.wantMsg)
			}
		})
	}
}
