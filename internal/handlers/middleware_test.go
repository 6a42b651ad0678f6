package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bloglist/internal/apperrors"
	"bloglist/internal/service"
)

func TestUnknownEndpoint(t *testing.T) {
	r := newTestRouter(&service.Service{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nothing/here", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d", w.Code, http.StatusNotFound)
	}
	var out struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Error != "Unknown endpoint" {
		t.Fatalf("error: got %q, want %q", out.Error, "Unknown endpoint")
	}
}

func TestTokenExtractor(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		parseErr error
		wantCode int
		wantErr  string
	}{
		{
			name:     "no header passes through",
			header:   "",
			wantCode: http.StatusOK,
		},
		{
			name:     "non-bearer scheme passes through",
			header:   "Basic abc",
			wantCode: http.StatusOK,
		},
		{
			name:     "invalid bearer token aborts with 401",
			header:   "Bearer garbage",
			parseErr: apperrors.ErrInvalidToken,
			wantCode: http.StatusUnauthorized,
			wantErr:  "Invalid token.",
		},
		{
			name:     "valid bearer token passes through",
			header:   "Bearer good-token",
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuth{parseID: "id-1", parseErr: tt.parseErr}
			blogs := &mockBlogs{}
			r := newTestRouter(&service.Service{Blogs: blogs, Authorization: auth})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/blogs", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tt.wantCode, w.Body.String())
			}
			if tt.wantErr != "" {
				var out struct {
					Error string `json:"error"`
				}
				_ = json.Unmarshal(w.Body.Bytes(), &out)
				if out.Error != tt.wantErr {
					t.Fatalf("error: got %q, want %q", out.Error, tt.wantErr)
				}
			}
		})
	}
}

func TestErrorHandler_Unclassified(t *testing.T) {
	blogs := &mockBlogs{listErr: errors.New("disk on fire")}
	r := newTestRouter(&service.Service{Blogs: blogs})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/blogs", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want %d", w.Code, http.StatusInternalServerError)
	}
	var out struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	// Internal details must not leak to the client.
	if out.Error != "internal server error" {
		t.Fatalf("error: got %q, want %q", out.Error, "internal server error")
	}
}

func TestErrorHandler_WrappedMalformedID(t *testing.T) {
	blogs := &mockBlogs{getErr: errors.Join(apperrors.ErrMalformedID)}
	r := newTestRouter(&service.Service{Blogs: blogs})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/blogs/xyz", nil))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", w.Code, http.StatusBadRequest)
	}
	if w.Body.String() != `{"error":"malformatted id"}` {
		t.Fatalf("body: got %s", w.Body.String())
	}
}
