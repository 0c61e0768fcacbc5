package httputil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "passgate/pkg/domain-errors"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "invalid input",
			err:        dErrors.New(dErrors.CodeInvalidInput, "id is required"),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"invalid_input","error_description":"id is required"}`,
		},
		{
			name:       "not found",
			err:        dErrors.New(dErrors.CodeNotFound, "user not found"),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"not_found","error_description":"user not found"}`,
		},
		{
			name:       "unsupported",
			err:        dErrors.New(dErrors.CodeUnsupported, "operation not supported"),
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `{"error":"unsupported","error_description":"operation not supported"}`,
		},
		{
			name:       "unavailable",
			err:        dErrors.New(dErrors.CodeUnavailable, "store unreachable"),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"error":"unavailable","error_description":"store unreachable"}`,
		},
		{
			name:       "internal errors omit the description",
			err:        errors.New("pq: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"internal_error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestDecode(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("valid body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"bob"}`))
		v, err := Decode[payload](r)
		require.NoError(t, err)
		assert.Equal(t, "bob", v.Name)
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"bob","extra":1}`))
		_, err := Decode[payload](r)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	t.Run("malformed json", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
		_, err := Decode[payload](r)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}
