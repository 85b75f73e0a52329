package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithParam(key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	if key != "" {
		rctx.URLParams.Add(key, value)
	}
	req := httptest.NewRequest(http.MethodGet, "/tasks/"+value, nil)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetPathID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int64
		wantErr bool
	}{
		{name: "valid", value: "42", want: 42},
		{name: "max int64", value: "9223372036854775807", want: 9223372036854775807},
		{name: "missing", value: "", wantErr: true},
		{name: "not a number", value: "abc", wantErr: true},
		{name: "zero", value: "0", want: 0},
		{name: "negative", value: "-3", want: -3},
		{name: "decimal", value: "1.5", wantErr: true},
		{name: "overflow", value: "9223372036854775808", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, err := getPathID(requestWithParam("id", tc.value), "id")
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidID)
				assert.Equal(t, http.StatusBadRequest, MapErrorToStatusCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, id)
		})
	}
}
