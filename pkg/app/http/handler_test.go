package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/chainsafe/fabric-notary-gateway/pkg/app/errors"
)

func serve(h HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	HandleError(h).ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var got ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}

func TestHandleError_ServiceErrorCategories(t *testing.T) {
	tests := []struct {
		err      error
		status   int
		category string
	}{
		{apperrors.BadRequestError(nil, "all fields are mandatory"), http.StatusBadRequest, "CategoryDataError"},
		{apperrors.ConflictError(nil, "exists"), http.StatusConflict, "CategoryDataConflict"},
		{apperrors.ResourceNotFoundError(nil, "participant p9 does not exist"), http.StatusNotFound, "CategoryResourceNotFound"},
		{apperrors.UnAuthorizedError(nil, "register first"), http.StatusUnauthorized, "CategoryUnauthorized"},
		{apperrors.ConfigurationError(nil, "admin missing"), http.StatusInternalServerError, "CategoryConfiguration"},
		{apperrors.DependencyError(nil, "peer failed"), http.StatusBadGateway, "CategoryDependencyFailure"},
		{apperrors.TimeoutError(nil, "peer unreachable"), http.StatusGatewayTimeout, "CategoryConnectionTimeout"},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			rec := serve(func(http.ResponseWriter, *http.Request) error { return tt.err }, "")

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			got := decodeError(t, rec)
			assert.Equal(t, tt.status, got.ErrMsgCode)
			assert.Equal(t, tt.category, got.Category)
		})
	}
}

func TestHandleError_UnknownErrorHidesDetails(t *testing.T) {
	rec := serve(func(http.ResponseWriter, *http.Request) error { return errors.New("secret internals") }, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	got := decodeError(t, rec)
	assert.Equal(t, "Unexpected Service Error", got.ErrMsg)
	assert.NotContains(t, rec.Body.String(), "secret internals")
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	rec := serve(func(w http.ResponseWriter, r *http.Request) error {
		if err := DecodeJSON(w, r, &dst); err != nil {
			return err
		}
		WriteJSON(w, http.StatusCreated, dst)
		return nil
	}, `{"name":"Alice"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"name":"Alice"}`, rec.Body.String())

	rec = serve(func(w http.ResponseWriter, r *http.Request) error {
		return DecodeJSON(w, r, &dst)
	}, `{broken`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid JSON", decodeError(t, rec).ErrMsg)
}
