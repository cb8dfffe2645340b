package wallet

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeKV serves the subset of the Vault KV v2 HTTP API used by VaultStore.
type fakeKV struct {
	mu      sync.Mutex
	secrets map[string]map[string]interface{}
	token   string
}

func newFakeKV(token string) *fakeKV {
	return &fakeKV{secrets: make(map[string]map[string]interface{}), token: token}
}

func (f *fakeKV) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("X-Vault-Token") != f.token {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"errors":["permission denied"]}`))
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/v1/")
	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == "LIST" || (r.Method == http.MethodGet && r.URL.Query().Get("list") == "true"):
		prefix := strings.Replace(path, "/metadata/", "/data/", 1) + "/"
		var keys []string
		for p := range f.secrets {
			if strings.HasPrefix(p, prefix) {
				keys = append(keys, strings.TrimPrefix(p, prefix))
			}
		}
		if len(keys) == 0 {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"errors":[]}`))
			return
		}
		sort.Strings(keys)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": map[string]interface{}{"keys": keys}})

	case r.Method == http.MethodGet:
		data, ok := f.secrets[path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"errors":[]}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{
				"data":     data,
				"metadata": map[string]interface{}{"version": 1},
			},
		})

	case r.Method == http.MethodPut || r.Method == http.MethodPost:
		var body struct {
			Data map[string]interface{} `json:"data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.secrets[path] = body.Data
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": map[string]interface{}{"version": 1}})

	case r.Method == http.MethodDelete:
		delete(f.secrets, strings.Replace(path, "/metadata/", "/data/", 1))
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newTestVaultStore(t *testing.T) (*VaultStore, *fakeKV) {
	t.Helper()
	kv := newFakeKV("root-token")
	srv := httptest.NewServer(kv)
	t.Cleanup(srv.Close)

	s, err := NewVaultStore(srv.URL, "root-token", "secret", "notary-wallet", zap.NewNop())
	require.NoError(t, err)
	return s, kv
}

func TestVaultStore(t *testing.T) {
	s, _ := newTestVaultStore(t)
	runStoreContract(t, s)
}

func TestVaultStore_WritesUnderDataPath(t *testing.T) {
	s, kv := newTestVaultStore(t)
	require.NoError(t, s.Put(context.Background(), "u1", newTestCredential()))

	kv.mu.Lock()
	defer kv.mu.Unlock()
	stored, ok := kv.secrets["secret/data/notary-wallet/u1"]
	require.True(t, ok)
	assert.Equal(t, "Org1MSP", stored["mspId"])
	assert.Equal(t, testKey, stored["privateKey"])
}

func TestVaultStore_EmptyToken(t *testing.T) {
	_, err := NewVaultStore("http://127.0.0.1:8200", "", "secret", "notary-wallet", nil)
	require.Error(t, err)
}

func TestVaultStore_PermissionDenied(t *testing.T) {
	kv := newFakeKV("root-token")
	srv := httptest.NewServer(kv)
	t.Cleanup(srv.Close)

	s, err := NewVaultStore(srv.URL, "wrong-token", "secret", "notary-wallet", nil)
	require.NoError(t, err)

	_, err = s.Get(context.Background(), "u1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
