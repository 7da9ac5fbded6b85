// audit/repository_test.go
package audit_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/audit"
)

// fakeElasticsearch answers the two endpoints the repository uses.
func fakeElasticsearch(t *testing.T, indexed *[]audit.Entry) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")

		switch {
		case strings.HasPrefix(r.URL.Path, "/audit-test/_doc/"):
			assert.Equal(t, "create", r.URL.Query().Get("op_type"))
			body, _ := io.ReadAll(r.Body)
			var e audit.Entry
			assert.NoError(t, json.Unmarshal(body, &e))
			*indexed = append(*indexed, e)
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"result":"created"}`))
		case strings.HasSuffix(r.URL.Path, "/audit-test/_search"):
			hits := make([]map[string]any, 0, len(*indexed))
			for i := len(*indexed) - 1; i >= 0; i-- {
				hits = append(hits, map[string]any{"_source": (*indexed)[i]})
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"hits": map[string]any{"hits": hits}})
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"not found"}`))
		}
	}))
}

func TestElasticsearchRepository_AppendAndRecent(t *testing.T) {
	var indexed []audit.Entry
	srv := fakeElasticsearch(t, &indexed)
	defer srv.Close()

	repo, err := audit.NewElasticsearchRepository(srv.URL, "audit-test")
	require.NoError(t, err)

	at := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Append(context.Background(), audit.Entry{ID: "e-1", Action: "DELETE_DONOR", ResourceID: "42", CreatedAt: at}))
	require.NoError(t, repo.Append(context.Background(), audit.Entry{ID: "e-2", Action: "GRANT_ROLE", ResourceID: "u-1", CreatedAt: at.Add(time.Minute)}))
	require.Len(t, indexed, 2)

	entries, err := repo.Recent(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "e-2", entries[0].ID)
	assert.Equal(t, "DELETE_DONOR", entries[1].Action)
}

func TestElasticsearchRepository_AppendConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":{"type":"version_conflict_engine_exception"}}`))
	}))
	defer srv.Close()

	repo, err := audit.NewElasticsearchRepository(srv.URL, "audit-test")
	require.NoError(t, err)

	err = repo.Append(context.Background(), audit.Entry{ID: "e-1"})

	assert.ErrorContains(t, err, "error indexing audit entry")
}
