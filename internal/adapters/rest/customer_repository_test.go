// internal/adapters/rest/customer_repository_test.go
package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haroldmz/stockdesk/internal/adapters/rest"
	"github.com/haroldmz/stockdesk/internal/core/domain"
	"github.com/haroldmz/stockdesk/internal/core/ports"
	"github.com/haroldmz/stockdesk/test/helpers"
)

func newTestClient(t *testing.T, handler http.Handler) (*rest.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := rest.NewClient(rest.Config{BaseURL: server.URL}, helpers.TestLogger())
	require.NoError(t, err)
	return client, server
}

func TestCustomerRepository_List_ForwardsQueryUnmodified(t *testing.T) {
	var captured *http.Request
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(context.Background())
		json.NewEncoder(w).Encode(map[string]any{
			"items":     []any{map[string]any{"id": 1, "name": "Maria Lopez"}},
			"total":     1,
			"page":      1,
			"page_size": 10,
		})
	}))

	repo := rest.NewCustomerRepository(client, helpers.TestLogger())
	page, err := repo.List(context.Background(), ports.ListParams{
		Search:      "maria",
		SearchField: "name",
		SortBy:      "created_at",
		SortOrder:   "desc",
		Take:        10,
		Skip:        0,
	})

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, "/customers", captured.URL.Path)

	q := captured.URL.Query()
	assert.Equal(t, "maria", q.Get("name"))
	assert.Equal(t, "10", q.Get("take"))
	assert.Equal(t, "0", q.Get("skip"), "an explicit zero offset is passed through, not dropped")
	assert.Equal(t, "created_at", q.Get("sortBy"))
	assert.Equal(t, "desc", q.Get("sortOrder"))

	assert.NotEmpty(t, captured.Header.Get("X-Request-ID"))

	require.Len(t, page.Items, 1)
	assert.Equal(t, "Maria Lopez", page.Items[0].Name)
	assert.Equal(t, int64(1), page.Total)
}

func TestCustomerRepository_List_NormalizesFlatArray(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]any{
			map[string]any{"id": 1, "name": "A"},
			map[string]any{"id": 2, "name": "B"},
		})
	}))

	repo := rest.NewCustomerRepository(client, helpers.TestLogger())
	page, err := repo.List(context.Background(), ports.ListParams{Take: 10, Skip: 10})

	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.Page, "page coordinates derive from skip/take when the shape has none")
}

func TestCustomerRepository_List_ServerErrorMessageSurfaces(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{"message": "take must not exceed 100"})
	}))

	repo := rest.NewCustomerRepository(client, helpers.TestLogger())
	_, err := repo.List(context.Background(), ports.ListParams{Take: 500})

	require.Error(t, err)
	var ofe *domain.OperationFailedError
	require.ErrorAs(t, err, &ofe)
	assert.Equal(t, "take must not exceed 100", ofe.Message)
}

func TestCustomerRepository_List_StatusOnlyErrorFallsBackToStatusText(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	repo := rest.NewCustomerRepository(client, helpers.TestLogger())
	_, err := repo.List(context.Background(), ports.ListParams{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestCustomerRepository_List_UnknownShapeIsMalformed(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"unexpected": "shape"})
	}))

	repo := rest.NewCustomerRepository(client, helpers.TestLogger())
	_, err := repo.List(context.Background(), ports.ListParams{})

	require.Error(t, err)
	var malformed *domain.MalformedResponseError
	assert.ErrorAs(t, err, &malformed)
}

func TestCustomerRepository_Create_DecodesEnvelopedEntity(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"id": 7, "name": "Maria Lopez", "email": "maria@example.com"},
		})
	}))

	repo := rest.NewCustomerRepository(client, helpers.TestLogger())
	created, err := repo.Create(context.Background(), helpers.CreateTestCustomer())

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, "maria@example.com", created.Email)
}

func TestCustomerRepository_DeleteAndRestore(t *testing.T) {
	var paths []string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.Path)
		switch r.Method {
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			json.NewEncoder(w).Encode(map[string]any{"restored": true})
		}
	}))

	repo := rest.NewCustomerRepository(client, helpers.TestLogger())

	ok, err := repo.Delete(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, ok, "a 204 acknowledges the delete")

	ok, err = repo.Restore(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, []string{"DELETE /customers/5", "POST /customers/5/restore"}, paths)
}

func TestClient_SetToken_AttachesBearer(t *testing.T) {
	var auth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]any{})
	}))

	repo := rest.NewCustomerRepository(client, helpers.TestLogger())

	client.SetToken("tok-123")
	_, err := repo.List(context.Background(), ports.ListParams{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", auth)

	client.SetToken("")
	_, err = repo.List(context.Background(), ports.ListParams{})
	require.NoError(t, err)
	assert.Empty(t, auth, "clearing the token removes the header")
}
