package feishu

import (
	"Kolhub/internal/api/config"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageOf(start, count int) []map[string]any {
	items := make([]map[string]any, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, map[string]any{
			"record_id": fmt.Sprintf("rec%d", start+i),
			"fields":    map[string]any{},
		})
	}
	return items
}

// newPagedServer 按 page_token 返回多页数据，最后一页 has_more=false
func newPagedServer(t *testing.T, pages map[string][]map[string]any, order []string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "/open-apis/bitable/v1/apps/app_token/tables/tbl_token/records/search")
		assert.Equal(t, "2", r.URL.Query().Get("page_size"))

		token := r.URL.Query().Get("page_token")
		items, ok := pages[token]
		require.True(t, ok, "unexpected page_token %q", token)

		next := ""
		for i, key := range order {
			if key == token && i+1 < len(order) {
				next = order[i+1]
			}
		}

		resp := map[string]any{
			"code": 0,
			"msg":  "success",
			"data": map[string]any{
				"items":      items,
				"page_token": next,
				"has_more":   next != "",
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func newPagedClient(baseURL string) *Client {
	return NewClient(&config.FeishuConfig{
		BaseURL:     baseURL,
		AppToken:    "app_token",
		TableID:     "tbl_token",
		AccessToken: "token",
		PageSize:    2,
	})
}

func TestSearchRecordsPaging(t *testing.T) {
	pages := map[string][]map[string]any{
		"":    pageOf(0, 2),
		"pg2": pageOf(2, 2),
		"pg3": pageOf(4, 1),
	}
	server := newPagedServer(t, pages, []string{"", "pg2", "pg3"})
	defer server.Close()

	records, err := newPagedClient(server.URL).SearchRecords(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, "rec0", records[0].RecordID)
	assert.Equal(t, "rec4", records[4].RecordID)
}

func TestSearchRecordsMaxRecordsTruncates(t *testing.T) {
	pages := map[string][]map[string]any{
		"":    pageOf(0, 2),
		"pg2": pageOf(2, 2),
		"pg3": pageOf(4, 2),
	}
	server := newPagedServer(t, pages, []string{"", "pg2", "pg3"})
	defer server.Close()

	records, err := newPagedClient(server.URL).SearchRecords(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "rec2", records[2].RecordID)
}

func TestSearchRecordsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"code": 91402,
			"msg":  "NOTEXIST",
		}))
	}))
	defer server.Close()

	_, err := newPagedClient(server.URL).SearchRecords(context.Background(), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "code=91402")
}

func TestSearchRecordsHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := newPagedClient(server.URL).SearchRecords(context.Background(), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status")
}
