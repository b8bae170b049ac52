package api_test

import (
	"Kolhub/internal/api"
	"Kolhub/internal/api/handler"
	"Kolhub/internal/model"
	"Kolhub/internal/repository"
	"Kolhub/internal/service"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.KOL{}))

	kolSvc := service.NewKOLService(repository.NewKOLRepo(db))
	return api.SetupRouter(&api.HandlersGroup{KOLHandler: handler.NewKOLHandler(kolSvc)})
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) *envelope {
	t.Helper()
	env := &envelope{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), env))
	return env
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCreateKOLEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/kols",
		`{"kol_id":"kol_001","name":"Alice","platform":"TikTok","followers_k":120.5}`)
	require.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, http.StatusCreated, env.Code)

	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "kol_001", data["kol_id"])
	assert.Equal(t, "Alice", data["name"])
	assert.Equal(t, "TikTok", data["platform"])
	assert.NotZero(t, data["id"])
}

func TestCreateKOLEndpointMissingKolID(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/kols", `{"name":"Alice"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateKOLEndpointInvalidEnum(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/kols", `{"kol_id":"kol_001","platform":"Twitter"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	env := decodeEnvelope(t, w)
	assert.Contains(t, env.Message, "platform")
}

func TestCreateKOLEndpointDuplicate(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/kols", `{"kol_id":"kol_001"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, http.MethodPost, "/kols", `{"kol_id":"kol_001"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	assert.Contains(t, env.Message, "kol_001")
}

func TestCreateKOLBatchEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/kols/batch",
		`{"kols":[{"kol_id":"kol_a"},{"kol_id":"kol_b"}]}`)
	require.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	var data []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data, 2)
	assert.Equal(t, "kol_a", data[0]["kol_id"])
	assert.Equal(t, "kol_b", data[1]["kol_id"])
}

func TestCreateKOLBatchEndpointDuplicateInBatch(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/kols/batch",
		`{"kols":[{"kol_id":"kol_a"},{"kol_id":"kol_a"}]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// 整批拒绝后不应有任何记录落库
	w = doRequest(router, http.MethodGet, "/kols", "")
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	var page map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, float64(0), page["total"])
}

func TestGetKOLEndpointNotFound(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/kols/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, http.StatusNotFound, env.Code)
}

func TestUpdateKOLEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/kols", `{"kol_id":"kol_001","name":"Alice","email":"a@example.com"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, http.MethodPut, "/kols/kol_001", `{"name":"Alicia"}`)
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Alicia", data["name"])
	assert.Equal(t, "a@example.com", data["email"])
}

func TestUpdateKOLEndpointEmptyBody(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/kols", `{"kol_id":"kol_001","name":"Alice"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, http.MethodPut, "/kols/kol_001", "")
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Alice", data["name"])
}

func TestUpdateKOLEndpointNotFound(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPut, "/kols/missing", `{"name":"X"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteKOLEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/kols", `{"kol_id":"kol_001"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, http.MethodDelete, "/kols/kol_001", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doRequest(router, http.MethodGet, "/kols/kol_001", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodDelete, "/kols/kol_001", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListKOLsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	for i := 0; i < 12; i++ {
		platform := "TikTok"
		if i%2 == 0 {
			platform = "Instagram"
		}
		body := fmt.Sprintf(`{"kol_id":"kol_%03d","platform":%q}`, i, platform)
		w := doRequest(router, http.MethodPost, "/kols", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doRequest(router, http.MethodGet, "/kols?platform=TikTok&size=4", "")
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var page map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, float64(6), page["total"])
	assert.Equal(t, float64(1), page["page"])
	assert.Equal(t, float64(4), page["size"])
	assert.Equal(t, float64(2), page["pages"])
	assert.Len(t, page["items"], 4)
}

func TestListKOLsEndpointInvalidEnum(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/kols?platform=Twitter", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	env := decodeEnvelope(t, w)
	assert.Contains(t, env.Message, "platform")
}

func TestListKOLsEndpointInvalidPagination(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/kols?size=1000", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
