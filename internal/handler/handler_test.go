package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/pathiram/backend/config"
	"github.com/pathiram/backend/internal/eventbus"
	"github.com/pathiram/backend/internal/handler"
	"github.com/pathiram/backend/internal/model"
	"github.com/pathiram/backend/internal/pkg/cache"
	"github.com/pathiram/backend/internal/pkg/database"
	"github.com/pathiram/backend/internal/pkg/docnumber"
	"github.com/pathiram/backend/internal/repository"
	"github.com/pathiram/backend/internal/router"
	"github.com/pathiram/backend/internal/service"
	"github.com/pathiram/backend/internal/service/exporter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServer struct {
	router *gin.Engine
	events []eventbus.DocEvent
}

func newTestServer(t *testing.T, migrate bool) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	if migrate {
		require.NoError(t, database.Migrate(db))
	}

	ts := &testServer{}
	bus := eventbus.NewDocEventBus()
	for _, et := range []eventbus.DocEventType{eventbus.DocEventSaved, eventbus.DocEventUpdated, eventbus.DocEventDeleted, eventbus.DocEventExported, eventbus.DocEventExportFailed} {
		bus.Subscribe(et, func(_ context.Context, e eventbus.DocEvent) error {
			ts.events = append(ts.events, e)
			return nil
		})
	}

	preview, err := service.NewPreviewService()
	require.NoError(t, err)
	documents := service.NewDocumentService(&config.Config{}, repository.NewDocumentRepository(db), exporter.NewDefault(exporter.Options{}), docnumber.New(), bus)
	locations := service.NewLocationService(repository.NewLocationRepository(db), cache.NewMemory(), time.Minute)
	if migrate {
		_, err = locations.Seed(context.Background())
		require.NoError(t, err)
	}

	ph := handler.NewPreviewHandler(preview, documents)
	dh := handler.NewDocumentHandler(documents)
	lh := handler.NewLocationHandler(locations)

	ts.router = router.Setup(&config.Config{}, ph, dh, lh)
	return ts
}

func (ts *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

const receiptBody = `{"receiptDate":"01/01/2025","buyerName":"ராமன்","sellerName":"முருகன்","loanAmount":50000,"priorDocNumber":"ABC123"}`

func TestDocumentTypes(t *testing.T) {
	ts := newTestServer(t, true)
	w := ts.do(http.MethodGet, "/api/document-types", "")
	require.Equal(t, http.StatusOK, w.Code)

	var types []struct {
		Type   string `json:"type"`
		Prefix string `json:"prefix"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &types))
	assert.Len(t, types, 4)
	assert.Equal(t, "receipt", types[0].Type)
	assert.Equal(t, "MLR", types[0].Prefix)
}

func TestPreviewHandler(t *testing.T) {
	ts := newTestServer(t, true)

	w := ts.do(http.MethodPost, "/api/preview/receipt", receiptBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var res service.PreviewResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, model.TypeReceipt, res.Type)
	assert.Equal(t, "ஐம்பது ஆயிரம்", res.Fields["loanAmountWords"])
	assert.Contains(t, res.HTML, "ராமன்")

	// previews never validate
	w = ts.do(http.MethodPost, "/api/preview/sale", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do(http.MethodPost, "/api/preview/will", "{}")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(http.MethodPost, "/api/preview/receipt", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(http.MethodPost, "/api/preview/receipt", `{"bogusField":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAmountWordsHandler(t *testing.T) {
	ts := newTestServer(t, true)
	w := ts.do(http.MethodGet, "/api/amount-words?amount=400000", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "நான்கு இலட்சம்")
}

func TestDocumentLifecycle(t *testing.T) {
	ts := newTestServer(t, true)

	w := ts.do(http.MethodPost, "/api/documents/receipt", `{"buyerName":"ராமன்"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	var verr struct {
		Fields []string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &verr))
	assert.ElementsMatch(t, []string{"receiptDate", "loanAmount"}, verr.Fields)

	w = ts.do(http.MethodPost, "/api/documents/receipt", receiptBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created model.DocumentRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, strings.HasPrefix(created.DocNumber, "MLR-"))
	assert.Equal(t, "ராமன்", created.PartyA)

	w = ts.do(http.MethodGet, "/api/document-numbers/"+created.DocNumber, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(http.MethodGet, "/api/documents?type=receipt&q="+url.QueryEscape("ராமன்"), "")
	require.Equal(t, http.StatusOK, w.Code)
	var list service.ListResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.EqualValues(t, 1, list.Total)

	path := "/api/documents/" + itoa(created.ID)
	w = ts.do(http.MethodPut, path, `{"receiptDate":"02/02/2025","buyerName":"சீனு","loanAmount":"75000"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated model.DocumentRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, created.DocNumber, updated.DocNumber)
	assert.Equal(t, "சீனு", updated.PartyA)

	w = ts.do(http.MethodGet, path+"/export?format=pdf", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename="+created.DocNumber+".pdf", w.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))

	w = ts.do(http.MethodGet, path+"/export?format=odt", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(http.MethodDelete, path, "")
	require.Equal(t, http.StatusOK, w.Code)
	w = ts.do(http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = ts.do(http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var types []eventbus.DocEventType
	for _, e := range ts.events {
		types = append(types, e.Type)
	}
	assert.Equal(t, []eventbus.DocEventType{
		eventbus.DocEventSaved,
		eventbus.DocEventUpdated,
		eventbus.DocEventExported,
		eventbus.DocEventDeleted,
	}, types)
}

func TestExportUnsavedRecord(t *testing.T) {
	ts := newTestServer(t, true)
	w := ts.do(http.MethodPost, "/api/export/agreement?format=docx", `{"sellerName":"முருகன்","saleAmount":"500000","advanceAmount":"100000"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "attachment; filename=agreement.docx", w.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))
}

func TestInvalidID(t *testing.T) {
	ts := newTestServer(t, true)
	w := ts.do(http.MethodGet, "/api/documents/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListWithoutTable(t *testing.T) {
	ts := newTestServer(t, false)
	w := ts.do(http.MethodGet, "/api/documents", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list service.ListResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list.Items)
	assert.Equal(t, service.MissingTableMessage, list.Message)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func TestRouterFallbacks(t *testing.T) {
	ts := newTestServer(t, true)

	w := ts.do(http.MethodGet, "/api/nothing-here", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)

	w = ts.do(http.MethodGet, "/documents/42", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	w = ts.do(http.MethodGet, "/assets/app.js", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLocationCascade(t *testing.T) {
	ts := newTestServer(t, true)

	var states []model.State
	require.NoError(t, json.Unmarshal(ts.do(http.MethodGet, "/api/locations/states", "").Body.Bytes(), &states))
	require.NotEmpty(t, states)

	var districts []model.District
	require.NoError(t, json.Unmarshal(ts.do(http.MethodGet, "/api/locations/states/"+itoa(states[0].ID)+"/districts", "").Body.Bytes(), &districts))
	require.NotEmpty(t, districts)

	w := ts.do(http.MethodGet, "/api/locations/districts/"+itoa(districts[0].ID)+"/taluks", "")
	require.Equal(t, http.StatusOK, w.Code)
	var taluks []model.Taluk
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &taluks))
	require.NotEmpty(t, taluks)

	w = ts.do(http.MethodGet, "/api/locations/taluks/"+itoa(taluks[0].ID)+"/villages", "")
	require.Equal(t, http.StatusOK, w.Code)
	var villages []model.Village
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &villages))
	assert.NotEmpty(t, villages)
}
