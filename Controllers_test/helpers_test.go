package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-pos/database"
	"github.com/yeremiapane/restaurant-pos/services"
	"github.com/yeremiapane/restaurant-pos/utils"
)

var fixedNow = time.Date(2024, 11, 10, 14, 30, 5, 123000000, time.UTC)

// setupTestSession membuat session baru dengan SQLite in-memory tersendiri.
func setupTestSession(t *testing.T, seed bool) *services.Session {
	t.Helper()
	utils.InitLogger("error")

	db, err := database.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	if seed {
		require.NoError(t, database.SeedHistory(db))
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	catalog, err := services.LoadCatalog("")
	require.NoError(t, err)

	return services.NewSession(catalog, services.NewHistoryStore(db), services.Options{
		Clock: func() time.Time { return fixedNow },
	})
}

// envelope adalah bentuk response {status, message, data}.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func performRequest(t *testing.T, router *gin.Engine, method, url string, payload interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = &bytes.Buffer{}
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w, resp
}

func decodeData(t *testing.T, resp envelope, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Data, out))
}
