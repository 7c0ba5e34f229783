package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/restaurant-pos/config"
	"github.com/yeremiapane/restaurant-pos/controllers"
	"github.com/yeremiapane/restaurant-pos/database"
	"github.com/yeremiapane/restaurant-pos/hub"
	"github.com/yeremiapane/restaurant-pos/router"
	"github.com/yeremiapane/restaurant-pos/services"
	"github.com/yeremiapane/restaurant-pos/utils"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	utils.InitLogger("error")
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// setupTestApp merakit aplikasi seperti main(), tapi dengan SQLite in-memory
// tersendiri dan jam yang tetap.
func setupTestApp(t *testing.T, pin string) (*gin.Engine, *hub.Hub) {
	t.Helper()

	cfg := &config.Config{
		CORSOrigin:  "*",
		RateLimit:   1000,
		RateWindow:  time.Second,
		OperatorPIN: pin,
		JWTSecret:   "integration-secret",
		TokenTTL:    time.Hour,
	}

	db, err := database.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	require.NoError(t, database.SeedHistory(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	catalog, err := services.LoadCatalog("")
	require.NoError(t, err)

	displayHub := hub.New(utils.InfoLogger)
	session := services.NewSession(catalog, services.NewHistoryStore(db), services.Options{
		Clock:     func() time.Time { return time.Date(2024, 11, 10, 14, 30, 5, 123000000, time.UTC) },
		Publisher: displayHub,
		Logger:    utils.InfoLogger,
	})

	deps := router.Deps{Config: cfg, Session: session, Hub: displayHub}
	if cfg.AuthEnabled() {
		deps.PINHash, err = controllers.HashPIN(pin, bcrypt.MinCost)
		require.NoError(t, err)
	}
	return router.SetupRouter(deps), displayHub
}

func doRequest(t *testing.T, r http.Handler, method, url, token string, payload interface{}) (int, apiResponse) {
	t.Helper()

	body := &bytes.Buffer{}
	if payload != nil {
		require.NoError(t, json.NewEncoder(body).Encode(payload))
	}
	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w.Code, resp
}

// TestEndToEndIntegration menguji flow utama kasir:
// 1. Pilih meja, isi data customer, kunci data
// 2. Tambah item dari menu, ubah jumlah
// 3. Cek tagihan
// 4. Konfirmasi -> masuk riwayat
// 5. Buka detail riwayat lalu tutup
// 6. Reset meja
func TestEndToEndIntegration(t *testing.T) {
	r, _ := setupTestApp(t, "")

	code, _ := doRequest(t, r, http.MethodPost, "/tables/6/select", "", nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = doRequest(t, r, http.MethodPatch, "/tables/6", "", gin.H{"customer_name": "Irfan", "customer_phone": "99999", "is_occupied": true})
	require.Equal(t, http.StatusOK, code)
	doRequest(t, r, http.MethodPost, "/session/lock", "", gin.H{"locked": true})

	// data customer terkunci, nama tidak berubah
	_, resp := doRequest(t, r, http.MethodPatch, "/tables/6", "", gin.H{"customer_name": "Someone Else"})
	var detail controllers.TableDetail
	require.NoError(t, json.Unmarshal(resp.Data, &detail))
	assert.Equal(t, "Irfan", detail.Table.CustomerName)

	doRequest(t, r, http.MethodPost, "/session/view", "", gin.H{"view": "menu"})
	doRequest(t, r, http.MethodPost, "/tables/6/items", "", gin.H{"menu_id": 2})
	doRequest(t, r, http.MethodPost, "/tables/6/items", "", gin.H{"menu_id": 4})
	code, _ = doRequest(t, r, http.MethodPatch, "/tables/6/items/4", "", gin.H{"quantity": 3})
	require.Equal(t, http.StatusOK, code)
	code, _ = doRequest(t, r, http.MethodPost, "/tables/6/items/4/increment", "", nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = doRequest(t, r, http.MethodPost, "/tables/6/items/4/decrement", "", nil)
	require.Equal(t, http.StatusOK, code)

	_, resp = doRequest(t, r, http.MethodGet, "/tables/6/bill", "", nil)
	var bill services.BillView
	require.NoError(t, json.Unmarshal(resp.Data, &bill))
	assert.Equal(t, 365.0, bill.Subtotal)
	assert.Equal(t, 383.25, bill.Total)

	code, _ = doRequest(t, r, http.MethodPost, "/tables/6/confirm", "", nil)
	require.Equal(t, http.StatusCreated, code)

	_, resp = doRequest(t, r, http.MethodGet, "/session", "", nil)
	var state services.SessionState
	require.NoError(t, json.Unmarshal(resp.Data, &state))
	assert.Equal(t, "status", string(state.View))
	assert.Equal(t, 6, state.SelectedTable)

	_, resp = doRequest(t, r, http.MethodGet, "/history", "", nil)
	var history []struct {
		ID            uint    `json:"id"`
		CustomerName  string  `json:"customer_name"`
		Total         float64 `json:"total"`
		InvoiceNumber string  `json:"invoice_number"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &history))
	require.Len(t, history, 3)
	assert.Equal(t, uint(14), history[0].ID)
	assert.Equal(t, "Irfan", history[0].CustomerName)
	assert.Equal(t, 383.25, history[0].Total)
	assert.Equal(t, "INV49005123", history[0].InvoiceNumber)

	code, _ = doRequest(t, r, http.MethodGet, "/history/14", "", nil)
	require.Equal(t, http.StatusOK, code)
	code, _ = doRequest(t, r, http.MethodDelete, "/history/selection", "", nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = doRequest(t, r, http.MethodDelete, "/tables/6", "", nil)
	require.Equal(t, http.StatusOK, code)
	_, resp = doRequest(t, r, http.MethodGet, "/tables/6", "", nil)
	require.NoError(t, json.Unmarshal(resp.Data, &detail))
	assert.Empty(t, detail.Table.Order)
	assert.False(t, detail.Table.IsOccupied)
}

func TestDisplayReceivesConfirmedOrder(t *testing.T) {
	r, displayHub := setupTestApp(t, "")
	srv := httptest.NewServer(r)
	defer srv.Close()

	doRequest(t, r, http.MethodPost, "/tables/1/items", "", gin.H{"menu_id": 6})

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return displayHub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	code, _ := doRequest(t, r, http.MethodPost, "/tables/1/confirm", "", nil)
	require.Equal(t, http.StatusCreated, code)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Event string `json:"event"`
		Data  struct {
			InvoiceNumber string  `json:"invoice_number"`
			Total         float64 `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, services.EventOrderConfirmed, msg.Event)
	assert.Equal(t, "INV49005123", msg.Data.InvoiceNumber)
	assert.Equal(t, 157.5, msg.Data.Total)
}

func TestOperatorLock(t *testing.T) {
	r, _ := setupTestApp(t, "1357")

	code, _ := doRequest(t, r, http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, code)

	code, _ = doRequest(t, r, http.MethodGet, "/tables", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = doRequest(t, r, http.MethodPost, "/login", "", gin.H{"pin": "0000"})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, resp := doRequest(t, r, http.MethodPost, "/login", "", gin.H{"operator": "nisha", "pin": "1357"})
	require.Equal(t, http.StatusOK, code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &login))
	require.NotEmpty(t, login.Token)

	code, _ = doRequest(t, r, http.MethodGet, "/tables", login.Token, nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestLoginRouteOnlyWithPIN(t *testing.T) {
	r, _ := setupTestApp(t, "")

	// route tidak terdaftar: gin menjawab 404 plain text, bukan envelope JSON
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"pin":"1357"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	code, _ := doRequest(t, r, http.MethodGet, "/tables", "", nil)
	assert.Equal(t, http.StatusOK, code)
}
