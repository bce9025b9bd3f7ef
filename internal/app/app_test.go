package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Starley-iggy/YahooBank/internal/config"
	"github.com/Starley-iggy/YahooBank/pkg/rng"
)

type fakeGameCfg struct{}

func (c *fakeGameCfg) ScamPrinceOdds() float64    { return 0.05 }
func (c *fakeGameCfg) NPCRevengeOdds() float64    { return 0.05 }
func (c *fakeGameCfg) NPCCooldown() time.Duration { return 30 * time.Second }

func (c *fakeGameCfg) SeedUsers() []config.SeedUser {
	return []config.SeedUser{
		{Login: "alex", Password: "1234", Balance: 2500.00},
		{Login: "jamie", Password: "password", Balance: 1200.50},
		{Login: "user", Password: "pass", Balance: 100.00},
	}
}

func (c *fakeGameCfg) SeedNPCs() []config.SeedNPC {
	return []config.SeedNPC{
		{Name: "merchant", Balance: 50000},
		{Name: "old_lady", Balance: 2000},
	}
}

type fakeAuthCfg struct{}

func (c *fakeAuthCfg) AccessTokenSecretKey() []byte        { return []byte("test-secret") }
func (c *fakeAuthCfg) AccessTokenDuration() time.Duration  { return 15 * time.Minute }
func (c *fakeAuthCfg) RefreshTokenDuration() time.Duration { return 30 * 24 * time.Hour }

// newTestRouter собирает приложение на тестовых конфигах вместо
// config.yaml и окружения
func newTestRouter() http.Handler {
	sp := newServiceProvider()
	sp.gameCfg = &fakeGameCfg{}
	sp.authCfg = &fakeAuthCfg{}
	sp.rnd = rng.NewSeeded(1)
	return sp.Router()
}

func doJSON(t *testing.T, router http.Handler, method, target, body string, cookies []*http.Cookie, bearer string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	return payload
}

func cookieFromResponse(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name && c.MaxAge >= 0 {
			return c
		}
	}
	return nil
}

func login(t *testing.T, router http.Handler, username, password string) (*httptest.ResponseRecorder, []*http.Cookie) {
	t.Helper()

	rr := doJSON(t, router, http.MethodPost, "/api/login",
		`{"username":"`+username+`","password":"`+password+`"}`, nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	session := cookieFromResponse(rr, "session_id")
	require.NotNil(t, session)
	return rr, []*http.Cookie{session}
}

func TestLoginAndAccount(t *testing.T) {
	router := newTestRouter()

	rr, cookies := login(t, router, "alex", "1234")
	body := decodeBody(t, rr)
	assert.Equal(t, "Logged in as alex", body["message"])
	require.NotEmpty(t, body["access_token"])

	// Доступ по cookie сессии
	rr = doJSON(t, router, http.MethodGet, "/api/account", "", cookies, "")
	require.Equal(t, http.StatusOK, rr.Code)
	account := decodeBody(t, rr)
	assert.Equal(t, "alex", account["username"])
	assert.InDelta(t, 2500.00, account["balance"], 1e-9)
	assert.Equal(t, "€2,500.00", account["formatted_balance"])

	// Доступ по Bearer токену без cookie
	rr = doJSON(t, router, http.MethodGet, "/api/account", "", nil, body["access_token"].(string))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "alex", decodeBody(t, rr)["username"])
}

func TestLogin_NormalizesUsername(t *testing.T) {
	router := newTestRouter()

	rr := doJSON(t, router, http.MethodPost, "/api/login",
		`{"username":"  ALEX  ","password":"1234"}`, nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Logged in as alex", decodeBody(t, rr)["message"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router := newTestRouter()

	rr := doJSON(t, router, http.MethodPost, "/api/login",
		`{"username":"alex","password":"wrong"}`, nil, "")
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, rr)["error"])
}

func TestLogin_MissingFields(t *testing.T) {
	router := newTestRouter()

	rr := doJSON(t, router, http.MethodPost, "/api/login", `{"username":"alex"}`, nil, "")
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Missing username or password", decodeBody(t, rr)["error"])
}

func TestUnauthenticatedRequests(t *testing.T) {
	router := newTestRouter()

	for _, target := range []string{"/api/account", "/api/npcs"} {
		rr := doJSON(t, router, http.MethodGet, target, "", nil, "")
		require.Equal(t, http.StatusUnauthorized, rr.Code, target)
		assert.Equal(t, "Not authenticated", decodeBody(t, rr)["error"], target)
	}

	rr := doJSON(t, router, http.MethodPost, "/api/send", `{"to":"jamie","amount":1}`, nil, "")
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestSendFlow(t *testing.T) {
	router := newTestRouter()

	_, alexCookies := login(t, router, "alex", "1234")
	rr := doJSON(t, router, http.MethodPost, "/api/send", `{"to":"jamie","amount":500}`, alexCookies, "")
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, "Sent €500.00 to jamie.", body["message"])
	assert.InDelta(t, 2000.00, body["balance"], 1e-9)
	assert.Equal(t, "€2,000.00", body["formatted_balance"])

	// Получатель видит зачисление
	_, jamieCookies := login(t, router, "jamie", "password")
	rr = doJSON(t, router, http.MethodGet, "/api/account", "", jamieCookies, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.InDelta(t, 1700.50, decodeBody(t, rr)["balance"], 1e-9)
}

func TestSend_StringAmount(t *testing.T) {
	router := newTestRouter()

	// Сумма строкой принимается, как float() в оригинале
	_, cookies := login(t, router, "alex", "1234")
	rr := doJSON(t, router, http.MethodPost, "/api/send", `{"to":"jamie","amount":"250"}`, cookies, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.InDelta(t, 2250.00, decodeBody(t, rr)["balance"], 1e-9)
}

func TestSend_Validation(t *testing.T) {
	router := newTestRouter()
	_, cookies := login(t, router, "alex", "1234")

	rr := doJSON(t, router, http.MethodPost, "/api/send", `{"amount":100}`, cookies, "")
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Recipient missing", decodeBody(t, rr)["error"])

	rr = doJSON(t, router, http.MethodPost, "/api/send", `{"to":"jamie","amount":"abc"}`, cookies, "")
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid amount", decodeBody(t, rr)["error"])
}

func TestInvest_NonPositiveAmount(t *testing.T) {
	router := newTestRouter()
	_, cookies := login(t, router, "alex", "1234")

	rr := doJSON(t, router, http.MethodPost, "/api/invest", `{"amount":-5}`, cookies, "")
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Amount must be positive", decodeBody(t, rr)["error"])
}

func TestNPCList(t *testing.T) {
	router := newTestRouter()
	_, cookies := login(t, router, "alex", "1234")

	rr := doJSON(t, router, http.MethodGet, "/api/npcs", "", cookies, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []any{"merchant", "old_lady"}, decodeBody(t, rr)["npcs"])
}

func TestScamMiniGame_InvalidTarget(t *testing.T) {
	router := newTestRouter()
	_, cookies := login(t, router, "alex", "1234")

	rr := doJSON(t, router, http.MethodPost, "/api/scam_mini_game", `{"target":"dragon","success":true}`, cookies, "")
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid target", decodeBody(t, rr)["error"])
}

func TestRefresh(t *testing.T) {
	router := newTestRouter()

	rr := doJSON(t, router, http.MethodPost, "/api/login",
		`{"username":"alex","password":"1234"}`, nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	session := cookieFromResponse(rr, "session_id")
	refresh := cookieFromResponse(rr, "refresh_token")
	require.NotNil(t, session)
	require.NotNil(t, refresh)

	rr = doJSON(t, router, http.MethodPost, "/api/refresh", "", []*http.Cookie{session, refresh}, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, decodeBody(t, rr)["access_token"])
}

func TestLogout(t *testing.T) {
	router := newTestRouter()
	_, cookies := login(t, router, "alex", "1234")

	rr := doJSON(t, router, http.MethodPost, "/api/logout", "", cookies, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Logged out", decodeBody(t, rr)["message"])

	// Старая cookie сессии больше не работает
	rr = doJSON(t, router, http.MethodGet, "/api/account", "", cookies, "")
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	// Logout без сессии тоже отвечает 200 — как оригинал
	rr = doJSON(t, router, http.MethodPost, "/api/logout", "", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestPages(t *testing.T) {
	router := newTestRouter()

	// Без сессии корень отдает страницу логина
	rr := doJSON(t, router, http.MethodGet, "/", "", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)

	// Дашборд без сессии редиректит на логин
	rr = doJSON(t, router, http.MethodGet, "/dashboard", "", nil, "")
	require.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))

	// С сессией наоборот
	_, cookies := login(t, router, "alex", "1234")
	rr = doJSON(t, router, http.MethodGet, "/", "", cookies, "")
	require.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/dashboard", rr.Header().Get("Location"))

	rr = doJSON(t, router, http.MethodGet, "/dashboard", "", cookies, "")
	require.Equal(t, http.StatusOK, rr.Code)
}
