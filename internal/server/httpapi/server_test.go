package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/jobapp/internal/common"
	"github.com/dmitrijs2005/jobapp/internal/logging"
	"github.com/dmitrijs2005/jobapp/internal/models"
	"github.com/dmitrijs2005/jobapp/internal/seed"
	"github.com/dmitrijs2005/jobapp/internal/server/auth"
	"github.com/dmitrijs2005/jobapp/internal/services"
	"github.com/dmitrijs2005/jobapp/internal/users"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	srv   *Server
	core  *services.Core
	clock *clockwork.FakeClock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	reg := prometheus.NewRegistry()
	core, err := services.NewCore(seed.Default(),
		services.WithRegisterer(reg),
		services.WithDirectoryOptions(users.WithBcryptCost(bcrypt.MinCost)))
	require.NoError(t, err)

	clock := clockwork.NewFakeClockAt(time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC))
	issuer := auth.NewIssuer([]byte("test-secret"), 10*time.Minute, clock)
	return &testEnv{
		srv:   NewServer(":0", core, issuer, logging.Nop(), reg),
		core:  core,
		clock: clock,
	}
}

func (e *testEnv) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
	rec := httptest.NewRecorder()
	e.srv.Handler().ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) login(t *testing.T, username, password string) string {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/login", "",
		`{"username":"`+username+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp loginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealthAndMetrics(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	env.login(t, "user1", "password1")
	rec = env.do(t, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `jobapp_session_auth_attempts_total{result="success"} 1`)
	assert.Contains(t, rec.Body.String(), `jobapp_http_requests_total{method="POST",route="/api/login",status_code="200"} 1`)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		body string
		code int
	}{
		{name: "ok", body: `{"username":"user1","password":"password1"}`, code: http.StatusOK},
		{name: "wrong password", body: `{"username":"user1","password":"nope"}`, code: http.StatusUnauthorized},
		{name: "unknown user", body: `{"username":"ghost","password":"password1"}`, code: http.StatusUnauthorized},
		{name: "missing password", body: `{"username":"user1"}`, code: http.StatusBadRequest},
		{name: "malformed json", body: `{"username":`, code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/login", "", tt.body)
			assert.Equal(t, tt.code, rec.Code, rec.Body.String())
		})
	}
}

func TestLogin_ResponseHidesSecret(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/login", "", `{"username":"user2","password":"password2"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password2")

	resp := decode[loginResponse](t, rec)
	assert.Equal(t, 2, resp.User.ID)
	assert.Equal(t, "Арсений", resp.User.DisplayName)
}

func TestRequireSession(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/jobs", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/jobs", "garbage", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := env.login(t, "user1", "password1")
	rec = env.do(t, http.MethodGet, "/api/jobs", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.Posting](t, rec), 4)

	env.clock.Advance(11 * time.Minute)
	rec = env.do(t, http.MethodGet, "/api/jobs", token, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), common.ErrTokenExpired.Error())
}

func TestLogout_InvalidatesToken(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "user1", "password1")

	rec := env.do(t, http.MethodPost, "/api/logout", token, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	_, ok := env.core.Session.Current()
	assert.False(t, ok)

	rec = env.do(t, http.MethodGet, "/api/profile", token, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), common.ErrNoActiveSession.Error())
}

func TestLogout_ReloginDoesNotRestoreToken(t *testing.T) {
	env := newTestEnv(t)
	old := env.login(t, "user1", "password1")

	rec := env.do(t, http.MethodPost, "/api/logout", old, "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	fresh := env.login(t, "user1", "password1")

	rec = env.do(t, http.MethodGet, "/api/profile", old, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), common.ErrNoActiveSession.Error())

	rec = env.do(t, http.MethodGet, "/api/profile", fresh, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, decode[models.Identity](t, rec).ID)
}

func TestLogin_SameIdentityReplacesToken(t *testing.T) {
	env := newTestEnv(t)
	first := env.login(t, "user1", "password1")
	second := env.login(t, "user1", "password1")

	assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodGet, "/api/profile", first, "").Code)
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/api/profile", second, "").Code)

	rec := env.do(t, http.MethodPost, "/api/login", "", `{"username":"user1","password":"nope"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/api/profile", second, "").Code,
		"failed login keeps the session")
}

func TestLogin_OtherIdentityInvalidatesEarlierToken(t *testing.T) {
	env := newTestEnv(t)
	first := env.login(t, "user1", "password1")
	second := env.login(t, "user2", "password2")

	assert.Equal(t, http.StatusUnauthorized, env.do(t, http.MethodGet, "/api/profile", first, "").Code)
	assert.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/api/profile", second, "").Code)
}

func TestProfile(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "user1", "password1")

	rec := env.do(t, http.MethodGet, "/api/profile", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "kopylow2004@gmail.com", decode[models.Identity](t, rec).Email)

	rec = env.do(t, http.MethodPatch, "/api/profile", token, `{"phone":"+79990001122"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	u := decode[models.Identity](t, rec)
	assert.Equal(t, "+79990001122", u.Phone)
	assert.Equal(t, "Александр Копылов", u.DisplayName)
	assert.Equal(t, "kopylow2004@gmail.com", u.Email)

	rec = env.do(t, http.MethodPatch, "/api/profile", token, `{"phone":"+7 (952) 346-97-28"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "+7 (952) 346-97-28", decode[models.Identity](t, rec).Phone)

	rec = env.do(t, http.MethodPatch, "/api/profile", token, `{"phone":"`+strings.Repeat("9", 33)+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPatch, "/api/profile", token, `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	cur, ok := env.core.Session.Current()
	require.True(t, ok)
	assert.Equal(t, "kopylow2004@gmail.com", cur.Email)
}

func TestFavorites(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "user1", "password1")

	rec := env.do(t, http.MethodPost, "/api/jobs/3/favorite", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[models.Posting](t, rec).Favorited)

	rec = env.do(t, http.MethodGet, "/api/favorites", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	favs := decode[[]models.Posting](t, rec)
	require.Len(t, favs, 1)
	assert.Equal(t, 3, favs[0].ID)

	rec = env.do(t, http.MethodDelete, "/api/jobs/3/favorite", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[models.Posting](t, rec).Favorited)

	rec = env.do(t, http.MethodGet, "/api/favorites", token, "")
	assert.Empty(t, decode[[]models.Posting](t, rec))

	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodPost, "/api/jobs/77/favorite", token, "").Code)
	assert.Equal(t, http.StatusBadRequest, env.do(t, http.MethodPost, "/api/jobs/abc/favorite", token, "").Code)
}

type dialogJSON struct {
	Kind    string `json:"kind"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func TestDialogs(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "user1", "password1")

	rec := env.do(t, http.MethodPost, "/api/jobs/1/call", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, dialogJSON{Kind: "phone_reveal", Phone: "+79033555566"}, decode[dialogJSON](t, rec))

	rec = env.do(t, http.MethodPost, "/api/jobs/4/book", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, dialogJSON{Kind: "booking_confirmed", Message: "Бронирование для Кассир(12ч) успешно!"},
		decode[dialogJSON](t, rec))

	rec = env.do(t, http.MethodGet, "/api/dialog", token, "")
	assert.Equal(t, "booking_confirmed", decode[dialogJSON](t, rec).Kind)

	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodPost, "/api/jobs/9/book", token, "").Code)

	rec = env.do(t, http.MethodDelete, "/api/dialog", token, "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = env.do(t, http.MethodGet, "/api/dialog", token, "")
	assert.Equal(t, dialogJSON{Kind: "none"}, decode[dialogJSON](t, rec))
}

func TestIncome(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "user1", "password1")

	rec := env.do(t, http.MethodGet, "/api/income", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Balance          string `json:"balance"`
		BalanceFormatted string `json:"balance_formatted"`
		Transactions     []struct {
			Description string `json:"description"`
			Amount      string `json:"amount"`
		} `json:"transactions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "12345.67", resp.Balance)
	assert.Equal(t, "₽12,345.67", resp.BalanceFormatted)
	require.Len(t, resp.Transactions, 3)
	assert.Equal(t, "45000", resp.Transactions[0].Amount)
}
