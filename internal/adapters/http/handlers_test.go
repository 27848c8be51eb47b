package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanternworks/auth-service/internal/application"
	"github.com/lanternworks/auth-service/internal/domain"
	"github.com/lanternworks/auth-service/internal/ports"
)

type memUsers struct {
	users map[uuid.UUID]domain.User
}

func (r *memUsers) Create(_ context.Context, params ports.CreateUserParams) (domain.User, error) {
	for _, u := range r.users {
		if u.Name == params.Name || u.Email == params.Email {
			return domain.User{}, domain.ErrConflict
		}
	}
	user := domain.User{
		ID:           uuid.New(),
		Name:         params.Name,
		Email:        params.Email,
		DisplayName:  params.DisplayName,
		PasswordHash: params.PasswordHash,
		CreatedAt:    params.CreatedAt,
	}
	r.users[user.ID] = user
	return user, nil
}

func (r *memUsers) GetByName(_ context.Context, name string) (domain.User, error) {
	for _, u := range r.users {
		if u.Name == name {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (r *memUsers) GetByEmail(_ context.Context, email string) (domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (r *memUsers) GetByID(_ context.Context, userID uuid.UUID) (domain.User, error) {
	if u, ok := r.users[userID]; ok {
		return u, nil
	}
	return domain.User{}, domain.ErrNotFound
}

func (r *memUsers) UpdatePassword(_ context.Context, userID uuid.UUID, passwordHash string) error {
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrNotFound
	}
	u.PasswordHash = passwordHash
	r.users[userID] = u
	return nil
}

func (r *memUsers) ListWithSessions(_ context.Context) ([]ports.UserSessionRow, error) {
	rows := make([]ports.UserSessionRow, 0, len(r.users))
	for _, u := range r.users {
		rows = append(rows, ports.UserSessionRow{
			UserID:      u.ID,
			Name:        u.Name,
			Email:       u.Email,
			DisplayName: u.DisplayName,
			CreatedAt:   u.CreatedAt,
		})
	}
	return rows, nil
}

type memSessions struct {
	sessions map[uuid.UUID]domain.Session
}

func (r *memSessions) Create(_ context.Context, userID uuid.UUID, keepSignedIn bool, startedAt time.Time) (domain.Session, error) {
	session := domain.Session{ID: uuid.New(), UserID: userID, KeepSignedIn: keepSignedIn, StartedAt: startedAt}
	r.sessions[session.ID] = session
	return session, nil
}

func (r *memSessions) GetByID(_ context.Context, sessionID uuid.UUID) (domain.Session, error) {
	if s, ok := r.sessions[sessionID]; ok {
		return s, nil
	}
	return domain.Session{}, domain.ErrNotFound
}

func (r *memSessions) DeleteByID(_ context.Context, sessionID uuid.UUID) (int64, error) {
	if _, ok := r.sessions[sessionID]; !ok {
		return 0, nil
	}
	delete(r.sessions, sessionID)
	return 1, nil
}

func (r *memSessions) DeleteStartedBefore(context.Context, time.Time) (int64, error) { return 0, nil }

type memRecovery struct {
	attempts map[uuid.UUID]domain.RecoveryAttempt
}

func (r *memRecovery) CreateIfNone(_ context.Context, params ports.CreateRecoveryParams) (domain.RecoveryAttempt, error) {
	for _, a := range r.attempts {
		if a.UserID == params.UserID && a.ExpiresAt.After(params.RegisteredAt) {
			return domain.RecoveryAttempt{}, domain.ErrTooManyAttempts
		}
	}
	attempt := domain.RecoveryAttempt{
		ID:           uuid.New(),
		UserID:       params.UserID,
		Code:         params.Code,
		RegisteredAt: params.RegisteredAt,
		ExpiresAt:    params.ExpiresAt,
	}
	r.attempts[attempt.ID] = attempt
	return attempt, nil
}

func (r *memRecovery) GetActiveByUser(_ context.Context, userID uuid.UUID, now time.Time) (domain.RecoveryAttempt, error) {
	for _, a := range r.attempts {
		if a.UserID == userID && a.ExpiresAt.After(now) {
			return a, nil
		}
	}
	return domain.RecoveryAttempt{}, domain.ErrNotFound
}

func (r *memRecovery) DeleteByID(_ context.Context, attemptID uuid.UUID) (int64, error) {
	if _, ok := r.attempts[attemptID]; !ok {
		return 0, nil
	}
	delete(r.attempts, attemptID)
	return 1, nil
}

func (r *memRecovery) DeleteExpiredBefore(context.Context, time.Time) (int64, error) { return 0, nil }

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "plain:" + password, nil }

func (plainHasher) Verify(hash, password string) bool { return hash == "plain:"+password }

type recordingMailer struct {
	codes []string
}

func (m *recordingMailer) SendRecoveryCode(_ context.Context, _, code string, _ time.Time) error {
	m.codes = append(m.codes, code)
	return nil
}

func newTestServer(t *testing.T) (*httptest.Server, *recordingMailer) {
	t.Helper()
	mailer := &recordingMailer{}
	svc := application.NewService(application.Dependencies{
		Users:    &memUsers{users: make(map[uuid.UUID]domain.User)},
		Sessions: &memSessions{sessions: make(map[uuid.UUID]domain.Session)},
		Recovery: &memRecovery{attempts: make(map[uuid.UUID]domain.RecoveryAttempt)},
		Hasher:   plainHasher{},
		Mailer:   mailer,
	})
	server := httptest.NewServer(NewRouter(NewHandler(svc)))
	t.Cleanup(server.Close)
	return server, mailer
}

func postJSON(t *testing.T, url string, body any, mutate ...func(*http.Request)) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(raw))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for _, m := range mutate {
		m(req)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeData(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var envelope struct {
		Status string         `json:"status"`
		Data   map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Equal(t, "success", envelope.Status)
	return envelope.Data
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == "sessionId" {
			return c
		}
	}
	t.Fatal("sessionId cookie not set")
	return nil
}

func TestRegisterEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	resp := postJSON(t, server.URL+"/v1/user/create", map[string]any{
		"name":     "frodo",
		"email":    "frodo@shire.example",
		"password": "pw123456",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	cookie := sessionCookie(t, resp)
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	data := decodeData(t, resp)
	user, ok := data["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "frodo", user["name"])
	_, hasPassword := user["password"]
	assert.False(t, hasPassword, "responses must never carry password material")
	assert.Equal(t, cookie.Value, data["sessionToken"])
}

func TestRegisterRejectsUnknownFields(t *testing.T) {
	server, _ := newTestServer(t)

	resp := postJSON(t, server.URL+"/v1/user/create", map[string]any{
		"name":     "frodo",
		"email":    "frodo@shire.example",
		"password": "pw123456",
		"admin":    true,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegisterConflictEndpoint(t *testing.T) {
	server, _ := newTestServer(t)
	body := map[string]any{"name": "frodo", "email": "frodo@shire.example", "password": "pw123456"}

	first := postJSON(t, server.URL+"/v1/user/create", body)
	first.Body.Close()
	require.Equal(t, http.StatusCreated, first.StatusCode)

	second := postJSON(t, server.URL+"/v1/user/create", body)
	defer second.Body.Close()
	assert.Equal(t, http.StatusConflict, second.StatusCode)
}

func TestLoginEndpoint(t *testing.T) {
	server, _ := newTestServer(t)
	postJSON(t, server.URL+"/v1/user/create", map[string]any{
		"name": "frodo", "email": "frodo@shire.example", "password": "pw123456",
	}).Body.Close()

	good := postJSON(t, server.URL+"/v1/user/auth", map[string]any{"name": "frodo", "password": "pw123456"})
	require.Equal(t, http.StatusCreated, good.StatusCode)
	sessionCookie(t, good)
	good.Body.Close()

	bad := postJSON(t, server.URL+"/v1/user/auth", map[string]any{"name": "frodo", "password": "wrong"})
	defer bad.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, bad.StatusCode)
}

func TestLogoutEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	reg := postJSON(t, server.URL+"/v1/user/create", map[string]any{
		"name": "frodo", "email": "frodo@shire.example", "password": "pw123456",
	})
	require.Equal(t, http.StatusCreated, reg.StatusCode)
	token := decodeData(t, reg)["sessionToken"].(string)

	logoutReq, err := http.NewRequest(http.MethodDelete, server.URL+"/v1/user/logout", nil)
	require.NoError(t, err)
	logoutReq.Header.Set("Authorization", "Bearer "+token)
	resp, err := http.DefaultClient.Do(logoutReq)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Reusing the dead token fails.
	again, err := http.DefaultClient.Do(logoutReq.Clone(context.Background()))
	require.NoError(t, err)
	defer again.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, again.StatusCode)
}

func TestListUsersRequiresSession(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/v1/users")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestListUsersWithCookie(t *testing.T) {
	server, _ := newTestServer(t)
	reg := postJSON(t, server.URL+"/v1/user/create", map[string]any{
		"name": "frodo", "email": "frodo@shire.example", "password": "pw123456",
	})
	cookie := sessionCookie(t, reg)
	reg.Body.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL+"/v1/users", nil)
	require.NoError(t, err)
	req.AddCookie(cookie)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := decodeData(t, resp)
	users, ok := data["users"].([]any)
	require.True(t, ok)
	assert.Len(t, users, 1)
}

func TestRecoveryEndpoints(t *testing.T) {
	server, mailer := newTestServer(t)
	reg := postJSON(t, server.URL+"/v1/user/create", map[string]any{
		"name": "frodo", "email": "frodo@shire.example", "password": "pw123456",
	})
	regData := decodeData(t, reg)
	userID := regData["user"].(map[string]any)["id"].(string)

	forget := postJSON(t, server.URL+"/v1/user/forget-password", map[string]any{"email": "frodo@shire.example"})
	require.Equal(t, http.StatusCreated, forget.StatusCode)
	forgetData := decodeData(t, forget)
	assert.Equal(t, userID, forgetData["userId"])
	require.Len(t, mailer.codes, 1)

	repeat := postJSON(t, server.URL+"/v1/user/forget-password", map[string]any{"email": "frodo@shire.example"})
	defer repeat.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, repeat.StatusCode)

	reset := postJSON(t, server.URL+"/v1/user/reset-password", map[string]any{
		"userId":   userID,
		"code":     mailer.codes[0],
		"password": "newpass99",
	})
	require.Equal(t, http.StatusCreated, reset.StatusCode)
	sessionCookie(t, reset)
	resetData := decodeData(t, reset)
	assert.NotEmpty(t, resetData["sessionToken"])

	relogin := postJSON(t, server.URL+"/v1/user/auth", map[string]any{"name": "frodo", "password": "newpass99"})
	defer relogin.Body.Close()
	assert.Equal(t, http.StatusCreated, relogin.StatusCode)
}

func TestStatusEndpoint(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Get(server.URL + "/v1/status")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := decodeData(t, resp)
	assert.Equal(t, "ok", data["status"])
}
