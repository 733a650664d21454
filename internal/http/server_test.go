package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MayankSaini-Byte/Study-Edge/internal/auth"
	"github.com/MayankSaini-Byte/Study-Edge/internal/config"
	"github.com/MayankSaini-Byte/Study-Edge/internal/metrics"
	"github.com/MayankSaini-Byte/Study-Edge/internal/model"
	"github.com/MayankSaini-Byte/Study-Edge/internal/repository/memstore"
	"github.com/MayankSaini-Byte/Study-Edge/internal/service"
)

// 2026-01-28 is a Wednesday.
var testNow = time.Date(2026, 1, 28, 12, 0, 0, 0, time.UTC)

type testApp struct {
	*httptest.Server
	store *memstore.Store
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	return newTestAppWith(t, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
}

// newTestAppWith builds the app around a custom logger and, when todos is
// non-nil, a replacement todo store.
func newTestAppWith(t *testing.T, logger *slog.Logger, todos func(*memstore.Store) service.TodoStore) *testApp {
	t.Helper()
	cfg := config.Config{
		AllowedOrigins: []string{"http://localhost:5173"},
		SessionTTL:     auth.DefaultSessionTTL,
	}
	clock := func() time.Time { return testNow }
	store := memstore.New().WithClock(clock)
	menu := service.NewMessMenu(store, time.UTC, clock)
	if _, err := menu.Seed(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	var todoStore service.TodoStore = store
	if todos != nil {
		todoStore = todos(store)
	}
	server := NewServer(
		cfg,
		logger,
		metrics.New(),
		auth.NewAuthority(store, auth.WithClock(clock), auth.WithTTL(cfg.SessionTTL)),
		service.NewAssignments(store),
		service.NewTodos(todoStore),
		menu,
	)
	app := httptest.NewServer(server.Router())
	t.Cleanup(app.Close)
	return &testApp{Server: app, store: store}
}

func (a *testApp) do(t *testing.T, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode error: %v", err)
		}
	}
	req, err := http.NewRequest(method, a.URL+path, &buf)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("http error: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (a *testApp) login(t *testing.T, name, scholarNo string) (string, userSummary) {
	t.Helper()
	resp := a.do(t, http.MethodPost, "/auth/login", "", map[string]string{"name": name, "scholar_no": scholarNo})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login expected 200, got %d", resp.StatusCode)
	}
	var body struct {
		Success bool        `json:"success"`
		User    userSummary `json:"user"`
	}
	decode(t, resp, &body)
	if !body.Success {
		t.Fatalf("expected success flag on login")
	}
	cookie := findCookie(resp, sessionCookieName)
	if cookie == nil || cookie.Value == "" {
		t.Fatalf("expected session cookie on login")
	}
	return cookie.Value, body.User
}

func (a *testApp) loginAdmin(t *testing.T, name, scholarNo string) string {
	t.Helper()
	token, _ := a.login(t, name, scholarNo)
	if _, err := a.store.SetUserRole(context.Background(), scholarNo, model.RoleAdmin); err != nil {
		t.Fatalf("promote admin: %v", err)
	}
	return token
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode error: %v", err)
	}
}

func expectError(t *testing.T, resp *http.Response, status int, code string) {
	t.Helper()
	if resp.StatusCode != status {
		t.Fatalf("expected %d, got %d", status, resp.StatusCode)
	}
	var body map[string]string
	decode(t, resp, &body)
	if body["error"] != code {
		t.Fatalf("expected error %q, got %q", code, body["error"])
	}
}

func expectNoCache(t *testing.T, resp *http.Response) {
	t.Helper()
	if got := resp.Header.Get("Cache-Control"); got != "no-store, no-cache, must-revalidate, max-age=0" {
		t.Fatalf("unexpected Cache-Control %q", got)
	}
	if resp.Header.Get("Pragma") != "no-cache" || resp.Header.Get("Expires") != "0" {
		t.Fatalf("expected Pragma and Expires no-cache headers")
	}
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestLoginSetsSessionCookie(t *testing.T) {
	app := newTestApp(t)

	resp := app.do(t, http.MethodPost, "/auth/login", "", map[string]string{"name": "Alice", "scholar_no": "S1"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	cookie := findCookie(resp, sessionCookieName)
	if cookie == nil {
		t.Fatalf("expected session cookie")
	}
	if !cookie.HttpOnly || cookie.SameSite != http.SameSiteLaxMode || cookie.Secure {
		t.Fatalf("unexpected cookie flags %+v", cookie)
	}
	if cookie.MaxAge != 7*24*60*60 || cookie.Path != "/" {
		t.Fatalf("expected 7 day root cookie, got max-age=%d path=%q", cookie.MaxAge, cookie.Path)
	}

	var body struct {
		Success bool        `json:"success"`
		User    userSummary `json:"user"`
	}
	decode(t, resp, &body)
	if !body.Success || body.User.ID != 1 || body.User.Role != "student" || body.User.ScholarNo != "S1" {
		t.Fatalf("unexpected login body %+v", body)
	}
}

func TestLoginSameScholarRenames(t *testing.T) {
	app := newTestApp(t)

	firstToken, first := app.login(t, "Alice", "S1")
	secondToken, second := app.login(t, "Alice B", "S1")
	if first.ID != 1 || second.ID != 1 || second.Name != "Alice B" {
		t.Fatalf("expected same user renamed, got %+v then %+v", first, second)
	}
	if firstToken == secondToken {
		t.Fatalf("expected a fresh token per login")
	}

	for _, token := range []string{firstToken, secondToken} {
		resp := app.do(t, http.MethodGet, "/me", token, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected both sessions valid, got %d", resp.StatusCode)
		}
	}
}

func TestLoginValidation(t *testing.T) {
	app := newTestApp(t)

	expectError(t, app.do(t, http.MethodPost, "/auth/login", "", "{not json"), http.StatusBadRequest, "invalid_request")
	expectError(t, app.do(t, http.MethodPost, "/auth/login", "", map[string]string{"name": "Alice"}), http.StatusBadRequest, "missing_credentials")
	expectError(t, app.do(t, http.MethodPost, "/auth/login", "", map[string]string{"name": " ", "scholar_no": "S1"}), http.StatusBadRequest, "missing_credentials")
}

func TestMeRequiresSession(t *testing.T) {
	app := newTestApp(t)

	expectError(t, app.do(t, http.MethodGet, "/me", "", nil), http.StatusUnauthorized, "not_authenticated")
	expectError(t, app.do(t, http.MethodGet, "/me", "bogus", nil), http.StatusUnauthorized, "invalid_session")

	token, _ := app.login(t, "Alice", "S1")
	resp := app.do(t, http.MethodGet, "/me", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	expectNoCache(t, resp)
	var body struct {
		User userSummary `json:"user"`
	}
	decode(t, resp, &body)
	if body.User.Name != "Alice" || body.User.Role != "student" {
		t.Fatalf("unexpected me body %+v", body)
	}
}

func TestExpiredSessionRejected(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	user, _, err := app.store.UpsertUser(ctx, "Alice", "S1")
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := app.store.CreateSession(ctx, model.Session{Token: "stale", UserID: user.ID, ExpiresAt: testNow}); err != nil {
		t.Fatalf("create session: %v", err)
	}
	expectError(t, app.do(t, http.MethodGet, "/me", "stale", nil), http.StatusUnauthorized, "invalid_session")
}

func TestLogout(t *testing.T) {
	app := newTestApp(t)
	token, _ := app.login(t, "Alice", "S1")

	resp := app.do(t, http.MethodPost, "/auth/logout", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	cookie := findCookie(resp, sessionCookieName)
	if cookie == nil || cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Fatalf("expected cookie to be cleared, got %+v", cookie)
	}
	var body map[string]bool
	decode(t, resp, &body)
	if !body["success"] {
		t.Fatalf("expected success on logout")
	}

	expectError(t, app.do(t, http.MethodGet, "/me", token, nil), http.StatusUnauthorized, "invalid_session")

	for _, again := range []string{token, ""} {
		resp = app.do(t, http.MethodPost, "/auth/logout", again, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected repeated logout to succeed, got %d", resp.StatusCode)
		}
		if c := findCookie(resp, sessionCookieName); c == nil || c.MaxAge >= 0 {
			t.Fatalf("expected cookie cleared on repeated logout")
		}
	}
}

func TestAssignmentsCRUD(t *testing.T) {
	app := newTestApp(t)
	token, _ := app.login(t, "Alice", "S1")

	expectError(t, app.do(t, http.MethodGet, "/assignments", "", nil), http.StatusUnauthorized, "not_authenticated")

	resp := app.do(t, http.MethodPost, "/assignments", token, map[string]interface{}{
		"title":    "Lab report",
		"due_date": "2026-02-01",
		"pdf_file": "ignored.pdf",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var created struct {
		Assignment assignmentResponse `json:"assignment"`
	}
	decode(t, resp, &created)
	a := created.Assignment
	if a.ID != 1 || a.Status != "pending" || a.DueDate == nil || *a.DueDate != "2026-02-01T00:00:00Z" {
		t.Fatalf("unexpected assignment %+v", a)
	}

	resp = app.do(t, http.MethodGet, "/assignments", token, nil)
	expectNoCache(t, resp)
	var list struct {
		Assignments []assignmentResponse `json:"assignments"`
	}
	decode(t, resp, &list)
	if len(list.Assignments) != 1 {
		t.Fatalf("expected 1 assignment, got %d", len(list.Assignments))
	}

	path := "/assignments/" + strconv.FormatInt(a.ID, 10)
	resp = app.do(t, http.MethodPatch, path, token, map[string]string{"status": "completed"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var updated struct {
		Assignment assignmentResponse `json:"assignment"`
	}
	decode(t, resp, &updated)
	if updated.Assignment.Status != "completed" || updated.Assignment.Title != "Lab report" {
		t.Fatalf("unexpected update %+v", updated.Assignment)
	}

	expectError(t, app.do(t, http.MethodPatch, path, token, map[string]string{"status": "done"}), http.StatusBadRequest, "invalid_status")
	expectError(t, app.do(t, http.MethodPatch, path, token, map[string]string{"due_date": "soon"}), http.StatusBadRequest, "invalid_due_date")
	expectError(t, app.do(t, http.MethodPatch, "/assignments/abc", token, map[string]string{"status": "pending"}), http.StatusBadRequest, "invalid_id")
	expectError(t, app.do(t, http.MethodPost, "/assignments", token, map[string]string{"title": ""}), http.StatusBadRequest, "invalid_request")

	resp = app.do(t, http.MethodDelete, path, token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	expectError(t, app.do(t, http.MethodDelete, path, token, nil), http.StatusNotFound, "not_found")
}

func TestAssignmentOwnerIsolation(t *testing.T) {
	app := newTestApp(t)
	alice, _ := app.login(t, "Alice", "S1")
	bob, _ := app.login(t, "Bob", "S2")

	resp := app.do(t, http.MethodPost, "/assignments", alice, map[string]string{"title": "Essay"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var list struct {
		Assignments []assignmentResponse `json:"assignments"`
	}
	decode(t, app.do(t, http.MethodGet, "/assignments", bob, nil), &list)
	if len(list.Assignments) != 0 {
		t.Fatalf("expected bob to see no assignments, got %d", len(list.Assignments))
	}

	expectError(t, app.do(t, http.MethodPatch, "/assignments/1", bob, map[string]string{"status": "completed"}), http.StatusNotFound, "not_found")
	expectError(t, app.do(t, http.MethodPatch, "/assignments/999", bob, map[string]string{"status": "completed"}), http.StatusNotFound, "not_found")
	expectError(t, app.do(t, http.MethodDelete, "/assignments/1", bob, nil), http.StatusNotFound, "not_found")
}

func TestTodoScenario(t *testing.T) {
	app := newTestApp(t)
	alice, user := app.login(t, "Alice", "S1")
	if user.ID != 1 || user.Role != "student" {
		t.Fatalf("expected student 1, got %+v", user)
	}
	_, renamed := app.login(t, "Alice B", "S1")
	if renamed.ID != 1 || renamed.Name != "Alice B" {
		t.Fatalf("expected rename of user 1, got %+v", renamed)
	}

	resp := app.do(t, http.MethodPost, "/todos", alice, map[string]string{"title": "Buy milk"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var created struct {
		Todo todoResponse `json:"todo"`
	}
	decode(t, resp, &created)
	if created.Todo.ID != 1 || created.Todo.Completed {
		t.Fatalf("expected todo 1 not completed, got %+v", created.Todo)
	}

	bob, other := app.login(t, "Bob", "S2")
	if other.ID != 2 {
		t.Fatalf("expected second user id 2, got %d", other.ID)
	}
	expectError(t, app.do(t, http.MethodPatch, "/todos/1", bob, map[string]bool{"completed": true}), http.StatusNotFound, "not_found")

	resp = app.do(t, http.MethodPatch, "/todos/1", alice, map[string]bool{"completed": true})
	var updated struct {
		Todo todoResponse `json:"todo"`
	}
	decode(t, resp, &updated)
	if !updated.Todo.Completed {
		t.Fatalf("expected owner update to succeed, got %+v", updated.Todo)
	}

	resp = app.do(t, http.MethodGet, "/todos", alice, nil)
	expectNoCache(t, resp)
	var list struct {
		Todos []todoResponse `json:"todos"`
	}
	decode(t, resp, &list)
	if len(list.Todos) != 1 || !list.Todos[0].Completed {
		t.Fatalf("unexpected todo list %+v", list.Todos)
	}

	expectError(t, app.do(t, http.MethodDelete, "/todos/1", bob, nil), http.StatusNotFound, "not_found")
	resp = app.do(t, http.MethodDelete, "/todos/1", alice, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestMessMenuRead(t *testing.T) {
	app := newTestApp(t)

	resp := app.do(t, http.MethodGet, "/mess-menu?day=today", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	expectNoCache(t, resp)
	var body struct {
		Menu *messMenuResponse `json:"menu"`
	}
	decode(t, resp, &body)
	if body.Menu == nil || body.Menu.Day != "wednesday" || body.Menu.Dinner != "Veg Biryani" {
		t.Fatalf("expected wednesday menu, got %+v", body.Menu)
	}

	body.Menu = nil
	decode(t, app.do(t, http.MethodGet, "/mess-menu", "", nil), &body)
	if body.Menu == nil || body.Menu.Day != "wednesday" {
		t.Fatalf("expected default day to be today, got %+v", body.Menu)
	}

	decode(t, app.do(t, http.MethodGet, "/mess-menu?day=FRIDAY", "", nil), &body)
	if body.Menu == nil || body.Menu.Day != "friday" {
		t.Fatalf("expected friday menu, got %+v", body.Menu)
	}

	resp = app.do(t, http.MethodGet, "/mess-menu?day=funday", "", nil)
	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || strings.TrimSpace(string(raw)) != `{"menu":null}` {
		t.Fatalf("expected soft miss, got %d %s", resp.StatusCode, raw)
	}

	resp = app.do(t, http.MethodGet, "/mess-menu/week", "", nil)
	expectNoCache(t, resp)
	var week struct {
		Menus []messMenuResponse `json:"menus"`
	}
	decode(t, resp, &week)
	if len(week.Menus) != 7 || week.Menus[0].Day != "monday" || week.Menus[6].Day != "sunday" {
		t.Fatalf("unexpected week %+v", week.Menus)
	}
}

func TestMessMenuUpdateRequiresAdmin(t *testing.T) {
	app := newTestApp(t)
	student, _ := app.login(t, "Alice", "S1")
	admin := app.loginAdmin(t, "Warden", "A1")

	patch := map[string]string{"lunch": "Biryani"}
	expectError(t, app.do(t, http.MethodPatch, "/mess-menu/monday", "", patch), http.StatusUnauthorized, "not_authenticated")
	expectError(t, app.do(t, http.MethodPatch, "/mess-menu/monday", student, patch), http.StatusForbidden, "admin_required")

	resp := app.do(t, http.MethodPatch, "/mess-menu/Monday", admin, patch)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body struct {
		Menu messMenuResponse `json:"menu"`
	}
	decode(t, resp, &body)
	if body.Menu.Lunch != "Biryani" || body.Menu.Breakfast != "Poha, Tea" || body.Menu.Dinner != "Rajma, Rice, Roti" {
		t.Fatalf("expected only lunch to change, got %+v", body.Menu)
	}

	resp = app.do(t, http.MethodPatch, "/mess-menu/monday", admin, map[string]string{"tea_time": "Masala Chai"})
	decode(t, resp, &body)
	if body.Menu.TeaTime == nil || *body.Menu.TeaTime != "Masala Chai" || body.Menu.Lunch != "Biryani" {
		t.Fatalf("expected tea time update, got %+v", body.Menu)
	}

	expectError(t, app.do(t, http.MethodPatch, "/mess-menu/funday", admin, patch), http.StatusNotFound, "not_found")
}

func TestCORSPreflight(t *testing.T) {
	app := newTestApp(t)

	req, _ := http.NewRequest(http.MethodOptions, app.URL+"/todos", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("preflight error: %v", err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("expected allowed origin echoed, got %q", got)
	}
	if resp.Header.Get("Access-Control-Allow-Credentials") != "true" {
		t.Fatalf("expected credentials to be allowed")
	}

	req, _ = http.NewRequest(http.MethodOptions, app.URL+"/todos", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("preflight error: %v", err)
	}
	defer resp.Body.Close()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected unknown origin to be refused, got %q", got)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	app := newTestApp(t)

	var root map[string]string
	decode(t, app.do(t, http.MethodGet, "/", "", nil), &root)
	if root["message"] != "StudyEdge API is running" {
		t.Fatalf("unexpected root body %v", root)
	}

	var health map[string]string
	decode(t, app.do(t, http.MethodGet, "/health", "", nil), &health)
	if health["status"] != "ok" {
		t.Fatalf("unexpected health body %v", health)
	}

	app.login(t, "Alice", "S1")
	resp := app.do(t, http.MethodGet, "/metrics", "", nil)
	raw, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(raw), `studyedge_logins_total{outcome="created"} 1`) {
		t.Fatalf("expected login counter in metrics output")
	}
	if !strings.Contains(string(raw), `route="/auth/login"`) {
		t.Fatalf("expected request counter labelled by route")
	}
}

type failingTodoStore struct {
	*memstore.Store
	err error
}

func (f failingTodoStore) ListTodos(context.Context, int64) ([]model.Todo, error) {
	return nil, f.err
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestStoreFailureReturnsBareServerError(t *testing.T) {
	var logs lockedBuffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	app := newTestAppWith(t, logger, func(store *memstore.Store) service.TodoStore {
		return failingTodoStore{Store: store, err: errors.New("pq: connection reset")}
	})
	token, _ := app.login(t, "Alice", "S1")

	resp := app.do(t, http.MethodGet, "/todos", token, nil)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	raw, _ := io.ReadAll(resp.Body)
	if strings.TrimSpace(string(raw)) != `{"error":"server_error"}` {
		t.Fatalf("unexpected body %s", raw)
	}
	if strings.Contains(string(raw), "connection reset") {
		t.Fatalf("store error leaked into response")
	}
	if !strings.Contains(logs.String(), "connection reset") {
		t.Fatalf("expected store error in server log")
	}
}

func TestRequestLogRecordsClientAddress(t *testing.T) {
	var logs lockedBuffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	app := newTestAppWith(t, logger, nil)

	req, _ := http.NewRequest(http.MethodGet, app.URL+"/health", nil)
	req.Header.Set("X-Real-IP", "203.0.113.7")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("http error: %v", err)
	}
	resp.Body.Close()

	if !strings.Contains(logs.String(), "remote_addr=203.0.113.7") {
		t.Fatalf("expected forwarded client address in request log, got %q", logs.String())
	}
}

func TestAssignmentDueDateSkippedWhenNullOrEmpty(t *testing.T) {
	app := newTestApp(t)
	token, _ := app.login(t, "Alice", "S1")

	resp := app.do(t, http.MethodPost, "/assignments", token, map[string]string{"title": "Essay", "due_date": "2026-02-01"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	for _, body := range []string{`{"due_date": null}`, `{"due_date": ""}`} {
		resp = app.do(t, http.MethodPatch, "/assignments/1", token, body)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d", body, resp.StatusCode)
		}
		var updated struct {
			Assignment assignmentResponse `json:"assignment"`
		}
		decode(t, resp, &updated)
		if updated.Assignment.DueDate == nil || *updated.Assignment.DueDate != "2026-02-01T00:00:00Z" {
			t.Fatalf("expected due date kept for %s, got %v", body, updated.Assignment.DueDate)
		}
	}
}
