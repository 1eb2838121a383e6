package router_test

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"shelter-admin/internal/adapters/storage/memory"
	"shelter-admin/internal/domain/adopters"
	"shelter-admin/internal/domain/pets"
	"shelter-admin/internal/platform/config"
	"shelter-admin/internal/router"

	json "github.com/goccy/go-json"
)

type testEnv struct {
	ts       *httptest.Server
	client   *http.Client
	pets     pets.Repository
	adopters adopters.Repository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	conf := &config.Config{
		AppName: "shelter-admin",
		Server:  config.Server{Host: "127.0.0.1", Port: 0},
		Session: config.Session{Secret: "test-secret"},
		Admin:   config.Admin{Username: "admin", Password: "s3cret"},
		Storage: config.Storage{DataDir: t.TempDir()},
		Logger:  config.LoggerConfig{Level: "error"},
		Metrics: config.Metrics{Enabled: true},
	}

	petsRepo := memory.NewPetRepo()
	adoptersRepo := memory.NewAdopterRepo()

	ts := httptest.NewServer(router.NewRouter(router.Options{
		Config:       conf,
		PetsRepo:     petsRepo,
		AdoptersRepo: adoptersRepo,
	}))
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	client := &http.Client{
		Jar: jar,
		// Sin seguir redirects: los 302 son parte de lo que se verifica.
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &testEnv{ts: ts, client: client, pets: petsRepo, adopters: adoptersRepo}
}

func (e *testEnv) get(t *testing.T, path string) (int, string, http.Header) {
	t.Helper()

	res, err := e.client.Get(e.ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(body), res.Header
}

func (e *testEnv) postForm(t *testing.T, path string, form url.Values) (int, string, http.Header) {
	t.Helper()

	res, err := e.client.Post(e.ts.URL+path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(body), res.Header
}

func (e *testEnv) delete(t *testing.T, path string) (int, string) {
	t.Helper()

	req, err := http.NewRequest(http.MethodDelete, e.ts.URL+path, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	res, err := e.client.Do(req)
	if err != nil {
		t.Fatalf("DELETE %s: %v", path, err)
	}
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(body)
}

func (e *testEnv) login(t *testing.T) {
	t.Helper()

	st, _, h := e.postForm(t, "/login", url.Values{
		"username": {"admin"},
		"password": {"s3cret"},
	})
	if st != http.StatusFound {
		t.Fatalf("expected 302 after login, got %d", st)
	}
	if loc := h.Get("Location"); loc != "/dashboard" {
		t.Fatalf("expected redirect to /dashboard, got %q", loc)
	}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	st, body, _ := env.get(t, "/health")
	if st != http.StatusOK || body != "ok" {
		t.Fatalf("expected 200 ok, got %d %q", st, body)
	}
}

func TestRootRedirectsToLogin(t *testing.T) {
	env := newTestEnv(t)

	st, _, h := env.get(t, "/")
	if st != http.StatusFound || h.Get("Location") != "/login" {
		t.Fatalf("expected 302 to /login, got %d %q", st, h.Get("Location"))
	}
}

func TestSessionGate_RedirectsAnonymous(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/dashboard", "/pets", "/pets/new", "/adopters"} {
		st, body, h := env.get(t, path)
		if st != http.StatusFound || h.Get("Location") != "/login" {
			t.Fatalf("%s: expected 302 to /login, got %d %q", path, st, h.Get("Location"))
		}
		if strings.Contains(body, "<table>") {
			t.Fatalf("%s: gated content leaked into redirect response", path)
		}
	}
}

func TestLogin_WrongCredentials(t *testing.T) {
	env := newTestEnv(t)

	st, body, _ := env.postForm(t, "/login", url.Values{
		"username": {"admin"},
		"password": {"nope"},
	})
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", st)
	}
	if !strings.Contains(body, "Invalid credentials") {
		t.Fatalf("expected generic error message, body=%s", body)
	}

	// La sesión no quedó abierta.
	st, _, h := env.get(t, "/pets")
	if st != http.StatusFound || h.Get("Location") != "/login" {
		t.Fatalf("expected still gated after failed login, got %d", st)
	}
}

func TestLogin_SessionPersistsAcrossRequests(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	// El jar del cliente debe haber aceptado la cookie sobre HTTP plano.
	u, err := url.Parse(env.ts.URL)
	if err != nil {
		t.Fatalf("parse server url: %v", err)
	}
	if len(env.client.Jar.Cookies(u)) == 0 {
		t.Fatal("expected session cookie in jar after login")
	}

	// Y reenviarla en la siguiente petición gateada.
	st, _, _ := env.get(t, "/dashboard")
	if st != http.StatusOK {
		t.Fatalf("expected 200 on gated route after login, got %d", st)
	}
}

func TestPets_EndToEnd(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	// Alta válida: 302 al listado.
	st, _, h := env.postForm(t, "/pets/new", url.Values{
		"name": {"Mochi"},
		"type": {"cat"},
	})
	if st != http.StatusFound || h.Get("Location") != "/pets" {
		t.Fatalf("expected 302 to /pets, got %d %q", st, h.Get("Location"))
	}

	st, body, _ := env.get(t, "/pets")
	if st != http.StatusOK || !strings.Contains(body, "Mochi") {
		t.Fatalf("expected pet list with Mochi, got %d body=%s", st, body)
	}

	all, err := env.pets.List(context.Background())
	if err != nil || len(all) != 1 {
		t.Fatalf("expected 1 stored pet, got %d err=%v", len(all), err)
	}
	petID := strconv.FormatInt(all[0].ID, 10)

	// Detalle.
	st, body, _ = env.get(t, "/pets/"+petID)
	if st != http.StatusOK || !strings.Contains(body, "Mochi") {
		t.Fatalf("expected pet detail, got %d", st)
	}

	// Detalle de id desconocido: 404 con el listado re-renderizado.
	st, body, _ = env.get(t, "/pets/999")
	if st != http.StatusNotFound || !strings.Contains(body, "Pet not found.") {
		t.Fatalf("expected 404 with message, got %d body=%s", st, body)
	}

	// Borrado: JSON con success.
	st, raw := env.delete(t, "/pets/"+petID)
	if st != http.StatusOK {
		t.Fatalf("expected 200 delete, got %d", st)
	}
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(raw), &resp); err != nil || !resp.Success {
		t.Fatalf("expected success JSON, got %q err=%v", raw, err)
	}

	// Borrar de nuevo: 404 JSON.
	st, raw = env.delete(t, "/pets/"+petID)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", st)
	}
	if err := json.Unmarshal([]byte(raw), &resp); err != nil || resp.Success {
		t.Fatalf("expected failure JSON, got %q", raw)
	}

	all, _ = env.pets.List(context.Background())
	if len(all) != 0 {
		t.Fatalf("expected empty store after delete, got %d", len(all))
	}
}

func TestPets_CreateValidation(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	st, body, _ := env.postForm(t, "/pets/new", url.Values{
		"name": {""},
		"type": {"cat"},
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", st)
	}
	if !strings.Contains(body, "Name and type are required.") {
		t.Fatalf("expected inline validation message, body=%s", body)
	}

	all, _ := env.pets.List(context.Background())
	if len(all) != 0 {
		t.Fatalf("invalid create must not persist, got %d", len(all))
	}
}

func TestAdopters_EndToEnd(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	st, _, h := env.postForm(t, "/adopters/new", url.Values{
		"firstName": {"Ana"},
		"lastName":  {"Reyes"},
		"email":     {"ana@example.com"},
	})
	if st != http.StatusFound || h.Get("Location") != "/adopters" {
		t.Fatalf("expected 302 to /adopters, got %d", st)
	}

	st, body, _ := env.get(t, "/adopters")
	if st != http.StatusOK || !strings.Contains(body, "Ana") {
		t.Fatalf("expected adopter list with Ana, got %d", st)
	}

	// Campo requerido ausente.
	st, body, _ = env.postForm(t, "/adopters/new", url.Values{
		"firstName": {"Ana"},
	})
	if st != http.StatusBadRequest || !strings.Contains(body, "required") {
		t.Fatalf("expected 400 with message, got %d", st)
	}

	all, _ := env.adopters.List(context.Background())
	if len(all) != 1 {
		t.Fatalf("expected exactly 1 adopter, got %d", len(all))
	}
	adopterID := strconv.FormatInt(all[0].ID, 10)

	st, raw := env.delete(t, "/adopters/"+adopterID)
	if st != http.StatusOK || !strings.Contains(raw, `"success":true`) {
		t.Fatalf("expected delete success, got %d %q", st, raw)
	}
}

func TestDashboard(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	_, _, _ = env.postForm(t, "/pets/new", url.Values{"name": {"Mochi"}, "type": {"cat"}})

	st, body, _ := env.get(t, "/dashboard")
	if st != http.StatusOK {
		t.Fatalf("expected 200 dashboard, got %d", st)
	}
	if !strings.Contains(body, "admin") {
		t.Fatalf("expected signed-in user on dashboard, body=%s", body)
	}
	if !strings.Contains(body, "Pets: 1") {
		t.Fatalf("expected total pets on dashboard, body=%s", body)
	}
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	st, _, h := env.postForm(t, "/logout", url.Values{})
	if st != http.StatusFound || h.Get("Location") != "/login" {
		t.Fatalf("expected 302 to /login, got %d", st)
	}

	st, _, h = env.get(t, "/pets")
	if st != http.StatusFound || h.Get("Location") != "/login" {
		t.Fatalf("expected gate after logout, got %d", st)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	_, _, _ = env.get(t, "/health")

	_, _, _ = env.postForm(t, "/pets/new", url.Values{"name": {"Mochi"}, "type": {"cat"}})
	all, _ := env.pets.List(context.Background())
	if len(all) != 1 {
		t.Fatalf("expected 1 stored pet, got %d", len(all))
	}
	petID := strconv.FormatInt(all[0].ID, 10)
	_, _, _ = env.get(t, "/pets/"+petID)

	st, body, _ := env.get(t, "/metrics")
	if st != http.StatusOK {
		t.Fatalf("expected 200 metrics, got %d", st)
	}
	if !strings.Contains(body, "shelter_admin_requests_total") {
		t.Fatalf("expected request counter in metrics output")
	}

	// Las etiquetas usan el patrón de ruta, no el id crudo.
	if !strings.Contains(body, `path="/pets/{petID}"`) {
		t.Fatalf("expected templated route label in metrics output")
	}
	if strings.Contains(body, `path="/pets/`+petID+`"`) {
		t.Fatalf("raw pet id leaked into metrics labels")
	}
}
