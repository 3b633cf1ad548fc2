package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"

	"github.com/PauloHFS/prosa/internal/config"
	"github.com/PauloHFS/prosa/internal/posts"
	"github.com/PauloHFS/prosa/internal/session"
	"github.com/PauloHFS/prosa/internal/store"
)

// newTestMux monta as rotas com um store em memória e uma sessão fixa, sem
// cookies. O mapeamento desfecho -> status é o que interessa aqui.
func newTestMux(mem *store.Memory, sess *session.Session) *http.ServeMux {
	svc := posts.NewService(mem, session.Static{Session: sess})
	mux := http.NewServeMux()
	RegisterRoutes(mux, HandlerDeps{
		Posts:  svc,
		Users:  mem,
		Config: &config.Config{Env: "test"},
	})
	return mux
}

func doRequest(t *testing.T, h http.Handler, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("invalid JSON response: %v (%s)", err, rr.Body.String())
	}
	return out
}

func TestGetPostPublic(t *testing.T) {
	mem := store.NewMemory()
	mem.SeedPost(store.Post{ID: "p1", AuthorID: "u1", Title: "Olá", Content: "<p>x</p>", Slug: "ola"})
	mux := newTestMux(mem, nil)

	rr := doRequest(t, mux, http.MethodGet, "/posts/p1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	body := decodeBody(t, rr)
	post, ok := body["post"].(map[string]any)
	if !ok {
		t.Fatalf("expected post envelope, got %v", body)
	}
	if post["id"] != "p1" || post["authorId"] != "u1" || post["slug"] != "ola" {
		t.Errorf("unexpected post payload: %v", post)
	}
}

func TestGetPostNotFound(t *testing.T) {
	mux := newTestMux(store.NewMemory(), nil)
	rr := doRequest(t, mux, http.MethodGet, "/posts/ghost", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	if body := decodeBody(t, rr); body["message"] != "Post not found" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}

func TestUpdatePostStatusMapping(t *testing.T) {
	payload := `{"newTitle":"New Title","newContent":"body"}`

	tests := []struct {
		name       string
		sess       *session.Session
		postID     string
		wantStatus int
	}{
		{"anonymous", nil, "p1", http.StatusUnauthorized},
		{"other author", &session.Session{UserID: "u2", Role: session.RoleAuthor}, "p1", http.StatusForbidden},
		{"unknown role owner", &session.Session{UserID: "u1", Role: session.RoleOther}, "p1", http.StatusForbidden},
		{"owner", &session.Session{UserID: "u1", Role: session.RoleAuthor}, "p1", http.StatusOK},
		{"admin", &session.Session{UserID: "boss", Role: session.RoleAdmin}, "p1", http.StatusOK},
		{"missing post", &session.Session{UserID: "u1", Role: session.RoleAuthor}, "ghost", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := store.NewMemory()
			mem.SeedPost(store.Post{ID: "p1", AuthorID: "u1", Title: "Old", Slug: "old"})
			mux := newTestMux(mem, tt.sess)

			rr := doRequest(t, mux, http.MethodPut, "/posts/"+tt.postID, payload)
			if rr.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d: %s", tt.wantStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestUpdatePostSuccessBody(t *testing.T) {
	mem := store.NewMemory()
	mem.SeedPost(store.Post{ID: "p1", AuthorID: "u1", Title: "Old", Slug: "old"})
	mux := newTestMux(mem, &session.Session{UserID: "u1", Role: session.RoleAuthor})

	rr := doRequest(t, mux, http.MethodPut, "/posts/p1", `{"newTitle":"Fresh Title","newContent":"x"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if body := decodeBody(t, rr); body["message"] != "Post updated" {
		t.Errorf("unexpected message: %v", body["message"])
	}

	after, _ := mem.FindPostByID(t.Context(), "p1")
	if after.Slug != "fresh-title" {
		t.Errorf("slug not re-derived: %q", after.Slug)
	}
}

func TestUpdatePostValidation(t *testing.T) {
	mem := store.NewMemory()
	mem.SeedPost(store.Post{ID: "p1", AuthorID: "u1", Title: "Old"})
	mux := newTestMux(mem, &session.Session{UserID: "u1", Role: session.RoleAuthor})

	t.Run("MissingTitle", func(t *testing.T) {
		rr := doRequest(t, mux, http.MethodPut, "/posts/p1", `{"newContent":"x"}`)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rr.Code)
		}
	})

	t.Run("ClientSentSlugRejected", func(t *testing.T) {
		// slug é derivado no servidor; campo desconhecido derruba o decode.
		rr := doRequest(t, mux, http.MethodPut, "/posts/p1", `{"newTitle":"T","newContent":"x","slug":"hack"}`)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rr.Code)
		}
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		rr := doRequest(t, mux, http.MethodPut, "/posts/p1", `{"newTitle":`)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rr.Code)
		}
	})

	after, _ := mem.FindPostByID(t.Context(), "p1")
	if after.Title != "Old" {
		t.Errorf("payload inválido não pode escrever, title = %q", after.Title)
	}
}

func TestCreatePost(t *testing.T) {
	t.Run("AsAuthor", func(t *testing.T) {
		mem := store.NewMemory()
		mux := newTestMux(mem, &session.Session{UserID: "u1", Role: session.RoleAuthor})

		rr := doRequest(t, mux, http.MethodPost, "/posts", `{"title":"Meu Post","content":"<p>oi</p>"}`)
		if rr.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
		}
		body := decodeBody(t, rr)
		post := body["post"].(map[string]any)
		if post["authorId"] != "u1" || post["slug"] != "meu-post" {
			t.Errorf("unexpected post payload: %v", post)
		}
	})

	t.Run("Anonymous", func(t *testing.T) {
		mux := newTestMux(store.NewMemory(), nil)
		rr := doRequest(t, mux, http.MethodPost, "/posts", `{"title":"x","content":"y"}`)
		if rr.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rr.Code)
		}
	})
}

func TestListPosts(t *testing.T) {
	mem := store.NewMemory()
	for _, id := range []string{"p1", "p2", "p3"} {
		mem.SeedPost(store.Post{ID: id, AuthorID: "u1", Title: "T " + id, Slug: "t-" + id})
	}
	mux := newTestMux(mem, nil)

	rr := doRequest(t, mux, http.MethodGet, "/posts?page=1&perPage=2", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := decodeBody(t, rr)
	if got := body["totalItems"].(float64); got != 3 {
		t.Errorf("expected totalItems 3, got %v", got)
	}
	if items := body["posts"].([]any); len(items) != 2 {
		t.Errorf("expected 2 posts, got %d", len(items))
	}
}

// TestSessionFlow exercita o ciclo completo com cookies de verdade:
// register -> login -> me -> create -> update -> logout.
func TestSessionFlow(t *testing.T) {
	mem := store.NewMemory()
	scsManager := scs.New()
	sessions := session.NewManager(scsManager, mem)
	svc := posts.NewService(mem, sessions)

	mux := http.NewServeMux()
	RegisterRoutes(mux, HandlerDeps{
		Posts:    svc,
		Sessions: sessions,
		Users:    mem,
		Config:   &config.Config{Env: "test"},
	})
	handler := scsManager.LoadAndSave(mux)

	rr := doRequest(t, handler, http.MethodPost, "/register", `{"email":"ana@example.com","password":"senha-forte-123"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	rr = doRequest(t, handler, http.MethodPost, "/login", `{"email":"ana@example.com","password":"senha-forte-123"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	loginBody := decodeBody(t, rr)
	if loginBody["role"] != "author" {
		t.Errorf("expected author role, got %v", loginBody["role"])
	}
	cookies := rr.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login must set a session cookie")
	}

	rr = doRequest(t, handler, http.MethodGet, "/me", "", cookies...)
	if rr.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	rr = doRequest(t, handler, http.MethodPost, "/posts", `{"title":"Post da Ana","content":"x"}`, cookies...)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	created := decodeBody(t, rr)["post"].(map[string]any)
	postID := created["id"].(string)

	rr = doRequest(t, handler, http.MethodPut, "/posts/"+postID, `{"newTitle":"Post Editado","newContent":"y"}`, cookies...)
	if rr.Code != http.StatusOK {
		t.Fatalf("update own post: expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	rr = doRequest(t, handler, http.MethodPost, "/logout", "", cookies...)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("logout: expected 204, got %d", rr.Code)
	}

	rr = doRequest(t, handler, http.MethodGet, "/me", "", cookies...)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("me after logout: expected 401, got %d", rr.Code)
	}
}

func TestMeWithoutSession(t *testing.T) {
	mem := store.NewMemory()
	scsManager := scs.New()
	sessions := session.NewManager(scsManager, mem)

	mux := http.NewServeMux()
	RegisterRoutes(mux, HandlerDeps{
		Posts:    posts.NewService(mem, sessions),
		Sessions: sessions,
		Users:    mem,
		Config:   &config.Config{Env: "test"},
	})
	handler := scsManager.LoadAndSave(mux)

	rr := doRequest(t, handler, http.MethodGet, "/me", "")
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	mem := store.NewMemory()
	scsManager := scs.New()
	sessions := session.NewManager(scsManager, mem)

	mux := http.NewServeMux()
	RegisterRoutes(mux, HandlerDeps{
		Posts:    posts.NewService(mem, sessions),
		Sessions: sessions,
		Users:    mem,
		Config:   &config.Config{Env: "test"},
	})
	handler := scsManager.LoadAndSave(mux)

	rr := doRequest(t, handler, http.MethodPost, "/login", `{"email":"ghost@example.com","password":"whatever"}`)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("unknown user: expected 401, got %d", rr.Code)
	}
	if body := decodeBody(t, rr); body["message"] != "Invalid credentials" {
		t.Errorf("unexpected message: %v", body["message"])
	}
}
