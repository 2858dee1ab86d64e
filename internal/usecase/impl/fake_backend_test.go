package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"sitesnap/internal/infra/api"
	"sitesnap/internal/infra/resilience"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type doc = map[string]any

// fakeAPI is an in-memory stand-in for the REST backend. Documents are kept
// as loose maps so responses look like the real wire format.
type fakeAPI struct {
	mu sync.Mutex

	user       doc
	sellers    map[string]doc
	businesses []doc
	categories []doc
	attributes []doc
	products   []doc
	analytics  []doc

	password      string
	loginToken    string
	registerToken string
	rejectMe      bool
	failAnalytics bool
	failBusiness  bool
	nextID        int
	calls         map[string]int
	lastBody      map[string]doc
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		user:       doc{"_id": "user-1", "email": "ama@example.com", "role": "seller"},
		password:   "secret",
		loginToken: "tok-login",
		sellers:    map[string]doc{},
		businesses: []doc{},
		categories: []doc{},
		attributes: []doc{},
		products:   []doc{},
		analytics:  []doc{},
		calls:      map[string]int{},
		lastBody:   map[string]doc{},
	}
}

// withSeller links the user to an existing seller and business.
func (f *fakeAPI) withSeller(id, name string) *fakeAPI {
	f.sellers[id] = doc{"_id": id, "name": name, "phone_number": "+233 20 123 4567"}
	f.businesses = append(f.businesses, doc{"_id": "biz-" + id, "seller_id": id, "business_name": name + " Shop", "tagline": "Handmade", "template_id": 1})
	f.user["seller_id"] = doc{"_id": id, "name": name}

	return f
}

func (f *fakeAPI) callCount(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls[key]
}

func (f *fakeAPI) body(key string) doc {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.lastBody[key]
}

func (f *fakeAPI) id(prefix string) string {
	f.nextID++

	return fmt.Sprintf("%s-%d", prefix, f.nextID)
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, _ *http.Request) {
		if f.rejectMe {
			replyError(w, http.StatusUnauthorized, "Token expired")

			return
		}
		reply(w, http.StatusOK, f.user)
	})
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		body := f.record(r)
		if body["password"] != f.password {
			replyError(w, http.StatusUnauthorized, "Invalid credentials")

			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(doc{"success": true, "token": f.loginToken, "user": f.user})
	})
	mux.HandleFunc("POST /api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		body := f.record(r)
		user := doc{"_id": f.id("user"), "email": body["email"], "role": "seller"}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(doc{"success": true, "token": f.registerToken, "user": user})
	})

	mux.HandleFunc("GET /api/sellers/{id}", func(w http.ResponseWriter, r *http.Request) {
		seller, ok := f.sellers[r.PathValue("id")]
		if !ok {
			replyError(w, http.StatusNotFound, "Seller not found")

			return
		}
		reply(w, http.StatusOK, seller)
	})
	mux.HandleFunc("POST /api/sellers", func(w http.ResponseWriter, r *http.Request) {
		body := f.record(r)
		body["_id"] = f.id("seller")
		f.sellers[body["_id"].(string)] = body
		f.user["seller_id"] = body["_id"]
		reply(w, http.StatusCreated, body)
	})
	mux.HandleFunc("PUT /api/sellers/{id}", func(w http.ResponseWriter, r *http.Request) {
		body := f.record(r)
		seller := f.sellers[r.PathValue("id")]
		for k, v := range body {
			seller[k] = v
		}
		reply(w, http.StatusOK, seller)
	})

	mux.HandleFunc("GET /api/businesses/seller/{id}", func(w http.ResponseWriter, r *http.Request) {
		out := []doc{}
		for _, b := range f.businesses {
			if b["seller_id"] == r.PathValue("id") {
				out = append(out, b)
			}
		}
		reply(w, http.StatusOK, out)
	})
	mux.HandleFunc("POST /api/businesses", func(w http.ResponseWriter, r *http.Request) {
		body := f.record(r)
		body["_id"] = f.id("biz")
		f.businesses = append(f.businesses, body)
		reply(w, http.StatusCreated, body)
	})
	mux.HandleFunc("PUT /api/businesses/{id}", func(w http.ResponseWriter, r *http.Request) {
		body := f.record(r)
		if f.failBusiness {
			replyError(w, http.StatusBadRequest, "Business type is not allowed")

			return
		}
		for _, b := range f.businesses {
			if b["_id"] == r.PathValue("id") {
				for k, v := range body {
					b[k] = v
				}
				reply(w, http.StatusOK, b)

				return
			}
		}
		replyError(w, http.StatusNotFound, "Business not found")
	})

	mux.HandleFunc("GET /api/categories", func(w http.ResponseWriter, _ *http.Request) {
		reply(w, http.StatusOK, doc{"categories": f.categories})
	})
	mux.HandleFunc("POST /api/categories", func(w http.ResponseWriter, r *http.Request) {
		body := f.record(r)
		body["_id"] = f.id("cat")
		f.categories = append(f.categories, body)
		reply(w, http.StatusCreated, body)
	})

	mux.HandleFunc("GET /api/attributes", func(w http.ResponseWriter, _ *http.Request) {
		reply(w, http.StatusOK, f.attributes)
	})
	mux.HandleFunc("POST /api/attributes", func(w http.ResponseWriter, r *http.Request) {
		body := f.record(r)
		body["_id"] = f.id("attr")
		f.attributes = append(f.attributes, body)
		reply(w, http.StatusCreated, body)
	})

	mux.HandleFunc("GET /api/products", func(w http.ResponseWriter, _ *http.Request) {
		reply(w, http.StatusOK, f.products)
	})
	mux.HandleFunc("POST /api/products", func(w http.ResponseWriter, r *http.Request) {
		body := f.record(r)
		body["_id"] = f.id("prod")
		f.products = append(f.products, body)
		reply(w, http.StatusCreated, body)
	})
	mux.HandleFunc("PUT /api/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		body := f.record(r)
		for _, p := range f.products {
			if p["_id"] == r.PathValue("id") {
				for k, v := range body {
					if k == "imagesToKeep" {
						p["images"] = v

						continue
					}
					p[k] = v
				}
				reply(w, http.StatusOK, doc{"product": p})

				return
			}
		}
		replyError(w, http.StatusNotFound, "Product not found")
	})

	mux.HandleFunc("GET /api/analytics", func(w http.ResponseWriter, _ *http.Request) {
		if f.failAnalytics {
			replyError(w, http.StatusInternalServerError, "")

			return
		}
		reply(w, http.StatusOK, f.analytics)
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		f.calls[r.Method+" "+r.URL.Path]++
		mux.ServeHTTP(w, r)
	})
}

// record decodes a JSON body and remembers it. Caller holds the lock.
func (f *fakeAPI) record(r *http.Request) doc {
	body := doc{}
	_ = json.NewDecoder(r.Body).Decode(&body)
	f.lastBody[r.Method+" "+r.URL.Path] = body

	copied := doc{}
	for k, v := range body {
		copied[k] = v
	}

	return copied
}

func reply(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(doc{"success": status < 300, "data": data})
}

func replyError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(doc{"success": false, "message": message})
}

type staticTokens struct{}

func (staticTokens) Token(context.Context) (string, error) { return "tok-test", nil }
func (staticTokens) Clear(context.Context) error           { return nil }

// remoteFixtures holds all test dependencies for the network catalog.
type remoteFixtures struct {
	api     *fakeAPI
	server  *httptest.Server
	session *Session
	service *remoteCatalogService
}

func createTestRemoteCatalog(t *testing.T, fake *fakeAPI) remoteFixtures {
	t.Helper()

	server := httptest.NewServer(fake.handler())
	t.Cleanup(server.Close)

	breaker := resilience.DefaultConfig("backend-test")
	client := api.NewClient(api.Config{BaseURL: server.URL, Timeout: 2 * time.Second, Breaker: breaker}, staticTokens{}, newDiscardLogger())

	session := NewSession(client, newDiscardLogger())
	svc := NewRemoteCatalogService(client, session, newDiscardLogger()).(*remoteCatalogService)
	svc.now = func() time.Time { return fixedNow }

	return remoteFixtures{
		api:     fake,
		server:  server,
		session: session,
		service: svc,
	}
}

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
