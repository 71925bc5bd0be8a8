package ingest_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/postdeck/postdeck/internal/app/system/ingest"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestGuard_OpenWhenNoKeyConfigured(t *testing.T) {
	called := false
	req := httptest.NewRequest("POST", "/api/posts", nil)
	rec := httptest.NewRecorder()

	ingest.Guard("", zap.NewNop())(okHandler(&called)).ServeHTTP(rec, req)

	if !called {
		t.Fatal("expected pass-through with no key configured")
	}
}

func TestGuard_EnforcesConfiguredKey(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("automation-key"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash key: %v", err)
	}
	guard := ingest.Guard(string(hash), zap.NewNop())

	t.Run("missing key", func(t *testing.T) {
		called := false
		rec := httptest.NewRecorder()
		guard(okHandler(&called)).ServeHTTP(rec, httptest.NewRequest("POST", "/api/posts", nil))

		if called {
			t.Error("handler should not run without a key")
		}
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		called := false
		req := httptest.NewRequest("POST", "/api/posts", nil)
		req.Header.Set(ingest.KeyHeader, "wrong")
		rec := httptest.NewRecorder()
		guard(okHandler(&called)).ServeHTTP(rec, req)

		if called {
			t.Error("handler should not run with a wrong key")
		}
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
		}
	})

	t.Run("correct key", func(t *testing.T) {
		called := false
		req := httptest.NewRequest("POST", "/api/posts", nil)
		req.Header.Set(ingest.KeyHeader, "automation-key")
		rec := httptest.NewRecorder()
		guard(okHandler(&called)).ServeHTTP(rec, req)

		if !called {
			t.Fatal("expected handler to run with the correct key")
		}
	})
}
