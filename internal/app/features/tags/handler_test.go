package tags_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	tagsfeature "github.com/postdeck/postdeck/internal/app/features/tags"
	"github.com/postdeck/postdeck/internal/domain/models"
	"github.com/postdeck/postdeck/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeTagStore struct {
	createCalls int
	lastCreated models.Tag
}

func (f *fakeTagStore) Create(ctx context.Context, tag models.Tag) (models.Tag, error) {
	f.createCalls++
	f.lastCreated = tag
	tag.ID = primitive.NewObjectID()
	return tag, nil
}

func TestCreate_MissingBody(t *testing.T) {
	store := &fakeTagStore{}
	h := tagsfeature.NewHandler(store, zap.NewNop())

	req := testutil.WithIdentity(httptest.NewRequest("POST", "/api/tags", nil),
		"admin-subject", "admin@example.com")
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if store.createCalls != 0 {
		t.Errorf("missing body must not insert, got %d calls", store.createCalls)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body["error"] != "missing tag body" {
		t.Errorf("error message: got %q", body["error"])
	}
}

func TestCreate_RequiresAccount(t *testing.T) {
	store := &fakeTagStore{}
	h := tagsfeature.NewHandler(store, zap.NewNop())

	req := testutil.WithIdentity(
		testutil.NewJSONRequest(t, "POST", "/api/tags", map[string]string{"label": "evergreen"}),
		"admin-subject", "admin@example.com")
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if store.createCalls != 0 {
		t.Errorf("missing account must not insert, got %d calls", store.createCalls)
	}
}

func TestCreate_Success(t *testing.T) {
	store := &fakeTagStore{}
	h := tagsfeature.NewHandler(store, zap.NewNop())

	req := testutil.WithIdentity(
		testutil.NewJSONRequest(t, "POST", "/api/tags", map[string]string{
			"account": "brand",
			"label":   "evergreen",
			"color":   "#2e7d32",
		}),
		"admin-subject", "admin@example.com")
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if store.lastCreated.Account != "brand" {
		t.Errorf("account: got %q, want %q", store.lastCreated.Account, "brand")
	}
	if store.lastCreated.CreatedBy != "admin@example.com" {
		t.Errorf("createdBy: got %q, want the caller's email", store.lastCreated.CreatedBy)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body["insertedId"] == "" {
		t.Error("expected insertedId in response")
	}
}
