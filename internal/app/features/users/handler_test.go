package users_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	usersfeature "github.com/postdeck/postdeck/internal/app/features/users"
	userstore "github.com/postdeck/postdeck/internal/app/store/users"
	"github.com/postdeck/postdeck/internal/domain/models"
	"github.com/postdeck/postdeck/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"net/http/httptest"
)

// fakeDirectory records calls and returns canned results.
type fakeDirectory struct {
	records map[string]*models.User

	createCalls  int
	createErr    error
	lastCreated  models.User
	approveCalls int
	approveID    primitive.ObjectID
	approveBy    string
	approveMatch int64
	pending      []models.User
}

func (f *fakeDirectory) Create(ctx context.Context, u models.User) (models.User, error) {
	f.createCalls++
	f.lastCreated = u
	if f.createErr != nil {
		return models.User{}, f.createErr
	}
	u.ID = primitive.NewObjectID()
	u.Status = models.StatusPending
	u.CreatedAt = time.Now().UTC()
	return u, nil
}

func (f *fakeDirectory) GetBySubject(ctx context.Context, subjectID string) (*models.User, error) {
	u, ok := f.records[subjectID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return u, nil
}

func (f *fakeDirectory) ListPending(ctx context.Context) ([]models.User, error) {
	return f.pending, nil
}

func (f *fakeDirectory) Approve(ctx context.Context, id primitive.ObjectID, approverEmail string) (int64, int64, error) {
	f.approveCalls++
	f.approveID = id
	f.approveBy = approverEmail
	return f.approveMatch, f.approveMatch, nil
}

func newHandler(dir *fakeDirectory) *usersfeature.Handler {
	return usersfeature.NewHandler(dir, zap.NewNop())
}

func TestRequestAccess_InvalidRole(t *testing.T) {
	dir := &fakeDirectory{}
	h := newHandler(dir)

	req := testutil.WithIdentity(
		testutil.NewJSONRequest(t, "POST", "/api/users", map[string]string{"role": "overlord"}),
		"subject-1", "user@example.com")
	rec := httptest.NewRecorder()

	h.RequestAccess(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if dir.createCalls != 0 {
		t.Errorf("invalid role must not create a record, got %d calls", dir.createCalls)
	}
}

func TestRequestAccess_Duplicate(t *testing.T) {
	dir := &fakeDirectory{createErr: userstore.ErrDuplicateSubject}
	h := newHandler(dir)

	req := testutil.WithIdentity(
		testutil.NewJSONRequest(t, "POST", "/api/users", map[string]string{"role": "creator"}),
		"subject-1", "user@example.com")
	rec := httptest.NewRecorder()

	h.RequestAccess(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestRequestAccess_Success(t *testing.T) {
	dir := &fakeDirectory{}
	h := newHandler(dir)

	req := testutil.WithIdentity(
		testutil.NewJSONRequest(t, "POST", "/api/users", map[string]string{"role": "publisher"}),
		"subject-7", "pub@example.com")
	rec := httptest.NewRecorder()

	h.RequestAccess(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusCreated)
	}
	if dir.lastCreated.SubjectID != "subject-7" {
		t.Errorf("subject: got %q, want %q", dir.lastCreated.SubjectID, "subject-7")
	}
	if dir.lastCreated.RequestedRole != models.RolePublisher {
		t.Errorf("requested role: got %q, want %q", dir.lastCreated.RequestedRole, models.RolePublisher)
	}

	var body struct {
		Message    string `json:"message"`
		InsertedID string `json:"insertedId"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body.InsertedID == "" {
		t.Error("expected insertedId in response")
	}
}

func TestApprove_MalformedID(t *testing.T) {
	dir := &fakeDirectory{}
	h := newHandler(dir)

	req := testutil.WithChiURLParam(
		testutil.WithIdentity(httptest.NewRequest("PATCH", "/api/access-requests/nope/approve", nil),
			"admin-subject", "admin@example.com"),
		"id", "not-an-object-id")
	rec := httptest.NewRecorder()

	h.Approve(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if dir.approveCalls != 0 {
		t.Errorf("malformed id must not reach the store, got %d calls", dir.approveCalls)
	}
}

func TestApprove_Success(t *testing.T) {
	dir := &fakeDirectory{approveMatch: 1}
	h := newHandler(dir)

	id := primitive.NewObjectID()
	req := testutil.WithChiURLParam(
		testutil.WithIdentity(httptest.NewRequest("PATCH", "/api/access-requests/"+id.Hex()+"/approve", nil),
			"admin-subject", "admin@example.com"),
		"id", id.Hex())
	rec := httptest.NewRecorder()

	h.Approve(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if dir.approveID != id {
		t.Errorf("approve id: got %s, want %s", dir.approveID.Hex(), id.Hex())
	}
	if dir.approveBy != "admin@example.com" {
		t.Errorf("approver: got %q, want %q", dir.approveBy, "admin@example.com")
	}

	var body map[string]int64
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body["matchedCount"] != 1 {
		t.Errorf("matchedCount: got %d, want 1", body["matchedCount"])
	}
}

func TestApprove_NotFound(t *testing.T) {
	dir := &fakeDirectory{approveMatch: 0}
	h := newHandler(dir)

	id := primitive.NewObjectID()
	req := testutil.WithChiURLParam(
		testutil.WithIdentity(httptest.NewRequest("PATCH", "/api/access-requests/"+id.Hex()+"/approve", nil),
			"admin-subject", "admin@example.com"),
		"id", id.Hex())
	rec := httptest.NewRecorder()

	h.Approve(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestMe_NoRecord(t *testing.T) {
	dir := &fakeDirectory{}
	h := newHandler(dir)

	req := testutil.WithIdentity(httptest.NewRequest("GET", "/api/users/me", nil),
		"new-subject", "new@example.com")
	rec := httptest.NewRecorder()

	h.Me(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}

	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body.Status != "none" {
		t.Errorf("status field: got %q, want %q", body.Status, "none")
	}
	if body.Message == "" {
		t.Error("expected a message pointing the caller at the access request flow")
	}
}

func TestMe_PendingRecord(t *testing.T) {
	dir := &fakeDirectory{records: map[string]*models.User{
		"subject-1": {
			SubjectID:     "subject-1",
			Email:         "user@example.com",
			RequestedRole: models.RoleCreator,
			CreatedAt:     time.Now().UTC(),
		},
	}}
	h := newHandler(dir)

	req := testutil.WithIdentity(httptest.NewRequest("GET", "/api/users/me", nil),
		"subject-1", "user@example.com")
	rec := httptest.NewRecorder()

	h.Me(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var body struct {
		Email         string `json:"email"`
		Status        string `json:"status"`
		RequestedRole string `json:"requestedRole"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body.Status != models.StatusPending {
		t.Errorf("status defaults to pending, got %q", body.Status)
	}
	if body.RequestedRole != models.RoleCreator {
		t.Errorf("requestedRole: got %q", body.RequestedRole)
	}
}

func TestListPending_ReturnsRecords(t *testing.T) {
	dir := &fakeDirectory{pending: []models.User{
		{SubjectID: "b", Status: models.StatusPending},
		{SubjectID: "a", Status: models.StatusPending},
	}}
	h := newHandler(dir)

	req := testutil.WithIdentity(httptest.NewRequest("GET", "/api/access-requests", nil),
		"admin-subject", "admin@example.com")
	rec := httptest.NewRecorder()

	h.ListPending(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var body []models.User
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(body) != 2 {
		t.Errorf("expected 2 pending records, got %d", len(body))
	}
}
