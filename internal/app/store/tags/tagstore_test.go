package tagstore_test

import (
	"testing"

	tagstore "github.com/postdeck/postdeck/internal/app/store/tags"
	"github.com/postdeck/postdeck/internal/domain/models"
	"github.com/postdeck/postdeck/internal/testutil"
)

func TestCreate(t *testing.T) {
	store := tagstore.New(testutil.SetupTestDB(t))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Tag{
		Account:   " Brand ",
		Label:     "evergreen <i>content</i>",
		Color:     "#2e7d32",
		CreatedBy: "Admin@Example.com",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID.IsZero() {
		t.Error("expected an assigned id")
	}
	if created.Account != "brand" {
		t.Errorf("account: got %q, want %q", created.Account, "brand")
	}
	if created.Label != "evergreen content" {
		t.Errorf("label not sanitized: got %q", created.Label)
	}
	if created.CreatedBy != "admin@example.com" {
		t.Errorf("created_by: got %q", created.CreatedBy)
	}
	if created.CreatedAt.IsZero() {
		t.Error("created_at must be stamped")
	}
}
