package teacherstore_test

import (
	"testing"

	teacherstore "github.com/dalemusser/campushub/internal/app/store/teachers"
	"github.com/dalemusser/campushub/internal/domain/models"
	"github.com/dalemusser/campushub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Exists(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teacherstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateTeacher(ctx, "mrodriguez", "Ms. Rodriguez")

	exists, err := store.Exists(ctx, "mrodriguez")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected known teacher to exist")
	}

	exists, err = store.Exists(ctx, "nobody")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected unknown teacher to not exist")
	}

	// Exact match only; no case folding on usernames.
	exists, err = store.Exists(ctx, "MRodriguez")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected username match to be exact")
	}
}

func TestStore_GetByUsername(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teacherstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateTeacher(ctx, "jchen", "Mr. Chen")

	teacher, err := store.GetByUsername(ctx, "jchen")
	if err != nil {
		t.Fatalf("GetByUsername failed: %v", err)
	}
	if teacher.DisplayName != "Mr. Chen" {
		t.Errorf("DisplayName: got %q, want %q", teacher.DisplayName, "Mr. Chen")
	}

	_, err = store.GetByUsername(ctx, "nobody")
	if err != mongo.ErrNoDocuments {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}

func TestStore_Upsert(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := teacherstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.Upsert(ctx, models.Teacher{Username: "seeded", DisplayName: "Seeded Teacher"})
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	exists, err := store.Exists(ctx, "seeded")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected upserted teacher to exist")
	}

	// Second upsert is idempotent and refreshes the display name.
	err = store.Upsert(ctx, models.Teacher{Username: "seeded", DisplayName: "Renamed Teacher"})
	if err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}

	teacher, err := store.GetByUsername(ctx, "seeded")
	if err != nil {
		t.Fatalf("GetByUsername failed: %v", err)
	}
	if teacher.DisplayName != "Renamed Teacher" {
		t.Errorf("DisplayName: got %q, want %q", teacher.DisplayName, "Renamed Teacher")
	}
}
