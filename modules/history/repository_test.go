package history

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&Evaluation{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func TestRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	eval := &Evaluation{
		ID:         uuid.New().String(),
		CreatedAt:  time.Now(),
		Expression: "6/3*2",
		Result:     "4",
	}

	if err := repo.Create(eval); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	var found Evaluation
	if err := db.First(&found, "id = ?", eval.ID).Error; err != nil {
		t.Fatalf("failed to find created evaluation: %v", err)
	}
	if found.Expression != eval.Expression {
		t.Errorf("expected expression %q, got %q", eval.Expression, found.Expression)
	}
	if found.Result != eval.Result {
		t.Errorf("expected result %q, got %q", eval.Result, found.Result)
	}
}

func TestRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	eval := &Evaluation{
		ID:         uuid.New().String(),
		CreatedAt:  time.Now(),
		Expression: "1/0",
		ErrorCode:  "division_by_zero",
	}
	if err := db.Create(eval).Error; err != nil {
		t.Fatalf("failed to create test evaluation: %v", err)
	}

	found, err := repo.FindByID(eval.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.ErrorCode != "division_by_zero" {
		t.Errorf("expected error code %q, got %q", "division_by_zero", found.ErrorCode)
	}
}

func TestRepository_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByID(uuid.New().String())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID() error = %v, want ErrNotFound", err)
	}
}

func TestRepository_FindRecent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		eval := &Evaluation{
			ID:         uuid.New().String(),
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
			Expression: "1+1",
			Result:     "2",
		}
		if err := db.Create(eval).Error; err != nil {
			t.Fatalf("failed to create test evaluation: %v", err)
		}
	}

	evals, err := repo.FindRecent(3)
	if err != nil {
		t.Fatalf("FindRecent() error = %v", err)
	}
	if len(evals) != 3 {
		t.Fatalf("expected 3 evaluations, got %d", len(evals))
	}
	for i := 1; i < len(evals); i++ {
		if evals[i].CreatedAt.After(evals[i-1].CreatedAt) {
			t.Errorf("evaluations not ordered newest first at index %d", i)
		}
	}
}
