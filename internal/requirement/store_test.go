package requirement

import (
	"testing"
	"time"

	"mealbridge-backend/internal/database"
	"mealbridge-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("could not open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("could not get sql.DB: %v", err)
	}
	// In-memory sqlite is per-connection; keep the pool at one.
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.CommunityCentre{},
		&models.Donor{},
		&models.Requirement{},
		&models.FoodItem{},
	)
	if err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	database.DB = db
}

func seedCentre(t *testing.T, name string) *models.CommunityCentre {
	t.Helper()
	centre := models.CommunityCentre{
		ID:           uuid.NewString(),
		Name:         name,
		Address:      "12 Mill Road",
		Latitude:     51.5,
		Longitude:    -0.12,
		Contact:      "07" + uuid.NewString()[:9],
		Email:        uuid.NewString() + "@example.org",
		PasswordHash: "x",
	}
	if err := database.DB.Create(&centre).Error; err != nil {
		t.Fatalf("could not seed centre: %v", err)
	}
	return &centre
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestUpsertSecondWriteWins(t *testing.T) {
	setupTestDB(t)
	centre := seedCentre(t, "Northside Kitchen")
	d := date(2026, time.April, 3)

	first, err := Upsert(centre.ID, d, "lunch", 40, "Open")
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	second, err := Upsert(centre.ID, d, "lunch", 25, "Urgent")
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	var count int64
	database.DB.Model(&models.Requirement{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one stored requirement, got %d", count)
	}

	if second.ID != first.ID {
		t.Errorf("upsert created a new identity: %q vs %q", second.ID, first.ID)
	}
	if second.Servings != 25 || second.Status != "Urgent" {
		t.Errorf("second write did not win: servings=%d status=%q", second.Servings, second.Status)
	}
}

func TestUpsertDistinctTriplesAreSeparateRows(t *testing.T) {
	setupTestDB(t)
	centre := seedCentre(t, "Northside Kitchen")
	other := seedCentre(t, "Riverside Hall")
	d := date(2026, time.April, 3)

	mustUpsert := func(centreID string, day time.Time, meal string) {
		t.Helper()
		if _, err := Upsert(centreID, day, meal, 10, "Open"); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
	}

	mustUpsert(centre.ID, d, "lunch")
	mustUpsert(centre.ID, d, "dinner")
	mustUpsert(centre.ID, date(2026, time.April, 4), "lunch")
	mustUpsert(other.ID, d, "lunch")

	var count int64
	database.DB.Model(&models.Requirement{}).Count(&count)
	if count != 4 {
		t.Fatalf("expected 4 rows for 4 distinct triples, got %d", count)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	setupTestDB(t)

	if _, err := GetByID(uuid.NewString()); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListAllJoinsCentre(t *testing.T) {
	setupTestDB(t)
	centre := seedCentre(t, "Northside Kitchen")

	if _, err := Upsert(centre.ID, date(2026, time.April, 3), "dinner", 30, "Open"); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	reqs, err := ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(reqs) != 1 {
		t.Fatalf("expected 1 requirement, got %d", len(reqs))
	}
	if reqs[0].CommunityCentre.Name != "Northside Kitchen" {
		t.Errorf("owning centre not joined: %+v", reqs[0].CommunityCentre)
	}
}

func TestListForDateAndSlotExactMatch(t *testing.T) {
	setupTestDB(t)
	centre := seedCentre(t, "Northside Kitchen")
	d := date(2026, time.April, 3)

	if _, err := Upsert(centre.ID, d, "lunch", 40, "Open"); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if _, err := Upsert(centre.ID, d, "dinner", 40, "Open"); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if _, err := Upsert(centre.ID, date(2026, time.April, 4), "lunch", 40, "Open"); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	reqs, err := ListForDateAndSlot(d, "lunch")
	if err != nil {
		t.Fatalf("ListForDateAndSlot failed: %v", err)
	}
	if len(reqs) != 1 {
		t.Fatalf("expected 1 exact match, got %d", len(reqs))
	}
	if reqs[0].MealType != "lunch" || !reqs[0].Date.Equal(d) {
		t.Errorf("wrong row matched: %s %v", reqs[0].MealType, reqs[0].Date)
	}
}
