package fooditem

import (
	"sync"
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

func seedRequirement(t *testing.T, servings int) *models.Requirement {
	t.Helper()

	centre := models.CommunityCentre{
		ID:           uuid.NewString(),
		Name:         "Northside Kitchen",
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

	req := models.Requirement{
		ID:                uuid.NewString(),
		CommunityCentreID: centre.ID,
		Servings:          servings,
		Date:              time.Date(2026, time.April, 3, 0, 0, 0, 0, time.UTC),
		MealType:          "dinner",
		Status:            "Open",
	}
	if err := database.DB.Create(&req).Error; err != nil {
		t.Fatalf("could not seed requirement: %v", err)
	}
	return &req
}

func seedDonor(t *testing.T) *models.Donor {
	t.Helper()
	d := models.Donor{
		ID:           uuid.NewString(),
		Name:         "Priya",
		Address:      "4 Rose Lane",
		Contact:      "07" + uuid.NewString()[:9],
		Email:        uuid.NewString() + "@example.org",
		PasswordHash: "x",
	}
	if err := database.DB.Create(&d).Error; err != nil {
		t.Fatalf("could not seed donor: %v", err)
	}
	return &d
}

func mustPledge(t *testing.T, requestID, userID string, servings int) *models.FoodItem {
	t.Helper()
	item, err := CreatePledge(requestID, userID, "rice.jpg", "Veg biryani", "Freshly cooked", servings)
	if err != nil {
		t.Fatalf("CreatePledge failed: %v", err)
	}
	return item
}

func reloadRequirement(t *testing.T, id string) *models.Requirement {
	t.Helper()
	var req models.Requirement
	if err := database.DB.First(&req, "id = ?", id).Error; err != nil {
		t.Fatalf("could not reload requirement: %v", err)
	}
	return &req
}

func TestCreatePledgeStartsOpen(t *testing.T) {
	setupTestDB(t)
	req := seedRequirement(t, 10)
	d := seedDonor(t)

	item := mustPledge(t, req.ID, d.ID, 4)
	if item.Status != models.FoodItemOpen {
		t.Errorf("new pledge status = %q, want Open", item.Status)
	}
	if item.RequestID != req.ID || item.UserID != d.ID {
		t.Error("pledge not linked to its requirement and donor")
	}
}

func TestCreatePledgeDanglingReferences(t *testing.T) {
	setupTestDB(t)
	req := seedRequirement(t, 10)
	d := seedDonor(t)

	if _, err := CreatePledge(uuid.NewString(), d.ID, "", "Soup", "", 2); err != ErrRequirementNotFound {
		t.Errorf("dangling request_id: got %v, want ErrRequirementNotFound", err)
	}
	if _, err := CreatePledge(req.ID, uuid.NewString(), "", "Soup", "", 2); err != ErrDonorNotFound {
		t.Errorf("dangling user_id: got %v, want ErrDonorNotFound", err)
	}
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	setupTestDB(t)
	req := seedRequirement(t, 10)
	d := seedDonor(t)
	item := mustPledge(t, req.ID, d.ID, 4)

	if _, err := SetStatus(item.ID, "Bogus"); err != ErrInvalidStatus {
		t.Fatalf("got %v, want ErrInvalidStatus", err)
	}

	// Nothing may have been mutated.
	var stored models.FoodItem
	if err := database.DB.First(&stored, "id = ?", item.ID).Error; err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if stored.Status != models.FoodItemOpen {
		t.Errorf("status mutated to %q on invalid input", stored.Status)
	}
	if got := reloadRequirement(t, req.ID); got.Servings != 10 {
		t.Errorf("requirement servings mutated to %d on invalid input", got.Servings)
	}
}

func TestSetStatusUnknownItem(t *testing.T) {
	setupTestDB(t)

	if _, err := SetStatus(uuid.NewString(), models.FoodItemApproved); err != ErrFoodItemNotFound {
		t.Fatalf("got %v, want ErrFoodItemNotFound", err)
	}
}

func TestNonReceivedTransitionLeavesRequirementAlone(t *testing.T) {
	setupTestDB(t)
	req := seedRequirement(t, 10)
	d := seedDonor(t)
	item := mustPledge(t, req.ID, d.ID, 4)

	for _, status := range []string{models.FoodItemApproved, models.FoodItemInTransit, models.FoodItemNotFulfilled} {
		updated, err := SetStatus(item.ID, status)
		if err != nil {
			t.Fatalf("SetStatus(%q) failed: %v", status, err)
		}
		if updated.Status != status {
			t.Errorf("status = %q, want %q", updated.Status, status)
		}
	}

	if got := reloadRequirement(t, req.ID); got.Servings != 10 || got.Status != "Open" {
		t.Errorf("requirement changed without a receipt: servings=%d status=%q", got.Servings, got.Status)
	}
}

func TestReceivedExactPledgeFulfils(t *testing.T) {
	setupTestDB(t)
	req := seedRequirement(t, 5)
	d := seedDonor(t)
	item := mustPledge(t, req.ID, d.ID, 5)

	if _, err := SetStatus(item.ID, models.FoodItemReceived); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}

	got := reloadRequirement(t, req.ID)
	if got.Servings != 0 {
		t.Errorf("servings = %d, want 0", got.Servings)
	}
	if got.Status != models.StatusFulfilled {
		t.Errorf("status = %q, want Fulfilled", got.Status)
	}
}

func TestReceivedOverPledgeClampsAtZero(t *testing.T) {
	setupTestDB(t)
	req := seedRequirement(t, 5)
	d := seedDonor(t)
	item := mustPledge(t, req.ID, d.ID, 8)

	if _, err := SetStatus(item.ID, models.FoodItemReceived); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}

	got := reloadRequirement(t, req.ID)
	if got.Servings != 0 {
		t.Errorf("servings = %d, want 0 (never negative)", got.Servings)
	}
	if got.Status != models.StatusFulfilled {
		t.Errorf("status = %q, want Fulfilled", got.Status)
	}
}

func TestReceivedPartialPledgeDebits(t *testing.T) {
	setupTestDB(t)
	req := seedRequirement(t, 10)
	d := seedDonor(t)
	item := mustPledge(t, req.ID, d.ID, 3)

	if _, err := SetStatus(item.ID, models.FoodItemReceived); err != nil {
		t.Fatalf("SetStatus failed: %v", err)
	}

	got := reloadRequirement(t, req.ID)
	if got.Servings != 7 {
		t.Errorf("servings = %d, want 7", got.Servings)
	}
	if got.Status != "Open" {
		t.Errorf("status = %q, want unchanged Open", got.Status)
	}
}

func TestConcurrentReceiptsApplyBothDecrements(t *testing.T) {
	setupTestDB(t)
	req := seedRequirement(t, 10)
	d := seedDonor(t)
	a := mustPledge(t, req.ID, d.ID, 6)
	b := mustPledge(t, req.ID, d.ID, 6)

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for _, id := range []string{a.ID, b.ID} {
		wg.Add(1)
		go func(itemID string) {
			defer wg.Done()
			if _, err := SetStatus(itemID, models.FoodItemReceived); err != nil {
				errs <- err
			}
		}(id)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent SetStatus failed: %v", err)
	}

	got := reloadRequirement(t, req.ID)
	if got.Servings != 0 {
		t.Errorf("servings = %d, want 0 (both decrements, clamped)", got.Servings)
	}
	if got.Status != models.StatusFulfilled {
		t.Errorf("status = %q, want Fulfilled", got.Status)
	}
}

func TestListByRequestPreloadsDonor(t *testing.T) {
	setupTestDB(t)
	req := seedRequirement(t, 10)
	d := seedDonor(t)
	mustPledge(t, req.ID, d.ID, 4)

	items, err := ListByRequest(req.ID)
	if err != nil {
		t.Fatalf("ListByRequest failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].User.Name != "Priya" {
		t.Errorf("donor not preloaded: %+v", items[0].User)
	}
}
