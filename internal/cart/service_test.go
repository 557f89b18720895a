package cart

import (
	"testing"

	"github.com/yashp387/Food-Ordering-System/internal/menu"
	"github.com/yashp387/Food-Ordering-System/internal/restaurant"
)

func newMenuService(items []menu.MenuItem) *menu.Service {
	rests := restaurant.NewInMemoryRepository([]restaurant.Restaurant{
		{ID: 1, Name: "Pasta Place", OwnerID: 7, Rating: 4, Status: restaurant.StatusOpen},
		{ID: 2, Name: "Burger Barn", OwnerID: 8, Rating: 4, Status: restaurant.StatusOpen},
	})
	return menu.NewService(menu.NewInMemoryRepository(items), restaurant.NewService(rests))
}

func newTestService(items []menu.MenuItem) (*Service, *InMemoryRepository) {
	repo := NewInMemoryRepository(nil)
	svc := NewService(repo, newMenuService(items), NewUserLocks())
	return svc, repo
}

func seedMenu() []menu.MenuItem {
	return []menu.MenuItem{
		{ID: 1, RestaurantID: 1, Name: "Carbonara", Price: 1000, Category: "Main Course", Available: true},
		{ID: 2, RestaurantID: 1, Name: "Tiramisu", Price: 500, Category: "Dessert", Available: true},
		{ID: 3, RestaurantID: 2, Name: "Cheeseburger", Price: 800, Category: "Main Course", Available: true},
		{ID: 4, RestaurantID: 1, Name: "Off Menu", Price: 900, Category: "Other", Available: false},
	}
}

func TestAddItem_MergesLinesAndKeepsTotalConsistent(t *testing.T) {
	svc, _ := newTestService(seedMenu())

	if _, err := svc.AddItem(42, 1, 2); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	c, err := svc.AddItem(42, 1, 3)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	if len(c.Items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(c.Items))
	}
	if c.Items[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", c.Items[0].Quantity)
	}
	if c.Total != 5000 {
		t.Fatalf("expected total 5000, got %d", c.Total)
	}
	if c.Total != ComputeTotal(c.Items) {
		t.Fatalf("stored total %d does not match recomputed %d", c.Total, ComputeTotal(c.Items))
	}
}

func TestAddItem_FreezesPriceAtFirstAdd(t *testing.T) {
	items := seedMenu()
	menuRepo := menu.NewInMemoryRepository(items)
	rests := restaurant.NewInMemoryRepository([]restaurant.Restaurant{
		{ID: 1, OwnerID: 7, Rating: 4},
	})
	menus := menu.NewService(menuRepo, restaurant.NewService(rests))
	svc := NewService(NewInMemoryRepository(nil), menus, NewUserLocks())

	if _, err := svc.AddItem(42, 1, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// catalog price change must not leak into the existing line
	if _, err := menuRepo.Update(1, menu.MenuItem{Name: "Carbonara", Price: 9999, Category: "Main Course", Available: true}); err != nil {
		t.Fatalf("catalog update failed: %v", err)
	}

	c, err := svc.AddItem(42, 1, 1)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if c.Items[0].Price != 1000 {
		t.Fatalf("expected frozen price 1000, got %d", c.Items[0].Price)
	}
	if c.Total != 2000 {
		t.Fatalf("expected total 2000, got %d", c.Total)
	}
}

func TestAddItem_RejectsBadQuantity(t *testing.T) {
	svc, _ := newTestService(seedMenu())

	for _, qty := range []int{0, -1} {
		if _, err := svc.AddItem(42, 1, qty); err != ErrInvalidQuantity {
			t.Fatalf("quantity %d: expected ErrInvalidQuantity, got %v", qty, err)
		}
	}
}

func TestAddItem_UnknownAndUnavailableItems(t *testing.T) {
	svc, _ := newTestService(seedMenu())

	if _, err := svc.AddItem(42, 99, 1); err != ErrMenuItemNotFound {
		t.Fatalf("expected ErrMenuItemNotFound, got %v", err)
	}
	if _, err := svc.AddItem(42, 4, 1); err != ErrItemUnavailable {
		t.Fatalf("expected ErrItemUnavailable, got %v", err)
	}
}

func TestAddItem_RejectsSecondRestaurant(t *testing.T) {
	svc, _ := newTestService(seedMenu())

	if _, err := svc.AddItem(42, 1, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := svc.AddItem(42, 3, 1); err != ErrMixedRestaurants {
		t.Fatalf("expected ErrMixedRestaurants, got %v", err)
	}
}

func TestUpdateItem(t *testing.T) {
	svc, _ := newTestService(seedMenu())

	if _, err := svc.UpdateItem(42, 1, 2); err != ErrCartNotFound {
		t.Fatalf("expected ErrCartNotFound for missing cart, got %v", err)
	}

	if _, err := svc.AddItem(42, 1, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if _, err := svc.UpdateItem(42, 2, 1); err != ErrLineNotFound {
		t.Fatalf("expected ErrLineNotFound for absent line, got %v", err)
	}
	if _, err := svc.UpdateItem(42, 1, 0); err != ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity for zero, got %v", err)
	}

	c, err := svc.UpdateItem(42, 1, 7)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if c.Items[0].Quantity != 7 || c.Total != 7000 {
		t.Fatalf("expected qty 7 total 7000, got qty %d total %d", c.Items[0].Quantity, c.Total)
	}
}

func TestRemoveItem_LeavesConsistentEmptyCart(t *testing.T) {
	svc, _ := newTestService(seedMenu())

	if _, err := svc.AddItem(42, 1, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := svc.RemoveItem(42, 2); err != ErrLineNotFound {
		t.Fatalf("expected ErrLineNotFound, got %v", err)
	}

	c, err := svc.RemoveItem(42, 1)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(c.Items) != 0 || c.Total != 0 {
		t.Fatalf("expected empty cart with zero total, got %d items total %d", len(c.Items), c.Total)
	}
}

func TestViewCart_AbsentCartIsEmptySnapshot(t *testing.T) {
	svc, _ := newTestService(seedMenu())

	c, err := svc.ViewCart(42)
	if err != nil {
		t.Fatalf("view failed: %v", err)
	}
	if len(c.Items) != 0 || c.Total != 0 {
		t.Fatalf("expected empty snapshot, got %+v", c)
	}
}

func TestViewCart_JoinsMenuItemNames(t *testing.T) {
	svc, _ := newTestService(seedMenu())

	if _, err := svc.AddItem(42, 1, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	c, err := svc.ViewCart(42)
	if err != nil {
		t.Fatalf("view failed: %v", err)
	}
	if c.Items[0].Name != "Carbonara" {
		t.Fatalf("expected joined name Carbonara, got %q", c.Items[0].Name)
	}
}

func TestClear_AbsentCartIsNotFoundWithoutSideEffects(t *testing.T) {
	svc, repo := newTestService(seedMenu())

	if err := svc.Clear(42); err != ErrCartNotFound {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}

	if _, err := svc.AddItem(42, 1, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.Clear(42); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if _, err := repo.GetByUser(42); err != ErrCartNotFound {
		t.Fatalf("expected cart gone after clear, got %v", err)
	}
}
