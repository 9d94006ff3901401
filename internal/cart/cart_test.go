package cart

import (
	"reflect"
	"testing"
)

func snapshotA() Snapshot {
	return Snapshot{ProductID: "A", Name: "Chicken Biryani", UnitPrice: 350, Image: "/images/food/biryani.png"}
}

func snapshotB() Snapshot {
	return Snapshot{ProductID: "B", Name: "Samosa Platter", UnitPrice: 150, Image: "/images/food/samosa.png"}
}

func TestAddItemIncrementsExistingLine(t *testing.T) {
	c := New(nil)

	c.AddItem(snapshotA())
	c.AddItem(snapshotA())
	c.AddItem(snapshotA())

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", lines[0].Quantity)
	}
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	c := New(nil)

	c.AddItem(snapshotA())
	c.AddItem(snapshotB())
	c.AddItem(snapshotA())

	lines := c.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].ProductID != "A" || lines[1].ProductID != "B" {
		t.Fatalf("expected order [A B], got [%s %s]", lines[0].ProductID, lines[1].ProductID)
	}
}

func TestRemoveItemMissingIsNoop(t *testing.T) {
	c := New(nil)
	c.AddItem(snapshotA())

	c.RemoveItem("does-not-exist")

	if len(c.Lines()) != 1 {
		t.Fatalf("expected cart untouched, got %d lines", len(c.Lines()))
	}
}

func TestUpdateQuantityZeroEqualsRemove(t *testing.T) {
	removed := New(nil)
	removed.AddItem(snapshotA())
	removed.RemoveItem("A")

	updated := New(nil)
	updated.AddItem(snapshotA())
	updated.UpdateQuantity("A", 0)

	if !reflect.DeepEqual(removed.Lines(), updated.Lines()) {
		t.Fatalf("UpdateQuantity(id, 0) should equal RemoveItem(id): %v vs %v", removed.Lines(), updated.Lines())
	}
	if len(updated.Lines()) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(updated.Lines()))
	}
}

func TestUpdateQuantitySetsValue(t *testing.T) {
	c := New(nil)
	c.AddItem(snapshotA())

	c.UpdateQuantity("A", 5)

	if got := c.Lines()[0].Quantity; got != 5 {
		t.Fatalf("expected quantity 5, got %d", got)
	}
}

func TestTotalsRecomputedAfterEveryMutation(t *testing.T) {
	c := New(nil)

	c.AddItem(snapshotA())
	c.AddItem(snapshotA())
	c.AddItem(snapshotB())

	if got := c.TotalPrice(); got != 850 {
		t.Fatalf("expected total price 850, got %v", got)
	}
	if got := c.TotalCount(); got != 3 {
		t.Fatalf("expected total count 3, got %d", got)
	}

	c.UpdateQuantity("A", 1)
	if got := c.TotalPrice(); got != 500 {
		t.Fatalf("expected total price 500 after update, got %v", got)
	}

	c.Clear()
	if c.TotalPrice() != 0 || c.TotalCount() != 0 {
		t.Fatalf("expected empty totals after clear, got price=%v count=%d", c.TotalPrice(), c.TotalCount())
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()

	c := New(NewFileStore(dir))
	c.AddItem(snapshotA())
	c.AddItem(snapshotA())
	c.AddItem(snapshotB())
	c.ToggleOpen()

	restored := New(NewFileStore(dir))
	if !reflect.DeepEqual(c.Lines(), restored.Lines()) {
		t.Fatalf("rehydrated lines differ: %v vs %v", c.Lines(), restored.Lines())
	}
	if restored.IsOpen() {
		t.Fatal("open flag must not survive rehydration")
	}
}

func TestFileStoreMissingFileMeansEmptyCart(t *testing.T) {
	c := New(NewFileStore(t.TempDir()))
	if len(c.Lines()) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(c.Lines()))
	}
}

func TestSubscribersNotifiedOnMutation(t *testing.T) {
	c := New(nil)

	calls := 0
	c.Subscribe(func() { calls++ })

	c.AddItem(snapshotA())
	c.UpdateQuantity("A", 2)
	c.RemoveItem("A")
	c.ToggleOpen()

	if calls != 4 {
		t.Fatalf("expected 4 notifications, got %d", calls)
	}
}

type recordingStore struct {
	saves int
}

func (s *recordingStore) Save(lines []Line) error { s.saves++; return nil }
func (s *recordingStore) Load() ([]Line, error)   { return nil, nil }

func TestToggleOpenDoesNotPersist(t *testing.T) {
	store := &recordingStore{}
	c := New(store)

	c.AddItem(snapshotA())
	c.ToggleOpen()
	c.ToggleOpen()

	if store.saves != 1 {
		t.Fatalf("expected 1 save (from AddItem only), got %d", store.saves)
	}
}
