package cart

import (
	"context"
	"errors"
	"io"
	"log"
	"math"
	"reflect"
	"testing"

	"grocery-storefront/internal/domain"
)

type stubRepo struct {
	snapshots map[string][]byte
	loadErr   error
	saveErr   error
	deleteErr error
	saveCalls int
}

func newStubRepo() *stubRepo {
	return &stubRepo{snapshots: map[string][]byte{}}
}

func (r *stubRepo) Load(_ context.Context, key string) ([]byte, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	data, ok := r.snapshots[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return data, nil
}

func (r *stubRepo) Save(_ context.Context, key string, data []byte) error {
	r.saveCalls++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.snapshots[key] = data
	return nil
}

func (r *stubRepo) Delete(_ context.Context, key string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.snapshots, key)
	return nil
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func basmati() domain.Product {
	return domain.Product{Name: "Basmati Rice", Price: "€20.00", Image: "/basmati-rice.jpg", Category: "rice"}
}

func turmeric() domain.Product {
	return domain.Product{Name: "Turmeric Powder", Price: "€3.49", Image: "/turmeric-powder.jpg", Category: "spices"}
}

func TestAddMergesByName(t *testing.T) {
	ctx := context.Background()
	store := Open(ctx, newStubRepo(), "k", testLogger())

	first := store.AddToCart(ctx, basmati())
	if first.Kind != ChangeAdded {
		t.Fatalf("first add kind = %q, want %q", first.Kind, ChangeAdded)
	}
	second := store.AddToCart(ctx, basmati())
	if second.Kind != ChangeIncreased {
		t.Fatalf("second add kind = %q, want %q", second.Kind, ChangeIncreased)
	}

	items := store.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("quantity = %d, want 2", items[0].Quantity)
	}
	if items[0].Price != "€20.00" {
		t.Fatalf("price changed on merge: %q", items[0].Price)
	}
	if items[0].ID == "" {
		t.Fatal("line item id not assigned")
	}
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := Open(ctx, newStubRepo(), "k", testLogger())
	store.AddToCart(ctx, basmati())
	store.AddToCart(ctx, turmeric())
	store.AddToCart(ctx, basmati())

	items := store.Items()
	if len(items) != 2 || items[0].Name != "Basmati Rice" || items[1].Name != "Turmeric Powder" {
		t.Fatalf("unexpected order: %+v", items)
	}
}

func TestUpdateQuantitySets(t *testing.T) {
	ctx := context.Background()
	store := Open(ctx, newStubRepo(), "k", testLogger())
	store.AddToCart(ctx, basmati())
	id := store.Items()[0].ID

	if notice := store.UpdateQuantity(ctx, id, 5); notice != nil {
		t.Fatalf("unexpected notice %+v", notice)
	}
	if got := store.Items()[0].Quantity; got != 5 {
		t.Fatalf("quantity = %d, want 5", got)
	}
}

func TestUpdateQuantityFloorRemoves(t *testing.T) {
	for _, quantity := range []int{0, -5} {
		ctx := context.Background()
		store := Open(ctx, newStubRepo(), "k", testLogger())
		store.AddToCart(ctx, basmati())
		id := store.Items()[0].ID

		notice := store.UpdateQuantity(ctx, id, quantity)
		if notice == nil || notice.Kind != ChangeRemoved {
			t.Fatalf("UpdateQuantity(%d) notice = %+v, want removal", quantity, notice)
		}
		if len(store.Items()) != 0 {
			t.Fatalf("UpdateQuantity(%d) left %d items", quantity, len(store.Items()))
		}
	}
}

func TestUpdateQuantityUnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := newStubRepo()
	store := Open(ctx, repo, "k", testLogger())
	store.AddToCart(ctx, basmati())
	before := store.Items()
	saves := repo.saveCalls

	if notice := store.UpdateQuantity(ctx, "missing", 3); notice != nil {
		t.Fatalf("unexpected notice %+v", notice)
	}
	if !reflect.DeepEqual(store.Items(), before) {
		t.Fatal("cart changed for unknown id")
	}
	if repo.saveCalls != saves {
		t.Fatal("no-op update persisted")
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := Open(ctx, newStubRepo(), "k", testLogger())
	store.AddToCart(ctx, basmati())
	id := store.Items()[0].ID

	if notice := store.RemoveFromCart(ctx, id); notice == nil || notice.Kind != ChangeRemoved {
		t.Fatalf("first removal notice = %+v", notice)
	}
	if notice := store.RemoveFromCart(ctx, id); notice != nil {
		t.Fatalf("second removal should be a no-op, got %+v", notice)
	}
	if len(store.Items()) != 0 {
		t.Fatal("cart not empty after removal")
	}
}

func TestCountVersusLineItems(t *testing.T) {
	ctx := context.Background()
	store := Open(ctx, newStubRepo(), "k", testLogger())
	store.AddToCart(ctx, basmati())
	store.AddToCart(ctx, basmati())
	store.AddToCart(ctx, turmeric())
	id := store.Items()[1].ID
	store.UpdateQuantity(ctx, id, 3)

	if got := store.Count(); got != 5 {
		t.Fatalf("Count() = %d, want 5", got)
	}
	if got := len(store.Items()); got != 2 {
		t.Fatalf("line items = %d, want 2", got)
	}
}

func TestTotal(t *testing.T) {
	ctx := context.Background()
	store := Open(ctx, newStubRepo(), "k", testLogger())
	store.AddToCart(ctx, domain.Product{Name: "Ghee", Price: "€10.00", Category: "dairy"})
	id := store.Items()[0].ID
	store.UpdateQuantity(ctx, id, 3)

	if got := store.Total(); math.Abs(got-30.00) > 1e-9 {
		t.Fatalf("Total() = %v, want 30.00", got)
	}
}

func TestTotalToleratesMalformedPrice(t *testing.T) {
	ctx := context.Background()
	store := Open(ctx, newStubRepo(), "k", testLogger())
	store.AddToCart(ctx, domain.Product{Name: "Mystery Item", Price: "free", Category: "deals"})
	store.AddToCart(ctx, domain.Product{Name: "Ghee", Price: "€10.00", Category: "dairy"})

	if got := store.Total(); math.Abs(got-10.00) > 1e-9 {
		t.Fatalf("Total() = %v, want 10.00", got)
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newStubRepo()

	store := Open(ctx, repo, "k", testLogger())
	store.AddToCart(ctx, basmati())
	store.AddToCart(ctx, basmati())
	store.AddToCart(ctx, turmeric())
	want := store.Items()

	reloaded := Open(ctx, repo, "k", testLogger())
	if !reflect.DeepEqual(reloaded.Items(), want) {
		t.Fatalf("reloaded cart %+v, want %+v", reloaded.Items(), want)
	}
}

func TestCorruptSnapshotDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	repo := newStubRepo()
	repo.snapshots["k"] = []byte("{not json")

	store := Open(ctx, repo, "k", testLogger())
	if len(store.Items()) != 0 {
		t.Fatalf("expected empty cart, got %+v", store.Items())
	}
}

func TestLoadErrorDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	repo := newStubRepo()
	repo.loadErr = errors.New("disk on fire")

	store := Open(ctx, repo, "k", testLogger())
	if len(store.Items()) != 0 {
		t.Fatal("expected empty cart on load error")
	}
}

func TestSaveErrorDoesNotBlockMutation(t *testing.T) {
	ctx := context.Background()
	repo := newStubRepo()
	repo.saveErr = errors.New("disk full")

	store := Open(ctx, repo, "k", testLogger())
	notice := store.AddToCart(ctx, basmati())
	if notice.Kind != ChangeAdded {
		t.Fatalf("notice = %+v", notice)
	}
	if len(store.Items()) != 1 {
		t.Fatal("in-memory cart should still hold the item")
	}
}

func TestClearCartDropsSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := newStubRepo()
	store := Open(ctx, repo, "k", testLogger())
	store.AddToCart(ctx, basmati())

	store.ClearCart(ctx)
	if len(store.Items()) != 0 {
		t.Fatal("cart not empty after clear")
	}
	if _, ok := repo.snapshots["k"]; ok {
		t.Fatal("snapshot not deleted after clear")
	}
}
