package home

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var wantFirstPageItems = []string{"Book: The Phoenix Project", "Item 2", "Item 3"}

func TestNewFirstPageViewModel_ItemsInOrder(t *testing.T) {
	vm := NewFirstPageViewModel()

	if diff := cmp.Diff(wantFirstPageItems, vm.FirstPageItems()); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
	if vm.Len() != 3 {
		t.Fatalf("expected 3 items, got %d", vm.Len())
	}
}

func TestFirstPageItems_ReturnsCopy(t *testing.T) {
	vm := NewFirstPageViewModel()

	items := vm.FirstPageItems()
	items[0] = "changed"
	items = append(items, "Item 4")
	_ = items

	if diff := cmp.Diff(wantFirstPageItems, vm.FirstPageItems()); diff != "" {
		t.Fatalf("view-model mutated through returned slice (-want +got):\n%s", diff)
	}
}

func TestNewFirstPageViewModel_IndependentInstances(t *testing.T) {
	first := NewFirstPageViewModel()
	second := NewFirstPageViewModel()

	if first == second {
		t.Fatalf("expected distinct instances")
	}
	if diff := cmp.Diff(first.FirstPageItems(), second.FirstPageItems()); diff != "" {
		t.Fatalf("instances differ (-first +second):\n%s", diff)
	}
}

func TestFirstPageViewModel_Item(t *testing.T) {
	vm := NewFirstPageViewModel()

	got, ok := vm.Item(0)
	if !ok || got != "Book: The Phoenix Project" {
		t.Fatalf("unexpected first item: %q (ok=%v)", got, ok)
	}
	if _, ok := vm.Item(3); ok {
		t.Fatalf("expected index 3 to be out of range")
	}
	if _, ok := vm.Item(-1); ok {
		t.Fatalf("expected negative index to be out of range")
	}
}

func TestFirstPageViewModel_NilReceiver(t *testing.T) {
	var vm *FirstPageViewModel
	if vm.Len() != 0 || vm.FirstPageItems() != nil {
		t.Fatalf("expected nil view-model to be empty")
	}
}

func TestFirstPageViewModel_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(NewFirstPageViewModel())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"firstPageItems":["Book: The Phoenix Project","Item 2","Item 3"]}`
	if string(data) != want {
		t.Fatalf("unexpected payload\nwant: %s\n got: %s", want, data)
	}
}

func TestFirstPageViewModel_Page(t *testing.T) {
	vm := NewFirstPageViewModel()
	page := vm.Page()

	if page.Name != FirstPageTemplate || page.Title != FirstPageTitle {
		t.Fatalf("unexpected page: %+v", page)
	}
	if page.Data != vm {
		t.Fatalf("expected page data to be the view-model")
	}
	if err := page.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}
