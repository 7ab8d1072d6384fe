package home

import (
	"encoding/json"

	"github.com/goliatone/go-webtemplate/pkg/render"
)

// FirstPageTemplate is the template name the first page renders with.
const FirstPageTemplate = "home/first_page"

// FirstPageTitle is the heading shown above the item list.
const FirstPageTitle = "First Page"

var firstPageItems = [...]string{
	"Book: The Phoenix Project",
	"Item 2",
	"Item 3",
}

// FirstPageViewModel lists the labels shown on the first page.
type FirstPageViewModel struct {
	items []string
}

// NewFirstPageViewModel returns a view-model populated with the first page
// labels, in display order.
func NewFirstPageViewModel() *FirstPageViewModel {
	items := make([]string, len(firstPageItems))
	copy(items, firstPageItems[:])
	return &FirstPageViewModel{items: items}
}

// FirstPageItems returns a copy of the labels.
func (vm *FirstPageViewModel) FirstPageItems() []string {
	if vm == nil {
		return nil
	}
	return append([]string(nil), vm.items...)
}

// Len reports how many labels the view-model holds.
func (vm *FirstPageViewModel) Len() int {
	if vm == nil {
		return 0
	}
	return len(vm.items)
}

// Item returns the label at index i.
func (vm *FirstPageViewModel) Item(i int) (string, bool) {
	if vm == nil || i < 0 || i >= len(vm.items) {
		return "", false
	}
	return vm.items[i], true
}

// Page wraps the view-model for a renderer.
func (vm *FirstPageViewModel) Page() render.Page {
	return render.Page{
		Name:  FirstPageTemplate,
		Title: FirstPageTitle,
		Data:  vm,
	}
}

type firstPagePayload struct {
	FirstPageItems []string `json:"firstPageItems"`
}

// MarshalJSON exposes the labels under "firstPageItems", which is also the
// key templates read them from.
func (vm *FirstPageViewModel) MarshalJSON() ([]byte, error) {
	items := vm.FirstPageItems()
	if items == nil {
		items = []string{}
	}
	return json.Marshal(firstPagePayload{FirstPageItems: items})
}
