// Package menu provides the static price list the kitchen sells from and
// turns a customer's selections into an item description and a gross bill.
package menu

import (
	"errors"
	"fmt"
	"strings"

	"catering/internal/pkg/errs"
)

var (
	ErrSelectionIsRequired = errs.NewValueIsRequiredError("item selections")
)

type Item struct {
	Name  string
	Price float64
}

// Selection asks for Quantity portions of the menu item called Item.
type Selection struct {
	Item     string
	Quantity int
}

// Line is one merged entry of a quote.
type Line struct {
	Item     Item
	Quantity int
}

func (l Line) Total() float64 {
	return l.Item.Price * float64(l.Quantity)
}

// Quote is the priced result of a list of selections.
type Quote struct {
	Lines []Line
	Gross float64
}

// Description renders the lines the way they are printed on an order,
// e.g. "2x Chicken Biryani, 1x Green Salad".
func (q Quote) Description() string {
	parts := make([]string, 0, len(q.Lines))
	for _, line := range q.Lines {
		parts = append(parts, fmt.Sprintf("%dx %s", line.Quantity, line.Item.Name))
	}
	return strings.Join(parts, ", ")
}

// Catalog is an immutable, ordered price list. Lookups ignore case.
type Catalog struct {
	items []Item
	index map[string]int
}

// DefaultItems is the standard menu, priced in BDT.
func DefaultItems() []Item {
	return []Item{
		{Name: "Chicken Biryani", Price: 250},
		{Name: "Beef Steak", Price: 650},
		{Name: "Mixed Grill Platter", Price: 1200},
		{Name: "Veg Burger", Price: 180},
		{Name: "Chicken Burger", Price: 220},
		{Name: "Fried Rice", Price: 200},
		{Name: "Mutton Korma", Price: 900},
		{Name: "Green Salad", Price: 80},
		{Name: "Soft Drink (500ml)", Price: 50},
		{Name: "Chocolate Cake (slice)", Price: 150},
	}
}

func NewCatalog(items []Item) (*Catalog, error) {
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("menu items")
	}

	c := &Catalog{
		items: make([]Item, 0, len(items)),
		index: make(map[string]int, len(items)),
	}

	var errList []error
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		key := strings.ToLower(name)
		switch {
		case name == "":
			errList = append(errList, errs.NewValueIsRequiredError("menu item name"))
		case item.Price <= 0:
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"menu item price", fmt.Errorf("%s costs %.2f", name, item.Price)))
		default:
			if _, dup := c.index[key]; dup {
				errList = append(errList, errs.NewObjectAlreadyExistsError("menu item", name))
				continue
			}
			c.index[key] = len(c.items)
			c.items = append(c.items, Item{Name: name, Price: item.Price})
		}
	}

	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return c, nil
}

// DefaultCatalog returns the catalog built from DefaultItems.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultItems())
	if err != nil {
		panic(err)
	}
	return c
}

// Items returns the menu in display order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) Lookup(name string) (Item, bool) {
	i, ok := c.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// Quote prices the selections. Repeated items are merged into one line in
// order of first appearance. Unknown items and non-positive quantities are
// rejected, as is an empty selection.
func (c *Catalog) Quote(selections []Selection) (Quote, error) {
	if len(selections) == 0 {
		return Quote{}, ErrSelectionIsRequired
	}

	var (
		quote   Quote
		lineIdx = make(map[string]int)
		errList []error
	)

	for _, s := range selections {
		item, ok := c.Lookup(s.Item)
		if !ok {
			errList = append(errList, errs.NewObjectNotFoundError("menu item", s.Item))
			continue
		}
		if s.Quantity <= 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"quantity", fmt.Errorf("%d portions of %s", s.Quantity, item.Name)))
			continue
		}

		if i, seen := lineIdx[item.Name]; seen {
			quote.Lines[i].Quantity += s.Quantity
			continue
		}
		lineIdx[item.Name] = len(quote.Lines)
		quote.Lines = append(quote.Lines, Line{Item: item, Quantity: s.Quantity})
	}

	if err := errors.Join(errList...); err != nil {
		return Quote{}, err
	}

	for _, line := range quote.Lines {
		quote.Gross += line.Total()
	}

	return quote, nil
}
