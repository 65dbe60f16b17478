// Package todo implements a small todo-list application: persistent items in
// a bolt database, and a view tree rendering them.
package todo

// Item is a single todo item. The zero ID is never stored.
type Item struct {
	ID   string `yaml:"id"`
	Text string `yaml:"text"`
	Done bool   `yaml:"done"`
}

// Filter selects which items are shown.
type Filter int

const (
	// All shows every item.
	All Filter = iota
	// Active shows items not yet done.
	Active
	// Done shows finished items.
	Done
)

func (f Filter) String() string {
	switch f {
	case All:
		return "all"
	case Active:
		return "active"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// ParseFilter parses the name of a filter.
func ParseFilter(name string) (Filter, bool) {
	switch name {
	case "all":
		return All, true
	case "active":
		return Active, true
	case "done":
		return Done, true
	default:
		return All, false
	}
}

// App holds the application state: the store, a cached copy of its items, and
// the active filter.
type App struct {
	Store  *Store
	Items  []Item
	Filter Filter
}

// NewApp returns an App with items loaded from the store.
func NewApp(store *Store) (*App, error) {
	a := &App{Store: store}
	return a, a.Reload()
}

// Reload refreshes the cached items from the store.
func (a *App) Reload() error {
	items, err := a.Store.Items()
	if err != nil {
		return err
	}
	a.Items = items
	return nil
}

// Add stores a new item with the given text.
func (a *App) Add(text string) error {
	if _, err := a.Store.Add(text); err != nil {
		return err
	}
	return a.Reload()
}

// Toggle flips the done status of the item with the given ID.
func (a *App) Toggle(id string) error {
	if err := a.Store.Toggle(id); err != nil {
		return err
	}
	return a.Reload()
}

// Del deletes the item with the given ID.
func (a *App) Del(id string) error {
	if err := a.Store.Del(id); err != nil {
		return err
	}
	return a.Reload()
}

// Visible returns the items matching the active filter.
func (a *App) Visible() []Item {
	if a.Filter == All {
		return a.Items
	}
	var out []Item
	for _, item := range a.Items {
		if item.Done == (a.Filter == Done) {
			out = append(out, item)
		}
	}
	return out
}

// Stats summarizes the item list.
type Stats struct {
	Total, Done int
}

// Stats counts all items and the done ones among them.
func (a *App) Stats() Stats {
	s := Stats{Total: len(a.Items)}
	for _, item := range a.Items {
		if item.Done {
			s.Done++
		}
	}
	return s
}
