package repository

import "time"

// Collection represents a named group of records backing one widget. Kind
// names the widget flavor the gallery renders it with ("listbox", "menu",
// "radiogroup", "tablist", ...).
type Collection struct {
	ID        string
	Name      string
	Kind      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Record represents one selectable row of a collection.
type Record struct {
	ID           string
	CollectionID string
	Label        string
	Position     int
	Disabled     bool
	Hidden       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
