package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

const maxMenuItemNameLength = 150

var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MenuItem is something a customer can order. Availability (in stock today) is
// independent of the active flag (soft delete).
type MenuItem struct {
	id          kernel.UUID
	categoryID  *kernel.UUID
	name        string
	description string
	price       kernel.Money
	imageURL    string
	available   bool
	active      bool

	isConstructed bool
}

// MenuItemDetails carries the descriptive attributes of a menu item.
type MenuItemDetails struct {
	Name        string
	Description string
	ImageURL    string
}

// NewMenuItem creates an active menu item. categoryID may be nil for uncategorised items.
func NewMenuItem(
	id kernel.UUID,
	categoryID *kernel.UUID,
	details MenuItemDetails,
	price kernel.Money,
	available bool,
) (*MenuItem, error) {
	return RestoreMenuItem(id, categoryID, details, price, available, true)
}

// RestoreMenuItem rebuilds a menu item loaded from persistence.
func RestoreMenuItem(
	id kernel.UUID,
	categoryID *kernel.UUID,
	details MenuItemDetails,
	price kernel.Money,
	available bool,
	active bool,
) (*MenuItem, error) {
	m := &MenuItem{
		description:   details.Description,
		price:         price,
		available:     available,
		active:        active,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setCategory(categoryID),
		m.setName(details.Name),
		m.setImageURL(details.ImageURL),
	); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

func (m *MenuItem) ID() kernel.UUID          { return m.id }
func (m *MenuItem) CategoryID() *kernel.UUID { return m.categoryID }
func (m *MenuItem) Name() string             { return m.name }
func (m *MenuItem) Description() string      { return m.description }
func (m *MenuItem) Price() kernel.Money      { return m.price }
func (m *MenuItem) ImageURL() string         { return m.imageURL }
func (m *MenuItem) IsAvailable() bool        { return m.available }
func (m *MenuItem) IsActive() bool           { return m.active }

// IsOrderable reports whether new order lines may reference this item.
func (m *MenuItem) IsOrderable() bool {
	return m.active && m.available
}

// ChangePrice affects future orders only; existing order lines keep their snapshot.
func (m *MenuItem) ChangePrice(price kernel.Money) {
	m.price = price
}

func (m *MenuItem) SetAvailable(available bool) {
	m.available = available
}

func (m *MenuItem) SetActive(active bool) {
	m.active = active
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setCategory(categoryID *kernel.UUID) error {
	if categoryID == nil {
		m.categoryID = nil
		return nil
	}
	if err := categoryID.Validate(); err != nil {
		return err
	}
	id := *categoryID
	m.categoryID = &id
	return nil
}

func (m *MenuItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("menu item name")
	}
	if n := utf8.RuneCountInString(name); n > maxMenuItemNameLength {
		return errs.NewValueIsOutOfRangeError("menu item name length", n, 1, maxMenuItemNameLength)
	}
	m.name = name
	return nil
}

func (m *MenuItem) setImageURL(raw string) error {
	if raw == "" {
		m.imageURL = ""
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errs.NewValueIsInvalidErrorWithCause("image url", fmt.Errorf("%q is not an absolute http(s) URL", raw))
	}
	m.imageURL = raw
	return nil
}
