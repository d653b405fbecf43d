package catalog

import (
	"errors"
	"strings"
	"unicode/utf8"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

const maxCategoryNameLength = 100

var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

// Category groups menu items for display. Categories are listed by (position, name).
type Category struct {
	id          kernel.UUID
	name        string
	description string
	position    int
	active      bool

	isConstructed bool
}

// NewCategory creates an active category.
func NewCategory(id kernel.UUID, name, description string, position int) (*Category, error) {
	return RestoreCategory(id, name, description, position, true)
}

// RestoreCategory rebuilds a category loaded from persistence.
func RestoreCategory(id kernel.UUID, name, description string, position int, active bool) (*Category, error) {
	c := &Category{
		description:   description,
		active:        active,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPosition(position),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

func (c *Category) ID() kernel.UUID     { return c.id }
func (c *Category) Name() string        { return c.name }
func (c *Category) Description() string { return c.description }
func (c *Category) Position() int       { return c.position }
func (c *Category) IsActive() bool      { return c.active }

// Deactivate hides the category from listings without deleting it.
func (c *Category) Deactivate() {
	c.active = false
}

func (c *Category) Activate() {
	c.active = true
}

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("category name")
	}
	if n := utf8.RuneCountInString(name); n > maxCategoryNameLength {
		return errs.NewValueIsOutOfRangeError("category name length", n, 1, maxCategoryNameLength)
	}
	c.name = name
	return nil
}

func (c *Category) setPosition(position int) error {
	if position < 0 {
		return errs.NewValueIsOutOfRangeError("position", position, 0, "unbounded")
	}
	c.position = position
	return nil
}
