package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

var ErrCreateCategoryCommandIsNotConstructed = errors.New(
	"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
)

// CreateCategoryCommand adds a category to the menu. The caller chooses the ID.
type CreateCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID  kernel.UUID
	name        string
	description string
	position    int

	guard guard.ConstructorGuard
}

// NewCreateCategoryCommand validates the identifier and the display position.
// Name rules are enforced by the Category aggregate.
func NewCreateCategoryCommand(categoryID kernel.UUID, name, description string, position int) (CreateCategoryCommand, error) {
	cmd := CreateCategoryCommand{
		name:        name,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCategoryID(categoryID),
		cmd.setPosition(position),
	); err != nil {
		return CreateCategoryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

func (c CreateCategoryCommand) CategoryID() kernel.UUID { return c.categoryID }
func (c CreateCategoryCommand) Name() string            { return c.name }
func (c CreateCategoryCommand) Description() string     { return c.description }
func (c CreateCategoryCommand) Position() int           { return c.position }

func (c *CreateCategoryCommand) setCategoryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.categoryID = id
	return nil
}

func (c *CreateCategoryCommand) setPosition(position int) error {
	if position < 0 {
		return errs.NewValueIsOutOfRangeError("position", position, 0, "unbounded")
	}
	c.position = position
	return nil
}
