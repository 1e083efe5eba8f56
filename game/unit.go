package game

import (
	"fmt"
	"strings"

	"skirmish/meta"
)

// Category is the kind of a unit.
type Category int

const (
	Farmer Category = iota
	Maid
	Spreader
	Builder
	Guard
	Sorceress
	Architect
	Operator
)

var categoryNames = []string{"Farmer", "Maid", "Spreader", "Builder", "Guard", "Sorceress", "Architect", "Operator"}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return Category(i), nil
		}
	}
	return 0, invalidArgument(fmt.Sprintf("unknown unit type: %s", s))
}

// Unit is an immutable unit template. Values are copied into decks and
// hands, so two drawn cards never alias.
type Unit struct {
	Name     string
	Category Category
	Attack   int
	Defense  int
	King     bool
}

// NewKing returns the king unit every side starts with.
func NewKing() Unit {
	return Unit{Name: meta.KING_NAME, Category: Farmer, King: true}
}

// split separates a name at its first space into qualifier and role.
func split(name string) (qualifier, role string) {
	qualifier, role, _ = strings.Cut(name, " ")
	return qualifier, role
}
