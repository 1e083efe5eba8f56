// Package loader reads unit catalogs and deck blueprints. Files ending in
// .yaml or .yml are parsed as YAML, anything else as the plain text format:
// one "name;type;attack;defense" line per unit and one 1-based unit index
// per deck line. Blank lines are ignored in both.
package loader

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"skirmish/game"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnitFormat = errors.New("invalid unit format in file")
	ErrDeckFormat = errors.New("invalid deck format in file")
)

const unitParts = 4

type unitYAML struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Attack  int    `yaml:"attack"`
	Defense int    `yaml:"defense"`
}

type unitsYAML struct {
	Units []unitYAML `yaml:"units"`
}

type deckYAML struct {
	Deck []int `yaml:"deck"`
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func LoadUnits(path string) ([]game.Unit, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read units file: %w", err)
	}
	if isYAML(path) {
		return parseUnitsYAML(b)
	}
	return ParseUnits(b)
}

func LoadDeck(path string) ([]int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck file: %w", err)
	}
	if isYAML(path) {
		return parseDeckYAML(b)
	}
	return ParseDeck(b)
}

// ParseUnits reads the semicolon separated unit format.
func ParseUnits(b []byte) ([]game.Unit, error) {
	var units []game.Unit
	for n, line := range lines(b) {
		if line == "" {
			continue
		}
		parts := strings.Split(line, ";")
		if len(parts) != unitParts {
			return nil, fmt.Errorf("%w: line %d has %d fields", ErrUnitFormat, n+1, len(parts))
		}
		attack, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrUnitFormat, n+1, err)
		}
		defense, err := strconv.Atoi(strings.TrimSpace(parts[3]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrUnitFormat, n+1, err)
		}
		u, err := newUnit(strings.TrimSpace(parts[0]), parts[1], attack, defense)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrUnitFormat, n+1, err)
		}
		units = append(units, u)
	}
	return units, nil
}

// ParseDeck reads one unit index per line.
func ParseDeck(b []byte) ([]int, error) {
	var deck []int
	for n, line := range lines(b) {
		if line == "" {
			continue
		}
		idx, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrDeckFormat, n+1, err)
		}
		deck = append(deck, idx)
	}
	return deck, nil
}

func parseUnitsYAML(b []byte) ([]game.Unit, error) {
	var doc unitsYAML
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnitFormat, err)
	}
	units := make([]game.Unit, 0, len(doc.Units))
	for i, y := range doc.Units {
		u, err := newUnit(y.Name, y.Type, y.Attack, y.Defense)
		if err != nil {
			return nil, fmt.Errorf("%w: unit %d: %w", ErrUnitFormat, i+1, err)
		}
		units = append(units, u)
	}
	return units, nil
}

func parseDeckYAML(b []byte) ([]int, error) {
	var doc deckYAML
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeckFormat, err)
	}
	return doc.Deck, nil
}

func newUnit(name, category string, attack, defense int) (game.Unit, error) {
	if name == "" {
		return game.Unit{}, errors.New("unit name is empty")
	}
	if attack < 0 || defense < 0 {
		return game.Unit{}, fmt.Errorf("%s has negative stats", name)
	}
	c, err := game.ParseCategory(category)
	if err != nil {
		return game.Unit{}, err
	}
	return game.Unit{Name: name, Category: c, Attack: attack, Defense: defense}, nil
}

func lines(b []byte) []string {
	var out []string
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		out = append(out, strings.TrimSpace(sc.Text()))
	}
	return out
}
