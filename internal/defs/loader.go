// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
)

//go:embed data/game.json
var defaultGameJSON []byte

// ErrInvalidDefinition is returned when a definitions file is structurally unusable.
var ErrInvalidDefinition = errors.New("invalid definition")

// Faction names used in projectile definitions.
const (
	FactionPlayer   = "player"
	FactionInvaders = "invaders"
)

// ParseGameDefinition decodes and validates a definitions document.
func ParseGameDefinition(data []byte) (*GameDefinition, error) {
	var def GameDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game definitions: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	def.buildIndex()
	return &def, nil
}

// LoadGameDefinition reads the definitions file at path.
func LoadGameDefinition(path string) (*GameDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game definitions file: %w", err)
	}
	def, err := ParseGameDefinition(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("Loaded %d invader and %d projectile definitions from %s", len(def.Invaders), len(def.Projectiles), path)
	return def, nil
}

// DefaultGameDefinition returns a fresh copy of the embedded definitions.
func DefaultGameDefinition() *GameDefinition {
	def, err := ParseGameDefinition(defaultGameJSON)
	if err != nil {
		panic("embedded game definitions are broken: " + err.Error())
	}
	return def
}

// LoadOrDefault loads path when it is set and falls back to the embedded
// definitions when it is empty or unusable.
func LoadOrDefault(path string) *GameDefinition {
	if path == "" {
		return DefaultGameDefinition()
	}
	def, err := LoadGameDefinition(path)
	if err != nil {
		log.Printf("Error: %v; using built-in definitions", err)
		return DefaultGameDefinition()
	}
	return def
}

// Validate checks the parts of the document the game cannot run without.
// Malformed formation rows are not errors here: the formation skips them at spawn.
func (g *GameDefinition) Validate() error {
	if g.Arena.Width() <= 0 || g.Arena.Height() <= 0 {
		return fmt.Errorf("%w: arena must have a positive size", ErrInvalidDefinition)
	}
	seen := make(map[string]bool, len(g.Projectiles))
	for _, p := range g.Projectiles {
		if p.ID == "" {
			return fmt.Errorf("%w: projectile without id", ErrInvalidDefinition)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate projectile id %q", ErrInvalidDefinition, p.ID)
		}
		seen[p.ID] = true
		if p.Faction != FactionPlayer && p.Faction != FactionInvaders {
			return fmt.Errorf("%w: projectile %q has unknown faction %q", ErrInvalidDefinition, p.ID, p.Faction)
		}
	}
	if !seen[g.Player.ProjectileID] {
		return fmt.Errorf("%w: player projectile %q is not defined", ErrInvalidDefinition, g.Player.ProjectileID)
	}
	if !g.Formation.ShootWait.Valid() {
		return fmt.Errorf("%w: formation shoot wait range [%v, %v]", ErrInvalidDefinition, g.Formation.ShootWait.Min, g.Formation.ShootWait.Max)
	}
	invaders := make(map[string]bool, len(g.Invaders))
	for _, inv := range g.Invaders {
		if inv.ID == "" {
			return fmt.Errorf("%w: invader without id", ErrInvalidDefinition)
		}
		if invaders[inv.ID] {
			return fmt.Errorf("%w: duplicate invader id %q", ErrInvalidDefinition, inv.ID)
		}
		invaders[inv.ID] = true
		if !inv.ShootInterval.Valid() {
			return fmt.Errorf("%w: invader %q shoot interval", ErrInvalidDefinition, inv.ID)
		}
	}
	return nil
}
