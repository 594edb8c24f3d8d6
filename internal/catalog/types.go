package catalog

import (
	"fmt"
	"strings"
)

// Stat, artwork and ability keys the card view depends on.
const (
	StatAttack       = "attack"
	ArtworkOfficial  = "official-artwork"
	defaultTypeLabel = "unknown"
)

// SummaryRef is one entry of a list page: a name and the URL of its detail record.
type SummaryRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ListPage is the body returned by the list endpoint.
type ListPage struct {
	Count    int          `json:"count"`
	Next     *string      `json:"next"`
	Previous *string      `json:"previous"`
	Results  []SummaryRef `json:"results"`
}

// NamedResource is the {name, url} pair the API uses for cross references.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// AbilitySlot is one entry of Pokemon.Abilities.
type AbilitySlot struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

// StatEntry is one entry of Pokemon.Stats.
type StatEntry struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

// TypeSlot is one entry of Pokemon.Types.
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// SpriteSet holds image URLs for one artwork source.
type SpriteSet struct {
	FrontDefault string `json:"front_default"`
}

// Sprites holds the default sprite and the alternative artwork sources keyed
// by name (for example "official-artwork").
type Sprites struct {
	FrontDefault string               `json:"front_default"`
	Other        map[string]SpriteSet `json:"other"`
}

// Pokemon is a fully resolved detail record. Height is in decimetres and
// Weight in hectograms, as served by the API.
type Pokemon struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	Height         int           `json:"height"`
	Weight         int           `json:"weight"`
	BaseExperience int           `json:"base_experience"`
	Abilities      []AbilitySlot `json:"abilities"`
	Stats          []StatEntry   `json:"stats"`
	Types          []TypeSlot    `json:"types"`
	Sprites        Sprites       `json:"sprites"`
}

// Stat returns the base value of the named stat.
func (p Pokemon) Stat(name string) (int, bool) {
	for _, s := range p.Stats {
		if s.Stat.Name == name {
			return s.BaseStat, true
		}
	}
	return 0, false
}

// Attack returns the base attack stat.
func (p Pokemon) Attack() (int, bool) {
	return p.Stat(StatAttack)
}

// PrimaryAbility returns the first listed ability.
func (p Pokemon) PrimaryAbility() (string, bool) {
	if len(p.Abilities) == 0 || p.Abilities[0].Ability.Name == "" {
		return "", false
	}
	return p.Abilities[0].Ability.Name, true
}

// Artwork returns the official artwork image URL.
func (p Pokemon) Artwork() (string, bool) {
	set, ok := p.Sprites.Other[ArtworkOfficial]
	if !ok || set.FrontDefault == "" {
		return "", false
	}
	return set.FrontDefault, true
}

// TypeNames returns the type names in slot order.
func (p Pokemon) TypeNames() []string {
	names := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		name := t.Type.Name
		if name == "" {
			name = defaultTypeLabel
		}
		names = append(names, name)
	}
	return names
}

// Validate checks that every field a card needs is present.
// The returned error wraps ErrMalformed.
func (p Pokemon) Validate() error {
	var missing []string
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if _, ok := p.Attack(); !ok {
		missing = append(missing, "stats.attack")
	}
	if _, ok := p.PrimaryAbility(); !ok {
		missing = append(missing, "abilities[0]")
	}
	if _, ok := p.Artwork(); !ok {
		missing = append(missing, "sprites.other.official-artwork.front_default")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: record %q missing %s", ErrMalformed, p.Name, strings.Join(missing, ", "))
	}
	return nil
}
