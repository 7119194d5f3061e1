// Package services – GreetingService
//
// This file implements GreetingService, which backs the message-generation
// feature: given a relationship key (or a stored contact), it returns one
// greeting text chosen uniformly at random from the seeded catalog.
//
// Randomness is cosmetic only; no determinism or security property is
// required, so the global math/rand source is sufficient. An injectable
// IntN hook keeps tests deterministic.
package services

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"gorm.io/gorm"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mvrettas/go-celebrations-backend/internal/domain"
	"github.com/mvrettas/go-celebrations-backend/internal/repo"
)

// GreetingService picks greeting texts from the relationship-keyed catalog.
type GreetingService struct {
	// DB is the GORM handle used for catalog lookups.
	DB *gorm.DB

	// IntN returns a uniform value in [0, n). Defaults to math/rand.Intn
	// when nil; tests inject a fixed function.
	IntN func(n int) int
}

// Greeting is one generated message plus its display metadata.
type Greeting struct {
	Relationship domain.Relationship `json:"relationship"`
	// Label is the human-facing form of the relationship ("God-Mother").
	Label string `json:"label"`
	// Content is the greeting text with the contact name substituted.
	Content string `json:"content"`
}

var labelCaser = cases.Title(language.English)

// DisplayLabel renders a canonical relationship value in title case,
// preserving hyphenated compounds ("GRAND-SON" -> "Grand-Son").
func DisplayLabel(rel domain.Relationship) string {
	return labelCaser.String(strings.ToLower(rel.String()))
}

// Pick normalizes key (case-insensitive), loads the candidate list, and
// returns one entry chosen uniformly at random with {name} substituted.
// Unknown keys and empty candidate lists both yield ErrNoGreetings.
func (s *GreetingService) Pick(ctx context.Context, key, name string) (*Greeting, error) {
	rel, ok := domain.ParseRelationship(key)
	if !ok {
		return nil, ErrNoGreetings
	}
	rows, err := repo.ListGreetings(ctx, s.DB, rel)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoGreetings
	}

	intn := s.IntN
	if intn == nil {
		intn = rand.Intn
	}
	content := rows[intn(len(rows))].Content
	content = strings.ReplaceAll(content, "{name}", name)

	return &Greeting{
		Relationship: rel,
		Label:        DisplayLabel(rel),
		Content:      content,
	}, nil
}

// PickForContact loads the contact and picks a greeting for its stored
// relationship. A missing contact surfaces ErrContactNotFound.
func (s *GreetingService) PickForContact(ctx context.Context, id uint) (*Greeting, error) {
	c, err := repo.GetContact(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	return s.Pick(ctx, c.Option, c.Name)
}
