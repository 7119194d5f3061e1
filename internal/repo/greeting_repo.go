// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Greeting
// catalog (the message cache).
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/mvrettas/go-celebrations-backend/internal/domain"
)

// SeedGreetings populates the greetings table from the built-in catalog,
// only when the table is still empty. Idempotent; safe to call on every
// launch. Returns the number of rows inserted (0 on a re-run).
func SeedGreetings(ctx context.Context, db *gorm.DB) (int, error) {
	var total int64
	if err := db.WithContext(ctx).Model(&domain.Greeting{}).Count(&total).Error; err != nil {
		return 0, err
	}
	if total > 0 {
		return 0, nil
	}

	// Deterministic insert order: picker order, then catalog order.
	rows := make([]domain.Greeting, 0, 64)
	for _, rel := range domain.Relationships {
		for _, content := range domain.DefaultGreetings[rel] {
			rows = append(rows, domain.Greeting{Relationship: rel.String(), Content: content})
		}
	}
	if len(rows) == 0 {
		return 0, nil
	}
	if err := db.WithContext(ctx).Create(&rows).Error; err != nil {
		return 0, err
	}
	return len(rows), nil
}

// ListGreetings returns the candidate texts for a relationship in insertion
// order. An unmatched key yields an empty slice, not an error.
func ListGreetings(ctx context.Context, db *gorm.DB, rel domain.Relationship) ([]domain.Greeting, error) {
	var out []domain.Greeting
	err := db.WithContext(ctx).
		Where("relationship = ?", rel.String()).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

// CountGreetings returns the total number of catalog rows.
func CountGreetings(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.Greeting{}).Count(&total).Error
	return total, err
}
