// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karneev

package models

import "time"

// Stock actions recorded in an item's history. Every history entry carries
// exactly one of these tags; the tag must match the sign of the change,
// except for the initial "set" entry written when the item is created.
const (
	ActionIncrease = "increase"
	ActionDecrease = "decrease"
	ActionSet      = "set"
)

// StockItem is a single tracked household item. History is append-only and
// ordered oldest-first; the newest entry is always last.
type StockItem struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Stock       int            `json:"stock"`
	Category    string         `json:"category"`
	LastOrdered *time.Time     `json:"lastOrdered,omitempty"`
	History     []StockHistory `json:"history"`
}

// StockHistory is one stock change of an item.
//
// Invariant: NewStock == PreviousStock + Change.
type StockHistory struct {
	Timestamp     time.Time `json:"timestamp"`
	Change        int       `json:"change"`
	PreviousStock int       `json:"previousStock"`
	NewStock      int       `json:"newStock"`
	Action        string    `json:"action"`
}

// Category names a grouping of items. Uniqueness is by name.
type Category struct {
	Name string `json:"name"`
}

// DefaultCategories seeds a fresh local store.
var DefaultCategories = []string{
	"Pantry",
	"Fridge",
	"Cleaning",
	"Bathroom",
	"Household",
	"Other",
}
