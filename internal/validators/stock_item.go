// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karneev

package validators

import (
	"context"
	"strings"

	"github.com/mkarneev/homestock/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldID targets the unique identifier of a stock item.
	FieldID = "id"

	// FieldName targets the human-readable item name.
	FieldName = "name"

	// FieldStock targets the current stock counter.
	FieldStock = "stock"

	// FieldHistory targets the append-only stock change log.
	FieldHistory = "history"
)

// allowedActions is the exhaustive set of history action tags. Any action
// not present here is considered invalid.
var allowedActions = []string{
	models.ActionIncrease,
	models.ActionDecrease,
	models.ActionSet,
}

// StockItemValidator implements the Validator interface for stock items and
// item batches.
//
// It supports both value and pointer receivers and allows optional
// field-level scoping via variadic field name arguments.
type StockItemValidator struct {
}

// NewStockItemValidator constructs a new StockItemValidator and returns it
// as the Validator interface.
func NewStockItemValidator() Validator {
	return &StockItemValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Supported types:
//   - models.StockItem / *models.StockItem
//   - []models.StockItem
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// all fields are validated.
func (v *StockItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.StockItem:
		return v.validateStockItem(ctx, value, fields...)
	case *models.StockItem:
		return v.validateStockItem(ctx, *value, fields...)

	case []models.StockItem:
		for _, item := range value {
			if err := v.validateStockItem(ctx, item, fields...); err != nil {
				return err
			}
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func isValidAction(action string) bool {
	for _, a := range allowedActions {
		if action == a {
			return true
		}
	}
	return false
}

// validateStockItem validates a single StockItem.
//
// Default validated fields (when none specified): ID, Name, Stock, History.
//
// The history check enforces the arithmetic of every entry
// (NewStock == PreviousStock + Change) and the continuity of the chain
// (each entry starts where the previous one ended).
func (v *StockItemValidator) validateStockItem(_ context.Context, item models.StockItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldStock, FieldHistory}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if item.ID == "" {
				return ErrEmptyItemID
			}
		case FieldName:
			if strings.TrimSpace(item.Name) == "" {
				return ErrEmptyName
			}
		case FieldStock:
			if item.Stock < 0 {
				return ErrNegativeStock
			}
		case FieldHistory:
			for i, h := range item.History {
				if h.NewStock != h.PreviousStock+h.Change {
					return ErrBrokenHistory
				}
				if !isValidAction(h.Action) {
					return ErrUnknownAction
				}
				if i > 0 && h.PreviousStock != item.History[i-1].NewStock {
					return ErrBrokenHistory
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
