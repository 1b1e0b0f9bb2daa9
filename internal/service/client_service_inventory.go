// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Karneev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mkarneev/homestock/internal/store"
	"github.com/mkarneev/homestock/internal/validators"
	"github.com/mkarneev/homestock/models"
)

type inventoryService struct {
	items      store.ItemRepository
	categories store.CategoryRepository
	snapshot   store.SnapshotRepository
	devices    DeviceService
	sync       SyncService
	validator  validators.Validator
}

func NewInventoryService(items store.ItemRepository, categories store.CategoryRepository, snapshot store.SnapshotRepository, devices DeviceService, syncSvc SyncService) InventoryService {
	return &inventoryService{
		items:      items,
		categories: categories,
		snapshot:   snapshot,
		devices:    devices,
		sync:       syncSvc,
		validator:  validators.NewStockItemValidator(),
	}
}

func (s *inventoryService) AddItem(ctx context.Context, name string, initialStock int, category string) (models.StockItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.StockItem{}, ErrNameRequired
	}

	now := time.Now()
	item := models.StockItem{
		ID:       uuid.NewString(),
		Name:     name,
		Stock:    initialStock,
		Category: category,
		History: []models.StockHistory{{
			Timestamp:     now,
			Change:        initialStock,
			PreviousStock: 0,
			NewStock:      initialStock,
			Action:        models.ActionSet,
		}},
	}

	if err := s.items.SaveItem(ctx, item); err != nil {
		return models.StockItem{}, fmt.Errorf("add item: %w", err)
	}

	return item, nil
}

func (s *inventoryService) UpdateStock(ctx context.Context, id string, newStock int, action string) (models.StockItem, error) {
	item, err := s.items.GetItem(ctx, id)
	if err != nil {
		return models.StockItem{}, fmt.Errorf("update stock: %w", err)
	}

	change := newStock - item.Stock
	if action == "" {
		action = stockAction(change)
	}

	now := time.Now()
	if change > 0 {
		item.LastOrdered = &now
	}

	item.History = append(item.History, models.StockHistory{
		Timestamp:     now,
		Change:        change,
		PreviousStock: item.Stock,
		NewStock:      newStock,
		Action:        action,
	})
	item.Stock = newStock

	if err = s.items.SaveItem(ctx, item); err != nil {
		return models.StockItem{}, fmt.Errorf("update stock: %w", err)
	}

	return item, nil
}

func stockAction(change int) string {
	switch {
	case change > 0:
		return models.ActionIncrease
	case change < 0:
		return models.ActionDecrease
	default:
		return models.ActionSet
	}
}

func (s *inventoryService) DeleteItem(ctx context.Context, id string) error {
	if err := s.items.DeleteItem(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func (s *inventoryService) Get(ctx context.Context, id string) (models.StockItem, error) {
	return s.items.GetItem(ctx, id)
}

func (s *inventoryService) GetAll(ctx context.Context) ([]models.StockItem, error) {
	return s.items.GetAllItems(ctx)
}

func (s *inventoryService) Search(ctx context.Context, query string) ([]models.StockItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.items.GetAllItems(ctx)
	}
	return s.items.SearchItems(ctx, query)
}

func (s *inventoryService) AddCategory(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	return s.categories.AddCategory(ctx, name)
}

func (s *inventoryService) DeleteCategory(ctx context.Context, name string) error {
	return s.categories.DeleteCategory(ctx, name)
}

func (s *inventoryService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.GetAllCategories(ctx)
}

func (s *inventoryService) ExportData(ctx context.Context) ([]byte, error) {
	items, err := s.items.GetAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("export data: %w", err)
	}

	for i := range items {
		items[i].History = []models.StockHistory{}
	}

	payload, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export data: %w", err)
	}

	return payload, nil
}

func (s *inventoryService) ExportFullData(ctx context.Context) ([]byte, error) {
	items, err := s.items.GetAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("export full data: %w", err)
	}
	categories, err := s.categories.GetAllCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("export full data: %w", err)
	}

	doc := models.FullExport{
		Version:    models.FullExportVersion,
		Timestamp:  time.Now(),
		Items:      items,
		Categories: categories,
	}

	if device, err := s.devices.GetDeviceInfo(ctx); err == nil {
		doc.DeviceInfo = &device
	}
	if status, err := s.sync.Status(ctx); err == nil && status.Configured() {
		doc.SyncStatus = &status
	}
	if group, err := s.devices.GetSyncGroup(ctx); err == nil && group.ID != "" {
		doc.SyncGroup = &group
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export full data: %w", err)
	}

	return payload, nil
}

func (s *inventoryService) ImportData(ctx context.Context, payload []byte) error {
	var items []models.StockItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidFormat, err)
	}

	for _, item := range items {
		// Histories are imported as-is, so only identity fields are checked.
		if err := s.validator.Validate(ctx, item, validators.FieldID, validators.FieldName); err != nil {
			return fmt.Errorf("%w: %w", store.ErrInvalidFormat, err)
		}
		if err := s.items.SaveItem(ctx, item); err != nil {
			return fmt.Errorf("import item %s: %w", item.ID, err)
		}
	}

	return nil
}

func (s *inventoryService) ImportFullData(ctx context.Context, payload []byte) error {
	// Key presence is checked before decoding so a structurally valid JSON
	// object missing either collection fails closed instead of silently
	// wiping the store.
	var shape map[string]json.RawMessage
	if err := json.Unmarshal(payload, &shape); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidFormat, err)
	}
	if _, ok := shape["items"]; !ok {
		return fmt.Errorf("%w: missing items", store.ErrInvalidFormat)
	}
	if _, ok := shape["categories"]; !ok {
		return fmt.Errorf("%w: missing categories", store.ErrInvalidFormat)
	}

	var doc models.FullExport
	if err := json.Unmarshal(payload, &doc); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidFormat, err)
	}

	// Clear and repopulate in one transaction, so a failed restore leaves
	// the store as it was.
	if err := s.snapshot.ReplaceAll(ctx, doc.Items, doc.Categories); err != nil {
		return fmt.Errorf("import full data: %w", err)
	}

	if doc.SyncGroup != nil {
		if err := s.devices.ReplaceSyncGroup(ctx, *doc.SyncGroup); err != nil {
			return fmt.Errorf("import full data: restore sync group: %w", err)
		}
	}

	return nil
}
