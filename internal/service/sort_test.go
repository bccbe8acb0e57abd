package service_test

import (
	"testing"

	"bookmark-manager-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestComputeSortOrdersUnfiltered(t *testing.T) {
	// Existing [{1,10},{2,5}], dragged into displayed order [2,1]:
	// fresh orders above the old max, top first.
	items := []service.SortItem{
		{ID: 2, SortOrder: 5},
		{ID: 1, SortOrder: 10},
	}

	updates := service.ComputeSortOrders(items, false, 0)

	assert.Equal(t, []service.OrderUpdate{
		{ID: 2, SortOrder: 12},
		{ID: 1, SortOrder: 11},
	}, updates)
}

func TestComputeSortOrdersUnfilteredAlreadyOrdered(t *testing.T) {
	items := []service.SortItem{
		{ID: 1, SortOrder: 10},
		{ID: 2, SortOrder: 5},
	}

	updates := service.ComputeSortOrders(items, false, 0)

	// New orders are assigned, but the displayed arrangement is unchanged:
	// applying them keeps the same descending sequence of IDs.
	assert.Equal(t, []service.OrderUpdate{
		{ID: 1, SortOrder: 12},
		{ID: 2, SortOrder: 11},
	}, updates)
	assert.Greater(t, updates[0].SortOrder, updates[1].SortOrder)
}

func TestComputeSortOrdersUnfilteredStoreMaxFloor(t *testing.T) {
	// The displayed list can be a partial page: rows outside it may hold
	// larger orders, so the store-wide max anchors the fresh values.
	items := []service.SortItem{
		{ID: 1, SortOrder: 5},
		{ID: 2, SortOrder: 3},
	}

	updates := service.ComputeSortOrders(items, false, 50)

	assert.Equal(t, []service.OrderUpdate{
		{ID: 1, SortOrder: 52},
		{ID: 2, SortOrder: 51},
	}, updates)
}

func TestComputeSortOrdersFilteredReusesPool(t *testing.T) {
	// A filtered view reuses the existing order values so hidden bookmarks
	// keep their relative position.
	items := []service.SortItem{
		{ID: 3, SortOrder: 4},
		{ID: 1, SortOrder: 20},
		{ID: 2, SortOrder: 8},
	}

	updates := service.ComputeSortOrders(items, true, 0)

	assert.Equal(t, []service.OrderUpdate{
		{ID: 3, SortOrder: 20},
		{ID: 1, SortOrder: 8},
		{ID: 2, SortOrder: 4},
	}, updates)
}

func TestComputeSortOrdersFilteredNoChanges(t *testing.T) {
	items := []service.SortItem{
		{ID: 1, SortOrder: 20},
		{ID: 2, SortOrder: 8},
		{ID: 3, SortOrder: 4},
	}

	updates := service.ComputeSortOrders(items, true, 0)

	assert.Empty(t, updates)
}

func TestComputeSortOrdersFilteredUniformPool(t *testing.T) {
	// All orders equal: the pool cannot express an order, so distinct
	// values are synthesized above the shared value.
	items := []service.SortItem{
		{ID: 1, SortOrder: 5},
		{ID: 2, SortOrder: 5},
		{ID: 3, SortOrder: 5},
	}

	updates := service.ComputeSortOrders(items, true, 0)

	assert.Equal(t, []service.OrderUpdate{
		{ID: 1, SortOrder: 7},
		{ID: 2, SortOrder: 6},
	}, updates)
}

func TestComputeSortOrdersEmpty(t *testing.T) {
	assert.Empty(t, service.ComputeSortOrders(nil, false, 0))
	assert.Empty(t, service.ComputeSortOrders(nil, true, 0))
}
