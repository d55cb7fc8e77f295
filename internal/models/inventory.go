package models

// LowStockThreshold is the quantity at or below which an inventory
// item is flagged as low stock.
const LowStockThreshold = 10

// InventoryItem represents an item in the pantry inventory
type InventoryItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	Category    string  `json:"category"`
	LastUpdated string  `json:"last_updated"`
}

// RecordID returns the inventory item identifier
func (i InventoryItem) RecordID() string { return i.ID }

// LowStock reports whether the item quantity is at or below the
// low-stock threshold.
func (i InventoryItem) LowStock() bool { return i.Quantity <= LowStockThreshold }

// InventoryCategory represents the storage category of an inventory item
type InventoryCategory string

const (
	CategoryFrozen       InventoryCategory = "Frozen"
	CategoryDryGoods     InventoryCategory = "Dry Goods"
	CategoryRefrigerated InventoryCategory = "Refrigerated"
	CategoryProduce      InventoryCategory = "Produce"
)

// InventoryCategories lists the recognized storage categories.
var InventoryCategories = []InventoryCategory{
	CategoryFrozen,
	CategoryDryGoods,
	CategoryRefrigerated,
	CategoryProduce,
}

// InventoryUnit represents the unit of measurement for an inventory item
type InventoryUnit string

const (
	UnitKilogram InventoryUnit = "kg"
	UnitLiter    InventoryUnit = "liters"
	UnitPiece    InventoryUnit = "pieces"
)
