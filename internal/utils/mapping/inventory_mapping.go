package mapping

import (
	"database/sql"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	"github.com/cafeledger/cafe_ledger_app/internal/models"
)

// ToModelInventoryItem converts a domain InventoryItem to a model InventoryItem
func ToModelInventoryItem(d domain.InventoryItem) models.InventoryItem {
	m := models.InventoryItem{
		ItemID:       d.ItemID,
		Name:         d.Name,
		Description:  d.Description,
		Quantity:     d.Quantity,
		UnitCost:     d.UnitCost,
		ReorderLevel: d.ReorderLevel,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
	if d.LastRestockedAt != nil {
		m.LastRestockedAt = sql.NullTime{Time: *d.LastRestockedAt, Valid: true}
	}
	return m
}

// ToDomainInventoryItem converts a model InventoryItem to a domain InventoryItem
func ToDomainInventoryItem(m models.InventoryItem) domain.InventoryItem {
	d := domain.InventoryItem{
		ItemID:       m.ItemID,
		Name:         m.Name,
		Description:  m.Description,
		Quantity:     m.Quantity,
		UnitCost:     m.UnitCost,
		ReorderLevel: m.ReorderLevel,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
	if m.LastRestockedAt.Valid {
		t := m.LastRestockedAt.Time
		d.LastRestockedAt = &t
	}
	return d
}

// ToDomainInventoryItemSlice converts a slice of model items to domain items
func ToDomainInventoryItemSlice(ms []models.InventoryItem) []domain.InventoryItem {
	ds := make([]domain.InventoryItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInventoryItem(m)
	}
	return ds
}

// ToModelInventoryTransaction converts a domain InventoryTransaction to its model
func ToModelInventoryTransaction(d domain.InventoryTransaction) models.InventoryTransaction {
	return models.InventoryTransaction{
		TransactionID: d.TransactionID,
		ItemID:        d.ItemID,
		Type:          string(d.Type),
		QuantityDelta: d.QuantityDelta,
		UserID:        d.UserID,
		Notes:         d.Notes,
		OccurredAt:    d.OccurredAt,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainInventoryTransaction converts a model InventoryTransaction to its domain form
func ToDomainInventoryTransaction(m models.InventoryTransaction) domain.InventoryTransaction {
	return domain.InventoryTransaction{
		TransactionID: m.TransactionID,
		ItemID:        m.ItemID,
		Type:          domain.StockTransactionType(m.Type),
		QuantityDelta: m.QuantityDelta,
		UserID:        m.UserID,
		Notes:         m.Notes,
		OccurredAt:    m.OccurredAt,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainInventoryTransactionSlice converts model transactions to domain transactions
func ToDomainInventoryTransactionSlice(ms []models.InventoryTransaction) []domain.InventoryTransaction {
	ds := make([]domain.InventoryTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInventoryTransaction(m)
	}
	return ds
}
