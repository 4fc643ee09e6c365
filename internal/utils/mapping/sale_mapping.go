package mapping

import (
	"database/sql"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	"github.com/cafeledger/cafe_ledger_app/internal/models"
)

// ToModelSale converts a domain Sale to a model Sale (lines excluded)
func ToModelSale(d domain.Sale) models.Sale {
	m := models.Sale{
		SaleID:        d.SaleID,
		UserID:        d.UserID,
		SaleDate:      d.SaleDate,
		TotalAmount:   d.TotalAmount,
		PaymentMethod: d.PaymentMethod,
		Notes:         d.Notes,
		Voided:        d.Voided,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
	if d.VoidReason != "" {
		m.VoidReason = sql.NullString{String: d.VoidReason, Valid: true}
	}
	return m
}

// ToDomainSale converts a model Sale to a domain Sale (lines excluded)
func ToDomainSale(m models.Sale) domain.Sale {
	d := domain.Sale{
		SaleID:        m.SaleID,
		UserID:        m.UserID,
		SaleDate:      m.SaleDate,
		TotalAmount:   m.TotalAmount,
		PaymentMethod: m.PaymentMethod,
		Notes:         m.Notes,
		Voided:        m.Voided,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.VoidReason.Valid {
		d.VoidReason = m.VoidReason.String
	}
	return d
}

// ToDomainSaleSlice converts model Sales to domain Sales
func ToDomainSaleSlice(ms []models.Sale) []domain.Sale {
	ds := make([]domain.Sale, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSale(m)
	}
	return ds
}

// ToModelSaleItem converts a domain SaleItem to a model SaleItem
func ToModelSaleItem(d domain.SaleItem) models.SaleItem {
	return models.SaleItem{
		SaleItemID: d.SaleItemID,
		SaleID:     d.SaleID,
		ItemID:     d.ItemID,
		Quantity:   d.Quantity,
		UnitPrice:  d.UnitPrice,
	}
}

// ToDomainSaleItem converts a model SaleItem to a domain SaleItem
func ToDomainSaleItem(m models.SaleItem) domain.SaleItem {
	return domain.SaleItem{
		SaleItemID: m.SaleItemID,
		SaleID:     m.SaleID,
		ItemID:     m.ItemID,
		Quantity:   m.Quantity,
		UnitPrice:  m.UnitPrice,
	}
}

// ToDomainSaleItemSlice converts model SaleItems to domain SaleItems
func ToDomainSaleItemSlice(ms []models.SaleItem) []domain.SaleItem {
	ds := make([]domain.SaleItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSaleItem(m)
	}
	return ds
}
