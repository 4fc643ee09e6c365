package cli

import (
	"context"
	"fmt"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	"github.com/cafeledger/cafe_ledger_app/internal/dto"
)

func (a *App) salesMenu(ctx context.Context) {
	for {
		fmt.Println()
		fmt.Println("Sales")
		fmt.Println("1. Record sale")
		fmt.Println("2. List recent sales")
		fmt.Println("3. Void sale")
		fmt.Println("0. Back")

		choice, err := a.prompt("> ")
		if err != nil {
			return
		}

		switch choice {
		case "1":
			a.recordSale(ctx)
		case "2":
			a.listSales(ctx)
		case "3":
			a.voidSale(ctx)
		case "0":
			return
		default:
			fmt.Println("Unknown choice.")
		}
	}
}

func (a *App) recordSale(ctx context.Context) {
	var lines []dto.SaleLineRequest
	for {
		itemID, err := a.prompt("Item ID (blank to finish): ")
		if err != nil {
			return
		}
		if itemID == "" {
			break
		}
		quantity, err := a.promptInt("Quantity: ")
		if err != nil {
			fmt.Println("Error:", errMessage(err))
			continue
		}
		unitPrice, err := a.promptDecimal("Unit price: ")
		if err != nil {
			fmt.Println("Error:", errMessage(err))
			continue
		}
		lines = append(lines, dto.SaleLineRequest{ItemID: itemID, Quantity: quantity, UnitPrice: unitPrice})
	}
	if len(lines) == 0 {
		fmt.Println("Sale cancelled: no lines.")
		return
	}

	paymentMethod, err := a.prompt("Payment method (cash/card/upi/other): ")
	if err != nil {
		return
	}
	notes, err := a.prompt("Notes: ")
	if err != nil {
		return
	}

	sale, err := a.services.Sales.RecordSale(ctx, dto.RecordSaleRequest{
		PaymentMethod: paymentMethod,
		Notes:         notes,
		Items:         lines,
	}, a.currentUser.UserID)
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}

	fmt.Printf("Sale %s recorded, total %s\n", sale.SaleID, sale.TotalAmount.StringFixed(2))
}

func (a *App) listSales(ctx context.Context) {
	sales, err := a.services.Sales.ListSales(ctx, domain.SaleFilter{Limit: 20})
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}
	if len(sales) == 0 {
		fmt.Println("No sales recorded.")
		return
	}
	for _, s := range sales {
		fmt.Printf("%s  %s  %10s  %-6s  %s\n",
			s.SaleID, s.SaleDate.Format("2006-01-02 15:04"), s.TotalAmount.StringFixed(2), s.PaymentMethod, s.Notes)
	}
}

func (a *App) voidSale(ctx context.Context) {
	saleID, err := a.prompt("Sale ID: ")
	if err != nil {
		return
	}
	reason, err := a.prompt("Reason: ")
	if err != nil {
		return
	}
	if err := a.services.Sales.VoidSale(ctx, saleID, reason, a.currentUser.UserID); err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}
	fmt.Println("Sale voided; stock restored.")
}
