package cli

import (
	"context"
	"fmt"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	"github.com/cafeledger/cafe_ledger_app/internal/dto"
)

func (a *App) inventoryMenu(ctx context.Context) {
	for {
		fmt.Println()
		fmt.Println("Inventory")
		fmt.Println("1. List items")
		fmt.Println("2. Add item")
		fmt.Println("3. Restock item")
		fmt.Println("4. Adjust stock")
		fmt.Println("5. Low stock report")
		fmt.Println("6. Item history")
		fmt.Println("0. Back")

		choice, err := a.prompt("> ")
		if err != nil {
			return
		}

		switch choice {
		case "1":
			a.listInventory(ctx)
		case "2":
			a.addInventoryItem(ctx)
		case "3":
			a.restockItem(ctx)
		case "4":
			a.adjustStock(ctx)
		case "5":
			a.lowStock(ctx)
		case "6":
			a.itemHistory(ctx)
		case "0":
			return
		default:
			fmt.Println("Unknown choice.")
		}
	}
}

func printItem(item *domain.InventoryItem) {
	marker := ""
	if item.Quantity <= item.ReorderLevel {
		marker = "  LOW"
	}
	fmt.Printf("%s  %-24s  qty %5d  cost %8s  reorder at %d%s\n",
		item.ItemID, item.Name, item.Quantity, item.UnitCost.StringFixed(2), item.ReorderLevel, marker)
}

func (a *App) listInventory(ctx context.Context) {
	items, err := a.services.Inventory.ListItems(ctx, 100, 0)
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}
	for i := range items {
		printItem(&items[i])
	}
}

func (a *App) addInventoryItem(ctx context.Context) {
	name, err := a.prompt("Name: ")
	if err != nil {
		return
	}
	description, err := a.prompt("Description: ")
	if err != nil {
		return
	}
	quantity, err := a.promptInt("Opening quantity: ")
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}
	unitCost, err := a.promptDecimal("Unit cost: ")
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}
	reorderLevel, err := a.promptInt("Reorder level: ")
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}

	item, err := a.services.Inventory.AddItem(ctx, dto.AddInventoryItemRequest{
		Name:         name,
		Description:  description,
		Quantity:     quantity,
		UnitCost:     unitCost,
		ReorderLevel: reorderLevel,
	}, a.currentUser.UserID)
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}
	fmt.Printf("Added item %s (%s)\n", item.Name, item.ItemID)
}

func (a *App) restockItem(ctx context.Context) {
	itemID, err := a.prompt("Item ID: ")
	if err != nil {
		return
	}
	quantity, err := a.promptInt("Quantity to add: ")
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}
	notes, err := a.prompt("Notes: ")
	if err != nil {
		return
	}

	item, err := a.services.Inventory.Restock(ctx, itemID, quantity, notes, a.currentUser.UserID)
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}
	fmt.Printf("Restocked. %s now has %d on hand.\n", item.Name, item.Quantity)
}

func (a *App) adjustStock(ctx context.Context) {
	itemID, err := a.prompt("Item ID: ")
	if err != nil {
		return
	}
	delta, err := a.promptInt("Adjustment (signed, e.g. -3): ")
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}
	reason, err := a.prompt("Reason: ")
	if err != nil {
		return
	}

	item, err := a.services.Inventory.Adjust(ctx, itemID, delta, reason, a.currentUser.UserID)
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}
	fmt.Printf("Adjusted. %s now has %d on hand.\n", item.Name, item.Quantity)
}

func (a *App) lowStock(ctx context.Context) {
	items, err := a.services.Inventory.ListLowStockItems(ctx)
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}
	if len(items) == 0 {
		fmt.Println("No items at or below their reorder level.")
		return
	}
	for i := range items {
		printItem(&items[i])
	}
}

func (a *App) itemHistory(ctx context.Context) {
	itemID, err := a.prompt("Item ID: ")
	if err != nil {
		return
	}
	transactions, err := a.services.Inventory.GetTransactionHistory(ctx, itemID, 50)
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}
	for _, t := range transactions {
		fmt.Printf("%s  %-10s  %+5d  %s\n",
			t.OccurredAt.Format("2006-01-02 15:04"), t.Type, t.QuantityDelta, t.Notes)
	}
}
