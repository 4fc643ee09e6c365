package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	"github.com/cafeledger/cafe_ledger_app/internal/dto"
)

func (a *App) expensesMenu(ctx context.Context) {
	for {
		fmt.Println()
		fmt.Println("Expenses")
		fmt.Println("1. Record expense")
		fmt.Println("2. List recent expenses")
		fmt.Println("3. Delete expense")
		fmt.Println("0. Back")

		choice, err := a.prompt("> ")
		if err != nil {
			return
		}

		switch choice {
		case "1":
			a.recordExpense(ctx)
		case "2":
			a.listExpenses(ctx)
		case "3":
			a.deleteExpense(ctx)
		case "0":
			return
		default:
			fmt.Println("Unknown choice.")
		}
	}
}

func (a *App) recordExpense(ctx context.Context) {
	expenseType := domain.CategoryExpense
	categories, err := a.services.Category.ListCategories(ctx, &expenseType)
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}
	if len(categories) == 0 {
		fmt.Println("No expense categories exist yet.")
		return
	}

	fmt.Println("Categories:")
	for i, cat := range categories {
		fmt.Printf("  %d. %s\n", i+1, cat.Name)
	}
	idx, err := a.promptInt("Category number: ")
	if err != nil || idx < 1 || int(idx) > len(categories) {
		fmt.Println("Invalid category number.")
		return
	}
	category := categories[idx-1]

	amount, err := a.promptDecimal("Amount: ")
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}
	description, err := a.prompt("Description: ")
	if err != nil {
		return
	}
	date, err := a.promptDate("Date (YYYY-MM-DD, blank for today): ", time.Now())
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}

	expense, err := a.services.Expense.RecordExpense(ctx, dto.RecordExpenseRequest{
		CategoryID:  category.CategoryID,
		Amount:      amount,
		Description: description,
		ExpenseDate: date,
	}, a.currentUser.UserID)
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}

	fmt.Printf("Recorded expense %s: %s %s (%s)\n",
		expense.ExpenseID, expense.Amount.StringFixed(2), category.Name, expense.ExpenseDate.Format("2006-01-02"))
}

func (a *App) listExpenses(ctx context.Context) {
	expenses, err := a.services.Expense.ListExpenses(ctx, domain.ExpenseFilter{Limit: 20})
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}
	if len(expenses) == 0 {
		fmt.Println("No expenses recorded.")
		return
	}
	for _, e := range expenses {
		fmt.Printf("%s  %s  %10s  %s\n",
			e.ExpenseID, e.ExpenseDate.Format("2006-01-02"), e.Amount.StringFixed(2), e.Description)
	}
}

func (a *App) deleteExpense(ctx context.Context) {
	expenseID, err := a.prompt("Expense ID: ")
	if err != nil {
		return
	}
	if err := a.services.Expense.DeleteExpense(ctx, expenseID, a.currentUser.UserID); err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}
	fmt.Println("Expense deleted.")
}
