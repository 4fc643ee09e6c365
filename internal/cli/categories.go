package cli

import (
	"context"
	"fmt"

	"github.com/cafeledger/cafe_ledger_app/internal/dto"
)

func (a *App) categoriesMenu(ctx context.Context) {
	for {
		fmt.Println()
		fmt.Println("Categories")
		fmt.Println("1. List categories")
		fmt.Println("2. Create category")
		fmt.Println("3. Delete category")
		fmt.Println("0. Back")

		choice, err := a.prompt("> ")
		if err != nil {
			return
		}

		switch choice {
		case "1":
			a.listCategories(ctx)
		case "2":
			a.createCategory(ctx)
		case "3":
			a.deleteCategory(ctx)
		case "0":
			return
		default:
			fmt.Println("Unknown choice.")
		}
	}
}

func (a *App) listCategories(ctx context.Context) {
	categories, err := a.services.Category.ListCategories(ctx, nil)
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}
	for _, cat := range categories {
		fmt.Printf("%s  %-8s  %s\n", cat.CategoryID, cat.Type, cat.Name)
	}
}

func (a *App) createCategory(ctx context.Context) {
	name, err := a.prompt("Name: ")
	if err != nil {
		return
	}
	categoryType, err := a.prompt("Type (expense/income): ")
	if err != nil {
		return
	}
	description, err := a.prompt("Description: ")
	if err != nil {
		return
	}

	category, err := a.services.Category.CreateCategory(ctx, dto.CreateCategoryRequest{
		Name:        name,
		Type:        categoryType,
		Description: description,
	}, a.currentUser.UserID)
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}
	fmt.Printf("Created category %s (%s)\n", category.Name, category.CategoryID)
}

func (a *App) deleteCategory(ctx context.Context) {
	categoryID, err := a.prompt("Category ID: ")
	if err != nil {
		return
	}
	if err := a.services.Category.DeleteCategory(ctx, categoryID, a.currentUser.UserID); err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}
	fmt.Println("Category deleted.")
}
