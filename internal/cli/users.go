package cli

import (
	"context"
	"fmt"

	"github.com/cafeledger/cafe_ledger_app/internal/dto"
	"github.com/cafeledger/cafe_ledger_app/pkg/backup"
)

func (a *App) usersMenu(ctx context.Context) {
	for {
		fmt.Println()
		fmt.Println("Users")
		fmt.Println("1. List users")
		fmt.Println("2. Create user")
		fmt.Println("3. Deactivate user")
		fmt.Println("4. Reactivate user")
		fmt.Println("0. Back")

		choice, err := a.prompt("> ")
		if err != nil {
			return
		}

		switch choice {
		case "1":
			a.listUsers(ctx)
		case "2":
			a.createUser(ctx)
		case "3":
			a.setUserActive(ctx, false)
		case "4":
			a.setUserActive(ctx, true)
		case "0":
			return
		default:
			fmt.Println("Unknown choice.")
		}
	}
}

func (a *App) listUsers(ctx context.Context) {
	users, err := a.services.User.ListUsers(ctx, 100, 0)
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}
	for _, u := range users {
		status := "active"
		if !u.IsActive {
			status = "inactive"
		}
		fmt.Printf("%s  %-16s  %-8s  %s\n", u.UserID, u.Username, u.Role, status)
	}
}

func (a *App) createUser(ctx context.Context) {
	username, err := a.prompt("Username: ")
	if err != nil {
		return
	}
	email, err := a.prompt("Email: ")
	if err != nil {
		return
	}
	password, err := a.prompt("Password: ")
	if err != nil {
		return
	}
	role, err := a.prompt("Role (admin/manager/staff, blank for staff): ")
	if err != nil {
		return
	}

	user, err := a.services.User.RegisterUser(ctx, dto.RegisterUserRequest{
		Username: username,
		Email:    email,
		Password: password,
		Role:     role,
	}, a.currentUser.UserID)
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}
	fmt.Printf("Created user %s (%s)\n", user.Username, user.UserID)
}

func (a *App) setUserActive(ctx context.Context, active bool) {
	userID, err := a.prompt("User ID: ")
	if err != nil {
		return
	}

	if active {
		err = a.services.User.ReactivateUser(ctx, userID, a.currentUser.UserID)
	} else {
		err = a.services.User.DeactivateUser(ctx, userID, a.currentUser.UserID)
	}
	if err != nil {
		fmt.Println("Error:", errMessage(err))
		return
	}
	fmt.Println("User status updated.")
}

func (a *App) runBackup(ctx context.Context) {
	fmt.Println("Running pg_dump...")
	path, err := backup.Run(ctx, a.cfg.DatabaseURL, a.cfg.BackupDir)
	if err != nil {
		fmt.Println("Backup failed:", errMessage(err))
		return
	}
	fmt.Println("Backup written to", path)

	existing, err := backup.List(a.cfg.BackupDir)
	if err == nil && len(existing) > 1 {
		fmt.Printf("%d backups on disk.\n", len(existing))
	}
}
