// Package cli implements the interactive terminal frontend. It drives the
// same service container as the HTTP API, so every rule enforced there
// applies here too.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/cafeledger/cafe_ledger_app/internal/core/domain"
	portssvc "github.com/cafeledger/cafe_ledger_app/internal/core/ports/services"
	"github.com/cafeledger/cafe_ledger_app/internal/dto"
	"github.com/cafeledger/cafe_ledger_app/pkg/config"
)

// App holds the CLI session state.
type App struct {
	services *portssvc.ServiceContainer
	cfg      *config.Config
	reader   *bufio.Reader
	logger   *slog.Logger

	currentUser  *domain.User
	lastActivity time.Time
	idleGap      time.Duration
}

// New creates a CLI app over the given service container.
func New(services *portssvc.ServiceContainer, cfg *config.Config, logger *slog.Logger) *App {
	return &App{
		services: services,
		cfg:      cfg,
		reader:   bufio.NewReader(os.Stdin),
		logger:   logger,
	}
}

// Run starts the login prompt followed by the main menu loop. It returns when
// the user quits or stdin is closed.
func (a *App) Run(ctx context.Context) error {
	fmt.Println("Cafe Ledger")
	fmt.Println("===========")

	if err := a.firstRunSetup(ctx); err != nil {
		return quitOnEOF(err)
	}

	if err := a.login(ctx); err != nil {
		return quitOnEOF(err)
	}

	for {
		fmt.Println()
		fmt.Printf("Logged in as %s (%s)\n", a.currentUser.Username, a.currentUser.Role)
		fmt.Println("1. Expenses")
		fmt.Println("2. Categories")
		fmt.Println("3. Inventory")
		fmt.Println("4. Sales")
		fmt.Println("5. Reports")
		if a.currentUser.Role == domain.RoleAdmin {
			fmt.Println("6. Users")
			fmt.Println("7. Backup")
		}
		fmt.Println("0. Quit")

		choice, err := a.prompt("> ")
		if err != nil {
			return quitOnEOF(err)
		}

		if a.cfg.SessionTimeout > 0 && a.idleGap > a.cfg.SessionTimeout {
			fmt.Println("Session expired; please log in again.")
			a.currentUser = nil
			if err := a.login(ctx); err != nil {
				return quitOnEOF(err)
			}
			continue
		}

		switch choice {
		case "1":
			a.expensesMenu(ctx)
		case "2":
			a.categoriesMenu(ctx)
		case "3":
			a.inventoryMenu(ctx)
		case "4":
			a.salesMenu(ctx)
		case "5":
			a.reportsMenu(ctx)
		case "6":
			if a.currentUser.Role == domain.RoleAdmin {
				a.usersMenu(ctx)
			}
		case "7":
			if a.currentUser.Role == domain.RoleAdmin {
				a.runBackup(ctx)
			}
		case "0", "q", "quit":
			fmt.Println("Goodbye.")
			return nil
		default:
			fmt.Println("Unknown choice.")
		}
	}
}

// firstRunSetup creates the initial admin account interactively when the
// installation has no users yet.
func (a *App) firstRunSetup(ctx context.Context) error {
	count, err := a.services.User.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for existing users: %w", err)
	}
	if count > 0 {
		return nil
	}

	fmt.Println("No users exist yet. Create the first admin account.")
	for {
		username, err := a.prompt("Admin username: ")
		if err != nil {
			return err
		}
		email, err := a.prompt("Admin email: ")
		if err != nil {
			return err
		}
		password, err := a.prompt("Admin password: ")
		if err != nil {
			return err
		}

		admin, err := a.services.User.RegisterUser(ctx, dto.RegisterUserRequest{
			Username: username,
			Email:    email,
			Password: password,
			Role:     "admin",
		}, "system")
		if err != nil {
			fmt.Println("Could not create admin:", errMessage(err))
			continue
		}

		a.logger.Info("First admin created via CLI", slog.String("user_id", admin.UserID))
		fmt.Println("Admin account created. Please log in.")
		return nil
	}
}

// login asks for credentials until authentication succeeds or stdin closes.
func (a *App) login(ctx context.Context) error {
	for {
		username, err := a.prompt("Username: ")
		if err != nil {
			return err
		}
		password, err := a.prompt("Password: ")
		if err != nil {
			return err
		}

		user, err := a.services.Auth.Authenticate(ctx, username, password)
		if err != nil {
			fmt.Println("Login failed:", errMessage(err))
			continue
		}

		a.currentUser = user
		a.lastActivity = time.Now()
		a.logger.Info("CLI login", slog.String("user_id", user.UserID))
		return nil
	}
}

// errMessage strips nothing; services already produce user-facing messages.
func errMessage(err error) string {
	return err.Error()
}

// quitOnEOF turns a closed stdin (Ctrl-D) into a normal exit. Any other
// input error is still fatal.
func quitOnEOF(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Println("Goodbye.")
		return nil
	}
	return err
}

func (a *App) prompt(label string) (string, error) {
	fmt.Print(label)
	line, err := a.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("input closed: %w", err)
	}
	// Idle time is measured between consecutive inputs.
	if !a.lastActivity.IsZero() {
		a.idleGap = time.Since(a.lastActivity)
	}
	a.lastActivity = time.Now()
	return strings.TrimSpace(line), nil
}
