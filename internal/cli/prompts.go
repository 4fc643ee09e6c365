package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

func (a *App) promptInt(label string) (int64, error) {
	raw, err := a.prompt(label)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a whole number: %q", raw)
	}
	return v, nil
}

func (a *App) promptDecimal(label string) (decimal.Decimal, error) {
	raw, err := a.prompt(label)
	if err != nil {
		return decimal.Zero, err
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("not an amount: %q", raw)
	}
	return v, nil
}

// promptDate reads a YYYY-MM-DD date. An empty answer returns fallback.
func (a *App) promptDate(label string, fallback time.Time) (time.Time, error) {
	raw, err := a.prompt(label)
	if err != nil {
		return time.Time{}, err
	}
	if raw == "" {
		return fallback, nil
	}
	v, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("not a date (expected YYYY-MM-DD): %q", raw)
	}
	return v, nil
}
