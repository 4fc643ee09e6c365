package backup

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// Run produces a plain-SQL dump of the database using pg_dump and writes it
// to a timestamped file under backupDir. It returns the path of the dump.
func Run(ctx context.Context, databaseURL, backupDir string) (string, error) {
	if databaseURL == "" {
		return "", fmt.Errorf("database URL cannot be empty")
	}

	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	filename := fmt.Sprintf("cafeledger_%s.sql", time.Now().Format("20060102_150405"))
	target := filepath.Join(backupDir, filename)

	cmd := exec.CommandContext(ctx, "pg_dump", "--no-owner", "--format=plain", "--file="+target, databaseURL)
	if out, err := cmd.CombinedOutput(); err != nil {
		// Remove the partial dump so a failed run never looks like a backup.
		_ = os.Remove(target)
		return "", fmt.Errorf("pg_dump failed: %w: %s", err, string(out))
	}

	return target, nil
}

// List returns the existing backup files in backupDir, newest first.
func List(backupDir string) ([]string, error) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".sql" {
			continue
		}
		files = append(files, filepath.Join(backupDir, e.Name()))
	}

	// ReadDir sorts ascending by name; timestamped names make that
	// chronological, so reverse for newest first.
	for i, j := 0, len(files)-1; i < j; i, j = i+1, j-1 {
		files[i], files[j] = files[j], files[i]
	}

	return files, nil
}
