package database

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultBackupExt is appended to backup destinations that carry no
// extension of their own.
const DefaultBackupExt = ".db"

// Backup copies the live database file byte-for-byte to dest. The copy
// is not guarded against concurrent writes; callers get whatever is on
// disk at the time.
func Backup(livePath, dest string) (string, error) {
	dest = ensureExt(dest)
	if err := copyFile(livePath, dest); err != nil {
		return "", fmt.Errorf("backup failed: %w", err)
	}
	return dest, nil
}

// Restore overwrites the live database file with the contents of src.
func Restore(src, livePath string) error {
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}
	if err := copyFile(src, livePath); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}
	return nil
}

func ensureExt(path string) string {
	if filepath.Ext(path) == "" {
		return path + DefaultBackupExt
	}
	return path
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
