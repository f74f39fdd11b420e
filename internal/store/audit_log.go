package store

import (
	"fmt"
	"os"

	"github.com/fjod/go_cart/console-shop/internal/domain"
)

// FileAuditLog appends lines to a text file. The file is opened and closed on
// every Append; no handle is held between orders.
type FileAuditLog struct {
	Path string
}

func NewFileAuditLog(path string) *FileAuditLog {
	return &FileAuditLog{Path: path}
}

func (f *FileAuditLog) Append(line string) error {
	file, err := os.OpenFile(f.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", f.Path, err)
	}

	if _, err := fmt.Fprintln(file, line); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", f.Path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", f.Path, err)
	}
	return nil
}

// AuditLine formats the persisted record for a stored order.
func AuditLine(o domain.Order) string {
	return fmt.Sprintf("[LOG] -> Order ID: %d has been successfully checked out and paid using %s.", o.ID, o.PaymentMethod)
}
