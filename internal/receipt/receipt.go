package receipt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nathanguimaraes/frontend-bank/internal/domain"
)

// Render formats a frozen transfer as a plain-text receipt. The layout
// matches the document the bank's web front end produced, so existing
// archiving habits keep working.
func Render(t domain.Transfer, at time.Time) string {
	var b strings.Builder
	b.WriteString("Comprovante de Transferência\n")
	b.WriteString("---------------\n")
	fmt.Fprintf(&b, "Data: %s\n", at.Format("02/01/2006 15:04:05"))
	fmt.Fprintf(&b, "ID da Transferência: %s\n", t.ID)
	fmt.Fprintf(&b, "Valor: %s\n", domain.FormatBRL(t.Value))
	fmt.Fprintf(&b, "De: %s\n", t.Sender.FullName)
	fmt.Fprintf(&b, "Para: %s\n", t.Receiver.FullName)
	return b.String()
}

// FileName is the export name for a transfer's receipt.
func FileName(t domain.Transfer) string {
	return "comprovante-transferencia-" + t.ID + ".txt"
}

// Save writes the receipt into dir and returns the full path.
func Save(dir string, t domain.Transfer, at time.Time) (string, error) {
	path := filepath.Join(dir, FileName(t))
	if err := os.WriteFile(path, []byte(Render(t, at)), 0644); err != nil {
		return "", fmt.Errorf("failed to write receipt: %w", err)
	}
	return path, nil
}
