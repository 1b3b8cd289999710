package reports

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"time"

	"ledgerbook/internal/models"
)

// WriteCSV writes the transactions within [from, to] to w as CSV, oldest
// first. Amounts are formatted to two decimal places at this edge only.
func WriteCSV(w io.Writer, txs []models.Transaction, from, to time.Time) error {
	filtered := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if InRange(tx.Date, from, to) {
			filtered = append(filtered, tx)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.Before(filtered[j].Date)
	})

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "type", "amount", "category", "account", "document_no", "description"}); err != nil {
		return err
	}

	for _, tx := range filtered {
		category := ""
		if tx.Category != nil {
			category = tx.Category.Name
		}
		record := []string{
			tx.Date.Format("2006-01-02"),
			string(tx.Type),
			FormatCents(tx.Amount),
			category,
			tx.Account,
			tx.DocumentNo,
			tx.Description,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// FormatCents renders an amount in cents as a decimal string with two places.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
