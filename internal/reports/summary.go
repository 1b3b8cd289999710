// Package reports derives report views from a transaction collection without
// additional storage round-trips. All functions are pure and deterministic.
//
// Amounts stay in integer cents throughout accumulation; two-decimal formatting
// happens only at export time so no rounding error can compound.
package reports

import (
	"sort"
	"time"

	"ledgerbook/internal/models"
)

// Labels and fallback color for transactions whose category cannot be resolved.
const (
	UncategorizedIncome  = "Uncategorized Income"
	UncategorizedExpense = "Uncategorized Expense"
	UncategorizedColor   = "#9CA3AF"
)

// CategoryTotal is a per-category sum with the category's display color.
type CategoryTotal struct {
	Name   string `json:"name"`
	Color  string `json:"color"`
	Amount int64  `json:"amount"`
}

// MonthTotal is one calendar month's income, expenses, and profit.
type MonthTotal struct {
	Label    string     `json:"label"`
	Year     int        `json:"year"`
	Month    time.Month `json:"month"`
	Income   int64      `json:"income"`
	Expenses int64      `json:"expenses"`
	Profit   int64      `json:"profit"`
}

// Summary holds all derived report views for a date range.
type Summary struct {
	TotalIncome        int64           `json:"total_income"`
	TotalExpenses      int64           `json:"total_expenses"`
	NetBalance         int64           `json:"net_balance"`
	IncomeByCategory   []CategoryTotal `json:"income_by_category"`
	ExpensesByCategory []CategoryTotal `json:"expenses_by_category"`
	MonthlyTrend       []MonthTotal    `json:"monthly_trend"`
}

// InRange reports whether a transaction date falls within [from, to],
// comparing calendar dates only.
func InRange(date, from, to time.Time) bool {
	d := truncateToDay(date)
	return !d.Before(truncateToDay(from)) && !d.After(truncateToDay(to))
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Summarize filters txs to the inclusive [from, to] date range and folds them
// into totals, per-category sums, and a chronological monthly trend.
func Summarize(txs []models.Transaction, from, to time.Time) Summary {
	var s Summary

	incomeCats := make(map[string]*CategoryTotal)
	expenseCats := make(map[string]*CategoryTotal)
	months := make(map[time.Time]*MonthTotal)

	for _, tx := range txs {
		if !InRange(tx.Date, from, to) {
			continue
		}

		name, color := bucket(tx)

		switch tx.Type {
		case models.TransactionTypeIncome:
			s.TotalIncome += tx.Amount
			addCategory(incomeCats, name, color, tx.Amount)
		case models.TransactionTypeExpense:
			s.TotalExpenses += tx.Amount
			addCategory(expenseCats, name, color, tx.Amount)
		default:
			continue
		}

		// Key months by the first day of the actual parsed month so the trend
		// sorts chronologically, never by label string.
		y, m, _ := tx.Date.Date()
		key := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
		entry, ok := months[key]
		if !ok {
			entry = &MonthTotal{Label: key.Format("Jan 2006"), Year: y, Month: m}
			months[key] = entry
		}
		if tx.Type == models.TransactionTypeIncome {
			entry.Income += tx.Amount
		} else {
			entry.Expenses += tx.Amount
		}
	}

	s.NetBalance = s.TotalIncome - s.TotalExpenses
	s.IncomeByCategory = sortCategories(incomeCats)
	s.ExpensesByCategory = sortCategories(expenseCats)

	keys := make([]time.Time, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	s.MonthlyTrend = make([]MonthTotal, 0, len(keys))
	for _, k := range keys {
		entry := months[k]
		entry.Profit = entry.Income - entry.Expenses
		s.MonthlyTrend = append(s.MonthlyTrend, *entry)
	}

	return s
}

// bucket resolves the category display name and color for a transaction,
// falling back to the synthetic uncategorized bucket.
func bucket(tx models.Transaction) (string, string) {
	if tx.Category != nil && tx.Category.Name != "" {
		return tx.Category.Name, tx.Category.Color
	}
	if tx.Type == models.TransactionTypeIncome {
		return UncategorizedIncome, UncategorizedColor
	}
	return UncategorizedExpense, UncategorizedColor
}

func addCategory(m map[string]*CategoryTotal, name, color string, amount int64) {
	if entry, ok := m[name]; ok {
		entry.Amount += amount
		return
	}
	m[name] = &CategoryTotal{Name: name, Color: color, Amount: amount}
}

// sortCategories flattens a bucket map, largest amounts first, names breaking ties.
func sortCategories(m map[string]*CategoryTotal) []CategoryTotal {
	out := make([]CategoryTotal, 0, len(m))
	for _, entry := range m {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Name < out[j].Name
	})
	return out
}
