package export

import (
	"fmt"
	"time"
)

// Column is one exported field: header, PDF cell width in mm, and the
// formatted value for a row.
type Column[T any] struct {
	Header string
	Width  float64
	Value  func(T) string
}

// Layout is the static per-entity column set driving both PDF and Excel output.
type Layout[T any] struct {
	Title   string
	Columns []Column[T]
}

func FormatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

func FormatMoney(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
