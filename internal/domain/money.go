package domain

import (
	"strconv"
	"strings"
	"time"
)

// XOF is an amount in CFA francs. The currency has no minor unit.
type XOF int64

// String formats the amount with narrow no-break space thousands
// separators, e.g. "1 250 000 FCFA".
func (a XOF) String() string {
	return groupThousands(int64(a)) + " FCFA"
}

func groupThousands(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString("\u202f")
		}
		b.WriteRune(d)
	}
	return b.String()
}

// FormatDate renders t the way French forms do (dd/mm/yyyy). The zero
// time renders as a dash.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006")
}
