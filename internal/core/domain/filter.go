package domain

import (
	"strings"
	"time"
)

// RelativeRange is a named date window derived from the clock at evaluation time.
type RelativeRange string

const (
	RangeToday      RelativeRange = "today"
	RangeThisMonth  RelativeRange = "thisMonth"
	RangeLast7Days  RelativeRange = "last7Days"
	RangeLast15Days RelativeRange = "last15Days"
	RangeLastMonth  RelativeRange = "lastMonth"
)

// ParseRelativeRange resolves a range name case-insensitively.
func ParseRelativeRange(s string) (RelativeRange, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return RangeToday, true
	case "thismonth":
		return RangeThisMonth, true
	case "last7days":
		return RangeLast7Days, true
	case "last15days":
		return RangeLast15Days, true
	case "lastmonth":
		return RangeLastMonth, true
	}
	return "", false
}

// Window computes the inclusive [from, to] date window for the range,
// relative to now. Comparison is at day granularity; time of day is ignored.
func (r RelativeRange) Window(now time.Time) (from, to Date, ok bool) {
	today := DateOf(now)
	switch r {
	case RangeToday:
		return today, today, true
	case RangeThisMonth:
		first := NewDate(today.Year, today.Month, 1)
		last := NewDate(today.Year, today.Month, DaysInMonth(today.Year, today.Month))
		return first, last, true
	case RangeLast7Days:
		return today.AddDays(-6), today, true
	case RangeLast15Days:
		return today.AddDays(-14), today, true
	case RangeLastMonth:
		first := NewDate(today.Year, today.Month-1, 1)
		last := NewDate(first.Year, first.Month, DaysInMonth(first.Year, first.Month))
		return first, last, true
	}
	return Date{}, Date{}, false
}

type dateFilterKind int

const (
	dateFilterNone dateFilterKind = iota
	dateFilterExact
	dateFilterRange
	dateFilterRelative
)

// DateFilter is the single date criterion of a transaction filter. Exactly one
// mode is active at a time; the constructors make conflicting combinations
// unrepresentable. The zero value matches every date.
type DateFilter struct {
	kind     dateFilterKind
	exact    Date
	from, to Date
	relative RelativeRange
}

// NoDateFilter matches every date.
func NoDateFilter() DateFilter {
	return DateFilter{}
}

// ExactDateFilter matches transactions dated exactly d.
func ExactDateFilter(d Date) DateFilter {
	return DateFilter{kind: dateFilterExact, exact: d}
}

// RangeDateFilter matches dates within [from, to] inclusive. If either bound
// is missing the filter is inactive and matches everything.
func RangeDateFilter(from, to Date) DateFilter {
	if from.IsZero() || to.IsZero() {
		return DateFilter{}
	}
	return DateFilter{kind: dateFilterRange, from: from, to: to}
}

// RelativeDateFilter matches dates inside the named window computed from the
// reference time at evaluation.
func RelativeDateFilter(r RelativeRange) DateFilter {
	return DateFilter{kind: dateFilterRelative, relative: r}
}

// IsActive reports whether the filter constrains dates at all.
func (f DateFilter) IsActive() bool {
	return f.kind != dateFilterNone
}

// Matches evaluates the date criterion against d; now supplies the reference
// clock for relative windows.
func (f DateFilter) Matches(d Date, now time.Time) bool {
	switch f.kind {
	case dateFilterExact:
		return d == f.exact
	case dateFilterRange:
		return d.Between(f.from, f.to)
	case dateFilterRelative:
		from, to, ok := f.relative.Window(now)
		if !ok {
			return true
		}
		return d.Between(from, to)
	}
	return true
}

// TransactionFilter narrows a transaction list. Unset fields are inactive;
// all active criteria are combined with logical AND.
type TransactionFilter struct {
	Date     DateFilter
	Type     TransactionType // empty matches both types
	Category string          // exact match; empty matches all
}

// Matches reports whether tx passes every active criterion.
func (f TransactionFilter) Matches(tx Transaction, now time.Time) bool {
	if !f.Date.Matches(tx.Date, now) {
		return false
	}
	if f.Type != "" && tx.Type != f.Type {
		return false
	}
	if f.Category != "" && tx.Category != f.Category {
		return false
	}
	return true
}

// FilterTransactions returns the transactions passing the filter, preserving
// input order. The input slice is never mutated.
func FilterTransactions(txns []Transaction, f TransactionFilter, now time.Time) []Transaction {
	out := make([]Transaction, 0, len(txns))
	for _, tx := range txns {
		if f.Matches(tx, now) {
			out = append(out, tx)
		}
	}
	return out
}
