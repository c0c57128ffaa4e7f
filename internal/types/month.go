// Package types implements special types for RKAS Pintar.
package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/slices"
)

// Month is a calendar month within the fiscal year, 1 (January) to 12 (December).
//
// Budget plans and realizations in RKAS are always scoped to a single
// fiscal year, so the month alone identifies the period.
type Month int

var ErrMonthInvalid = errors.New("months must be between 1 (January) and 12 (December)")

var monthNames = [13]string{
	"",
	"Januari",
	"Februari",
	"Maret",
	"April",
	"Mei",
	"Juni",
	"Juli",
	"Agustus",
	"September",
	"Oktober",
	"November",
	"Desember",
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	return Month(t.Month())
}

// Valid reports whether the month is a valid calendar month.
func (m Month) Valid() bool {
	return m >= 1 && m <= 12
}

// String returns the Indonesian name of the month, as used on
// printable documents.
func (m Month) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Month(%d)", int(m))
	}

	return monthNames[m]
}

// Before reports whether the month m is before n.
func (m Month) Before(n Month) bool {
	return m < n
}

// After reports whether the month m is after n.
func (m Month) After(n Month) bool {
	return m > n
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	return t.Month() == time.Month(m)
}

// Value returns the value for the SQL driver to write to the database.
func (m Month) Value() (driver.Value, error) {
	return int64(m), nil
}

// Scan reads the value from the database.
func (m *Month) Scan(value interface{}) error {
	i, ok := value.(int64)
	if !ok {
		return fmt.Errorf("cannot scan %T into Month", value)
	}

	*m = Month(i)
	return nil
}

// GormDataType defines the data type used by gorm for the type.
func (Month) GormDataType() string {
	return "integer"
}

// MonthList is the set of months a budget line is planned to be
// realized in. It is kept sorted and free of duplicates.
type MonthList []Month

// NormalizeMonths returns a sorted copy of months with duplicates and
// invalid values removed. An empty result defaults to January, which
// spreads the full amount over a single month.
func NormalizeMonths(months []Month) MonthList {
	normalized := make(MonthList, 0, len(months))
	for _, m := range months {
		if m.Valid() && !slices.Contains(normalized, m) {
			normalized = append(normalized, m)
		}
	}

	if len(normalized) == 0 {
		return MonthList{1}
	}

	slices.Sort(normalized)
	return normalized
}

// First returns the earliest month in the list.
func (l MonthList) First() Month {
	if len(l) == 0 {
		return 1
	}

	return slices.Min(l)
}

// PassedBy returns how many of the planned months have passed up to and
// including the given month.
func (l MonthList) PassedBy(month Month) int {
	var passed int
	for _, m := range l {
		if m <= month {
			passed++
		}
	}

	return passed
}

// Value returns the value for the SQL driver to write to the database.
// The list is stored as a JSON array.
func (l MonthList) Value() (driver.Value, error) {
	j, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}

	return string(j), nil
}

// Scan reads the value from the database.
func (l *MonthList) Scan(value interface{}) error {
	var data []byte

	switch v := value.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	case nil:
		*l = MonthList{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into MonthList", value)
	}

	if len(data) == 0 {
		*l = MonthList{}
		return nil
	}

	return json.Unmarshal(data, l)
}

// GormDataType defines the data type used by gorm for the type.
func (MonthList) GormDataType() string {
	return "text"
}
