package models

import (
	"github.com/google/uuid"
	"github.com/rkas-pintar/backend/internal/types"
	"gorm.io/gorm"
)

// The realization ledger mutates the list of realizations owned by a
// budget line. List manipulation is copy-on-write: helpers return new
// slices and never touch their input, so an in-memory line only changes
// after the store accepted the write.

// BudgetLineWithRealizations loads a budget line with its realizations
// in insertion order.
func BudgetLineWithRealizations(db *gorm.DB, id uuid.UUID) (BudgetLine, error) {
	var line BudgetLine
	err := db.
		Preload("Realizations", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&line, id).Error

	return line, err
}

// RealizationIndices returns the indices of the realizations booked in
// the given month, in insertion order.
func (l BudgetLine) RealizationIndices(month types.Month) []int {
	var indices []int
	for i, r := range l.Realizations {
		if r.Month == month {
			indices = append(indices, i)
		}
	}

	return indices
}

// AddOrReplaceRealization records a realization against the line.
//
// With editIndex < 0 the record is appended. Otherwise the realization
// at editIndex is replaced, which is how edits to an existing entry are
// saved. On success the line's in-memory list is updated to the stored
// state.
func AddOrReplaceRealization(db *gorm.DB, line *BudgetLine, record Realization, editIndex int) error {
	if line.Type != LineTypeExpense {
		return ErrRealizationsOnIncome
	}

	var realizations []Realization
	if editIndex < 0 {
		realizations = append(copyRealizations(line.Realizations), record)
	} else {
		if editIndex >= len(line.Realizations) {
			return ErrRealizationIndexInvalid
		}

		realizations = copyRealizations(line.Realizations)
		realizations[editIndex] = record
	}

	return saveRealizations(db, line, realizations)
}

// ReplaceRealizationsForMonth records a consolidated batch ("kolektif")
// realization: every existing entry for the record's month is replaced
// by the single new record. This collapses multiple entries into one
// instead of merging them.
func ReplaceRealizationsForMonth(db *gorm.DB, line *BudgetLine, record Realization) error {
	if line.Type != LineTypeExpense {
		return ErrRealizationsOnIncome
	}

	realizations := make([]Realization, 0, len(line.Realizations)+1)
	for _, r := range line.Realizations {
		if r.Month != record.Month {
			realizations = append(realizations, r)
		}
	}
	realizations = append(realizations, record)

	return saveRealizations(db, line, realizations)
}

// DeleteRealization removes the realization at the given index.
//
// If other realizations remain for the same month, the first remaining
// one is re-selected as the current entry for continued editing and its
// index returned. The returned index is -1 when no entry for the month
// remains. Deleting a nonexistent index is an error.
func DeleteRealization(db *gorm.DB, line *BudgetLine, index int) (int, error) {
	if index < 0 || index >= len(line.Realizations) {
		return -1, ErrRealizationIndexInvalid
	}

	month := line.Realizations[index].Month

	realizations := make([]Realization, 0, len(line.Realizations)-1)
	realizations = append(realizations, line.Realizations[:index]...)
	realizations = append(realizations, line.Realizations[index+1:]...)

	err := saveRealizations(db, line, realizations)
	if err != nil {
		return -1, err
	}

	indices := line.RealizationIndices(month)
	if len(indices) == 0 {
		return -1, nil
	}

	// Arbitrary tie-break: the first remaining entry for the month
	// becomes the current one.
	return indices[0], nil
}

// saveRealizations replaces the stored realization list of the line in
// one transaction. The in-memory line is only updated when the write
// succeeded.
func saveRealizations(db *gorm.DB, line *BudgetLine, realizations []Realization) error {
	for i := range realizations {
		realizations[i].ID = uuid.Nil
		realizations[i].BudgetLineID = line.ID
		realizations[i].Position = i
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Unscoped().Where(&Realization{BudgetLineID: line.ID}).Delete(&Realization{}).Error
		if err != nil {
			return err
		}

		if len(realizations) == 0 {
			return nil
		}

		return tx.Create(&realizations).Error
	})
	if err != nil {
		return err
	}

	line.Realizations = realizations
	return nil
}

func copyRealizations(realizations []Realization) []Realization {
	copied := make([]Realization, len(realizations))
	copy(copied, realizations)
	return copied
}
