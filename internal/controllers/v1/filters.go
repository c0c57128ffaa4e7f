package v1

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

func stringFilters(db, query *gorm.DB, setFields []string, description, note, search string) *gorm.DB {
	if description != "" {
		query = query.Where("description LIKE ?", fmt.Sprintf("%%%s%%", description))
	} else if slices.Contains(setFields, "Description") {
		query = query.Where("description = ''")
	}

	if note != "" {
		query = query.Where("note LIKE ?", fmt.Sprintf("%%%s%%", note))
	} else if slices.Contains(setFields, "Note") {
		query = query.Where("note = ''")
	}

	if search != "" {
		query = query.Where(
			db.Where("note LIKE ?", fmt.Sprintf("%%%s%%", search)).Or(
				db.Where("description LIKE ?", fmt.Sprintf("%%%s%%", search)),
			),
		)
	}

	return query
}
