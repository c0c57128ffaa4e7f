package models

import (
	"encoding/json"
	"strings"

	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// AccountRule maps expense descriptions to account codes with glob
// patterns, e.g. "*honor*" to the honorarium code. Rules are the
// offline fallback for categorization when the AI collaborator is not
// configured or unreachable.
type AccountRule struct {
	DefaultModel
	Priority    uint
	Match       string
	AccountCode string
	Standard    Standard
	Component   Component
}

func (r *AccountRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)

	if r.Match == "" {
		return ErrRuleMatchEmpty
	}

	if r.AccountCode != "" && !accountCodePattern.MatchString(r.AccountCode) {
		return ErrAccountCodeInvalid
	}

	if r.Standard != "" && !r.Standard.Valid() {
		return ErrStandardInvalid
	}

	if r.Component != "" && !r.Component.Valid() {
		return ErrComponentInvalid
	}

	return nil
}

// MatchAccountRule applies the rules to a description. Since rules are
// loaded from the database in priority order, the first match wins. The
// second return value reports whether any rule matched.
func MatchAccountRule(rules []AccountRule, description string) (AccountRule, bool) {
	description = strings.ToLower(description)

	for _, rule := range rules {
		if glob.Glob(strings.ToLower(rule.Match), description) {
			return rule, true
		}
	}

	return AccountRule{}, false
}

// AccountRulesByPriority returns all account rules, ordered by priority.
func AccountRulesByPriority(db *gorm.DB) ([]AccountRule, error) {
	var rules []AccountRule
	err := db.Order("priority ASC").Find(&rules).Error
	return rules, err
}

// Returns all account rules on this instance for export
func (AccountRule) Export() (json.RawMessage, error) {
	var rules []AccountRule
	err := DB.Unscoped().Where(&AccountRule{}).Find(&rules).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&rules)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
