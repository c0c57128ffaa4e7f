package models

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"
)

// SchoolProfile is the school identity printed on generated documents
// (receipts, authorization letters, attendance sheets, decision
// letters). There is one profile per instance.
type SchoolProfile struct {
	DefaultModel
	Name           string
	NPSN           string // National school identification number
	Address        string
	Village        string
	District       string
	Regency        string
	Province       string
	HeadmasterName string
	HeadmasterNIP  string
	TreasurerName  string
	TreasurerNIP   string
	FiscalYear     int
}

func (p *SchoolProfile) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.NPSN = strings.TrimSpace(p.NPSN)
	p.Address = strings.TrimSpace(p.Address)
	p.HeadmasterName = strings.TrimSpace(p.HeadmasterName)
	p.TreasurerName = strings.TrimSpace(p.TreasurerName)

	return nil
}

// Returns the school profile on this instance for export
func (SchoolProfile) Export() (json.RawMessage, error) {
	var profiles []SchoolProfile
	err := DB.Unscoped().Where(&SchoolProfile{}).Find(&profiles).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&profiles)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
