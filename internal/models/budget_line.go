package models

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/rkas-pintar/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// swagger:enum LineType
type LineType string

const (
	LineTypeIncome  LineType = "INCOME"
	LineTypeExpense LineType = "EXPENSE"
)

func (t LineType) Valid() bool {
	return t == LineTypeIncome || t == LineTypeExpense
}

// FundingSource is the fund program an income line originates from.
//
// swagger:enum FundingSource
type FundingSource string

const (
	FundingBOSPPusat  FundingSource = "BOSP_PUSAT"
	FundingBOSPDaerah FundingSource = "BOSP_DAERAH"
	FundingDAK        FundingSource = "DAK"
	FundingOther      FundingSource = "LAINNYA"
)

func (s FundingSource) Valid() bool {
	switch s {
	case FundingBOSPPusat, FundingBOSPDaerah, FundingDAK, FundingOther:
		return true
	}

	return false
}

// Standard is one of the eight national education standards (SNP)
// an expense line contributes to.
//
// swagger:enum Standard
type Standard string

const (
	StandardKompetensiLulusan Standard = "SKL"
	StandardIsi               Standard = "ISI"
	StandardProses            Standard = "PROSES"
	StandardPenilaian         Standard = "PENILAIAN"
	StandardPTK               Standard = "PTK"
	StandardSarpras           Standard = "SARPRAS"
	StandardPengelolaan       Standard = "PENGELOLAAN"
	StandardPembiayaan        Standard = "PEMBIAYAAN"
)

func (s Standard) Valid() bool {
	switch s {
	case StandardKompetensiLulusan, StandardIsi, StandardProses, StandardPenilaian,
		StandardPTK, StandardSarpras, StandardPengelolaan, StandardPembiayaan:
		return true
	}

	return false
}

// Component is the BOSP usage component an expense line is booked under.
//
// swagger:enum Component
type Component string

const (
	ComponentPenerimaanPesertaDidik Component = "PENERIMAAN_PESERTA_DIDIK"
	ComponentPerpustakaan           Component = "PENGEMBANGAN_PERPUSTAKAAN"
	ComponentPembelajaran           Component = "KEGIATAN_PEMBELAJARAN"
	ComponentAsesmen                Component = "ASESMEN_EVALUASI"
	ComponentAdministrasi           Component = "ADMINISTRASI_SEKOLAH"
	ComponentProfesiGuru            Component = "PENGEMBANGAN_PROFESI"
	ComponentDayaJasa               Component = "LANGGANAN_DAYA_JASA"
	ComponentPemeliharaan           Component = "PEMELIHARAAN_SARPRAS"
	ComponentMultimedia             Component = "PENYEDIAAN_ALAT_MULTIMEDIA"
	ComponentKesiswaan              Component = "KEGIATAN_KESISWAAN"
	ComponentHonor                  Component = "PEMBAYARAN_HONOR"
	ComponentLainnya                Component = "LAINNYA"
)

func (c Component) Valid() bool {
	switch c {
	case ComponentPenerimaanPesertaDidik, ComponentPerpustakaan, ComponentPembelajaran,
		ComponentAsesmen, ComponentAdministrasi, ComponentProfesiGuru, ComponentDayaJasa,
		ComponentPemeliharaan, ComponentMultimedia, ComponentKesiswaan, ComponentHonor,
		ComponentLainnya:
		return true
	}

	return false
}

// Account codes are hierarchical, e.g. "5.1.02.01.01.0012".
var accountCodePattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*$`)

// BudgetLine is a planned annual income or expense entry of the RKAS.
//
// The Amount is the pagu, the annual ceiling for the line. For expense
// lines it is spread over PlannedMonths by the allocation engine.
type BudgetLine struct {
	DefaultModel
	Type          LineType      `gorm:"index"`
	FundingSource FundingSource `gorm:"index"`
	Standard      Standard      // Only set for expense lines
	Component     Component     // Only set for expense lines
	AccountCode   string        `gorm:"index"`
	Description   string
	Quantity      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Unit          string
	UnitPrice     decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Amount        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	PlannedMonths types.MonthList
	Date          *time.Time // Receipt date, used for income lines in the cash reconciliation
	FiscalYear    int        `gorm:"index"`
	Note          string
	Realizations  []Realization `gorm:"constraint:OnDelete:CASCADE"`
}

func (l *BudgetLine) BeforeSave(_ *gorm.DB) error {
	l.Description = strings.TrimSpace(l.Description)
	l.Unit = strings.TrimSpace(l.Unit)
	l.Note = strings.TrimSpace(l.Note)
	l.AccountCode = strings.TrimSpace(l.AccountCode)

	if !l.Type.Valid() {
		return ErrLineTypeInvalid
	}

	if l.FundingSource != "" && !l.FundingSource.Valid() {
		return ErrFundingSourceInvalid
	}

	if l.Type == LineTypeExpense {
		if l.Standard != "" && !l.Standard.Valid() {
			return ErrStandardInvalid
		}

		if l.Component != "" && !l.Component.Valid() {
			return ErrComponentInvalid
		}

		if l.AccountCode == "" {
			return ErrAccountCodeMissing
		}
	}

	if l.AccountCode != "" && !accountCodePattern.MatchString(l.AccountCode) {
		return ErrAccountCodeInvalid
	}

	if l.FiscalYear == 0 {
		return ErrFiscalYearMissing
	}

	// The amount is assumed to equal quantity times unit price, but this
	// is not enforced. It is only derived when the amount is not set.
	if l.Amount.IsZero() && l.Quantity.IsPositive() && l.UnitPrice.IsPositive() {
		l.Amount = l.Quantity.Mul(l.UnitPrice)
	}

	l.PlannedMonths = types.NormalizeMonths(l.PlannedMonths)

	return nil
}

func (l *BudgetLine) AfterSave(_ *gorm.DB) error {
	if !decimal.Decimal.IsPositive(l.Amount) {
		return ErrAmountNotPositive
	}

	return nil
}

// PlannedMonthsOrDefault returns the planned realization months for the
// line, sorted ascending. Lines without planned months default to a
// single share in January.
func (l BudgetLine) PlannedMonthsOrDefault() types.MonthList {
	return types.NormalizeMonths(l.PlannedMonths)
}

// IncomeMonth is the month an income line counts towards the cash
// balance. Undated income is treated as received in its first planned
// month.
func (l BudgetLine) IncomeMonth() types.Month {
	if l.Date != nil {
		return types.MonthOf(*l.Date)
	}

	return l.PlannedMonthsOrDefault().First()
}

// Returns all budget lines on this instance for export
func (BudgetLine) Export() (json.RawMessage, error) {
	var lines []BudgetLine
	err := DB.Unscoped().Preload("Realizations").Where(&BudgetLine{}).Find(&lines).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&lines)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
