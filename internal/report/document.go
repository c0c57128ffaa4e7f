package report

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rkas-pintar/backend/internal/models"
	"github.com/rkas-pintar/backend/internal/types"
	"github.com/shopspring/decimal"
)

// DocumentKind selects the administrative document a snapshot is
// prepared for. The actual rendering (PDF layout) is done by an
// external collaborator; this package only assembles the read-only
// snapshot it consumes.
//
// swagger:enum DocumentKind
type DocumentKind string

const (
	DocumentKwitansi       DocumentKind = "KWITANSI"        // Payment receipt
	DocumentSuratKuasa     DocumentKind = "SURAT_KUASA"     // Fund withdrawal authorization letter
	DocumentDaftarHadir    DocumentKind = "DAFTAR_HADIR"    // Attendance sheet for paid activities
	DocumentSuratKeputusan DocumentKind = "SURAT_KEPUTUSAN" // Headmaster decision letter
)

func (k DocumentKind) Valid() bool {
	switch k {
	case DocumentKwitansi, DocumentSuratKuasa, DocumentDaftarHadir, DocumentSuratKeputusan:
		return true
	}

	return false
}

var ErrDocumentKindInvalid = errors.New("the specified document kind is invalid")

// SnapshotLine is one realized budget line as it appears on a document.
type SnapshotLine struct {
	ID                uuid.UUID       `json:"id" example:"95018a69-758b-46c6-8bab-db70d9d6bBe7"` // ID of the budget line
	Description       string          `json:"description" example:"Pembelian buku perpustakaan"`
	AccountCode       string          `json:"accountCode" example:"5.1.02.01.01.0024"`
	Quantity          decimal.Decimal `json:"quantity" example:"20"`
	Unit              string          `json:"unit" example:"rim"`
	UnitPrice         decimal.Decimal `json:"unitPrice" example:"55000"`
	Realized          decimal.Decimal `json:"realized" example:"1100000"` // Amount realized in the snapshot month
	RealizedFormatted string          `json:"realizedFormatted" example:"Rp1.100.000"`
	Date              string          `json:"date" example:"2024-03-12"` // Receipt date of the first realization in the month
	Notes             string          `json:"notes" example:"Toko Buku Cerdas"`
	EvidenceFile      string          `json:"evidenceFile" example:"nota-buku.pdf"`
}

// Snapshot is the full input for the document generator: the school
// identity plus the lines realized in the chosen month with their
// computed totals.
type Snapshot struct {
	Kind           DocumentKind         `json:"kind" example:"KWITANSI"`
	School         models.SchoolProfile `json:"school"`
	FiscalYear     int                  `json:"fiscalYear" example:"2024"`
	Month          types.Month          `json:"month" example:"3"`
	MonthName      string               `json:"monthName" example:"Maret"`
	Lines          []SnapshotLine       `json:"lines"`
	Total          decimal.Decimal      `json:"total" example:"1100000"`
	TotalFormatted string               `json:"totalFormatted" example:"Rp1.100.000"`
	TotalInWords   string               `json:"totalInWords" example:"satu juta seratus ribu rupiah"`
}

// BuildSnapshot assembles the document snapshot for a month. Only
// expense lines with a realization in the month appear, mirroring the
// recap filter: documents account for what actually happened.
func BuildSnapshot(kind DocumentKind, school models.SchoolProfile, lines []models.BudgetLine, year int, month types.Month) (Snapshot, error) {
	if !kind.Valid() {
		return Snapshot{}, ErrDocumentKindInvalid
	}

	snapshot := Snapshot{
		Kind:       kind,
		School:     school,
		FiscalYear: year,
		Month:      month,
		MonthName:  month.String(),
		Lines:      make([]SnapshotLine, 0),
		Total:      decimal.Zero,
	}

	for _, line := range lines {
		if line.Type != models.LineTypeExpense {
			continue
		}

		realized := line.RealizedInMonth(month)
		if !realized.IsPositive() {
			continue
		}

		snapshotLine := SnapshotLine{
			ID:                line.ID,
			Description:       line.Description,
			AccountCode:       line.AccountCode,
			Quantity:          line.Quantity,
			Unit:              line.Unit,
			UnitPrice:         line.UnitPrice,
			Realized:          realized,
			RealizedFormatted: FormatRupiah(realized),
		}

		for _, r := range line.Realizations {
			if r.Month == month {
				snapshotLine.Date = r.Date.Format("2006-01-02")
				snapshotLine.Notes = r.Notes
				snapshotLine.EvidenceFile = r.EvidenceFile
				break
			}
		}

		snapshot.Lines = append(snapshot.Lines, snapshotLine)
		snapshot.Total = snapshot.Total.Add(realized)
	}

	snapshot.TotalFormatted = FormatRupiah(snapshot.Total)
	snapshot.TotalInWords = Terbilang(snapshot.Total)

	return snapshot, nil
}
