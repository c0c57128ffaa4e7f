package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rkas-pintar/backend/internal/httputil"
	"github.com/rkas-pintar/backend/internal/models"
	"github.com/rkas-pintar/backend/internal/report"
)

// RegisterDocumentRoutes registers the routes for document snapshots
// with the RouterGroup that is passed.
//
// The snapshot is the read-only input for the external document
// generator. The backend never renders PDFs itself.
func RegisterDocumentRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/snapshot", OptionsSnapshot)
	r.GET("/snapshot", GetSnapshot)
}

type SnapshotResponse struct {
	Data  *report.Snapshot `json:"data"`                                                   // The document snapshot
	Error *string          `json:"error" example:"the specified document kind is invalid"` // The error, if any occurred
}

type snapshotQuery struct {
	QueryPeriod
	Kind string `form:"kind" example:"KWITANSI"` // The document kind to prepare the snapshot for
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Documents
// @Success		204
// @Router			/v1/documents/snapshot [options]
func OptionsSnapshot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get document snapshot
// @Description	Returns the school profile plus the lines realized in the month with computed totals, ready for the document generator
// @Tags			Documents
// @Produce		json
// @Success		200	{object}	SnapshotResponse
// @Failure		400	{object}	SnapshotResponse
// @Failure		404	{object}	SnapshotResponse
// @Failure		500	{object}	SnapshotResponse
// @Param			kind	query	string	true	"The document kind (KWITANSI, SURAT_KUASA, DAFTAR_HADIR, SURAT_KEPUTUSAN)"
// @Param			month	query	int		true	"The month, 1 to 12"
// @Param			year	query	int		true	"The fiscal year"
// @Router			/v1/documents/snapshot [get]
func GetSnapshot(c *gin.Context) {
	var query snapshotQuery
	_ = c.Bind(&query)

	period, err := bindPeriod(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SnapshotResponse{
			Error: &s,
		})
		return
	}

	var profile models.SchoolProfile
	err = models.DB.First(&profile).Error
	if err != nil {
		s := errNoSchoolProfile.Error()
		if !errors.Is(err, models.ErrResourceNotFound) {
			s = err.Error()
		}

		c.JSON(status(err), SnapshotResponse{
			Error: &s,
		})
		return
	}

	lines, err := expenseLinesForYear(period.Year)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SnapshotResponse{
			Error: &s,
		})
		return
	}

	data, err := report.BuildSnapshot(report.DocumentKind(query.Kind), profile, lines, period.Year, period.Month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SnapshotResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, SnapshotResponse{Data: &data})
}
