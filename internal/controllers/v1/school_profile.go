package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rkas-pintar/backend/internal/httputil"
	"github.com/rkas-pintar/backend/internal/models"
	"gorm.io/gorm"
)

// RegisterSchoolProfileRoutes registers the routes for the school
// profile with the RouterGroup that is passed.
//
// The profile is a singleton, so it is addressed without an ID and
// written with PUT instead of POST/PATCH.
func RegisterSchoolProfileRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSchoolProfile)
	r.GET("", GetSchoolProfile)
	r.PUT("", UpdateSchoolProfile)
}

// SchoolProfileEditable represents all user configurable parameters
type SchoolProfileEditable struct {
	Name           string `json:"name" example:"SDN 1 Sukamaju" default:""`               // Name of the school
	NPSN           string `json:"npsn" example:"20212345" default:""`                     // National school identification number
	Address        string `json:"address" example:"Jl. Pendidikan No. 1" default:""`      // Street address
	Village        string `json:"village" example:"Sukamaju" default:""`                  // Village (desa/kelurahan)
	District       string `json:"district" example:"Cianjur Utara" default:""`            // District (kecamatan)
	Regency        string `json:"regency" example:"Kabupaten Cianjur" default:""`         // Regency or city
	Province       string `json:"province" example:"Jawa Barat" default:""`               // Province
	HeadmasterName string `json:"headmasterName" example:"Dra. Siti Aminah" default:""`   // Name of the headmaster
	HeadmasterNIP  string `json:"headmasterNip" example:"196803121992032004" default:""`  // Civil servant number of the headmaster
	TreasurerName  string `json:"treasurerName" example:"Budi Santoso, S.Pd." default:""` // Name of the BOSP treasurer
	TreasurerNIP   string `json:"treasurerNip" example:"197505142000121002" default:""`   // Civil servant number of the treasurer
	FiscalYear     int    `json:"fiscalYear" example:"2024"`                              // The active fiscal year
}

func (editable SchoolProfileEditable) model() models.SchoolProfile {
	return models.SchoolProfile{
		Name:           editable.Name,
		NPSN:           editable.NPSN,
		Address:        editable.Address,
		Village:        editable.Village,
		District:       editable.District,
		Regency:        editable.Regency,
		Province:       editable.Province,
		HeadmasterName: editable.HeadmasterName,
		HeadmasterNIP:  editable.HeadmasterNIP,
		TreasurerName:  editable.TreasurerName,
		TreasurerNIP:   editable.TreasurerNIP,
		FiscalYear:     editable.FiscalYear,
	}
}

type SchoolProfile struct {
	models.DefaultModel
	SchoolProfileEditable
}

func newSchoolProfile(model models.SchoolProfile) SchoolProfile {
	return SchoolProfile{
		DefaultModel: model.DefaultModel,
		SchoolProfileEditable: SchoolProfileEditable{
			Name:           model.Name,
			NPSN:           model.NPSN,
			Address:        model.Address,
			Village:        model.Village,
			District:       model.District,
			Regency:        model.Regency,
			Province:       model.Province,
			HeadmasterName: model.HeadmasterName,
			HeadmasterNIP:  model.HeadmasterNIP,
			TreasurerName:  model.TreasurerName,
			TreasurerNIP:   model.TreasurerNIP,
			FiscalYear:     model.FiscalYear,
		},
	}
}

type SchoolProfileResponse struct {
	Data  *SchoolProfile `json:"data"`                                       // Data for the school profile
	Error *string        `json:"error" example:"there is no School Profile"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			SchoolProfile
// @Success		204
// @Router			/v1/school-profile [options]
func OptionsSchoolProfile(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get school profile
// @Description	Returns the school profile
// @Tags			SchoolProfile
// @Produce		json
// @Success		200	{object}	SchoolProfileResponse
// @Failure		404	{object}	SchoolProfileResponse
// @Failure		500	{object}	SchoolProfileResponse
// @Router			/v1/school-profile [get]
func GetSchoolProfile(c *gin.Context) {
	var profile models.SchoolProfile
	err := models.DB.First(&profile).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SchoolProfileResponse{
			Error: &s,
		})
		return
	}

	data := newSchoolProfile(profile)
	c.JSON(http.StatusOK, SchoolProfileResponse{Data: &data})
}

// @Summary		Set school profile
// @Description	Creates the school profile or replaces the existing one
// @Tags			SchoolProfile
// @Accept			json
// @Produce		json
// @Success		200				{object}	SchoolProfileResponse
// @Failure		400				{object}	SchoolProfileResponse
// @Failure		500				{object}	SchoolProfileResponse
// @Param			schoolProfile	body		SchoolProfileEditable	true	"School profile"
// @Router			/v1/school-profile [put]
func UpdateSchoolProfile(c *gin.Context) {
	var editable SchoolProfileEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SchoolProfileResponse{
			Error: &s,
		})
		return
	}

	var profile models.SchoolProfile
	err = models.DB.First(&profile).Error
	if err != nil && !errors.Is(err, models.ErrResourceNotFound) && !errors.Is(err, gorm.ErrRecordNotFound) {
		s := err.Error()
		c.JSON(status(err), SchoolProfileResponse{
			Error: &s,
		})
		return
	}

	updated := editable.model()
	updated.DefaultModel = profile.DefaultModel

	err = models.DB.Save(&updated).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SchoolProfileResponse{
			Error: &s,
		})
		return
	}

	data := newSchoolProfile(updated)
	c.JSON(http.StatusOK, SchoolProfileResponse{Data: &data})
}
