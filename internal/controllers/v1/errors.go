package v1

import (
	"errors"
	"net/http"

	"github.com/rkas-pintar/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errMonthNotSetInQuery = errors.New("the month query parameter must be set")
	errYearNotSetInQuery  = errors.New("the year query parameter must be set")
)

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)

// Document errors
var (
	errNoSchoolProfile = errors.New("there is no school profile yet, create one to generate documents")
)
