package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"

	"doctors/internal/domain"
)

// @Summary List doctors
// @Description Lists active doctors ordered by name. All predicates are optional and combined with AND.
// @Tags Doctors
// @Produce json
// @Param min_consultation_fee query number false "Minimum consultation fee, inclusive"
// @Param max_consultation_fee query number false "Maximum consultation fee, inclusive"
// @Param category query int false "Category ID"
// @Param district query int false "District ID"
// @Param language query string false "Language code, case-insensitive"
// @Param search query string false "Substring of the category name, district name or language code"
// @Param lang query string false "Response locale, overrides Accept-Language"
// @Param Accept-Language header string false "Preferred locales"
// @Success 200 {array} domain.DoctorResponse
// @Failure 400 {object} errorResponseBody "Malformed filter value"
// @Failure 500 {object} errorResponseBody
// @Router /api/v1/doctors [get]
func (h *Handler) getDoctors(c *gin.Context) {
	filter, err := parseDoctorFilter(c)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	doctors, err := h.services.Doctor.List(c.Request.Context(), filter)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	okResponse(c, h.services.Projector.Doctors(doctors, getLocale(c, h.resolver.Default())))
}

// @Summary Get a doctor
// @Description Inactive doctors are reported as not found.
// @Tags Doctors
// @Produce json
// @Param id path int true "Doctor ID"
// @Param lang query string false "Response locale, overrides Accept-Language"
// @Success 200 {object} domain.DoctorResponse
// @Failure 404 {object} errorResponseBody "Doctor not found"
// @Failure 500 {object} errorResponseBody
// @Router /api/v1/doctors/{id} [get]
func (h *Handler) getDoctorByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	doctor, err := h.services.Doctor.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	okResponse(c, h.services.Projector.Doctor(*doctor, getLocale(c, h.resolver.Default())))
}

// @Summary Create a doctor
// @Tags Doctors
// @Accept json
// @Produce json
// @Param input body domain.CreateDoctorDTO true "Doctor"
// @Success 201 {object} domain.DoctorResponse
// @Failure 400 {object} errorResponseBody "Field errors keyed by field name"
// @Failure 500 {object} errorResponseBody
// @Router /api/v1/doctors [post]
func (h *Handler) createDoctor(c *gin.Context) {
	var dto domain.CreateDoctorDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		h.handleServiceError(c, decodeError(err))
		return
	}

	doctor, err := h.services.Doctor.Create(c.Request.Context(), dto)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	createdResponse(c, h.services.Projector.Doctor(*doctor, getLocale(c, h.resolver.Default())))
}

// @Summary Create several doctors
// @Description All or nothing: when any record is invalid none is stored and the errors are listed per record.
// @Tags Doctors
// @Accept json
// @Produce json
// @Param input body []domain.CreateDoctorDTO true "Doctors"
// @Success 201 {array} domain.DoctorResponse
// @Failure 400 {object} errorResponseBody "One error map per submitted record"
// @Failure 500 {object} errorResponseBody
// @Router /api/v1/doctors/bulk_create [post]
func (h *Handler) bulkCreateDoctors(c *gin.Context) {
	var dtos []domain.CreateDoctorDTO
	if err := c.ShouldBindJSON(&dtos); err != nil {
		h.handleServiceError(c, decodeError(err))
		return
	}

	doctors, err := h.services.Doctor.BulkCreate(c.Request.Context(), dtos)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	createdResponse(c, h.services.Projector.Doctors(doctors, getLocale(c, h.resolver.Default())))
}

// decodeError turns a request body decoding failure into field errors.
func decodeError(err error) error {
	fields := domain.FieldErrors{}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		fields.Add(typeErr.Field, fmt.Sprintf("Incorrect type. Expected %s, received %s.", typeErr.Type.Kind(), typeErr.Value))
	case errors.As(err, &typeErr):
		fields.Add("non_field_errors", fmt.Sprintf("Expected %s but got type %q.", typeErr.Type.Kind(), typeErr.Value))
	case errors.As(err, &syntaxErr):
		fields.Add("non_field_errors", fmt.Sprintf("JSON parse error - %s", syntaxErr.Error()))
	case errors.Is(err, io.EOF):
		fields.Add("non_field_errors", "No data provided.")
	default:
		fields.Add("non_field_errors", err.Error())
	}

	return &domain.ValidationError{Fields: fields}
}
