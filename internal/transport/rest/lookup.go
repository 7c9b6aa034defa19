package rest

import (
	"github.com/gin-gonic/gin"

	"doctors/internal/service"
)

// @Summary List categories
// @Tags Categories
// @Produce json
// @Success 200 {array} domain.LookupResponse
// @Failure 500 {object} errorResponseBody
// @Router /api/v1/categories [get]
func (h *Handler) getCategories(c *gin.Context) {
	categories, err := h.services.Category.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	okResponse(c, service.ProjectLookups(categories))
}

// @Summary Get a category
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} domain.LookupResponse
// @Failure 404 {object} errorResponseBody "Category not found"
// @Router /api/v1/categories/{id} [get]
func (h *Handler) getCategoryByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	category, err := h.services.Category.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	okResponse(c, service.ProjectLookup(*category))
}

// @Summary List districts
// @Tags Districts
// @Produce json
// @Success 200 {array} domain.LookupResponse
// @Failure 500 {object} errorResponseBody
// @Router /api/v1/districts [get]
func (h *Handler) getDistricts(c *gin.Context) {
	districts, err := h.services.District.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	okResponse(c, service.ProjectLookups(districts))
}

// @Summary Get a district
// @Tags Districts
// @Produce json
// @Param id path int true "District ID"
// @Success 200 {object} domain.LookupResponse
// @Failure 404 {object} errorResponseBody "District not found"
// @Router /api/v1/districts/{id} [get]
func (h *Handler) getDistrictByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	district, err := h.services.District.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	okResponse(c, service.ProjectLookup(*district))
}
