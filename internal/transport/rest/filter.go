package rest

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"doctors/internal/domain"
)

const (
	queryMinFee   = "min_consultation_fee"
	queryMaxFee   = "max_consultation_fee"
	queryCategory = "category"
	queryDistrict = "district"
	queryLanguage = "language"
	querySearch   = "search"
)

// parseDoctorFilter reads the doctor list predicates. Empty values count as
// absent; malformed numbers are rejected with an InvalidQueryError.
func parseDoctorFilter(c *gin.Context) (domain.DoctorFilter, error) {
	var filter domain.DoctorFilter

	if raw := strings.TrimSpace(c.Query(queryMinFee)); raw != "" {
		bound, err := domain.ParseDecimal(raw)
		if err != nil {
			return filter, &domain.InvalidQueryError{Param: queryMinFee, Value: raw, Reason: err.Error()}
		}
		filter.MinFee = &bound
	}

	if raw := strings.TrimSpace(c.Query(queryMaxFee)); raw != "" {
		bound, err := domain.ParseDecimal(raw)
		if err != nil {
			return filter, &domain.InvalidQueryError{Param: queryMaxFee, Value: raw, Reason: err.Error()}
		}
		filter.MaxFee = &bound
	}

	if raw := strings.TrimSpace(c.Query(queryCategory)); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, &domain.InvalidQueryError{Param: queryCategory, Value: raw, Reason: "Enter a number."}
		}
		filter.CategoryID = &id
	}

	if raw := strings.TrimSpace(c.Query(queryDistrict)); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filter, &domain.InvalidQueryError{Param: queryDistrict, Value: raw, Reason: "Enter a number."}
		}
		filter.DistrictID = &id
	}

	if raw := strings.TrimSpace(c.Query(queryLanguage)); raw != "" {
		filter.Language = &raw
	}

	if raw := strings.TrimSpace(c.Query(querySearch)); raw != "" {
		filter.Search = &raw
	}

	return filter, nil
}

// parseID treats an id that cannot name a row as a missing row.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		notFoundResponse(c, "Not found.")
		return 0, false
	}
	return id, true
}
