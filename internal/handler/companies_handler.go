package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/octobees/company-lookup/api/internal/dto"
	middlewarepkg "github.com/octobees/company-lookup/api/internal/middleware"
	"github.com/octobees/company-lookup/api/internal/registry"
	"github.com/octobees/company-lookup/api/internal/service"
)

// AllLookupsFailedMessage is returned when a batch produced no successful lookup.
const AllLookupsFailedMessage = "All company number lookups failed"

// CompanyLookup is the enrichment behaviour the handler depends on.
type CompanyLookup interface {
	LookupCompany(ctx context.Context, rawNumber string) (dto.CompanyInformation, error)
	LookupCompanies(ctx context.Context, rawNumbers []string) ([]dto.CompanyResult, error)
}

// CompaniesHandler exposes the company lookup endpoints.
type CompaniesHandler struct {
	service  CompanyLookup
	docsPath string
}

// NewCompaniesHandler creates a new handler instance. rootPath is the prefix
// the routes are mounted under and is only used to point clients at the docs.
func NewCompaniesHandler(service CompanyLookup, rootPath string) *CompaniesHandler {
	return &CompaniesHandler{service: service, docsPath: rootPath + "/docs"}
}

// Root godoc
// @Summary Service status
// @Produce json
// @Success 200 {object} dto.RootResponse
// @Router / [get]
func (h *CompaniesHandler) Root(c echo.Context) error {
	return JSON(c, http.StatusOK, dto.RootResponse{
		Message: "Company lookup service is working - see " + h.docsPath + " for Swagger documentation",
	})
}

// Get godoc
// @Summary Get Company Details
// @Description Retrieve details for a single company using a company number.
// @Produce json
// @Param company_id path string true "Company number"
// @Success 200 {object} dto.CompanyInformation "The details of the company, including its name, company number, the SIC codes for its activities and their descriptions."
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /company/{company_id} [get]
func (h *CompaniesHandler) Get(c echo.Context) error {
	companyID := c.Param("company_id")
	if strings.TrimSpace(companyID) == "" {
		return Error(c, http.StatusBadRequest, "company_id is required")
	}

	info, err := h.service.LookupCompany(c.Request().Context(), companyID)
	if err != nil {
		var upstreamErr *registry.UpstreamError
		if errors.As(err, &upstreamErr) {
			return Error(c, upstreamErr.StatusCode, upstreamErr.Message)
		}
		log.Printf("request_id=%s company lookup error: %v", middlewarepkg.RequestIDFromContext(c), err)
		return Error(c, http.StatusInternalServerError, "failed to look up company")
	}

	return JSON(c, http.StatusOK, info)
}

// List godoc
// @Summary Get Multiple Company Details
// @Description Retrieve details for multiple companies, using a comma-separated list of company numbers.
// @Produce json
// @Param company_ids query string true "Comma-separated list of company IDs"
// @Success 200 {array} dto.CompanyResult "The details of each company, or an error entry for any companies that failed"
// @Failure 400 {object} ErrorResponse
// @Router /companies/ [get]
func (h *CompaniesHandler) List(c echo.Context) error {
	var query dto.CompaniesQuery
	if err := c.Bind(&query); err != nil {
		return Error(c, http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&query); err != nil {
		if query.CompanyIDs == "" {
			return Error(c, http.StatusBadRequest, "company_ids is required")
		}
		return Error(c, http.StatusBadRequest, "company_ids must be a comma-separated list of alphanumeric company numbers")
	}

	results, err := h.service.LookupCompanies(c.Request().Context(), strings.Split(query.CompanyIDs, ","))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAllLookupsFailed), errors.Is(err, service.ErrNoCompanyNumbers):
			return Error(c, http.StatusBadRequest, AllLookupsFailedMessage)
		default:
			return Error(c, http.StatusInternalServerError, "failed to look up companies")
		}
	}

	return JSON(c, http.StatusOK, results)
}
