package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ListVenues handles GET /v1/venues: venues grouped by city and state.
func (h *DirectoryHandler) ListVenues(c echo.Context) error {
	areas, err := h.Dir.VenueAreas(c.Request().Context())
	if err != nil {
		return h.fail(c, err, "venue")
	}
	return c.JSON(http.StatusOK, echo.Map{"areas": areas})
}

// SearchVenues handles GET and POST /v1/venues/search.
func (h *DirectoryHandler) SearchVenues(c echo.Context) error {
	var req searchRequest
	if ok, err := h.bindAndValidate(c, &req); !ok {
		return err
	}
	res, err := h.Dir.SearchVenues(c.Request().Context(), req.SearchTerm)
	if err != nil {
		return h.fail(c, err, "venue")
	}
	return c.JSON(http.StatusOK, echo.Map{"results": res, "search_term": req.SearchTerm})
}

// ShowVenue handles GET /v1/venues/:id with past and upcoming shows.
func (h *DirectoryHandler) ShowVenue(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid venue id"})
	}
	v, err := h.Dir.Venue(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, "venue")
	}
	return c.JSON(http.StatusOK, v)
}

// EditVenue handles GET /v1/venues/:id/edit and returns the stored fields
// for an edit form.
func (h *DirectoryHandler) EditVenue(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid venue id"})
	}
	v, err := h.Dir.GetVenue(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, "venue")
	}
	return c.JSON(http.StatusOK, v)
}

// CreateVenue handles POST /v1/venues.
func (h *DirectoryHandler) CreateVenue(c echo.Context) error {
	var req venueRequest
	if ok, err := h.bindAndValidate(c, &req); !ok {
		return err
	}
	v, err := h.Dir.CreateVenue(c.Request().Context(), req.input())
	if err != nil {
		return h.fail(c, err, "venue")
	}
	return c.JSON(http.StatusCreated, v)
}

// UpdateVenue handles PUT /v1/venues/:id.  Every editable field is
// replaced.
func (h *DirectoryHandler) UpdateVenue(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid venue id"})
	}
	var req venueRequest
	if ok, err := h.bindAndValidate(c, &req); !ok {
		return err
	}
	v, err := h.Dir.UpdateVenue(c.Request().Context(), id, req.input())
	if err != nil {
		return h.fail(c, err, "venue")
	}
	return c.JSON(http.StatusOK, v)
}
