package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/venue-booking/internal/showcase"
)

// ListShows handles GET /v1/shows.
func (h *DirectoryHandler) ListShows(c echo.Context) error {
	shows, err := h.Dir.ListShows(c.Request().Context())
	if err != nil {
		return h.fail(c, err, "show")
	}
	return c.JSON(http.StatusOK, echo.Map{"shows": shows})
}

// CreateShow handles POST /v1/shows.  A venue or artist that does not
// exist answers 409 and nothing is stored.
func (h *DirectoryHandler) CreateShow(c echo.Context) error {
	var req showRequest
	if ok, err := h.bindAndValidate(c, &req); !ok {
		return err
	}
	in, ok := req.input()
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":  "validation failed",
			"fields": []fieldError{{Field: "start_time", Rule: "datetime"}},
		})
	}
	s, err := h.Dir.CreateShow(c.Request().Context(), in)
	if err != nil {
		return h.fail(c, err, "show")
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"id":         s.ID,
		"venue_id":   s.VenueID,
		"artist_id":  s.ArtistID,
		"start_time": showcase.FormatStart(s.StartTime),
	})
}
