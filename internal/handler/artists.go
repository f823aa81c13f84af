package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ListArtists handles GET /v1/artists.
func (h *DirectoryHandler) ListArtists(c echo.Context) error {
	artists, err := h.Dir.ListArtists(c.Request().Context())
	if err != nil {
		return h.fail(c, err, "artist")
	}
	return c.JSON(http.StatusOK, echo.Map{"artists": artists})
}

// SearchArtists handles GET and POST /v1/artists/search.
func (h *DirectoryHandler) SearchArtists(c echo.Context) error {
	var req searchRequest
	if ok, err := h.bindAndValidate(c, &req); !ok {
		return err
	}
	res, err := h.Dir.SearchArtists(c.Request().Context(), req.SearchTerm)
	if err != nil {
		return h.fail(c, err, "artist")
	}
	return c.JSON(http.StatusOK, echo.Map{"results": res, "search_term": req.SearchTerm})
}

// ShowArtist handles GET /v1/artists/:id.
func (h *DirectoryHandler) ShowArtist(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid artist id"})
	}
	a, err := h.Dir.Artist(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, "artist")
	}
	return c.JSON(http.StatusOK, a)
}

// EditArtist handles GET /v1/artists/:id/edit.
func (h *DirectoryHandler) EditArtist(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid artist id"})
	}
	a, err := h.Dir.GetArtist(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err, "artist")
	}
	return c.JSON(http.StatusOK, a)
}

// CreateArtist handles POST /v1/artists.
func (h *DirectoryHandler) CreateArtist(c echo.Context) error {
	var req artistRequest
	if ok, err := h.bindAndValidate(c, &req); !ok {
		return err
	}
	a, err := h.Dir.CreateArtist(c.Request().Context(), req.input())
	if err != nil {
		return h.fail(c, err, "artist")
	}
	return c.JSON(http.StatusCreated, a)
}

// UpdateArtist handles PUT /v1/artists/:id.
func (h *DirectoryHandler) UpdateArtist(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid artist id"})
	}
	var req artistRequest
	if ok, err := h.bindAndValidate(c, &req); !ok {
		return err
	}
	a, err := h.Dir.UpdateArtist(c.Request().Context(), id, req.input())
	if err != nil {
		return h.fail(c, err, "artist")
	}
	return c.JSON(http.StatusOK, a)
}
