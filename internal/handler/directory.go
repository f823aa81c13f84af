// Package handler exposes the directory operations as JSON endpoints.
package handler

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/iliyamo/venue-booking/internal/model"
	"github.com/iliyamo/venue-booking/internal/repository"
	"github.com/iliyamo/venue-booking/internal/showcase"
)

// Directory is the set of operations the handlers call.  *service.Directory
// implements it.
type Directory interface {
	VenueAreas(ctx context.Context) ([]showcase.AreaView, error)
	SearchVenues(ctx context.Context, term string) (showcase.SearchResult, error)
	Venue(ctx context.Context, id uint64) (showcase.VenueView, error)
	GetVenue(ctx context.Context, id uint64) (*model.Venue, error)
	CreateVenue(ctx context.Context, in model.VenueInput) (*model.Venue, error)
	UpdateVenue(ctx context.Context, id uint64, in model.VenueInput) (*model.Venue, error)

	ListArtists(ctx context.Context) ([]showcase.NamedItem, error)
	SearchArtists(ctx context.Context, term string) (showcase.SearchResult, error)
	Artist(ctx context.Context, id uint64) (showcase.ArtistView, error)
	GetArtist(ctx context.Context, id uint64) (*model.Artist, error)
	CreateArtist(ctx context.Context, in model.ArtistInput) (*model.Artist, error)
	UpdateArtist(ctx context.Context, id uint64, in model.ArtistInput) (*model.Artist, error)

	ListShows(ctx context.Context) ([]showcase.ShowEntry, error)
	CreateShow(ctx context.Context, in model.ShowInput) (*model.Show, error)
}

// DirectoryHandler serves the venue, artist and show endpoints.
type DirectoryHandler struct {
	Dir      Directory
	Log      zerolog.Logger
	validate *validator.Validate
}

// NewDirectoryHandler constructs a DirectoryHandler and panics if dir is nil.
func NewDirectoryHandler(dir Directory, log zerolog.Logger) *DirectoryHandler {
	if dir == nil {
		panic("nil directory passed to NewDirectoryHandler")
	}
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json names in validation errors
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &DirectoryHandler{Dir: dir, Log: log, validate: v}
}

// fieldError is one failed validation rule.
type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// bindAndValidate binds the request into dst and validates it.  On failure
// it has already written the 400 response and returns false.
func (h *DirectoryHandler) bindAndValidate(c echo.Context, dst any) (bool, error) {
	if err := c.Bind(dst); err != nil {
		return false, c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return false, c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
		}
		fields := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
		return false, c.JSON(http.StatusBadRequest, echo.Map{"error": "validation failed", "fields": fields})
	}
	return true, nil
}

// parseID reads the :id path parameter.
func parseID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// fail maps a service error to a status code.  what names the resource in
// the response, e.g. "venue".
func (h *DirectoryHandler) fail(c echo.Context, err error, what string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": what + " not found"})
	case errors.Is(err, repository.ErrConstraintViolation):
		return c.JSON(http.StatusConflict, echo.Map{"error": what + " violates a constraint", "detail": err.Error()})
	default:
		h.Log.Error().Err(err).Str("path", c.Path()).Msg(what + " request failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
