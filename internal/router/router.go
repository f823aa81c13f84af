// Package router registers the HTTP routes on an Echo instance.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iliyamo/venue-booking/internal/handler"
)

// RegisterRoutes registers the probes and the metrics endpoint.  They stay
// outside the rate-limited /v1 group.
func RegisterRoutes(e *echo.Echo, db handler.Pinger) {
	e.GET("/healthz", handler.Health)
	e.GET("/readyz", handler.Ready(db))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// RegisterDirectory registers the venue, artist and show endpoints under
// /v1.  mw is applied to the whole group.
func RegisterDirectory(e *echo.Echo, h *handler.DirectoryHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/v1", mw...)

	venues := g.Group("/venues")
	venues.GET("", h.ListVenues)
	venues.GET("/search", h.SearchVenues)
	venues.POST("/search", h.SearchVenues)
	venues.GET("/:id", h.ShowVenue)
	venues.GET("/:id/edit", h.EditVenue)
	venues.POST("", h.CreateVenue)
	venues.PUT("/:id", h.UpdateVenue)

	artists := g.Group("/artists")
	artists.GET("", h.ListArtists)
	artists.GET("/search", h.SearchArtists)
	artists.POST("/search", h.SearchArtists)
	artists.GET("/:id", h.ShowArtist)
	artists.GET("/:id/edit", h.EditArtist)
	artists.POST("", h.CreateArtist)
	artists.PUT("/:id", h.UpdateArtist)

	g.GET("/shows", h.ListShows)
	g.POST("/shows", h.CreateShow)
}
