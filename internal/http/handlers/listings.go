package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Listing pages are read-only passthroughs to the backend catalog.

// GET /api/transportation
func (h Handlers) ListTransportation(c *gin.Context) {
	vehicles, err := h.API.ListTransportation(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

// GET /api/transportation/:id
func (h Handlers) GetTransportation(c *gin.Context) {
	v, err := h.API.GetTransportation(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicle": v})
}

// GET /api/tours
func (h Handlers) ListTours(c *gin.Context) {
	tours, err := h.API.ListTours(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tours": tours})
}

// GET /api/tours/:id
func (h Handlers) GetTour(c *gin.Context) {
	t, err := h.API.GetTour(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tour": t})
}

// GET /api/accommodations
func (h Handlers) ListAccommodations(c *gin.Context) {
	accs, err := h.API.ListAccommodations(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accommodations": accs})
}

// GET /api/accommodations/:id
func (h Handlers) GetAccommodation(c *gin.Context) {
	a, err := h.API.GetAccommodation(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accommodation": a})
}
