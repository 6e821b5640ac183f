package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Domenick1991/flightsinfo/internal/domain"
	"github.com/Domenick1991/flightsinfo/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type flightRequest struct {
	DepartureAirportID   int64 `json:"departure_airport_id" binding:"required"`
	DestinationAirportID int64 `json:"destination_airport_id" binding:"required"`
	AircraftID           int64 `json:"aircraft_id" binding:"required"`
}

type resultResponse struct {
	Status string         `json:"status"`
	Info   string         `json:"info,omitempty"`
	Flight *domain.Flight `json:"flight,omitempty"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/report", h.report)
	router.GET("/:id", h.get)
	router.POST("", h.add)
	router.PUT("/:id", h.edit)
	router.DELETE("/:id", h.remove)
}

// RegisterReference exposes the airport and aircraft lists used to build flight input.
func (h *FlightHandler) RegisterReference(router *gin.RouterGroup) {
	router.GET("/airports", h.airports)
	router.GET("/aircraft", h.aircraft)
}

func (h *FlightHandler) list(c *gin.Context) {
	views, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(lookupStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, views)
}

func (h *FlightHandler) report(c *gin.Context) {
	report, err := h.service.Report(c.Request.Context())
	if err != nil {
		c.JSON(lookupStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *FlightHandler) add(c *gin.Context) {
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.service.Add(c.Request.Context(), req.input(0))

	code := http.StatusInternalServerError
	switch result.Status {
	case flights.AddSuccess:
		code = http.StatusCreated
	case flights.AddSameAirportsChosen:
		code = http.StatusUnprocessableEntity
	case flights.AddAlreadyExists:
		code = http.StatusConflict
	}
	c.JSON(code, resultResponse{Status: result.Status.String(), Info: result.Info, Flight: result.Flight})
}

func (h *FlightHandler) edit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.service.Edit(c.Request.Context(), req.input(id))

	code := http.StatusInternalServerError
	switch result.Status {
	case flights.EditSuccess, flights.EditEntriesNotChanged:
		code = http.StatusOK
	case flights.EditSameAirportsChosen:
		code = http.StatusUnprocessableEntity
	case flights.EditAlreadyExists:
		code = http.StatusConflict
	case flights.EditFailure:
		code = http.StatusNotFound
	}
	c.JSON(code, resultResponse{Status: result.Status.String(), Info: result.Info, Flight: result.Flight})
}

func (h *FlightHandler) remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	result := h.service.Remove(c.Request.Context(), id)
	if result.Status != flights.RemoveSuccess {
		c.JSON(http.StatusNotFound, resultResponse{Status: result.Status.String(), Info: result.Info})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FlightHandler) airports(c *gin.Context) {
	airports, err := h.service.ListAirports(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, airports)
}

func (h *FlightHandler) aircraft(c *gin.Context) {
	aircraft, err := h.service.ListAircraft(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, aircraft)
}

func (r flightRequest) input(flightID int64) domain.FlightInput {
	return domain.FlightInput{
		FlightID:             flightID,
		DepartureAirportID:   r.DepartureAirportID,
		DestinationAirportID: r.DestinationAirportID,
		AircraftID:           r.AircraftID,
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// lookupStatus separates a missing record from a store that could not be read.
func lookupStatus(err error) int {
	if errors.Is(err, domain.ErrPersistence) {
		return http.StatusServiceUnavailable
	}
	return http.StatusNotFound
}
