package server

import (
	"context"
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielflood/microburbs/internal/geo"
	"github.com/danielflood/microburbs/internal/orient"
	"github.com/danielflood/microburbs/internal/service"
)

// AddressOrienter is the service interface the handlers depend on.
type AddressOrienter interface {
	Orient(ctx context.Context, address string) (*service.AddressResult, error)
}

// OrientHandler handles orientation requests.
type OrientHandler struct {
	service AddressOrienter
}

// NewOrientHandler creates an orientation handler.
func NewOrientHandler(svc AddressOrienter) *OrientHandler {
	return &OrientHandler{service: svc}
}

// orientResponse is the wire form of an AddressResult, with display
// rounding applied at this edge only.
type orientResponse struct {
	Address   string  `json:"address"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Bearing   float64 `json:"bearing_deg"`
	Compass   string  `json:"compass"`
	RoadName  string  `json:"road_name,omitempty"`
	DistanceM float64 `json:"distance_to_road_m"`
}

// Orient handles GET /orient?address=...
func (h *OrientHandler) Orient(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'address'"})
		return
	}

	res, err := h.service.Orient(c.Request.Context(), address)
	if err != nil {
		switch {
		case errors.Is(err, geo.ErrAddressNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "address not found"})
		case errors.Is(err, orient.ErrNoCandidates):
			c.JSON(http.StatusNotFound, gin.H{"error": "no roads found near address"})
		case errors.Is(err, orient.ErrDegenerateGeometry), errors.Is(err, geo.ErrProjection):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "orientation undefined for this location"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "upstream lookup failed"})
		}
		return
	}

	c.JSON(http.StatusOK, orientResponse{
		Address:   res.Address,
		Lat:       res.Location.Lat,
		Lon:       res.Location.Lon,
		Bearing:   round2(res.Bearing),
		Compass:   res.Compass,
		RoadName:  res.RoadName,
		DistanceM: round2(res.DistanceM),
	})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
