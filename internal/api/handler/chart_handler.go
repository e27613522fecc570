package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/falaklabs/natal-api/internal/core/ports"
)

// ChartHandler handles HTTP requests for natal chart computation.
type ChartHandler struct {
	service ports.ChartService
}

func NewChartHandler(service ports.ChartService) *ChartHandler {
	return &ChartHandler{service: service}
}

// Compute handles POST /v1/charts.
//
// @Summary      Compute a natal chart
// @Description  Computes zodiac placements, houses, ascendant, and aspects for a birth moment. The location may be written in Arabic or Latin script.
// @Tags         charts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      computeChartRequest  true  "Birth details"
// @Success      200   {object}  computeChartResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /v1/charts [post]
func (h *ChartHandler) Compute(c echo.Context) error {
	var req computeChartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	chart, err := h.service.ComputeChart(c.Request().Context(), ports.ComputeChartInput{
		Name:      req.Name,
		BirthDate: req.BirthDate,
		BirthTime: req.BirthTime,
		Location:  req.Location,
	})
	if err != nil {
		// The central error handler maps domain errors to status + kind.
		return err
	}

	return c.JSON(http.StatusOK, toChartResponse(chart))
}
