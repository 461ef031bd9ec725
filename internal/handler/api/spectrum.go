package api

import (
	"net/http"

	"CycleScan/internal/domain/models"
	"CycleScan/internal/service/ratelimit"
	"CycleScan/internal/usecase"
	xhttp "CycleScan/pkg/http"
	xlogger "CycleScan/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SpectrumHandler exposes the rolling-spectrum endpoints over Echo.
type SpectrumHandler struct {
	logger  *xlogger.Logger
	service *usecase.SpectrumService
	rl      *ratelimit.Limiter
}

func NewSpectrumHandler(logger *xlogger.Logger, service *usecase.SpectrumService) *SpectrumHandler {
	return &SpectrumHandler{logger: logger, service: service, rl: ratelimit.New()}
}

func (h *SpectrumHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/spectrum", h.Spectrum)
	g.GET("/spectrum/components", h.Components)
	e.GET("/healthz", h.Health)
}

// Spectrum returns the full report: rolling curve, components, signal
// and the indicator snapshot.
func (h *SpectrumHandler) Spectrum(c echo.Context) error {
	req := &models.SpectrumRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.rl.Allow(c.RealIP()+":spectrum", 5, 2) {
		return xhttp.DataResponse(c, http.StatusTooManyRequests, "rate limited")
	}

	report, err := h.service.Scan(c.Request().Context(), req)
	if err != nil {
		return h.scanError(c, req.Symbol, err)
	}
	return xhttp.SuccessResponse(c, report)
}

// Components returns only the kept frequency bins for the most recent
// window, for callers that chart the spectrum itself.
func (h *SpectrumHandler) Components(c echo.Context) error {
	req := &models.ComponentsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.rl.Allow(c.RealIP()+":components", 5, 2) {
		return xhttp.DataResponse(c, http.StatusTooManyRequests, "rate limited")
	}

	scan := &models.SpectrumRequest{
		Symbol:    req.Symbol,
		Window:    req.Window,
		NumFreq:   req.NumFreq,
		Bars:      1,
		Threshold: 0,
	}
	report, err := h.service.Scan(c.Request().Context(), scan)
	if err != nil {
		return h.scanError(c, req.Symbol, err)
	}
	return xhttp.SuccessResponse(c, report.Result.ComplexComponents)
}

func (h *SpectrumHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *SpectrumHandler) scanError(c echo.Context, symbol string, err error) error {
	if usecase.IsClientError(err) {
		h.logger.Warn("scan rejected", xlogger.String("symbol", symbol), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.UnprocessableError(err.Error()))
	}
	h.logger.Error("scan failed", xlogger.String("symbol", symbol), xlogger.Error(err))
	return xhttp.AppErrorResponse(c, xhttp.BadGatewayError("could not compute spectrum").WithError(err))
}

var _ xhttp.Handler = (*SpectrumHandler)(nil)
