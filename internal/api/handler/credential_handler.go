package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cezeus/club-api/internal/api/metrics"
	"github.com/cezeus/club-api/internal/core/domain"
	"github.com/cezeus/club-api/internal/core/ports"
)

// CredentialHandler exposes the carnet viewer workspace and the PDF export.
type CredentialHandler struct {
	credentials ports.CredentialService
	exporter    ports.ExportService
}

func NewCredentialHandler(credentials ports.CredentialService, exporter ports.ExportService) *CredentialHandler {
	return &CredentialHandler{credentials: credentials, exporter: exporter}
}

type selectRequest struct {
	MemberID string `json:"member_id" validate:"required"`
}

// Select handles PUT /v1/carnet/selection.
//
// @Summary      Select the member shown in the carnet viewer
// @Tags         carnet
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      selectRequest  true  "Member to show"
// @Success      200   {object}  ports.FacesView
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/carnet/selection [put]
func (h *CredentialHandler) Select(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return err
	}

	var req selectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.credentials.Select(c.Request().Context(), caller, req.MemberID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}

// Faces handles GET /v1/carnet.
//
// @Summary      Get both carnet faces for the current selection
// @Tags         carnet
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.FacesView
// @Failure      404  {object}  errorResponse
// @Router       /v1/carnet [get]
func (h *CredentialHandler) Faces(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return err
	}

	view, err := h.credentials.Faces(c.Request().Context(), caller)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}

// Flip handles POST /v1/carnet/flip.
//
// @Summary      Flip the shown carnet face
// @Tags         carnet
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.FacesView
// @Failure      404  {object}  errorResponse
// @Router       /v1/carnet/flip [post]
func (h *CredentialHandler) Flip(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return err
	}

	view, err := h.credentials.Flip(c.Request().Context(), caller)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}

// Export handles GET /v1/members/:id/carnet/export.
//
// @Summary      Download the two-page carnet PDF for a member
// @Tags         carnet
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "Member ID"
// @Success      200  {file}    binary
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/members/{id}/carnet/export [get]
func (h *CredentialHandler) Export(c echo.Context) error {
	caller, err := callerFromContext(c)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := h.exporter.Export(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrExportBusy) {
			metrics.ExportsTotal.WithLabelValues("busy").Inc()
		} else {
			metrics.ExportsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.ExportsTotal.WithLabelValues("ok").Inc()
	metrics.ExportDuration.Observe(time.Since(start).Seconds())

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+result.Filename+`"`)
	return c.Blob(http.StatusOK, result.ContentType, result.Data)
}
