package handlers

import (
	"errors"
	"log"
	"net/http"

	request "csob_gateway/internal/adapter/http/dto/request"
	response "csob_gateway/internal/adapter/http/dto/response"
	"csob_gateway/internal/diagnostics"
	"csob_gateway/internal/diagnostics/panel"
	"csob_gateway/internal/usecase"
	"csob_gateway/pkg"

	"github.com/gin-gonic/gin"
)

const contentTypeHTML = "text/html; charset=utf-8"

// DiagnosticsHandler exposes the recorder, the panel renderer and the
// archive usecase over HTTP for the host developer tooling.

type DiagnosticsHandler struct {
	recorder *diagnostics.Recorder
	panel    *panel.Panel
	usecase  usecase.IDiagnosticArchiveUseCase
}

func NewDiagnosticsHandler(rec *diagnostics.Recorder, pnl *panel.Panel, uc usecase.IDiagnosticArchiveUseCase) *DiagnosticsHandler {
	return &DiagnosticsHandler{recorder: rec, panel: pnl, usecase: uc}
}

// RecordCall ingests one call report from the gateway client. Recording
// must never perturb the client's own flow, so a well-formed report is
// always accepted.
func (h *DiagnosticsHandler) RecordCall(c *gin.Context) {
	var req request.RecordCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[diagnostics][handler] invalid call report err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.recorder.RecordCall(*req.ID, diagnostics.PayloadFromJSON(req.Request), diagnostics.PayloadFromJSON(req.Response))
	log.Printf("[diagnostics][handler] call recorded id=%d", *req.ID)

	total, errs := h.recorder.SummaryCounts()
	c.JSON(http.StatusAccepted, response.FromSummaryCounts(total, errs))
}

// Summary returns the recorder counts as JSON.
func (h *DiagnosticsHandler) Summary(c *gin.Context) {
	total, errs := h.recorder.SummaryCounts()
	c.JSON(http.StatusOK, response.FromSummaryCounts(total, errs))
}

// PanelSummary serves the rendered tab label.
func (h *DiagnosticsHandler) PanelSummary(c *gin.Context) {
	c.Data(http.StatusOK, contentTypeHTML, []byte(h.panel.RenderSummary()))
}

// PanelDetail serves the full rendered report.
func (h *DiagnosticsHandler) PanelDetail(c *gin.Context) {
	c.Data(http.StatusOK, contentTypeHTML, []byte(h.panel.RenderDetail()))
}

// Archive flushes the current recorder snapshot into the audit trail.
func (h *DiagnosticsHandler) Archive(c *gin.Context) {
	log.Printf("[diagnostics][handler] archive start")

	archived, err := h.usecase.ArchiveSnapshot(c.Request.Context())
	if err != nil {
		log.Printf("[diagnostics][handler] archive failed err=%v", err)
		appErr := mapDiagnosticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[diagnostics][handler] archive success archived=%d", len(archived))

	c.JSON(http.StatusOK, response.FromArchivedCalls(archived))
}

// ListArchive returns the persisted audit trail of one merchant.
func (h *DiagnosticsHandler) ListArchive(c *gin.Context) {
	merchantID := c.Param("merchant_id")
	log.Printf("[diagnostics][handler] list-archive start merchant_id=%s", merchantID)

	calls, err := h.usecase.ListByMerchantID(c.Request.Context(), merchantID)
	if err != nil {
		log.Printf("[diagnostics][handler] list-archive failed merchant_id=%s err=%v", merchantID, err)
		appErr := mapDiagnosticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromArchivedCalls(calls))
}

func mapDiagnosticsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMerchantID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoActiveConfig):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_CONFIG", "No merchant configuration registered", http.StatusConflict)
	case errors.Is(err, usecase.ErrArchiveUnavailable):
		return pkg.NewDomainErrorSimple("ARCHIVE_UNAVAILABLE", "Diagnostics archive not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
