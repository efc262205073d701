package routes

import (
	"csob_gateway/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDiagnostics = "/diagnostics"
)

func addDiagnosticsRoutes(rg *gin.RouterGroup, diagnosticsHandler *handlers.DiagnosticsHandler) {
	diag := rg.Group(PathDiagnostics)
	{
		// Call-report intake used by the gateway client.
		diag.POST("/calls", diagnosticsHandler.RecordCall)
		diag.GET("/summary", diagnosticsHandler.Summary)

		// Rendered panel surfaces consumed by the host dev tooling.
		diag.GET("/panel", diagnosticsHandler.PanelDetail)
		diag.GET("/panel/summary", diagnosticsHandler.PanelSummary)

		// Audit-trail persistence.
		diag.POST("/archive", diagnosticsHandler.Archive)
		diag.GET("/archive/:merchant_id", diagnosticsHandler.ListArchive)
	}
}
