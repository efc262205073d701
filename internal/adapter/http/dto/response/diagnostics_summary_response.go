package response

type DiagnosticsSummaryResponse struct {
	TotalCalls int `json:"total_calls"`
	ErrorCalls int `json:"error_calls"`
}

func FromSummaryCounts(total, errors int) DiagnosticsSummaryResponse {
	return DiagnosticsSummaryResponse{
		TotalCalls: total,
		ErrorCalls: errors,
	}
}
