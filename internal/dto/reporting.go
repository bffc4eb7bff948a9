package dto

import "time"

// IncomeReceiptReportParams filters the income receipt report. DateFrom and
// DateTo are calendar dates; the service widens them to whole days in the
// configured report time zone (from 00:00:00.000 through 23:59:59.999).
type IncomeReceiptReportParams struct {
	DateFrom        time.Time `form:"dateFrom" time_format:"2006-01-02" binding:"required"`
	DateTo          time.Time `form:"dateTo" time_format:"2006-01-02" binding:"required"`
	ConceptID       *int64    `form:"conceptID"`
	PaymentMethodID *int64    `form:"paymentMethodID"`
	IncludeInactive bool      `form:"includeInactive"`
	Page            int       `form:"page"`
	PageSize        int       `form:"pageSize"`
}

// ExpenseReceiptReportParams filters the expense receipt report.
type ExpenseReceiptReportParams struct {
	DateFrom        time.Time `form:"dateFrom" time_format:"2006-01-02" binding:"required"`
	DateTo          time.Time `form:"dateTo" time_format:"2006-01-02" binding:"required"`
	IncludeInactive bool      `form:"includeInactive"`
	Page            int       `form:"page"`
	PageSize        int       `form:"pageSize"`
}

// PagedResponse is the envelope for every paginated query result.
type PagedResponse[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}
