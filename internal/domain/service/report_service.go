package service

// ComisionRow is one partner line in the commissions report.
type ComisionRow struct {
	SocioCodigo     string
	SocioNombre     string
	CuponesCobrados int
	TotalComision   int64
	TotalPagado     int64
	Saldo           int64
}

// ReportService builds downloadable reports from ledger data.
type ReportService interface {
	// ComisionesWorkbook renders the commissions summary as an xlsx workbook.
	ComisionesWorkbook(rows []ComisionRow) ([]byte, error)
}
