// Package report renders downloadable xlsx workbooks for the admin panel.
package report

import (
	"referidos/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const comisionesSheet = "Comisiones"

var comisionesHeader = []string{
	"Código",
	"Socio",
	"Cupones cobrados",
	"Comisión total",
	"Total pagado",
	"Saldo",
}

type excelReportService struct{}

// NewExcelReportService creates the xlsx report builder.
func NewExcelReportService() service.ReportService {
	return &excelReportService{}
}

// ComisionesWorkbook renders the commissions summary: one row per partner
// with earned, paid and outstanding amounts in CLP.
func (s *excelReportService) ComisionesWorkbook(rows []service.ComisionRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(comisionesSheet); err != nil {
		return nil, errors.Wrap(err, "failed to create sheet")
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, errors.Wrap(err, "failed to delete default sheet")
	}

	for col, title := range comisionesHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, errors.Wrap(err, "failed to build header cell name")
		}
		if err := f.SetCellValue(comisionesSheet, cell, title); err != nil {
			return nil, errors.Wrap(err, "failed to write header cell")
		}
	}

	for i, row := range rows {
		values := []any{
			row.SocioCodigo,
			row.SocioNombre,
			row.CuponesCobrados,
			row.TotalComision,
			row.TotalPagado,
			row.Saldo,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, errors.Wrap(err, "failed to build cell name")
			}
			if err := f.SetCellValue(comisionesSheet, cell, value); err != nil {
				return nil, errors.Wrap(err, "failed to write cell")
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to serialize workbook")
	}

	return buf.Bytes(), nil
}
