package report

import (
	"bytes"
	"testing"

	"referidos/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestComisionesWorkbook(t *testing.T) {
	svc := NewExcelReportService()

	rows := []service.ComisionRow{
		{SocioCodigo: "AB12CD", SocioNombre: "Barbería Central", CuponesCobrados: 2, TotalComision: 15000, TotalPagado: 5000, Saldo: 10000},
		{SocioCodigo: "ZZ00AA", SocioNombre: "Café Austral", CuponesCobrados: 0, TotalComision: 0, TotalPagado: 2000, Saldo: -2000},
	}

	data, err := svc.ComisionesWorkbook(rows)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{comisionesSheet}, f.GetSheetList())

	got, err := f.GetRows(comisionesSheet)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, comisionesHeader, got[0])
	assert.Equal(t, []string{"AB12CD", "Barbería Central", "2", "15000", "5000", "10000"}, got[1])
	assert.Equal(t, []string{"ZZ00AA", "Café Austral", "0", "0", "2000", "-2000"}, got[2])
}

func TestComisionesWorkbook_EmptyLedger(t *testing.T) {
	svc := NewExcelReportService()

	data, err := svc.ComisionesWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(comisionesSheet)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, comisionesHeader, got[0])
}
