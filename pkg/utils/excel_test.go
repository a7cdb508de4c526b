package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type exportItem struct {
	Name  string
	Count int
	VIP   bool
	Date  *time.Time
}

func TestGenerateExcel(t *testing.T) {
	d := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	items := []exportItem{
		{Name: "Asha", Count: 3, VIP: true, Date: &d},
		{Name: "Ravi", Count: 1, VIP: false, Date: nil},
	}
	columns := []ExcelColumn[exportItem]{
		{Header: "Name", Value: func(i exportItem) any { return i.Name }},
		{Header: "Persons", Value: func(i exportItem) any { return i.Count }},
		{Header: "VIP", Value: func(i exportItem) any { return i.VIP }},
		{Header: "Date", Value: func(i exportItem) any { return i.Date }},
	}

	buf, err := GenerateExcel(items, columns, "Guests")
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Guests")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Name", "Persons", "VIP", "Date"}, rows[0])
	assert.Equal(t, []string{"Asha", "3", "Yes", "2026-03-14"}, rows[1])
	assert.Equal(t, "Ravi", rows[2][0])
	assert.Equal(t, "No", rows[2][2])
}

func TestFormatExcelValue(t *testing.T) {
	assert.Equal(t, "", FormatExcelValue(nil))
	assert.Equal(t, "Yes", FormatExcelValue(true))
	assert.Equal(t, 7, FormatExcelValue(uint(7)))

	var s *string
	assert.Equal(t, "", FormatExcelValue(s))

	name := "hello"
	assert.Equal(t, "hello", FormatExcelValue(&name))

	ts := time.Date(2026, 1, 2, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-01-02 18:30:00", FormatExcelValue(ts))
}
