package excel

import (
	"bytes"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriter(t *testing.T) {
	w := NewWriter()
	t.Cleanup(func() { _ = w.Close() })

	assert.ErrorIs(t, w.WriteRow([]interface{}{"x"}), ErrNoActiveSheet)

	require.NoError(t, w.AddSheet("2025-03-01 booking board overflow"))
	require.NoError(t, w.WriteHeader([]string{"Stylist", "Time"}))
	require.NoError(t, w.WriteRow([]interface{}{"Alice", "09:00"}))

	var buf bytes.Buffer
	require.NoError(t, w.Save(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	sheets := f.GetSheetList()
	require.Equal(t, []string{"2025-03-01 booking board overfl"}, sheets)

	rows, err := f.GetRows(sheets[0])
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Stylist", "Time"}, {"Alice", "09:00"}}, rows)
}

func TestWriter_MultiByteSheetName(t *testing.T) {
	w := NewWriter()
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, w.AddSheet("Доска записей мастеров на 1 марта 2025"))
	require.NoError(t, w.WriteHeader([]string{"Мастер"}))

	var buf bytes.Buffer
	require.NoError(t, w.Save(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	sheets := f.GetSheetList()
	require.Len(t, sheets, 1)
	assert.Equal(t, "Доска записей мастеров на 1 мар", sheets[0])
	assert.True(t, utf8.ValidString(sheets[0]))
}

func TestWriter_HeaderWithoutSheet(t *testing.T) {
	w := NewWriter()
	t.Cleanup(func() { _ = w.Close() })

	assert.ErrorIs(t, w.WriteHeader([]string{"Stylist"}), ErrNoActiveSheet)
}
