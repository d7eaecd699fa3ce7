package excel

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// maxSheetNameLength ограничение Excel на длину имени листа
const maxSheetNameLength = 31

// ErrNoActiveSheet возвращается при записи до создания листа
var ErrNoActiveSheet = errors.New("excel: no active sheet")

// Writer построчная запись xlsx-файла
type Writer struct {
	file         *excelize.File
	currentSheet string
	currentRow   int
}

// NewWriter создает новый xlsx-файл
func NewWriter() *Writer {
	return &Writer{file: excelize.NewFile()}
}

// AddSheet добавляет лист и делает его активным; первый лист переименовывает стандартный Sheet1
func (w *Writer) AddSheet(name string) error {
	name = truncateSheetName(name)

	if w.currentSheet == "" {
		if err := w.file.SetSheetName("Sheet1", name); err != nil {
			return fmt.Errorf("excel: rename sheet %s: %w", name, err)
		}
	} else if _, err := w.file.NewSheet(name); err != nil {
		return fmt.Errorf("excel: create sheet %s: %w", name, err)
	}

	w.currentSheet = name
	w.currentRow = 1
	return nil
}

// WriteHeader пишет строку заголовков жирным шрифтом
func (w *Writer) WriteHeader(columns []string) error {
	row := make([]interface{}, len(columns))
	for i, c := range columns {
		row[i] = c
	}

	headerRow := w.currentRow
	if err := w.WriteRow(row); err != nil {
		return err
	}

	style, err := w.file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("excel: header style: %w", err)
	}
	start, err := excelize.CoordinatesToCellName(1, headerRow)
	if err != nil {
		return fmt.Errorf("excel: cell name: %w", err)
	}
	end, err := excelize.CoordinatesToCellName(len(columns), headerRow)
	if err != nil {
		return fmt.Errorf("excel: cell name: %w", err)
	}
	return w.file.SetCellStyle(w.currentSheet, start, end, style)
}

// truncateSheetName обрезает имя по символам, а не байтам
func truncateSheetName(name string) string {
	if utf8.RuneCountInString(name) <= maxSheetNameLength {
		return name
	}
	return string([]rune(name)[:maxSheetNameLength])
}

// WriteRow пишет строку значений в активный лист
func (w *Writer) WriteRow(values []interface{}) error {
	if w.currentSheet == "" {
		return ErrNoActiveSheet
	}

	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, w.currentRow)
		if err != nil {
			return fmt.Errorf("excel: cell name: %w", err)
		}
		if err := w.file.SetCellValue(w.currentSheet, cell, v); err != nil {
			return fmt.Errorf("excel: set %s: %w", cell, err)
		}
	}

	w.currentRow++
	return nil
}

// Save пишет файл в w
func (w *Writer) Save(out io.Writer) error {
	if _, err := w.file.WriteTo(out); err != nil {
		return fmt.Errorf("excel: write: %w", err)
	}
	return nil
}

// Close освобождает ресурсы файла
func (w *Writer) Close() error {
	return w.file.Close()
}
