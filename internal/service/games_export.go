package service

import (
	"fmt"
	"io"
	"log"

	"github.com/xuri/excelize/v2"
)

// GameExportRow — строка выгрузки игр
type GameExportRow struct {
	ID        uint
	CreatedAt string
	Status    string
	Level     int
	Prize     int64
}

// WriteGamesXLSX пишет игры в XLSX через StreamWriter
func WriteGamesXLSX(w io.Writer, headers []string, rows []GameExportRow) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Games"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("create stream writer: %w", err)
	}

	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, r := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{r.ID, sanitizeForExcel(r.CreatedAt), sanitizeForExcel(r.Status), r.Level, r.Prize}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[GamesExport] Ошибка записи строки %d: %v", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush xlsx: %w", err)
	}
	return f.Write(w)
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}
