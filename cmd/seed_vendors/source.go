package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Proveedores-api/internal/application/dto"
)

// Columnas reconocidas en la cabecera (sin importar orden ni mayúsculas).
const (
	colCode    = "vendor_code"
	colName    = "name"
	colContact = "contact_details"
	colAddress = "address"
)

// readRecords lee el archivo de proveedores: .xlsx (primera hoja) o CSV.
// encoding aplica solo a CSV: "utf-8" (por defecto) o "latin1" para exportaciones ISO-8859-1.
func readRecords(path, encoding string) ([][]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return readXLSX(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir CSV: %w", err)
	}
	defer f.Close()
	return readCSV(f, encoding)
}

func readCSV(r io.Reader, encoding string) ([][]string, error) {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
	case "latin1", "iso-8859-1", "iso8859-1":
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	default:
		return nil, fmt.Errorf("codificación no soportada: %s", encoding)
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("leer CSV: %w", err)
	}
	return records, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("abrir XLSX: %w", err)
	}
	defer func() { _ = f.Close() }()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("XLSX sin hojas")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer hoja %s: %w", sheets[0], err)
	}
	return rows, nil
}

// parseVendors convierte los registros (con cabecera en la primera fila) en solicitudes de alta.
// Las filas vacías se ignoran.
func parseVendors(records [][]string) ([]dto.CreateVendorRequest, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("archivo vacío")
	}
	idx := map[string]int{}
	for i, h := range records[0] {
		// El BOM de UTF-8 llega pegado a la primera columna en exportaciones de Excel.
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF")))
		idx[key] = i
	}
	for _, required := range []string{colCode, colName} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("falta la columna %q en la cabecera", required)
		}
	}
	get := func(rec []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	out := make([]dto.CreateVendorRequest, 0, len(records)-1)
	for n, rec := range records[1:] {
		if strings.TrimSpace(strings.Join(rec, "")) == "" {
			continue
		}
		req := dto.CreateVendorRequest{
			VendorCode:     get(rec, colCode),
			Name:           get(rec, colName),
			ContactDetails: get(rec, colContact),
			Address:        get(rec, colAddress),
		}
		if req.VendorCode == "" || req.Name == "" {
			return nil, fmt.Errorf("fila %d: vendor_code y name son obligatorios", n+2)
		}
		out = append(out, req)
	}
	return out, nil
}
