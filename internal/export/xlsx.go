// Package export renders monthly statement sheets into xlsx workbooks.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"tradescope/internal/journal"
)

var monthNames = [...]string{
	"Janvier", "Fevrier", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Aout", "Septembre", "Octobre", "Novembre", "Decembre",
}

const (
	colorDarkBlue = "1B2A4A"
	colorHeaderBg = "2C3E6B"
	colorLightRed = "FCE4EC"
	colorGreenBg  = "C6EFCE"
	colorRedBg    = "FFC7CE"
	colorGreenFg  = "006100"
	colorRedFg    = "9C0006"
)

const (
	fmtEuro       = "#,##0.00 €"
	fmtEuroTight  = "#,##0.00€"
	fmtPercentOne = "0.0%"
)

var headers = []string{
	"Sem.", "Capital", "Obj Gain /J", "Profits/Pertes / J",
	"% / J", "Avance et retard", "Profit mensuel",
}

var columnWidths = []float64{6, 14, 14, 16, 10, 16, 16}

// WriteWorkbook renders one worksheet per statement sheet and writes the
// workbook to w. Sheets must be non-empty; BuildSheets guarantees that.
func WriteWorkbook(w io.Writer, sheets []journal.Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	st, err := newStyles(f)
	if err != nil {
		return err
	}

	for i, sheet := range sheets {
		name := sheetName(sheet)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return err
		}
		if err := renderSheet(f, name, sheet, st); err != nil {
			return fmt.Errorf("render %s: %w", name, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func sheetName(sheet journal.Sheet) string {
	return fmt.Sprintf("%s %d", monthNames[int(sheet.Month)-1], sheet.Year)
}

// Filename builds a download name from an account label.
func Filename(accountName string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '-', r == '_':
			return '_'
		}
		return -1
	}, strings.TrimSpace(accountName))
	if slug == "" {
		slug = "account"
	}
	return fmt.Sprintf("statement_%s.xlsx", slug)
}

type styles struct {
	title      int
	infoLabel  int
	infoSmall  int
	euroBold   int
	maxLoss    int
	pctBold    int
	header     int
	weekLabel  int
	euro       int
	euroObj    int
	pnlPlain   int
	pnlGreen   int
	pnlRed     int
	pct        int
	pctRed     int
	weekGreen  int
	weekRed    int
	monthGreen int
	monthRed   int
	totalGreen int
	totalRed   int
	totalPctG  int
	totalPctR  int
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	var err error

	euro := fmtEuro
	euroTight := fmtEuroTight
	pct := fmtPercentOne
	hairBottom := []excelize.Border{{Type: "bottom", Style: 7, Color: "D0D0D0"}}
	middle := &excelize.Alignment{Vertical: "center"}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}

	fill := func(color string) excelize.Fill {
		return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}}
	}

	if st.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill:      fill(colorDarkBlue),
		Alignment: center,
	}); err != nil {
		return st, err
	}
	if st.infoLabel, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 10},
	}); err != nil {
		return st, err
	}
	if st.infoSmall, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 9},
	}); err != nil {
		return st, err
	}
	if st.euroBold, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: &euro,
	}); err != nil {
		return st, err
	}
	if st.maxLoss, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Color: "FF0000"},
		Fill:         fill(colorLightRed),
		CustomNumFmt: &pct,
	}); err != nil {
		return st, err
	}
	if st.pctBold, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: &pct,
	}); err != nil {
		return st, err
	}
	if st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 10, Color: "FFFFFF"},
		Fill:      fill(colorHeaderBg),
		Alignment: center,
		Border:    []excelize.Border{{Type: "bottom", Style: 1, Color: colorDarkBlue}},
	}); err != nil {
		return st, err
	}
	if st.weekLabel, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 10},
		Alignment: middle,
		Border:    hairBottom,
	}); err != nil {
		return st, err
	}
	if st.euro, err = f.NewStyle(&excelize.Style{
		CustomNumFmt: &euro,
		Border:       hairBottom,
	}); err != nil {
		return st, err
	}
	if st.euroObj, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: &euroTight,
		Border:       hairBottom,
	}); err != nil {
		return st, err
	}
	if st.pnlPlain, err = f.NewStyle(&excelize.Style{
		CustomNumFmt: &euroTight,
		Border:       hairBottom,
	}); err != nil {
		return st, err
	}
	if st.pnlGreen, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Color: colorGreenFg},
		Fill:         fill(colorGreenBg),
		CustomNumFmt: &euroTight,
		Border:       hairBottom,
	}); err != nil {
		return st, err
	}
	if st.pnlRed, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Color: colorRedFg},
		Fill:         fill(colorRedBg),
		CustomNumFmt: &euroTight,
		Border:       hairBottom,
	}); err != nil {
		return st, err
	}
	if st.pct, err = f.NewStyle(&excelize.Style{
		CustomNumFmt: &pct,
		Border:       hairBottom,
	}); err != nil {
		return st, err
	}
	if st.pctRed, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Color: colorRedFg},
		CustomNumFmt: &pct,
		Border:       hairBottom,
	}); err != nil {
		return st, err
	}
	if st.weekGreen, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Color: colorGreenFg},
		Alignment:    center,
		CustomNumFmt: &pct,
		Border:       hairBottom,
	}); err != nil {
		return st, err
	}
	if st.weekRed, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Color: colorRedFg},
		Fill:         fill(colorRedBg),
		Alignment:    center,
		CustomNumFmt: &pct,
		Border:       hairBottom,
	}); err != nil {
		return st, err
	}
	if st.monthGreen, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Size: 14, Color: colorGreenFg},
		Fill:         fill(colorGreenBg),
		Alignment:    center,
		CustomNumFmt: &euroTight,
		Border:       hairBottom,
	}); err != nil {
		return st, err
	}
	if st.monthRed, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Size: 14, Color: colorRedFg},
		Fill:         fill(colorRedBg),
		Alignment:    center,
		CustomNumFmt: &euroTight,
		Border:       hairBottom,
	}); err != nil {
		return st, err
	}
	if st.totalGreen, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Color: colorGreenFg},
		Fill:         fill(colorGreenBg),
		CustomNumFmt: &euro,
		Border:       hairBottom,
	}); err != nil {
		return st, err
	}
	if st.totalRed, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Color: colorRedFg},
		Fill:         fill(colorRedBg),
		CustomNumFmt: &euro,
		Border:       hairBottom,
	}); err != nil {
		return st, err
	}
	if st.totalPctG, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Color: colorGreenFg},
		Fill:         fill(colorGreenBg),
		CustomNumFmt: &pct,
		Border:       hairBottom,
	}); err != nil {
		return st, err
	}
	if st.totalPctR, err = f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Color: colorRedFg},
		Fill:         fill(colorRedBg),
		CustomNumFmt: &pct,
		Border:       hairBottom,
	}); err != nil {
		return st, err
	}
	return st, nil
}

func renderSheet(f *excelize.File, name string, sheet journal.Sheet, st styles) error {
	for i, width := range columnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(name, col, col, width); err != nil {
			return err
		}
	}

	// Title banner.
	if err := f.MergeCell(name, "A1", "G1"); err != nil {
		return err
	}
	title := fmt.Sprintf("MOIS - %s %d", strings.ToUpper(monthNames[int(sheet.Month)-1]), sheet.Year)
	f.SetCellValue(name, "A1", title)
	f.SetCellStyle(name, "A1", "G1", st.title)
	f.SetRowHeight(name, 1, 24)

	// Capital and objective block, rows 2-4.
	f.SetCellValue(name, "A2", "Capital de base")
	f.SetCellStyle(name, "A2", "A2", st.infoLabel)
	if err := f.MergeCell(name, "A2", "C2"); err != nil {
		return err
	}
	f.SetCellValue(name, "D2", sheet.StartCapital.InexactFloat64())
	f.SetCellStyle(name, "D2", "D2", st.euroBold)

	f.SetCellValue(name, "F2", "Perte Max autorisee")
	f.SetCellStyle(name, "F2", "F2", st.infoSmall)
	f.SetCellValue(name, "G2", sheet.Params.MaxLossPct.InexactFloat64()/100)
	f.SetCellStyle(name, "G2", "G2", st.maxLoss)

	f.SetCellValue(name, "A3", "Capital en cours")
	f.SetCellStyle(name, "A3", "A3", st.infoLabel)
	if err := f.MergeCell(name, "A3", "C3"); err != nil {
		return err
	}
	f.SetCellValue(name, "D3", sheet.EndCapital.InexactFloat64())
	f.SetCellStyle(name, "D3", "D3", st.euroBold)

	f.SetCellValue(name, "F3", "Obj/S gain en % =")
	f.SetCellStyle(name, "F3", "F3", st.infoSmall)
	f.SetCellValue(name, "G3", sheet.Params.ObjWeekPct.InexactFloat64()/100)
	f.SetCellStyle(name, "G3", "G3", st.pctBold)

	f.SetCellValue(name, "F4", "Obj/J en % =")
	f.SetCellStyle(name, "F4", "F4", st.infoSmall)
	f.SetCellValue(name, "G4", sheet.Params.ObjDayPct.InexactFloat64()/100)
	f.SetCellStyle(name, "G4", "G4", st.pctBold)

	// Column headers, row 6.
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 6)
		f.SetCellValue(name, cell, h)
		f.SetCellStyle(name, cell, cell, st.header)
	}
	f.SetRowHeight(name, 6, 22)

	const dataStart = 7
	row := dataStart
	for _, week := range sheet.Weeks {
		weekStart := row
		for dIdx, day := range week.Days {
			if dIdx == 0 {
				cell, _ := excelize.CoordinatesToCellName(1, row)
				f.SetCellValue(name, cell, fmt.Sprintf("s%d", week.Index))
			}
			setCell(f, name, 1, row, nil, st.weekLabel)
			setCell(f, name, 2, row, day.CapitalBefore.InexactFloat64(), st.euro)
			setCell(f, name, 3, row, sheet.ObjPerDay.InexactFloat64(), st.euroObj)

			pnlStyle := st.pnlPlain
			switch day.PnL.Sign() {
			case 1:
				pnlStyle = st.pnlGreen
			case -1:
				pnlStyle = st.pnlRed
			}
			setCell(f, name, 4, row, day.PnL.InexactFloat64(), pnlStyle)

			pctStyle := st.pct
			if day.PnL.Sign() < 0 {
				pctStyle = st.pctRed
			}
			setCell(f, name, 5, row, day.Pct/100, pctStyle)

			setCell(f, name, 6, row, nil, st.pct)
			setCell(f, name, 7, row, nil, st.pct)
			row++
		}

		// Weekly advance/delay at the group's middle row.
		anchor := weekStart + week.AnchorOffset
		weekStyle := st.weekGreen
		if week.PnL.Sign() < 0 {
			weekStyle = st.weekRed
		}
		setCell(f, name, 6, anchor, week.Pct/100, weekStyle)

		if len(week.Days) > 1 {
			from, _ := excelize.CoordinatesToCellName(1, weekStart)
			to, _ := excelize.CoordinatesToCellName(1, row-1)
			if err := f.MergeCell(name, from, to); err != nil {
				return err
			}
			from, _ = excelize.CoordinatesToCellName(6, weekStart)
			to, _ = excelize.CoordinatesToCellName(6, row-1)
			if err := f.MergeCell(name, from, to); err != nil {
				return err
			}
		}
	}

	dataEnd := row - 1
	if dataEnd >= dataStart {
		monthStyle := st.monthGreen
		if sheet.MonthPnL.Sign() < 0 {
			monthStyle = st.monthRed
		}
		setCell(f, name, 7, dataStart+sheet.AnchorRow, sheet.MonthPnL.InexactFloat64(), monthStyle)
		if dataEnd > dataStart {
			from, _ := excelize.CoordinatesToCellName(7, dataStart)
			to, _ := excelize.CoordinatesToCellName(7, dataEnd)
			if err := f.MergeCell(name, from, to); err != nil {
				return err
			}
		}
	}

	// Total row.
	totalStyle, totalPctStyle := st.totalGreen, st.totalPctG
	if sheet.MonthPnL.Sign() < 0 {
		totalStyle, totalPctStyle = st.totalRed, st.totalPctR
	}
	setCell(f, name, 4, row, sheet.MonthPnL.InexactFloat64(), totalStyle)
	setCell(f, name, 5, row, sheet.MonthPct/100, totalPctStyle)

	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value any, styleID int) {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	if value != nil {
		f.SetCellValue(sheet, cell, value)
	}
	f.SetCellStyle(sheet, cell, cell, styleID)
}
