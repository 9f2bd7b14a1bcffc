// Package report renders payroll summaries to PDF.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/railops/shift-engine/catalogue"
	"github.com/railops/shift-engine/payroll"
)

// MonthlyPayroll renders the month's summary as a one-page payslip-style
// PDF and writes it to w.
func MonthlyPayroll(w io.Writer, operator catalogue.Role, month time.Time, s payroll.Summary) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Core fonts are cp1252; the labels carry accents.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, tr(fmt.Sprintf("Nómina %s", month.Format("January 2006"))))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Operador: %s", operator.DisplayName())))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Periodo: %s a %s",
		s.Period.Start.Format("2006-01-02"), s.Period.End.Format("2006-01-02")))
	pdf.Ln(10)

	line := func(label string, value string) {
		pdf.Cell(0, 8, tr(fmt.Sprintf("%s: %s", label, value)))
		pdf.Ln(7)
	}

	line("Horas trabajadas", fmt.Sprintf("%.2f", s.WorkedHours))
	line("Días trabajados", fmt.Sprintf("%d", s.WorkedDays))
	line("Nocturnidad", fmt.Sprintf("%.2f", s.NightTimeHours))
	line("Prima saturación", fmt.Sprintf("%.2f", s.Saturation))
	line("Indemnización descanso bocadillo", fmt.Sprintf("%d", s.SnackBreakCount))
	line("Indemnización Domingo/Festivo", fmt.Sprintf("%d", s.SundaysOrHolidays))
	line("Indemnización sábados", fmt.Sprintf("%d", s.Saturdays))
	line("Horas extras estructurales", fmt.Sprintf("%.2f", s.ExtraTimeHours))
	line("SPP", fmt.Sprintf("%.2f", s.SPPHours))
	line("Dietas", s.AllowanceCompensation.StringFixed(2))
	line("Comp. festivos especiales", fmt.Sprintf("%d", s.SpecialHolidayCount))
	pdf.Ln(5)

	for _, t := range catalogue.AllShiftTypes {
		b := s.ByType[t]
		line(fmt.Sprintf("%s (%d)", string(t), b.Days), fmt.Sprintf("%.2f", b.Hours))
	}

	return pdf.Output(w)
}
