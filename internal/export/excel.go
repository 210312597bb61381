package export

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/marie/subvention-scroller/internal/models"
)

const opportunitySheet = "Opportunities"

var workbookHeaders = []string{
	"Origin", "Title", "Organization", "Source", "Category", "Type",
	"Perimeter", "Amount", "Currency", "Deadline", "Days Until Deadline",
	"URL", "Link Status", "Contact Email", "Contact Phone", "Eligibility",
	"Description",
}

// originFills colors opportunity rows by origin so the three catalogs are
// visually separable in one sheet.
var originFills = map[models.Origin]string{
	models.OriginFrench:    "#DCE6F1",
	models.OriginEuropean:  "#E2EFDA",
	models.OriginColombian: "#FCE4D6",
}

// WriteWorkbook renders the opportunities into a styled xlsx under the excel
// export directory and returns the written path.
func WriteWorkbook(opps []models.Opportunity, name, baseDir string) (string, error) {
	base, err := EnsureDirs(baseDir)
	if err != nil {
		return "", err
	}
	path := filepath.Join(base, ExcelDir, timestampedName(name, time.Now())+".xlsx")

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", opportunitySheet); err != nil {
		return "", err
	}
	if err := writeOpportunitySheet(f, opps); err != nil {
		return "", err
	}
	if err := writeSummarySheet(f, opps); err != nil {
		return "", err
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("saving workbook: %w", err)
	}
	log.Printf("Exported %d opportunities to %s", len(opps), path)
	return path, nil
}

// WriteWorkingURLsWorkbook exports only opportunities whose links validated.
func WriteWorkingURLsWorkbook(opps []models.Opportunity, name, baseDir string) (string, error) {
	var working []models.Opportunity
	for _, opp := range opps {
		if opp.LinkActive {
			working = append(working, opp)
		}
	}
	return WriteWorkbook(working, name+"_working", baseDir)
}

// WriteUrgentWorkbook exports only opportunities closing within 30 days.
func WriteUrgentWorkbook(opps []models.Opportunity, name, baseDir string) (string, error) {
	var urgent []models.Opportunity
	for _, opp := range opps {
		if opp.DaysUntilDeadline <= 30 {
			urgent = append(urgent, opp)
		}
	}
	return WriteWorkbook(urgent, name+"_urgent", baseDir)
}

func writeOpportunitySheet(f *excelize.File, opps []models.Opportunity) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	for col, h := range workbookHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(opportunitySheet, cell, h); err != nil {
			return err
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(workbookHeaders), 1)
	if err := f.SetCellStyle(opportunitySheet, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	rowStyles := make(map[models.Origin]int, len(originFills))
	for origin, fill := range originFills {
		style, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fill}},
		})
		if err != nil {
			return err
		}
		rowStyles[origin] = style
	}

	widths := make([]int, len(workbookHeaders))
	for i, h := range workbookHeaders {
		widths[i] = len(h)
	}

	for i, opp := range opps {
		row := i + 2
		values := []interface{}{
			string(opp.Origin), opp.Title, opp.Organization, opp.Source,
			opp.Category, opp.Type, opp.Perimeter, opp.Amount, opp.Currency,
			opp.Deadline, opp.DaysUntilDeadline, opp.URL, opp.LinkStatus,
			opp.ContactEmail, opp.ContactPhone, opp.Eligibility, opp.Description,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(opportunitySheet, cell, v); err != nil {
				return err
			}
			if s, ok := v.(string); ok && len(s) > widths[col] {
				widths[col] = len(s)
			}
		}
		if style, ok := rowStyles[opp.Origin]; ok {
			start, _ := excelize.CoordinatesToCellName(1, row)
			end, _ := excelize.CoordinatesToCellName(len(values), row)
			if err := f.SetCellStyle(opportunitySheet, start, end, style); err != nil {
				return err
			}
		}
	}

	// Column widths track content, capped so description columns stay sane.
	for i, w := range widths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if w > 50 {
			w = 50
		}
		if err := f.SetColWidth(opportunitySheet, name, name, float64(w+2)); err != nil {
			return err
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, opps []models.Opportunity) error {
	if _, err := f.NewSheet("Summary"); err != nil {
		return err
	}

	counts := map[models.Origin]int{}
	urgent := 0
	for _, opp := range opps {
		counts[opp.Origin]++
		if opp.DaysUntilDeadline <= 30 {
			urgent++
		}
	}

	lines := []struct {
		label string
		value interface{}
	}{
		{"Total opportunities", len(opps)},
		{"French", counts[models.OriginFrench]},
		{"European", counts[models.OriginEuropean]},
		{"Colombian", counts[models.OriginColombian]},
		{"Closing within 30 days", urgent},
		{"Generated", time.Now().Format("2006-01-02 15:04:05")},
	}
	for i, line := range lines {
		labelCell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		valueCell, err := excelize.CoordinatesToCellName(2, i+1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue("Summary", labelCell, line.label); err != nil {
			return err
		}
		if err := f.SetCellValue("Summary", valueCell, line.value); err != nil {
			return err
		}
	}
	return nil
}
