package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mercuryins/pas-service/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders an agent's book of business: a summary sheet and one
// row per policy.
func (g *Generator) Generate(book model.AgentBook) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, book); err != nil {
		return nil, err
	}

	policiesSheet := "Policies"
	file.NewSheet(policiesSheet)
	if err := g.writePolicies(file, policiesSheet, book); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, book model.AgentBook) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Agent")
	set("B1", book.Agent.FullName())
	set("A2", "Email")
	set("B2", book.Agent.Email)
	set("A3", "Policies")
	set("B3", len(book.Policies))
	set("A4", "Total annual premium")
	set("B4", book.TotalPremium.StringFixed(2))

	_ = file.SetColWidth(sheet, "A", "A", 24)
	_ = file.SetColWidth(sheet, "B", "B", 32)
	return nil
}

func (g *Generator) writePolicies(file *excelize.File, sheet string, book model.AgentBook) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	headers := []string{
		"Policy number",
		"Customer ID",
		"Vehicle ID",
		"Start date",
		"End date",
		"Premium",
		"Status",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, header)
	}

	for i, policy := range book.Policies {
		row := 2 + i
		set(fmt.Sprintf("A%d", row), policy.PolicyNumber)
		set(fmt.Sprintf("B%d", row), policy.CustomerID.String())
		set(fmt.Sprintf("C%d", row), policy.VehicleID.String())
		set(fmt.Sprintf("D%d", row), formatDate(policy.StartDate))
		set(fmt.Sprintf("E%d", row), formatDate(policy.EndDate))
		set(fmt.Sprintf("F%d", row), policy.PremiumAmount.StringFixed(2))
		set(fmt.Sprintf("G%d", row), string(policy.Status))
	}

	_ = file.SetColWidth(sheet, "A", "A", 24)
	_ = file.SetColWidth(sheet, "B", "C", 38)
	_ = file.SetColWidth(sheet, "D", "E", 14)
	_ = file.SetColWidth(sheet, "F", "G", 12)
	return nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
