package reports

import (
	"fmt"
	"net/http"

	"github.com/raihanahmadkhan/fintrak-backend/models"
	"github.com/xuri/excelize/v2"
)

// ExportExpensesExcel streams the scoped expense listing as an .xlsx download.
// employees maps employee id -> user for the name column; ids missing from the
// map fall back to the raw id.
func ExportExpensesExcel(w http.ResponseWriter, expenses []*models.Expense, employees map[int]*models.User) error {

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Expenses"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	// Add headers
	f.SetCellValue(sheet, "A1", "Employee")
	f.SetCellValue(sheet, "B1", "Department")
	f.SetCellValue(sheet, "C1", "Date")
	f.SetCellValue(sheet, "D1", "Category")
	f.SetCellValue(sheet, "E1", "Amount")
	f.SetCellValue(sheet, "F1", "Description")
	f.SetCellValue(sheet, "G1", "Status")

	// Add data
	for i, e := range expenses {
		row := fmt.Sprint(i + 2)
		name := fmt.Sprint(e.EmployeeId)
		if u, ok := employees[e.EmployeeId]; ok {
			name = u.Name
		}
		f.SetCellValue(sheet, "A"+row, name)
		f.SetCellValue(sheet, "B"+row, e.Department)
		f.SetCellValue(sheet, "C"+row, e.ExpenseDate.Format("2006-01-02"))
		f.SetCellValue(sheet, "D"+row, e.Category)
		f.SetCellValue(sheet, "E"+row, e.Amount.InexactFloat64())
		f.SetCellValue(sheet, "F"+row, e.Description)
		f.SetCellValue(sheet, "G"+row, string(e.Status))
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=expenses.xlsx")
	if err := f.Write(w); err != nil {
		return err
	}
	return nil
}
