package Controllers

import (
	"DentaDesk/Models"
	"fmt"
	"log"
	"net/http"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gin-gonic/gin"
)

func euros(cents int64) float64 {
	return float64(cents) / 100
}

// ExportCompensationTable writes the compensation ledger for one fiscal
// month/year to an XLSX sheet, one row per entry.
func ExportCompensationTable(c *gin.Context) {
	var input struct {
		Month int `json:"month"`
		Year  int `json:"year"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var entries []Models.CompensationEntry
	if err := Models.DB.Model(&Models.CompensationEntry{}).
		Where("month = ? AND year = ?", input.Month, input.Year).
		Find(&entries).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	headers := map[string]string{
		"A1": "Practitioner",
		"B1": "Quote",
		"C1": "Base Amount",
		"D1": "Percentage",
		"E1": "Compensation",
		"F1": "Paid",
	}
	file := excelize.NewFile()
	sheet := "Compensation"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range headers {
		file.SetCellValue(sheet, k, v)
	}

	for i := 0; i < len(entries); i++ {
		appendRowCompensation(sheet, file, i, entries)
	}
	var filename string = "./Compensation.xlsx"
	if err := file.SaveAs(filename); err != nil {
		log.Println(err)
	}
	c.File(filename)
}

func appendRowCompensation(sheet string, file *excelize.File, index int, rows []Models.CompensationEntry) (fileWriter *excelize.File) {
	rowCount := index + 2
	var practitioner Models.Practitioner
	Models.DB.Model(&Models.Practitioner{}).Where("id = ?", rows[index].PractitionerID).First(&practitioner)
	var quote Models.Quote
	Models.DB.Model(&Models.Quote{}).Where("id = ?", rows[index].QuoteID).First(&quote)

	file.SetCellValue(sheet, fmt.Sprintf("A%v", rowCount), practitioner.Name)
	file.SetCellValue(sheet, fmt.Sprintf("B%v", rowCount), quote.Number)
	file.SetCellValue(sheet, fmt.Sprintf("C%v", rowCount), euros(rows[index].BaseAmount))
	file.SetCellValue(sheet, fmt.Sprintf("D%v", rowCount), rows[index].Percentage)
	file.SetCellValue(sheet, fmt.Sprintf("E%v", rowCount), euros(rows[index].Amount))
	file.SetCellValue(sheet, fmt.Sprintf("F%v", rowCount), rows[index].IsPaid)
	return file
}

// ExportQuotesTable writes the quote register, optionally bounded by creation
// dates (YYYY-MM-DD).
func ExportQuotesTable(c *gin.Context) {
	var input struct {
		DateFrom string `json:"date_from"`
		DateTo   string `json:"date_to"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var quotes []Models.Quote

	if input.DateFrom != "" && input.DateTo != "" {
		if err := Models.DB.Model(&Models.Quote{}).
			Where("created_at BETWEEN ? AND ?", input.DateFrom, input.DateTo).
			Find(&quotes).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	} else {
		if err := Models.DB.Model(&Models.Quote{}).Find(&quotes).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	headers := map[string]string{
		"A1": "Number",
		"B1": "Date",
		"C1": "Total",
		"D1": "Status",
		"E1": "Payment Status",
	}
	file := excelize.NewFile()
	sheet := "Quotes"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range headers {
		file.SetCellValue(sheet, k, v)
	}

	for i := 0; i < len(quotes); i++ {
		appendRowQuote(sheet, file, i, quotes)
	}
	var filename string = "./Quotes.xlsx"
	if err := file.SaveAs(filename); err != nil {
		log.Println(err)
	}
	c.File(filename)
}

func appendRowQuote(sheet string, file *excelize.File, index int, rows []Models.Quote) (fileWriter *excelize.File) {
	rowCount := index + 2
	file.SetCellValue(sheet, fmt.Sprintf("A%v", rowCount), rows[index].Number)
	file.SetCellValue(sheet, fmt.Sprintf("B%v", rowCount), rows[index].CreatedAt.Format("2006-01-02"))
	file.SetCellValue(sheet, fmt.Sprintf("C%v", rowCount), euros(rows[index].Total))
	file.SetCellValue(sheet, fmt.Sprintf("D%v", rowCount), rows[index].Status)
	file.SetCellValue(sheet, fmt.Sprintf("E%v", rowCount), rows[index].PaymentStatus)
	return file
}
