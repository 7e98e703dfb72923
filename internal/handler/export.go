package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/Anuradha-Herath/FinTrack/internal/service"
	"github.com/Anuradha-Herath/FinTrack/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler streams the caller's transactions as CSV or XLSX.
type ExportHandler struct {
	Transactions *service.TransactionService
}

func NewExportHandler(transactions *service.TransactionService) *ExportHandler {
	return &ExportHandler{Transactions: transactions}
}

var exportHeaders = []string{"Type", "Category", "Amount", "Date", "Description"}

// ExportCSV writes all of the caller's transactions as a CSV attachment.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	txns, err := h.Transactions.List(user.ID, service.TransactionFilter{})
	if err != nil {
		fail(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for i := range txns {
		t := &txns[i]
		writer.Write([]string{
			string(t.Type),
			t.Category,
			t.Amount.StringFixed(2),
			t.Date.Format("2006-01-02"),
			t.Description,
		})
	}
}

// ExportXLSX writes all of the caller's transactions as an XLSX attachment.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	txns, err := h.Transactions.List(user.ID, service.TransactionFilter{})
	if err != nil {
		fail(c, err)
		return
	}

	f := excelize.NewFile()
	sheetName := "Transactions"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create sheet")
		return
	}
	f.SetActiveSheet(index)

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for idx := range txns {
		t := &txns[idx]
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), string(t.Type))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), t.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), t.Amount.StringFixed(2))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), t.Date.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), t.Description)
	}

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 15)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 12)
	f.SetColWidth(sheetName, "E", "E", 30)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "export failed")
	}
}
