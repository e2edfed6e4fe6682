package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"budgetbook/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const exportTimeLayout = "2006-01-02"

var exportHeaders = []string{"ID", "类型", "类别", "金额", "备注", "日期", "创建时间"}

func typeLabel(t string) string {
	if t == models.TransactionTypeIncome {
		return "收入"
	}
	return "支出"
}

func exportRow(tx models.Transaction) []string {
	return []string{
		strconv.FormatUint(uint64(tx.ID), 10),
		typeLabel(tx.Type),
		models.CategoryLabel(tx.Category),
		tx.Amount.StringFixed(2),
		tx.Note,
		tx.OccurredAt.Format(exportTimeLayout),
		tx.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// BuildTransactionCSV 生成收支记录 CSV，带 BOM 以便 Excel 正确显示中文
func BuildTransactionCSV(txs []models.Transaction) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)
	if err := writer.Write(exportHeaders); err != nil {
		return nil, err
	}
	for _, tx := range txs {
		if err := writer.Write(exportRow(tx)); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildTransactionWorkbook 生成收支记录 Excel，末尾附收入/支出合计行。调用方负责 Close
func BuildTransactionWorkbook(txs []models.Transaction, label string) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "收支记录"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, err
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})

	f.SetColWidth(sheet, "A", "A", 10)
	f.SetColWidth(sheet, "B", "C", 12)
	f.SetColWidth(sheet, "D", "D", 15)
	f.SetColWidth(sheet, "E", "E", 30)
	f.SetColWidth(sheet, "F", "G", 20)

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	income, expense := decimal.Zero, decimal.Zero
	for i, tx := range txs {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), tx.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), typeLabel(tx.Type))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), models.CategoryLabel(tx.Category))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), tx.Amount.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), tx.Note)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), tx.OccurredAt.Format(exportTimeLayout))
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), tx.CreatedAt.Format("2006-01-02 15:04:05"))
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("G%d", row), dataStyle)

		if tx.Type == models.TransactionTypeIncome {
			income = income.Add(tx.Amount)
		} else {
			expense = expense.Add(tx.Amount)
		}
	}

	// 合计行
	summaryRow := len(txs) + 2
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "合计 "+label)
	f.MergeCell(sheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("C%d", summaryRow))
	f.SetCellValue(sheet, fmt.Sprintf("D%d", summaryRow), income.Sub(expense).InexactFloat64())
	f.SetCellValue(sheet, fmt.Sprintf("E%d", summaryRow),
		fmt.Sprintf("收入 %s / 支出 %s，共 %d 条记录", income.StringFixed(2), expense.StringFixed(2), len(txs)))
	f.MergeCell(sheet, fmt.Sprintf("E%d", summaryRow), fmt.Sprintf("G%d", summaryRow))
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("G%d", summaryRow), summaryStyle)

	return f, nil
}
