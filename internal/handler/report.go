package handler

import (
	"strconv"

	"github.com/Anuradha-Herath/FinTrack/internal/service"
	"github.com/Anuradha-Herath/FinTrack/internal/util"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the read-only reporting endpoints.
type ReportHandler struct {
	Reports *service.ReportService
}

func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{Reports: reports}
}

// queryInt reads an optional integer query parameter, 0 when absent.
func queryInt(c *gin.Context, name string) int {
	v, _ := strconv.Atoi(c.Query(name))
	if v < 0 {
		return 0
	}
	return v
}

func (h *ReportHandler) Summary(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	summary, err := h.Reports.Summary(user.ID, queryInt(c, "month"), queryInt(c, "year"))
	if err != nil {
		fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"totalIncome":  summary.TotalIncome,
		"totalExpense": summary.TotalExpense,
		"net":          summary.Net,
	})
}

func (h *ReportHandler) ExpensesByCategory(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	totals, err := h.Reports.ExpensesByCategory(user.ID, queryInt(c, "month"), queryInt(c, "year"))
	if err != nil {
		fail(c, err)
		return
	}

	items := make([]gin.H, 0, len(totals))
	for _, t := range totals {
		items = append(items, gin.H{
			"category": t.Category,
			"total":    t.Total,
		})
	}

	util.Success(c, util.Response{
		"categories": items,
	})
}

func (h *ReportHandler) IncomeVsExpenseTrend(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	series, err := h.Reports.IncomeVsExpenseTrend(user.ID, queryInt(c, "year"))
	if err != nil {
		fail(c, err)
		return
	}

	items := make([]gin.H, 0, len(series))
	for _, m := range series {
		items = append(items, gin.H{
			"month":   m.Month,
			"income":  m.Income,
			"expense": m.Expense,
		})
	}

	util.Success(c, util.Response{
		"trend": items,
	})
}
