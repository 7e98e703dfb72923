package handler

import (
	"net/http"
	"time"

	"github.com/Anuradha-Herath/FinTrack/internal/service"
	"github.com/Anuradha-Herath/FinTrack/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BudgetHandler serves budget CRUD with computed spending figures.
type BudgetHandler struct {
	Budgets *service.BudgetService
}

func NewBudgetHandler(budgets *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{Budgets: budgets}
}

type budgetReq struct {
	Category    string          `json:"category" binding:"required"`
	LimitAmount decimal.Decimal `json:"limitAmount" binding:"required"`
	Month       int             `json:"month" binding:"required"`
	Year        int             `json:"year" binding:"required"`
}

type budgetResp struct {
	ID                 uint            `json:"id"`
	Category           string          `json:"category"`
	LimitAmount        decimal.Decimal `json:"limitAmount"`
	Month              int             `json:"month"`
	Year               int             `json:"year"`
	SpentAmount        decimal.Decimal `json:"spentAmount"`
	RemainingAmount    decimal.Decimal `json:"remainingAmount"`
	ProgressPercentage decimal.Decimal `json:"progressPercentage"`
	Status             string          `json:"status"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          *time.Time      `json:"updatedAt,omitempty"`
}

func toBudgetResp(v *service.BudgetView) budgetResp {
	return budgetResp{
		ID:                 v.Budget.ID,
		Category:           v.Budget.Category,
		LimitAmount:        v.Budget.LimitAmount,
		Month:              v.Budget.Month,
		Year:               v.Budget.Year,
		SpentAmount:        v.SpentAmount,
		RemainingAmount:    v.RemainingAmount,
		ProgressPercentage: v.ProgressPercentage,
		Status:             v.Status,
		CreatedAt:          v.Budget.CreatedAt,
		UpdatedAt:          v.Budget.UpdatedAt,
	}
}

func (h *BudgetHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req budgetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	view, err := h.Budgets.Create(user.ID, service.BudgetInput{
		Category:    req.Category,
		LimitAmount: req.LimitAmount,
		Month:       req.Month,
		Year:        req.Year,
	})
	if err != nil {
		fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"budget": toBudgetResp(view),
	})
}

func (h *BudgetHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req budgetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	view, err := h.Budgets.Update(user.ID, id, service.BudgetInput{
		Category:    req.Category,
		LimitAmount: req.LimitAmount,
		Month:       req.Month,
		Year:        req.Year,
	})
	if err != nil {
		fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"budget": toBudgetResp(view),
	})
}

func (h *BudgetHandler) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.Budgets.Get(user.ID, id)
	if err != nil {
		fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"budget": toBudgetResp(view),
	})
}

func (h *BudgetHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	views, err := h.Budgets.List(user.ID)
	if err != nil {
		fail(c, err)
		return
	}

	items := make([]budgetResp, 0, len(views))
	for i := range views {
		items = append(items, toBudgetResp(&views[i]))
	}

	util.Success(c, util.Response{
		"budgets": items,
	})
}

func (h *BudgetHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Budgets.Delete(user.ID, id); err != nil {
		fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"message": "deleted",
	})
}
