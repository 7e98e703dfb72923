package handler

import (
	"net/http"
	"time"

	"github.com/Anuradha-Herath/FinTrack/internal/models"
	"github.com/Anuradha-Herath/FinTrack/internal/service"
	"github.com/Anuradha-Herath/FinTrack/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// TransactionHandler serves the transaction CRUD plus the summary view.
type TransactionHandler struct {
	Transactions *service.TransactionService
}

func NewTransactionHandler(transactions *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{Transactions: transactions}
}

type transactionReq struct {
	Type        string          `json:"type" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        string          `json:"date"`
	Description string          `json:"description" binding:"max=255"`
	AccountID   *uint           `json:"accountId"`
}

type transactionResp struct {
	ID          uint            `json:"id"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
	AccountID   *uint           `json:"accountId,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func toTransactionResp(t *models.Transaction) transactionResp {
	return transactionResp{
		ID:          t.ID,
		Type:        string(t.Type),
		Category:    t.Category,
		Amount:      t.Amount,
		Date:        t.Date,
		Description: t.Description,
		AccountID:   t.AccountID,
		CreatedAt:   t.CreatedAt,
	}
}

func (r *transactionReq) toInput(c *gin.Context) (service.TransactionInput, bool) {
	in := service.TransactionInput{
		Type:        models.TransactionType(r.Type),
		Category:    r.Category,
		Amount:      r.Amount,
		Description: r.Description,
		AccountID:   r.AccountID,
	}
	if r.Date != "" {
		date, err := util.ParseDate(r.Date)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
			return in, false
		}
		in.Date = date
	}
	return in, true
}

func (h *TransactionHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req transactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	in, ok := req.toInput(c)
	if !ok {
		return
	}

	txn, err := h.Transactions.Create(user.ID, in)
	if err != nil {
		fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"transaction": toTransactionResp(txn),
	})
}

func (h *TransactionHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req transactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	in, ok := req.toInput(c)
	if !ok {
		return
	}

	txn, err := h.Transactions.Update(user.ID, id, in)
	if err != nil {
		fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"transaction": toTransactionResp(txn),
	})
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Transactions.Delete(user.ID, id); err != nil {
		fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"message": "deleted",
	})
}

// List supports ?type=&category=&startDate=&endDate= filters.
func (h *TransactionHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	filter := service.TransactionFilter{
		Type:     models.TransactionType(c.Query("type")),
		Category: c.Query("category"),
	}
	if s := c.Query("startDate"); s != "" {
		start, err := util.ParseDate(s)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
			return
		}
		filter.StartDate = &start
	}
	if s := c.Query("endDate"); s != "" {
		end, err := util.ParseDate(s)
		if err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
			return
		}
		filter.EndDate = &end
	}

	txns, err := h.Transactions.List(user.ID, filter)
	if err != nil {
		fail(c, err)
		return
	}

	items := make([]transactionResp, 0, len(txns))
	for i := range txns {
		items = append(items, toTransactionResp(&txns[i]))
	}

	util.Success(c, util.Response{
		"transactions": items,
		"total":        len(items),
	})
}

// Summary returns the caller's healed totals.
func (h *TransactionHandler) Summary(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	summary, err := h.Transactions.Summary(user.ID)
	if err != nil {
		fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"totalIncome":  summary.TotalIncome,
		"totalExpense": summary.TotalExpense,
		"balance":      summary.Balance,
	})
}
