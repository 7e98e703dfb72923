package handler

import (
	"net/http"

	"github.com/Anuradha-Herath/FinTrack/internal/models"
	"github.com/Anuradha-Herath/FinTrack/internal/service"
	"github.com/Anuradha-Herath/FinTrack/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AccountHandler serves money-account CRUD.
type AccountHandler struct {
	Accounts *service.AccountService
}

func NewAccountHandler(accounts *service.AccountService) *AccountHandler {
	return &AccountHandler{Accounts: accounts}
}

type accountReq struct {
	Name    string          `json:"name" binding:"required"`
	Type    string          `json:"type" binding:"required"`
	Balance decimal.Decimal `json:"balance"`
}

type accountResp struct {
	ID      uint            `json:"id"`
	Name    string          `json:"name"`
	Type    string          `json:"type"`
	Balance decimal.Decimal `json:"balance"`
}

func toAccountResp(a *models.Account) accountResp {
	return accountResp{
		ID:      a.ID,
		Name:    a.Name,
		Type:    a.Type,
		Balance: a.Balance,
	}
}

func (h *AccountHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req accountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	account, err := h.Accounts.Create(user.ID, service.AccountInput{
		Name:    req.Name,
		Type:    req.Type,
		Balance: req.Balance,
	})
	if err != nil {
		fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"account": toAccountResp(account),
	})
}

func (h *AccountHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req accountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	account, err := h.Accounts.Update(user.ID, id, service.AccountInput{
		Name: req.Name,
		Type: req.Type,
	})
	if err != nil {
		fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"account": toAccountResp(account),
	})
}

func (h *AccountHandler) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	account, err := h.Accounts.Get(user.ID, id)
	if err != nil {
		fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"account": toAccountResp(account),
	})
}

func (h *AccountHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	accounts, err := h.Accounts.List(user.ID)
	if err != nil {
		fail(c, err)
		return
	}

	items := make([]accountResp, 0, len(accounts))
	for i := range accounts {
		items = append(items, toAccountResp(&accounts[i]))
	}

	util.Success(c, util.Response{
		"accounts": items,
	})
}

func (h *AccountHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Accounts.Delete(user.ID, id); err != nil {
		fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"message": "deleted",
	})
}
