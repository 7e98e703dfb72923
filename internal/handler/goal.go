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

// GoalHandler serves savings-goal CRUD and the add-amount operation.
type GoalHandler struct {
	Goals *service.GoalService
}

func NewGoalHandler(goals *service.GoalService) *GoalHandler {
	return &GoalHandler{Goals: goals}
}

type goalReq struct {
	Title         string          `json:"title" binding:"required"`
	TargetAmount  decimal.Decimal `json:"targetAmount" binding:"required"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      string          `json:"deadline" binding:"required"`
	Description   string          `json:"description" binding:"max=255"`
}

type addAmountReq struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

type goalResp struct {
	ID                 uint            `json:"id"`
	Title              string          `json:"title"`
	TargetAmount       decimal.Decimal `json:"targetAmount"`
	CurrentAmount      decimal.Decimal `json:"currentAmount"`
	Deadline           time.Time       `json:"deadline"`
	Description        string          `json:"description,omitempty"`
	ProgressPercentage decimal.Decimal `json:"progressPercentage"`
}

func toGoalResp(g *models.Goal) goalResp {
	return goalResp{
		ID:                 g.ID,
		Title:              g.Title,
		TargetAmount:       g.TargetAmount,
		CurrentAmount:      g.CurrentAmount,
		Deadline:           g.Deadline,
		Description:        g.Description,
		ProgressPercentage: service.Progress(g),
	}
}

func (r *goalReq) toInput(c *gin.Context) (service.GoalInput, bool) {
	in := service.GoalInput{
		Title:         r.Title,
		TargetAmount:  r.TargetAmount,
		CurrentAmount: r.CurrentAmount,
		Description:   r.Description,
	}
	deadline, err := util.ParseDate(r.Deadline)
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return in, false
	}
	in.Deadline = deadline
	return in, true
}

func (h *GoalHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req goalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	in, ok := req.toInput(c)
	if !ok {
		return
	}

	goal, err := h.Goals.Create(user.ID, in)
	if err != nil {
		fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"goal": toGoalResp(goal),
	})
}

func (h *GoalHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req goalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	in, ok := req.toInput(c)
	if !ok {
		return
	}

	goal, err := h.Goals.Update(user.ID, id, in)
	if err != nil {
		fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"goal": toGoalResp(goal),
	})
}

// AddAmount puts money into the jar.
func (h *GoalHandler) AddAmount(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req addAmountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	goal, err := h.Goals.AddAmount(user.ID, id, req.Amount)
	if err != nil {
		fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"goal": toGoalResp(goal),
	})
}

func (h *GoalHandler) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	goal, err := h.Goals.Get(user.ID, id)
	if err != nil {
		fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"goal": toGoalResp(goal),
	})
}

func (h *GoalHandler) List(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	goals, err := h.Goals.List(user.ID)
	if err != nil {
		fail(c, err)
		return
	}

	items := make([]goalResp, 0, len(goals))
	for i := range goals {
		items = append(items, toGoalResp(&goals[i]))
	}

	util.Success(c, util.Response{
		"goals": items,
	})
}

func (h *GoalHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.Goals.Delete(user.ID, id); err != nil {
		fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"message": "deleted",
	})
}
