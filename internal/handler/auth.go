package handler

import (
	"net/http"

	"github.com/Anuradha-Herath/FinTrack/internal/models"
	"github.com/Anuradha-Herath/FinTrack/internal/service"
	"github.com/Anuradha-Herath/FinTrack/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves register/login.
type AuthHandler struct {
	Auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

type registerReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func userResp(user *models.User) gin.H {
	return gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	user, err := h.Auth.Register(req.Name, req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"message": "registered",
		"user":    userResp(user),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	user, token, err := h.Auth.Login(req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"token": token,
		"user":  userResp(user),
	})
}
