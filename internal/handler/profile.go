package handler

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Anuradha-Herath/FinTrack/internal/service"
	"github.com/Anuradha-Herath/FinTrack/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProfileHandler serves the authenticated user's own profile.
type ProfileHandler struct {
	Auth      *service.AuthService
	UploadDir string
}

func NewProfileHandler(auth *service.AuthService, uploadDir string) *ProfileHandler {
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	return &ProfileHandler{Auth: auth, UploadDir: uploadDir}
}

type updateProfileReq struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"max=32"`
}

type changePasswordReq struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

func (h *ProfileHandler) Get(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	util.Success(c, util.Response{
		"user": gin.H{
			"id":             user.ID,
			"name":           user.Name,
			"email":          user.Email,
			"phone":          user.Phone,
			"profilePicture": user.ProfilePicture,
			"createdAt":      user.CreatedAt,
		},
	})
}

func (h *ProfileHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	updated, err := h.Auth.UpdateProfile(user.ID, req.Name, req.Phone)
	if err != nil {
		fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"user": gin.H{
			"id":    updated.ID,
			"name":  updated.Name,
			"email": updated.Email,
			"phone": updated.Phone,
		},
	})
}

func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}

	if err := h.Auth.ChangePassword(user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"message": "password changed",
	})
}

// UploadPicture stores a profile picture under the upload dir with a random
// file name and records its path on the user row.
func (h *ProfileHandler) UploadPicture(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	file, err := c.FormFile("picture")
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "picture file is required")
		return
	}
	if file.Size > 5<<20 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "picture too large, max 5 MB")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
	default:
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "unsupported image format")
		return
	}

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to store picture")
		return
	}

	name := fmt.Sprintf("%s%s", uuid.NewString(), ext)
	dst := filepath.Join(h.UploadDir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to store picture")
		return
	}

	if err := h.Auth.SetProfilePicture(user.ID, dst); err != nil {
		fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"profilePicture": dst,
	})
}
