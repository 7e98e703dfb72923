package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Anuradha-Herath/FinTrack/internal/models"
	"github.com/Anuradha-Herath/FinTrack/internal/service"
	"github.com/Anuradha-Herath/FinTrack/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the authenticated user out of the gin context. On
// failure it writes the 401 envelope and returns ok=false.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("currentUser")
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return nil, false
	}
	return user, true
}

// parseID reads the :id path parameter. On failure it writes the 400
// envelope and returns ok=false.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// fail maps a service error onto the response envelope.
func fail(c *gin.Context, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, vErr.Error())
	case errors.Is(err, service.ErrNotFound):
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "record not found")
	case errors.Is(err, service.ErrConflict):
		util.Error(c, http.StatusConflict, util.CodeConflict, err.Error())
	case errors.Is(err, service.ErrBadCredentials):
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, err.Error())
	default:
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "internal error")
	}
}
