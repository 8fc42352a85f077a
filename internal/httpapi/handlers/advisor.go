package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kirubha-07/elix-career-advisor/internal/common"
	"github.com/kirubha-07/elix-career-advisor/internal/httpapi/middleware"
	"github.com/kirubha-07/elix-career-advisor/internal/session"
)

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	// an unreadable body is a guest login
	_ = c.ShouldBindJSON(&req)

	res, err := h.Advisor.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "login failed", "error", err)
		common.Fail(c, http.StatusInternalServerError, 50001, "failed to sign token")
		return
	}
	c.JSON(http.StatusOK, res)
}

// askReq accepts query and session_id as JSON strings or numbers.
type askReq struct {
	Query     any `json:"query"`
	SessionID any `json:"session_id"`
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

func (h *Handler) Ask(c *gin.Context) {
	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}

	res := h.Advisor.Ask(c.Request.Context(), stringify(req.Query), stringify(req.SessionID))
	c.JSON(http.StatusOK, res)
}

func (h *Handler) SessionHistory(c *gin.Context) {
	sess, found := h.Advisor.History(c.Param("session_id"))
	if !found {
		common.Fail(c, http.StatusNotFound, 40402, "session not found")
		return
	}
	common.OK(c, sess)
}

// Me returns the logged-in user's own session.
func (h *Handler) Me(c *gin.Context) {
	username := c.GetString(middleware.UsernameKey)
	if username == "" {
		common.Fail(c, http.StatusUnauthorized, 40101, "unauthorized")
		return
	}

	history := []session.Entry{}
	if sess, found := h.Advisor.History(username); found {
		history = sess.History
	}
	common.OK(c, gin.H{
		"username":   username,
		"session_id": username,
		"history":    history,
	})
}
