package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/kirubha-07/elix-career-advisor/internal/advisor"
	"github.com/kirubha-07/elix-career-advisor/internal/common"
	"github.com/kirubha-07/elix-career-advisor/internal/config"
	"github.com/kirubha-07/elix-career-advisor/internal/report"
)

type Handler struct {
	Cfg     config.Config
	Advisor *advisor.Service
	Reports *report.Service
	// Jobs is nil unless the report queue is configured.
	Jobs *report.Jobs
}

func NewHandler(cfg config.Config, adv *advisor.Service, reports *report.Service, jobs *report.Jobs) *Handler {
	return &Handler{Cfg: cfg, Advisor: adv, Reports: reports, Jobs: jobs}
}

func (h *Handler) Ping(c *gin.Context) {
	common.OK(c, gin.H{"pong": true})
}
