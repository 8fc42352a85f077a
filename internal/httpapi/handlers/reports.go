package handlers

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kirubha-07/elix-career-advisor/internal/common"
	"github.com/kirubha-07/elix-career-advisor/internal/dataset"
	"github.com/kirubha-07/elix-career-advisor/internal/report"
	"gorm.io/gorm"
)

// Download renders the student's plan, keeps a copy in the report dir and
// streams it back as an attachment.
func (h *Handler) Download(c *gin.Context) {
	ctx := c.Request.Context()
	studentID := c.Param("student_id")

	rec, err := h.Advisor.Student(studentID)
	if err != nil {
		if errors.Is(err, dataset.ErrStudentNotFound) {
			common.Fail(c, http.StatusNotFound, 40401, "Student not found")
			return
		}
		common.Fail(c, http.StatusInternalServerError, 50002, "failed to load student")
		return
	}

	doc, err := h.Reports.Generate(ctx, rec, c.Query("format"))
	if err != nil {
		if errors.Is(err, report.ErrUnknownFormat) {
			common.Fail(c, http.StatusBadRequest, 10003, err.Error())
			return
		}
		slog.ErrorContext(ctx, "generate report", "student_id", rec.ID, "error", err)
		common.Fail(c, http.StatusInternalServerError, 50003, "failed to generate report")
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.Filename}))
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}

type createReportReq struct {
	StudentID string `json:"student_id" binding:"required"`
	Format    string `json:"format"`
}

func (h *Handler) CreateReportJob(c *gin.Context) {
	var req createReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10002, "student_id required")
		return
	}

	job, err := h.Jobs.Enqueue(c.Request.Context(), req.StudentID, req.Format)
	if err != nil {
		switch {
		case errors.Is(err, dataset.ErrStudentNotFound):
			common.Fail(c, http.StatusNotFound, 40401, "Student not found")
		case errors.Is(err, report.ErrUnknownFormat):
			common.Fail(c, http.StatusBadRequest, 10003, err.Error())
		default:
			slog.ErrorContext(c.Request.Context(), "enqueue report job", "student_id", req.StudentID, "error", err)
			common.Fail(c, http.StatusInternalServerError, 50004, "failed to enqueue report job")
		}
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"code":    0,
		"message": "accepted",
		"data":    gin.H{"job_id": job.ID},
	})
}

func (h *Handler) GetReportJob(c *gin.Context) {
	job, err := h.Jobs.Get(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			common.Fail(c, http.StatusNotFound, 40403, "job not found")
			return
		}
		common.Fail(c, http.StatusInternalServerError, 20001, "db error")
		return
	}
	common.OK(c, job)
}
