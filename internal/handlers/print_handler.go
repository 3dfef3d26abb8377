package handlers

import (
	"bytes"
	"net/http"

	"employee-admin/internal/printview"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GET /employees/print
// Same filters as the list; renders a printable page without the actions column.
func (h *EmployeeHandler) PrintEmployees(c *gin.Context) {
	criteria, ok := criteriaFromQuery(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := printview.Render(&buf, h.store.Filter(criteria)); err != nil {
		h.log.Error("render print view", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "render failed"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
