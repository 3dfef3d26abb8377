package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"employee-admin/internal/employee"
	"employee-admin/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type EmployeeHandler struct {
	store *employee.Store
	log   *zap.Logger
}

func NewEmployeeHandler(store *employee.Store, log *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{store: store, log: log}
}

// GET /employees
// Optional filters: search (name substring), gender (Male/Female), status (active/inactive)
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	criteria, ok := criteriaFromQuery(c)
	if !ok {
		return
	}
	list := h.store.Filter(criteria)
	c.JSON(http.StatusOK, models.EmployeeListResponse{
		Data:    list,
		Count:   len(list),
		Summary: h.store.Summary(),
	})
}

// GET /employees/summary
func (h *EmployeeHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Summary())
}

// GET /employees/:id
func (h *EmployeeHandler) GetEmployeeByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	e, err := h.store.Get(id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// POST /employees
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var in models.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	e, err := h.store.Add(c.Request.Context(), in.Input())
	if !h.saved(c, err) {
		return
	}
	h.respond(c, http.StatusCreated, gin.H{"data": e, "message": "Employee added successfully"}, err)
}

// PUT /employees/:id
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in models.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if in.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
		return
	}

	e, err := h.store.Update(c.Request.Context(), id, in.Patch())
	if !h.saved(c, err) {
		return
	}
	h.respond(c, http.StatusOK, gin.H{"data": e, "message": "employee updated"}, err)
}

// DELETE /employees/:id
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	err := h.store.Remove(c.Request.Context(), id)
	if !h.saved(c, err) {
		return
	}
	h.respond(c, http.StatusOK, gin.H{"message": "employee deleted"}, err)
}

// PATCH /employees/:id/status
// Body {"isActive": bool} sets the flag; an empty body toggles it.
func (h *EmployeeHandler) SetStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var in models.StatusRequest
	if err := c.ShouldBindJSON(&in); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	var (
		e   employee.Employee
		err error
	)
	if in.IsActive != nil {
		e, err = h.store.SetActive(c.Request.Context(), id, *in.IsActive)
	} else {
		e, err = h.store.Toggle(c.Request.Context(), id)
	}
	if !h.saved(c, err) {
		return
	}
	h.respond(c, http.StatusOK, gin.H{"data": e, "message": "status updated"}, err)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee id", "details": err.Error()})
		return 0, false
	}
	return id, true
}

func criteriaFromQuery(c *gin.Context) (employee.Criteria, bool) {
	criteria, err := employee.ParseCriteria(c.Query("search"), c.Query("gender"), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter", "details": err.Error()})
		return employee.Criteria{}, false
	}
	return criteria, true
}

// saved reports whether the mutation took effect in memory. Validation and
// lookup failures are written to the response and end the request.
func (h *EmployeeHandler) saved(c *gin.Context, err error) bool {
	var perr *employee.PersistenceError
	if err == nil || errors.As(err, &perr) {
		return true
	}
	h.writeError(c, err)
	return false
}

// respond writes body, adding a warning when the change was not persisted.
func (h *EmployeeHandler) respond(c *gin.Context, status int, body gin.H, err error) {
	var perr *employee.PersistenceError
	if errors.As(err, &perr) {
		h.log.Warn("employee change kept in memory but not persisted",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		body["warning"] = "change applied but could not be saved to storage: " + perr.Err.Error()
	}
	c.JSON(status, body)
}

func (h *EmployeeHandler) writeError(c *gin.Context, err error) {
	var verr *employee.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verr.Fields})
	case errors.Is(err, employee.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
	default:
		h.log.Error("employee operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed", "details": err.Error()})
	}
}
