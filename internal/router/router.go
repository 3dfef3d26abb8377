package router

import (
	"net/http"

	"employee-admin/internal/app"
	"employee-admin/internal/handlers"
	"employee-admin/internal/middleware"

	"github.com/gin-gonic/gin"
)

// New builds the engine with logging, recovery and all routes.
func New(a *app.App) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(a.Logger), gin.Recovery())
	r.MaxMultipartMemory = handlers.MaxPhotoBytes + 1<<20
	Setup(r, a)
	return r
}

func Setup(r *gin.Engine, a *app.App) {
	am := middleware.NewAuthMiddleware(a.Gate, a.Tokens)
	ah := handlers.NewAuthHandler(a.Gate, a.Tokens, am, a.Logger)
	eh := handlers.NewEmployeeHandler(a.Employees, a.Logger)

	// health
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "backend": a.Config.Store.Backend})
	})

	auth := r.Group("/auth")
	auth.POST("/login", ah.Login)
	auth.GET("/status", ah.Status)
	auth.POST("/logout", am.RequireSession(), ah.Logout)

	emp := r.Group("/employees", am.RequireSession())
	emp.GET("", eh.ListEmployees)
	emp.POST("", eh.CreateEmployee)
	emp.GET("/summary", eh.GetSummary)
	emp.GET("/print", eh.PrintEmployees)
	emp.GET("/:id", eh.GetEmployeeByID)
	emp.PUT("/:id", eh.UpdateEmployee)
	emp.DELETE("/:id", eh.DeleteEmployee)
	emp.PATCH("/:id/status", eh.SetStatus)
	emp.POST("/:id/photo", eh.UploadPhoto)
	emp.DELETE("/:id/photo", eh.DeletePhoto)
}
