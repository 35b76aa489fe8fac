package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShivamGupta987/Google-Calendar/internal/service"
)

func ListTasks(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		tasks, err := app.Tasks().ListTasks(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch tasks")
			return
		}
		c.JSON(http.StatusOK, tasks)
	}
}

func ListTasksByGoal(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		tasks, err := app.Tasks().ListTasksByGoal(c.Request.Context(), c.Param("goalId"))
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch tasks")
			return
		}
		c.JSON(http.StatusOK, tasks)
	}
}

func PostTask(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.TaskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if err := service.ValidateTaskRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Validation failed")
			return
		}

		task, err := service.CreateTask(c.Request.Context(), app.Tasks(), &req)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Failed to create task")
			return
		}
		c.JSON(http.StatusCreated, task)
	}
}

func PutTask(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var upd service.TaskUpdate
		if err := c.ShouldBindJSON(&upd); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}

		task, err := service.UpdateTask(c.Request.Context(), app.Tasks(), c.Param("id"), &upd)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Failed to update task")
			return
		}
		c.JSON(http.StatusOK, task)
	}
}
