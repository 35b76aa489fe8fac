package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ShivamGupta987/Google-Calendar/internal/service"
)

func ListGoals(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		goals, err := app.Goals().ListGoals(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch goals")
			return
		}
		c.JSON(http.StatusOK, goals)
	}
}

// GetGoal returns the goal together with every task referencing it.
func GetGoal(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		goal, err := service.GetGoal(ctx, app.Goals(), c.Param("id"))
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch goal")
			return
		}

		tasks, err := app.Tasks().ListTasksByGoal(ctx, goal.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch tasks for goal")
			return
		}

		c.JSON(http.StatusOK, gin.H{"goal": goal, "tasks": tasks})
	}
}

func PostGoal(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.GoalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if err := service.ValidateGoalRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Validation failed")
			return
		}

		goal, err := service.CreateGoal(c.Request.Context(), app.Goals(), &req)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Failed to create goal")
			return
		}
		c.JSON(http.StatusCreated, goal)
	}
}
