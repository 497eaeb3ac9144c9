package task

import (
	"errors"
	"net/http"

	"github.com/zachary-salyers1/customer-management-app/middleware"
	"github.com/zachary-salyers1/customer-management-app/viewmodel"

	"github.com/gin-gonic/gin"
)

func CompleteTaskController(router *gin.Engine, states *viewmodel.Manager) {
	router.PATCH("/task/:id/complete", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		CompleteTask(c, states)
	})
}

func CompleteTask(c *gin.Context, states *viewmodel.Manager) {
	userID := c.MustGet("userId").(string)
	taskID := c.Param("id")

	state := states.For(userID)
	task, err := state.CompleteTask(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, viewmodel.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task marked as completed",
		"task":    task,
	})
}
