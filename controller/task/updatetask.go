package task

import (
	"errors"
	"net/http"

	"github.com/zachary-salyers1/customer-management-app/dto"
	"github.com/zachary-salyers1/customer-management-app/middleware"
	"github.com/zachary-salyers1/customer-management-app/viewmodel"

	"github.com/gin-gonic/gin"
)

func UpdateTaskController(router *gin.Engine, states *viewmodel.Manager) {
	router.PUT("/task/:id", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		UpdateTask(c, states)
	})
}

func UpdateTask(c *gin.Context, states *viewmodel.Manager) {
	userID := c.MustGet("userId").(string)
	taskID := c.Param("id")

	var request dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	state := states.For(userID)
	task, err := state.UpdateTask(c.Request.Context(), taskID, viewmodel.TaskPatch{
		Name:        request.Name,
		Description: request.Description,
		Notes:       request.Notes,
		Status:      request.Status,
		Priority:    request.Priority,
	})
	if err != nil {
		if errors.Is(err, viewmodel.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task updated successfully",
		"task":    task,
	})
}
