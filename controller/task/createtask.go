package task

import (
	"errors"
	"net/http"

	"github.com/zachary-salyers1/customer-management-app/dto"
	"github.com/zachary-salyers1/customer-management-app/middleware"
	"github.com/zachary-salyers1/customer-management-app/model"
	"github.com/zachary-salyers1/customer-management-app/viewmodel"

	"github.com/gin-gonic/gin"
)

func CreateTaskController(router *gin.Engine, states *viewmodel.Manager) {
	router.POST("/task", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		CreateTask(c, states)
	})
}

func CreateTask(c *gin.Context, states *viewmodel.Manager) {
	userID := c.MustGet("userId").(string)
	var request dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	state := states.For(userID)
	task, err := state.CreateTask(c.Request.Context(), model.Task{
		ProjectID:   request.ProjectID,
		Name:        request.Name,
		Description: request.Description,
		Notes:       request.Notes,
		Priority:    request.Priority,
	})
	if err != nil {
		if errors.Is(err, viewmodel.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Task created successfully",
		"task":    task,
	})
}
