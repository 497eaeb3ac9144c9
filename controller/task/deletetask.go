package task

import (
	"errors"
	"net/http"

	"github.com/zachary-salyers1/customer-management-app/middleware"
	"github.com/zachary-salyers1/customer-management-app/viewmodel"

	"github.com/gin-gonic/gin"
)

func DeleteTaskController(router *gin.Engine, states *viewmodel.Manager) {
	router.DELETE("/task/:id", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		DeleteTask(c, states)
	})
}

func DeleteTask(c *gin.Context, states *viewmodel.Manager) {
	userID := c.MustGet("userId").(string)
	taskID := c.Param("id")

	state := states.For(userID)
	if err := state.DeleteTask(c.Request.Context(), taskID); err != nil {
		if errors.Is(err, viewmodel.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
