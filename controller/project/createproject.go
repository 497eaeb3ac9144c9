package project

import (
	"errors"
	"net/http"

	"github.com/zachary-salyers1/customer-management-app/dto"
	"github.com/zachary-salyers1/customer-management-app/middleware"
	"github.com/zachary-salyers1/customer-management-app/model"
	"github.com/zachary-salyers1/customer-management-app/viewmodel"

	"github.com/gin-gonic/gin"
)

func CreateProjectController(router *gin.Engine, states *viewmodel.Manager) {
	router.POST("/project", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		CreateProject(c, states)
	})
}

func CreateProject(c *gin.Context, states *viewmodel.Manager) {
	userID := c.MustGet("userId").(string)
	var request dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	state := states.For(userID)
	project, err := state.CreateProject(c.Request.Context(), model.Project{
		CustomerID:  request.CustomerID,
		Name:        request.Name,
		Description: request.Description,
	})
	if err != nil {
		if errors.Is(err, viewmodel.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Project created successfully",
		"project": project,
	})
}
