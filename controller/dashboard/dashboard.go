package dashboard

import (
	"net/http"

	"github.com/zachary-salyers1/customer-management-app/dto"
	"github.com/zachary-salyers1/customer-management-app/middleware"
	"github.com/zachary-salyers1/customer-management-app/model"
	"github.com/zachary-salyers1/customer-management-app/viewmodel"

	"github.com/gin-gonic/gin"
)

func DashboardController(router *gin.Engine, states *viewmodel.Manager) {
	router.GET("/dashboard", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		Dashboard(c, states)
	})
}

// Dashboard flattens every task in the tree, annotates it with its ancestors'
// names and splits the result into active and completed lists.
func Dashboard(c *gin.Context, states *viewmodel.Manager) {
	userID := c.MustGet("userId").(string)
	state := states.For(userID)

	response := dto.DashboardResponse{
		Active:    []dto.DashboardTask{},
		Completed: []dto.DashboardTask{},
	}
	for _, customer := range state.Snapshot() {
		for _, project := range customer.Projects {
			for _, task := range project.Tasks {
				entry := dto.DashboardTask{
					Task:         task,
					CustomerID:   customer.ID,
					CustomerName: customer.Name,
					ProjectName:  project.Name,
				}
				if task.Status == model.StatusCompleted {
					response.Completed = append(response.Completed, entry)
				} else {
					response.Active = append(response.Active, entry)
				}
			}
		}
	}

	c.JSON(http.StatusOK, response)
}
