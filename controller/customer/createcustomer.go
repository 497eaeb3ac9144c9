package customer

import (
	"net/http"

	"github.com/zachary-salyers1/customer-management-app/dto"
	"github.com/zachary-salyers1/customer-management-app/middleware"
	"github.com/zachary-salyers1/customer-management-app/model"
	"github.com/zachary-salyers1/customer-management-app/viewmodel"

	"github.com/gin-gonic/gin"
)

func CreateCustomerController(router *gin.Engine, states *viewmodel.Manager) {
	router.POST("/customer", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		CreateCustomer(c, states)
	})
}

func CreateCustomer(c *gin.Context, states *viewmodel.Manager) {
	userID := c.MustGet("userId").(string)
	var request dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	state := states.For(userID)
	customer, err := state.CreateCustomer(c.Request.Context(), model.Customer{
		Name:         request.Name,
		CompanyName:  request.CompanyName,
		Email:        request.Email,
		Phone:        request.Phone,
		JobTitle:     request.JobTitle,
		LeadType:     request.LeadType,
		CustomFields: request.CustomFields,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Customer created successfully",
		"customer": customer,
	})
}
