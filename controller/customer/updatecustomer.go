package customer

import (
	"errors"
	"net/http"

	"github.com/zachary-salyers1/customer-management-app/dto"
	"github.com/zachary-salyers1/customer-management-app/middleware"
	"github.com/zachary-salyers1/customer-management-app/viewmodel"

	"github.com/gin-gonic/gin"
)

func UpdateCustomerController(router *gin.Engine, states *viewmodel.Manager) {
	router.PUT("/customer/:id", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		UpdateCustomer(c, states)
	})
}

func UpdateCustomer(c *gin.Context, states *viewmodel.Manager) {
	userID := c.MustGet("userId").(string)
	customerID := c.Param("id")

	var request dto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	state := states.For(userID)
	customer, err := state.UpdateCustomer(c.Request.Context(), customerID, viewmodel.CustomerPatch{
		Name:         request.Name,
		CompanyName:  request.CompanyName,
		Email:        request.Email,
		Phone:        request.Phone,
		JobTitle:     request.JobTitle,
		LeadType:     request.LeadType,
		CustomFields: request.CustomFields,
	})
	if err != nil {
		if errors.Is(err, viewmodel.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Customer updated successfully",
		"customer": customer,
	})
}
