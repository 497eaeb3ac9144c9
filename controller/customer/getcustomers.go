package customer

import (
	"net/http"

	"github.com/zachary-salyers1/customer-management-app/middleware"
	"github.com/zachary-salyers1/customer-management-app/viewmodel"

	"github.com/gin-gonic/gin"
)

func GetCustomersController(router *gin.Engine, states *viewmodel.Manager) {
	router.GET("/customers", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		GetCustomers(c, states)
	})
}

// GetCustomers rebuilds the tree from the store and returns it. A failed
// rebuild keeps the previous tree but still reports the error to the caller.
func GetCustomers(c *gin.Context, states *viewmodel.Manager) {
	userID := c.MustGet("userId").(string)
	state := states.For(userID)

	if err := state.Rebuild(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"customers": state.Snapshot()})
}
