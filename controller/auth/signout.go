package auth

import (
	"context"
	"net/http"

	"github.com/zachary-salyers1/customer-management-app/middleware"
	"github.com/zachary-salyers1/customer-management-app/viewmodel"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
)

func SignOutController(router *gin.Engine, firestoreClient *firestore.Client, states *viewmodel.Manager) {
	router.POST("/auth/signout", middleware.AccessTokenMiddleware(), func(c *gin.Context) {
		SignOut(c, firestoreClient, states)
	})
}

// SignOut revokes the stored refresh token and discards the user's cached
// view-model state.
func SignOut(c *gin.Context, firestoreClient *firestore.Client, states *viewmodel.Manager) {
	userID := c.MustGet("userId").(string)

	ctx := context.Background()
	docRef := firestoreClient.Collection("refreshTokens").Doc(userID)
	if _, err := docRef.Update(ctx, []firestore.Update{
		{Path: "revoked", Value: true},
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke refresh token"})
		return
	}

	states.Drop(userID)

	c.JSON(http.StatusOK, gin.H{"message": "Signed out successfully"})
}
