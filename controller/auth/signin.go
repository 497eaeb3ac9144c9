package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/zachary-salyers1/customer-management-app/dto"
	"github.com/zachary-salyers1/customer-management-app/model"
	"github.com/zachary-salyers1/customer-management-app/services"

	"cloud.google.com/go/firestore"
	fbauth "firebase.google.com/go/auth"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func SignInController(router *gin.Engine, authClient *fbauth.Client, firestoreClient *firestore.Client) {
	router.POST("/auth/signin", func(c *gin.Context) {
		SignIn(c, authClient, firestoreClient)
	})
}

// SignIn exchanges a Firebase ID token (from the client's sign-in popup) for
// this API's own access/refresh token pair, provisioning the user record on
// first sign-in.
func SignIn(c *gin.Context, authClient *fbauth.Client, firestoreClient *firestore.Client) {
	var request dto.SignInRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	ctx := context.Background()
	idToken, err := authClient.VerifyIDToken(ctx, request.IDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid ID token"})
		return
	}

	var user model.User
	docSnap, err := firestoreClient.Collection("users").Doc(idToken.UID).Get(ctx)
	switch {
	case err == nil:
		if err := docSnap.DataTo(&user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse user data"})
			return
		}
	case status.Code(err) == codes.NotFound:
		user = model.User{
			UserID:    idToken.UID,
			Name:      stringClaim(idToken.Claims, "name"),
			Email:     stringClaim(idToken.Claims, "email"),
			Profile:   stringClaim(idToken.Claims, "picture"),
			CreatedAt: time.Now(),
		}
		if _, err := firestoreClient.Collection("users").Doc(user.UserID).Set(ctx, user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}

	accessToken, err := services.CreateAccessToken(user.UserID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create access token"})
		return
	}

	refreshToken, err := services.CreateRefreshToken(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create refresh token"})
		return
	}

	hashedRefreshToken, err := services.HashRefreshToken(refreshToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash refresh token"})
		return
	}

	now := time.Now()
	expiresAt := now.Add(7 * 24 * time.Hour).Unix()
	issuedAt := now.Unix()

	refreshTokenData := model.TokenResponse{
		UserID:       user.UserID,
		RefreshToken: hashedRefreshToken,
		CreatedAt:    issuedAt,
		Revoked:      false,
		ExpiresIn:    expiresAt - issuedAt,
	}

	if _, err := firestoreClient.Collection("refreshTokens").Doc(user.UserID).Set(ctx, refreshTokenData); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store refresh token", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login Successfully",
		"user": dto.UserResponse{
			UserID:  user.UserID,
			Name:    user.Name,
			Email:   user.Email,
			Profile: user.Profile,
		},
		"token": gin.H{
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
			"expiresIn":    expiresAt - issuedAt,
		},
	})
}

func stringClaim(claims map[string]interface{}, key string) string {
	if value, ok := claims[key].(string); ok {
		return value
	}
	return ""
}
