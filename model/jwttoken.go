package model

import "github.com/golang-jwt/jwt/v5"

type TokenResponse struct {
	UserID       string `firestore:"userId" json:"userId"`
	RefreshToken string `firestore:"refreshToken" json:"refreshToken"`
	CreatedAt    int64  `firestore:"createdAt" json:"createdAt"` // creation time in seconds
	Revoked      bool   `firestore:"revoked" json:"revoked"`     // whether the token is revoked
	ExpiresIn    int64  `firestore:"expiresIn" json:"expiresIn"` // expiration in seconds
}

type AccessClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type AccessRefresh struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}
