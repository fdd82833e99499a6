package model

import "github.com/golang-jwt/jwt/v5"

type TokenResponse struct {
	UserID       string `firestore:"userid" json:"userId"`
	RefreshToken string `firestore:"refreshtoken" json:"refreshToken"`
	CreatedAt    int64  `firestore:"createdat" json:"createdAt"` // creation time in seconds
	Revoked      bool   `firestore:"revoked" json:"revoked"`
	ExpiresIn    int64  `firestore:"expiresin" json:"expiresIn"` // expiration in seconds
}

type AccessClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type RefreshClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}
