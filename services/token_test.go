package services

import (
	"testing"

	"main/utils"

	"github.com/golang-jwt/jwt/v5"
)

func parseClaims(t *testing.T, tokenString string) jwt.MapClaims {
	t.Helper()

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(utils.JWTSecretKey), nil
	})
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("unexpected claims type")
	}
	return claims
}

func TestGenerateToken(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	utils.InitJWT()

	tokenString, err := GenerateToken("user-123")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims := parseClaims(t, tokenString)
	if claims["user_id"] != "user-123" {
		t.Fatalf("unexpected user_id claim: %v", claims["user_id"])
	}
	if claims["iss"] != "studyfocus" {
		t.Fatalf("unexpected issuer: %v", claims["iss"])
	}
	if _, isRefresh := claims["type"]; isRefresh {
		t.Fatal("access token carries a refresh type claim")
	}
}

func TestGenerateRefreshToken(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	utils.InitJWT()

	tokenString, err := GenerateRefreshToken("user-123")
	if err != nil {
		t.Fatalf("GenerateRefreshToken failed: %v", err)
	}

	claims := parseClaims(t, tokenString)
	if claims["type"] != "refresh" {
		t.Fatalf("expected refresh type claim, got %v", claims["type"])
	}
}
