package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/JRGCaponde/peixaria-backend/pkg/enums"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	ActorKind enums.ActorKind
	ActorID   string
	Name      string
	Email     string
}

// AccessTokenClaims represents the typed JWT issued to clients.
type AccessTokenClaims struct {
	ActorKind enums.ActorKind `json:"actor_kind"`
	ActorID   string          `json:"actor_id"`
	Name      string          `json:"name,omitempty"`
	Email     string          `json:"email,omitempty"`
	jwt.RegisteredClaims
}
