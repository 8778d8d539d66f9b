package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Papéis de acesso dos usuários do CRM
const (
	RoleAdmin      = 1
	RoleManager    = 2
	RoleInfluencer = 3
)

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	RoleID       int       `json:"role_id"`
	InfluencerID *string   `json:"influencer_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Claims são as claims JWT emitidas no login. UserInfluencerID vincula o
// usuário ao perfil de criador que ele pode atualizar sem privilégio elevado.
type Claims struct {
	UserID           int
	UserName         string
	UserEmail        string
	UserActive       bool
	UserRoleID       int
	UserInfluencerID *string
	jwt.RegisteredClaims
}

// OwnsInfluencer indica se o usuário autenticado é o dono do perfil informado
func (c *Claims) OwnsInfluencer(influencerID string) bool {
	return c.UserInfluencerID != nil && *c.UserInfluencerID == influencerID
}

// HasElevatedRole indica se o usuário pode atualizar perfis de terceiros
func (c *Claims) HasElevatedRole() bool {
	return c.UserRoleID == RoleAdmin || c.UserRoleID == RoleManager
}
