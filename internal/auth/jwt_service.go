package auth

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/Loccar-Locadora/Loccar-Auth-API/internal/model"
)

const (
	// TokenExpiry is the lifetime of issued bearer tokens.
	TokenExpiry = time.Hour
	// DefaultRoleClaim is substituted when a user holds no roles, so every
	// issued token carries at least one role claim.
	DefaultRoleClaim = "CLIENT_USER"
)

// RoleList serializes as a bare string when it holds a single role and as an
// array otherwise, matching how repeated claims of one type collapse.
type RoleList []string

// MarshalJSON implements json.Marshaler.
func (r RoleList) MarshalJSON() ([]byte, error) {
	if len(r) == 1 {
		return json.Marshal(r[0])
	}
	return json.Marshal([]string(r))
}

// UnmarshalJSON implements json.Unmarshaler, accepting both forms.
func (r *RoleList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*r = RoleList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*r = RoleList(many)
	return nil
}

// Claims represents the JWT claim set issued at login.
type Claims struct {
	Name string   `json:"name"`
	ID   string   `json:"id"`
	Role RoleList `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed bearer tokens.
type TokenService struct {
	secret   []byte
	issuer   string
	audience string
}

// NewTokenService creates a token service signing with the given symmetric
// secret and stamping the configured issuer and audience.
func NewTokenService(secret, issuer, audience string) *TokenService {
	return &TokenService{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
	}
}

// Generate issues an HS256 token for the user: name, string-encoded id and
// one role claim per held role (or the CLIENT_USER sentinel when none).
func (s *TokenService) Generate(user *model.User) (string, error) {
	roles := make(RoleList, 0, len(user.Roles))
	for _, role := range user.Roles {
		roles = append(roles, role.Name)
	}
	if len(roles) == 0 {
		roles = RoleList{DefaultRoleClaim}
	}

	claims := &Claims{
		Name: user.Username,
		ID:   strconv.FormatUint(uint64(user.ID), 10),
		Role: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse validates a token string and returns the claims.
func (s *TokenService) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
