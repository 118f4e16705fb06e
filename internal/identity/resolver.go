package identity

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Fallbacks used whenever resolution fails. Failures are never surfaced to
// the player.
const (
	AnonymousName    = "Anonymous"
	DefaultCommunity = "general"
)

// Player identifies the current player context.
type Player struct {
	ID   string
	Name string
}

// Resolver maps an opaque player token to a player identity.
type Resolver interface {
	Resolve(ctx context.Context, token string) (Player, error)
}

// CommunityResolver maps the player context to the community id used to
// namespace the leaderboard and seed question selection.
type CommunityResolver interface {
	CommunityID(ctx context.Context, token string) (string, error)
}

// Claims carried by the player token.
type Claims struct {
	Username  string `json:"username"`
	Community string `json:"community,omitempty"`
	jwt.RegisteredClaims
}

// JWTResolver verifies signed player tokens and extracts identity and
// community claims. It implements both Resolver and CommunityResolver.
type JWTResolver struct {
	secret []byte
}

func NewJWTResolver(secret []byte) *JWTResolver {
	return &JWTResolver{secret: secret}
}

func (r *JWTResolver) parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return r.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

func (r *JWTResolver) Resolve(ctx context.Context, token string) (Player, error) {
	claims, err := r.parse(token)
	if err != nil {
		return Player{}, err
	}
	id := claims.Subject
	if id == "" {
		id = claims.Username
	}
	if id == "" {
		return Player{}, fmt.Errorf("token carries no subject")
	}
	return Player{ID: id, Name: claims.Username}, nil
}

func (r *JWTResolver) CommunityID(ctx context.Context, token string) (string, error) {
	claims, err := r.parse(token)
	if err != nil {
		return "", err
	}
	if claims.Community == "" {
		return "", fmt.Errorf("token carries no community claim")
	}
	return claims.Community, nil
}

// GuestResolver hands out anonymous per-connection identities. Used when no
// JWT secret is configured.
type GuestResolver struct{}

func (GuestResolver) Resolve(ctx context.Context, token string) (Player, error) {
	return Player{ID: "guest-" + uuid.NewString(), Name: AnonymousName}, nil
}

func (GuestResolver) CommunityID(ctx context.Context, token string) (string, error) {
	return DefaultCommunity, nil
}

// ResolveOr resolves the player, falling back to an anonymous guest identity
// when the lookup fails.
func ResolveOr(ctx context.Context, r Resolver, token string) Player {
	p, err := r.Resolve(ctx, token)
	if err != nil {
		p, _ = GuestResolver{}.Resolve(ctx, token)
	}
	return p
}

// CommunityOr resolves the community id, falling back to the default.
func CommunityOr(ctx context.Context, r CommunityResolver, token string) string {
	id, err := r.CommunityID(ctx, token)
	if err != nil || id == "" {
		return DefaultCommunity
	}
	return id
}
