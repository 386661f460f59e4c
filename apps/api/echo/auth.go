package echoapi

import (
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/trezcool/escolar/core"
	"github.com/trezcool/escolar/core/user"
)

const contextTokenKey = "userToken"

func newJWTConfig(conf *core.Config) middleware.JWTConfig {
	return middleware.JWTConfig{
		SigningKey:    []byte(conf.Sandbox.SecretKey),
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    contextTokenKey,
		Claims:        new(Claims),
	}
}

// Claims represents the session claims transmitted via a JWT.
type Claims struct {
	jwt.StandardClaims
	UserID int    `json:"user_id"`
	Group  string `json:"group"`
	Name   string `json:"name,omitempty"`
}

func GetUserClaims(conf *core.Config, id user.Identity) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    conf.AppName,
			Subject:   strconv.Itoa(id.ID),
			ExpiresAt: now.Add(conf.Sandbox.JWTExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		UserID: id.ID,
		Group:  id.Group,
		Name:   id.FullName,
	}
}

// GenerateToken generates a signed JWT token string representing the user Claims.
func GenerateToken(conf *core.Config, claims *Claims) (string, error) {
	jwtConf := newJWTConfig(conf)
	method := jwt.GetSigningMethod(jwtConf.SigningMethod)
	token := jwt.NewWithClaims(method, claims)

	ss, err := token.SignedString(jwtConf.SigningKey)
	if err != nil {
		return "", errors.New("signing token")
	}
	return ss, nil
}

// getContextSession returns the identity of the request's token holder.
func getContextSession(ctx echo.Context) (user.Identity, error) {
	if token, ok := ctx.Get(contextTokenKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return user.Identity{
				Token:    token.Raw,
				Group:    claims.Group,
				FullName: claims.Name,
				ID:       claims.UserID,
			}, nil
		}
	}
	return user.Identity{}, errUnauthorized
}
