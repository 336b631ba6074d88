package echoapi

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/vruksha/portal/core"
	"github.com/vruksha/portal/core/portal"
	"github.com/vruksha/portal/core/teacher"
)

const tokenContextKey = "teacherToken"

// Claims represents the authorization claims transmitted via a JWT.
// The subject mirrors the store's active session; a token is only honored
// while that session is still active.
type Claims struct {
	jwt.StandardClaims
	Name             string `json:"name,omitempty"`
	Email            string `json:"email,omitempty"`
	OrganizationCode string `json:"organization_code,omitempty"`
}

func newJWTConfig(conf *core.Config) middleware.JWTConfig {
	return middleware.JWTConfig{
		SigningKey:    []byte(conf.SecretKey),
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    tokenContextKey,
		Claims:        new(Claims),
	}
}

// GetTeacherClaims builds Claims for a freshly logged-in teacher.
func GetTeacherClaims(conf *core.Config, t teacher.Teacher) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    conf.AppName,
			Subject:   t.ID,
			ExpiresAt: now.Add(conf.Server.JWTExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		Name:             t.Name,
		Email:            t.Email,
		OrganizationCode: t.OrganizationCode,
	}
}

// GenerateToken generates a signed JWT token string representing the Claims.
func GenerateToken(conf *core.Config, claims *Claims) (string, error) {
	method := jwt.GetSigningMethod(middleware.AlgorithmHS256)
	token := jwt.NewWithClaims(method, claims)

	ss, err := token.SignedString([]byte(conf.SecretKey))
	if err != nil {
		return "", errors.Wrap(err, "signing token")
	}
	return ss, nil
}

func getContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(tokenContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, errUnauthorized
}

// sessionMiddleware rejects tokens whose subject no longer matches the
// store's active session; logging out invalidates outstanding tokens.
func sessionMiddleware(store *portal.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := getContextClaims(ctx)
			if err != nil {
				return err
			}
			current, ok := store.Current()
			if !ok || current.ID != claims.Subject {
				return errSessionExpired
			}
			return next(ctx)
		}
	}
}
