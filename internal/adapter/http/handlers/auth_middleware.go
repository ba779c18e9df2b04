package handlers

import (
	"log"
	"net/http"
	"strings"

	"konveksi_checkout/internal/domain/entities"
	"konveksi_checkout/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const principalContextKey = "checkout.principal"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)

// RequireShopper verifies the bearer token against the storefront signing
// secret (HS256) and reads the shopper identity from its subject. Expired,
// unsigned and foreign-signed tokens are rejected before any local state is
// read.
func RequireShopper(secret []byte) gin.HandlerFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	keyFunc := func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}
	return func(c *gin.Context) {
		scheme, token, ok := strings.Cut(strings.TrimSpace(c.GetHeader("Authorization")), " ")
		token = strings.TrimSpace(token)
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" || len(secret) == 0 {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		claims := jwt.MapClaims{}
		parsed, err := parser.ParseWithClaims(token, claims, keyFunc)
		if err != nil || !parsed.Valid {
			log.Printf("[checkout][auth] token rejected path=%s err=%v", c.FullPath(), err)
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		subject, err := claims.GetSubject()
		if err != nil || strings.TrimSpace(subject) == "" {
			log.Printf("[checkout][auth] token without subject path=%s", c.FullPath())
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(principalContextKey, entities.Principal{Subject: subject, BearerToken: token})
		c.Next()
	}
}

func principalFrom(c *gin.Context) (entities.Principal, bool) {
	v, ok := c.Get(principalContextKey)
	if !ok {
		return entities.Principal{}, false
	}
	p, ok := v.(entities.Principal)
	return p, ok && p.Subject != ""
}

// mustPrincipal writes 401 and returns false when the route was mounted
// without RequireShopper.
func mustPrincipal(c *gin.Context) (entities.Principal, bool) {
	p, ok := principalFrom(c)
	if !ok {
		c.JSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
	}
	return p, ok
}
