// test/fakeapi/middleware.go
package fakeapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	logger "github.com/pcbinspect/client/logging"
	"github.com/pcbinspect/client/model"
)

const sessionCookie = "sessionid"

type Claims struct {
	UserID    int        `json:"user_id"`
	CompanyID int        `json:"company_id"`
	Role      model.Role `json:"role"`
	jwt.RegisteredClaims
}

// RequestLogger logs every request the fake backend serves.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		if len(c.Errors) > 0 {
			for _, e := range c.Errors.Errors() {
				logger.Error("Request error",
					zap.String("path", path),
					zap.String("query", query),
					zap.String("error", e),
				)
			}
			return
		}
		logger.Debug("Request processed",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("requestID", c.GetHeader("X-Request-ID")),
		)
	}
}

// instrument counts calls and applies Fail and Hold hooks.
func (s *Server) instrument() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Request.Method + " " + strings.TrimPrefix(c.Request.URL.Path, "/api")

		s.mu.Lock()
		s.calls[key]++
		h := s.hooks[key]
		var hold chan struct{}
		var failStatus int
		var failBody gin.H
		if h != nil {
			hold, failStatus, failBody = h.hold, h.failStatus, h.failBody
		}
		s.mu.Unlock()

		if hold != nil {
			select {
			case <-hold:
			case <-c.Request.Context().Done():
				c.Abort()
				return
			}
		}
		if failStatus != 0 {
			c.AbortWithStatusJSON(failStatus, failBody)
			return
		}
		c.Next()
	}
}

func (s *Server) issueSession(c *gin.Context, u *user) error {
	claims := Claims{
		UserID:    u.ID,
		CompanyID: u.CompanyID,
		Role:      u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return err
	}
	http.SetCookie(c.Writer, &http.Cookie{Name: sessionCookie, Value: token, Path: "/", HttpOnly: true})
	return nil
}

// SessionAuth reads the session cookie when present. Handlers decide whether it is required.
func (s *Server) SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(sessionCookie)
		if err != nil || raw == "" {
			c.Next()
			return
		}

		token, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.jwtSecret, nil
		})
		if err != nil || !token.Valid {
			logger.Debug("Ignoring invalid session cookie", zap.Error(err))
			c.Next()
			return
		}

		if claims, ok := token.Claims.(*Claims); ok {
			c.Set("userID", claims.UserID)
			c.Set("companyID", claims.CompanyID)
			c.Set("role", claims.Role)
		}
		c.Next()
	}
}

// RequireSession answers 401 without a valid session cookie.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get("userID"); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "session expired"})
			return
		}
		c.Next()
	}
}

// RequireRole answers 403 unless the session role is one of roles.
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "permission denied"})
	}
}

func sessionUserID(c *gin.Context) int {
	v, _ := c.Get("userID")
	id, _ := v.(int)
	return id
}

func sessionCompanyID(c *gin.Context) int {
	v, _ := c.Get("companyID")
	id, _ := v.(int)
	return id
}

// effectiveRole prefers the session role and falls back to the role the client sent.
func effectiveRole(c *gin.Context, requestRole model.Role) model.Role {
	if v, ok := c.Get("role"); ok {
		if r, ok := v.(model.Role); ok && r != "" {
			return r
		}
	}
	return requestRole
}
