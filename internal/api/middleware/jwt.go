package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/daniilsm/sickday-go/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID uint     `json:"user_id"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

var (
	jwtKey     []byte
	refreshKey []byte
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

func Init() {
	jwtKey = []byte(config.JwtSecret)
	refreshKey = []byte(config.RefreshSecret)
}

func signToken(userID uint, roles []string, ttl time.Duration, key []byte) (string, error) {
	claims := &Claims{
		UserID: userID,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    config.Issuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

// GenerateTokenPair issues the short-lived access token and the long-lived
// refresh token, signed with separate secrets.
var GenerateTokenPair = func(userID uint, roles []string) (string, string, error) {
	access, err := signToken(userID, roles, AccessTokenTTL, jwtKey)
	if err != nil {
		return "", "", err
	}
	refresh, err := signToken(userID, roles, RefreshTokenTTL, refreshKey)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func parseWithKey(tokenStr string, key []byte) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

func ParseToken(tokenStr string) (*Claims, error) {
	return parseWithKey(tokenStr, jwtKey)
}

func ParseRefreshToken(tokenStr string) (*Claims, error) {
	return parseWithKey(tokenStr, refreshKey)
}

// JWTAuthMiddleware accepts the credential from the Authorization header or
// the accessToken cookie and stores the decoded claims in the context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
				return
			}
			tokenStr = parts[1]
		} else {
			cookie, err := c.Cookie("accessToken")
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization required (header or cookie)"})
				return
			}
			tokenStr = cookie
		}

		claims, err := ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token: " + err.Error()})
			return
		}

		c.Set("claims", claims)
		c.Next()
	}
}

func GetClaims(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get("claims")
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}
