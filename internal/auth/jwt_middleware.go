package auth

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/report_admin/internal/models"
	"github.com/report_admin/pkg/utils"
)

const (
	// TokenTTL 是签发的Token有效期
	TokenTTL = 24 * time.Hour
	issuer   = "report_admin"
)

// Claims 定义了JWT中存储的自定义声明。
// JTI (ID) 会通过内嵌的 jwt.RegisteredClaims 提供
type Claims struct {
	OperatorID  string `json:"operator_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

// gin 上下文中使用的键
const (
	ctxClaims = "claims"
	ctxJTI    = "jti"
	ctxExp    = "exp"
)

var (
	// tokenDenylist 存储已登出Token的JTI及其原始过期时间。
	// 内存列表，服务重启会丢失。
	tokenDenylist = make(map[string]time.Time)
	denylistMutex = &sync.RWMutex{}
)

// AddToDenylist 将JTI添加到拒绝列表，并清理已过期的条目。
func AddToDenylist(jti string, expiresAt time.Time) {
	denylistMutex.Lock()
	defer denylistMutex.Unlock()

	tokenDenylist[jti] = expiresAt

	now := time.Now()
	for id, exp := range tokenDenylist {
		if now.After(exp) {
			delete(tokenDenylist, id)
		}
	}
}

// IsTokenDenylisted 检查JTI是否在拒绝列表中且尚未过期。
func IsTokenDenylisted(jti string) bool {
	denylistMutex.RLock()
	defer denylistMutex.RUnlock()

	expTime, found := tokenDenylist[jti]
	if !found {
		return false
	}
	return time.Now().Before(expTime)
}

// IssueToken 为管理员签发一个 HS256 Token，返回Token字符串及其过期时间
func IssueToken(secret string, operator *models.Operator, now time.Time) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, errors.New("jwt secret is not configured")
	}
	expiresAt := now.Add(TokenTTL)
	claims := &Claims{
		OperatorID:  operator.ID,
		Username:    operator.Username,
		DisplayName: operator.DisplayName,
		Email:       operator.Email,
		Role:        operator.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   operator.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{"admin"},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseToken 校验Token签名与有效期并返回声明
func ParseToken(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(issuer))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}
	return claims, nil
}

// JWTMiddleware 是一个Gin中间件，用于验证JWT。
// 它从 Authorization 请求头中提取 Bearer Token。
func JWTMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondUnauthorizedError(c, "Authorization header is required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.RespondUnauthorizedError(c, "Authorization header format must be Bearer {token}")
			return
		}

		claims, err := ParseToken(secret, parts[1])
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenMalformed):
				utils.RespondUnauthorizedError(c, "Token is malformed")
			case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwt.ErrTokenNotValidYet):
				utils.RespondUnauthorizedError(c, "Token is expired or not valid yet")
			case errors.Is(err, jwt.ErrTokenSignatureInvalid):
				utils.RespondUnauthorizedError(c, "Invalid token signature")
			default:
				utils.RespondUnauthorizedError(c, "Invalid token")
			}
			return
		}

		if claims.ID == "" {
			utils.RespondUnauthorizedError(c, "Token missing JTI (JWT ID)")
			return
		}
		if IsTokenDenylisted(claims.ID) {
			utils.RespondUnauthorizedError(c, "Token has been invalidated (logged out)")
			return
		}

		c.Set(ctxClaims, claims)
		c.Set(ctxJTI, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(ctxExp, claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

// ClaimsFromContext 返回中间件存入的声明
func ClaimsFromContext(c *gin.Context) (*Claims, bool) {
	v, ok := c.Get(ctxClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok && claims != nil
}

// ActorFromContext 将当前会话转换为服务层使用的 Actor
func ActorFromContext(c *gin.Context) (models.Actor, bool) {
	claims, ok := ClaimsFromContext(c)
	if !ok {
		return models.Actor{}, false
	}
	return models.Actor{
		OperatorID:  claims.OperatorID,
		Username:    claims.Username,
		DisplayName: claims.DisplayName,
		Email:       claims.Email,
	}, true
}
