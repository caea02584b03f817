package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"members-only/config"
	"members-only/models"
	"members-only/services"
)

// SessionCookie is the name of the cookie carrying the session token. The
// token itself is opaque to handlers; they only ever see the resolved User.
const SessionCookie = "session"

const currentUserKey = "currentUser"

type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// CurrentUser resolves the session cookie into the current identity and
// stores it in the request context. The user is re-loaded from the store on
// every request so membership upgrades take effect immediately. Requests
// without a valid session simply proceed anonymously.
func CurrentUser(cfg config.Config, authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookie)
		if err != nil || tokenString == "" {
			c.Next()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.SessionSecret), nil
		})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		user, err := authService.GetUserByID(claims.UserID)
		if err != nil {
			c.Next()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// GetCurrentUser returns the User bound to this request, or nil.
func GetCurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil
	}

	user, ok := value.(*models.User)
	if !ok {
		return nil
	}

	return user
}

// RequireAuth redirects anonymous requests to the log-in page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetCurrentUser(c) == nil {
			c.Redirect(http.StatusFound, "/log-in")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAnonymous sends already-authenticated users back to the board.
func RequireAnonymous() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetCurrentUser(c) != nil {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdmin redirects non-admins to the board. Applied to both the
// confirmation page and the destructive POST.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetCurrentUser(c)
		if user == nil || !user.IsAdmin {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Next()
	}
}
