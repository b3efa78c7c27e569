package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookieName is the cookie the session credential travels in.
const CookieName = "token"

const emailKey = "auth.email"

// RequireToken gates a route on a valid session cookie. On success the
// verified email is stored in the request context for the handler.
func RequireToken(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}
		email, err := svc.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}
		c.Set(emailKey, email)
		c.Next()
	}
}

// EmailFromContext returns the email RequireToken verified for this request.
func EmailFromContext(c *gin.Context) string {
	email, _ := c.Get(emailKey)
	s, _ := email.(string)
	return s
}
