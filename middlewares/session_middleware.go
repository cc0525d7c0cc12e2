package middlewares

import (
	"net/http"

	"github.com/AntonioTonhao/Node-02-Desafio/models"
	"github.com/AntonioTonhao/Node-02-Desafio/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UserKey is the context key under which SessionAuth stores the resolved
// user record.
const UserKey = "currentUser"

// SessionAuth resolves the sessionId cookie to a user row and aborts with
// 401 otherwise. A missing cookie, a malformed token, and a token matching
// no user all fail identically, and the store is never touched unless the
// cookie parses.
func SessionAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(utils.SessionCookieName)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		token, err := utils.ParseSessionToken(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var user models.User
		if err := db.WithContext(c.Request.Context()).
			Where("session_id = ?", token).
			First(&user).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}
