package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/riadev/ria-server/utils"
)

// UserPhoneKey is the context key holding the caller's phone number.
const UserPhoneKey = "userPhone"

// UserPhoneMiddleware extracts the X-User-Phone header that namespaces
// every note operation. There is no per-user token; the header is the
// tenant key.
func UserPhoneMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		phone := c.GetHeader("X-User-Phone")
		if phone == "" {
			utils.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}
		c.Set(UserPhoneKey, phone)
		c.Next()
	}
}
