// middlewares/identity_middleware.go
package middlewares

import (
	"strings"

	"github.com/baabaablacksheep2102/Spring-boot-nm-fitness-tracker/services"

	"github.com/gin-gonic/gin"
)

// Identity resolves a Bearer token into the request context. It never
// aborts: no route currently requires a session, the userId path
// parameter alone selects whose data is touched.
func Identity(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if strings.HasPrefix(h, "Bearer ") {
			if id, ok := tokens.UserID(strings.TrimPrefix(h, "Bearer ")); ok {
				c.Set("userID", id)
			}
		}
		c.Next()
	}
}
