package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/studiva/studiva-backend/internal/apperror"
	"github.com/studiva/studiva-backend/internal/dto"
	"github.com/studiva/studiva-backend/internal/model"
	"github.com/studiva/studiva-backend/internal/repository"
)

// contextUserKey is where Identity stores the resolved *model.User.
const contextUserKey = "currentUser"

// Identity resolves the caller from the X-User-ID header set by the
// upstream gateway and loads the directory record (id, nickname, role).
// Credential verification itself lives outside this service.
func Identity(userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.GetHeader("X-User-ID")
		if idStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing X-User-ID header"})
			return
		}
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid X-User-ID header"})
			return
		}
		user, err := userRepo.FindByID(uint(id))
		if err != nil {
			log.Warn().Err(err).Str("userID", idStr).Msg("Identity: unknown user")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "unknown user"})
			return
		}
		c.Set(contextUserKey, user)
		c.Next()
	}
}

// RequireAdmin guards routes that expose other users' aggregates.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin() {
			err := apperror.Forbiddenf("admin role required")
			c.AbortWithStatusJSON(apperror.HTTPStatus(err), dto.ErrorResponse{Error: err.Error()})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the identity resolved by the Identity middleware,
// or nil when the route is not behind it.
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*model.User)
	return user
}
