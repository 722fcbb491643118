package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	errs "github.com/muratfirtina/teklif-sistemi-sub002/errors"
	"github.com/muratfirtina/teklif-sistemi-sub002/models"
	"github.com/muratfirtina/teklif-sistemi-sub002/server/response"
	"github.com/muratfirtina/teklif-sistemi-sub002/services/jwt"
	"github.com/pkg/errors"
)

// flashCookie carries the access-denied message across the redirect so
// the next page render can show it.
const flashCookie = "flash"

func (s *Server) Authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken := getTokenFromHeader(c)
		if accessToken == "" {
			respondAndAbort(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}

		secret := s.Config.JWTSecret
		accessClaims, err := jwt.ValidateAndGetClaims(accessToken, secret)
		if err != nil {
			respondAndAbort(c, "", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			return
		}

		userIDValue := accessClaims["id"]
		var userID uint
		switch v := userIDValue.(type) {
		case float64:
			userID = uint(v)
		default:
			respondAndAbort(c, "", http.StatusBadRequest, nil, errs.New("Invalid userID format", http.StatusBadRequest))
			return
		}

		user, err := s.AuthRepository.FindUserByID(userID)
		if err != nil {
			switch {
			case errors.Is(err, errs.InActiveUserError):
				respondAndAbort(c, "inactive user", http.StatusUnauthorized, nil, errs.New(err.Error(), http.StatusUnauthorized))
			default:
				respondAndAbort(c, "user not found", http.StatusUnauthorized, nil, errs.New("Unauthorized", http.StatusUnauthorized))
			}
			return
		}

		c.Set("user", user)
		c.Set("userID", userID)
		c.Set("userRole", user.Role.Name)
		c.Next()
	}
}

// RequirePageAccess enforces the role allowlist for one page. Denied
// requests are redirected to the role's home page with a flash message;
// the guard assumes Authorize already ran and placed the role in the
// context.
func (s *Server) RequirePageAccess(page string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("userRole")

		decision := s.Policy.Check(role, page)
		if decision.Allowed {
			c.Next()
			return
		}

		c.SetCookie(flashCookie, decision.Message, 10, "/", "", false, false)
		c.Redirect(http.StatusSeeOther, decision.RedirectTo)
		c.Abort()
	}
}

func getTokenFromHeader(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

func respondAndAbort(c *gin.Context, message string, status int, data interface{}, e *errs.AppError) {
	response.JSON(c, message, status, data, e)
	c.Abort()
}

// currentUserID returns the authenticated user's id placed in the
// context by Authorize.
func currentUserID(c *gin.Context) uint {
	return c.GetUint("userID")
}

// currentUser returns the authenticated user loaded by Authorize.
func currentUser(c *gin.Context) *models.User {
	if v, ok := c.Get("user"); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
