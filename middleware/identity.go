package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/abhijeetsoni22/store-api/auth"
)

const (
	identityKey       = "identity"
	sessionCookieName = "cart_session"
	sessionCookieAge  = 30 * 24 * 60 * 60 // seconds
)

// Identity is the single key a cart is resolved against: an authenticated
// user or an anonymous session, never both.
type Identity struct {
	UserID     *uint
	SessionKey string
}

// Identify resolves the caller's identity without requiring authentication.
// A valid bearer token wins; otherwise the session cookie is used, and a new
// session key is minted (and set as a cookie) when none exists.
func Identify(c *gin.Context) {
	if token := bearerToken(c); token != "" {
		if claims, err := auth.ValidateToken(token, auth.TokenTypeAccess); err == nil {
			userID := claims.UserID
			c.Set(identityKey, Identity{UserID: &userID})
			c.Next()
			return
		}
	}

	key, err := c.Cookie(sessionCookieName)
	if err != nil || key == "" {
		key = uuid.NewString()
		c.SetCookie(sessionCookieName, key, sessionCookieAge, "/", "", false, true)
	}
	c.Set(identityKey, Identity{SessionKey: key})
	c.Next()
}

// IdentityFrom returns the identity resolved by Identify or ValidateToken.
func IdentityFrom(c *gin.Context) Identity {
	if v, ok := c.Get(identityKey); ok {
		return v.(Identity)
	}
	if v, ok := c.Get("user_id"); ok {
		userID := v.(uint)
		return Identity{UserID: &userID}
	}
	return Identity{}
}
