package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abhijeetsoni22/store-api/auth"
	"github.com/abhijeetsoni22/store-api/models"
)

type RegisterInput struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Password2 string `json:"password2" binding:"required"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshInput struct {
	Refresh string `json:"refresh" binding:"required"`
}

// serializeUser exposes only public user fields.
func serializeUser(u models.User) gin.H {
	return gin.H{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
	}
}

// POST /api/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Password != input.Password2 {
			c.JSON(http.StatusBadRequest, gin.H{"password2": []string{"Passwords do not match."}})
			return
		}

		var count int64
		if err := db.Model(&models.User{}).Where("username = ?", input.Username).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"username": []string{"A user with that username already exists."}})
			return
		}
		if err := db.Model(&models.User{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"email": []string{"A user with that email already exists."}})
			return
		}

		hash, err := auth.HashPassword(input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		user := models.User{
			Username: input.Username,
			Email:    input.Email,
			Password: hash,
		}
		if err := db.Create(&user).Error; err != nil {
			// Lost a race against a concurrent registration with the
			// same username or email.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		tokens, err := auth.IssuePair(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "User created successfully",
			"user":    serializeUser(user),
			"tokens":  tokens,
		})
	}
}

// POST /api/login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
			return
		}

		var user models.User
		err := db.Where("username = ?", input.Username).First(&user).Error
		if err != nil || !auth.CheckPassword(user.Password, input.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		tokens, err := auth.IssuePair(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"user":    serializeUser(user),
			"tokens":  tokens,
		})
	}
}

// POST /api/token/refresh
func RefreshToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RefreshInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Refresh token is required"})
			return
		}

		claims, err := auth.ValidateToken(input.Refresh, auth.TokenTypeRefresh)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		access, err := auth.IssueAccess(claims.UserID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"access": access})
	}
}
