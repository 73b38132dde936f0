package handlers

import (
	"net/http"
	"regexp"
	"time"

	"github.com/Meenakshi-Adapa/CraftHub/jwt"
	"github.com/Meenakshi-Adapa/CraftHub/models"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenLifetime = 24 * time.Hour

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func ValidatePassword(password string) bool {
	return len(password) >= 8 && len(password) <= 72
}

func registerAccount(c *gin.Context, db *gorm.DB, role string) {
	var registerReq struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Phone    string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&registerReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Please provide all required fields",
		})
		return
	}

	if !ValidateEmail(registerReq.Email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid email address",
		})
		return
	}
	if !ValidatePassword(registerReq.Password) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Password must be between 8 and 72 characters",
		})
		return
	}

	var existing models.User
	err := db.Where("email = ?", registerReq.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "User already exists",
		})
		return
	}
	if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(registerReq.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	user := models.User{
		Name:     registerReq.Name,
		Email:    registerReq.Email,
		Password: string(hashedPassword),
		Phone:    registerReq.Phone,
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	token, err := issueToken(db, &user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// RegisterHandler creates a buyer account and logs it in.
func RegisterHandler(c *gin.Context, db *gorm.DB) {
	registerAccount(c, db, models.RoleUser)
}

// RegisterArtistHandler creates a seller account and logs it in.
func RegisterArtistHandler(c *gin.Context, db *gorm.DB) {
	registerAccount(c, db, models.RoleArtist)
}

func issueToken(db *gorm.DB, user *models.User) (string, error) {
	expiration := time.Now().Add(tokenLifetime)
	token, err := jwt.GenerateToken(user.ID, user.Role, expiration.Unix())
	if err != nil {
		return "", err
	}

	loginToken := models.LoginToken{
		Token:          token,
		ExpirationTime: expiration,
		UserID:         user.ID,
		Role:           user.Role,
	}
	if err := db.Create(&loginToken).Error; err != nil {
		return "", err
	}

	return token, nil
}

func LoginHandler(c *gin.Context, db *gorm.DB) {
	var loginReq struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&loginReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Please provide all required fields",
		})
		return
	}

	var user models.User
	err := db.Where("email = ?", loginReq.Email).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid email or password",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(loginReq.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Invalid email or password",
		})
		return
	}

	token, err := issueToken(db, &user)
	if err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("failed to issue token")
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// LogOutHandler revokes the presented token.
func LogOutHandler(c *gin.Context, db *gorm.DB) {
	token, exists := c.Get("Token")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	result := db.Where("token = ?", token).Delete(&models.LoginToken{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Already logged out",
		})
		return
	}

	c.Header("Authorization", "")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out",
	})
}

func GetUserProfileHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "User not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":             user.ID,
			"name":           user.Name,
			"email":          user.Email,
			"phone":          user.Phone,
			"role":           user.Role,
			"profilePicture": user.ProfilePicture,
			"preferences": gin.H{
				"theme":    user.Theme,
				"language": user.Language,
			},
		},
	})
}

func UpdateUserProfileHandler(c *gin.Context, db *gorm.DB) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "User not found",
		})
		return
	}

	var profileReq struct {
		Name     *string `json:"name"`
		Email    *string `json:"email"`
		Phone    *string `json:"phone"`
		Theme    *string `json:"theme"`
		Language *string `json:"language"`
	}
	if err := c.ShouldBindJSON(&profileReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Please provide all required fields",
		})
		return
	}

	if profileReq.Email != nil {
		if !ValidateEmail(*profileReq.Email) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Invalid email address",
			})
			return
		}
		user.Email = *profileReq.Email
	}
	if profileReq.Name != nil {
		user.Name = *profileReq.Name
	}
	if profileReq.Phone != nil {
		user.Phone = *profileReq.Phone
	}
	if profileReq.Theme != nil {
		user.Theme = *profileReq.Theme
	}
	if profileReq.Language != nil {
		user.Language = *profileReq.Language
	}

	if err := db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
	})
}
