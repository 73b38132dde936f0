package jwt

import (
	"crypto/rsa"
	"os"
	"sync"

	"github.com/Meenakshi-Adapa/CraftHub/models"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

var (
	mu             sync.RWMutex
	privateKeyPath = "jwt/private_key.pem"
	publicKeyPath  = "jwt/public_key.pem"
)

// SetKeyPaths points the package at the RS256 keypair. Called once at
// startup from the loaded config.
func SetKeyPaths(private, public string) {
	mu.Lock()
	defer mu.Unlock()
	if private != "" {
		privateKeyPath = private
	}
	if public != "" {
		publicKeyPath = public
	}
}

func loadPrivateKey() (*rsa.PrivateKey, error) {
	mu.RLock()
	path := privateKeyPath
	mu.RUnlock()

	keyBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return jwt.ParseRSAPrivateKeyFromPEM(keyBytes)
}

func loadPublicKey() (*rsa.PublicKey, error) {
	mu.RLock()
	path := publicKeyPath
	mu.RUnlock()

	keyBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return jwt.ParseRSAPublicKeyFromPEM(keyBytes)
}

func GenerateToken(userID uint, role string, expTime int64) (string, error) {
	privateKey, err := loadPrivateKey()
	if err != nil {
		return "", err
	}

	token := jwt.New(jwt.SigningMethodRS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userID"] = userID
	claims["exp"] = expTime
	claims["role"] = role

	return token.SignedString(privateKey)
}

// VerifyToken checks the signature and that the token is still present in
// the login_tokens table, so a logged-out token stops working immediately.
func VerifyToken(tokenString string, db *gorm.DB) (uint, string, error) {
	publicKey, err := loadPublicKey()
	if err != nil {
		return 0, "", err
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return publicKey, nil
	})
	if err != nil {
		return 0, "", err
	}

	if !token.Valid {
		return 0, "", jwt.ErrTokenSignatureInvalid
	}

	var loginToken models.LoginToken
	if err := db.Where("token = ?", tokenString).First(&loginToken).Error; err != nil {
		return 0, "", err
	}

	claims := token.Claims.(jwt.MapClaims)
	userID := uint(claims["userID"].(float64))
	role := claims["role"].(string)

	return userID, role, nil
}
