package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"hotel-admin/utils"
)

const tokenTTL = 12 * time.Hour

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

func generateTokenHex(length int) (string, error) {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// AuthController checks the configured admin credentials and hands out
// in-memory bearer tokens. ADMIN_PASSWORD may be given pre-hashed with
// bcrypt; a plain value is hashed at startup so it never sits in memory.
type AuthController struct {
	username     string
	passwordHash string

	mu     sync.Mutex
	tokens map[string]time.Time
}

func NewAuthController(username, password string) *AuthController {
	hash := password
	if !isBcryptHash(password) {
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("⚠️ failed to hash admin password: %v", err)
		} else {
			hash = string(h)
		}
	}
	return &AuthController{
		username:     username,
		passwordHash: hash,
		tokens:       map[string]time.Time{},
	}
}

func (a *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	username := strings.TrimSpace(payload.Username)
	if username == "" || payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "username and password required")
		return
	}
	if username != a.username ||
		bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(payload.Password)) != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := generateTokenHex(32)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate token")
		return
	}

	a.mu.Lock()
	a.tokens[token] = time.Now().Add(tokenTTL)
	a.mu.Unlock()

	utils.JSONSuccess(c, http.StatusOK, gin.H{"token": token, "username": a.username})
}

func (a *AuthController) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

	a.mu.Lock()
	delete(a.tokens, token)
	a.mu.Unlock()

	utils.JSONSuccess(c, http.StatusOK, nil)
}

// Valid reports whether the token was issued here and has not expired.
// Expired tokens are dropped on sight.
func (a *AuthController) Valid(token string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	exp, ok := a.tokens[token]
	if !ok {
		return false
	}
	if time.Now().After(exp) {
		delete(a.tokens, token)
		return false
	}
	return true
}
