package services

import (
	"errors"
	"time"

	"github.com/c14220110/rota-backend/internal/rota/models"
	"github.com/c14220110/rota-backend/pkg/utils"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService melayani login satu akun manager yang dikonfigurasi lewat env.
type AuthService struct {
	username     string
	passwordHash string
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
}

func NewAuthService(username, passwordHash string, secret []byte, ttl time.Duration) *AuthService {
	return &AuthService{
		username:     username,
		passwordHash: passwordHash,
		secret:       secret,
		ttl:          ttl,
		now:          time.Now,
	}
}

// Login returns a signed token carrying the Manager grade.
func (a *AuthService) Login(username, password string) (string, error) {
	if a.passwordHash == "" || username != a.username || !utils.CheckPassword(a.passwordHash, password) {
		return "", ErrInvalidCredentials
	}
	return utils.GenerateJWTToken(a.secret, username, models.GradeManager.String(), a.now().Add(a.ttl))
}
