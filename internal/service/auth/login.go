package auth

import (
	"context"
	"time"

	"github.com/Starley-iggy/YahooBank/internal/model"
	"github.com/Starley-iggy/YahooBank/internal/service"
	"github.com/Starley-iggy/YahooBank/pkg/pass"
	"github.com/Starley-iggy/YahooBank/pkg/token"

	"github.com/google/uuid"
)

func (s *serv) Login(ctx context.Context, login, password string) (*model.AuthData, error) {
	// Получение пользователя из леджера по логину.
	// Неизвестный логин и неверный пароль не различаются в ответе
	user, err := s.userRepo.GetUserByLogin(ctx, login)
	if err != nil {
		return nil, service.ErrInvalidCredentials
	}

	// Верификация пароля
	if !pass.VerifyPassword(user.PasswordHash, password) {
		return nil, service.ErrInvalidCredentials
	}

	// Генерация sessionID
	sessionID := uuid.NewString()

	// Генерация refresh токена
	refreshToken, err := token.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	// Создать сессию
	err = s.authRepo.CreateSession(ctx,
		&model.Session{
			ID:           sessionID,
			Username:     user.Name,
			RefreshToken: token.HashRefreshToken(refreshToken),
			ExpiresAt:    time.Now().Add(s.authCfg.RefreshTokenDuration()),
		})
	if err != nil {
		return nil, err
	}

	// Создать access токен
	accessToken, err := token.GenerateAccessToken(
		user.Name,
		s.authCfg.AccessTokenSecretKey(),
		s.authCfg.AccessTokenDuration())
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, nil
}
