package auth

import (
	"context"
	"errors"

	"github.com/Starley-iggy/YahooBank/internal/model"
	"github.com/Starley-iggy/YahooBank/pkg/token"
)

func (s *serv) Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error) {
	// Получение сессии по sessionID
	session, err := s.authRepo.GetSession(ctx, data.SessionID)
	if err != nil {
		return "", err
	}

	// Верификация переданного refresh токена с хэшем из сессии
	if !token.VerifyRefreshToken(data.RefreshToken, session.RefreshToken) {
		return "", errors.New("invalid refresh token")
	}

	// Генерация нового access токена
	newAccessToken, err = token.GenerateAccessToken(
		session.Username,
		s.authCfg.AccessTokenSecretKey(),
		s.authCfg.AccessTokenDuration())
	if err != nil {
		return "", err
	}

	return newAccessToken, nil
}
