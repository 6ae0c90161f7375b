package app

import (
	"context"

	"safeai-bot/internal/domain/entity"
	"safeai-bot/internal/domain/port"
)

type UserService struct {
	repo port.UserRepository
}

func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.repo.Get(ctx, userID, chatID)
}

func (s *UserService) SetState(ctx context.Context, userID, chatID int64, state entity.UserState) (*entity.User, error) {
	user, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	user.SetState(state)
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) BeginCheck(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateAwaitingPhoto)
}

func (s *UserService) Cancel(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateMainMenu)
}

// Finish возвращает пользователя в меню и запоминает последний анализ.
func (s *UserService) Finish(ctx context.Context, userID, chatID int64, analysisID string) (*entity.User, error) {
	user, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	if analysisID != "" {
		user.RememberAnalysis(analysisID)
		if err := s.repo.Save(ctx, user); err != nil {
			return nil, err
		}
	}
	if err := s.repo.UpdateState(ctx, userID, entity.StateMainMenu); err != nil {
		return nil, err
	}
	user.SetState(entity.StateMainMenu)

	return user, nil
}
