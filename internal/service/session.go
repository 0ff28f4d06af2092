// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/loan-tracker/internal/logger"
	"github.com/MKhiriev/loan-tracker/internal/store"
	"github.com/MKhiriev/loan-tracker/internal/utils"
	"github.com/MKhiriev/loan-tracker/models"
)

type sessionService struct {
	*core
	ids *utils.UUIDGenerator
}

func NewSessionService(repo store.TrackingRepository, clock Clock, log *logger.Logger) SessionService {
	return newSessionService(newCore(repo, clock, log))
}

func newSessionService(c *core) *sessionService {
	return &sessionService{core: c, ids: utils.NewUUIDGenerator()}
}

// ValidateCredentials scans the stored users and falls back to the built-in
// accounts when none were ever stored. Credentials are compared in plaintext.
func (s *sessionService) ValidateCredentials(ctx context.Context, id, password string) (models.User, error) {
	if id == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.repo.Users(ctx)
	if errors.Is(err, store.ErrKeyNotFound) {
		users = DefaultUsers()
	} else if err != nil {
		return models.User{}, fmt.Errorf("load users: %w", err)
	}

	for _, u := range users {
		if u.ID == id && u.Password == password {
			return u, nil
		}
	}

	s.log(ctx).Info().Str("func", "sessionService.ValidateCredentials").Str("user_id", id).Msg("invalid credentials")
	return models.User{}, ErrInvalidCredentials
}

func (s *sessionService) Login(ctx context.Context, user models.User) (models.ActiveSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := models.ActiveSession{
		UserID:    user.ID,
		Role:      user.Role,
		LoginTime: s.now(),
		SessionID: s.ids.Generate(),
	}

	if err := s.repo.SaveActiveSession(ctx, session); err != nil {
		return models.ActiveSession{}, fmt.Errorf("save active session: %w", err)
	}

	s.logger.WithSession(session.SessionID, session.UserID).Info().
		Str("func", "sessionService.Login").Str("role", string(session.Role)).Msg("user logged in")
	return session, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.RemoveActiveSession(ctx); err != nil {
		return fmt.Errorf("remove active session: %w", err)
	}

	s.log(ctx).Info().Str("func", "sessionService.Logout").Msg("user logged out")
	return nil
}

func (s *sessionService) GetActiveSession(ctx context.Context) (*models.ActiveSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.repo.ActiveSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("load active session: %w", err)
	}
	return session, nil
}
