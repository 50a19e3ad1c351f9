package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bakery-storefront/internal/checkout"
	"bakery-storefront/internal/client"
	"bakery-storefront/internal/model"
	"bakery-storefront/internal/repository"
)

// UserService is the session gate plus the profile operations behind
// it. Any authenticated backend call answering 401 clears the stored
// session, except the password change, where 401 means the current
// password was wrong and the session stays.
type UserService interface {
	Login(ctx context.Context, email, password string) (*model.Session, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (*model.Session, error)
	Profile(ctx context.Context) (*model.UserProfile, error)
	UpdateProfile(ctx context.Context, login, email string) (*model.UserProfile, error)
	UpdatePassword(ctx context.Context, current, newPassword, confirm string) error
}

type userServiceImpl struct {
	backend     client.BackendClient
	sessionRepo repository.SessionRepository
}

func NewUserService(backend client.BackendClient, sessionRepo repository.SessionRepository) UserService {
	return &userServiceImpl{
		backend:     backend,
		sessionRepo: sessionRepo,
	}
}

func (s *userServiceImpl) Login(ctx context.Context, email, password string) (*model.Session, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, &checkout.ValidationError{Message: "email and password are required"}
	}

	resp, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	session := &model.Session{
		Token:  resp.Token,
		UserID: resp.ID,
		Login:  resp.LoginUsrio,
		Email:  resp.CorreoUsuario,
	}
	if err := s.sessionRepo.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return session, nil
}

func (s *userServiceImpl) Logout(ctx context.Context) error {
	return s.sessionRepo.Clear(ctx)
}

func (s *userServiceImpl) CurrentSession(ctx context.Context) (*model.Session, error) {
	return s.requireSession(ctx)
}

func (s *userServiceImpl) Profile(ctx context.Context) (*model.UserProfile, error) {
	session, err := s.requireSession(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := s.backend.GetProfile(ctx, session.Token, session.UserID)
	if err != nil {
		return nil, s.handleAuthError(ctx, err)
	}
	if !resp.Success || resp.Usuario == nil {
		return nil, &BusinessError{Message: messageOr(resp.Message, "could not load the profile")}
	}

	if err := s.refreshIdentity(ctx, session, resp.Usuario); err != nil {
		return nil, err
	}

	return resp.Usuario, nil
}

func (s *userServiceImpl) UpdateProfile(ctx context.Context, login, email string) (*model.UserProfile, error) {
	if strings.TrimSpace(login) == "" {
		return nil, &checkout.ValidationError{Message: "username is required"}
	}
	if strings.TrimSpace(email) == "" {
		return nil, &checkout.ValidationError{Message: "email is required"}
	}
	if !checkout.ValidEmail(email) {
		return nil, &checkout.ValidationError{Message: "email is not valid"}
	}

	session, err := s.requireSession(ctx)
	if err != nil {
		return nil, err
	}

	req := &model.ProfileUpdateRequest{
		LoginUsrio:    strings.TrimSpace(login),
		CorreoUsuario: strings.TrimSpace(email),
	}
	resp, err := s.backend.UpdateProfile(ctx, session.Token, session.UserID, req)
	if err != nil {
		return nil, s.handleAuthError(ctx, err)
	}
	if !resp.Success || resp.Usuario == nil {
		return nil, &BusinessError{Message: messageOr(resp.Message, "could not update the profile")}
	}

	if err := s.refreshIdentity(ctx, session, resp.Usuario); err != nil {
		return nil, err
	}

	return resp.Usuario, nil
}

func (s *userServiceImpl) UpdatePassword(ctx context.Context, current, newPassword, confirm string) error {
	if current == "" {
		return &checkout.ValidationError{Message: "current password is required"}
	}
	if newPassword == "" {
		return &checkout.ValidationError{Message: "new password is required"}
	}
	if confirm == "" {
		return &checkout.ValidationError{Message: "password confirmation is required"}
	}
	if newPassword != confirm {
		return &checkout.ValidationError{Message: "new passwords do not match"}
	}
	if len(newPassword) < 8 {
		return &checkout.ValidationError{Message: "new password must have at least 8 characters"}
	}

	session, err := s.requireSession(ctx)
	if err != nil {
		return err
	}

	req := &model.PasswordUpdateRequest{
		CurrentPassword: current,
		NewPassword:     newPassword,
	}
	resp, err := s.backend.UpdatePassword(ctx, session.Token, session.UserID, req)
	if err != nil {
		// 401 here means the current password is wrong, not that the
		// session expired; keep the session.
		if errors.Is(err, client.ErrUnauthorized) {
			return &BusinessError{Message: "current password is incorrect"}
		}
		return err
	}
	if !resp.Success {
		return &BusinessError{Message: messageOr(resp.Message, "could not update the password")}
	}

	return nil
}

func (s *userServiceImpl) requireSession(ctx context.Context) (*model.Session, error) {
	session, err := s.sessionRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if session == nil {
		return nil, ErrNoSession
	}

	return session, nil
}

// handleAuthError drops the stored session on a 401 so the caller is
// sent back to the login view.
func (s *userServiceImpl) handleAuthError(ctx context.Context, err error) error {
	if errors.Is(err, client.ErrUnauthorized) {
		if clearErr := s.sessionRepo.Clear(ctx); clearErr != nil {
			return fmt.Errorf("clear session: %w", clearErr)
		}
	}

	return err
}

// refreshIdentity mirrors the backend's view of the user into the
// stored session, keeping the token.
func (s *userServiceImpl) refreshIdentity(ctx context.Context, session *model.Session, profile *model.UserProfile) error {
	session.Login = profile.LoginUsrio
	session.Email = profile.CorreoUsuario
	if err := s.sessionRepo.Set(ctx, session); err != nil {
		return fmt.Errorf("refresh session identity: %w", err)
	}

	return nil
}

func messageOr(message, fallback string) string {
	if message != "" {
		return message
	}

	return fallback
}
