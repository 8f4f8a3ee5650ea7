package services

import (
	"context"
	"encoding/json"
	"time"

	"storefront-service/models"
	"storefront-service/repository"

	"go.uber.org/zap"
)

// UserService handles signup and profile reads/writes.
type UserService interface {
	Signup(ctx context.Context, email, password, name string) (*models.UserProfile, *ServiceError)
	Login(ctx context.Context, email, password string) (string, *models.UserProfile, *ServiceError)
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, *ServiceError)
	UpdateProfile(ctx context.Context, userID string, updates *models.UpdateProfileRequest) (*models.UserProfile, *ServiceError)
}

type userServiceImpl struct {
	store    repository.Store
	identity IdentityProvider
	timeout  time.Duration
	logger   *zap.Logger
}

func NewUserService(store repository.Store, identity IdentityProvider, timeout time.Duration, logger *zap.Logger) UserService {
	return &userServiceImpl{store: store, identity: identity, timeout: timeout, logger: logger}
}

// Signup creates a credential with the identity provider and then writes the
// profile record. The two steps are not atomic: a crash after the first
// leaves an orphan identity, which GetProfile later surfaces as 404.
func (s *userServiceImpl) Signup(ctx context.Context, email, password, name string) (*models.UserProfile, *ServiceError) {
	if email == "" || password == "" || name == "" {
		return nil, validationErr("Missing required fields")
	}

	identity, err := s.identity.CreateCredential(ctx, email, password, name)
	if err != nil {
		s.logger.Error("Credential creation failed", zap.Error(err))
		return nil, identityErr(err)
	}

	profile := &models.UserProfile{
		ID:        identity.Subject,
		Email:     email,
		Name:      name,
		Addresses: []models.Address{},
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.writeProfile(ctx, profile); err != nil {
		s.logger.Error("Profile write after signup failed", zap.Error(err), zap.String("user_id", identity.Subject))
		return nil, storeErr(err)
	}

	s.logger.Info("User signed up", zap.String("user_id", identity.Subject))
	return profile, nil
}

// Login issues a bearer token via the identity provider and returns the
// stored profile alongside it.
func (s *userServiceImpl) Login(ctx context.Context, email, password string) (string, *models.UserProfile, *ServiceError) {
	if email == "" || password == "" {
		return "", nil, validationErr("Missing required fields")
	}

	token, identity, err := s.identity.IssueToken(ctx, email, password)
	if err != nil {
		return "", nil, identityErr(err)
	}

	profile, svcErr := s.GetProfile(ctx, identity.Subject)
	if svcErr != nil {
		return "", nil, svcErr
	}
	return token, profile, nil
}

func (s *userServiceImpl) GetProfile(ctx context.Context, userID string) (*models.UserProfile, *ServiceError) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	data, err := s.store.Get(ctx, repository.UserKey(userID))
	if isNotFound(err) {
		return nil, notFoundErr("User not found")
	}
	if err != nil {
		s.logger.Error("Profile fetch failed", zap.Error(err), zap.String("user_id", userID))
		return nil, storeErr(err)
	}

	var profile models.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		s.logger.Error("Profile record corrupt", zap.Error(err), zap.String("user_id", userID))
		return nil, storeErr(err)
	}
	return &profile, nil
}

// UpdateProfile shallow-merges the supplied fields over the stored record.
// Nil pointer fields (omitted or JSON null) keep the stored value; the id
// always stays the caller's id regardless of the payload.
func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID string, updates *models.UpdateProfileRequest) (*models.UserProfile, *ServiceError) {
	profile, svcErr := s.GetProfile(ctx, userID)
	if svcErr != nil {
		return nil, svcErr
	}

	if updates.Email != nil {
		profile.Email = *updates.Email
	}
	if updates.Name != nil {
		profile.Name = *updates.Name
	}
	if updates.Addresses != nil {
		profile.Addresses = *updates.Addresses
	}
	profile.ID = userID

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.writeProfile(ctx, profile); err != nil {
		s.logger.Error("Profile update failed", zap.Error(err), zap.String("user_id", userID))
		return nil, storeErr(err)
	}
	return profile, nil
}

func (s *userServiceImpl) writeProfile(ctx context.Context, profile *models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, repository.UserKey(profile.ID), data)
}
