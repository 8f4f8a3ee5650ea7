package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"storefront-service/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Identity is the verified caller of a protected route.
type Identity struct {
	Subject string
	Email   string
	Name    string
}

// IdentityProvider verifies bearer tokens and manages credentials. The rest
// of the service treats it as a black box; swapping in an external provider
// only requires another implementation of this interface.
type IdentityProvider interface {
	Authenticate(ctx context.Context, token string) (*Identity, error)
	CreateCredential(ctx context.Context, email, password, name string) (*Identity, error)
	IssueToken(ctx context.Context, email, password string) (string, *Identity, error)
}

var (
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrDuplicateEmail     = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// credentialRecord is the stored shape under auth:email:{email}.
type credentialRecord struct {
	Subject      string `json:"subject"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"passwordHash"`
	CreatedAt    string `json:"createdAt"`
}

// JWTIdentityProvider is the default IdentityProvider. It signs HS256 tokens
// and keeps bcrypt credential records in the KV store.
type JWTIdentityProvider struct {
	store    repository.Store
	secret   []byte
	tokenTTL time.Duration
	timeout  time.Duration
	logger   *zap.Logger
}

func NewJWTIdentityProvider(store repository.Store, secret string, tokenTTL, timeout time.Duration, logger *zap.Logger) *JWTIdentityProvider {
	return &JWTIdentityProvider{
		store:    store,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		timeout:  timeout,
		logger:   logger,
	}
}

var _ IdentityProvider = (*JWTIdentityProvider)(nil)

// Authenticate parses and validates a bearer token, returning the identity
// carried in its claims.
func (p *JWTIdentityProvider) Authenticate(ctx context.Context, tokenStr string) (*Identity, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)

	return &Identity{Subject: sub, Email: email, Name: name}, nil
}

// CreateCredential registers a new credential and returns the new identity.
// Fails with ErrDuplicateEmail when the email is already registered.
func (p *JWTIdentityProvider) CreateCredential(ctx context.Context, email, password, name string) (*Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	key := repository.CredentialKey(email)
	if _, err := p.store.Get(ctx, key); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, repository.ErrKeyNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	rec := credentialRecord{
		Subject:      uuid.New().String(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	if err := p.store.Set(ctx, key, data); err != nil {
		return nil, err
	}

	p.logger.Info("Credential created", zap.String("subject", rec.Subject))
	return &Identity{Subject: rec.Subject, Email: rec.Email, Name: rec.Name}, nil
}

// IssueToken verifies an email/password pair and returns a signed bearer
// token for the matching identity.
func (p *JWTIdentityProvider) IssueToken(ctx context.Context, email, password string) (string, *Identity, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	data, err := p.store.Get(ctx, repository.CredentialKey(email))
	if errors.Is(err, repository.ErrKeyNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	var rec credentialRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"sub":   rec.Subject,
		"email": rec.Email,
		"name":  rec.Name,
		"exp":   time.Now().Add(p.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", nil, err
	}

	return signed, &Identity{Subject: rec.Subject, Email: rec.Email, Name: rec.Name}, nil
}

// identityErr classifies an identity-provider failure per the error taxonomy.
func identityErr(err error) *ServiceError {
	switch {
	case errors.Is(err, ErrInvalidToken):
		return unauthorizedErr()
	case errors.Is(err, ErrDuplicateEmail), errors.Is(err, ErrInvalidCredentials):
		return &ServiceError{StatusCode: http.StatusBadRequest, Message: err.Error()}
	case errors.Is(err, context.DeadlineExceeded):
		return &ServiceError{StatusCode: http.StatusGatewayTimeout, Message: "Identity provider timed out"}
	default:
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Internal server error"}
	}
}
