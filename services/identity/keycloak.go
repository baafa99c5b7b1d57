package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Nerzal/gocloak/v13"
	"go.uber.org/zap"
)

// KeycloakProvider talks to the Keycloak admin REST API with a service-account client.
type KeycloakProvider struct {
	client       *gocloak.GoCloak
	realm        string
	clientID     string
	clientSecret string
	logger       *zap.Logger
}

func NewKeycloakProvider(baseURL, realm, clientID, clientSecret string, logger *zap.Logger) *KeycloakProvider {
	return &KeycloakProvider{
		client:       gocloak.NewClient(baseURL),
		realm:        realm,
		clientID:     clientID,
		clientSecret: clientSecret,
		logger:       logger,
	}
}

func (p *KeycloakProvider) adminToken(ctx context.Context) (string, error) {
	token, err := p.client.LoginClient(ctx, p.clientID, p.clientSecret, p.realm)
	if err != nil {
		return "", fmt.Errorf("identity provider login failed: %w", err)
	}
	return token.AccessToken, nil
}

// CreateUser creates an enabled user with a permanent password and assigns the realm role.
func (p *KeycloakProvider) CreateUser(ctx context.Context, reg UserRegistration) (string, error) {
	token, err := p.adminToken(ctx)
	if err != nil {
		return "", err
	}

	credentials := []gocloak.CredentialRepresentation{{
		Type:      gocloak.StringP("password"),
		Value:     gocloak.StringP(reg.Password),
		Temporary: gocloak.BoolP(false),
	}}
	user := gocloak.User{
		Username:      gocloak.StringP(strings.ToLower(reg.Email)),
		Email:         gocloak.StringP(reg.Email),
		FirstName:     gocloak.StringP(reg.FirstName),
		LastName:      gocloak.StringP(reg.LastName),
		Enabled:       gocloak.BoolP(true),
		EmailVerified: gocloak.BoolP(false),
		Credentials:   &credentials,
	}

	subject, err := p.client.CreateUser(ctx, token, p.realm, user)
	if err != nil {
		var apiErr *gocloak.APIError
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusConflict {
			return "", ErrIdentityConflict
		}
		return "", fmt.Errorf("failed to create identity user: %w", err)
	}

	if reg.Role != "" {
		role, err := p.client.GetRealmRole(ctx, token, p.realm, reg.Role)
		if err == nil {
			err = p.client.AddRealmRoleToUser(ctx, token, p.realm, subject, []gocloak.Role{*role})
		}
		if err != nil {
			// Roll back so a retry with the same email is possible.
			if delErr := p.client.DeleteUser(ctx, token, p.realm, subject); delErr != nil {
				p.logger.Error("Failed to roll back identity user", zap.String("subject", subject), zap.Error(delErr))
			}
			return "", fmt.Errorf("failed to assign role %s: %w", reg.Role, err)
		}
	}

	p.logger.Info("Identity user created", zap.String("subject", subject), zap.String("role", reg.Role))
	return subject, nil
}

func (p *KeycloakProvider) DeleteUser(ctx context.Context, subject string) error {
	token, err := p.adminToken(ctx)
	if err != nil {
		return err
	}
	if err := p.client.DeleteUser(ctx, token, p.realm, subject); err != nil {
		return fmt.Errorf("failed to delete identity user %s: %w", subject, err)
	}
	return nil
}
