package service_interfaces

import (
	"context"

	"github.com/atlasbank/retail-banking-demo/internal/adapter/http/models"
	"github.com/atlasbank/retail-banking-demo/internal/commons"
)

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (commons.Response[models.AuthResponse], error)
	Login(ctx context.Context, req models.LoginRequest) (commons.Response[models.AuthResponse], error)
	Logout(ctx context.Context, sessionID string) (commons.Response[models.LogoutResponse], error)
}
