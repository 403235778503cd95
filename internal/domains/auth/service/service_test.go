package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"buslink/config"
	"buslink/infras/jwt"
	jwtMocks "buslink/infras/jwt/mocks"
	"buslink/infras/otel/mocks"
	"buslink/internal/domains/auth/model/dto"
	"buslink/internal/domains/auth/service"
	userMocks "buslink/internal/domains/user/mocks"
	userModel "buslink/internal/domains/user/model"
	"buslink/shared/constant"
	"buslink/shared/failure"
	"buslink/shared/password"
)

func newService(t *testing.T) (service.Auth, *userMocks.MockUser, *jwtMocks.MockJWT) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockUserRepo, mockJWT, &config.Config{}, mocks.NewOtel())

	return svc, mockUserRepo, mockJWT
}

func TestAuthService_Register(t *testing.T) {
	req := dto.RegisterRequest{
		Username: "sarah",
		Email:    "sarah@example.com",
		Password: "correct-horse",
	}

	t.Run("stores a hashed password and the customer role", func(t *testing.T) {
		svc, mockUserRepo, _ := newService(t)

		mockUserRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil).
			Times(2)

		mockUserRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user userModel.User) error {
				assert.Equal(t, constant.RoleUser, user.Role)
				assert.True(t, user.Active)
				assert.NotEqual(t, req.Password, user.Password)
				assert.NoError(t, password.Verify(req.Password, user.Password))

				return nil
			})

		require.NoError(t, svc.Register(context.Background(), req))
	})

	t.Run("taken username conflicts", func(t *testing.T) {
		svc, mockUserRepo, _ := newService(t)

		mockUserRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := svc.Register(context.Background(), req)

		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("registered email conflicts", func(t *testing.T) {
		svc, mockUserRepo, _ := newService(t)

		first := mockUserRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		mockUserRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			After(first).
			Return(true, nil)

		err := svc.Register(context.Background(), req)

		require.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := password.Hash("correct-horse")
	require.NoError(t, err)

	validUser := userModel.User{
		ID:       "user-id-123",
		Username: "sarah",
		Email:    "sarah@example.com",
		Password: hashed,
		Role:     constant.RoleUser,
		Active:   true,
	}

	t.Run("valid credentials yield a token pair", func(t *testing.T) {
		svc, mockUserRepo, mockJWT := newService(t)

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validUser, nil)

		mockJWT.EXPECT().
			GenerateTokenPair(validUser.ID, validUser.Username, validUser.Role).
			Return(&jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer"}, nil)

		res, err := svc.Login(context.Background(), dto.LoginRequest{Username: "sarah", Password: "correct-horse"})

		require.NoError(t, err)
		assert.Equal(t, "sarah", res.Username)
		assert.Equal(t, "access", res.Tokens.AccessToken)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		svc, mockUserRepo, _ := newService(t)

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(validUser, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "sarah", Password: "wrong"})

		require.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})

	t.Run("unknown user is unauthorized, not not-found", func(t *testing.T) {
		svc, mockUserRepo, _ := newService(t)

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "nobody", Password: "whatever"})

		require.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})

	t.Run("deactivated account is unauthorized", func(t *testing.T) {
		svc, mockUserRepo, _ := newService(t)

		inactive := validUser
		inactive.Active = false

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(inactive, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "sarah", Password: "correct-horse"})

		require.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("valid refresh token rotates the pair", func(t *testing.T) {
		svc, _, mockJWT := newService(t)

		claims := &jwt.Claims{UserID: "user-id-123", Username: "sarah", Role: constant.RoleUser}

		mockJWT.EXPECT().
			ValidateToken("refresh-token", jwt.RefreshToken).
			Return(claims, nil)

		mockJWT.EXPECT().
			RefreshTokens("refresh-token").
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh-token"})

		require.NoError(t, err)
		assert.Equal(t, "new-access", res.Tokens.AccessToken)
	})

	t.Run("invalid refresh token is unauthorized", func(t *testing.T) {
		svc, _, mockJWT := newService(t)

		mockJWT.EXPECT().
			ValidateToken("bad-token", jwt.RefreshToken).
			Return(nil, jwt.ErrInvalidToken)

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad-token"})

		require.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}
