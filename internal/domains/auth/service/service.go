package service

import (
	"context"
	"fmt"

	"buslink/config"
	"buslink/infras/jwt"
	"buslink/infras/otel"
	"buslink/internal/domains/auth/model/dto"
	userModel "buslink/internal/domains/user/model"
	userRepository "buslink/internal/domains/user/repository"
	"buslink/shared/constant"
	gDto "buslink/shared/dto"
	"buslink/shared/failure"
	gModel "buslink/shared/model"
	"buslink/shared/password"
	"buslink/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const invalidCredentialsMessage = "invalid username or password"

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.LoginResponse, error)
}

type serviceImpl struct {
	repository userRepository.User
	jwt        jwt.JWT
	config     *config.Config
	otel       otel.Otel
}

func New(repository userRepository.User, jwtService jwt.JWT, config *config.Config, otel otel.Otel) Auth {
	return &serviceImpl{
		repository: repository,
		jwt:        jwtService,
		config:     config,
		otel:       otel,
	}
}

// Register creates a customer account. Registration never grants the admin
// role; administrators are provisioned by seeding.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "auth.Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	taken, err := s.repository.Exist(ctx, filterByField(userModel.FieldUsername, req.Username))
	if err != nil {
		log.Error().Err(err).Msg("[AuthService] failed to check username")

		return fmt.Errorf("checking username: %w", err)
	}

	if taken {
		return failure.Conflict("username already taken")
	}

	taken, err = s.repository.Exist(ctx, filterByField(userModel.FieldEmail, req.Email))
	if err != nil {
		log.Error().Err(err).Msg("[AuthService] failed to check email")

		return fmt.Errorf("checking email: %w", err)
	}

	if taken {
		return failure.Conflict("email already registered")
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("[AuthService] failed to hash password")

		return fmt.Errorf("hashing password: %w", err)
	}

	user := userModel.User{
		ID:       uuid.NewString(),
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		Role:     constant.RoleUser,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  req.Username,
			ModifiedBy: req.Username,
		},
	}

	if err = s.repository.Insert(ctx, user); err != nil {
		log.Error().Err(err).Msg("[AuthService] failed to insert user")

		return fmt.Errorf("inserting user: %w", err)
	}

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "auth.Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, err := s.repository.Get(ctx, filterByField(userModel.FieldUsername, req.Username))
	if err != nil {
		log.Error().Err(err).Msg("[AuthService] failed to get user")

		return res, fmt.Errorf("getting user: %w", err)
	}

	if user.ID == "" || !user.Active {
		return res, failure.Unauthorized(invalidCredentialsMessage)
	}

	if err = password.Verify(req.Password, user.Password); err != nil {
		return res, failure.Unauthorized(invalidCredentialsMessage)
	}

	tokens, err := s.jwt.GenerateTokenPair(user.ID, user.Username, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("[AuthService] failed to generate tokens")

		return res, fmt.Errorf("generating tokens: %w", err)
	}

	return dto.LoginResponse{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		Tokens:   *tokens,
	}, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.LoginResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "auth.RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	claims, err := s.jwt.ValidateToken(req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		return res, failure.Unauthorized("invalid refresh token")
	}

	tokens, err := s.jwt.RefreshTokens(req.RefreshToken)
	if err != nil {
		return res, failure.Unauthorized("invalid refresh token")
	}

	return dto.LoginResponse{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
		Tokens:   *tokens,
	}, nil
}

func filterByField(field, value string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Value:    value,
				Operator: gDto.FilterOperatorEq,
				Table:    userModel.TableName,
			},
		},
	}
}
