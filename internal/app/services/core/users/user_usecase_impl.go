package users

import (
	"context"
	"errors"
	"healthlinker-service/internal/app/config"
	"healthlinker-service/internal/app/contracts"
	"healthlinker-service/internal/app/models"
	"healthlinker-service/internal/pkg/constvars"
	"healthlinker-service/internal/pkg/dto/requests"
	"healthlinker-service/internal/pkg/dto/responses"
	"healthlinker-service/internal/pkg/exceptions"
	"healthlinker-service/internal/pkg/metrics"
	"healthlinker-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository  contracts.UserRepository
	TokenManager    contracts.TokenManager
	GoogleVerifier  contracts.GoogleTokenVerifier
	ResourceLimiter contracts.ResourceLimiter
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewUserUsecase(
	userMongoRepository contracts.UserRepository,
	tokenManager contracts.TokenManager,
	googleVerifier contracts.GoogleTokenVerifier,
	resourceLimiter contracts.ResourceLimiter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.UserUsecase {
	return &userUsecase{
		UserRepository:  userMongoRepository,
		TokenManager:    tokenManager,
		GoogleVerifier:  googleVerifier,
		ResourceLimiter: resourceLimiter,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

func (uc *userUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.AuthToken, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	role, err := registrableRole(request.Role)
	if err != nil {
		return nil, err
	}

	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("userUsecase.Register error checking email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hashedPassword,
		Role:     role,
	}
	user.SetCreatedAtUpdatedAt()

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		uc.Log.Error("userUsecase.Register error creating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	token, err := uc.issueToken(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	metrics.RecordUserRegistration(role.String())
	utils.LogBusinessEvent(uc.Log, "user_registered", requestID,
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingRoleKey, role.String()),
	)

	return &responses.AuthToken{
		Token:  token,
		Role:   role.String(),
		UserID: userID,
	}, nil
}

func (uc *userUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.AuthToken, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := uc.applyLoginLimiter(ctx, request.Email); err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidCredentials(nil)
	}
	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	token, err := uc.issueToken(ctx, user.ID.Hex(), user.Role)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("userUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID.Hex()),
	)

	return &responses.AuthToken{
		Token:  token,
		Role:   user.Role.String(),
		UserID: user.ID.Hex(),
	}, nil
}

func (uc *userUsecase) GoogleLogin(ctx context.Context, request *requests.GoogleLogin) (*responses.AuthToken, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.GoogleLogin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	identity, err := uc.GoogleVerifier.VerifyIDToken(ctx, request.Token)
	if err != nil {
		uc.Log.Warn("userUsecase.GoogleLogin token rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	email := utils.NormalizeEmail(identity.Email)
	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		// Google accounts start as patients without a usable password.
		user = &models.User{
			Name:     identity.Name,
			Email:    email,
			Role:     models.RolePatient,
			GoogleID: identity.Subject,
		}
		user.SetCreatedAtUpdatedAt()

		userID, err := uc.UserRepository.CreateUser(ctx, user)
		if err != nil {
			uc.Log.Error("userUsecase.GoogleLogin error creating user",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		if user.ID, err = primitive.ObjectIDFromHex(userID); err != nil {
			return nil, exceptions.ErrMongoDBNotObjectID(err)
		}
		metrics.RecordUserRegistration(models.RolePatient.String())
		utils.LogBusinessEvent(uc.Log, "user_registered_with_google", requestID,
			zap.String(constvars.LoggingUserIDKey, user.ID.Hex()),
		)
	}

	token, err := uc.issueToken(ctx, user.ID.Hex(), user.Role)
	if err != nil {
		return nil, err
	}

	return &responses.AuthToken{
		Token:  token,
		Role:   user.Role.String(),
		UserID: user.ID.Hex(),
		User:   utils.BuildUserSummaryResponse(user),
	}, nil
}

func (uc *userUsecase) GetProfile(ctx context.Context, userID string) (*responses.UserProfile, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return utils.BuildUserProfileResponse(user), nil
}

func (uc *userUsecase) issueToken(ctx context.Context, userID string, role models.UserRole) (string, error) {
	output, err := uc.TokenManager.CreateToken(ctx, &contracts.CreateTokenInput{
		UserID: userID,
		Role:   role,
	})
	if err != nil {
		return "", err
	}
	return output.Token, nil
}

// applyLoginLimiter throttles attempts per account. A limiter outage lets the attempt through.
func (uc *userUsecase) applyLoginLimiter(ctx context.Context, email string) error {
	if uc.ResourceLimiter == nil {
		return nil
	}
	output, err := uc.ResourceLimiter.ApplyResourceLimiter(ctx, &contracts.ApplyResourceLimiterInput{
		ResourceName:      email,
		LimiterGroupName:  constvars.LoginLimiterGroup,
		WindowDurationSec: uc.InternalConfig.App.LoginAttemptWindowInSecs,
		MaxQuota:          uc.InternalConfig.App.LoginMaxAttemptsPerWindow,
	})
	if err != nil {
		uc.Log.Warn("userUsecase.applyLoginLimiter limiter unavailable",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil
	}
	if !output.Allowed {
		return exceptions.ErrTooManyRequests(nil)
	}
	return nil
}

// registrableRole resolves the self-service role. Admin accounts are never created here.
func registrableRole(value string) (models.UserRole, error) {
	if value == "" {
		return models.RolePatient, nil
	}
	role, err := models.ParseUserRole(value)
	if err != nil {
		return "", exceptions.ErrInvalidRoleType(err)
	}
	switch role {
	case models.RolePatient, models.RoleDoctor:
		return role, nil
	case models.RoleAdmin:
		return "", exceptions.ErrInvalidRoleType(errors.New("admin accounts cannot self register"))
	default:
		return "", exceptions.ErrInvalidRoleType(nil)
	}
}
