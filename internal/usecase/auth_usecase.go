package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"edoc-portal/config"
	"edoc-portal/internal/converter"
	"edoc-portal/internal/delivery/dto"
	"edoc-portal/internal/domain/entity"
	"edoc-portal/internal/domain/repository"
	"edoc-portal/internal/service"
	"edoc-portal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
	ErrAccountLocked      = errors.New("too many failed login attempts")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrInvalidDateFormat  = errors.New("invalid date format, use YYYY-MM-DD")
	ErrEmailNotVerified   = errors.New("email address is not verified")
)

const (
	defaultResetTokenTTL  = time.Hour
	defaultVerifyTokenTTL = 24 * time.Hour
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, userID uuid.UUID, accessTokenID, refreshToken string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	LogoutAll(ctx context.Context, userID uuid.UUID) error
	RequestPasswordReset(ctx context.Context, req *dto.PasswordResetRequest) error
	ConfirmPasswordReset(ctx context.Context, req *dto.PasswordResetConfirmRequest) error
	VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) (*dto.UserResponse, error)
	ResendVerification(ctx context.Context, req *dto.ResendVerificationRequest) error
}

type authUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
	tokens     service.TokenStore
	notifier   service.Notifier
	activity   service.ActivityService
	cfg        config.AuthConfig
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
	tokens service.TokenStore,
	notifier service.Notifier,
	activity service.ActivityService,
	cfg config.AuthConfig,
) AuthUsecase {
	return &authUsecase{
		db:         db,
		log:        log,
		userRepo:   userRepo,
		jwtService: jwtService,
		tokens:     tokens,
		notifier:   notifier,
		activity:   activity,
		cfg:        cfg,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	active := true
	user := &entity.User{
		ID:          uuid.New(),
		Role:        req.Role,
		Email:       strings.ToLower(req.Email),
		Password:    string(hashedPassword),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		DateOfBirth: dob,
		IsActive:    &active,
	}
	switch req.Role {
	case entity.RoleDoctor:
		user.Specialization = req.Specialization
		user.LicenseNumber = req.LicenseNumber
	case entity.RoleLab:
		user.Organization = req.Organization
	}

	existing, err := u.userRepo.FindByEmail(u.dbWithContext(ctx), user.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	if err := u.userRepo.Create(u.dbWithContext(ctx), user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	u.activity.Record(ctx, entity.ActivityUserRegister, "user", user.ID.String(),
		"New "+user.Role+" account registered: "+user.FullName())

	// The account exists either way; a lost email can be resent.
	if err := u.sendVerification(ctx, user); err != nil {
		u.log.Warnf("Failed to send verification email: %+v", err)
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(req.Email)

	attempts, err := u.tokens.FailedLogins(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to read login attempts: %+v", err)
		return nil, err
	}
	if u.cfg.MaxLoginAttempts > 0 && attempts >= int64(u.cfg.MaxLoginAttempts) {
		return nil, ErrAccountLocked
	}

	user, err := u.userRepo.FindByEmail(u.dbWithContext(ctx), email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		if _, err := u.tokens.RecordFailedLogin(ctx, email, u.cfg.LockoutDuration); err != nil {
			u.log.Warnf("Failed to record login attempt: %+v", err)
		}
		return nil, ErrInvalidCredentials
	}
	if user.IsActive != nil && !*user.IsActive {
		return nil, ErrAccountInactive
	}
	if u.cfg.RequireVerifiedEmail && !user.EmailVerified {
		return nil, ErrEmailNotVerified
	}

	if err := u.tokens.ResetFailedLogins(ctx, email); err != nil {
		u.log.Warnf("Failed to reset login attempts: %+v", err)
	}

	tokens, err := u.issueTokens(ctx, user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	tokens.User = converter.UserToResponse(user)

	u.activity.Record(service.WithActor(ctx, service.Actor{UserID: user.ID, Email: user.Email, Role: user.Role}),
		entity.ActivityUserLogin, "user", user.ID.String(), user.FullName()+" signed in")

	return tokens, nil
}

func (u *authUsecase) Logout(ctx context.Context, userID uuid.UUID, accessTokenID, refreshToken string) error {
	if err := u.tokens.Revoke(ctx, userID, accessTokenID, jwt.AccessToken); err != nil {
		u.log.Warnf("Failed to revoke access token: %+v", err)
		return err
	}

	if refreshToken == "" {
		return nil
	}
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil || claims.UserID != userID {
		return nil
	}
	if err := u.tokens.Revoke(ctx, userID, claims.TokenID, jwt.RefreshToken); err != nil {
		u.log.Warnf("Failed to revoke refresh token: %+v", err)
		return err
	}

	return nil
}

// LogoutAll ends every session of the user, on every device.
func (u *authUsecase) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	if err := u.tokens.RevokeAll(ctx, userID); err != nil {
		u.log.Warnf("Failed to revoke tokens: %+v", err)
		return err
	}
	return nil
}

// RequestPasswordReset mails a reset link when the email belongs to an
// active account. Unknown emails succeed silently so the endpoint cannot be
// used to discover accounts.
func (u *authUsecase) RequestPasswordReset(ctx context.Context, req *dto.PasswordResetRequest) error {
	user, err := u.userRepo.FindByEmail(u.dbWithContext(ctx), strings.ToLower(req.Email))
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return err
	}
	if user == nil || (user.IsActive != nil && !*user.IsActive) {
		u.log.Debugf("Password reset requested for unknown or inactive account")
		return nil
	}

	token := uuid.NewString()
	if err := u.tokens.SaveOneTime(ctx, service.PurposePasswordReset, token, user.ID, ttlOr(u.cfg.ResetTokenTTL, defaultResetTokenTTL)); err != nil {
		u.log.Warnf("Failed to store reset token: %+v", err)
		return err
	}
	if err := u.notifier.PasswordReset(ctx, user, token); err != nil {
		u.log.Warnf("Failed to send password reset email: %+v", err)
	}

	return nil
}

// ConfirmPasswordReset sets the new password and signs the user out
// everywhere. Following the emailed link also proves the address.
func (u *authUsecase) ConfirmPasswordReset(ctx context.Context, req *dto.PasswordResetConfirmRequest) error {
	user, err := u.consumeOneTime(ctx, service.PurposePasswordReset, req.Token)
	if err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return err
	}
	user.Password = string(hashedPassword)
	user.EmailVerified = true

	if err := u.userRepo.Update(u.dbWithContext(ctx), user); err != nil {
		u.log.Warnf("Failed to update password: %+v", err)
		return err
	}

	if err := u.tokens.RevokeAll(ctx, user.ID); err != nil {
		u.log.Warnf("Failed to revoke tokens: %+v", err)
		return err
	}
	if err := u.tokens.ResetFailedLogins(ctx, user.Email); err != nil {
		u.log.Warnf("Failed to reset login attempts: %+v", err)
	}

	u.activity.Record(ctx, entity.ActivityPasswordReset, "user", user.ID.String(), user.FullName()+" reset their password")

	return nil
}

func (u *authUsecase) VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) (*dto.UserResponse, error) {
	user, err := u.consumeOneTime(ctx, service.PurposeEmailVerification, req.Token)
	if err != nil {
		return nil, err
	}

	if !user.EmailVerified {
		user.EmailVerified = true
		if err := u.userRepo.Update(u.dbWithContext(ctx), user); err != nil {
			u.log.Warnf("Failed to mark email verified: %+v", err)
			return nil, err
		}
		u.activity.Record(ctx, entity.ActivityEmailVerified, "user", user.ID.String(), user.FullName()+" verified their email")
	}

	return converter.UserToResponse(user), nil
}

// ResendVerification answers the same way for unknown and already verified
// emails.
func (u *authUsecase) ResendVerification(ctx context.Context, req *dto.ResendVerificationRequest) error {
	user, err := u.userRepo.FindByEmail(u.dbWithContext(ctx), strings.ToLower(req.Email))
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return err
	}
	if user == nil || user.EmailVerified {
		return nil
	}

	return u.sendVerification(ctx, user)
}

func (u *authUsecase) sendVerification(ctx context.Context, user *entity.User) error {
	token := uuid.NewString()
	if err := u.tokens.SaveOneTime(ctx, service.PurposeEmailVerification, token, user.ID, ttlOr(u.cfg.VerifyTokenTTL, defaultVerifyTokenTTL)); err != nil {
		u.log.Warnf("Failed to store verification token: %+v", err)
		return err
	}
	return u.notifier.EmailVerification(ctx, user, token)
}

// consumeOneTime redeems token and loads its user. Unknown, expired and
// reused tokens, and tokens of deleted users, all report ErrInvalidToken.
func (u *authUsecase) consumeOneTime(ctx context.Context, purpose service.OneTimePurpose, token string) (*entity.User, error) {
	userID, found, err := u.tokens.ConsumeOneTime(ctx, purpose, token)
	if err != nil {
		u.log.Warnf("Failed to consume %s token: %+v", purpose, err)
		return nil, err
	}
	if !found {
		return nil, ErrInvalidToken
	}

	user, err := u.userRepo.FindByID(u.dbWithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}
	return user, nil
}

func ttlOr(ttl, fallback time.Duration) time.Duration {
	if ttl <= 0 {
		return fallback
	}
	return ttl
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	exists, err := u.tokens.Exists(ctx, claims.UserID, claims.TokenID, jwt.RefreshToken)
	if err != nil {
		u.log.Warnf("Failed to check refresh token: %+v", err)
		return nil, err
	}
	if !exists {
		return nil, ErrTokenRevoked
	}

	// Refresh tokens are single use.
	if err := u.tokens.Revoke(ctx, claims.UserID, claims.TokenID, jwt.RefreshToken); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	return u.issueTokens(ctx, claims.UserID, claims.Email, claims.Role)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.dbWithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) issueTokens(ctx context.Context, userID uuid.UUID, email, role string) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(userID, email, role)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(userID, email, role)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.tokens.Save(ctx, userID, accessTokenID, jwt.AccessToken, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return nil, err
	}

	if err := u.tokens.Save(ctx, userID, refreshTokenID, jwt.RefreshToken, u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Warnf("Failed to store refresh token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

// dbWithContext tolerates a nil handle so repositories that do not touch
// gorm can be swapped in.
func (u *authUsecase) dbWithContext(ctx context.Context) *gorm.DB {
	if u.db == nil {
		return nil
	}
	return u.db.WithContext(ctx)
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
