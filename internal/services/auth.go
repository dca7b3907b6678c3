package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/freightdesk/fleetadmin/internal/data/db"
	"github.com/freightdesk/fleetadmin/internal/data/repos"
	types "github.com/freightdesk/fleetadmin/internal/domain"
	"github.com/freightdesk/fleetadmin/internal/normalization"
	"github.com/freightdesk/fleetadmin/internal/pkg/ctxutil"
	"github.com/freightdesk/fleetadmin/internal/pkg/dbctx"
	pkgerrors "github.com/freightdesk/fleetadmin/internal/pkg/errors"
	"github.com/freightdesk/fleetadmin/internal/pkg/logger"
	"github.com/freightdesk/fleetadmin/internal/platform/apierr"
)

type JWTClaims struct {
	Role int `json:"role"`
	jwt.RegisteredClaims
}

type SignUpInput struct {
	Name       string
	Phone      string
	Email      string
	Branch     string
	OfficeType string
	Password   string
}

type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    time.Duration
	User         *types.User
}

type AuthService interface {
	SignUp(ctx context.Context, in SignUpInput) (*types.User, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	Refresh(ctx context.Context, refreshToken string) (*Session, error)
	SignOut(ctx context.Context) error
	Me(ctx context.Context) (*types.User, error)
	// EnsureAdmin creates an admin account, or promotes the account already
	// registered under in.Email.
	EnsureAdmin(ctx context.Context, in SignUpInput) (*types.User, error)
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	GetAccessTTL() time.Duration
}

type authService struct {
	db            *gorm.DB
	log           *logger.Logger
	userRepo      repos.UserRepo
	userTokenRepo repos.UserTokenRepo
	jwtSecretKey  string
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	userTokenRepo repos.UserTokenRepo,
	jwtSecretKey string,
	accessTTL time.Duration,
	refreshTTL time.Duration,
) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		db:            db,
		log:           serviceLog,
		userRepo:      userRepo,
		userTokenRepo: userTokenRepo,
		jwtSecretKey:  jwtSecretKey,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

func (as *authService) SignUp(ctx context.Context, in SignUpInput) (*types.User, error) {
	return as.register(ctx, in, types.RoleUser)
}

func (as *authService) register(ctx context.Context, in SignUpInput, role int) (*types.User, error) {
	name := strings.TrimSpace(in.Name)
	email := normalization.Email(in.Email)
	phone := normalization.Digits(in.Phone)
	if name == "" || email == "" || phone == "" || in.Password == "" {
		return nil, apierr.BadRequest("missing_fields", "Missing required fields")
	}
	if !strings.Contains(email, "@") {
		return nil, apierr.BadRequest("invalid_email", "Invalid email address")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &types.User{
		Name:        name,
		Email:       email,
		PhoneNumber: phone,
		Password:    string(hash),
		Branch:      strings.TrimSpace(in.Branch),
		OfficeType:  strings.TrimSpace(in.OfficeType),
		Role:        role,
	}

	err = as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		if exists, err := as.userRepo.EmailExists(dbc, email); err != nil {
			return err
		} else if exists {
			return apierr.Conflict("email_taken", "Email already registered")
		}
		if exists, err := as.userRepo.PhoneExists(dbc, phone); err != nil {
			return err
		} else if exists {
			return apierr.Conflict("phone_taken", "Phone number already registered")
		}
		_, err := as.userRepo.Create(dbc, []*types.User{user})
		return err
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, apierr.Conflict("user_exists", "User already exists")
		}
		if _, ok := apierr.As(err); !ok {
			as.log.Error("sign up failed", "error", err)
		}
		return nil, err
	}
	as.log.Info("user registered", "user_id", user.ID, "role", role)
	return user, nil
}

func (as *authService) EnsureAdmin(ctx context.Context, in SignUpInput) (*types.User, error) {
	existing, err := as.userRepo.GetByEmail(dbctx.Context{Ctx: ctx}, in.Email)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return as.register(ctx, in, types.RoleAdmin)
	}
	if existing.IsAdmin() {
		return existing, nil
	}
	if err := as.userRepo.UpdateRole(dbctx.Context{Ctx: ctx}, existing.ID, types.RoleAdmin); err != nil {
		return nil, err
	}
	existing.Role = types.RoleAdmin
	as.log.Info("user promoted to admin", "user_id", existing.ID)
	return existing, nil
}

func (as *authService) SignIn(ctx context.Context, email, password string) (*Session, error) {
	invalid := apierr.Unauthorized("invalid_credentials", "Invalid email or password")
	email = normalization.Email(email)
	if email == "" || password == "" {
		return nil, invalid
	}
	user, err := as.userRepo.GetByEmail(dbctx.Context{Ctx: ctx}, email)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, invalid
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, invalid
	}

	var session *Session
	err = as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		s, err := as.issue(dbctx.Context{Ctx: ctx, Tx: tx}, user)
		session = s
		return err
	})
	if err != nil {
		as.log.Error("issue session failed", "user_id", user.ID, "error", err)
		return nil, err
	}
	return session, nil
}

func (as *authService) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	refreshToken = strings.TrimSpace(refreshToken)
	if refreshToken == "" {
		return nil, apierr.BadRequest("missing_refresh_token", "refresh_token is required")
	}
	invalid := apierr.Unauthorized("invalid_refresh_token", "Invalid refresh token")

	found, err := as.userTokenRepo.GetByRefreshTokens(dbctx.Context{Ctx: ctx}, []string{refreshToken})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, invalid
	}
	existing := found[0]
	if existing.ExpiresAt.Before(as.now()) {
		if err := as.userTokenRepo.FullDeleteByIDs(dbctx.Context{Ctx: ctx}, []uuid.UUID{existing.ID}); err != nil {
			as.log.Warn("delete expired refresh token failed", "error", err)
		}
		return nil, apierr.Unauthorized("refresh_token_expired", "Refresh token expired")
	}

	var session *Session
	err = as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		if err := as.userTokenRepo.FullDeleteByIDs(dbc, []uuid.UUID{existing.ID}); err != nil {
			return err
		}
		users, err := as.userRepo.GetByIDs(dbc, []uuid.UUID{existing.UserID})
		if err != nil {
			return err
		}
		if len(users) == 0 {
			return invalid
		}
		session, err = as.issue(dbc, users[0])
		return err
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (as *authService) SignOut(ctx context.Context) error {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.TokenString == "" {
		return pkgerrors.ErrUnauthorized
	}
	dbc := dbctx.Context{Ctx: ctx}
	found, err := as.userTokenRepo.GetByAccessTokens(dbc, []string{rd.TokenString})
	if err != nil {
		return err
	}
	ids := make([]uuid.UUID, 0, len(found))
	for _, t := range found {
		ids = append(ids, t.ID)
	}
	return as.userTokenRepo.FullDeleteByIDs(dbc, ids)
}

func (as *authService) Me(ctx context.Context) (*types.User, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, pkgerrors.ErrUnauthorized
	}
	users, err := as.userRepo.GetByIDs(dbctx.Context{Ctx: ctx}, []uuid.UUID{rd.UserID})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("user %s: %w", rd.UserID, pkgerrors.ErrNotFound)
	}
	return users[0], nil
}

func (as *authService) issue(dbc dbctx.Context, user *types.User) (*Session, error) {
	access, err := as.generateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	token := &types.UserToken{
		UserID:       user.ID,
		AccessToken:  access,
		RefreshToken: uuid.New().String(),
		ExpiresAt:    as.now().Add(as.refreshTTL),
	}
	if _, err := as.userTokenRepo.Create(dbc, []*types.UserToken{token}); err != nil {
		return nil, fmt.Errorf("create user token: %w", err)
	}
	return &Session{
		AccessToken:  access,
		RefreshToken: token.RefreshToken,
		ExpiresIn:    as.accessTTL,
		User:         user,
	}, nil
}

func (as *authService) generateAccessToken(user *types.User) (string, error) {
	now := as.now()
	claims := JWTClaims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(as.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	if tokenString == "" {
		return ctx, pkgerrors.ErrUnauthorized
	}
	parsed, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(as.jwtSecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(as.now))
	if err != nil {
		return ctx, fmt.Errorf("parse token: %w", err)
	}
	claims, ok := parsed.Claims.(*JWTClaims)
	if !ok || !parsed.Valid {
		return ctx, fmt.Errorf("invalid or expired token: %w", pkgerrors.ErrUnauthorized)
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, fmt.Errorf("invalid user id in token: %w", err)
	}
	found, err := as.userTokenRepo.GetByAccessTokens(dbctx.Context{Ctx: ctx}, []string{tokenString})
	if err != nil {
		return ctx, fmt.Errorf("lookup token: %w", err)
	}
	if len(found) == 0 {
		return ctx, fmt.Errorf("token revoked: %w", pkgerrors.ErrUnauthorized)
	}
	rd := &ctxutil.RequestData{
		TokenString: tokenString,
		UserID:      userID,
		Role:        claims.Role,
	}
	return ctxutil.WithRequestData(ctx, rd), nil
}

func (as *authService) GetAccessTTL() time.Duration {
	return as.accessTTL
}
