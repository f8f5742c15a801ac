package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/docledger/internal/common"
	"github.com/dmitrijs2005/docledger/internal/cryptox"
	"github.com/dmitrijs2005/docledger/internal/logging"
	"github.com/dmitrijs2005/docledger/internal/server/access"
	"github.com/dmitrijs2005/docledger/internal/server/auth"
	"github.com/dmitrijs2005/docledger/internal/server/config"
	"github.com/dmitrijs2005/docledger/internal/server/models"
	"github.com/dmitrijs2005/docledger/internal/server/repositories/repomanager"
)

const saltSize = 16

// Populator copies published documents to a freshly registered user.
type Populator interface {
	PopulatePublishedDataToNewUser(ctx context.Context, username string) error
}

// LoginResult is returned on successful login.
type LoginResult struct {
	AccessToken string
	Role        string
}

type UserService struct {
	repomanager                 repomanager.RepositoryManager
	populator                   Populator
	log                         logging.Logger
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	now                         func() time.Time
}

func NewUserService(m repomanager.RepositoryManager, p Populator, cfg *config.Config, log logging.Logger) *UserService {
	return &UserService{
		repomanager:                 m,
		populator:                   p,
		log:                         log.With("module", "users"),
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		now:                         time.Now,
	}
}

// Register creates a user. Only one instructor may exist. Non-instructors
// receive copies of everything published so far; a failure there is
// returned, but the account stays.
func (s *UserService) Register(ctx context.Context, username, password, role string) (*models.User, error) {
	username = access.NormalizeUsername(username)
	role = strings.ToUpper(strings.TrimSpace(role))
	if role == "" {
		role = common.RoleStudent
	}

	repo := s.repomanager.Users(s.repomanager.Conn())

	if role == common.RoleInstructor {
		has, err := repo.HasInstructor(ctx)
		if err != nil {
			return nil, fmt.Errorf("error checking instructor: %w", err)
		}
		if has {
			return nil, fmt.Errorf("instructor already registered: %w", common.ErrorUnauthorized)
		}
	}

	salt := common.GenerateRandByteArray(saltSize)
	user, err := repo.Create(ctx, &models.User{
		UserName:     username,
		Salt:         salt,
		PasswordHash: cryptox.HashPassword(password, salt),
		Role:         role,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	s.log.Info(ctx, "user registered", "user", username, "role", role)

	if role != common.RoleInstructor {
		if err := s.populator.PopulatePublishedDataToNewUser(ctx, username); err != nil {
			return user, fmt.Errorf("error copying published documents: %w", err)
		}
	}

	return user, nil
}

// Login checks the password, records the login and issues an access token.
func (s *UserService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = access.NormalizeUsername(username)

	repo := s.repomanager.Users(s.repomanager.Conn())
	user, err := repo.GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	if !cryptox.VerifyPassword(password, user.Salt, user.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}

	if err := repo.AddLogin(ctx, user.ID, s.now().UTC()); err != nil {
		s.log.Warn(ctx, "login history not updated", "user", username, "error", err)
	}

	token, err := auth.GenerateToken(user.UserName, user.Role, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	return &LoginResult{AccessToken: token, Role: user.Role}, nil
}
