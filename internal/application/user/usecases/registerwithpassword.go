package usecases

import (
	"context"
	"encoding/json"
	"fmt"

	"sitios/internal/application/user/services"
	"sitios/internal/domain/user"
	vo "sitios/internal/domain/user/valueobjects"
	"sitios/internal/shared/db"
	"sitios/internal/shared/logger"
)

type RegisterWithPasswordCommand struct {
	Email     string
	Name      string
	Password  string
	IPAddress string
	UserAgent string
}

type RegisterWithPasswordResult struct {
	User      *user.User
	Session   *user.Session
	Token     string
	ExpiresIn int64
}

// RegisterWithPasswordUseCase creates the account, seeds default preferences
// and logs the new user in. User, preferences and session commit as one unit
// of work; a failed session insert rolls the account back rather than leaving
// a registered-but-sessionless user.
type RegisterWithPasswordUseCase struct {
	userRepo       user.Repository
	preferenceRepo user.PreferenceRepository
	passwordHasher user.PasswordHasher
	tokenIssuer    TokenIssuer
	sessionTracker *services.SessionTracker
	txManager      *db.TransactionManager
	logger         logger.Interface
}

func NewRegisterWithPasswordUseCase(
	userRepo user.Repository,
	preferenceRepo user.PreferenceRepository,
	hasher user.PasswordHasher,
	tokenIssuer TokenIssuer,
	sessionTracker *services.SessionTracker,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *RegisterWithPasswordUseCase {
	return &RegisterWithPasswordUseCase{
		userRepo:       userRepo,
		preferenceRepo: preferenceRepo,
		passwordHasher: hasher,
		tokenIssuer:    tokenIssuer,
		sessionTracker: sessionTracker,
		txManager:      txManager,
		logger:         logger,
	}
}

func (uc *RegisterWithPasswordUseCase) Execute(ctx context.Context, cmd RegisterWithPasswordCommand) (*RegisterWithPasswordResult, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, err
	}
	name, err := vo.NewName(cmd.Name)
	if err != nil {
		return nil, err
	}
	password, err := vo.NewPassword(cmd.Password)
	if err != nil {
		return nil, err
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		return nil, fmt.Errorf("failed to check email availability: %w", err)
	}
	if exists {
		return nil, user.ErrUserExists()
	}

	newUser, err := user.NewUser(email, name)
	if err != nil {
		return nil, err
	}
	if err := newUser.SetPassword(password, uc.passwordHasher); err != nil {
		return nil, err
	}

	// Enrichment goes over the network, so resolve it before the transaction
	client := uc.sessionTracker.DescribeClient(ctx, cmd.IPAddress, cmd.UserAgent)

	var session *user.Session
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.userRepo.Create(txCtx, newUser); err != nil {
			return err
		}
		if err := uc.seedDefaultPreferences(txCtx, newUser.ID()); err != nil {
			return err
		}
		session, err = uc.sessionTracker.StartSession(txCtx, newUser.ID(), client)
		return err
	})
	if err != nil {
		return nil, err
	}

	token, err := uc.tokenIssuer.Issue(newUser.ID(), session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "email", email.String())

	return &RegisterWithPasswordResult{
		User:      newUser,
		Session:   session,
		Token:     token,
		ExpiresIn: int64(uc.tokenIssuer.ExpMinutes()) * 60,
	}, nil
}

func (uc *RegisterWithPasswordUseCase) seedDefaultPreferences(ctx context.Context, userID uint) error {
	for key, value := range user.DefaultPreferences() {
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode default preference %s: %w", key, err)
		}
		if err := uc.preferenceRepo.Upsert(ctx, userID, key, raw); err != nil {
			return fmt.Errorf("failed to seed preference %s: %w", key, err)
		}
	}
	return nil
}
