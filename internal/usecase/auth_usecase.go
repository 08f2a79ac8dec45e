package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"gimo/internal/domain/entity"
	"gimo/internal/domain/repository"
	"gimo/pkg/errors"
)

// TokenIssuer is the credential issuance/verification contract the auth flow
// consumes. Implemented by infrastructure/auth.TokenManager.
type TokenIssuer interface {
	Issue(userID string) (string, error)
	Verify(raw string) (string, error)
}

type AuthUseCase struct {
	userRepo   repository.UserRepository
	tokens     TokenIssuer
	bcryptCost int
}

func NewAuthUseCase(userRepo repository.UserRepository, tokens TokenIssuer, bcryptCost int) *AuthUseCase {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthUseCase{
		userRepo:   userRepo,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

type AuthResult struct {
	User  *entity.User
	Token string
}

// Kept constant so a login against a missing account costs the same bcrypt
// comparison as one against a real account.
const dummyHash = "$2a$12$C6UzMDM.H6dfI/f/IKxGhuFQWK4fz7R1Gkw0dYzkqNmJPZicvdOS6"

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	role := input.Role
	if role == "" {
		role = entity.RoleVisitor
	}
	if !entity.ValidRegistrationRole(role) {
		return nil, errors.Validation("Invalid role", nil)
	}

	// Only a definitive "no such user" clears the uniqueness check; a store
	// failure must surface instead of letting a duplicate through.
	if _, err := uc.userRepo.GetByEmail(ctx, input.Email); err == nil {
		return nil, errors.Conflict("Email already in use")
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	username := strings.TrimSpace(input.Username)
	if _, err := uc.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, errors.Conflict("Username already taken")
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.bcryptCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:             uuid.NewString(),
		Email:          input.Email,
		Username:       username,
		HashedPassword: string(hashed),
		Role:           role,
		Status:         entity.UserStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, errors.Internal("Failed to issue token", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)

	storedHash := dummyHash
	if err == nil && user != nil {
		storedHash = user.HashedPassword
	}
	valid := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil

	if user == nil || !valid {
		return nil, errors.Unauthenticated("Invalid email or password", nil)
	}

	token, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, errors.Internal("Failed to issue token", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

type ProfileUpdateInput struct {
	Username  *string
	Email     *string
	Phone     *string
	Country   *string
	Address   *string
	AvatarURL *string
	Bio       *string
}

func (uc *AuthUseCase) UpdateProfile(ctx context.Context, actor *entity.User, input ProfileUpdateInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		if existing, err := uc.userRepo.GetByUsername(ctx, username); err == nil {
			if existing.ID != user.ID {
				return nil, errors.Conflict("Username already taken")
			}
		} else if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		user.Username = username
	}
	if input.Email != nil {
		if existing, err := uc.userRepo.GetByEmail(ctx, *input.Email); err == nil {
			if existing.ID != user.ID {
				return nil, errors.Conflict("Email already in use")
			}
		} else if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		user.Email = *input.Email
	}
	if input.Phone != nil {
		user.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Country != nil {
		user.Country = strings.TrimSpace(*input.Country)
	}
	if input.Address != nil {
		user.Address = strings.TrimSpace(*input.Address)
	}
	if input.AvatarURL != nil {
		user.AvatarURL = strings.TrimSpace(*input.AvatarURL)
	}
	if input.Bio != nil {
		user.Bio = strings.TrimSpace(*input.Bio)
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *AuthUseCase) ChangePassword(ctx context.Context, actor *entity.User, currentPassword, newPassword string) error {
	user, err := uc.userRepo.GetByID(ctx, actor.ID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(currentPassword)) != nil {
		return errors.Validation("Current password is incorrect", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), uc.bcryptCost)
	if err != nil {
		return errors.Internal("Failed to hash password", err)
	}

	user.HashedPassword = string(hashed)
	return uc.userRepo.Update(ctx, user)
}
