package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/annelie/wax/internal/core/domain"
	"github.com/annelie/wax/internal/core/repository"
	"github.com/annelie/wax/pkg/result"
)

var (
	usernameRe = regexp.MustCompile(`^[a-z0-9_]{3,32}$`)
	emailRe    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	upperRe    = regexp.MustCompile(`[A-Z]`)
	lowerRe    = regexp.MustCompile(`[a-z]`)
	digitRe    = regexp.MustCompile(`[0-9]`)
)

type UserService struct {
	userRepo repository.UserRepository
	authServ *AuthService
}

func NewUserService(userRepo repository.UserRepository, authServ *AuthService) *UserService {
	return &UserService{
		userRepo: userRepo,
		authServ: authServ,
	}
}

// SignUp validates and registers a new user. All violations, including a
// taken username, are reported together in one validation error. New users
// get the editor role; admins are created via the CLI.
func (s *UserService) SignUp(ctx context.Context, username, email, password string) result.Of[*domain.User] {
	var details []string

	if !usernameRe.MatchString(username) {
		details = append(details, "Username must be 3-32 lowercase letters, digits or underscores")
	} else {
		_, err := s.userRepo.FindByUsername(ctx, username)
		if err == nil {
			details = append(details, "Username is already taken")
		} else if !errors.Is(err, repository.ErrNotFound) {
			return result.FailureOf[*domain.User](result.InternalFrom(err))
		}
	}

	if !emailRe.MatchString(email) {
		details = append(details, "Email is invalid")
	}

	details = append(details, validatePassword(password)...)

	if len(details) > 0 {
		return result.ToResultOf[*domain.User](result.Validation("sign-up failed validation", details...))
	}

	hash, err := s.authServ.HashPassword(password)
	if err != nil {
		return result.FailureOf[*domain.User](result.InternalFrom(err))
	}

	user := domain.NewUser(username, email, hash, domain.RoleEditor)
	if err := s.userRepo.Create(ctx, user); err != nil {
		return result.FailureOf[*domain.User](result.InternalFrom(err))
	}
	return result.SuccessOf(user)
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(ctx context.Context, id string) result.Of[*domain.User] {
	user, err := s.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return result.FailureOf[*domain.User](result.NotFound(fmt.Sprintf("user not found: %s", id)))
	}
	if err != nil {
		return result.FailureOf[*domain.User](result.InternalFrom(err))
	}
	return result.SuccessOf(user)
}

func validatePassword(password string) []string {
	var details []string
	if len(password) < 8 {
		details = append(details, "Password must be at least 8 characters")
	}
	if !upperRe.MatchString(password) || !lowerRe.MatchString(password) || !digitRe.MatchString(password) {
		details = append(details, "Password must contain upper and lower case letters and a digit")
	}
	return details
}
