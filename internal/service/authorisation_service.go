package service

import (
	"context"

	"delivery-service/internal/models"

	"github.com/rs/zerolog/log"
)

// UserAPI reports the role of a user id
type UserAPI interface {
	GetUserType(ctx context.Context, userID int64) (models.UserType, error)
}

// AuthorisationService answers role questions about callers. Admins hold every role.
type AuthorisationService struct {
	users UserAPI
}

// NewAuthorisationService creates a new authorisation service
func NewAuthorisationService(users UserAPI) *AuthorisationService {
	return &AuthorisationService{users: users}
}

// IsValid reports whether id is a well-formed identifier
func (s *AuthorisationService) IsValid(id int64) bool {
	return id >= 0
}

func (s *AuthorisationService) userType(ctx context.Context, id int64) (models.UserType, bool) {
	if !s.IsValid(id) {
		return "", false
	}

	userType, err := s.users.GetUserType(ctx, id)
	if err != nil {
		log.Debug().Err(err).Int64("user_id", id).Msg("user type lookup failed")
		return "", false
	}
	return userType, true
}

func (s *AuthorisationService) hasRole(ctx context.Context, id int64, role models.UserType) bool {
	userType, ok := s.userType(ctx, id)
	return ok && (userType == role || userType == models.UserTypeAdmin)
}

func (s *AuthorisationService) IsCustomer(ctx context.Context, id int64) bool {
	return s.hasRole(ctx, id, models.UserTypeCustomer)
}

func (s *AuthorisationService) IsVendor(ctx context.Context, id int64) bool {
	return s.hasRole(ctx, id, models.UserTypeVendor)
}

func (s *AuthorisationService) IsCourier(ctx context.Context, id int64) bool {
	return s.hasRole(ctx, id, models.UserTypeCourier)
}

func (s *AuthorisationService) IsAdmin(ctx context.Context, id int64) bool {
	return s.hasRole(ctx, id, models.UserTypeAdmin)
}

// IsUser reports whether id belongs to a user of any known role
func (s *AuthorisationService) IsUser(ctx context.Context, id int64) bool {
	userType, ok := s.userType(ctx, id)
	if !ok {
		return false
	}

	switch userType {
	case models.UserTypeCustomer, models.UserTypeVendor, models.UserTypeCourier, models.UserTypeAdmin:
		return true
	}
	return false
}
