package user

import (
	"fmt"

	"lumea/models"
)

// ListUsers returns all accounts (admin surface).
func (s *DefaultUserService) ListUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}

// SetUserRole promotes or demotes an account. Staff accounts drive the team
// app; admins get the dashboard.
func (s *DefaultUserService) SetUserRole(userID, role string) error {
	switch role {
	case models.RoleCustomer, models.RoleStaff, models.RoleAdmin:
	default:
		return fmt.Errorf("unknown role %q", role)
	}
	return s.Repo.SetRole(userID, role)
}

// DeleteUser removes an account and revokes its sessions.
func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.Repo.Delete(userID); err != nil {
		return err
	}
	return s.SignOut(userID)
}
