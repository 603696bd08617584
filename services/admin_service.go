package services

import (
	"slot-lab/domain"
	"slot-lab/errors"
	"slot-lab/repositories"
)

type IAdminService interface {
	// IsAuthorized reports whether the user may perform privileged
	// operations: the primary admin always may, anyone else must be in the
	// dynamic admin set. The shell calls this once before dispatching any
	// privileged command.
	IsAuthorized(userID string) (bool, error)

	// Add grants admin capability. Only the primary admin may call it.
	Add(target, actingUser string) (domain.AdminEntry, error)

	// Remove revokes admin capability. Only the primary admin may call it.
	Remove(target, actingUser string) error

	// List returns every stored admin entry, for the shell's registry view.
	// The primary admin is configured, not stored, so it is not listed.
	List() ([]domain.AdminEntry, error)
}

type AdminService struct {
	admins       repositories.IAdminRepository
	primaryAdmin string
}

func NewAdminService(admins repositories.IAdminRepository, primaryAdmin string) IAdminService {
	return &AdminService{admins: admins, primaryAdmin: primaryAdmin}
}

func (s *AdminService) IsAuthorized(userID string) (bool, error) {
	if userID == s.primaryAdmin {
		return true, nil
	}
	return s.admins.IsAdmin(userID)
}

func (s *AdminService) Add(target, actingUser string) (domain.AdminEntry, error) {
	if actingUser != s.primaryAdmin {
		return domain.AdminEntry{}, errors.ErrNotPrimaryAdmin
	}
	return s.admins.Add(target, actingUser)
}

func (s *AdminService) Remove(target, actingUser string) error {
	if actingUser != s.primaryAdmin {
		return errors.ErrNotPrimaryAdmin
	}
	return s.admins.Remove(target)
}

func (s *AdminService) List() ([]domain.AdminEntry, error) {
	return s.admins.List()
}
