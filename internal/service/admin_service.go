package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/manantri/campusfest/internal/dto"
	"github.com/manantri/campusfest/internal/model"
	"github.com/manantri/campusfest/internal/repository"
	"github.com/manantri/campusfest/pkg/apperror"
	"gorm.io/gorm"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

type AdminService interface {
	// SubmitLeadRequest files an organizer application for the identity.
	// Conflicts when a request is already pending or approved.
	SubmitLeadRequest(ctx context.Context, identityID string, input dto.LeadRequestInput) error
	ListPendingRequests(ctx context.Context) ([]*model.User, error)
	// ReviewLeadRequest approves or rejects a pending application. Only
	// admins may review.
	ReviewLeadRequest(ctx context.Context, adminIdentity, targetIdentity, action string) (string, error)
	// RemoveUser deletes the target and every event they created; tickets of
	// those events are cancelled rather than left dangling.
	RemoveUser(ctx context.Context, targetIdentity string) error
	IsCollegeLead(ctx context.Context, identityID string) (bool, error)
	GetAllUsers(ctx context.Context) ([]*model.User, error)
}

type adminService struct {
	users repository.UserRepository
}

func NewAdminService(users repository.UserRepository) AdminService {
	return &adminService{users: users}
}

func (s *adminService) SubmitLeadRequest(ctx context.Context, identityID string, input dto.LeadRequestInput) error {
	user, err := s.users.FindByIdentity(ctx, identityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("User not found")
		}
		return err
	}

	switch user.LeadRequest {
	case model.LeadRequestPending:
		return apperror.Conflict("Request already pending")
	case model.LeadRequestApproved:
		return apperror.Conflict("Request already approved")
	}

	user.LeadRequest = model.LeadRequestPending
	user.CollegeInfo = model.CollegeInfo{
		CollegeName:   input.CollegeName,
		Degree:        input.Degree,
		YearOfPassing: input.YearOfPassing,
		Agenda:        input.Agenda,
	}

	return s.users.Update(ctx, user)
}

func (s *adminService) ListPendingRequests(ctx context.Context) ([]*model.User, error) {
	return s.users.FindPendingLeadRequests(ctx)
}

func (s *adminService) ReviewLeadRequest(ctx context.Context, adminIdentity, targetIdentity, action string) (string, error) {
	admin, err := s.users.FindByIdentity(ctx, adminIdentity)
	if err != nil || !admin.IsAdmin {
		return "", apperror.Forbidden("Unauthorized")
	}

	target, err := s.users.FindByIdentity(ctx, targetIdentity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperror.NotFound("User not found")
		}
		return "", err
	}

	if target.LeadRequest != model.LeadRequestPending {
		return "", apperror.BadRequest("No pending request")
	}

	switch action {
	case ActionApprove:
		target.Role = model.RoleCollegeLead
		target.IsCollegeLead = true
		target.LeadRequest = model.LeadRequestApproved
	case ActionReject:
		target.LeadRequest = model.LeadRequestRejected
	default:
		return "", apperror.BadRequest("Invalid action")
	}

	if err := s.users.Update(ctx, target); err != nil {
		return "", err
	}

	return fmt.Sprintf("Request %sd", action), nil
}

func (s *adminService) RemoveUser(ctx context.Context, targetIdentity string) error {
	user, err := s.users.FindByIdentity(ctx, targetIdentity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound("User not found")
		}
		return err
	}

	return s.users.DeleteCascade(ctx, user)
}

func (s *adminService) IsCollegeLead(ctx context.Context, identityID string) (bool, error) {
	user, err := s.users.FindByIdentity(ctx, identityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperror.NotFound("User not found")
		}
		return false, err
	}

	if !user.IsCollegeLead {
		return false, apperror.Forbidden("User is not College Lead")
	}

	return true, nil
}

func (s *adminService) GetAllUsers(ctx context.Context) ([]*model.User, error) {
	return s.users.FindAll(ctx)
}
