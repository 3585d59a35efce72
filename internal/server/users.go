package server

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/docstream/docstream/constants"
	v1 "github.com/docstream/docstream/gen/proto/docstream/v1"
	"github.com/docstream/docstream/internal/common"
	"github.com/docstream/docstream/internal/repository"
	"github.com/docstream/docstream/internal/utils"
)

type UsersService struct {
	v1.UnimplementedUsersServiceServer
	users  repository.UserRepository
	usage  repository.UsageRepository
	logger *slog.Logger
}

func NewUsersService(users repository.UserRepository, usage repository.UsageRepository, logger *slog.Logger) *UsersService {
	return &UsersService{users: users, usage: usage, logger: logger}
}

func (s *UsersService) CreateUser(ctx context.Context, req *v1.CreateUserRequest) (*v1.CreateUserResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.GetEmail()))
	if email == "" {
		return nil, status.Error(codes.InvalidArgument, "email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, status.Error(codes.InvalidArgument, "email is not valid")
	}

	user, created, err := s.users.GetOrCreateByEmail(ctx, email, strings.TrimSpace(req.GetName()))
	if err != nil {
		s.logger.Error("create user failed", "email", email, "error", err)
		return nil, status.Error(codes.Internal, "create user failed")
	}
	return &v1.CreateUserResponse{User: toProtoUser(user), Created: created}, nil
}

func (s *UsersService) GetUser(ctx context.Context, req *v1.GetUserRequest) (*v1.GetUserResponse, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	return &v1.GetUserResponse{User: toProtoUser(user)}, nil
}

func (s *UsersService) SetPlan(ctx context.Context, req *v1.SetPlanRequest) (*v1.SetPlanResponse, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	plan := constants.PlanTier(strings.ToLower(strings.TrimSpace(req.GetPlan())))
	valid := false
	for _, p := range constants.PlanTiers {
		if string(plan) == p {
			valid = true
			break
		}
	}
	if !valid {
		return nil, status.Errorf(codes.InvalidArgument, "unknown plan %q", req.GetPlan())
	}

	user, err := s.users.SetPlan(ctx, userID, plan)
	if err != nil {
		s.logger.Error("set plan failed", "user_id", userID, "plan", plan, "error", err)
		return nil, status.Error(codes.Internal, "set plan failed")
	}
	s.logger.Info("user.plan_changed", "user_id", userID, "plan", plan)
	return &v1.SetPlanResponse{User: toProtoUser(user)}, nil
}

func (s *UsersService) GetUsage(ctx context.Context, req *v1.GetUsageRequest) (*v1.GetUsageResponse, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}

	month := strings.TrimSpace(req.GetMonth())
	if month == "" {
		month = utils.MonthKey(time.Now())
	} else if _, err := time.Parse("2006-01", month); err != nil {
		return nil, status.Error(codes.InvalidArgument, "month must be YYYY-MM")
	}

	used, err := s.usage.Current(ctx, userID, month)
	if err != nil {
		s.logger.Error("get usage failed", "user_id", userID, "month", month, "error", err)
		return nil, status.Error(codes.Internal, "get usage failed")
	}

	resp := &v1.GetUsageResponse{Month: month, Used: int32(used)}
	if limit, bounded := constants.MonthlyLimit(user.Plan); bounded {
		resp.Limit = int32(limit)
		if remaining := limit - used; remaining > 0 {
			resp.Remaining = int32(remaining)
		}
	}
	return resp, nil
}

func parseUserID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "user_id must be a UUID")
	}
	return id, nil
}
