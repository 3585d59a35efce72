package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docstream/docstream/constants"
	"github.com/docstream/docstream/gen/ent"
	entuser "github.com/docstream/docstream/gen/ent/user"
	"github.com/docstream/docstream/internal/common"
	"github.com/docstream/docstream/internal/entity"
	"github.com/docstream/docstream/internal/utils"
)

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// GetOrCreateByEmail upserts a user on first login. The second return is
	// true when the user was newly created.
	GetOrCreateByEmail(ctx context.Context, email, name string) (*entity.User, bool, error)
	SetPlan(ctx context.Context, id uuid.UUID, plan constants.PlanTier) (*entity.User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type userRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewUserRepository(client *ent.Client, logger *slog.Logger) UserRepository {
	return &userRepository{
		client: client,
		logger: logger,
	}
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, err := r.client.User.Query().Where(entuser.ID(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NewAppError("USER_NOT_FOUND", "user does not exist", common.ErrNotFound)
		}
		return nil, err
	}
	return utils.ToUser(u), nil
}

func (r *userRepository) GetOrCreateByEmail(ctx context.Context, email, name string) (*entity.User, bool, error) {
	if existing, err := r.client.User.Query().Where(entuser.Email(email)).Only(ctx); err == nil {
		return utils.ToUser(existing), false, nil
	} else if !ent.IsNotFound(err) {
		r.logger.Error("failed to look up user by email", "email", email, "error", err)
		return nil, false, err
	}

	u, err := r.client.User.Create().
		SetEmail(email).
		SetName(name).
		Save(ctx)
	if err != nil {
		// a concurrent first login can win the unique(email) race
		if ent.IsConstraintError(err) {
			existing, rerr := r.client.User.Query().Where(entuser.Email(email)).Only(ctx)
			if rerr == nil {
				return utils.ToUser(existing), false, nil
			}
		}
		r.logger.Error("failed to create user", "email", email, "error", err)
		return nil, false, err
	}
	return utils.ToUser(u), true, nil
}

func (r *userRepository) SetPlan(ctx context.Context, id uuid.UUID, plan constants.PlanTier) (*entity.User, error) {
	u, err := r.client.User.UpdateOneID(id).SetPlan(string(plan)).Save(ctx)
	if err != nil {
		r.logger.Error("failed to set user plan", "user_id", id, "plan", plan, "error", err)
		return nil, err
	}
	return utils.ToUser(u), nil
}

func (r *userRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.client.User.Query().Where(entuser.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check user existence", "user_id", id, "error", err)
		return false, err
	}
	return exists, nil
}
