package repository

import (
	"context"

	"github.com/google/uuid"

	"supplier-marketplace/internal/domain/user"
	"supplier-marketplace/internal/infra"
	sqlc "supplier-marketplace/internal/infra/sqlc/generated"
	"supplier-marketplace/internal/pkg/pgconv"
	"supplier-marketplace/internal/usecase/queries"
)

type UserQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
	DeleteUser(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type UserRepository struct {
	queries UserQueries
}

func NewUserRepository(queries UserQueries) *UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

func (r *UserRepository) Create(ctx context.Context, db sqlc.DBTX, u *user.User) (*queries.UserView, error) {
	row, err := r.queries.CreateUser(ctx, db, sqlc.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create user", err)
	}

	return &queries.UserView{
		ID:        row.ID,
		Email:     row.Email,
		Role:      row.Role,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}

func (r *UserRepository) Delete(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error {
	affected, err := r.queries.DeleteUser(ctx, db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
