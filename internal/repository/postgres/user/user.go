package user

import (
	"context"
	"database/sql"
	"net/http"
	"strings"

	"crm/backend/foundation/web"
	"crm/backend/internal/auth"
	"crm/backend/internal/entity"
	"crm/backend/internal/pkg/repository/postgresql"
	"crm/backend/internal/repository/postgres"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"golang.org/x/crypto/bcrypt"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// GetByEmail returns the full account row, password hash included. Login
// is the only caller; the generic message keeps unknown emails
// indistinguishable from wrong passwords.
func (r Repository) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	var detail entity.User

	err := r.NewSelect().Model(&detail).Where("email = ?", email).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.User{}, web.NewRequestError(errors.New("invalid email or password"), http.StatusUnauthorized)
	}
	if err != nil {
		return entity.User{}, web.NewRequestError(errors.Wrap(err, "selecting user by email"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) GetById(ctx context.Context, id int) (entity.User, error) {
	var detail entity.User

	err := r.NewSelect().Model(&detail).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.User{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.User{}, web.NewRequestError(errors.Wrap(err, "selecting user"), http.StatusInternalServerError)
	}

	return detail, nil
}

// Register creates an account and, for the employee role, its linked
// profile inside one transaction so a crash can never leave the pair out
// of sync.
func (r Repository) Register(ctx context.Context, request RegisterRequest) (AccountView, error) {
	if err := r.ValidateStruct(&request, "Email", "Password", "Name"); err != nil {
		return AccountView{}, err
	}

	role := auth.RoleEmployee
	if request.Role != nil {
		role = strings.ToLower(*request.Role)
	}
	if role != auth.RoleEmployee && role != auth.RoleAdmin {
		return AccountView{}, web.NewRequestError(errors.New("incorrect role. role should be employee or admin"), http.StatusBadRequest)
	}

	exists, err := r.NewSelect().Model((*entity.User)(nil)).Where("email = ?", *request.Email).Exists(ctx)
	if err != nil {
		return AccountView{}, web.NewRequestError(errors.Wrap(err, "email check"), http.StatusInternalServerError)
	}
	if exists {
		return AccountView{}, web.NewRequestError(postgres.ErrEmailTaken, http.StatusBadRequest)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
	if err != nil {
		return AccountView{}, web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
	}

	account := entity.User{
		Email:    *request.Email,
		Password: string(hash),
		Name:     *request.Name,
		Role:     role,
		IsActive: true,
	}

	err = r.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(&account).Returning("id, created_at").Exec(ctx); err != nil {
			return errors.Wrap(err, "creating user")
		}

		if account.Role != auth.RoleEmployee {
			return nil
		}

		profile := entity.Employee{
			UserID:   &account.ID,
			Name:     account.Name,
			Email:    account.Email,
			IsActive: true,
		}
		if _, err := tx.NewInsert().Model(&profile).Exec(ctx); err != nil {
			return errors.Wrap(err, "creating employee profile")
		}
		return nil
	})
	if err != nil {
		return AccountView{}, web.NewRequestError(err, http.StatusBadRequest)
	}

	return AccountView{
		ID:        account.ID,
		Email:     account.Email,
		Name:      account.Name,
		Role:      account.Role,
		IsActive:  account.IsActive,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}, nil
}

// Validate confirms the account exists and is active. Used by downstream
// authorization.
func (r Repository) Validate(ctx context.Context, id int) error {
	detail, err := r.GetById(ctx, id)
	if err != nil {
		return err
	}
	if !detail.IsActive {
		return web.NewRequestError(errors.New("user not found or inactive"), http.StatusNotFound)
	}
	return nil
}
