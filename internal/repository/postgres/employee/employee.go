package employee

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"crm/backend/foundation/web"
	"crm/backend/internal/auth"
	"crm/backend/internal/entity"
	"crm/backend/internal/pkg/repository/postgresql"
	"crm/backend/internal/repository/postgres"

	"github.com/Azure/go-autorest/autorest/date"
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

// Create makes an account with the employee role and its profile in one
// transaction. Fails when the email already belongs to an account.
func (r Repository) Create(ctx context.Context, request CreateRequest) (entity.Employee, error) {
	if _, err := r.CheckClaims(ctx, auth.RoleAdmin); err != nil {
		return entity.Employee{}, err
	}

	if err := r.ValidateStruct(&request, "Name", "Email", "Password"); err != nil {
		return entity.Employee{}, err
	}

	exists, err := r.NewSelect().Model((*entity.User)(nil)).Where("email = ?", *request.Email).Exists(ctx)
	if err != nil {
		return entity.Employee{}, web.NewRequestError(errors.Wrap(err, "email check"), http.StatusInternalServerError)
	}
	if exists {
		return entity.Employee{}, web.NewRequestError(postgres.ErrEmailTaken, http.StatusBadRequest)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
	if err != nil {
		return entity.Employee{}, web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
	}

	joinDate, err := parseJoinDate(request.JoinDate)
	if err != nil {
		return entity.Employee{}, err
	}

	account := entity.User{
		Email:    *request.Email,
		Password: string(hash),
		Name:     *request.Name,
		Role:     auth.RoleEmployee,
		IsActive: true,
	}
	profile := entity.Employee{
		Name:       *request.Name,
		Email:      *request.Email,
		Phone:      request.Phone,
		Position:   request.Position,
		Department: request.Department,
		JoinDate:   joinDate,
		Address:    request.Address,
		Status:     request.Status,
		IsActive:   true,
	}

	err = r.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(&account).Returning("id").Exec(ctx); err != nil {
			return errors.Wrap(err, "creating user")
		}

		profile.UserID = &account.ID
		if _, err := tx.NewInsert().Model(&profile).Returning("id, created_at").Exec(ctx); err != nil {
			return errors.Wrap(err, "creating employee")
		}
		return nil
	})
	if err != nil {
		return entity.Employee{}, web.NewRequestError(err, http.StatusBadRequest)
	}

	return profile, nil
}

// GetList returns a page of profiles ordered by creation time, newest
// first, with the total row count for pagination.
func (r Repository) GetList(ctx context.Context, filter Filter) ([]entity.Employee, int, error) {
	page, limit := 1, 10
	if filter.Page != nil {
		page = *filter.Page
	}
	if filter.Limit != nil {
		limit = *filter.Limit
	}
	page, limit = web.ClampPage(page, limit)

	var list []entity.Employee
	count, err := r.NewSelect().
		Model(&list).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		ScanAndCount(ctx)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting employees"), http.StatusInternalServerError)
	}

	return list, count, nil
}

// GetById returns the profile with its attendance history.
func (r Repository) GetById(ctx context.Context, id int) (entity.Employee, error) {
	var detail entity.Employee

	err := r.NewSelect().
		Model(&detail).
		Relation("Attendances").
		Where("employee.id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Employee{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.Employee{}, web.NewRequestError(errors.Wrap(err, "selecting employee"), http.StatusInternalServerError)
	}

	return detail, nil
}

// GetByUserId returns the profile linked to an account.
func (r Repository) GetByUserId(ctx context.Context, userID int) (entity.Employee, error) {
	var detail entity.Employee

	err := r.NewSelect().Model(&detail).Where("user_id = ?", userID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.Employee{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return entity.Employee{}, web.NewRequestError(errors.Wrap(err, "selecting employee by user"), http.StatusInternalServerError)
	}

	return detail, nil
}

// UpdateColumns patches the profile and propagates email and password
// changes to the linked account inside the same transaction.
func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) (entity.Employee, error) {
	if _, err := r.CheckClaims(ctx, auth.RoleAdmin); err != nil {
		return entity.Employee{}, err
	}

	detail, err := r.GetById(ctx, request.ID)
	if err != nil {
		return entity.Employee{}, err
	}

	emailChanged := request.Email != nil && *request.Email != detail.Email
	if emailChanged {
		q := r.NewSelect().Model((*entity.User)(nil)).Where("email = ?", *request.Email)
		if detail.UserID != nil {
			q = q.Where("id != ?", *detail.UserID)
		}
		exists, err := q.Exists(ctx)
		if err != nil {
			return entity.Employee{}, web.NewRequestError(errors.Wrap(err, "email check"), http.StatusInternalServerError)
		}
		if exists {
			return entity.Employee{}, web.NewRequestError(postgres.ErrEmailTaken, http.StatusBadRequest)
		}
	}

	joinDate, err := parseJoinDate(request.JoinDate)
	if err != nil {
		return entity.Employee{}, err
	}

	now := time.Now()
	err = r.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		q := tx.NewUpdate().Table("employees").Where("id = ?", request.ID)

		if request.Name != nil {
			q.Set("name = ?", *request.Name)
			detail.Name = *request.Name
		}
		if request.Email != nil {
			q.Set("email = ?", *request.Email)
			detail.Email = *request.Email
		}
		if request.Phone != nil {
			q.Set("phone = ?", *request.Phone)
			detail.Phone = request.Phone
		}
		if request.Position != nil {
			q.Set("position = ?", *request.Position)
			detail.Position = request.Position
		}
		if request.Department != nil {
			q.Set("department = ?", *request.Department)
			detail.Department = request.Department
		}
		if joinDate != nil {
			q.Set("join_date = ?", *joinDate)
			detail.JoinDate = joinDate
		}
		if request.Address != nil {
			q.Set("address = ?", *request.Address)
			detail.Address = request.Address
		}
		if request.Status != nil {
			q.Set("status = ?", *request.Status)
			detail.Status = request.Status
		}
		q.Set("updated_at = ?", now)
		detail.UpdatedAt = &now

		if _, err := q.Exec(ctx); err != nil {
			return errors.Wrap(err, "updating employee")
		}

		if detail.UserID == nil || (request.Email == nil && request.Password == nil) {
			return nil
		}

		uq := tx.NewUpdate().Table("users").Where("id = ?", *detail.UserID)
		if request.Email != nil {
			uq.Set("email = ?", *request.Email)
		}
		if request.Password != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
			if err != nil {
				return errors.Wrap(err, "hashing password")
			}
			uq.Set("password = ?", string(hash))
		}
		uq.Set("updated_at = ?", now)

		if _, err := uq.Exec(ctx); err != nil {
			return errors.Wrap(err, "updating linked account")
		}
		return nil
	})
	if err != nil {
		return entity.Employee{}, web.NewRequestError(err, http.StatusBadRequest)
	}

	detail.Attendances = nil
	return detail, nil
}

// Delete hard-deletes the profile row. The account row and the
// historical attendance rows stay untouched.
func (r Repository) Delete(ctx context.Context, id int) error {
	if _, err := r.CheckClaims(ctx, auth.RoleAdmin); err != nil {
		return err
	}

	return r.DeleteRow(ctx, "employees", id)
}

// SetActive toggles the active flag. Idempotent.
func (r Repository) SetActive(ctx context.Context, id int, active bool) (entity.Employee, error) {
	if _, err := r.CheckClaims(ctx, auth.RoleAdmin); err != nil {
		return entity.Employee{}, err
	}

	result, err := r.NewUpdate().
		Table("employees").
		Set("is_active = ?", active).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return entity.Employee{}, web.NewRequestError(errors.Wrap(err, "updating employee active flag"), http.StatusInternalServerError)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return entity.Employee{}, web.NewRequestError(errors.Wrap(err, "reading rows affected"), http.StatusInternalServerError)
	}
	if affected == 0 {
		return entity.Employee{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}

	return r.GetById(ctx, id)
}

// GetActiveList returns every active profile ordered by name.
func (r Repository) GetActiveList(ctx context.Context) ([]entity.Employee, error) {
	var list []entity.Employee

	err := r.NewSelect().
		Model(&list).
		Where("is_active = TRUE").
		Order("name ASC").
		Scan(ctx)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting active employees"), http.StatusInternalServerError)
	}

	return list, nil
}

func parseJoinDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	d, err := date.ParseDate(*value)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "parsing joinDate"), http.StatusBadRequest)
	}
	return &d.Time, nil
}
