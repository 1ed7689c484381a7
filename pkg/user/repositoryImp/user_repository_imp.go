package repositoryImp

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Kouaj/Notations-sub000/database"
	"github.com/Kouaj/Notations-sub000/entities"
	"github.com/Kouaj/Notations-sub000/pkg/auth/credstore"
	"github.com/Kouaj/Notations-sub000/pkg/selection"
	"github.com/Kouaj/Notations-sub000/pkg/user/repository"
)

type userRepo struct {
	m     *database.Manager
	sel   *selection.Store
	creds *credstore.Store
}

func New(m *database.Manager, sel *selection.Store, creds *credstore.Store) repository.UserRepository {
	return &userRepo{m: m, sel: sel, creds: creds}
}

func (r *userRepo) GetAll(ctx context.Context) ([]entities.User, error) {
	var out []entities.User
	err := r.m.RunTransaction(ctx, database.ReadOnly, func(tx *gorm.DB) error {
		return tx.Find(&out).Error
	})
	return out, err
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*entities.User, error) {
	var rows []entities.User
	err := r.m.RunTransaction(ctx, database.ReadOnly, func(tx *gorm.DB) error {
		return tx.Where("id = ?", id).Limit(1).Find(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, database.ErrNotFound
	}
	return &rows[0], nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var rows []entities.User
	err := r.m.RunTransaction(ctx, database.ReadOnly, func(tx *gorm.DB) error {
		return tx.Where("email = ?", entities.NormalizeEmail(email)).Limit(1).Find(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, database.ErrNotFound
	}
	return &rows[0], nil
}

// Save is verified, not merely fired: after the transaction commits the
// record is read back, and absence is promoted to ErrVerifyFailed.
func (r *userRepo) Save(ctx context.Context, u *entities.User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	u.Email = entities.NormalizeEmail(u.Email)
	err := r.m.RunTransaction(ctx, database.ReadWrite, func(tx *gorm.DB) error {
		var dup []entities.User
		if err := tx.Where("email = ? AND id <> ?", u.Email, u.ID).Limit(1).Find(&dup).Error; err != nil {
			return err
		}
		if len(dup) > 0 {
			return repository.ErrEmailExists
		}
		return tx.Save(u).Error
	})
	if err != nil {
		return err
	}
	if _, err := r.GetByID(ctx, u.ID); err != nil {
		if database.IsNotFound(err) {
			return fmt.Errorf("user %s: %w", u.ID, database.ErrVerifyFailed)
		}
		return err
	}
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	return r.m.RunTransaction(ctx, database.ReadWrite, func(tx *gorm.DB) error {
		return tx.Where("id = ?", id).Delete(&entities.User{}).Error
	})
}

func (r *userRepo) Current(ctx context.Context) (*entities.User, error) {
	var u entities.User
	ok, err := r.sel.Get(ctx, selection.KindCurrentUser, &u)
	if err != nil || !ok {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) SetCurrent(ctx context.Context, u *entities.User) error {
	if u == nil {
		return r.sel.Clear(ctx, selection.KindCurrentUser)
	}
	return r.sel.Set(ctx, selection.KindCurrentUser, u)
}

func (r *userRepo) ResetAll(ctx context.Context) (bool, error) {
	err := r.m.RunTransaction(ctx, database.ReadWrite, func(tx *gorm.DB) error {
		return tx.Where("1 = 1").Delete(&entities.User{}).Error
	})
	if err != nil {
		return false, err
	}
	if err := r.SetCurrent(ctx, nil); err != nil {
		return false, err
	}
	if err := r.creds.DeleteAll(ctx); err != nil {
		return false, err
	}
	// Confirm both stores are actually empty before reporting success.
	users, err := r.GetAll(ctx)
	if err != nil {
		return false, err
	}
	n, err := r.creds.Count(ctx)
	if err != nil {
		return false, err
	}
	return len(users) == 0 && n == 0, nil
}
