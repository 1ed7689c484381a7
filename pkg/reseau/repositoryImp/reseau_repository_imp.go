package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"github.com/Kouaj/Notations-sub000/database"
	"github.com/Kouaj/Notations-sub000/entities"
	"github.com/Kouaj/Notations-sub000/pkg/reseau/repository"
	"github.com/Kouaj/Notations-sub000/pkg/selection"
)

type reseauRepo struct {
	m   *database.Manager
	sel *selection.Store
}

func New(m *database.Manager, sel *selection.Store) repository.ReseauRepository {
	return &reseauRepo{m: m, sel: sel}
}

func (r *reseauRepo) GetAll(ctx context.Context) ([]entities.Reseau, error) {
	var out []entities.Reseau
	err := r.m.RunTransaction(ctx, database.ReadOnly, func(tx *gorm.DB) error {
		return tx.Find(&out).Error
	})
	return out, err
}

func (r *reseauRepo) GetByID(ctx context.Context, id uint) (*entities.Reseau, error) {
	var rows []entities.Reseau
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

func (r *reseauRepo) GetByUser(ctx context.Context, userID string) ([]entities.Reseau, error) {
	var out []entities.Reseau
	err := r.m.RunTransaction(ctx, database.ReadOnly, func(tx *gorm.DB) error {
		return tx.Where("user_id = ?", userID).Find(&out).Error
	})
	return out, err
}

func (r *reseauRepo) Save(ctx context.Context, rs *entities.Reseau) error {
	if err := rs.Validate(); err != nil {
		return err
	}
	return r.m.RunTransaction(ctx, database.ReadWrite, func(tx *gorm.DB) error {
		return tx.Save(rs).Error
	})
}

func (r *reseauRepo) Delete(ctx context.Context, id uint) error {
	return r.m.RunTransaction(ctx, database.ReadWrite, func(tx *gorm.DB) error {
		return tx.Where("id = ?", id).Delete(&entities.Reseau{}).Error
	})
}

func (r *reseauRepo) Selected(ctx context.Context) (*entities.Reseau, error) {
	var rs entities.Reseau
	ok, err := r.sel.Get(ctx, selection.KindSelectedReseau, &rs)
	if err != nil || !ok {
		return nil, err
	}
	return &rs, nil
}

func (r *reseauRepo) SetSelected(ctx context.Context, rs *entities.Reseau) error {
	if rs == nil {
		return r.sel.Clear(ctx, selection.KindSelectedReseau)
	}
	return r.sel.Set(ctx, selection.KindSelectedReseau, rs)
}
