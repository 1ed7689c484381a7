package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"github.com/Kouaj/Notations-sub000/database"
	"github.com/Kouaj/Notations-sub000/entities"
	"github.com/Kouaj/Notations-sub000/pkg/parcelle/repository"
	"github.com/Kouaj/Notations-sub000/pkg/selection"
)

type parcelleRepo struct {
	m   *database.Manager
	sel *selection.Store
}

func New(m *database.Manager, sel *selection.Store) repository.ParcelleRepository {
	return &parcelleRepo{m: m, sel: sel}
}

func (r *parcelleRepo) GetAll(ctx context.Context) ([]entities.Parcelle, error) {
	var out []entities.Parcelle
	err := r.m.RunTransaction(ctx, database.ReadOnly, func(tx *gorm.DB) error {
		return tx.Find(&out).Error
	})
	return out, err
}

func (r *parcelleRepo) GetByID(ctx context.Context, id uint) (*entities.Parcelle, error) {
	var rows []entities.Parcelle
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

func (r *parcelleRepo) GetByUser(ctx context.Context, userID string) ([]entities.Parcelle, error) {
	var out []entities.Parcelle
	err := r.m.RunTransaction(ctx, database.ReadOnly, func(tx *gorm.DB) error {
		return tx.Where("user_id = ?", userID).Find(&out).Error
	})
	return out, err
}

func (r *parcelleRepo) GetByReseau(ctx context.Context, reseauID uint) ([]entities.Parcelle, error) {
	var out []entities.Parcelle
	err := r.m.RunTransaction(ctx, database.ReadOnly, func(tx *gorm.DB) error {
		return tx.Where("reseau_id = ?", reseauID).Find(&out).Error
	})
	return out, err
}

func (r *parcelleRepo) Save(ctx context.Context, p *entities.Parcelle) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return r.m.RunTransaction(ctx, database.ReadWrite, func(tx *gorm.DB) error {
		return tx.Save(p).Error
	})
}

// Delete removes the parcelle and its placettes. Two statements, one
// transaction.
func (r *parcelleRepo) Delete(ctx context.Context, id uint) error {
	return r.m.RunTransaction(ctx, database.ReadWrite, func(tx *gorm.DB) error {
		if err := tx.Where("parcelle_id = ?", id).Delete(&entities.Placette{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Parcelle{}).Error
	})
}

func (r *parcelleRepo) Selected(ctx context.Context) (*entities.Parcelle, error) {
	var p entities.Parcelle
	ok, err := r.sel.Get(ctx, selection.KindSelectedParcelle, &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

func (r *parcelleRepo) SetSelected(ctx context.Context, p *entities.Parcelle) error {
	if p == nil {
		return r.sel.Clear(ctx, selection.KindSelectedParcelle)
	}
	return r.sel.Set(ctx, selection.KindSelectedParcelle, p)
}

func (r *parcelleRepo) GetPlacettes(ctx context.Context, parcelleID uint) ([]entities.Placette, error) {
	var out []entities.Placette
	err := r.m.RunTransaction(ctx, database.ReadOnly, func(tx *gorm.DB) error {
		return tx.Where("parcelle_id = ?", parcelleID).Find(&out).Error
	})
	return out, err
}

func (r *parcelleRepo) SavePlacette(ctx context.Context, p *entities.Placette) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return r.m.RunTransaction(ctx, database.ReadWrite, func(tx *gorm.DB) error {
		return tx.Save(p).Error
	})
}

func (r *parcelleRepo) DeletePlacette(ctx context.Context, id uint) error {
	return r.m.RunTransaction(ctx, database.ReadWrite, func(tx *gorm.DB) error {
		return tx.Where("id = ?", id).Delete(&entities.Placette{}).Error
	})
}
