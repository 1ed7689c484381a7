package repositoryImp

import (
	"context"

	"gorm.io/gorm"

	"github.com/Kouaj/Notations-sub000/database"
	"github.com/Kouaj/Notations-sub000/entities"
	"github.com/Kouaj/Notations-sub000/pkg/history/repository"
)

type historyRepo struct{ m *database.Manager }

func New(m *database.Manager) repository.HistoryRepository { return &historyRepo{m} }

func (r *historyRepo) GetAll(ctx context.Context) ([]entities.Notation, error) {
	var out []entities.Notation
	err := r.m.RunTransaction(ctx, database.ReadOnly, func(tx *gorm.DB) error {
		return tx.Order("date DESC, id DESC").Find(&out).Error
	})
	return out, err
}

func (r *historyRepo) GetByID(ctx context.Context, id uint) (*entities.Notation, error) {
	var rows []entities.Notation
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

func (r *historyRepo) GetByUser(ctx context.Context, userID string) ([]entities.Notation, error) {
	var out []entities.Notation
	err := r.m.RunTransaction(ctx, database.ReadOnly, func(tx *gorm.DB) error {
		return tx.Where("user_id = ?", userID).Order("date DESC, id DESC").Find(&out).Error
	})
	return out, err
}

func (r *historyRepo) GetByParcelle(ctx context.Context, parcelleID uint) ([]entities.Notation, error) {
	var out []entities.Notation
	err := r.m.RunTransaction(ctx, database.ReadOnly, func(tx *gorm.DB) error {
		return tx.Where("parcelle_id = ?", parcelleID).Order("date DESC, id DESC").Find(&out).Error
	})
	return out, err
}

// Save is a pure append: always an insert, never an update, so a stored
// record can never be mutated through this repository. The engine assigns
// the id when the caller left it zero.
func (r *historyRepo) Save(ctx context.Context, n *entities.Notation) error {
	return r.m.RunTransaction(ctx, database.ReadWrite, func(tx *gorm.DB) error {
		return tx.Create(n).Error
	})
}

func (r *historyRepo) Delete(ctx context.Context, id uint) error {
	return r.m.RunTransaction(ctx, database.ReadWrite, func(tx *gorm.DB) error {
		return tx.Where("id = ?", id).Delete(&entities.Notation{}).Error
	})
}
