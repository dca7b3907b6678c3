package fleet

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freightdesk/fleetadmin/internal/pkg/dbctx"
)

// Helpers shared by the user-owned tables (broker, driver, owner, lorry).

func getOwned[T any](dbc dbctx.Context, db *gorm.DB, userID uuid.UUID, id uint) (*T, error) {
	var results []*T
	if err := dbc.DB(db).
		Where("id = ? AND user_id = ?", id, userID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

// updateOwned writes every column of row except the immutable ones and
// reports whether a row owned by userID was touched.
func updateOwned[T any](dbc dbctx.Context, db *gorm.DB, userID uuid.UUID, id uint, row *T) (bool, error) {
	res := dbc.DB(db).
		Model(row).
		Where("id = ? AND user_id = ?", id, userID).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func deleteOwned[T any](dbc dbctx.Context, db *gorm.DB, userID uuid.UUID, id uint) (bool, error) {
	var model T
	res := dbc.DB(db).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
