package dao

import (
	"context"

	"Scribe/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MuteDAO struct {
	Repo[models.Mute]
}

func NewMuteDAO(db *gorm.DB) *MuteDAO {
	return &MuteDAO{Repo: NewRepo[models.Mute](db)}
}

func (d *MuteDAO) WithTx(tx *gorm.DB) *MuteDAO {
	return &MuteDAO{Repo: NewRepo[models.Mute](tx)}
}

// IsMuted reports whether userID has muted mutedUserID.
func (d *MuteDAO) IsMuted(ctx context.Context, userID, mutedUserID int64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND muted_user_id = ?", userID, mutedUserID)
}

func (d *MuteDAO) Insert(ctx context.Context, userID, mutedUserID int64) error {
	mute := models.Mute{UserID: userID, MutedUserID: mutedUserID}
	return d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&mute).Error
}

func (d *MuteDAO) Remove(ctx context.Context, userID, mutedUserID int64) error {
	return d.Db.WithContext(ctx).
		Where("user_id = ? AND muted_user_id = ?", userID, mutedUserID).
		Delete(&models.Mute{}).Error
}
