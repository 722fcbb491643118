package db

import (
	"github.com/muratfirtina/teklif-sistemi-sub002/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notification *models.Notification) error
	ListUnread(userID uint, limit int) ([]models.Notification, error)
	CountUnread(userID uint) (int64, error)
	MarkRead(notificationID, userID uint) (bool, error)
	MarkAllRead(userID uint) (int64, error)
}

type notificationRepo struct {
	DB *gorm.DB
}

func NewNotificationRepo(db *GormDB) NotificationRepository {
	return &notificationRepo{db.DB}
}

func (r *notificationRepo) Create(notification *models.Notification) error {
	if err := r.DB.Create(notification).Error; err != nil {
		return errors.Wrap(err, "creating notification")
	}
	return nil
}

// ListUnread returns at most limit unread notifications for the user,
// newest first. Ties on created_at are broken by id descending so the
// ordering stays deterministic.
func (r *notificationRepo) ListUnread(userID uint, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.DB.
		Where("user_id = ? AND is_read = ?", userID, false).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, errors.Wrap(err, "listing unread notifications")
	}
	return notifications, nil
}

func (r *notificationRepo) CountUnread(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "counting unread notifications")
	}
	return count, nil
}

// MarkRead flips a single notification to read. Ownership is enforced in
// the WHERE clause rather than application logic, so a user can never mark
// another user's notification. Marking an already-read notification is a
// no-op and reports false.
func (r *notificationRepo) MarkRead(notificationID, userID uint) (bool, error) {
	result := r.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ? AND is_read = ?", notificationID, userID, false).
		Update("is_read", true)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "marking notification read")
	}
	return result.RowsAffected > 0, nil
}

func (r *notificationRepo) MarkAllRead(userID uint) (int64, error) {
	result := r.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "marking all notifications read")
	}
	return result.RowsAffected, nil
}
