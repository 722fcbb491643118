package services

import (
	"fmt"
	"log"

	"github.com/muratfirtina/teklif-sistemi-sub002/db"
	"github.com/muratfirtina/teklif-sistemi-sub002/models"
)

// deepLinkTargets maps a notification's related type to the page the item
// links to. Types without an entry resolve to an empty link on purpose:
// only production orders have a real landing page today.
var deepLinkTargets = map[models.RelatedType]string{
	models.RelatedProductionOrder: "/production-orders/%d",
}

type NotificationService interface {
	Notify(userID uint, message string, related models.RelatedRef) (*models.Notification, error)
	FanoutToUsers(userIDs []uint, message string, related models.RelatedRef) int
	FanoutToRole(role string, message string, related models.RelatedRef) (int, error)
	ListUnread(userID uint, limit int) ([]models.NotificationResponse, error)
	CountUnread(userID uint) (int64, error)
	MarkRead(notificationID, userID uint) (bool, error)
	MarkAllRead(userID uint) (int64, error)
}

type notificationService struct {
	notificationRepo db.NotificationRepository
	authRepo         db.AuthRepository
}

func NewNotificationService(notificationRepo db.NotificationRepository, authRepo db.AuthRepository) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		authRepo:         authRepo,
	}
}

// DeepLink resolves a weak reference to a page link. Unknown or absent
// types produce "".
func DeepLink(related models.RelatedRef) string {
	target, ok := deepLinkTargets[related.Type]
	if !ok {
		return ""
	}
	return fmt.Sprintf(target, related.ID)
}

func (s *notificationService) Notify(userID uint, message string, related models.RelatedRef) (*models.Notification, error) {
	notification := &models.Notification{
		UserID:  userID,
		Message: message,
	}
	if related.Type != models.RelatedNone {
		id := related.ID
		notification.RelatedID = &id
		notification.RelatedType = related.Type
	}

	if err := s.notificationRepo.Create(notification); err != nil {
		return nil, err
	}
	return notification, nil
}

// FanoutToUsers delivers the same message to each user with independent
// writes. A failed write is logged and skipped so the remaining users
// still get theirs; the return value is the number of successes.
func (s *notificationService) FanoutToUsers(userIDs []uint, message string, related models.RelatedRef) int {
	delivered := 0
	for _, userID := range userIDs {
		if _, err := s.Notify(userID, message, related); err != nil {
			log.Printf("notification fanout: delivery to user %d failed: %v", userID, err)
			continue
		}
		delivered++
	}
	return delivered
}

func (s *notificationService) FanoutToRole(role string, message string, related models.RelatedRef) (int, error) {
	userIDs, err := s.authRepo.ListUserIDsByRole(role)
	if err != nil {
		return 0, fmt.Errorf("resolving role %q for fanout: %w", role, err)
	}
	return s.FanoutToUsers(userIDs, message, related), nil
}

func (s *notificationService) ListUnread(userID uint, limit int) ([]models.NotificationResponse, error) {
	notifications, err := s.notificationRepo.ListUnread(userID, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]models.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		n := &notifications[i]
		responses = append(responses, models.NotificationResponse{
			ID:          n.ID,
			Message:     n.Message,
			RelatedType: string(n.RelatedType),
			Link:        DeepLink(n.Related()),
			IsRead:      n.IsRead,
			CreatedAt:   n.CreatedAt,
		})
	}
	return responses, nil
}

func (s *notificationService) CountUnread(userID uint) (int64, error) {
	return s.notificationRepo.CountUnread(userID)
}

func (s *notificationService) MarkRead(notificationID, userID uint) (bool, error) {
	return s.notificationRepo.MarkRead(notificationID, userID)
}

func (s *notificationService) MarkAllRead(userID uint) (int64, error) {
	return s.notificationRepo.MarkAllRead(userID)
}
