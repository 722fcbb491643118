package server

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/muratfirtina/teklif-sistemi-sub002/models"
	"github.com/muratfirtina/teklif-sistemi-sub002/server/response"
)

// defaultUnreadLimit bounds the notification dropdown.
const defaultUnreadLimit = 10

// handleListUnreadNotifications returns the unread dropdown items for
// the current user. A storage failure is logged and degrades to an empty
// list so the page still renders.
func (s *Server) handleListUnreadNotifications() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)

		limit := defaultUnreadLimit
		if raw := c.Query("limit"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
				limit = parsed
			}
		}

		notifications, err := s.NotificationService.ListUnread(userID, limit)
		if err != nil {
			log.Printf("listing unread notifications for user %d: %v", userID, err)
			response.JSON(c, "", http.StatusOK, []models.NotificationResponse{}, nil)
			return
		}

		response.JSON(c, "", http.StatusOK, notifications, nil)
	}
}

// handleUnreadNotificationCount powers the badge. Failures degrade to 0.
func (s *Server) handleUnreadNotificationCount() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)

		count, err := s.NotificationService.CountUnread(userID)
		if err != nil {
			log.Printf("counting unread notifications for user %d: %v", userID, err)
			count = 0
		}

		response.JSON(c, "", http.StatusOK, gin.H{"count": count}, nil)
	}
}

func (s *Server) handleMarkNotificationRead() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)

		notificationID, err := parseIDParam(c, "id")
		if err != nil {
			response.JSON(c, "invalid notification id", http.StatusBadRequest, nil, err)
			return
		}

		changed, err := s.NotificationService.MarkRead(notificationID, userID)
		if err != nil {
			log.Printf("marking notification %d read for user %d: %v", notificationID, userID, err)
			changed = false
		}

		response.JSON(c, "", http.StatusOK, gin.H{"changed": changed}, nil)
	}
}

func (s *Server) handleMarkAllNotificationsRead() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)

		changed, err := s.NotificationService.MarkAllRead(userID)
		if err != nil {
			log.Printf("marking all notifications read for user %d: %v", userID, err)
			changed = 0
		}

		response.JSON(c, "", http.StatusOK, gin.H{"changed": changed}, nil)
	}
}
