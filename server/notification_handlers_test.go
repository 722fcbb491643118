package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/muratfirtina/teklif-sistemi-sub002/models"
)

// stubNotificationService fails every operation; the handlers are
// expected to degrade instead of surfacing the error.
type stubNotificationService struct {
	unread []models.NotificationResponse
	err    error
}

func (s *stubNotificationService) Notify(userID uint, message string, related models.RelatedRef) (*models.Notification, error) {
	return nil, s.err
}

func (s *stubNotificationService) FanoutToUsers(userIDs []uint, message string, related models.RelatedRef) int {
	return 0
}

func (s *stubNotificationService) FanoutToRole(role string, message string, related models.RelatedRef) (int, error) {
	return 0, s.err
}

func (s *stubNotificationService) ListUnread(userID uint, limit int) ([]models.NotificationResponse, error) {
	return s.unread, s.err
}

func (s *stubNotificationService) CountUnread(userID uint) (int64, error) {
	return int64(len(s.unread)), s.err
}

func (s *stubNotificationService) MarkRead(notificationID, userID uint) (bool, error) {
	return s.err == nil, s.err
}

func (s *stubNotificationService) MarkAllRead(userID uint) (int64, error) {
	return 0, s.err
}

func newNotificationTestRouter(svc *stubNotificationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	s := &Server{Policy: DefaultPolicy(), NotificationService: svc}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", uint(1))
		c.Set("userRole", models.RoleUser)
	})
	r.GET("/notifications/unread", s.handleListUnreadNotifications())
	r.GET("/notifications/unread/count", s.handleUnreadNotificationCount())
	r.POST("/notifications/:id/read", s.handleMarkNotificationRead())
	return r
}

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Status  string          `json:"status"`
}

func TestListUnreadDegradesToEmptyList(t *testing.T) {
	r := newNotificationTestRouter(&stubNotificationService{err: errors.New("db down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/notifications/unread", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 on storage failure, got %d", w.Code)
	}

	var body envelope
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	var items []models.NotificationResponse
	if err := json.Unmarshal(body.Data, &items); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected an empty list, got %d items", len(items))
	}
}

func TestUnreadCountDegradesToZero(t *testing.T) {
	r := newNotificationTestRouter(&stubNotificationService{
		unread: []models.NotificationResponse{{ID: 1}},
		err:    errors.New("db down"),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/notifications/unread/count", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 on storage failure, got %d", w.Code)
	}

	var body envelope
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	var data struct {
		Count int64 `json:"count"`
	}
	if err := json.Unmarshal(body.Data, &data); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
	if data.Count != 0 {
		t.Errorf("expected count 0, got %d", data.Count)
	}
}

func TestMarkReadDegradesToUnchanged(t *testing.T) {
	r := newNotificationTestRouter(&stubNotificationService{err: errors.New("db down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/notifications/5/read", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 on storage failure, got %d", w.Code)
	}

	var body envelope
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	var data struct {
		Changed bool `json:"changed"`
	}
	if err := json.Unmarshal(body.Data, &data); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
	if data.Changed {
		t.Error("expected changed=false when storage fails")
	}
}

func TestListUnreadHappyPath(t *testing.T) {
	r := newNotificationTestRouter(&stubNotificationService{
		unread: []models.NotificationResponse{
			{ID: 2, Message: "order completed", Link: "/production-orders/4"},
			{ID: 1, Message: "welcome"},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/notifications/unread", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body envelope
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	var items []models.NotificationResponse
	if err := json.Unmarshal(body.Data, &items); err != nil {
		t.Fatalf("decoding data: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Link != "/production-orders/4" {
		t.Errorf("expected link on first item, got %q", items[0].Link)
	}
}
