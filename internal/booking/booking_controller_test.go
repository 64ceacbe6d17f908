package booking

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RohanKadam-7/boxgames/internal/common"
	"github.com/RohanKadam-7/boxgames/internal/user"
)

// fakeSlot is the slice of slot state the booking engine touches.
type fakeSlot struct {
	SlotDate  string
	StartTime string
	IsBooked  bool
}

// fakeBookingRepository replicates the store's reserve/cancel semantics in
// memory: the conditional flip of IsBooked under a single lock gives the same
// one-winner guarantee the SQL conditional update does.
type fakeBookingRepository struct {
	mu       sync.Mutex
	slots    map[string]*fakeSlot
	bookings map[string]*Booking
	nextID   int
}

func newFakeBookingRepository() *fakeBookingRepository {
	return &fakeBookingRepository{
		slots:    make(map[string]*fakeSlot),
		bookings: make(map[string]*Booking),
	}
}

func (f *fakeBookingRepository) addSlot(id string, start time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.slots[id] = &fakeSlot{
		SlotDate:  start.Format("2006-01-02"),
		StartTime: start.Format("15:04"),
	}
}

func (f *fakeBookingRepository) Reserve(userID, slotID string) (*Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	slot, ok := f.slots[slotID]
	if !ok {
		return nil, common.ErrNotFound
	}
	if slot.IsBooked {
		return nil, common.ErrSlotAlreadyBooked
	}
	slot.IsBooked = true

	f.nextID++
	b := &Booking{
		ID:       fmt.Sprintf("b-%d", f.nextID),
		UserID:   userID,
		SlotID:   slotID,
		BookedAt: time.Now().UTC(),
	}
	f.bookings[b.ID] = b
	return b, nil
}

func (f *fakeBookingRepository) Cancel(userID, bookingID string, now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.bookings[bookingID]
	if !ok || b.UserID != userID {
		return common.ErrNotFound
	}

	if slot, ok := f.slots[b.SlotID]; ok {
		cancellable, err := CancellableAt(slot.SlotDate, slot.StartTime, now)
		if err != nil {
			return err
		}
		if !cancellable {
			return common.ErrCancellationWindow
		}
		slot.IsBooked = false
	}
	delete(f.bookings, bookingID)
	return nil
}

func (f *fakeBookingRepository) ListByUser(userID string) ([]BookingDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	details := []BookingDetails{}
	for _, b := range f.bookings {
		if b.UserID == userID {
			details = append(details, BookingDetails{
				ID:       b.ID,
				UserID:   b.UserID,
				SlotID:   b.SlotID,
				BookedAt: b.BookedAt,
			})
		}
	}
	return details, nil
}

func asPrincipal(email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(common.ContextUserKey, &user.User{
			ID:    "u-" + email,
			Email: email,
			Role:  user.RolePlayer,
		})
		c.Next()
	}
}

func setupBookingRouter(repo BookingRepository, email string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewBookingController(repo)

	bookings := r.Group("/api/bookings")
	bookings.Use(asPrincipal(email))
	{
		bookings.POST("", controller.CreateBooking)
		bookings.GET("/my", controller.GetMyBookings)
		bookings.DELETE("/:booking_id", controller.CancelBooking)
	}
	return r
}

func reserveRequest(slotID string) *http.Request {
	body, _ := json.Marshal(BookingInput{SlotID: slotID})
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateBooking(t *testing.T) {
	repo := newFakeBookingRepository()
	repo.addSlot("slot-1", time.Now().UTC().Add(24*time.Hour))
	router := setupBookingRouter(repo, "player@example.com")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, reserveRequest("slot-1"))

	require.Equal(t, http.StatusCreated, w.Code)

	var b Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	assert.Equal(t, "player@example.com", b.UserID)
	assert.Equal(t, "slot-1", b.SlotID)
	assert.NotEmpty(t, b.ID)
}

func TestCreateBookingSlotMissing(t *testing.T) {
	repo := newFakeBookingRepository()
	router := setupBookingRouter(repo, "player@example.com")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, reserveRequest("no-such-slot"))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateBookingAlreadyBooked(t *testing.T) {
	repo := newFakeBookingRepository()
	repo.addSlot("slot-1", time.Now().UTC().Add(24*time.Hour))
	router := setupBookingRouter(repo, "player@example.com")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, reserveRequest("slot-1"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, reserveRequest("slot-1"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already booked")
}

func TestCreateBookingMissingSlotID(t *testing.T) {
	repo := newFakeBookingRepository()
	router := setupBookingRouter(repo, "player@example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConcurrentReservesSingleWinner(t *testing.T) {
	repo := newFakeBookingRepository()
	repo.addSlot("slot-1", time.Now().UTC().Add(24*time.Hour))
	router := setupBookingRouter(repo, "player@example.com")

	const attempts = 20
	codes := make(chan int, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			router.ServeHTTP(w, reserveRequest("slot-1"))
			codes <- w.Code
		}()
	}
	wg.Wait()
	close(codes)

	created, conflicts := 0, 0
	for code := range codes {
		switch code {
		case http.StatusCreated:
			created++
		case http.StatusBadRequest:
			conflicts++
		default:
			t.Fatalf("unexpected status %d", code)
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, attempts-1, conflicts)
}

func TestGetMyBookings(t *testing.T) {
	repo := newFakeBookingRepository()
	repo.addSlot("slot-1", time.Now().UTC().Add(24*time.Hour))
	_, err := repo.Reserve("player@example.com", "slot-1")
	require.NoError(t, err)

	router := setupBookingRouter(repo, "player@example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings/my", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var list []BookingDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "slot-1", list[0].SlotID)
}

func TestGetMyBookingsExcludesOthers(t *testing.T) {
	repo := newFakeBookingRepository()
	repo.addSlot("slot-1", time.Now().UTC().Add(24*time.Hour))
	_, err := repo.Reserve("other@example.com", "slot-1")
	require.NoError(t, err)

	router := setupBookingRouter(repo, "player@example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bookings/my", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var list []BookingDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Empty(t, list)
}

func TestCancelBooking(t *testing.T) {
	repo := newFakeBookingRepository()
	repo.addSlot("slot-1", time.Now().UTC().Add(24*time.Hour))
	b, err := repo.Reserve("player@example.com", "slot-1")
	require.NoError(t, err)

	router := setupBookingRouter(repo, "player@example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/bookings/"+b.ID, nil))

	require.Equal(t, http.StatusOK, w.Code)

	// The slot is free again.
	assert.False(t, repo.slots["slot-1"].IsBooked)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, reserveRequest("slot-1"))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCancelBookingInsideWindow(t *testing.T) {
	repo := newFakeBookingRepository()
	repo.addSlot("slot-1", time.Now().UTC().Add(30*time.Minute))
	b, err := repo.Reserve("player@example.com", "slot-1")
	require.NoError(t, err)

	router := setupBookingRouter(repo, "player@example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/bookings/"+b.ID, nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cannot cancel")

	// The booking survives.
	assert.True(t, repo.slots["slot-1"].IsBooked)
}

func TestCancelBookingNotFound(t *testing.T) {
	repo := newFakeBookingRepository()
	router := setupBookingRouter(repo, "player@example.com")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/bookings/no-such-booking", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCancelForeignBookingLooksAbsent(t *testing.T) {
	repo := newFakeBookingRepository()
	repo.addSlot("slot-1", time.Now().UTC().Add(24*time.Hour))
	b, err := repo.Reserve("other@example.com", "slot-1")
	require.NoError(t, err)

	router := setupBookingRouter(repo, "player@example.com")

	foreign := httptest.NewRecorder()
	router.ServeHTTP(foreign, httptest.NewRequest(http.MethodDelete, "/api/bookings/"+b.ID, nil))

	absent := httptest.NewRecorder()
	router.ServeHTTP(absent, httptest.NewRequest(http.MethodDelete, "/api/bookings/no-such-booking", nil))

	// Someone else's booking and a nonexistent one are indistinguishable.
	assert.Equal(t, http.StatusNotFound, foreign.Code)
	assert.Equal(t, absent.Code, foreign.Code)
	assert.Equal(t, absent.Body.String(), foreign.Body.String())
}

func TestCancelBookingOrphanedSlot(t *testing.T) {
	repo := newFakeBookingRepository()
	repo.addSlot("slot-1", time.Now().UTC().Add(30*time.Minute))
	b, err := repo.Reserve("player@example.com", "slot-1")
	require.NoError(t, err)

	// Delete the slot out from under the booking; the window no longer applies.
	repo.mu.Lock()
	delete(repo.slots, "slot-1")
	repo.mu.Unlock()

	router := setupBookingRouter(repo, "player@example.com")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/bookings/"+b.ID, nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
