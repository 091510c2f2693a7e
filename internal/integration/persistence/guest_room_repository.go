package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/parsonage/property-ops/internal/application/adapter"
	"github.com/parsonage/property-ops/internal/domain/entity"
	"github.com/parsonage/property-ops/internal/integration/persistence/model"
)

// guestRoomRepository implements the adapter.GuestRoomRepository interface.
type guestRoomRepository struct {
	db *gorm.DB
}

// NewGuestRoomRepository creates a new guest room repository instance.
func NewGuestRoomRepository(db *gorm.DB) adapter.GuestRoomRepository {
	return &guestRoomRepository{
		db: db,
	}
}

// ListGuestRooms retrieves every guest room ordered by room number.
func (r *guestRoomRepository) ListGuestRooms(ctx context.Context) ([]entity.GuestRoom, error) {
	var models []model.GuestRoomModel
	result := r.db.WithContext(ctx).
		Order("room_number ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	rooms := make([]entity.GuestRoom, len(models))
	for i := range models {
		rooms[i] = models[i].ToEntity()
	}
	return rooms, nil
}

// Save creates or replaces a guest room.
func (r *guestRoomRepository) Save(ctx context.Context, room *entity.GuestRoom) error {
	room.UpdatedAt = time.Now().UTC()
	if room.CreatedAt.IsZero() {
		room.CreatedAt = room.UpdatedAt
	}
	return r.db.WithContext(ctx).Save(model.GuestRoomFromEntity(room)).Error
}

// bookingRepository implements the adapter.BookingRepository interface.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository instance.
func NewBookingRepository(db *gorm.DB) adapter.BookingRepository {
	return &bookingRepository{
		db: db,
	}
}

// ListBookings retrieves every booking ordered by check-in date.
func (r *bookingRepository) ListBookings(ctx context.Context) ([]entity.Booking, error) {
	var models []model.BookingModel
	result := r.db.WithContext(ctx).
		Order("check_in_date ASC, created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	bookings := make([]entity.Booking, len(models))
	for i := range models {
		bookings[i] = models[i].ToEntity()
	}
	return bookings, nil
}

// Save creates or replaces a booking.
func (r *bookingRepository) Save(ctx context.Context, booking *entity.Booking) error {
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Save(model.BookingFromEntity(booking)).Error
}
