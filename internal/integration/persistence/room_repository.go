package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/parsonage/property-ops/internal/application/adapter"
	"github.com/parsonage/property-ops/internal/domain/entity"
	domainerror "github.com/parsonage/property-ops/internal/domain/error"
	"github.com/parsonage/property-ops/internal/integration/persistence/model"
)

// roomRepository implements the adapter.RoomRepository interface.
type roomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates a new room repository instance.
func NewRoomRepository(db *gorm.DB) adapter.RoomRepository {
	return &roomRepository{
		db: db,
	}
}

// ListRooms retrieves every long-term room ordered by room number.
func (r *roomRepository) ListRooms(ctx context.Context) ([]entity.Room, error) {
	var models []model.RoomModel
	result := r.db.WithContext(ctx).
		Order("room_number ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	rooms := make([]entity.Room, len(models))
	for i := range models {
		rooms[i] = models[i].ToEntity()
	}
	return rooms, nil
}

// FindByNumber retrieves a room by its room number.
func (r *roomRepository) FindByNumber(ctx context.Context, roomNumber string) (*entity.Room, error) {
	var roomModel model.RoomModel
	result := r.db.WithContext(ctx).Where("room_number = ?", roomNumber).First(&roomModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRoomNotFound
		}
		return nil, result.Error
	}

	room := roomModel.ToEntity()
	return &room, nil
}

// UpdateLastPayment records the latest rent payment against a room.
func (r *roomRepository) UpdateLastPayment(ctx context.Context, roomNumber string, paidAt time.Time, status entity.PaymentStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.RoomModel{}).
		Where("room_number = ?", roomNumber).
		Updates(map[string]interface{}{
			"last_payment_date": paidAt,
			"payment_status":    string(status),
			"updated_at":        time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRoomNotFound
	}
	return nil
}

// Save creates or replaces a room.
func (r *roomRepository) Save(ctx context.Context, room *entity.Room) error {
	room.UpdatedAt = time.Now().UTC()
	if room.CreatedAt.IsZero() {
		room.CreatedAt = room.UpdatedAt
	}
	return r.db.WithContext(ctx).Save(model.RoomFromEntity(room)).Error
}
