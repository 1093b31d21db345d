package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-shop/internal/domain/booking"
	"github.com/BruksfildServices01/barber-shop/internal/httperr"
	"github.com/BruksfildServices01/barber-shop/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Users
// --------------------------------------------------

func (r *BookingGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) CreateIfSlotFree(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if ap.BarberID != nil {
			var count int64
			if err := tx.
				Model(&models.Appointment{}).
				Where(
					"date = ? AND time = ? AND barber_id = ?",
					ap.Date, ap.Time, *ap.BarberID,
				).
				Count(&count).Error; err != nil {
				return err
			}

			if count > 0 {
				return httperr.ErrBusiness(httperr.CodeSlotTaken)
			}
		}

		if err := tx.Create(ap).Error; err != nil {
			// Índice único (date, time, barber_id) fecha a corrida
			// entre duas reservas simultâneas do mesmo slot.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return httperr.ErrBusiness(httperr.CodeSlotTaken)
			}
			return err
		}
		return nil
	})
}

func (r *BookingGormRepository) UpdateIfSlotFree(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if ap.BarberID != nil {
			var count int64
			if err := tx.
				Model(&models.Appointment{}).
				Where(
					"date = ? AND time = ? AND barber_id = ? AND id != ?",
					ap.Date, ap.Time, *ap.BarberID, ap.ID,
				).
				Count(&count).Error; err != nil {
				return err
			}

			if count > 0 {
				return httperr.ErrBusiness(httperr.CodeSlotTaken)
			}
		}

		if err := tx.Save(ap).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return httperr.ErrBusiness(httperr.CodeSlotTaken)
			}
			return err
		}
		return nil
	})
}

// --------------------------------------------------
// Appointment (read / delete)
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
		}
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}
	return nil
}

func (r *BookingGormRepository) ListAppointmentsForBarber(
	ctx context.Context,
	barberID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("barber_id = ?", barberID).
		Order("date ASC, time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *BookingGormRepository) ListAppointmentsForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Where("client_id = ?", clientID).
		Order("date ASC, time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
