package service

import (
	carModel "carrental/internal/domains/car/model"
	"carrental/internal/domains/reservation/model"
	"carrental/internal/domains/reservation/model/dto"
	"carrental/shared"
	"carrental/shared/constant"
	"carrental/shared/failure"
	gRepo "carrental/shared/repository"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// TransitionReservation moves a reservation through its lifecycle and applies
// the matching car status change in the same transaction.
func (s *serviceImpl) TransitionReservation(ctx context.Context, id string, req dto.TransitionRequest, actor string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.TransitionReservation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	target, err := model.ParseStatus(req.Status)
	if err != nil {
		return res, err
	}

	if _, err = uuid.Parse(id); err != nil {
		return res, model.ErrReservationNotFound(id)
	}

	var (
		previous model.Status
		detail   model.Detail
	)

	err = s.transactor.WithinTx(ctx, txOptions, func(ctx context.Context, tx *sqlx.Tx) error {
		current, found, err := s.repo.GetForUpdateTx(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("failed to lock reservation: %w", err)
		}

		if !found {
			return model.ErrReservationNotFound(id)
		}

		if !current.Status.CanTransitionTo(target) {
			return model.ErrInvalidTransition(current.Status, target)
		}

		car, found, err := s.carRepo.GetForUpdateTx(ctx, tx, current.CarID)
		if err != nil {
			return fmt.Errorf("failed to lock car: %w", err)
		}

		if !found {
			return model.ErrCarNotFound(current.CarID)
		}

		if target == model.StatusActive {
			if err := s.checkActivation(ctx, tx, current, car); err != nil {
				return err
			}
		}

		change := model.StatusChange{Status: target, Notes: req.Notes, Actor: actor, At: s.clock.Now()}
		if err := s.repo.UpdateStatusTx(ctx, tx, id, change); err != nil {
			return fmt.Errorf("failed to update reservation status: %w", err)
		}

		if err := s.applyCarEffect(ctx, tx, current, car, target); err != nil {
			return err
		}

		detail, found, err = s.repo.GetDetailTx(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("failed to reload reservation: %w", err)
		}

		if !found {
			return model.ErrReservationNotFound(id)
		}

		previous = current.Status

		return nil
	})

	switch {
	case err == nil:
	case gRepo.HasPqCode(err, constant.PqErrorCodeExclusionViolation):
		return res, failure.New(failure.KindDatesConflict, model.ReasonOverlappingActive) // nolint:wrapcheck
	case failure.GetKind(err) != failure.KindStorageFailure:
		return res, err
	default:
		log.Error().Err(err).Str("reservation_id", id).Msg("failed to transition reservation")

		return res, fmt.Errorf("failed to transition reservation: %w", err)
	}

	log.Info().
		Str("reservation_id", id).
		Str("from", previous.String()).
		Str("to", target.String()).
		Str("actor", actor).
		Msg("reservation status changed")

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
		log.Error().Err(err).Str("reservation_id", id).Msg("failed to invalidate reservation cache")
	}

	s.publish(ctx, model.NewEvent(model.EventStatusChanged, detail.Reservation, previous, s.clock.Now()))

	res.FromDetail(detail)

	return res, nil
}

// checkActivation re-runs the strict overlap check so two rentals of one car
// can never be active on the same day.
func (s *serviceImpl) checkActivation(ctx context.Context, tx *sqlx.Tx, reservation model.Reservation, car carModel.Car) error {
	if car.Status.IsStaffControlled() {
		return model.ErrCarNotAvailable(car.ID)
	}

	blocking, found, err := s.repo.FindOverlappingTx(ctx, tx, reservation.CarID, reservation.Range(), model.StrictFilter, reservation.ID)
	if err != nil {
		return fmt.Errorf("failed to check overlapping reservations: %w", err)
	}

	if found {
		return model.ErrDatesConflict(blocking)
	}

	return nil
}

func (s *serviceImpl) applyCarEffect(ctx context.Context, tx *sqlx.Tx, reservation model.Reservation, car carModel.Car, target model.Status) error {
	switch target {
	case model.StatusActive:
		if err := s.carRepo.UpdateStatusTx(ctx, tx, car.ID, carModel.StatusReserved, reservation.EndDate); err != nil {
			return fmt.Errorf("failed to reserve car: %w", err)
		}
	case model.StatusCompleted, model.StatusCancelled:
		if car.Status.IsStaffControlled() {
			return nil
		}

		remaining, stillRented, err := s.repo.LatestActiveTx(ctx, tx, car.ID, reservation.ID)
		if err != nil {
			return fmt.Errorf("failed to check active reservations: %w", err)
		}

		// Another active rental keeps the car reserved until it ends.
		if stillRented {
			if err := s.carRepo.UpdateStatusTx(ctx, tx, car.ID, carModel.StatusReserved, remaining.EndDate); err != nil {
				return fmt.Errorf("failed to reserve car: %w", err)
			}

			return nil
		}

		if err := s.carRepo.UpdateStatusTx(ctx, tx, car.ID, carModel.StatusAvailable, s.clock.Today()); err != nil {
			return fmt.Errorf("failed to release car: %w", err)
		}
	case model.StatusPending, model.StatusConfirmed:
	}

	return nil
}
