package reservation_test

import (
	"carrental/infras/otel/mocks"
	reservationMocks "carrental/internal/domains/reservation/mocks"
	"carrental/internal/domains/reservation/model"
	"carrental/internal/domains/reservation/model/dto"
	"carrental/internal/handlers/reservation"
	"carrental/shared/constant"
	gDto "carrental/shared/dto"
	"carrental/shared/failure"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	router  http.Handler
	service *reservationMocks.MockReservationService
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{service: reservationMocks.NewMockReservationService(ctrl)}

	handler := reservation.New(f.service, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)
	f.router = router

	return f
}

// do sends the request as userID with role, the way Auth leaves the context.
func (f fixture) do(method, target, body, userID, role string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	ctx := context.WithValue(req.Context(), constant.ContextKeyUserID, userID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, role)

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req.WithContext(ctx))

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var body struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Data
}

func errorKind(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Kind string `json:"kind"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Kind
}

func TestCreateReservation(t *testing.T) {
	const body = `{"car_id":7,"location_id":1,"start_date":"2025-03-12","end_date":"2025-03-14"}`

	t.Run("created", func(t *testing.T) {
		f := newFixture(t)
		f.service.EXPECT().CreateReservation(gomock.Any(), int64(42), dto.CreateReservationRequest{
			CarID: 7, LocationID: 1, StartDate: "2025-03-12", EndDate: "2025-03-14",
		}).Return(dto.ReservationResponse{ID: "r-1", Status: "pending", Total: "2360.00"}, nil)

		rec := f.do(http.MethodPost, "/reservations/", body, "42", constant.RoleCustomer)

		assert.Equal(t, http.StatusCreated, rec.Code)

		res := decode[dto.ReservationResponse](t, rec)
		assert.Equal(t, "pending", res.Status)
		assert.Equal(t, "2360.00", res.Total)
	})

	t.Run("validation error", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/reservations/", `{"car_id":7,"start_date":"12/03/2025"}`, "42", constant.RoleCustomer)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("impossible or missing dates are an invalid range", func(t *testing.T) {
		for _, payload := range []string{
			`{"car_id":7,"location_id":1,"start_date":"2025-02-30","end_date":"2025-03-02"}`,
			`{"car_id":7,"location_id":1,"end_date":"2025-03-02"}`,
		} {
			f := newFixture(t)
			f.service.EXPECT().CreateReservation(gomock.Any(), int64(42), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ int64, req dto.CreateReservationRequest) (dto.ReservationResponse, error) {
					_, err := model.ParseDateRange(req.StartDate, req.EndDate)

					return dto.ReservationResponse{}, err
				})

			rec := f.do(http.MethodPost, "/reservations/", payload, "42", constant.RoleCustomer)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, string(failure.KindInvalidDateRange), errorKind(t, rec))
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/reservations/", `{`, "42", constant.RoleCustomer)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("caller without numeric id", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/reservations/", body, "internal", constant.RoleSuperAdmin)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("dates conflict carries the blocking range", func(t *testing.T) {
		f := newFixture(t)
		f.service.EXPECT().CreateReservation(gomock.Any(), int64(42), gomock.Any()).
			Return(dto.ReservationResponse{}, failure.WithDetail(failure.KindDatesConflict, "car is already rented for the requested dates",
				model.Conflict{Start: "2025-03-10", End: "2025-03-13", Status: model.StatusActive}))

		rec := f.do(http.MethodPost, "/reservations/", body, "42", constant.RoleCustomer)

		assert.Equal(t, http.StatusConflict, rec.Code)

		var errBody struct {
			Kind   string         `json:"kind"`
			Detail model.Conflict `json:"detail"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
		assert.Equal(t, string(failure.KindDatesConflict), errBody.Kind)
		assert.Equal(t, "2025-03-13", errBody.Detail.End)
	})
}

func TestGetReservations(t *testing.T) {
	t.Run("status and car filters", func(t *testing.T) {
		f := newFixture(t)
		f.service.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error) {
				require.Len(t, filter.Filters, 2)

				status, ok := filter.Filters[0].(gDto.Filter)
				require.True(t, ok)
				assert.Equal(t, model.FieldStatus, status.Field)
				assert.Equal(t, "active", status.Value)

				car, ok := filter.Filters[1].(gDto.Filter)
				require.True(t, ok)
				assert.Equal(t, int64(7), car.Value)

				return dto.GetReservationsResponse{}, nil
			})

		rec := f.do(http.MethodGet, "/reservations/?status=active&car_id=7", "", "1", constant.RoleAdmin)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodGet, "/reservations/?status=archived", "", "1", constant.RoleAdmin)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), string(failure.KindUnknownStatus))
	})
}

func TestGetMyReservations(t *testing.T) {
	f := newFixture(t)
	f.service.EXPECT().GetByCustomer(gomock.Any(), int64(42), gomock.Any()).
		Return(dto.GetReservationsResponse{Reservations: []dto.ReservationResponse{{ID: "r-1", CustomerID: 42}}}, nil)

	rec := f.do(http.MethodGet, "/reservations/mine", "", "42", constant.RoleCustomer)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[dto.GetReservationsResponse](t, rec).Reservations, 1)
}

func TestGetReservationByID(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		role     string
		wantCode int
	}{
		{name: "owner", userID: "42", role: constant.RoleCustomer, wantCode: http.StatusOK},
		{name: "other customer", userID: "43", role: constant.RoleCustomer, wantCode: http.StatusNotFound},
		{name: "staff", userID: "1", role: constant.RoleAdmin, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.service.EXPECT().Get(gomock.Any(), "r-1").Return(dto.ReservationResponse{ID: "r-1", CustomerID: 42}, nil)

			rec := f.do(http.MethodGet, "/reservations/r-1", "", tt.userID, tt.role)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestTransitionReservation(t *testing.T) {
	t.Run("moves status with actor", func(t *testing.T) {
		f := newFixture(t)
		notes := "keys handed over"
		f.service.EXPECT().TransitionReservation(gomock.Any(), "r-1", dto.TransitionRequest{Status: "active", Notes: &notes}, "7").
			Return(dto.ReservationResponse{ID: "r-1", Status: "active", Notes: notes}, nil)

		rec := f.do(http.MethodPatch, "/reservations/r-1/status", `{"status":"active","notes":"keys handed over"}`, "7", constant.RoleAdmin)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "active", decode[dto.ReservationResponse](t, rec).Status)
	})

	t.Run("missing status is unknown", func(t *testing.T) {
		f := newFixture(t)
		f.service.EXPECT().TransitionReservation(gomock.Any(), "r-1", dto.TransitionRequest{}, "7").
			DoAndReturn(func(_ context.Context, _ string, req dto.TransitionRequest, _ string) (dto.ReservationResponse, error) {
				_, err := model.ParseStatus(req.Status)

				return dto.ReservationResponse{}, err
			})

		rec := f.do(http.MethodPatch, "/reservations/r-1/status", `{"status":""}`, "7", constant.RoleAdmin)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, string(failure.KindUnknownStatus), errorKind(t, rec))
	})

	t.Run("invalid transition", func(t *testing.T) {
		f := newFixture(t)
		f.service.EXPECT().TransitionReservation(gomock.Any(), "r-1", gomock.Any(), "7").
			Return(dto.ReservationResponse{}, model.ErrInvalidTransition(model.StatusCompleted, model.StatusActive))

		rec := f.do(http.MethodPatch, "/reservations/r-1/status", `{"status":"active"}`, "7", constant.RoleAdmin)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), string(failure.KindInvalidTransition))
	})
}
