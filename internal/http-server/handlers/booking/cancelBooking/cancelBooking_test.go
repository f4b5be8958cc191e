package cancelBooking_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelBooker/internal/http-server/handlers/booking/cancelBooking"
	"hotelBooker/internal/http-server/handlers/booking/cancelBooking/mocks"
	"hotelBooker/internal/lib/logger/handlers/slogdiscard"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		bookingID      string
		mockSetup      func(canceller *mocks.BookingCanceller, events *mocks.EventPublisher)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "Success",
			bookingID: "5",
			mockSetup: func(canceller *mocks.BookingCanceller, events *mocks.EventPublisher) {
				canceller.On("CancelBooking", 5).Return(true, nil)
				events.On("BookingCancelled", mock.Anything, 5).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:      "Unknown booking",
			bookingID: "99",
			mockSetup: func(canceller *mocks.BookingCanceller, events *mocks.EventPublisher) {
				canceller.On("CancelBooking", 99).Return(false, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booking not found"}`,
		},
		{
			name:           "Invalid id format",
			bookingID:      "abc",
			mockSetup:      func(canceller *mocks.BookingCanceller, events *mocks.EventPublisher) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid booking id format"}`,
		},
		{
			name:      "Store failure",
			bookingID: "5",
			mockSetup: func(canceller *mocks.BookingCanceller, events *mocks.EventPublisher) {
				canceller.On("CancelBooking", 5).Return(false, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to cancel booking"}`,
		},
		{
			name:      "Publish failure does not fail the request",
			bookingID: "5",
			mockSetup: func(canceller *mocks.BookingCanceller, events *mocks.EventPublisher) {
				canceller.On("CancelBooking", 5).Return(true, nil)
				events.On("BookingCancelled", mock.Anything, 5).Return(errors.New("broker is down"))
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			canceller := mocks.NewBookingCanceller(t)
			events := mocks.NewEventPublisher(t)
			tc.mockSetup(canceller, events)

			handler := cancelBooking.New(logger, canceller, events)

			router := chi.NewRouter()
			router.Delete("/bookings/{id}", handler)

			req, err := http.NewRequest(http.MethodDelete, "/bookings/"+tc.bookingID, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
