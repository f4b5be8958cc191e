package listRooms_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelBooker/internal/http-server/handlers/room/listRooms"
	"hotelBooker/internal/http-server/handlers/room/listRooms/mocks"
	"hotelBooker/internal/lib/logger/handlers/slogdiscard"
	"hotelBooker/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestListRoomsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		rooms := []models.Room{
			{ID: 1, Number: "101", Description: "Standard double"},
			{ID: 2, Number: "102", Description: "Suite"},
		}

		getter := mocks.NewRoomsGetter(t)
		getter.On("GetAvailableRooms").Return(rooms, nil)

		handler := listRooms.New(logger, getter)

		req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t,
			`{"status":"OK","rooms":[{"id":1,"number":"101","description":"Standard double"},{"id":2,"number":"102","description":"Suite"}]}`,
			rr.Body.String())
	})

	t.Run("Store failure", func(t *testing.T) {
		t.Parallel()

		getter := mocks.NewRoomsGetter(t)
		getter.On("GetAvailableRooms").Return(nil, errors.New("database error"))

		handler := listRooms.New(logger, getter)

		req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"status":"Error","error":"failed to get rooms"}`, rr.Body.String())
	})
}
