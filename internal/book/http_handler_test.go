package book

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookrest/internal/testutil"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMux(t *testing.T) (*http.ServeMux, *MockRepository) {
	ctrl := gomock.NewController(t)
	mockRepo := NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService(mockRepo, NewLinker("")), zerolog.Nop())
	mux := http.NewServeMux()
	handler.Register(mux)
	return mux, mockRepo
}

func serve(mux *http.ServeMux, r *http.Request) testutil.RecordResponse {
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	return testutil.RecordHTTPResponse(w)
}

func TestHTTPHandler_FindAll(t *testing.T) {
	mux, mockRepo := newTestMux(t)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().FindAll(gomock.Any()).Return(SampleBooks(3), nil)

		resp := serve(mux, testutil.NewRequest(http.MethodGet, "/api/book/v1", nil))

		require.Equal(t, http.StatusOK, resp.Code)
		data := resp.Body["data"].([]interface{})
		require.Len(t, data, 3)
		second := data[1].(map[string]interface{})
		assert.EqualValues(t, 1, second["id"])
		assert.Equal(t, "Author Test1", second["author"])
		links := second["links"].([]interface{})
		require.Len(t, links, 1)
		assert.Equal(t, map[string]interface{}{"rel": "self", "href": "/api/book/v1/1"}, links[0])
		assert.EqualValues(t, 3, resp.Body["meta"].(map[string]interface{})["total"])
	})

	t.Run("error", func(t *testing.T) {
		mockRepo.EXPECT().FindAll(gomock.Any()).Return(nil, context.DeadlineExceeded)

		resp := serve(mux, testutil.NewRequest(http.MethodGet, "/api/book/v1", nil))

		assert.Equal(t, http.StatusInternalServerError, resp.Code)
		assert.Equal(t, "INTERNAL_ERROR", resp.ErrorCode())
	})
}

func TestHTTPHandler_FindByID(t *testing.T) {
	mux, mockRepo := newTestMux(t)

	tests := []struct {
		name           string
		path           string
		setupMock      func()
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "success",
			path: "/api/book/v1/1",
			setupMock: func() {
				mockRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(SampleBook(1), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			path: "/api/book/v1/99",
			setupMock: func() {
				mockRepo.EXPECT().FindByID(gomock.Any(), int64(99)).Return(Book{}, ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NOT_FOUND",
		},
		{
			name:           "non numeric id",
			path:           "/api/book/v1/abc",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "BAD_REQUEST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			resp := serve(mux, testutil.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, resp.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, resp.ErrorCode())
			}
		})
	}
}

func TestHTTPHandler_Create(t *testing.T) {
	mux, mockRepo := newTestMux(t)

	t.Run("created", func(t *testing.T) {
		in := SampleVO(1)
		in.Key = 0
		entity := SampleBook(1)
		entity.ID = 0
		mockRepo.EXPECT().Save(gomock.Any(), entity).Return(SampleBook(1), nil)

		resp := serve(mux, testutil.NewRequest(http.MethodPost, "/api/book/v1", in))

		require.Equal(t, http.StatusCreated, resp.Code)
		assert.Equal(t, "/api/book/v1/1", resp.Header.Get("Location"))
		assert.EqualValues(t, 1, resp.Data()["id"])
		assert.Equal(t, "2023-02-01T00:00:00Z", resp.Data()["launch_date"])
	})

	t.Run("null body", func(t *testing.T) {
		resp := serve(mux, testutil.NewRequest(http.MethodPost, "/api/book/v1", "null"))

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		errBody := resp.Body["error"].(map[string]interface{})
		assert.Equal(t, "It is not allowed to persist a null object!", errBody["message"])
	})

	t.Run("empty body", func(t *testing.T) {
		resp := serve(mux, testutil.NewRequest(http.MethodPost, "/api/book/v1", nil))

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		resp := serve(mux, testutil.NewRequest(http.MethodPost, "/api/book/v1", `{"title":`))

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "BAD_REQUEST", resp.ErrorCode())
	})

	t.Run("trailing data", func(t *testing.T) {
		resp := serve(mux, testutil.NewRequest(http.MethodPost, "/api/book/v1", `{"title":"Go","author":"Rob","price":1} garbage`))

		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "BAD_REQUEST", resp.ErrorCode())
	})

	t.Run("validation error", func(t *testing.T) {
		resp := serve(mux, testutil.NewRequest(http.MethodPost, "/api/book/v1", `{"title":"  ","author":"A","price":-1}`))

		require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		assert.Equal(t, "VALIDATION_ERROR", resp.ErrorCode())
		details := resp.Body["error"].(map[string]interface{})["details"].([]interface{})
		fields := []string{}
		for _, d := range details {
			fields = append(fields, d.(map[string]interface{})["field"].(string))
		}
		assert.ElementsMatch(t, []string{"title", "price"}, fields)
	})
}

func TestHTTPHandler_Update(t *testing.T) {
	mux, mockRepo := newTestMux(t)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(SampleBook(0), nil)
		mockRepo.EXPECT().Save(gomock.Any(), SampleBook(1)).Return(SampleBook(1), nil)

		resp := serve(mux, testutil.NewRequest(http.MethodPut, "/api/book/v1", SampleVO(1)))

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "Title Test1", resp.Data()["title"])
	})

	t.Run("missing key", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), int64(5)).Return(Book{}, ErrNotFound)

		resp := serve(mux, testutil.NewRequest(http.MethodPut, "/api/book/v1", SampleVO(5)))

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("null body", func(t *testing.T) {
		resp := serve(mux, testutil.NewRequest(http.MethodPut, "/api/book/v1", "null"))

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestHTTPHandler_Delete(t *testing.T) {
	mux, mockRepo := newTestMux(t)

	t.Run("no content", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(SampleBook(1), nil)
		mockRepo.EXPECT().Delete(gomock.Any(), SampleBook(1)).Return(nil)

		resp := serve(mux, testutil.NewRequest(http.MethodDelete, "/api/book/v1/1", nil))

		testutil.AssertResponseCode(t, resp.Code, http.StatusNoContent)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(Book{}, ErrNotFound)

		resp := serve(mux, testutil.NewRequest(http.MethodDelete, "/api/book/v1/2", nil))

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestHTTPHandler_MethodNotAllowed(t *testing.T) {
	mux, _ := newTestMux(t)

	resp := serve(mux, testutil.NewRequest(http.MethodPatch, "/api/book/v1", nil))

	testutil.AssertResponseCode(t, resp.Code, http.StatusMethodNotAllowed)
}
