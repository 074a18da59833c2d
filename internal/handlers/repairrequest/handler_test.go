package repairrequest_test

import (
	"bytes"
	"context"
	stdbase64 "encoding/base64"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "proccms/infras/otel/mocks"
	"proccms/internal/domains/repairrequest/model"
	"proccms/internal/domains/repairrequest/model/dto"
	serviceMocks "proccms/internal/domains/repairrequest/service/mocks"
	handler "proccms/internal/handlers/repairrequest"
	"proccms/shared"
	"proccms/shared/constant"
	gDto "proccms/shared/dto"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func setup(t *testing.T) (http.Handler, *serviceMocks.MockRepairRequest) {
	t.Helper()

	mockService := serviceMocks.NewMockRepairRequest(gomock.NewController(t))
	h := handler.New(mockService, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := gDto.Identity{Username: "alice", Department: "Physics", Role: constant.RoleUser, Email: "alice@campus.edu"}
			next.ServeHTTP(w, r.WithContext(shared.WithIdentity(r.Context(), identity)))
		})
	})
	h.Router(router)

	return router, mockService
}

func TestCreateRepairRequest_Multipart(t *testing.T) {
	router, mockService := setup(t)

	var body bytes.Buffer

	form := multipart.NewWriter(&body)
	require.NoError(t, form.WriteField("description", "Broken fan"))
	require.NoError(t, form.WriteField("isNewRequirement", "true"))

	part, err := form.CreateFormFile("file", "fan.png")
	require.NoError(t, err)

	_, err = part.Write(pngHeader)
	require.NoError(t, err)
	require.NoError(t, form.Close())

	mockService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req dto.CreateRepairRequest) (dto.RepairRequestResponse, error) {
			assert.Equal(t, "alice", req.Username)
			assert.Equal(t, "Physics", req.Department)
			assert.Equal(t, constant.RoleUser, req.Role)
			assert.True(t, req.IsNewRequirement)
			require.NotNil(t, req.Attachment)
			assert.Equal(t, "fan.png", req.Attachment.Name)
			assert.Equal(t, pngHeader, req.Attachment.Data)

			return dto.RepairRequestResponse{ID: "req-1", Status: model.StatusPending}, nil
		})

	r := httptest.NewRequest(http.MethodPost, "/repair-requests/", &body)
	r.Header.Set(constant.RequestHeaderContentType, form.FormDataContentType())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusCreated, w.Code)

	var res struct {
		Data dto.RepairRequestResponse `json:"data"`
	}

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "req-1", res.Data.ID)
}

func TestCreateRepairRequest_JSON(t *testing.T) {
	t.Run("data url attachment", func(t *testing.T) {
		router, mockService := setup(t)

		payload, _ := json.Marshal(map[string]any{
			"description": "Leaking tap",
			"file":        "data:image/png;base64," + stdbase64.StdEncoding.EncodeToString(pngHeader),
			"fileName":    "tap.png",
		})

		mockService.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req dto.CreateRepairRequest) (dto.RepairRequestResponse, error) {
				require.NotNil(t, req.Attachment)
				assert.Equal(t, "tap.png", req.Attachment.Name)
				assert.Equal(t, pngHeader, req.Attachment.Data)

				return dto.RepairRequestResponse{ID: "req-2"}, nil
			})

		r := httptest.NewRequest(http.MethodPost, "/repair-requests/", bytes.NewReader(payload))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing description", func(t *testing.T) {
		router, _ := setup(t)

		r := httptest.NewRequest(http.MethodPost, "/repair-requests/", bytes.NewReader([]byte(`{"mobile":"123"}`)))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "description is required")
	})
}

func TestGetRepairRequests_PassesFilters(t *testing.T) {
	router, mockService := setup(t)

	mockService.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter dto.ListFilter) (dto.GetRepairRequestsResponse, error) {
			assert.Equal(t, 2, params.Page)
			assert.Equal(t, constant.DefaultValueSortBy, params.SortBy)
			assert.Equal(t, "fan", filter.Search)
			assert.Equal(t, model.StatusAssigned, filter.Status)
			assert.Equal(t, "2025-05-01", filter.DateFrom)

			return dto.GetRepairRequestsResponse{}, nil
		})

	r := httptest.NewRequest(http.MethodGet, "/repair-requests/?page=2&limit=5&search=fan&status=Assigned&dateFrom=2025-05-01", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMarkRemarkSeen_RouteParams(t *testing.T) {
	router, mockService := setup(t)

	mockService.EXPECT().MarkRemarkSeen(gomock.Any(), "req-1", "r-9").Return(nil)

	r := httptest.NewRequest(http.MethodPatch, "/repair-requests/req-1/remarks/r-9/mark-seen", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Remark marked as seen")
}
