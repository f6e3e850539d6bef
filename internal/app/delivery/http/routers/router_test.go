package routers

import (
	"bytes"
	"context"
	"errors"
	"healthlinker-service/internal/app/config"
	"healthlinker-service/internal/app/contracts"
	"healthlinker-service/internal/app/delivery/http/controllers"
	"healthlinker-service/internal/app/delivery/http/middlewares"
	"healthlinker-service/internal/app/models"
	"healthlinker-service/internal/pkg/constvars"
	"healthlinker-service/internal/pkg/dto/requests"
	"healthlinker-service/internal/pkg/dto/responses"
	"healthlinker-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) CreateToken(ctx context.Context, in *contracts.CreateTokenInput) (*contracts.CreateTokenOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*contracts.CreateTokenOutput)
	return out, args.Error(1)
}

func (m *MockTokenManager) VerifyToken(ctx context.Context, token string) (*contracts.TokenClaims, error) {
	args := m.Called(ctx, token)
	claims, _ := args.Get(0).(*contracts.TokenClaims)
	return claims, args.Error(1)
}

type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.AuthToken, error) {
	args := m.Called(ctx, request)
	out, _ := args.Get(0).(*responses.AuthToken)
	return out, args.Error(1)
}

func (m *MockUserUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.AuthToken, error) {
	args := m.Called(ctx, request)
	out, _ := args.Get(0).(*responses.AuthToken)
	return out, args.Error(1)
}

func (m *MockUserUsecase) GoogleLogin(ctx context.Context, request *requests.GoogleLogin) (*responses.AuthToken, error) {
	args := m.Called(ctx, request)
	out, _ := args.Get(0).(*responses.AuthToken)
	return out, args.Error(1)
}

func (m *MockUserUsecase) GetProfile(ctx context.Context, userID string) (*responses.UserProfile, error) {
	args := m.Called(ctx, userID)
	out, _ := args.Get(0).(*responses.UserProfile)
	return out, args.Error(1)
}

type MockDoctorUsecase struct {
	mock.Mock
}

func (m *MockDoctorUsecase) CreateProfile(ctx context.Context, userID string, role models.UserRole, request *requests.CreateDoctorProfile) (*responses.Doctor, error) {
	args := m.Called(ctx, userID, role, request)
	out, _ := args.Get(0).(*responses.Doctor)
	return out, args.Error(1)
}

func (m *MockDoctorUsecase) UpdateProfile(ctx context.Context, userID string, request *requests.UpdateDoctorProfile) (*responses.Doctor, error) {
	args := m.Called(ctx, userID, request)
	out, _ := args.Get(0).(*responses.Doctor)
	return out, args.Error(1)
}

func (m *MockDoctorUsecase) GetMyProfile(ctx context.Context, userID string) (*responses.Doctor, error) {
	args := m.Called(ctx, userID)
	out, _ := args.Get(0).(*responses.Doctor)
	return out, args.Error(1)
}

func (m *MockDoctorUsecase) GetDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	args := m.Called(ctx, doctorID)
	out, _ := args.Get(0).(*responses.Doctor)
	return out, args.Error(1)
}

func (m *MockDoctorUsecase) FindDoctors(ctx context.Context, request *requests.FindDoctors) ([]responses.Doctor, int, error) {
	args := m.Called(ctx, request)
	out, _ := args.Get(0).([]responses.Doctor)
	return out, args.Int(1), args.Error(2)
}

func (m *MockDoctorUsecase) ListPendingDoctors(ctx context.Context) ([]responses.Doctor, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]responses.Doctor)
	return out, args.Error(1)
}

func (m *MockDoctorUsecase) ReviewDoctor(ctx context.Context, doctorID string, request *requests.ReviewDoctor) (*responses.Doctor, error) {
	args := m.Called(ctx, doctorID, request)
	out, _ := args.Get(0).(*responses.Doctor)
	return out, args.Error(1)
}

type MockSlotUsecase struct {
	mock.Mock
}

func (m *MockSlotUsecase) GenerateSlots(ctx context.Context, userID string, request *requests.GenerateSlots) (*responses.GenerateSlots, error) {
	args := m.Called(ctx, userID, request)
	out, _ := args.Get(0).(*responses.GenerateSlots)
	return out, args.Error(1)
}

func (m *MockSlotUsecase) TopUpSlots(ctx context.Context, doctor *models.Doctor, from time.Time, days int) (int, error) {
	args := m.Called(ctx, doctor, from, days)
	return args.Int(0), args.Error(1)
}

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) BookSlot(ctx context.Context, patientID string, role models.UserRole, request *requests.BookAppointment) (*responses.Appointment, error) {
	args := m.Called(ctx, patientID, role, request)
	out, _ := args.Get(0).(*responses.Appointment)
	return out, args.Error(1)
}

func (m *MockAppointmentUsecase) CancelAppointment(ctx context.Context, patientID, appointmentID string) error {
	args := m.Called(ctx, patientID, appointmentID)
	return args.Error(0)
}

func (m *MockAppointmentUsecase) ListPatientAppointments(ctx context.Context, patientID string) ([]responses.Appointment, error) {
	args := m.Called(ctx, patientID)
	out, _ := args.Get(0).([]responses.Appointment)
	return out, args.Error(1)
}

func (m *MockAppointmentUsecase) ListDoctorAppointments(ctx context.Context, userID string) ([]responses.Appointment, error) {
	args := m.Called(ctx, userID)
	out, _ := args.Get(0).([]responses.Appointment)
	return out, args.Error(1)
}

func (m *MockAppointmentUsecase) SearchAvailableSlots(ctx context.Context, request *requests.SearchAvailableSlots) ([]responses.Slot, error) {
	args := m.Called(ctx, request)
	out, _ := args.Get(0).([]responses.Slot)
	return out, args.Error(1)
}

func (m *MockAppointmentUsecase) CompletePastAppointments(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type testServer struct {
	router       *chi.Mux
	tokens       *MockTokenManager
	users        *MockUserUsecase
	doctors      *MockDoctorUsecase
	slots        *MockSlotUsecase
	appointments *MockAppointmentUsecase
	healthy      bool
}

const (
	patientToken = "patient-token"
	doctorToken  = "doctor-token"
	adminToken   = "admin-token"
)

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:             "api",
			CorsAllowedOrigins:         "*",
			MaxRequests:                1000,
			AuthMaxRequestsPerMinute:   100,
			RequestBodyLimitInMegabyte: 1,
		},
		Minio: config.AppMinio{
			ProfilePictureMaxUploadSizeInMB: 1,
			ProfilePictureAllowedFormats:    []string{".png", ".jpeg"},
		},
	}

	s := &testServer{
		router:       chi.NewRouter(),
		tokens:       new(MockTokenManager),
		users:        new(MockUserUsecase),
		doctors:      new(MockDoctorUsecase),
		slots:        new(MockSlotUsecase),
		appointments: new(MockAppointmentUsecase),
		healthy:      true,
	}
	s.tokens.On("VerifyToken", mock.Anything, patientToken).Return(&contracts.TokenClaims{UserID: "patient-1", Role: models.RolePatient}, nil)
	s.tokens.On("VerifyToken", mock.Anything, doctorToken).Return(&contracts.TokenClaims{UserID: "doctor-1", Role: models.RoleDoctor}, nil)
	s.tokens.On("VerifyToken", mock.Anything, adminToken).Return(&contracts.TokenClaims{UserID: "admin-1", Role: models.RoleAdmin}, nil)

	checks := map[string]controllers.HealthCheck{
		"mongodb": func(ctx context.Context) error {
			if !s.healthy {
				return errors.New("no reachable servers")
			}
			return nil
		},
	}

	SetupRoutes(s.router, logger, internalConfig, middlewares.NewMiddlewares(logger, s.tokens, internalConfig), &Controllers{
		User:        controllers.NewUserController(logger, s.users),
		Doctor:      controllers.NewDoctorController(logger, s.doctors, s.slots, internalConfig),
		Appointment: controllers.NewAppointmentController(logger, s.appointments),
		Health:      controllers.NewHealthController(logger, checks),
	})
	return s
}

func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var payload bytes.Buffer
	if body != nil {
		json.NewEncoder(&payload).Encode(body)
	}
	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestRegister(t *testing.T) {
	s := newTestServer(t)

	t.Run("created", func(t *testing.T) {
		s.users.On("Register", mock.Anything, mock.MatchedBy(func(r *requests.RegisterUser) bool {
			return r.Email == "ana@example.com"
		})).Return(&responses.AuthToken{Token: "jwt", Role: "patient", UserID: "u1"}, nil).Once()

		rr := s.do(http.MethodPost, "/api/users/register", "", map[string]string{
			"name":     "Ana",
			"email":    "  Ana@Example.com ",
			"password": "secret123",
		})

		assert.Equal(t, http.StatusCreated, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, constvars.RegisterUserSuccessMessage, body["message"])
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("validation error", func(t *testing.T) {
		rr := s.do(http.MethodPost, "/api/users/register", "", map[string]string{"email": "not-an-email"})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, false, body["success"])
	})

	t.Run("email taken", func(t *testing.T) {
		s.users.On("Register", mock.Anything, mock.Anything).Return(nil, exceptions.ErrEmailAlreadyExist(nil)).Once()

		rr := s.do(http.MethodPost, "/api/users/register", "", map[string]string{
			"name":     "Ana",
			"email":    "ana@example.com",
			"password": "secret123",
		})

		assert.Equal(t, exceptions.ErrEmailAlreadyExist(nil).StatusCode, rr.Code)
	})
}

func TestProfileRequiresToken(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(http.MethodGet, "/api/users/profile", "", nil)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	s.users.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
}

func TestRoleGates(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
	}{
		{"doctor cannot book", http.MethodPost, "/api/appointments/book", doctorToken},
		{"admin cannot book", http.MethodPost, "/api/appointments/book", adminToken},
		{"patient cannot generate slots", http.MethodPost, "/api/doctors/generate-slots", patientToken},
		{"doctor cannot review doctors", http.MethodPatch, "/api/doctors/" + primitive.NewObjectID().Hex() + "/status", doctorToken},
		{"patient cannot list doctor appointments", http.MethodGet, "/api/appointments/doctor", patientToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := s.do(tt.method, tt.path, tt.token, map[string]string{})
			assert.Equal(t, http.StatusForbidden, rr.Code)
		})
	}

	s.appointments.AssertNotCalled(t, "BookSlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.slots.AssertNotCalled(t, "GenerateSlots", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookAppointment(t *testing.T) {
	s := newTestServer(t)
	slotID := primitive.NewObjectID().Hex()

	t.Run("booked", func(t *testing.T) {
		s.appointments.On("BookSlot", mock.Anything, "patient-1", models.RolePatient, &requests.BookAppointment{SlotID: slotID}).
			Return(&responses.Appointment{ID: "a1", SlotID: slotID, Status: "Confirmed"}, nil).Once()

		rr := s.do(http.MethodPost, "/api/appointments/book", patientToken, map[string]string{"slotId": slotID})

		assert.Equal(t, http.StatusCreated, rr.Code)
		body := decodeBody(t, rr)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "Confirmed", data["status"])
	})

	t.Run("slot taken", func(t *testing.T) {
		s.appointments.On("BookSlot", mock.Anything, "patient-1", models.RolePatient, mock.Anything).
			Return(nil, exceptions.ErrSlotAlreadyBooked(nil)).Once()

		rr := s.do(http.MethodPost, "/api/appointments/book", patientToken, map[string]string{"slotId": slotID})

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("malformed slot id", func(t *testing.T) {
		rr := s.do(http.MethodPost, "/api/appointments/book", patientToken, map[string]string{"slotId": "nope"})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCancelAppointment(t *testing.T) {
	s := newTestServer(t)
	appointmentID := primitive.NewObjectID().Hex()

	t.Run("cancelled", func(t *testing.T) {
		s.appointments.On("CancelAppointment", mock.Anything, "patient-1", appointmentID).Return(nil).Once()

		rr := s.do(http.MethodDelete, "/api/appointments/"+appointmentID, patientToken, nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, constvars.CancelAppointmentSuccessMessage, decodeBody(t, rr)["message"])
	})

	t.Run("not owned", func(t *testing.T) {
		s.appointments.On("CancelAppointment", mock.Anything, "patient-1", appointmentID).
			Return(exceptions.ErrAppointmentNotOwned(nil)).Once()

		rr := s.do(http.MethodDelete, "/api/appointments/"+appointmentID, patientToken, nil)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		rr := s.do(http.MethodDelete, "/api/appointments/xyz", patientToken, nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestListPatientAppointmentsEmpty(t *testing.T) {
	s := newTestServer(t)
	s.appointments.On("ListPatientAppointments", mock.Anything, "patient-1").Return([]responses.Appointment{}, nil).Once()

	rr := s.do(http.MethodGet, "/api/appointments/patient", patientToken, nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, constvars.NoAppointmentsMessage, decodeBody(t, rr)["message"])
}

func TestFindDoctorsPagination(t *testing.T) {
	s := newTestServer(t)
	s.doctors.On("FindDoctors", mock.Anything, mock.MatchedBy(func(r *requests.FindDoctors) bool {
		return r.Specialty == "Cardiology" && r.Page == 2 && r.Limit == 5
	})).Return([]responses.Doctor{{ID: "d1", Name: "Dr. Lee"}}, 12, nil).Once()

	rr := s.do(http.MethodGet, "/api/doctors?specialty=Cardiology&page=2&limit=5", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(12), pagination["total"])
	assert.Equal(t, float64(3), pagination["totalPages"])
}

func TestCreateDoctorProfilePending(t *testing.T) {
	s := newTestServer(t)
	s.doctors.On("CreateProfile", mock.Anything, "doctor-1", models.RoleDoctor, mock.Anything).
		Return(&responses.Doctor{ID: "d1", Status: string(models.DoctorStatusPending)}, nil).Once()

	rr := s.do(http.MethodPost, "/api/doctors/profile", doctorToken, map[string]interface{}{
		"name":         "Dr. Lee",
		"specialty":    "Cardiology",
		"fees":         50,
		"slotDuration": 30,
		"workingHours": []map[string]string{{"day": "Monday", "startTime": "09:00", "endTime": "12:00"}},
	})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, constvars.PendingDoctorProfileMessage, decodeBody(t, rr)["message"])
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	s.healthy = false
	rr = s.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	data := decodeBody(t, rr)["data"].(map[string]interface{})
	assert.Equal(t, "no reachable servers", data["mongodb"])
}
