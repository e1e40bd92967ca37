package mock

import (
	context "context"
	reflect "reflect"

	adapter "github.com/MKhiriev/go-travel-booking/internal/adapter"
	models "github.com/MKhiriev/go-travel-booking/models"
	gomock "go.uber.org/mock/gomock"
)

// MockTravelProvider is a mock of TravelProvider interface.
type MockTravelProvider struct {
	ctrl     *gomock.Controller
	recorder *MockTravelProviderMockRecorder
	isgomock struct{}
}

// MockTravelProviderMockRecorder is the mock recorder for MockTravelProvider.
type MockTravelProviderMockRecorder struct {
	mock *MockTravelProvider
}

// NewMockTravelProvider creates a new mock instance.
func NewMockTravelProvider(ctrl *gomock.Controller) *MockTravelProvider {
	mock := &MockTravelProvider{ctrl: ctrl}
	mock.recorder = &MockTravelProviderMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTravelProvider) EXPECT() *MockTravelProviderMockRecorder {
	return m.recorder
}

// AccessToken mocks base method.
func (m *MockTravelProvider) AccessToken(ctx context.Context) (adapter.AccessToken, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AccessToken", ctx)
	ret0, _ := ret[0].(adapter.AccessToken)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// AccessToken indicates an expected call of AccessToken.
func (mr *MockTravelProviderMockRecorder) AccessToken(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AccessToken", reflect.TypeOf((*MockTravelProvider)(nil).AccessToken), ctx)
}

// CredentialsID mocks base method.
func (m *MockTravelProvider) CredentialsID() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CredentialsID")
	ret0, _ := ret[0].(string)
	return ret0
}

// CredentialsID indicates an expected call of CredentialsID.
func (mr *MockTravelProviderMockRecorder) CredentialsID() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CredentialsID", reflect.TypeOf((*MockTravelProvider)(nil).CredentialsID))
}

// HasCredentials mocks base method.
func (m *MockTravelProvider) HasCredentials() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HasCredentials")
	ret0, _ := ret[0].(bool)
	return ret0
}

// HasCredentials indicates an expected call of HasCredentials.
func (mr *MockTravelProviderMockRecorder) HasCredentials() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HasCredentials", reflect.TypeOf((*MockTravelProvider)(nil).HasCredentials))
}

// SearchFlights mocks base method.
func (m *MockTravelProvider) SearchFlights(ctx context.Context, accessToken string, query models.FlightQuery) ([]models.FlightOffer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SearchFlights", ctx, accessToken, query)
	ret0, _ := ret[0].([]models.FlightOffer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SearchFlights indicates an expected call of SearchFlights.
func (mr *MockTravelProviderMockRecorder) SearchFlights(ctx, accessToken, query any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SearchFlights", reflect.TypeOf((*MockTravelProvider)(nil).SearchFlights), ctx, accessToken, query)
}

// SearchHotels mocks base method.
func (m *MockTravelProvider) SearchHotels(ctx context.Context, accessToken string, query models.HotelQuery) ([]models.HotelOffer, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SearchHotels", ctx, accessToken, query)
	ret0, _ := ret[0].([]models.HotelOffer)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SearchHotels indicates an expected call of SearchHotels.
func (mr *MockTravelProviderMockRecorder) SearchHotels(ctx, accessToken, query any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SearchHotels", reflect.TypeOf((*MockTravelProvider)(nil).SearchHotels), ctx, accessToken, query)
}

// MockEventPublisher is a mock of EventPublisher interface.
type MockEventPublisher struct {
	ctrl     *gomock.Controller
	recorder *MockEventPublisherMockRecorder
	isgomock struct{}
}

// MockEventPublisherMockRecorder is the mock recorder for MockEventPublisher.
type MockEventPublisherMockRecorder struct {
	mock *MockEventPublisher
}

// NewMockEventPublisher creates a new mock instance.
func NewMockEventPublisher(ctrl *gomock.Controller) *MockEventPublisher {
	mock := &MockEventPublisher{ctrl: ctrl}
	mock.recorder = &MockEventPublisherMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockEventPublisher) EXPECT() *MockEventPublisherMockRecorder {
	return m.recorder
}

// Close mocks base method.
func (m *MockEventPublisher) Close() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close")
	ret0, _ := ret[0].(error)
	return ret0
}

// Close indicates an expected call of Close.
func (mr *MockEventPublisherMockRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockEventPublisher)(nil).Close))
}

// Publish mocks base method.
func (m *MockEventPublisher) Publish(ctx context.Context, event models.BookingEvent) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Publish", ctx, event)
	ret0, _ := ret[0].(error)
	return ret0
}

// Publish indicates an expected call of Publish.
func (mr *MockEventPublisherMockRecorder) Publish(ctx, event any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Publish", reflect.TypeOf((*MockEventPublisher)(nil).Publish), ctx, event)
}
