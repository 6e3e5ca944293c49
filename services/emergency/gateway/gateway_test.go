package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/piresc/pathclear/internal/pkg/constants"
	"github.com/piresc/pathclear/internal/pkg/models"
	"github.com/piresc/pathclear/internal/pkg/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyClient(ctx context.Context, userID string, event string, data interface{}) error {
	args := m.Called(userID, event, data)
	return args.Error(0)
}

type mockPush struct {
	mock.Mock
}

func (m *mockPush) SendPush(ctx context.Context, token string, alert *models.EmergencyAlert) error {
	args := m.Called(ctx, token, alert)
	return args.Error(0)
}

type mockLoyalty struct {
	mock.Mock
}

func (m *mockLoyalty) AwardEmergencyAssist(ctx context.Context, award *models.EmergencyAssistAward) (*models.AwardReceipt, error) {
	args := m.Called(ctx, award)
	receipt, _ := args.Get(0).(*models.AwardReceipt)
	return receipt, args.Error(1)
}

var rider = models.NearbyActor{ID: "rider-1", Role: models.RoleRider, PushToken: "tok-1", Online: true}

func TestDeliver_ConnectedRiderGetsSocketMessage(t *testing.T) {
	notifier := &mockNotifier{}
	push := &mockPush{}
	gw := NewEmergencyGW(notifier, push, &mockLoyalty{})
	alert := &models.EmergencyAlert{AlertID: uuid.New(), RecipientID: "rider-1"}

	notifier.On("NotifyClient", "rider-1", constants.EventEmergencyAlert, alert).Return(nil)

	assert.NoError(t, gw.Deliver(context.Background(), rider, alert))
	notifier.AssertExpectations(t)
	push.AssertNotCalled(t, "SendPush", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeliver_FallsBackToPush(t *testing.T) {
	tests := []struct {
		name      string
		socketErr error
	}{
		{name: "not connected", socketErr: websocket.ErrClientNotConnected},
		{name: "socket write failed", socketErr: errors.New("broken pipe")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &mockNotifier{}
			push := &mockPush{}
			gw := NewEmergencyGW(notifier, push, &mockLoyalty{})
			alert := &models.EmergencyAlert{AlertID: uuid.New(), RecipientID: "rider-1"}

			notifier.On("NotifyClient", "rider-1", constants.EventEmergencyAlert, alert).Return(tt.socketErr)
			push.On("SendPush", mock.Anything, "tok-1", alert).Return(nil)

			assert.NoError(t, gw.Deliver(context.Background(), rider, alert))
			push.AssertExpectations(t)
		})
	}
}

func TestDeliver_PushFailure(t *testing.T) {
	notifier := &mockNotifier{}
	push := &mockPush{}
	gw := NewEmergencyGW(notifier, push, &mockLoyalty{})
	alert := &models.EmergencyAlert{AlertID: uuid.New()}

	notifier.On("NotifyClient", mock.Anything, mock.Anything, mock.Anything).Return(websocket.ErrClientNotConnected)
	push.On("SendPush", mock.Anything, mock.Anything, mock.Anything).Return(models.ErrDeliveryFailed)

	err := gw.Deliver(context.Background(), rider, alert)
	assert.ErrorIs(t, err, models.ErrDeliveryFailed)
}

func TestDeliver_ExpiredContext(t *testing.T) {
	gw := NewEmergencyGW(&mockNotifier{}, &mockPush{}, &mockLoyalty{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := gw.Deliver(ctx, rider, &models.EmergencyAlert{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDeliver_SocketWriteOutlivesDeadline(t *testing.T) {
	notifier := &mockNotifier{}
	push := &mockPush{}
	gw := NewEmergencyGW(notifier, push, &mockLoyalty{})
	alert := &models.EmergencyAlert{AlertID: uuid.New(), RecipientID: "rider-1"}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	notifier.On("NotifyClient", "rider-1", constants.EventEmergencyAlert, alert).
		Run(func(mock.Arguments) { cancel() }).
		Return(context.Canceled)

	err := gw.Deliver(ctx, rider, alert)
	assert.ErrorIs(t, err, context.Canceled)
	push.AssertNotCalled(t, "SendPush", mock.Anything, mock.Anything, mock.Anything)
}

func TestAwardEmergencyAssist_Forwards(t *testing.T) {
	loyalty := &mockLoyalty{}
	gw := NewEmergencyGW(&mockNotifier{}, &mockPush{}, loyalty)
	award := &models.EmergencyAssistAward{AwardID: uuid.New()}
	receipt := &models.AwardReceipt{AwardID: award.AwardID}

	loyalty.On("AwardEmergencyAssist", mock.Anything, award).Return(receipt, nil)

	got, err := gw.AwardEmergencyAssist(context.Background(), award)
	assert.NoError(t, err)
	assert.Equal(t, receipt, got)
}
