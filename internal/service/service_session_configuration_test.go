package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-appconfig-reader/internal/adapter"
	"github.com/MKhiriev/go-appconfig-reader/internal/logger"
	"github.com/MKhiriev/go-appconfig-reader/internal/mock"
	"github.com/MKhiriev/go-appconfig-reader/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSessionSvc(t *testing.T, ctrl *gomock.Controller) (SessionConfigurationService, *mock.MockConfigurationSessionClient) {
	t.Helper()
	client := mock.NewMockConfigurationSessionClient(ctrl)
	return NewSessionConfigurationService(client, logger.Nop()), client
}

func TestSessionConfigurationService_Fetch(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    any
	}{
		{
			name:    "valid json",
			content: []byte(`{"timeout": 30, "features": ["a"]}`),
			want:    map[string]any{"timeout": json.Number("30"), "features": []any{"a"}},
		},
		{
			name:    "empty payload",
			content: nil,
			want:    map[string]any{},
		},
		{
			name:    "non-json text",
			content: []byte("timeout: 30"),
			want:    map[string]any{"raw_content": "timeout: 30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, client := newTestSessionSvc(t, ctrl)
			ctx := context.Background()

			gomock.InOrder(
				client.EXPECT().StartConfigurationSession(ctx, demoIdentity).Return("initial-token", nil),
				client.EXPECT().GetLatestConfiguration(ctx, "initial-token").Return(models.LatestConfiguration{
					Content:          tt.content,
					NextPollToken:    "next-token",
					NextPollInterval: time.Minute,
				}, nil),
			)

			got, err := svc.Fetch(ctx, demoIdentity)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSessionConfigurationService_Fetch_LogsFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockConfigurationSessionClient(ctrl)
	log, buf := newBufferedLogger(t)
	svc := NewSessionConfigurationService(client, log)

	client.EXPECT().StartConfigurationSession(gomock.Any(), demoIdentity).Return("t", nil)
	client.EXPECT().GetLatestConfiguration(gomock.Any(), "t").Return(models.LatestConfiguration{Content: []byte("not json")}, nil)

	_, err := svc.Fetch(context.Background(), demoIdentity)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "returning raw content")
	assert.Contains(t, buf.String(), `\"raw_content\": \"not json\"`)
	assert.Contains(t, buf.String(), `"next_poll_token":false`)
}

func TestSessionConfigurationService_Fetch_StartSessionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, client := newTestSessionSvc(t, ctrl)
	cause := fmt.Errorf("start configuration session: %w", adapter.ErrNotFound)

	client.EXPECT().StartConfigurationSession(gomock.Any(), demoIdentity).Return("", cause)
	client.EXPECT().GetLatestConfiguration(gomock.Any(), gomock.Any()).Times(0)

	got, err := svc.Fetch(context.Background(), demoIdentity)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, cause)
}

func TestSessionConfigurationService_Fetch_GetLatestError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, client := newTestSessionSvc(t, ctrl)
	cause := errors.New("connection reset")

	client.EXPECT().StartConfigurationSession(gomock.Any(), demoIdentity).Return("t", nil)
	client.EXPECT().GetLatestConfiguration(gomock.Any(), "t").Return(models.LatestConfiguration{}, cause)

	got, err := svc.Fetch(context.Background(), demoIdentity)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrRemote)
	assert.ErrorIs(t, err, cause)
}

func TestSessionConfigurationService_Fetch_InvalidUTF8(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, client := newTestSessionSvc(t, ctrl)

	client.EXPECT().StartConfigurationSession(gomock.Any(), demoIdentity).Return("t", nil)
	client.EXPECT().GetLatestConfiguration(gomock.Any(), "t").Return(models.LatestConfiguration{Content: []byte{0xc3, 0x28}}, nil)

	got, err := svc.Fetch(context.Background(), demoIdentity)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestSessionConfigurationService_Fetch_KeepsLargeIntegers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockConfigurationSessionClient(ctrl)
	log, buf := newBufferedLogger(t)
	svc := NewSessionConfigurationService(client, log)

	client.EXPECT().StartConfigurationSession(gomock.Any(), demoIdentity).Return("t", nil)
	client.EXPECT().GetLatestConfiguration(gomock.Any(), "t").
		Return(models.LatestConfiguration{Content: []byte(`{"account_id": 12345678901234567890}`)}, nil)

	got, err := svc.Fetch(context.Background(), demoIdentity)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"account_id": json.Number("12345678901234567890")}, got)
	assert.Contains(t, buf.String(), `\"account_id\": 12345678901234567890`)
}
