package impl

import (
	"context"
	"testing"
	"time"

	"fileshare/internal/domain/entity"
	domainerrors "fileshare/internal/domain/errors"
	"fileshare/internal/domain/service"
	mockSvc "fileshare/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationDispatcher_SendCode(t *testing.T) {
	sms := mockSvc.NewMockSMSProvider(t)
	dispatcher := NewNotificationDispatcher(sms, newTestConfig(), newDiscardLogger())

	sms.EXPECT().Send(context.Background(), testPhone, "Your verification code is: 482913. This code will expire in 5 minutes.").
		Return(&service.SMSReceipt{MessageID: "SM1", Status: "queued"}, nil)

	require.NoError(t, dispatcher.SendCode(context.Background(), testPhone, "482913"))
}

func TestNotificationDispatcher_SendShareLink(t *testing.T) {
	sms := mockSvc.NewMockSMSProvider(t)
	dispatcher := NewNotificationDispatcher(sms, newTestConfig(), newDiscardLogger())
	share := &entity.FileShare{UploaderName: "Ada", FileName: "report.pdf", ReceiverPhone: testPhone}

	sms.EXPECT().Send(context.Background(), testPhone, "Ada shared a file with you!\n\nFile: report.pdf\n\nDownload: https://x/download/t").
		Return(&service.SMSReceipt{MessageID: "SM2"}, nil)

	require.NoError(t, dispatcher.SendShareLink(context.Background(), share, "https://x/download/t"))
}

func TestNotificationDispatcher_ReturnsProviderError(t *testing.T) {
	sms := mockSvc.NewMockSMSProvider(t)
	dispatcher := NewNotificationDispatcher(sms, newTestConfig(), newDiscardLogger())
	providerErr := domainerrors.NewTrialRestrictedError("twilio", 21608, "unverified number")

	sms.EXPECT().Send(context.Background(), testPhone, mock.AnythingOfType("string")).Return(nil, providerErr)

	err := dispatcher.SendCode(context.Background(), testPhone, "123456")

	assert.Equal(t, providerErr, err)
}

func TestDeliveryMessage(t *testing.T) {
	trial := deliveryMessage(domainerrors.NewTrialRestrictedError("twilio", 21608, ""))
	generic := deliveryMessage(errors.New("socket closed"))

	assert.Contains(t, trial, "not verified")
	assert.Equal(t, "Failed to send SMS, please try again later", generic)
}

func TestHumanMinutes(t *testing.T) {
	assert.Equal(t, "1 minute", humanMinutes(time.Minute))
	assert.Equal(t, "5 minutes", humanMinutes(5*time.Minute))
	assert.Equal(t, "10 minutes", humanMinutes(10*time.Minute))
}
