package support

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/marketsync/internal/client/api"
	"github.com/iudanet/marketsync/internal/client/notify"
	"github.com/iudanet/marketsync/internal/models"
	pkgapi "github.com/iudanet/marketsync/pkg/api"
)

type recorder struct{ notices []notify.Notice }

func (r *recorder) Publish(n notify.Notice) { r.notices = append(r.notices, n) }

func TestRequestRefund(t *testing.T) {
	remote := &RemoteMock{
		CreateRefundFunc: func(ctx context.Context, req pkgapi.CreateRefundRequest) (*models.Refund, error) {
			return &models.Refund{ID: "r-1", OrderID: req.OrderID, Reason: req.Reason, Amount: req.Amount, Status: models.RefundRequested}, nil
		},
	}
	pub := &recorder{}
	s := NewService(remote, pub, nil)

	refund, err := s.RequestRefund(context.Background(), " o-1 ", "  damaged box ", 5000)
	require.NoError(t, err)
	assert.Equal(t, models.RefundRequested, refund.Status)

	calls := remote.CreateRefundCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, pkgapi.CreateRefundRequest{OrderID: "o-1", Reason: "damaged box", Amount: 5000}, calls[0].Req)

	require.Len(t, pub.notices, 1)
	assert.Equal(t, notify.LevelSuccess, pub.notices[0].Level)
}

func TestRequestRefund_Validation(t *testing.T) {
	remote := &RemoteMock{}
	s := NewService(remote, nil, nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		orderID string
		reason  string
		amount  int64
	}{
		{name: "no order", orderID: "", reason: "broken", amount: 100},
		{name: "zero amount", orderID: "o-1", reason: "broken", amount: 0},
		{name: "blank reason", orderID: "o-1", reason: "   ", amount: 100},
		{name: "long reason", orderID: "o-1", reason: strings.Repeat("x", 501), amount: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.RequestRefund(ctx, tt.orderID, tt.reason, tt.amount)
			assert.Error(t, err)
		})
	}
	assert.Empty(t, remote.CreateRefundCalls())
}

func TestRequestRefund_BusinessErrorVerbatim(t *testing.T) {
	remote := &RemoteMock{
		CreateRefundFunc: func(ctx context.Context, req pkgapi.CreateRefundRequest) (*models.Refund, error) {
			return nil, &api.BusinessError{Op: "create refund", Status: 409, Message: "A refund for this order already exists"}
		},
	}
	pub := &recorder{}
	s := NewService(remote, pub, nil)

	_, err := s.RequestRefund(context.Background(), "o-1", "late", 100)
	require.Error(t, err)
	assert.True(t, api.IsBusiness(err))
	require.Len(t, pub.notices, 1)
	assert.Equal(t, "A refund for this order already exists", pub.notices[0].Message)
}

func TestApproveReject(t *testing.T) {
	remote := &RemoteMock{
		UpdateRefundFunc: func(ctx context.Context, refundID string, req pkgapi.UpdateRefundRequest) (*models.Refund, error) {
			return &models.Refund{ID: refundID, Status: req.Status, Note: req.Note}, nil
		},
	}
	s := NewService(remote, nil, nil)
	ctx := context.Background()

	r, err := s.Approve(ctx, "r-1", " ok ")
	require.NoError(t, err)
	assert.Equal(t, models.RefundApproved, r.Status)
	assert.Equal(t, "ok", r.Note)

	r, err = s.Reject(ctx, "r-2", "")
	require.NoError(t, err)
	assert.Equal(t, models.RefundRejected, r.Status)

	_, err = s.Approve(ctx, "", "")
	assert.Error(t, err)
	assert.Len(t, remote.UpdateRefundCalls(), 2)
}

func TestConversation(t *testing.T) {
	remote := &RemoteMock{
		CreateConversationFunc: func(ctx context.Context, req pkgapi.CreateConversationRequest) (*models.Conversation, error) {
			return &models.Conversation{ID: "c-1", Subject: req.Subject, Status: "open"}, nil
		},
		SendMessageFunc: func(ctx context.Context, conversationID, body string) (*models.Message, error) {
			return &models.Message{ID: "m-2", ConversationID: conversationID, Body: body}, nil
		},
		ListMessagesFunc: func(ctx context.Context, conversationID string) ([]models.Message, error) {
			return []models.Message{{ID: "m-1"}, {ID: "m-2"}}, nil
		},
	}
	s := NewService(remote, nil, nil)
	ctx := context.Background()

	conv, err := s.OpenConversation(ctx, "Where is my order?", "It has been a week")
	require.NoError(t, err)
	assert.Equal(t, "c-1", conv.ID)

	msg, err := s.Send(ctx, conv.ID, " any news? ")
	require.NoError(t, err)
	assert.Equal(t, "any news?", msg.Body)

	msgs, err := s.Messages(ctx, conv.ID)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)

	_, err = s.Send(ctx, conv.ID, "")
	assert.Error(t, err)
	_, err = s.Send(ctx, "", "hello")
	assert.ErrorIs(t, err, ErrConversationRequired)
	_, err = s.OpenConversation(ctx, "", "hello")
	assert.Error(t, err)
	assert.Len(t, remote.SendMessageCalls(), 1)
}
