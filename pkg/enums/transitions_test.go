package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupStatusTransitions(t *testing.T) {
	cases := []struct {
		from    GroupStatus
		to      GroupStatus
		allowed bool
	}{
		{GroupStatusPending, GroupStatusAccepted, true},
		{GroupStatusPending, GroupStatusDeclined, true},
		{GroupStatusAccepted, GroupStatusDelivered, true},
		// delivery requires acceptance first
		{GroupStatusPending, GroupStatusDelivered, false},
		// no backward or no-op moves
		{GroupStatusAccepted, GroupStatusPending, false},
		{GroupStatusDelivered, GroupStatusDeclined, false},
		{GroupStatusDeclined, GroupStatusAccepted, false},
		{GroupStatusPending, GroupStatusPending, false},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusPending, OrderStatusAccepted, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusAccepted, OrderStatusDelivered, true},
		{OrderStatusAccepted, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusDelivered, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusAccepted, false},
		{OrderStatusAccepted, OrderStatusAccepted, false},
	}

	for _, tc := range cases {
		assert.Equalf(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestPaymentStatusTransitions(t *testing.T) {
	assert.True(t, PaymentStatusPending.CanTransitionTo(PaymentStatusCompleted))
	assert.True(t, PaymentStatusPending.CanTransitionTo(PaymentStatusFailed))
	assert.True(t, PaymentStatusCompleted.CanTransitionTo(PaymentStatusRefunded))

	assert.False(t, PaymentStatusCompleted.CanTransitionTo(PaymentStatusPending))
	assert.False(t, PaymentStatusFailed.CanTransitionTo(PaymentStatusCompleted))
	assert.False(t, PaymentStatusRefunded.CanTransitionTo(PaymentStatusCompleted))
}

func TestParseRejectsUnknownLabels(t *testing.T) {
	_, err := ParseGroupStatus("archived")
	assert.Error(t, err)

	_, err = ParseOrderStatus("shipped")
	assert.Error(t, err)

	_, err = ParsePaymentStatus("void")
	assert.Error(t, err)

	_, err = ParseOrderType("bulk")
	assert.Error(t, err)

	_, err = ParsePaymentMethod("barter")
	assert.Error(t, err)
}

func TestParseRoundTrips(t *testing.T) {
	got, err := ParseGroupStatus("accepted")
	assert.NoError(t, err)
	assert.Equal(t, GroupStatusAccepted, got)

	status, err := ParseOrderStatus("delivered")
	assert.NoError(t, err)
	assert.Equal(t, OrderStatusDelivered, status)

	method, err := ParsePaymentMethod("online")
	assert.NoError(t, err)
	assert.Equal(t, PaymentMethodOnline, method)
}
