package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAppointmentStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "rejected"} {
		got, ok := ParseAppointmentStatus(s)
		assert.True(t, ok, s)
		assert.Equal(t, AppointmentStatus(s), got)
	}

	for _, s := range []string{"", "cancelled", "PENDING", "done"} {
		_, ok := ParseAppointmentStatus(s)
		assert.False(t, ok, s)
	}
}

func TestAppointmentStatus_Terminal(t *testing.T) {
	assert.False(t, AppointmentPending.Terminal())
	assert.True(t, AppointmentConfirmed.Terminal())
	assert.True(t, AppointmentRejected.Terminal())
}

func TestAppointmentStatus_Active(t *testing.T) {
	assert.True(t, AppointmentPending.Active())
	assert.True(t, AppointmentConfirmed.Active())
	assert.False(t, AppointmentRejected.Active())
}

func TestParseRole(t *testing.T) {
	got, ok := ParseRole("customer")
	assert.True(t, ok)
	assert.Equal(t, RoleCustomer, got)

	// Legacy documents stored "client".
	got, ok = ParseRole("client")
	assert.True(t, ok)
	assert.Equal(t, RoleCustomer, got)

	got, ok = ParseRole("worker")
	assert.True(t, ok)
	assert.Equal(t, RoleWorker, got)

	_, ok = ParseRole("admin")
	assert.False(t, ok)
	_, ok = ParseRole("")
	assert.False(t, ok)
}
