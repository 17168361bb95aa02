//go:build unit

package store_test

import (
	"testing"
	"time"

	"kidcare-booking/internal/infra"
	"kidcare-booking/internal/pkg/clock"
	"kidcare-booking/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

func TestUINotificationExpires(t *testing.T) {
	clk := clock.NewMockClock(epoch)
	ui := store.NewUI(clk, 5*time.Second)

	id := ui.AddNotification("Booking created", store.NotifySuccess)
	require.Len(t, ui.Notifications(), 1)
	assert.Equal(t, id, ui.Notifications()[0].ID)
	assert.Equal(t, store.NotifySuccess, ui.Notifications()[0].Type)

	clk.Add(4999 * time.Millisecond)
	assert.Len(t, ui.Notifications(), 1)

	clk.Add(time.Millisecond)
	assert.Empty(t, ui.Notifications())
	assert.Zero(t, clk.Pending())
}

func TestUIRemoveNotificationStopsTimer(t *testing.T) {
	clk := clock.NewMockClock(epoch)
	ui := store.NewUI(clk, 5*time.Second)

	first := ui.AddNotification("one", store.NotifyInfo)
	ui.AddNotification("two", store.NotifyError)
	require.Equal(t, 2, clk.Pending())

	ui.RemoveNotification(first)
	assert.Equal(t, 1, clk.Pending())
	require.Len(t, ui.Notifications(), 1)
	assert.Equal(t, "two", ui.Notifications()[0].Message)

	clk.Add(5 * time.Second)
	assert.Empty(t, ui.Notifications())
}

func TestUIRemoveUnknownNotification(t *testing.T) {
	ui := store.NewUI(clock.NewMockClock(epoch), 0)
	ui.AddNotification("keep", store.NotifyInfo)

	ui.RemoveNotification("does-not-exist")
	assert.Len(t, ui.Notifications(), 1)
}

func TestUINotificationIDsAreUnique(t *testing.T) {
	ui := store.NewUI(clock.NewMockClock(epoch), time.Minute)

	seen := make(map[string]struct{})
	for range 100 {
		id := ui.AddNotification("same message", store.NotifyInfo)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, ui.Notifications(), 100)
}

func TestUINotificationDefaultsToInfo(t *testing.T) {
	ui := store.NewUI(clock.NewMockClock(epoch), time.Minute)
	ui.AddNotification("hello", "")
	ui.AddNotification("hello", store.NotificationType("warning"))

	for _, n := range ui.Notifications() {
		assert.Equal(t, store.NotifyInfo, n.Type)
	}
}

func TestUIZeroTTLUsesDefault(t *testing.T) {
	clk := clock.NewMockClock(epoch)
	ui := store.NewUI(clk, 0)
	ui.AddNotification("hello", store.NotifyInfo)

	clk.Add(store.DefaultNotificationTTL - time.Millisecond)
	assert.Len(t, ui.Notifications(), 1)
	clk.Add(time.Millisecond)
	assert.Empty(t, ui.Notifications())
}

func TestUIErrors(t *testing.T) {
	ui := store.NewUI(clock.NewMockClock(epoch), 0)
	ui.AddError(*infra.NewAPIError(infra.KindBackend, 422, "SLOT_UNAVAILABLE", "Slot taken", nil))
	ui.AddError(*infra.NewAPIError(infra.KindTransport, 0, infra.CodeNetworkError, "offline", nil))

	errs := ui.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, "SLOT_UNAVAILABLE", errs[0].Code)
	assert.Equal(t, infra.CodeNetworkError, errs[1].Code)

	ui.ClearErrors()
	assert.Empty(t, ui.Errors())
	ui.ClearErrors()
	assert.Empty(t, ui.Errors())
}

func TestUILoadingLastWriterWins(t *testing.T) {
	ui := store.NewUI(clock.NewMockClock(epoch), 0)
	ui.SetLoading(true)
	ui.SetLoading(true)
	ui.SetLoading(false)
	assert.False(t, ui.Loading())
	assert.False(t, ui.Snapshot().Loading)
}

func TestUICloseCancelsTimers(t *testing.T) {
	clk := clock.NewMockClock(epoch)
	ui := store.NewUI(clk, time.Second)
	ui.AddNotification("a", store.NotifyInfo)
	ui.AddNotification("b", store.NotifyInfo)

	ui.Close()
	assert.Zero(t, clk.Pending())
}
