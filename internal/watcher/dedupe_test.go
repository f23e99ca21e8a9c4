package watcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/SmsAuto_Go/internal/domain"
)

func TestDeduperFirstSeen(t *testing.T) {
	d := NewDeduper(8, time.Minute)

	assert.True(t, d.FirstSeen(domain.Notification{Source: "a", Key: "1"}))
	assert.False(t, d.FirstSeen(domain.Notification{Source: "a", Key: "1"}))
	assert.True(t, d.FirstSeen(domain.Notification{Source: "b", Key: "1"}), "keys are scoped per source")
	assert.Equal(t, 2, d.Len())
}

func TestDeduperUpdatedNotificationIsNew(t *testing.T) {
	d := NewDeduper(8, time.Minute)
	first := domain.Notification{Source: "ingest", Key: "0|com.bank.x|1|null|10001", Title: "Bank", Text: "code 111111"}
	updated := first
	updated.Text = "new code 222222"

	assert.True(t, d.FirstSeen(first))
	assert.True(t, d.FirstSeen(updated), "same key with new text")
	assert.False(t, d.FirstSeen(updated), "exact resend")

	retitled := updated
	retitled.Title = "Bank (2)"
	assert.True(t, d.FirstSeen(retitled))

	expanded := updated
	expanded.BigText = "new code 222222, valid 5 min"
	assert.True(t, d.FirstSeen(expanded))
}

func TestDeduperFieldBoundaries(t *testing.T) {
	d := NewDeduper(8, time.Minute)

	assert.True(t, d.FirstSeen(domain.Notification{Key: "1", Title: "ab", Text: "c"}))
	assert.True(t, d.FirstSeen(domain.Notification{Key: "1", Title: "a", Text: "bc"}))
}

func TestDeduperEmptyKeyAlwaysNew(t *testing.T) {
	d := NewDeduper(8, time.Minute)

	assert.True(t, d.FirstSeen(domain.Notification{Source: "a"}))
	assert.True(t, d.FirstSeen(domain.Notification{Source: "a"}))
	assert.Zero(t, d.Len())
}

func TestDeduperExpires(t *testing.T) {
	d := NewDeduper(8, 20*time.Millisecond)
	n := domain.Notification{Source: "a", Key: "1"}

	assert.True(t, d.FirstSeen(n))
	assert.Eventually(t, func() bool { return d.FirstSeen(n) }, time.Second, 10*time.Millisecond)
}

func TestDeduperEvictsOldest(t *testing.T) {
	d := NewDeduper(2, time.Minute)

	d.FirstSeen(domain.Notification{Key: "1"})
	d.FirstSeen(domain.Notification{Key: "2"})
	d.FirstSeen(domain.Notification{Key: "3"})

	assert.True(t, d.FirstSeen(domain.Notification{Key: "1"}), "evicted key is new again")
}
