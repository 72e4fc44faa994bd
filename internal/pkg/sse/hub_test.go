package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubSubscribePublish(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("org-1")
	defer cleanup()

	hub.Publish("org-1", Event{OrganizationID: "org-1", Event: "check_log.created", Data: "payload"})

	select {
	case ev := <-ch:
		assert.Equal(t, "check_log.created", ev.Event)
		assert.Equal(t, "payload", ev.Data)
	default:
		t.Fatal("expected event on subscriber channel")
	}
}

func TestHubTenantScoping(t *testing.T) {
	hub := NewHub()

	chA, cleanupA := hub.Subscribe("org-a")
	defer cleanupA()
	chB, cleanupB := hub.Subscribe("org-b")
	defer cleanupB()

	hub.Publish("org-a", Event{OrganizationID: "org-a", Event: "check_log.created"})

	select {
	case <-chA:
	default:
		t.Fatal("org-a subscriber missed its event")
	}
	select {
	case <-chB:
		t.Fatal("org-b subscriber received another tenant's event")
	default:
	}
}

func TestHubCleanup(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("org-1")
	require.Equal(t, 1, hub.SubscriberCount("org-1"))

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount("org-1"))
	assert.Equal(t, 0, hub.TotalSubscribers())

	// publishing into an empty hub must not panic
	hub.Publish("org-1", Event{Event: "check_log.created"})
}

func TestHubFullChannelDoesNotBlock(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("org-1")
	defer cleanup()

	// channel capacity is 10; publishing more must not block
	for i := 0; i < 25; i++ {
		hub.Publish("org-1", Event{Event: "check_log.created", Data: i})
	}
}
