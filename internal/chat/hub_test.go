// internal/chat/hub_test.go

package chat

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitForOnline(t *testing.T, hub *Hub, userID int64) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for !hub.IsUserOnline(userID) {
		if time.Now().After(deadline) {
			t.Fatalf("user %d never came online", userID)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestSendToUserDeliversToOpenSession(t *testing.T) {
	var pushed int32
	hub := NewHub(func(int64, string, interface{}) { atomic.AddInt32(&pushed, 1) })
	go hub.Run()
	defer hub.Shutdown()

	client := NewClient(hub, nil, 9, nil)
	hub.register <- client
	waitForOnline(t, hub, 9)

	hub.SendToUser(9, WSTypeNewMatch, map[string]int64{"match_id": 5})

	select {
	case raw := <-client.send:
		var msg WSMessage
		require.NoError(t, json.Unmarshal(raw, &msg))
		assert.Equal(t, WSTypeNewMatch, msg.Type)
	case <-time.After(time.Second):
		t.Fatal("nothing delivered to the open session")
	}
	assert.Zero(t, atomic.LoadInt32(&pushed), "push fallback must not fire for an online user")
}

// Sends racing against connect/disconnect must never hit a closed send
// channel. Run with -race.
func TestSendToUserDuringDisconnect(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()
	defer hub.Shutdown()

	done := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
					hub.SendToUser(7, WSTypeMessage, map[string]string{"content": "hi"})
				}
			}
		}()
	}

	for i := 0; i < 2000; i++ {
		client := NewClient(hub, nil, 7, nil)
		hub.register <- client
		hub.unregister <- client
	}

	close(done)
	wg.Wait()
}

func TestShutdownWaitsForPushFallback(t *testing.T) {
	var delivered int32
	hub := NewHub(func(userID int64, event string, payload interface{}) {
		time.Sleep(50 * time.Millisecond)
		atomic.AddInt32(&delivered, 1)
	})
	go hub.Run()

	hub.SendToUser(42, WSTypeNewMatch, map[string]int64{"match_id": 1})
	hub.Shutdown()

	assert.EqualValues(t, 1, atomic.LoadInt32(&delivered), "shutdown returned before the fallback finished")
}
