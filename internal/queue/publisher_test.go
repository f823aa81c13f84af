package queue

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"
)

// silentBroker accepts TCP connections and never speaks AMQP.
func silentBroker(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	var (
		mu    sync.Mutex
		conns []net.Conn
	)
	t.Cleanup(func() {
		_ = ln.Close()
		mu.Lock()
		defer mu.Unlock()
		for _, c := range conns {
			_ = c.Close()
		}
	})
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			mu.Lock()
			conns = append(conns, conn)
			mu.Unlock()
		}
	}()
	return "amqp://guest:guest@" + ln.Addr().String() + "/"
}

func TestPublish_StalledBrokerHonoursDeadline(t *testing.T) {
	p := NewPublisher(silentBroker(t))
	ctx, cancel := context.WithTimeout(testContext(t), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := p.Publish(ctx, Event{Type: VenueListed, EntityID: 1})
	if err == nil {
		t.Fatal("expected an error from a broker that never answers")
	}
	if took := time.Since(start); took > 2*time.Second {
		t.Errorf("Publish took %v with a 200ms deadline", took)
	}
}

func TestPublish_CancelledContext(t *testing.T) {
	p := NewPublisher(silentBroker(t))
	ctx, cancel := context.WithCancel(testContext(t))
	cancel()

	if err := p.Publish(ctx, Event{Type: VenueListed}); err == nil {
		t.Fatal("expected an error for a cancelled context")
	}
}
