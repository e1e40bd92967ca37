// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-travel-booking/internal/config"
	"github.com/MKhiriev/go-travel-booking/internal/logger"
	"github.com/MKhiriev/go-travel-booking/internal/mock"
	"go.uber.org/mock/gomock"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
	ctx      context.Context
}

func (m *mockWorker) Run(ctx context.Context) {
	m.runCount++
	m.ctx = ctx
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_PassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")

	w := &mockWorker{}
	ws := &Workers{workers: []Worker{w}}
	ws.Run(ctx)

	if w.ctx != ctx {
		t.Errorf("expected worker to receive the run context")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should not panic on empty workers list
	ws.Run(context.Background())
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
}

func TestWorkers_Run_Order(t *testing.T) {
	order := []int{}

	newOrderWorker := func(id int) Worker {
		return &orderWorker{id: id, order: &order}
	}

	ws := &Workers{workers: []Worker{
		newOrderWorker(1),
		newOrderWorker(2),
		newOrderWorker(3),
	}}
	ws.Run(context.Background())

	expected := []int{1, 2, 3}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%d, got %d", i, v, order[i])
		}
	}
}

func TestNewWorkers_WithoutPublisher(t *testing.T) {
	ws := NewWorkers(config.Workers{}, nil, logger.Nop())

	if ws.BookingEvents != nil {
		t.Errorf("expected booking events worker to be disabled")
	}
	if ws.EventQueue() != nil {
		t.Errorf("expected nil event queue")
	}
	if len(ws.workers) != 0 {
		t.Errorf("expected no workers, got %d", len(ws.workers))
	}
}

func TestNewWorkers_WithPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mock.NewMockEventPublisher(ctrl)

	ws := NewWorkers(config.Workers{QueueSize: 4}, publisher, logger.Nop())

	if ws.BookingEvents == nil {
		t.Fatalf("expected booking events worker")
	}
	if ws.EventQueue() == nil {
		t.Errorf("expected non-nil event queue")
	}
	if cap(ws.BookingEvents.queue) != 4 {
		t.Errorf("expected queue capacity 4, got %d", cap(ws.BookingEvents.queue))
	}
}

// orderWorker is a helper that appends its ID to a shared slice on Run.
type orderWorker struct {
	id    int
	order *[]int
}

func (o *orderWorker) Run(context.Context) {
	*o.order = append(*o.order, o.id)
}

func TestWorkers_Wait_ReturnsAfterCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mock.NewMockEventPublisher(ctrl)
	publisher.EXPECT().Close().Return(nil)

	ws := NewWorkers(config.Workers{}, publisher, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	ws.Run(ctx)
	cancel()

	ws.Wait()

	select {
	case <-ws.BookingEvents.Done():
	default:
		t.Errorf("expected booking events worker to be stopped")
	}
}

func TestWorkers_Wait_NoWorkers(t *testing.T) {
	ws := NewWorkers(config.Workers{}, nil, logger.Nop())

	// Should return immediately when nothing was started
	ws.Wait()
}
