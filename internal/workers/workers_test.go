// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 JoyLabs

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/joylabs/catalogsync/internal/config"
	"github.com/joylabs/catalogsync/internal/service"
)

// fakeWorker tracks how many times Run was called.
type fakeWorker struct {
	runCount int
}

func (f *fakeWorker) Run() {
	f.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &fakeWorker{}
	w2 := &fakeWorker{}

	ws := &Workers{workers: []Worker{w1, w2}}
	ws.Run()

	for i, w := range []*fakeWorker{w1, w2} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run()
}

func TestWorkers_Stop_WithoutServices(t *testing.T) {
	ws := &Workers{}

	// Should not panic when no services are attached
	ws.Stop()
}

// fakeJob records the interval the catch-up worker starts it with.
type fakeJob struct {
	startCalls int
	stopCalls  int
	interval   time.Duration
}

func (f *fakeJob) Start(_ context.Context, interval time.Duration) {
	f.startCalls++
	f.interval = interval
}

func (f *fakeJob) Stop() {
	f.stopCalls++
}

func TestNewWorkers_RunStartsCatchupJob(t *testing.T) {
	job := &fakeJob{}
	services := &service.Services{CatchupJob: job}

	ws := NewWorkers(services, config.Sync{CatchupInterval: 2 * time.Minute})
	ws.Run()

	if job.startCalls != 1 {
		t.Errorf("expected catch-up job to be started once, got %d", job.startCalls)
	}
	if job.interval != 2*time.Minute {
		t.Errorf("expected interval 2m, got %v", job.interval)
	}

	ws.Stop()
	if job.stopCalls != 1 {
		t.Errorf("expected catch-up job to be stopped once, got %d", job.stopCalls)
	}
}
