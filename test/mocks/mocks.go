package mocks

import (
	"context"
	"strings"
	"sync"

	"github.com/hiro2620/sphero-controll/internal/application/ports"
)

// FakeRunner records every command and returns scripted results.
// FailOn and Outputs match on the longest command-line prefix, so
// "apt-get install" matches "apt-get install -y python3".
type FakeRunner struct {
	mu sync.Mutex

	// Calls holds each executed command line in order
	Calls []string

	// FailOn maps a command-line prefix to the error Run/Output returns
	FailOn map[string]error

	// Outputs maps a command-line prefix to the output Output returns
	Outputs map[string]string
}

// NewFakeRunner creates an empty fake runner
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		FailOn:  make(map[string]error),
		Outputs: make(map[string]string),
	}
}

// Run records the command and returns the scripted error, if any
func (r *FakeRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := r.record(name, args...)
	return r.errorFor(cmd)
}

// Output records the command and returns the scripted output
func (r *FakeRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	cmd := r.record(name, args...)
	if err := r.errorFor(cmd); err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	out, match := "", ""
	for prefix, o := range r.Outputs {
		if strings.HasPrefix(cmd, prefix) && len(prefix) > len(match) {
			out, match = o, prefix
		}
	}
	return out, nil
}

// CalledWith reports whether any recorded command starts with prefix
func (r *FakeRunner) CalledWith(prefix string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.Calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

func (r *FakeRunner) record(name string, args ...string) string {
	cmd := strings.TrimSpace(name + " " + strings.Join(args, " "))
	r.mu.Lock()
	r.Calls = append(r.Calls, cmd)
	r.mu.Unlock()
	return cmd
}

func (r *FakeRunner) errorFor(cmd string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var err error
	match := ""
	for prefix, e := range r.FailOn {
		if strings.HasPrefix(cmd, prefix) && len(prefix) > len(match) {
			err, match = e, prefix
		}
	}
	return err
}

// FakePublisher records published provision reports
type FakePublisher struct {
	Reports    []ports.Report
	PublishErr error
}

// Publish records the report
func (p *FakePublisher) Publish(ctx context.Context, report ports.Report) error {
	p.Reports = append(p.Reports, report)
	return p.PublishErr
}

// Describe names the fake sink
func (p *FakePublisher) Describe() string {
	return "fake-sink"
}
