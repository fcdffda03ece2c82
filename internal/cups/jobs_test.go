package cups

import (
	"errors"
	"strings"
	"testing"
)

func TestJobStatusWholeQueue(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"lpstat -o": "Canon_TS3300-42  felipe  12288  Tue 12 Aug 2025\n",
	}}
	client := newFakeClient(r)

	out, err := client.JobStatus("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Canon_TS3300-42  felipe  12288  Tue 12 Aug 2025" {
		t.Fatalf("unexpected output %q", out)
	}
	if r.callList()[0] != "lpstat -o" {
		t.Fatalf("unexpected command %q", r.callList()[0])
	}
}

func TestJobStatusScopedToJob(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"lpstat -o 42": "Canon_TS3300-42  felipe  12288  Tue 12 Aug 2025\n",
	}}
	client := newFakeClient(r)

	if _, err := client.JobStatus("42"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.callList()[0] != "lpstat -o 42" {
		t.Fatalf("unexpected command %q", r.callList()[0])
	}
}

func TestJobStatusFailureIsWrapped(t *testing.T) {
	r := &fakeRunner{errs: map[string]error{"lpstat -o": errors.New("scheduler is not running")}}
	client := newFakeClient(r)

	_, err := client.JobStatus("")
	if err == nil || !strings.Contains(err.Error(), "failed to query job status") {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestCancelJob(t *testing.T) {
	r := &fakeRunner{}
	client := newFakeClient(r)

	if err := client.CancelJob("42"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.callList()[0] != "cancel 42" {
		t.Fatalf("unexpected command %q", r.callList()[0])
	}
}

func TestCancelJobFailureIsWrapped(t *testing.T) {
	r := &fakeRunner{errs: map[string]error{"cancel": errors.New("job already completed")}}
	client := newFakeClient(r)

	err := client.CancelJob("42")
	if err == nil || !strings.Contains(err.Error(), "failed to cancel job 42") {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}
