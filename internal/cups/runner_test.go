package cups

import (
	"strings"
	"sync"
)

// fakeRunner replays canned command transcripts. Outputs and errors are
// matched by command-line prefix so variable arguments (temp file paths)
// still hit their entry.
type fakeRunner struct {
	mu      sync.Mutex
	calls   []string
	outputs map[string]string
	errs    map[string]error
	onRun   func(name string, args []string)
}

func (f *fakeRunner) Run(name string, args ...string) (string, error) {
	cmd := strings.Join(append([]string{name}, args...), " ")
	f.mu.Lock()
	f.calls = append(f.calls, cmd)
	f.mu.Unlock()

	if f.onRun != nil {
		f.onRun(name, args)
	}
	for key, err := range f.errs {
		if strings.HasPrefix(cmd, key) {
			return "", err
		}
	}
	for key, out := range f.outputs {
		if strings.HasPrefix(cmd, key) {
			return out, nil
		}
	}
	return "", nil
}

func (f *fakeRunner) callList() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeRunner) callsWithPrefix(prefix string) int {
	n := 0
	for _, c := range f.callList() {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

const statusReport = `printer Canon_TS3300 is idle.  enabled since Tue 12 Aug 2025
printer Office_Laser disabled since Mon 11 Aug 2025 -
	reason unknown
system default destination: Canon_TS3300
`

const deviceReport = `device for Canon_TS3300: usb://Canon/TS3300?serial=1AB2C3
device for Office_Laser: ipp://192.168.1.50/ipp/print
`

func newFakeClient(r *fakeRunner) *Client {
	if r.outputs == nil {
		r.outputs = map[string]string{}
	}
	if _, ok := r.outputs["lpstat -p -d"]; !ok {
		r.outputs["lpstat -p -d"] = statusReport
	}
	if _, ok := r.outputs["lpstat -v"]; !ok {
		r.outputs["lpstat -v"] = deviceReport
	}
	return New(WithRunner(r))
}
