package transform

import "sync"

// Reason identifies why a segment was handed to the direct transform.
type Reason int

const (
	// ReasonOddLength marks a segment whose length admits no radix-2 split.
	ReasonOddLength Reason = iota
	// ReasonDepthLimit marks a segment reached at the configured depth limit.
	ReasonDepthLimit
)

func (r Reason) String() string {
	switch r {
	case ReasonOddLength:
		return "odd-length"
	case ReasonDepthLimit:
		return "depth-limit"
	default:
		return "unknown"
	}
}

// MarshalText encodes the reason by name.
func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Notice describes one fallback from the recursive FFT to [Direct].
//
// A notice is informational only. The transform result is identical with or
// without an observer attached.
type Notice struct {
	Length int    `json:"length"` // segment length handed to Direct
	Depth  int    `json:"depth"`  // recursion depth of the segment, 0 for the top-level call
	Reason Reason `json:"reason"` // why the fallback was taken
}

// Observer receives fallback notices. It is called synchronously from the
// transforming goroutine.
type Observer func(Notice)

// Recorder collects notices. The zero value is ready to use and safe for
// concurrent use by multiple transforms.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

// Observe appends n. Pass r.Observe to [WithObserver].
func (r *Recorder) Observe(n Notice) {
	r.mu.Lock()
	r.notices = append(r.notices, n)
	r.mu.Unlock()
}

// Notices returns a copy of the recorded notices in emission order.
func (r *Recorder) Notices() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notice, len(r.notices))
	copy(out, r.notices)
	return out
}

// Len returns the number of recorded notices.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.notices)
}

