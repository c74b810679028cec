package store

import "time"

// Run is one invocation of the runner.
type Run struct {
	ID        string        `json:"id"`
	Mode      string        `json:"mode"`
	StartedAt time.Time     `json:"started_at"`
	Elapsed   time.Duration `json:"elapsed_ns"`
	Finished  bool          `json:"finished"`
}

// Result is one solver outcome within a run.
type Result struct {
	RunID    string        `json:"run_id"`
	Seq      int           `json:"seq"`
	Solution string        `json:"solution"`
	Answer   string        `json:"answer"`
	Present  bool          `json:"present"`
	Verdict  string        `json:"verdict"`
	Elapsed  time.Duration `json:"elapsed_ns"`

	// Mode is filled from the owning run on read; it is not written.
	Mode string `json:"mode,omitempty"`
}

// Filter narrows ReadResults. Zero values match everything.
type Filter struct {
	RunID    string
	Solution string
	Limit    int
}
