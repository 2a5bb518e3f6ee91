package model

// ResponseMsg carries the outcome of a dispatched submission.
type ResponseMsg struct {
	RequestID  string
	Generation uint64
	Index      int
	Reply      Reply
	Err        error
}

// ModelsDetectedMsg carries the outcome of a model discovery call.
type ModelsDetectedMsg struct {
	BaseURL string
	Models  []string
	Err     error
}

// PingResultMsg carries the outcome of a connectivity probe.
type PingResultMsg struct {
	BaseURL string
	Err     error
}

// NotificationMsg is a transient notice for the user (a toast).
type NotificationMsg struct {
	Text string
}
