package result

import (
	"github.com/drblury/pulsecheck/jsonutil"
)

// Status values carried by the mandatory "status" tag of every detail object.
const (
	StatusUp   = "up"
	StatusDown = "down"
)

// statusKey is the reserved detail field that carries the up/down tag.
const statusKey = "status"

// Details holds the detail object reported for a single check: the "status"
// tag plus whatever diagnostic fields the probe attached.
type Details map[string]any

// Status is a status record: a mapping from exactly one check key to its
// detail object. The key is fixed when the Check session is created.
type Status map[string]Details

// Data is the additional diagnostic payload accepted by Up and Down. It is a
// closed sum: Message wraps a plain string as {"message": ...}, Fields merges
// a mapping verbatim. Omitting data yields an empty detail object.
type Data interface {
	fields() map[string]any
}

// Message is a plain-string payload, normalized to a "message" field.
type Message string

func (m Message) fields() map[string]any {
	return map[string]any{"message": string(m)}
}

// Fields is a free-form payload merged into the detail object as-is.
type Fields map[string]any

func (f Fields) fields() map[string]any {
	return f
}

// Check is a builder session bound to a single check key. Its terminal
// operations Up and Down produce the status record for that key.
type Check struct {
	key string
}

// New starts a builder session for the given check key.
func New(key string) Check {
	return Check{key: key}
}

// Key returns the check key the session is bound to.
func (c Check) Key() string {
	return c.key
}

// Up produces a status record tagged "up", merged with the supplied data.
func (c Check) Up(data ...Data) Status {
	return c.status(StatusUp, data)
}

// Down produces a status record tagged "down", merged with the supplied data.
func (c Check) Down(data ...Data) Status {
	return c.status(StatusDown, data)
}

func (c Check) status(tag string, data []Data) Status {
	details := Details{}
	for _, d := range data {
		if d == nil {
			continue
		}
		for k, v := range d.fields() {
			details[k] = v
		}
	}
	// The tag is applied last so caller-supplied "status" fields can never
	// masquerade as the real outcome.
	details[statusKey] = tag

	return Status{c.key: details}
}

// Details returns the detail object of the record's single entry.
func (s Status) Details() Details {
	for _, d := range s {
		return d
	}
	return nil
}

// JSON renders the status record as a JSON document.
func (s Status) JSON() ([]byte, error) {
	return jsonutil.Marshal(s)
}
