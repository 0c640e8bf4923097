// timeouts.go implements adaptive timeouts for feeder gateway requests. A
// failed request moves the client to the next, longer timeout and a successful
// one moves it back.

package feeder

import (
	"fmt"
	"html"
	"math"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	growthFactorFast    = 2
	growthFactorMedium  = 1.5
	growthFactorSlow    = 1.2
	fastGrowThreshold   = 1 * time.Minute
	mediumGrowThreshold = 2 * time.Minute
	timeoutsCount       = 30
	DefaultTimeouts     = "5s"
)

// Timeouts is an ascending list of request timeouts with a cursor on the one
// in use.
type Timeouts struct {
	mu         sync.RWMutex
	timeouts   []time.Duration
	curTimeout int
}

func (t *Timeouts) Current() time.Duration {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.timeouts[t.curTimeout]
}

func (t *Timeouts) Decrease() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.curTimeout > 0 {
		t.curTimeout--
	}
}

func (t *Timeouts) Increase() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.curTimeout < len(t.timeouts)-1 {
		t.curTimeout++
	}
}

func (t *Timeouts) String() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	timeouts := make([]string, len(t.timeouts))
	for i, timeout := range t.timeouts {
		timeouts[i] = timeout.String()
	}
	return strings.Join(timeouts, ",")
}

func newFixedTimeouts(timeouts []time.Duration) *Timeouts {
	return &Timeouts{timeouts: timeouts}
}

// newDynamicTimeouts grows the initial timeout geometrically: doubling below
// one minute, by half up to two minutes and by a fifth after that.
func newDynamicTimeouts(initial time.Duration) *Timeouts {
	timeouts := make([]time.Duration, timeoutsCount)
	timeouts[0] = initial
	for i := 1; i < timeoutsCount; i++ {
		timeouts[i] = nextTimeout(timeouts[i-1])
	}
	return newFixedTimeouts(timeouts)
}

func nextTimeout(prev time.Duration) time.Duration {
	factor := growthFactorSlow
	switch {
	case prev < fastGrowThreshold:
		factor = growthFactorFast
	case prev < mediumGrowThreshold:
		factor = growthFactorMedium
	}
	return time.Duration(math.Ceil(prev.Seconds()*factor)) * time.Second
}

func newTimeouts(timeouts []time.Duration, fixed bool) *Timeouts {
	if len(timeouts) > 1 || fixed {
		return newFixedTimeouts(timeouts)
	}
	return newDynamicTimeouts(timeouts[0])
}

func defaultTimeouts() *Timeouts {
	timeouts, fixed, err := ParseTimeouts(DefaultTimeouts)
	if err != nil {
		panic(err)
	}
	return newTimeouts(timeouts, fixed)
}

// ParseTimeouts parses a comma separated list of durations.
// A single value without a trailing comma asks for dynamic timeouts starting
// at that value; "5s," pins the timeout to 5s. Lists must be ascending.
func ParseTimeouts(value string) ([]time.Duration, bool, error) {
	if value == "" {
		return nil, true, fmt.Errorf("timeouts are not set")
	}

	values := strings.Split(value, ",")
	for i := range values {
		values[i] = strings.TrimSpace(values[i])
	}

	hasTrailingComma := values[len(values)-1] == ""
	if hasTrailingComma {
		values = values[:len(values)-1]
	}

	timeouts := make([]time.Duration, 0, len(values))
	for i, v := range values {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, false, fmt.Errorf("parsing timeout parameter number %d: %v", i+1, err)
		}
		timeouts = append(timeouts, d)
	}
	if len(timeouts) == 0 {
		return nil, false, fmt.Errorf("timeouts are not set")
	}
	if len(timeouts) == 1 {
		return timeouts, hasTrailingComma, nil
	}

	for i := 1; i < len(timeouts); i++ {
		if timeouts[i] <= timeouts[i-1] {
			return nil, false, fmt.Errorf("timeout values must be in ascending order, got %v <= %v", timeouts[i], timeouts[i-1])
		}
	}

	if len(timeouts) > timeoutsCount {
		return nil, false, fmt.Errorf("exceeded max amount of allowed timeout parameters. Set %d but max is %d", len(timeouts), timeoutsCount)
	}
	return timeouts, false, nil
}

// HTTPTimeoutsSettings reads (GET) or replaces (PUT ?timeouts=) the client
// timeouts.
func HTTPTimeoutsSettings(w http.ResponseWriter, r *http.Request, client *Client) {
	switch r.Method {
	case http.MethodGet:
		fmt.Fprintf(w, "%s\n", client.timeouts.Load().String())
	case http.MethodPut:
		timeoutsStr := r.URL.Query().Get("timeouts")
		if timeoutsStr == "" {
			http.Error(w, "missing timeouts query parameter", http.StatusBadRequest)
			return
		}

		newTimeouts, fixed, err := ParseTimeouts(timeoutsStr)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		client.WithTimeouts(newTimeouts, fixed)
		fmt.Fprintf(w, "Replaced timeouts with '%s' successfully\n", html.EscapeString(timeoutsStr))
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
