package session

// Role identifies who produced a conversation turn.
type Role string

const (
	RoleUser      Role = "User"
	RoleAssistant Role = "Assistant"
)

// Turn is one message exchange unit in a conversation.
type Turn struct {
	Role Role
	Text string
}

// MaxHistory is the per-user turn capacity. Appending beyond it evicts the
// oldest turn first.
const MaxHistory = 20

// history is a fixed-capacity deque of turns. The eviction rule is
// oldest-first: once capacity is reached, each append drops the front turn.
type history struct {
	capacity int
	turns    []Turn
}

func newHistory(capacity int) *history {
	return &history{
		capacity: capacity,
		turns:    make([]Turn, 0, capacity),
	}
}

func (h *history) append(t Turn) {
	if len(h.turns) >= h.capacity {
		h.turns = append(h.turns[1:], t)
	} else {
		h.turns = append(h.turns, t)
	}
}

// snapshot returns a copy so callers never hold references to internal state.
func (h *history) snapshot() []Turn {
	out := make([]Turn, len(h.turns))
	copy(out, h.turns)
	return out
}

func (h *history) len() int {
	return len(h.turns)
}
