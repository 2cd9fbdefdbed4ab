package types

// Role tags the author of a conversation turn.
type Role int

const (
	_         Role = iota
	User           // User role
	Assistant      // Assistant role
	System         // System role
	Tool           // Tool role
)

func (r Role) String() string {
	switch r {
	case User:
		return "user"
	case Assistant:
		return "assistant"
	case System:
		return "system"
	case Tool:
		return "tool"
	}
	return "unknown"
}
