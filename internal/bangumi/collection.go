package bangumi

import "fmt"

// SubjectTypeAnime is the Bangumi subject type for anime.
const SubjectTypeAnime = 2

// CollectionType is the user's tracking state of a subject. The states are
// disjoint: a subject is in exactly one of them.
type CollectionType int

const (
	// CollectionWish is "want to watch".
	CollectionWish CollectionType = iota + 1

	// CollectionCompleted is "watched".
	CollectionCompleted

	// CollectionWatching is "currently watching".
	CollectionWatching

	// CollectionOnHold is "paused".
	CollectionOnHold

	// CollectionDropped is "abandoned".
	CollectionDropped
)

// String returns the human readable name used in logs and errors.
func (t CollectionType) String() string {
	switch t {
	case CollectionWish:
		return "wish"
	case CollectionCompleted:
		return "completed"
	case CollectionWatching:
		return "watching"
	case CollectionOnHold:
		return "on hold"
	case CollectionDropped:
		return "dropped"
	default:
		return fmt.Sprintf("type %d", int(t))
	}
}
