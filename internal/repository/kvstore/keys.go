// Package kvstore implements the domain repositories on top of the
// key-value collaborator. Each owner's collection is stored as one JSON
// document under a fixed key; mutations are whole-collection
// read-modify-write cycles, which is safe only for a single writer.
package kvstore

// Storage key layout. The weallth_ prefix and per-owner suffixes must stay
// stable for compatibility with previously stored data.
const (
	keyPrefixGoals   = "weallth_goals_"
	keyPrefixProfile = "weallth_profile_"
	keyFeedback      = "weallth_feedback"
	keyUsers         = "weallth_users"
	keyToken         = "weallth_token"
	keyCurrentUser   = "weallth_current_user"
)

func goalsKey(ownerID string) string   { return keyPrefixGoals + ownerID }
func profileKey(ownerID string) string { return keyPrefixProfile + ownerID }
