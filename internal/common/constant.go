package common

// UserIDHeaderName is the HTTP header used to carry the anonymous client
// identifier on outbound requests to the consultation endpoints.
const UserIDHeaderName = "X-User-Id"

// Persistent store keys. The sync scheduler and the history store share one
// local store but use disjoint keys.
const (
	LastSyncKey = "legal_last_sync"
	HistoryKey  = "legal_history"
	ClientIDKey = "legal_client_id"
)
