package constant

type contextKey string

// UserIDKey is the context key under which the auth middleware stores
// the authenticated user's id.
const UserIDKey contextKey = "user_id"
