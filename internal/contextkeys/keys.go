package contextkeys

type contextKey string

const SessionContextKey contextKey = "session"
const CSRFTokenKey contextKey = "csrf_token"
