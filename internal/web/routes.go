package web

const (
	Posts    = "/posts"
	PostByID = "/posts/{id}"
	Login    = "/login"
	Logout   = "/logout"
	Register = "/register"
	Me       = "/me"
	Health   = "/health"
	Metrics  = "/metrics"
)
