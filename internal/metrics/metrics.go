package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"path", "method", "status"})

	PostsUpdated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "posts_updated_total",
		Help: "Post update attempts by outcome",
	}, []string{"outcome"})

	AuthzDenials = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "authz_denials_total",
		Help: "Authorization denials by action and caller role",
	}, []string{"action", "role"})
)
