package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/bornholm/civicadmin/pkg/client"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameAPIRequestsTotal          = "api_requests_total"
	NameAPIRequestDurationSeconds = "api_request_duration_seconds"
	NameAPIRetriesTotal           = "api_retries_total"
	LabelHost                     = "host"
	LabelAPI                      = "api"
	LabelMethod                   = "method"
	LabelStatus                   = "status"
)

var APIRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameAPIRequestsTotal,
		Help:      "Total admin and learning API requests",
		Namespace: Namespace,
	},
	[]string{LabelAPI, LabelMethod, LabelStatus},
)

var APIRequestDurationSeconds = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:      NameAPIRequestDurationSeconds,
		Help:      "Duration of admin and learning API requests",
		Namespace: Namespace,
		Buckets:   prometheus.DefBuckets,
	},
	[]string{LabelAPI, LabelMethod},
)

var APIRetriesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameAPIRetriesTotal,
		Help:      "Total requests retried after being rate limited",
		Namespace: Namespace,
	},
	[]string{LabelHost},
)

// ObserveRetry counts a rate limited request about to be retried.
func ObserveRetry(req *http.Request, attempt int, wait time.Duration) {
	APIRetriesTotal.WithLabelValues(req.URL.Host).Inc()
}

// StatusError is the status label of requests that got no response.
const StatusError = "error"

type APIObserver struct{}

// ObserveRequest implements client.Observer.
func (APIObserver) ObserveRequest(api client.API, method string, statusCode int, duration time.Duration) {
	status := StatusError
	if statusCode != 0 {
		status = strconv.Itoa(statusCode)
	}

	APIRequestsTotal.WithLabelValues(string(api), method, status).Inc()
	APIRequestDurationSeconds.WithLabelValues(string(api), method).Observe(duration.Seconds())
}

var _ client.Observer = APIObserver{}
