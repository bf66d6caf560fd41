package valid

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// checksTotal counts validation attempts made through Validate and
	// ValidateWith.
	//
	// Labels:
	//   - has_error: "true" if the predicate rejected the value, "false" if
	//     it passed. This allows tracking validation failure rates.
	//
	// Usage example in dashboards:
	//   - rate(validity_checks_total[5m]) - Validations per second
	//   - validity_checks_total{has_error="true"} - Count of rejections
	//
	// The nolint:gochecknoglobals directive is used because Prometheus
	// metrics are intentionally global by design - they need to be registered
	// once and accessed throughout the application lifecycle.
	checksTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "validity_checks_total",
		Help: "The total number of validation attempts",
	}, []string{"has_error"})

	// checkTime records how long predicates take, in milliseconds.
	//
	// Labels:
	//   - type: the Go type name of the payload being validated, so slow
	//     predicates (e.g. ones performing store lookups through their
	//     context) can be identified per type.
	//   - has_error: "true" for rejections, "false" for passes.
	//
	// The bucket ladder spans sub-millisecond field checks up to predicates
	// that block on external lookups.
	checkTime = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint:gochecknoglobals
		Name: "validity_check_time_millis",
		Help: "The time it takes to run a validation predicate, in milliseconds",
		Buckets: []float64{
			1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000,
		},
	}, []string{"type", "has_error"})
)

// observeCheck records one validation attempt. The payload is only used for
// its type name.
func observeCheck(payload any, elapsed time.Duration, err error) {
	hasError := "false"
	if err != nil {
		hasError = "true"
	}

	checksTotal.WithLabelValues(hasError).Inc()
	checkTime.WithLabelValues(fmt.Sprintf("%T", payload), hasError).
		Observe(float64(elapsed) / float64(time.Millisecond))
}

// init pre-initializes checksTotal with zero values for both label values.
// This prevents missing-data gaps in time series: rate() and increase() need
// the series to exist from application start, and it lets alerting
// distinguish "no validations" from "metric not yet created".
func init() {
	checksTotal.WithLabelValues("true").Add(0)
	checksTotal.WithLabelValues("false").Add(0)
}
