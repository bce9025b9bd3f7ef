package middleware

import (
	"net/http"
	"strconv"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Starley-iggy/YahooBank/pkg/metrics"
)

// Metrics замеряет длительность и статус каждого запроса и отдает их в Prometheus
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		metrics.RecordRequest(r.Method, r.URL.Path, strconv.Itoa(ww.Status()), time.Since(start))
	})
}
