package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"campusfaq/internal/models"
)

var (
	queryLookupDesc = prometheus.NewDesc(
		"campusfaq_query_lookups_total",
		"Total query count by intent and outcome",
		[]string{"intent", "outcome"},
		nil,
	)
	faqEntriesDesc = prometheus.NewDesc(
		"campusfaq_faq_cache_entries",
		"Number of FAQ entries in the aggregation cache by source",
		[]string{"source"},
		nil,
	)
	faqSourceErrorDesc = prometheus.NewDesc(
		"campusfaq_faq_source_failed",
		"1 if the source failed during the last aggregation round",
		[]string{"source"},
		nil,
	)
	faqRefreshDesc = prometheus.NewDesc(
		"campusfaq_faq_cache_refreshed_timestamp_seconds",
		"Unix time of the last FAQ cache refresh",
		nil,
		nil,
	)
	keywordEntriesDesc = prometheus.NewDesc(
		"campusfaq_keyword_store_entries",
		"Number of entries in the keyword store",
		nil,
		nil,
	)
	keywordLoadDesc = prometheus.NewDesc(
		"campusfaq_keyword_store_loaded_timestamp_seconds",
		"Unix time of the last keyword store load",
		nil,
		nil,
	)
)

// LookupStore persists per-intent query outcomes.
type LookupStore interface {
	IncrementQueryLookup(ctx context.Context, intent, outcome string) error
	GetAllQueryLookups(ctx context.Context) ([]models.QueryLookup, error)
}

// LookupCollector is a custom Prometheus collector that reads query lookup
// counts from the database on each scrape.
type LookupCollector struct {
	store LookupStore
}

// Describe sends the metric descriptor to the channel.
func (c *LookupCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- queryLookupDesc
}

// Collect queries the database for all query lookups and emits them as counters.
func (c *LookupCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	lookups, err := c.store.GetAllQueryLookups(ctx)
	if err != nil {
		slog.Error("failed to collect query lookup metrics", "error", err)
		return
	}
	for _, l := range lookups {
		ch <- prometheus.MustNewConstMetric(
			queryLookupDesc,
			prometheus.CounterValue,
			float64(l.Count),
			l.Intent,
			l.Outcome,
		)
	}
}

// StatsProvider exposes the cache state of the resolvers.
type StatsProvider interface {
	FAQStats() models.AggregatorStats
	KeywordStats() models.KeywordStoreStats
}

// CacheCollector reports the FAQ aggregation cache and keyword store as gauges.
type CacheCollector struct {
	stats StatsProvider
}

// NewCacheCollector creates a collector over stats.
func NewCacheCollector(stats StatsProvider) *CacheCollector {
	return &CacheCollector{stats: stats}
}

// Describe sends the metric descriptors to the channel.
func (c *CacheCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- faqEntriesDesc
	ch <- faqSourceErrorDesc
	ch <- faqRefreshDesc
	ch <- keywordEntriesDesc
	ch <- keywordLoadDesc
}

// Collect reads the current cache stats.
func (c *CacheCollector) Collect(ch chan<- prometheus.Metric) {
	faqStats := c.stats.FAQStats()
	for _, s := range faqStats.Sources {
		ch <- prometheus.MustNewConstMetric(faqEntriesDesc, prometheus.GaugeValue, float64(s.Entries), string(s.Source))
		failed := 0.0
		if s.LastError != "" {
			failed = 1
		}
		ch <- prometheus.MustNewConstMetric(faqSourceErrorDesc, prometheus.GaugeValue, failed, string(s.Source))
	}
	if faqStats.RefreshedAt != nil {
		ch <- prometheus.MustNewConstMetric(faqRefreshDesc, prometheus.GaugeValue, float64(faqStats.RefreshedAt.Unix()))
	}

	kwStats := c.stats.KeywordStats()
	ch <- prometheus.MustNewConstMetric(keywordEntriesDesc, prometheus.GaugeValue, float64(kwStats.Entries))
	if kwStats.LoadedAt != nil {
		ch <- prometheus.MustNewConstMetric(keywordLoadDesc, prometheus.GaugeValue, float64(kwStats.LoadedAt.Unix()))
	}
}

// Recorder provides async query outcome recording.
type Recorder struct {
	store LookupStore
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the custom collectors and initializes the recorder.
// Must be called once at startup.
func Init(store LookupStore, stats StatsProvider) {
	recorderOnce.Do(func() {
		recorder = &Recorder{store: store}
		prometheus.MustRegister(&LookupCollector{store: store}, NewCacheCollector(stats))
	})
}

// RecordQuery asynchronously records the outcome of a dispatched query.
func RecordQuery(intent, outcome string) {
	if recorder == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := recorder.store.IncrementQueryLookup(ctx, intent, outcome); err != nil {
			slog.Error("failed to record query lookup", "intent", intent, "outcome", outcome, "error", err)
		}
	}()
}
