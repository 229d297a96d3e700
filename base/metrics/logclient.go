package metrics

import (
	"strings"

	"github.com/zkzk-trade/goapi/base/log"
)

// LogClient writes metrics as debug logs when no datadog agent is configured.
// Each "key:value" tag becomes a log field so lines can be filtered like datadog tags.
type LogClient struct{}

func (lc *LogClient) Gauge(name string, value float64, tags []string, rate float64) error {
	return lc.emit("gauge", name, value, tags)
}

func (lc *LogClient) Count(name string, value int64, tags []string, rate float64) error {
	return lc.emit("count", name, value, tags)
}

func (lc *LogClient) Histogram(name string, value float64, tags []string, rate float64) error {
	return lc.emit("histogram", name, value, tags)
}

// TimeInMilliseconds is a histogram of durations in ms
func (lc *LogClient) TimeInMilliseconds(name string, value float64, tags []string, rate float64) error {
	return lc.emit("time", name, value, tags)
}

func (lc *LogClient) emit(kind, name string, value interface{}, tags []string) error {
	log.Log().WithFields(tagFields(name, value, tags)).Debug("metric " + kind)
	return nil
}

// tagFields flattens datadog tags into log fields, a tag without a value is logged as "true"
func tagFields(name string, value interface{}, tags []string) log.Fields {
	fields := log.Fields{"metric": name, "val": value}
	for _, tag := range tags {
		k, v, ok := strings.Cut(tag, ":")
		if !ok {
			v = "true"
		}
		fields["tag."+k] = v
	}
	return fields
}
