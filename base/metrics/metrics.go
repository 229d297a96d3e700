/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
*/
package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"
	"github.com/zkzk-trade/goapi/base/log"
)

var (
	initOnce = sync.Once{}
	// DdPort is the dogstatsd port on datadog_host
	DdPort = 8125

	client statsCli
)

const (
	// ddRate is the rate to pass metrics to datadog agent. 1 means always
	ddRate = 1
	// buffer 10 counters before sending to statsd
	bufferMetrics = 10
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// initClient talks to the datadog agent when datadog_host is set and logs the metrics otherwise
func initClient() {
	host := viper.GetString("datadog_host")
	if host == "" {
		client = &LogClient{}
		return
	}
	addr := fmt.Sprintf("%s:%d", host, DdPort)
	log.Log().WithField("addr", addr).Info("connecting to datadog agent")
	cli, err := statsd.NewBuffered(addr, bufferMetrics)
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Error("can't talk to datadog agent, fallback to log")
		client = &LogClient{}
		return
	}
	client = cli
}

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	return &Metrics{
		pkgName: pkgName,
		tags: []string{
			"app:" + viper.GetString("app_name"),
		},
	}
}

type Metrics struct {
	pkgName string
	tags    []string
	// cli overrides the process client, tests only
	cli statsCli
}

func (mt *Metrics) client() statsCli {
	if mt.cli != nil {
		return mt.cli
	}
	initOnce.Do(initClient)
	return client
}

func (mt *Metrics) key(key string) string {
	return mt.pkgName + "." + key
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	if err := mt.client().Gauge(mt.key(key), val, mt.withTags(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "func": "BumpAvg"}).Error("Bump fail")
	}
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	if err := mt.client().Count(mt.key(key), int64(val), mt.withTags(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "func": "BumpSum"}).Error("Bump fail")
	}
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	if err := mt.client().Histogram(mt.key(key), val, mt.withTags(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "func": "BumpHistogram"}).Error("Bump fail")
	}
}

// BumpTime starts a timer, End records it:
//
//     defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		start: time.Now(),
		key:   mt.key(key),
		tags:  mt.withTags(tags),
		cli:   mt.client(),
	}
}

// withTags turns key/value pairs into datadog "key:value" tags
func (mt *Metrics) withTags(tags []string) []string {
	res := make([]string, len(mt.tags), len(mt.tags)+len(tags)/2)
	copy(res, mt.tags)
	for i := 0; i+1 < len(tags); i += 2 {
		res = append(res, tags[i]+":"+tags[i+1])
	}
	return res
}

type timeTracker struct {
	start time.Time
	key   string
	tags  []string
	cli   statsCli
}

func (t *timeTracker) End() {
	d := time.Since(t.start)
	dur := float64(d) / float64(time.Millisecond)
	if err := t.cli.TimeInMilliseconds(t.key, dur, t.tags, ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": t.key, "val": dur, "func": "BumpTime"}).Error("Bump fail")
	}
}
