/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
- Warning: *.warn

Config keys:
- metrics.disabled: drop every bump
- metrics.sampleRate: default firing rate in [0, 1], 1 when unset
- metrics.sampleRates.<pkg>: per package firing rate
*/
package metrics

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/x-xyz/auctionhouse/base/env"
)

const (
	// TagValueNA is used for tags whose values are not available.
	TagValueNA = "n/a"
)

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

// Option is functional parameter for metrics option
type Option func(*opt)

type opt struct {
	// default: true
	withPodName bool
}

// WithoutPodName drops the pod tag, for packages whose metrics are not worth grouping per replica
func WithoutPodName() Option {
	return func(o *opt) {
		o.withPodName = false
	}
}

// New creates a metric client with package name as key prefix
func New(pkgName string, options ...Option) Service {
	o := opt{
		withPodName: true,
	}
	for _, option := range options {
		option(&o)
	}

	ddTags := []string{
		// using host removes all tags associated with host
		// ref: https://docs.datadoghq.com/developers/dogstatsd/data_types/#host-tag-key
		"host:",
		"env:" + configOr("env_name", env.EnvName),
		"app:" + configOr("app_name", env.AppName),
	}
	if o.withPodName {
		ddTags = append(ddTags, "pod:"+env.PodName())
	}

	return &Metrics{
		pkgName: pkgName,
		datadog: DDMetrics{
			ddTags: ddTags,
		},
	}
}

func configOr(key string, fallback func() string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback()
}

// Metrics prefixes keys with the package name and applies sampling before handing bumps to datadog.
type Metrics struct {
	pkgName string
	datadog DDMetrics
}

func (mt *Metrics) shouldGiveUp() bool {
	return viper.GetBool("metrics.disabled")
}

func (mt *Metrics) sampleRate() float64 {
	if key := "metrics.sampleRates." + mt.pkgName; viper.IsSet(key) {
		return viper.GetFloat64(key)
	}
	if viper.IsSet("metrics.sampleRate") {
		return viper.GetFloat64("metrics.sampleRate")
	}
	return 1.0
}

// recoverBump keeps a bad tag list from taking the caller down.
func (mt *Metrics) recoverBump(kind, key string, tags []string) {
	if err := recover(); err != nil {
		mt.datadog.BumpSum(kind+".panic", 1, 1, "tag", mt.pkgName+`.`+key+"#"+strings.Join(tags, "#"))
	}
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	if mt.shouldGiveUp() {
		return
	}
	defer mt.recoverBump("bumpavg", key, tags)
	mt.datadog.BumpAvg(mt.pkgName+`.`+key, val, mt.sampleRate(), tags...)
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	if mt.shouldGiveUp() {
		return
	}
	defer mt.recoverBump("bumpsum", key, tags)
	mt.datadog.BumpSum(mt.pkgName+`.`+key, val, mt.sampleRate(), tags...)
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	if mt.shouldGiveUp() {
		return
	}
	defer mt.recoverBump("bumphistogram", key, tags)
	mt.datadog.BumpHistogram(mt.pkgName+`.`+key, val, mt.sampleRate(), tags...)
}

// BumpTime starts a timer; End reports it. Typical use at the top of a function:
//
//     defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) (e Ender) {
	if mt.shouldGiveUp() {
		return &fakeEnd{}
	}
	defer func() {
		if err := recover(); err != nil {
			mt.datadog.BumpSum("bumptime.panic", 1, 1, "tag", mt.pkgName+`.`+key+"#"+strings.Join(tags, "#"))
			e = &fakeEnd{}
		}
	}()
	return &timeTracker{
		ddEnd: mt.datadog.BumpTime(mt.pkgName+`.`+key, mt.sampleRate(), tags...),
		panicHandler: func() {
			mt.datadog.BumpSum("bumptime.panic", 1, 1, "tag", mt.pkgName+`.`+key+"#"+strings.Join(tags, "#"))
		},
	}
}

type fakeEnd struct{}

func (e *fakeEnd) End() {}

type timeTracker struct {
	ddEnd        Ender
	panicHandler func()
}

func (t *timeTracker) End() {
	defer func() {
		if err := recover(); err != nil {
			t.panicHandler()
		}
	}()
	t.ddEnd.End()
}
