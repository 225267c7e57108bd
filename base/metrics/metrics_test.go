package metrics

import (
	"sync"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
)

type bump struct {
	kind string
	name string
	tags []string
	rate float64
}

type recordingClient struct {
	mu    sync.Mutex
	bumps []bump
}

func (r *recordingClient) add(b bump) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bumps = append(r.bumps, b)
	return nil
}

func (r *recordingClient) Gauge(name string, value float64, tags []string, rate float64) error {
	return r.add(bump{"gauge", name, tags, rate})
}

func (r *recordingClient) Count(name string, value int64, tags []string, rate float64) error {
	return r.add(bump{"count", name, tags, rate})
}

func (r *recordingClient) Histogram(name string, value float64, tags []string, rate float64) error {
	return r.add(bump{"histogram", name, tags, rate})
}

func (r *recordingClient) TimeInMilliseconds(name string, value float64, tags []string, rate float64) error {
	return r.add(bump{"time", name, tags, rate})
}

type metricsSuite struct {
	suite.Suite

	rec *recordingClient
}

func TestMetricsSuite(t *testing.T) {
	suite.Run(t, new(metricsSuite))
}

func (s *metricsSuite) SetupTest() {
	viper.Reset()
	viper.Set("env_name", "test")
	viper.Set("app_name", "auctionhouse")

	initOnce.Do(func() {})
	s.rec = &recordingClient{}
	ddClients = make([]statsCli, ddClientsSize)
	for i := range ddClients {
		ddClients[i] = s.rec
	}
}

func (s *metricsSuite) TearDownTest() {
	viper.Reset()
}

func (s *metricsSuite) TestPrefixAndTags() {
	m := New("keeper", WithoutPodName())
	m.BumpSum("settled", 1, "item", "7")
	m.BumpTime("settle.time").End()

	s.Require().Len(s.rec.bumps, 2)
	s.Equal("count", s.rec.bumps[0].kind)
	s.Equal("keeper.settled", s.rec.bumps[0].name)
	s.Equal([]string{"host:", "env:test", "app:auctionhouse", "item:7"}, s.rec.bumps[0].tags)
	s.Equal(1.0, s.rec.bumps[0].rate)
	s.Equal("time", s.rec.bumps[1].kind)
	s.Equal("keeper.settle.time", s.rec.bumps[1].name)
}

func (s *metricsSuite) TestSampleRate() {
	viper.Set("metrics.sampleRate", 0.5)
	viper.Set("metrics.sampleRates.redis", 0.1)

	New("keeper").BumpAvg("batch", 3)
	New("redis").BumpHistogram("size", 10)

	s.Require().Len(s.rec.bumps, 2)
	s.Equal(0.5, s.rec.bumps[0].rate)
	s.Equal(0.1, s.rec.bumps[1].rate)
}

func (s *metricsSuite) TestDisabled() {
	viper.Set("metrics.disabled", true)

	m := New("keeper")
	m.BumpSum("settled", 1)
	m.BumpTime("settle.time").End()

	s.Empty(s.rec.bumps)
}

func (s *metricsSuite) TestOddTagsRecovered() {
	m := New("keeper", WithoutPodName())
	s.NotPanics(func() {
		m.BumpSum("settled", 1, "dangling")
		m.BumpTime("settle.time", "dangling").End()
	})

	s.Require().Len(s.rec.bumps, 2)
	s.Equal("bumpsum.panic", s.rec.bumps[0].name)
	s.Equal("bumptime.panic", s.rec.bumps[1].name)
}
