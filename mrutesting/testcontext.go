package mrutesting

import (
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

type TestContext struct {
	Log  logger.Logger
	Rand *rand.Rand
	T    *testing.T
}

type TestConfig struct {
	// Seed fixes the RNG so the generated fetch sequences are the same from
	// run to run. Zero is a valid seed.
	Seed            int64
	TestLabelPrefix string
	LogLevel        string // defaults to "NOOP"
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)

	return TestContext{
		T:    t,
		Log:  logger.Sugar.WithServiceName(cfg.TestLabelPrefix),
		Rand: rand.New(rand.NewSource(cfg.Seed)),
	}
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// FetchSequence returns count random 1-based indices in [1, upperLimit].
func (c *TestContext) FetchSequence(upperLimit int, count int) []int {
	seq := make([]int, count)
	for i := range seq {
		seq[i] = 1 + c.Rand.Intn(upperLimit)
	}
	return seq
}
