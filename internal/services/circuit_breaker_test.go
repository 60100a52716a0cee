package services

import (
	"testing"
	"time"

	"investment-dashboard/internal/models"

	"github.com/stretchr/testify/suite"
)

type CircuitBreakerTestSuite struct {
	suite.Suite
	clock       time.Time
	transitions [][2]models.CircuitBreakerState
	breaker     *CircuitBreaker
}

func TestCircuitBreakerSuite(t *testing.T) {
	suite.Run(t, new(CircuitBreakerTestSuite))
}

func (s *CircuitBreakerTestSuite) SetupTest() {
	s.clock = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	s.transitions = nil
	s.breaker = NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:     3,
		ResetTimeout:    10 * time.Second,
		HalfOpenMaxSucc: 2,
	}, func(from, to models.CircuitBreakerState) {
		s.transitions = append(s.transitions, [2]models.CircuitBreakerState{from, to})
	}).(*CircuitBreaker)
	s.breaker.now = func() time.Time { return s.clock }
}

func (s *CircuitBreakerTestSuite) TestOpensAfterMaxFailures() {
	s.breaker.RecordFailure()
	s.breaker.RecordFailure()
	s.False(s.breaker.IsOpen())
	s.Equal(2, s.breaker.GetFailureCount())

	s.breaker.RecordFailure()

	s.True(s.breaker.IsOpen())
	s.Equal(StateOpen, s.breaker.GetState())
	s.Equal([][2]models.CircuitBreakerState{{StateClosed, StateOpen}}, s.transitions)
}

func (s *CircuitBreakerTestSuite) TestSuccessResetsFailureCount() {
	s.breaker.RecordFailure()
	s.breaker.RecordFailure()
	s.breaker.RecordSuccess()
	s.breaker.RecordFailure()

	s.False(s.breaker.IsOpen())
	s.Equal(1, s.breaker.GetFailureCount())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenAfterResetTimeout() {
	for i := 0; i < 3; i++ {
		s.breaker.RecordFailure()
	}

	s.clock = s.clock.Add(5 * time.Second)
	s.True(s.breaker.IsOpen())

	s.clock = s.clock.Add(6 * time.Second)
	s.False(s.breaker.IsOpen())
	s.Equal(StateHalfOpen, s.breaker.GetState())

	s.breaker.RecordSuccess()
	s.Equal(StateHalfOpen, s.breaker.GetState())
	s.breaker.RecordSuccess()
	s.Equal(StateClosed, s.breaker.GetState())

	s.Equal([][2]models.CircuitBreakerState{
		{StateClosed, StateOpen},
		{StateOpen, StateHalfOpen},
		{StateHalfOpen, StateClosed},
	}, s.transitions)
}

func (s *CircuitBreakerTestSuite) TestHalfOpenFailureReopens() {
	for i := 0; i < 3; i++ {
		s.breaker.RecordFailure()
	}
	s.clock = s.clock.Add(11 * time.Second)
	s.False(s.breaker.IsOpen())

	s.breaker.RecordFailure()

	s.True(s.breaker.IsOpen())
}

func (s *CircuitBreakerTestSuite) TestReset() {
	for i := 0; i < 3; i++ {
		s.breaker.RecordFailure()
	}

	s.breaker.Reset()

	s.False(s.breaker.IsOpen())
	s.Equal(0, s.breaker.GetFailureCount())
	s.Equal("closed", s.breaker.GetState().String())
}

func (s *CircuitBreakerTestSuite) TestDefaultsAreSane() {
	cfg := DefaultCircuitBreakerConfig()
	s.Positive(cfg.MaxFailures)
	s.Positive(cfg.ResetTimeout)

	breaker := NewCircuitBreaker(CircuitBreakerConfig{ResetTimeout: time.Hour}, nil)
	breaker.RecordFailure()
	s.True(breaker.IsOpen())
}
