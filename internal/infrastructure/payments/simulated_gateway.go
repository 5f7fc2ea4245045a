package payments

import (
	"context"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"varejo_xpto/internal/domain/entities"
	"varejo_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SimulatedGateway is the deterministic stand-in for a card acquirer.
//
// Behavior:
//   - artificial delay uniform in [BaseDelay, BaseDelay+MaxJitter]
//   - gateway-side failure with probability FailureRate (status ERROR)
//   - cards ending in "0000" are always DECLINED
//   - otherwise approval depends on the amount tier: >=10000 -> 0.75,
//     >=1000 -> 0.85, else 0.95
//
// Tunables come from the env (PAYMENT_BASE_DELAY_MS, PAYMENT_MAX_JITTER_MS,
// PAYMENT_FAILURE_RATE); rng and sleep are injectable for tests.

const declinedSuffix = "0000"

var (
	tierHigh   = decimal.NewFromInt(10000)
	tierMedium = decimal.NewFromInt(1000)
)

var gatewayErrorMessages = []string{
	"Gateway timeout",
	"Service temporarily unavailable",
	"Invalid merchant configuration",
	"Network error",
}

type SimulatedGateway struct {
	baseDelay   time.Duration
	maxJitter   time.Duration
	failureRate float64

	rng   *rand.Rand
	sleep func(context.Context, time.Duration) error
	now   func() time.Time
}

var _ interfaces.IPaymentGateway = (*SimulatedGateway)(nil)

type GatewayOption func(*SimulatedGateway)

// WithRand fixes the random source (tests).
func WithRand(rng *rand.Rand) GatewayOption {
	return func(g *SimulatedGateway) { g.rng = rng }
}

// WithSleep replaces the delay function (tests).
func WithSleep(sleep func(context.Context, time.Duration) error) GatewayOption {
	return func(g *SimulatedGateway) { g.sleep = sleep }
}

// WithClock replaces the wall clock (tests).
func WithClock(now func() time.Time) GatewayOption {
	return func(g *SimulatedGateway) { g.now = now }
}

func NewSimulatedGateway(opts ...GatewayOption) *SimulatedGateway {
	g := &SimulatedGateway{
		baseDelay:   envDurationMS("PAYMENT_BASE_DELAY_MS", 200*time.Millisecond),
		maxJitter:   envDurationMS("PAYMENT_MAX_JITTER_MS", 500*time.Millisecond),
		failureRate: envFloat("PAYMENT_FAILURE_RATE", 0.03),
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		sleep:       sleepContext,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *SimulatedGateway) Process(ctx context.Context, amount decimal.Decimal, card entities.CardData) (interfaces.GatewayResult, error) {
	started := g.now()

	delay := g.baseDelay
	if g.maxJitter > 0 {
		delay += time.Duration(g.rng.Int63n(int64(g.maxJitter) + 1))
	}
	if err := g.sleep(ctx, delay); err != nil {
		return interfaces.GatewayResult{}, err
	}

	result := g.decide(amount, card)
	result.ProcessingTime = g.now().Sub(started)
	log.Printf("[payment][gateway] processed amount=%s status=%s elapsed=%s", amount.String(), result.Status, result.ProcessingTime)
	return result, nil
}

func (g *SimulatedGateway) decide(amount decimal.Decimal, card entities.CardData) interfaces.GatewayResult {
	if g.rng.Float64() < g.failureRate {
		msg := gatewayErrorMessages[g.rng.Intn(len(gatewayErrorMessages))]
		return interfaces.GatewayResult{Status: entities.PaymentStatusError, Message: msg}
	}

	if strings.HasSuffix(card.CardNumber, declinedSuffix) {
		return interfaces.GatewayResult{Status: entities.PaymentStatusDeclined, Message: "Card declined by issuer"}
	}

	if g.rng.Float64() < approvalRate(amount) {
		return interfaces.GatewayResult{
			Status:   entities.PaymentStatusApproved,
			AuthCode: "AUTH-" + strings.ToUpper(uuid.NewString()[:8]),
		}
	}
	return interfaces.GatewayResult{Status: entities.PaymentStatusDeclined, Message: "Insufficient funds"}
}

func approvalRate(amount decimal.Decimal) float64 {
	switch {
	case amount.GreaterThanOrEqual(tierHigh):
		return 0.75
	case amount.GreaterThanOrEqual(tierMedium):
		return 0.85
	default:
		return 0.95
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func envDurationMS(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms < 0 {
		log.Printf("[payment][gateway] ignoring invalid %s=%q", key, v)
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 || f > 1 {
		log.Printf("[payment][gateway] ignoring invalid %s=%q", key, v)
		return def
	}
	return f
}
