package payments

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"varejo_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func noSleep(context.Context, time.Duration) error { return nil }

func testCard(number string) entities.CardData {
	return entities.CardData{
		CardNumber:     number,
		CardHolderName: "ANA SILVA",
		ExpiryMonth:    "08",
		ExpiryYear:     "2027",
		CVV:            "123",
	}
}

func newTestGateway(t *testing.T, failureRate string, seed int64) *SimulatedGateway {
	t.Helper()
	t.Setenv("PAYMENT_BASE_DELAY_MS", "0")
	t.Setenv("PAYMENT_MAX_JITTER_MS", "0")
	t.Setenv("PAYMENT_FAILURE_RATE", failureRate)
	return NewSimulatedGateway(WithRand(rand.New(rand.NewSource(seed))), WithSleep(noSleep))
}

func TestSimulatedGateway_DeclinedSuffix(t *testing.T) {
	g := newTestGateway(t, "0", 1)

	// The suffix override holds regardless of tier or rng state.
	for i := 0; i < 20; i++ {
		result, err := g.Process(context.Background(), decimal.NewFromInt(50), testCard("4111111111110000"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Status != entities.PaymentStatusDeclined {
			t.Fatalf("card ending 0000 must always decline, got %s", result.Status)
		}
		if result.AuthCode != "" {
			t.Fatalf("declined result must not carry an auth code")
		}
	}
}

func TestSimulatedGateway_GatewayFailure(t *testing.T) {
	g := newTestGateway(t, "1", 1)

	result, err := g.Process(context.Background(), decimal.NewFromInt(50), testCard("4111111111111111"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != entities.PaymentStatusError {
		t.Fatalf("failure rate 1 must yield ERROR, got %s", result.Status)
	}
	if result.Message == "" {
		t.Fatalf("gateway error must carry a message")
	}
}

func TestSimulatedGateway_ApprovalTiers(t *testing.T) {
	// Seed 1 yields 0.6046... then 0.9405... from math/rand; the second
	// draw decides approval: below 0.95 (LOW) but above 0.85 (MEDIUM).
	t.Run("low tier approves", func(t *testing.T) {
		g := newTestGateway(t, "0", 1)
		result, err := g.Process(context.Background(), decimal.RequireFromString("59.98"), testCard("4111111111111111"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Status != entities.PaymentStatusApproved {
			t.Fatalf("expected APPROVED, got %s", result.Status)
		}
		if result.AuthCode == "" {
			t.Fatalf("approved result must carry an auth code")
		}
	})

	t.Run("medium tier declines on the same draw", func(t *testing.T) {
		g := newTestGateway(t, "0", 1)
		result, err := g.Process(context.Background(), decimal.NewFromInt(5000), testCard("4111111111111111"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Status != entities.PaymentStatusDeclined {
			t.Fatalf("expected DECLINED, got %s", result.Status)
		}
	})
}

func TestApprovalRate(t *testing.T) {
	cases := []struct {
		amount string
		want   float64
	}{
		{"999.99", 0.95},
		{"1000", 0.85},
		{"9999.99", 0.85},
		{"10000", 0.75},
		{"25000", 0.75},
	}
	for _, tc := range cases {
		if got := approvalRate(decimal.RequireFromString(tc.amount)); got != tc.want {
			t.Fatalf("approvalRate(%s) = %v, want %v", tc.amount, got, tc.want)
		}
	}
}

func TestSimulatedGateway_CancelledContext(t *testing.T) {
	t.Setenv("PAYMENT_BASE_DELAY_MS", "50")
	t.Setenv("PAYMENT_MAX_JITTER_MS", "0")
	t.Setenv("PAYMENT_FAILURE_RATE", "0")
	g := NewSimulatedGateway(WithRand(rand.New(rand.NewSource(1))))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := g.Process(ctx, decimal.NewFromInt(10), testCard("4111111111111111")); err == nil {
		t.Fatalf("expected context error")
	}
}
