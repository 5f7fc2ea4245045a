package entities

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{OrderStatusPending, OrderStatusProcessed, true},
		{OrderStatusPending, OrderStatusCancelled, true},
		{OrderStatusPending, OrderStatusPending, false},
		{OrderStatusProcessed, OrderStatusCancelled, false},
		{OrderStatusProcessed, OrderStatusPending, false},
		{OrderStatusCancelled, OrderStatusProcessed, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Fatalf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestLedgerSum(t *testing.T) {
	entries := []StockEntry{
		{Type: StockEntryTypeIncrease, Quantity: 100},
		{Type: StockEntryTypeDecrease, Quantity: 2},
		{Type: StockEntryTypeDecrease, Quantity: 5},
		{Type: StockEntryTypeIncrease, Quantity: 7},
	}
	if got := LedgerSum(entries); got != 100 {
		t.Fatalf("LedgerSum = %d, want 100", got)
	}
	if got := LedgerSum(nil); got != 0 {
		t.Fatalf("LedgerSum(nil) = %d, want 0", got)
	}
}

func TestLeadMatches(t *testing.T) {
	lead := Lead{Email: "ana@example.com", CPF: "12345678909"}
	if !lead.Matches("ana@example.com", "12345678909") {
		t.Fatalf("expected match")
	}
	if lead.Matches("ana@example.com", "11111111111") {
		t.Fatalf("same email different cpf must not match")
	}
}

func TestTransactionIDs(t *testing.T) {
	if got := TransactionID("ord-1"); got != "txn-ord-1" {
		t.Fatalf("TransactionID = %q", got)
	}
	if got := ErrorTransactionID("ord-1"); got != "txn-err-ord-1" {
		t.Fatalf("ErrorTransactionID = %q", got)
	}
}
