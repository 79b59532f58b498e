package nats

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sheikh-saqib/account-ledger/internal/models/events"
	"github.com/shopspring/decimal"
)

type mockConn struct {
	subjects []string
	payloads [][]byte
	err      error
	drained  bool
}

func (m *mockConn) Publish(subj string, data []byte) error {
	if m.err != nil {
		return m.err
	}
	m.subjects = append(m.subjects, subj)
	m.payloads = append(m.payloads, data)
	return nil
}

func (m *mockConn) Drain() error {
	m.drained = true
	return nil
}

func TestPublish(t *testing.T) {
	mc := &mockConn{}
	p := &Publisher{nc: mc}

	event := events.TransactionCommitted{
		TransactionID: "tx-9",
		AccountID:     "acc-9",
		Operation:     "WITHDRAWAL",
		Amount:        decimal.NewFromInt(5),
		Balance:       decimal.NewFromInt(15),
	}
	if err := p.Publish(context.Background(), "ledger.transactions", event); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if len(mc.subjects) != 1 || mc.subjects[0] != "ledger.transactions" {
		t.Fatalf("subjects = %v", mc.subjects)
	}
	var got events.TransactionCommitted
	if err := json.Unmarshal(mc.payloads[0], &got); err != nil {
		t.Fatalf("payload is not a TransactionCommitted: %v", err)
	}
	if got.TransactionID != "tx-9" || !got.Balance.Equal(decimal.NewFromInt(15)) {
		t.Errorf("unexpected payload: %+v", got)
	}
}

func TestPublishErrors(t *testing.T) {
	testCases := []struct {
		name   string
		ctx    func() context.Context
		conn   *mockConn
		event  any
		wantIs error
	}{
		{
			name: "cancelled context",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			conn:   &mockConn{},
			event:  events.TransactionCommitted{},
			wantIs: context.Canceled,
		},
		{
			name:   "connection error",
			ctx:    context.Background,
			conn:   &mockConn{err: errTest},
			event:  events.TransactionCommitted{},
			wantIs: errTest,
		},
		{
			name:  "unmarshalable event",
			ctx:   context.Background,
			conn:  &mockConn{},
			event: func() {},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := &Publisher{nc: tc.conn}
			err := p.Publish(tc.ctx(), "subj", tc.event)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tc.wantIs != nil && !errors.Is(err, tc.wantIs) {
				t.Errorf("err = %v, want %v", err, tc.wantIs)
			}
			if len(tc.conn.subjects) != 0 {
				t.Error("nothing should have been published")
			}
		})
	}
}

func TestClose(t *testing.T) {
	mc := &mockConn{}
	p := &Publisher{nc: mc}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	if !mc.drained {
		t.Error("Close should drain the connection")
	}
}

var errTest = errors.New("nats: connection closed")
