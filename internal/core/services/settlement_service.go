package services

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/SscSPs/trip_settlement_engine/internal/apperrors"
	"github.com/SscSPs/trip_settlement_engine/internal/core/domain"
	portssvc "github.com/SscSPs/trip_settlement_engine/internal/core/ports/services"
	"github.com/SscSPs/trip_settlement_engine/internal/utils/moneymath"
	"github.com/shopspring/decimal"
)

// BalanceToleranceFn computes the allowed drift, in minor units, of the sum
// of net balances away from zero.
type BalanceToleranceFn func(currency domain.Currency, participantCount int) int64

// defaultBalanceTolerance allows one minor unit per participant, matching the
// worst case of per-expense rounding drift.
func defaultBalanceTolerance(_ domain.Currency, participantCount int) int64 {
	return int64(participantCount)
}

// settlementService aggregates expenses into summaries and transfer plans.
type settlementService struct {
	splitSvc    portssvc.SplitSvc
	toleranceFn BalanceToleranceFn
}

// SettlementServiceOption is a functional option for configuring the settlement service
type SettlementServiceOption func(*settlementService)

// WithBalanceTolerance overrides the default balance tolerance of one minor
// unit per participant.
func WithBalanceTolerance(fn BalanceToleranceFn) SettlementServiceOption {
	return func(s *settlementService) {
		s.toleranceFn = fn
	}
}

// NewSettlementService creates a new settlement service with the provided options
func NewSettlementService(splitSvc portssvc.SplitSvc, options ...SettlementServiceOption) portssvc.SettlementSvc {
	svc := &settlementService{
		splitSvc:    splitSvc,
		toleranceFn: defaultBalanceTolerance,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure settlementService implements the portssvc.SettlementSvc interface
var _ portssvc.SettlementSvc = (*settlementService)(nil)

// Settle computes summaries and transfers for every currency present in the
// expense list. Currencies are settled independently and never mix; results
// are ordered by currency code.
func (s *settlementService) Settle(expenses []domain.Expense) (*domain.SettlementResult, error) {
	seen := make(map[string]struct{})
	codes := make([]string, 0, 2)
	for _, e := range expenses {
		if _, ok := seen[e.CurrencyCode]; !ok {
			seen[e.CurrencyCode] = struct{}{}
			codes = append(codes, e.CurrencyCode)
		}
	}
	sort.Strings(codes)

	result := &domain.SettlementResult{Settlements: make([]domain.CurrencySettlement, 0, len(codes))}
	for _, code := range codes {
		cs, err := s.SettleCurrency(expenses, code)
		if err != nil {
			return nil, err
		}
		result.Settlements = append(result.Settlements, *cs)
	}
	return result, nil
}

// SettleCurrency computes summaries and transfers for a single currency,
// considering only that currency's expenses.
func (s *settlementService) SettleCurrency(expenses []domain.Expense, currencyCode string) (*domain.CurrencySettlement, error) {
	if currencyCode == "" {
		return nil, fmt.Errorf("%w: currency code is required", apperrors.ErrValidation)
	}
	currency := domain.CurrencyOrDefault(currencyCode)

	type position struct {
		paid decimal.Decimal
		owed decimal.Decimal
	}
	positions := make(map[string]*position)
	order := make([]string, 0, 8)
	touch := func(id string) *position {
		pos := positions[id]
		if pos == nil {
			pos = &position{paid: decimal.Zero, owed: decimal.Zero}
			positions[id] = pos
			order = append(order, id)
		}
		return pos
	}

	for _, expense := range expenses {
		if expense.CurrencyCode != currencyCode {
			continue
		}
		shares, err := s.splitSvc.ExpenseShares(expense)
		if err != nil {
			return nil, err
		}
		payer := touch(expense.PayerID)
		payer.paid = payer.paid.Add(expense.Amount)
		for _, share := range shares {
			pos := touch(share.ParticipantID)
			pos.owed = pos.owed.Add(share.Amount)
		}
	}

	summaries := make([]domain.PersonSummary, 0, len(order))
	netSum := decimal.Zero
	for _, id := range order {
		pos := positions[id]
		net := pos.paid.Sub(pos.owed)
		netSum = netSum.Add(net)
		summaries = append(summaries, domain.PersonSummary{
			ParticipantID: id,
			TotalPaid:     pos.paid,
			TotalOwed:     pos.owed,
			Net:           net,
		})
	}

	// Net balances must conserve: every owed minor unit was paid by someone.
	// A sum beyond tolerance means a share computation bug, and the result
	// must be discarded rather than settled.
	tolerance := moneymath.FromMinorUnits(s.toleranceFn(currency, len(summaries)), currency)
	if netSum.Abs().GreaterThan(tolerance) {
		return nil, fmt.Errorf("%w: %s net balances sum to %s, beyond tolerance %s",
			apperrors.ErrBalanceInvariant, currencyCode, netSum, tolerance)
	}

	transfers, err := s.greedyTransfers(summaries, currency)
	if err != nil {
		return nil, err
	}

	sort.Slice(summaries, func(i, j int) bool { return summaries[i].ParticipantID < summaries[j].ParticipantID })

	return &domain.CurrencySettlement{
		CurrencyCode: currencyCode,
		Summaries:    summaries,
		Transfers:    transfers,
	}, nil
}

// greedyTransfers repeatedly matches the largest outstanding debtor with the
// largest outstanding creditor. The result is near-minimal (at most N-1
// transfers), O(N log N), and deterministic: equal magnitudes are broken
// toward the lexicographically smaller participant ID.
func (s *settlementService) greedyTransfers(summaries []domain.PersonSummary, currency domain.Currency) ([]domain.SettlementTransfer, error) {
	debtors := &balanceHeap{}
	creditors := &balanceHeap{}
	for _, sum := range summaries {
		units, err := moneymath.ToMinorUnits(sum.Net, currency)
		if err != nil {
			return nil, err
		}
		switch {
		case units < 0:
			*debtors = append(*debtors, balanceEntry{participantID: sum.ParticipantID, units: -units})
		case units > 0:
			*creditors = append(*creditors, balanceEntry{participantID: sum.ParticipantID, units: units})
		}
	}
	heap.Init(debtors)
	heap.Init(creditors)

	transfers := make([]domain.SettlementTransfer, 0, len(summaries))
	for debtors.Len() > 0 && creditors.Len() > 0 {
		d := heap.Pop(debtors).(balanceEntry)
		c := heap.Pop(creditors).(balanceEntry)

		amount := min(d.units, c.units)
		transfers = append(transfers, domain.SettlementTransfer{
			FromUserID:   d.participantID,
			ToUserID:     c.participantID,
			Amount:       moneymath.FromMinorUnits(amount, currency),
			CurrencyCode: currency.CurrencyCode,
		})

		d.units -= amount
		c.units -= amount
		if d.units > 0 {
			heap.Push(debtors, d)
		}
		if c.units > 0 {
			heap.Push(creditors, c)
		}
	}
	return transfers, nil
}

// MergeTransferStatus joins externally persisted settled flags onto freshly
// computed transfers, matching on (from, to, currency). The engine never sets
// settled status itself; it only carries what the caller persisted.
func (s *settlementService) MergeTransferStatus(transfers []domain.SettlementTransfer, statuses []domain.TransferStatus) []domain.MinimalTransfer {
	type transferKey struct {
		from, to, code string
	}
	byKey := make(map[transferKey]domain.TransferStatus, len(statuses))
	for _, st := range statuses {
		byKey[transferKey{from: st.FromUserID, to: st.ToUserID, code: st.CurrencyCode}] = st
	}

	merged := make([]domain.MinimalTransfer, len(transfers))
	for i, tr := range transfers {
		merged[i] = domain.MinimalTransfer{SettlementTransfer: tr}
		if st, ok := byKey[transferKey{from: tr.FromUserID, to: tr.ToUserID, code: tr.CurrencyCode}]; ok {
			merged[i].Settled = st.Settled
			merged[i].SettledAt = st.SettledAt
		}
	}
	return merged
}

// balanceEntry is one party's outstanding amount during greedy matching.
type balanceEntry struct {
	participantID string
	units         int64
}

// balanceHeap is a max-heap of outstanding balances: largest amount first,
// ties broken toward the lexicographically smaller participant ID.
type balanceHeap []balanceEntry

func (h balanceHeap) Len() int { return len(h) }

func (h balanceHeap) Less(i, j int) bool {
	if h[i].units != h[j].units {
		return h[i].units > h[j].units
	}
	return h[i].participantID < h[j].participantID
}

func (h balanceHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *balanceHeap) Push(x any) { *h = append(*h, x.(balanceEntry)) }

func (h *balanceHeap) Pop() any {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]
	return entry
}
