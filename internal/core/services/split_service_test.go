package services_test

import (
	"testing"

	"github.com/SscSPs/trip_settlement_engine/internal/apperrors"
	"github.com/SscSPs/trip_settlement_engine/internal/core/domain"
	portssvc "github.com/SscSPs/trip_settlement_engine/internal/core/ports/services"
	"github.com/SscSPs/trip_settlement_engine/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---

type SplitServiceTestSuite struct {
	suite.Suite
	service portssvc.SplitSvc
	usd     domain.Currency
	jpy     domain.Currency
	bhd     domain.Currency
}

func (s *SplitServiceTestSuite) SetupTest() {
	s.service = services.NewSplitService(services.NewAllocationService())
	s.usd = domain.CurrencyOrDefault("USD")
	s.jpy = domain.CurrencyOrDefault("JPY")
	s.bhd = domain.CurrencyOrDefault("BHD")
}

func (s *SplitServiceTestSuite) assertAmount(want string, got decimal.Decimal) {
	s.True(got.Equal(decimal.RequireFromString(want)), "want %s, got %s", want, got)
}

func (s *SplitServiceTestSuite) assertShare(share domain.ParticipantAmount, wantID, wantAmount string) {
	s.Equal(wantID, share.ParticipantID)
	s.assertAmount(wantAmount, share.Amount)
}

func sumAmounts(shares []domain.ParticipantAmount) decimal.Decimal {
	total := decimal.Zero
	for _, sh := range shares {
		total = total.Add(sh.Amount)
	}
	return total
}

// --- EqualShares ---

func (s *SplitServiceTestSuite) TestEqualShares_RemainderToEarliest() {
	shares, err := s.service.EqualShares(decimal.RequireFromString("100.00"), s.usd, []string{"alice", "bob", "carol"})

	s.Require().NoError(err)
	s.Require().Len(shares, 3)
	s.assertShare(shares[0], "alice", "33.34")
	s.assertShare(shares[1], "bob", "33.33")
	s.assertShare(shares[2], "carol", "33.33")
	s.assertAmount("100.00", sumAmounts(shares))
}

func (s *SplitServiceTestSuite) TestEqualShares_ZeroDecimalCurrency() {
	shares, err := s.service.EqualShares(decimal.NewFromInt(100), s.jpy, []string{"alice", "bob", "carol"})

	s.Require().NoError(err)
	s.Require().Len(shares, 3)
	s.assertShare(shares[0], "alice", "34")
	s.assertShare(shares[1], "bob", "33")
	s.assertShare(shares[2], "carol", "33")
	s.assertAmount("100", sumAmounts(shares))
}

func (s *SplitServiceTestSuite) TestEqualShares_ExactDivision() {
	shares, err := s.service.EqualShares(decimal.RequireFromString("90.00"), s.usd, []string{"alice", "bob", "carol"})

	s.Require().NoError(err)
	s.Require().Len(shares, 3)
	for _, sh := range shares {
		s.assertAmount("30.00", sh.Amount)
	}
}

func (s *SplitServiceTestSuite) TestEqualShares_ThreeDecimalCurrency() {
	ids := []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7"}
	shares, err := s.service.EqualShares(decimal.RequireFromString("10.000"), s.bhd, ids)

	s.Require().NoError(err)
	s.Require().Len(shares, 7)
	for i, sh := range shares {
		if i < 4 {
			s.assertAmount("1.429", sh.Amount)
		} else {
			s.assertAmount("1.428", sh.Amount)
		}
	}
	s.assertAmount("10.000", sumAmounts(shares))
}

func (s *SplitServiceTestSuite) TestEqualShares_SingleParticipant() {
	shares, err := s.service.EqualShares(decimal.RequireFromString("42.17"), s.usd, []string{"alice"})

	s.Require().NoError(err)
	s.Require().Len(shares, 1)
	s.assertShare(shares[0], "alice", "42.17")
}

func (s *SplitServiceTestSuite) TestEqualShares_ZeroAmount() {
	shares, err := s.service.EqualShares(decimal.Zero, s.usd, []string{"alice", "bob"})

	s.Require().NoError(err)
	s.Require().Len(shares, 2)
	s.assertAmount("0", shares[0].Amount)
	s.assertAmount("0", shares[1].Amount)
}

func (s *SplitServiceTestSuite) TestEqualShares_NoParticipants() {
	_, err := s.service.EqualShares(decimal.RequireFromString("10.00"), s.usd, nil)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *SplitServiceTestSuite) TestEqualShares_NegativeAmount() {
	_, err := s.service.EqualShares(decimal.RequireFromString("-1.00"), s.usd, []string{"alice"})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *SplitServiceTestSuite) TestEqualShares_SubMinorUnitAmount() {
	_, err := s.service.EqualShares(decimal.RequireFromString("0.001"), s.usd, []string{"alice"})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Contains(err.Error(), "minor units")
}

// --- WeightedShares ---

func (s *SplitServiceTestSuite) TestWeightedShares_FloorThenLastAbsorbs() {
	participants := []domain.SplitParticipant{
		{ParticipantID: "alice", Weight: decimal.NewFromInt(2)},
		{ParticipantID: "bob", Weight: decimal.NewFromInt(1)},
	}
	shares, err := s.service.WeightedShares(decimal.RequireFromString("1.01"), s.usd, participants)

	s.Require().NoError(err)
	s.Require().Len(shares, 2)
	s.assertShare(shares[0], "alice", "0.67")
	s.assertShare(shares[1], "bob", "0.34")
	s.assertAmount("1.01", sumAmounts(shares))
}

func (s *SplitServiceTestSuite) TestWeightedShares_Proportional() {
	participants := []domain.SplitParticipant{
		{ParticipantID: "alice", Weight: decimal.NewFromInt(3)},
		{ParticipantID: "bob", Weight: decimal.NewFromInt(1)},
	}
	shares, err := s.service.WeightedShares(decimal.RequireFromString("1.00"), s.usd, participants)

	s.Require().NoError(err)
	s.assertShare(shares[0], "alice", "0.75")
	s.assertShare(shares[1], "bob", "0.25")
}

func (s *SplitServiceTestSuite) TestWeightedShares_UniformWeightsMatchEqualSplit() {
	participants := []domain.SplitParticipant{
		{ParticipantID: "alice", Weight: decimal.RequireFromString("2.5")},
		{ParticipantID: "bob", Weight: decimal.RequireFromString("2.5")},
		{ParticipantID: "carol", Weight: decimal.RequireFromString("2.5")},
	}
	shares, err := s.service.WeightedShares(decimal.RequireFromString("100.00"), s.usd, participants)

	s.Require().NoError(err)
	s.Require().Len(shares, 3)
	s.assertShare(shares[0], "alice", "33.34")
	s.assertShare(shares[1], "bob", "33.33")
	s.assertShare(shares[2], "carol", "33.33")
}

func (s *SplitServiceTestSuite) TestWeightedShares_AllZeroWeights() {
	participants := []domain.SplitParticipant{
		{ParticipantID: "alice", Weight: decimal.Zero},
		{ParticipantID: "bob", Weight: decimal.Zero},
	}
	_, err := s.service.WeightedShares(decimal.RequireFromString("10.00"), s.usd, participants)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrDivisionByZero)
}

func (s *SplitServiceTestSuite) TestWeightedShares_NegativeWeight() {
	participants := []domain.SplitParticipant{
		{ParticipantID: "alice", Weight: decimal.NewFromInt(-1)},
		{ParticipantID: "bob", Weight: decimal.NewFromInt(2)},
	}
	_, err := s.service.WeightedShares(decimal.RequireFromString("10.00"), s.usd, participants)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *SplitServiceTestSuite) TestWeightedShares_NoParticipants() {
	_, err := s.service.WeightedShares(decimal.RequireFromString("10.00"), s.usd, nil)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

// --- ExpenseShares dispatch ---

func (s *SplitServiceTestSuite) TestExpenseShares_Equal() {
	expense := domain.Expense{
		ExpenseID:    "exp-1",
		PayerID:      "alice",
		CurrencyCode: "USD",
		Amount:       decimal.RequireFromString("100.00"),
		SplitType:    domain.SplitEqual,
		Participants: []domain.SplitParticipant{
			{ParticipantID: "alice", Weight: decimal.NewFromInt(1)},
			{ParticipantID: "bob", Weight: decimal.NewFromInt(1)},
			{ParticipantID: "carol", Weight: decimal.NewFromInt(1)},
		},
	}
	shares, err := s.service.ExpenseShares(expense)

	s.Require().NoError(err)
	s.Require().Len(shares, 3)
	s.assertShare(shares[0], "alice", "33.34")
	s.assertShare(shares[1], "bob", "33.33")
	s.assertShare(shares[2], "carol", "33.33")
}

func (s *SplitServiceTestSuite) TestExpenseShares_Weighted() {
	expense := domain.Expense{
		ExpenseID:    "exp-2",
		PayerID:      "alice",
		CurrencyCode: "USD",
		Amount:       decimal.RequireFromString("1.00"),
		SplitType:    domain.SplitWeighted,
		Participants: []domain.SplitParticipant{
			{ParticipantID: "alice", Weight: decimal.NewFromInt(3)},
			{ParticipantID: "bob", Weight: decimal.NewFromInt(1)},
		},
	}
	shares, err := s.service.ExpenseShares(expense)

	s.Require().NoError(err)
	s.assertShare(shares[0], "alice", "0.75")
	s.assertShare(shares[1], "bob", "0.25")
}

func (s *SplitServiceTestSuite) TestExpenseShares_Itemized() {
	expense := domain.Expense{
		ExpenseID:    "exp-3",
		PayerID:      "alice",
		CurrencyCode: "USD",
		Amount:       decimal.RequireFromString("10.00"),
		SplitType:    domain.SplitItemized,
		Receipt: &domain.Receipt{
			Items: []domain.LineItem{
				{
					Name:      "pizza",
					Quantity:  1,
					UnitPrice: decimal.RequireFromString("10.00"),
					AssignedTo: []domain.ItemAssignment{
						{ParticipantID: "alice", Share: decimal.NewFromInt(1)},
						{ParticipantID: "bob", Share: decimal.NewFromInt(1)},
					},
				},
			},
		},
	}
	shares, err := s.service.ExpenseShares(expense)

	s.Require().NoError(err)
	s.Require().Len(shares, 2)
	s.assertShare(shares[0], "alice", "5.00")
	s.assertShare(shares[1], "bob", "5.00")
}

func (s *SplitServiceTestSuite) TestExpenseShares_InvalidExpense() {
	expense := domain.Expense{
		ExpenseID:    "exp-4",
		CurrencyCode: "USD",
		Amount:       decimal.RequireFromString("10.00"),
		SplitType:    domain.SplitEqual,
		Participants: []domain.SplitParticipant{
			{ParticipantID: "alice", Weight: decimal.NewFromInt(1)},
		},
	}
	_, err := s.service.ExpenseShares(expense)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *SplitServiceTestSuite) TestExpenseShares_EqualWithNoParticipants() {
	expense := domain.Expense{
		ExpenseID:    "exp-5",
		PayerID:      "alice",
		CurrencyCode: "USD",
		Amount:       decimal.RequireFromString("10.00"),
		SplitType:    domain.SplitEqual,
	}
	_, err := s.service.ExpenseShares(expense)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

// --- Conservation ---

func (s *SplitServiceTestSuite) TestEqualShares_SumsToAmountExactly() {
	cases := []struct {
		amount   string
		currency domain.Currency
		n        int
	}{
		{"100.00", s.usd, 3},
		{"0.01", s.usd, 3},
		{"99.99", s.usd, 7},
		{"1000", s.jpy, 3},
		{"7", s.jpy, 11},
		{"10.000", s.bhd, 7},
		{"0.005", s.bhd, 2},
	}
	for _, tc := range cases {
		ids := make([]string, tc.n)
		for i := range ids {
			ids[i] = string(rune('a' + i))
		}
		shares, err := s.service.EqualShares(decimal.RequireFromString(tc.amount), tc.currency, ids)
		s.Require().NoError(err, "amount %s across %d", tc.amount, tc.n)
		s.assertAmount(tc.amount, sumAmounts(shares))
	}
}

func (s *SplitServiceTestSuite) TestWeightedShares_SumsToAmountExactly() {
	weights := []string{"1", "2.5", "0.1", "7"}
	participants := make([]domain.SplitParticipant, len(weights))
	for i, w := range weights {
		participants[i] = domain.SplitParticipant{
			ParticipantID: string(rune('a' + i)),
			Weight:        decimal.RequireFromString(w),
		}
	}
	for _, amount := range []string{"100.00", "0.03", "123.45"} {
		shares, err := s.service.WeightedShares(decimal.RequireFromString(amount), s.usd, participants)
		s.Require().NoError(err, "amount %s", amount)
		s.assertAmount(amount, sumAmounts(shares))
	}
}

func TestSplitServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SplitServiceTestSuite))
}
