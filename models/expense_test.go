package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNormalizeDate_MidnightUTC(t *testing.T) {
	in := time.Date(2025, time.March, 14, 17, 45, 12, 999, time.FixedZone("IST", 5*3600+1800))
	got := normalizeDate(in)
	want := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("normalizeDate = %s, want %s", got, want)
	}
}

func TestNewExpenseValidate(t *testing.T) {
	valid := NewExpense{
		ExpenseDate: time.Now(),
		Category:    "Travel",
		Amount:      decimal.NewFromInt(100),
		Description: "client visit",
	}
	if err := valid.validate(); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	negative := valid
	negative.Amount = decimal.NewFromInt(-1)
	if err := negative.validate(); err == nil {
		t.Fatal("negative amount must be rejected")
	}

	uncategorized := valid
	uncategorized.Category = ""
	if err := uncategorized.validate(); err == nil {
		t.Fatal("missing category must be rejected")
	}
}
