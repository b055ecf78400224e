package chatbot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeReply_RuleTable(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"balance", "What's my balance?", DefaultRules[0].Reply},
		{"account uppercase", "ACCOUNT details please", DefaultRules[0].Reply},
		{"transfer", "I want to transfer money", DefaultRules[1].Reply},
		{"payment", "Payment failed", DefaultRules[1].Reply},
		{"loan", "loan options?", DefaultRules[2].Reply},
		{"credit", "Credit card limit", DefaultRules[2].Reply},
		{"support", "contact support", DefaultRules[3].Reply},
		{"help", "HELP", DefaultRules[3].Reply},
		{"kyc", "kyc status", DefaultRules[4].Reply},
		{"document", "Which documents do I need?", DefaultRules[4].Reply},
		{"substring inside word", "my accounts", DefaultRules[0].Reply},
		{"default", "good morning", DefaultReply},
		{"empty", "", DefaultReply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ComputeReply(tt.input))
		})
	}
}

func TestComputeReply_FirstRuleWins(t *testing.T) {
	req := require.New(t)
	req.Equal(DefaultRules[0].Reply, ComputeReply("balance and loan"))
	req.Equal(DefaultRules[0].Reply, ComputeReply("loan and balance"))
	req.Equal(DefaultRules[1].Reply, ComputeReply("help me with a payment"))
	req.Equal(DefaultRules[2].Reply, ComputeReply("kyc for my credit"))
	req.Equal(DefaultRules[3].Reply, ComputeReply("document support"))
}

func TestComputeReply_Deterministic(t *testing.T) {
	req := require.New(t)
	for i := 0; i < 10; i++ {
		req.Equal(ComputeReply("transfer help"), ComputeReply("transfer help"))
	}
}

func TestNewResponder_CustomRules(t *testing.T) {
	req := require.New(t)
	r, err := NewResponder([]Rule{
		{Keywords: []string{"Hours"}, Reply: "9 to 5"},
		{Keywords: []string{"hours", "open"}, Reply: "unreachable for hours"},
	}, "fallback")
	req.NoError(err)
	req.Equal("9 to 5", r.Reply("opening HOURS"))
	req.Equal("unreachable for hours", r.Reply("are you open"))
	req.Equal("fallback", r.Reply("nope"))

	_, err = NewResponder([]Rule{{Keywords: []string{""}, Reply: "x"}}, "y")
	req.Error(err)

	empty, err := NewResponder(nil, "only")
	req.NoError(err)
	req.Equal("only", empty.Reply("balance"))
}
