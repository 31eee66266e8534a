package intent

import (
	"regexp"
	"strconv"
	"strings"
)

// Kind classifies the transaction hinted at by a message.
type Kind string

const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

// RecordTransaction is the intent label attached to user messages that look
// like a transaction description.
const RecordTransaction = "record_transaction"

// Transaction is the structured hint extracted from a chat message. It never
// creates a ledger entry by itself; the mobile client decides what to do with
// it.
type Transaction struct {
	Type        Kind    `json:"type"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// Keyword tables are matched as substrings of the lower-cased message.
// "abis" also covers "habis"; "jajan" is common slang for casual spending.
var (
	expenseKeywords = []string{"beli", "bayar", "buat", "keluar", "abis", "jajan", "spend"}
	incomeKeywords  = []string{"terima", "dapat", "gaji", "bonus", "income"}
)

// amountPattern picks the first numeric token and an optional Indonesian
// magnitude suffix (rb/ribu/k = thousands, jt/juta = millions).
var amountPattern = regexp.MustCompile(`(?i)(\d+[.,]?\d*)\s?(rb|ribu|k|juta|jt)?`)

// Extract scans the message for an expense/income keyword plus an amount.
// It returns nil when the message carries no recognizable transaction: no
// keyword, or a keyword with no parsable number. It never fabricates a zero
// amount.
func Extract(message string) *Transaction {
	lower := strings.ToLower(message)

	isExpense := containsAny(lower, expenseKeywords)
	isIncome := containsAny(lower, incomeKeywords)
	if !isExpense && !isIncome {
		return nil
	}

	match := amountPattern.FindStringSubmatch(message)
	if match == nil {
		return nil
	}

	amount, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", "."), 64)
	if err != nil {
		return nil
	}

	switch strings.ToLower(match[2]) {
	case "rb", "ribu", "k":
		amount *= 1_000
	case "juta", "jt":
		amount *= 1_000_000
	}

	// Expense wins when a message matches both keyword sets.
	kind := KindIncome
	if isExpense {
		kind = KindExpense
	}

	return &Transaction{
		Type:        kind,
		Amount:      amount,
		Description: message,
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
