package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// TransactionType classifies a ledger transaction.
// Income and capital add to the current balance, expense subtracts,
// accounts-receivable is off-balance until settled.
type TransactionType int

const (
	TransactionTypeIncome     TransactionType = 0
	TransactionTypeExpense    TransactionType = 1
	TransactionTypeReceivable TransactionType = 2
	TransactionTypeCapital    TransactionType = 3
)

func (t TransactionType) String() string {
	names := [...]string{"income", "expense", "accounts-receivable", "capital"}
	if int(t) < 0 || int(t) >= len(names) {
		return "income"
	}
	return names[t]
}

func (t TransactionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TransactionType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = TransactionType(i)
		return nil
	}
	switch str {
	case "income":
		*t = TransactionTypeIncome
	case "expense":
		*t = TransactionTypeExpense
	case "accounts-receivable":
		*t = TransactionTypeReceivable
	case "capital":
		*t = TransactionTypeCapital
	}
	return nil
}

func (t TransactionType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *TransactionType) Scan(value interface{}) error {
	if value == nil {
		*t = TransactionTypeIncome
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = TransactionType(v)
	case int:
		*t = TransactionType(v)
	}
	return nil
}
