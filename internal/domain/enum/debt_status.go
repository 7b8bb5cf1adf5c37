package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DebtStatus represents the settlement state of a debt record.
// Transitions are monotonic: pending debts become paid and stay paid.
type DebtStatus int

const (
	DebtStatusPending DebtStatus = 0
	DebtStatusPaid    DebtStatus = 1
)

func (s DebtStatus) String() string {
	names := [...]string{"pending", "paid"}
	if int(s) < 0 || int(s) >= len(names) {
		return "pending"
	}
	return names[s]
}

func (s DebtStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *DebtStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = DebtStatus(i)
		return nil
	}
	switch str {
	case "pending":
		*s = DebtStatusPending
	case "paid":
		*s = DebtStatusPaid
	}
	return nil
}

func (s DebtStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *DebtStatus) Scan(value interface{}) error {
	if value == nil {
		*s = DebtStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = DebtStatus(v)
	case int:
		*s = DebtStatus(v)
	}
	return nil
}
