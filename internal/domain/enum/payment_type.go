package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentType represents how a sale was paid for
type PaymentType int

const (
	PaymentTypePaid PaymentType = 0
	PaymentTypeDebt PaymentType = 1
)

func (p PaymentType) String() string {
	names := [...]string{"paid", "debt"}
	if int(p) < 0 || int(p) >= len(names) {
		return "paid"
	}
	return names[p]
}

func (p PaymentType) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *PaymentType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*p = PaymentType(i)
		return nil
	}
	switch str {
	case "paid":
		*p = PaymentTypePaid
	case "debt":
		*p = PaymentTypeDebt
	}
	return nil
}

func (p PaymentType) Value() (driver.Value, error) {
	return int64(p), nil
}

func (p *PaymentType) Scan(value interface{}) error {
	if value == nil {
		*p = PaymentTypePaid
		return nil
	}
	switch v := value.(type) {
	case int64:
		*p = PaymentType(v)
	case int:
		*p = PaymentType(v)
	}
	return nil
}
