package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// HistoryType classifies a product history entry
type HistoryType int

const (
	HistoryTypeCreated HistoryType = 0
	HistoryTypeRestock HistoryType = 1
	HistoryTypeSale    HistoryType = 2
)

func (h HistoryType) String() string {
	names := [...]string{"created", "restock", "sale"}
	if int(h) < 0 || int(h) >= len(names) {
		return "created"
	}
	return names[h]
}

func (h HistoryType) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h *HistoryType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*h = HistoryType(i)
		return nil
	}
	switch str {
	case "created":
		*h = HistoryTypeCreated
	case "restock":
		*h = HistoryTypeRestock
	case "sale":
		*h = HistoryTypeSale
	}
	return nil
}

func (h HistoryType) Value() (driver.Value, error) {
	return int64(h), nil
}

func (h *HistoryType) Scan(value interface{}) error {
	if value == nil {
		*h = HistoryTypeCreated
		return nil
	}
	switch v := value.(type) {
	case int64:
		*h = HistoryType(v)
	case int:
		*h = HistoryType(v)
	}
	return nil
}
