package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

const (
	CategoryCar  = "CAR"
	CategoryBike = "BIKE"
)

// ValidCategory reports whether c is a known vehicle category token.
func ValidCategory(c string) bool {
	return c == CategoryCar || c == CategoryBike
}

// CategoryList is the set of vehicle categories a mechanic can service,
// stored as a JSON array column.
type CategoryList []string

func (l CategoryList) Value() (driver.Value, error) {
	if l == nil {
		l = CategoryList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *CategoryList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = CategoryList{}
		return nil
	default:
		return errors.New("unsupported type for CategoryList")
	}
}

// Contains is an exact-match membership test against the category enum.
func (l CategoryList) Contains(category string) bool {
	for _, c := range l {
		if c == category {
			return true
		}
	}
	return false
}

// Validate rejects empty sets and unknown tokens.
func (l CategoryList) Validate() error {
	if len(l) == 0 {
		return errors.New("at least one vehicle category is required")
	}
	for _, c := range l {
		if !ValidCategory(c) {
			return fmt.Errorf("unknown vehicle category: %s", c)
		}
	}
	return nil
}
