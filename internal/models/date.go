package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	apperrors "github.com/yukikurage/marketplace-api/internal/errors"
	"gorm.io/datatypes"
)

// DateLayout is the wire format of calendar dates (MM/DD/YYYY).
const DateLayout = "01/02/2006"

// Date is a calendar date stored in a DATE column and serialized as MM/DD/YYYY.
type Date datatypes.Date

// ParseDate parses a MM/DD/YYYY string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, &apperrors.FormatError{Value: s, Layout: "MM/DD/YYYY"}
	}
	return Date(t), nil
}

// MustParseDate is ParseDate for literals known to be valid.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) String() string {
	return time.Time(d).Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &apperrors.FormatError{Value: string(data), Layout: "MM/DD/YYYY"}
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan implements sql.Scanner
func (d *Date) Scan(value interface{}) error {
	return (*datatypes.Date)(d).Scan(value)
}

// Value implements driver.Valuer
func (d Date) Value() (driver.Value, error) {
	return datatypes.Date(d).Value()
}

// GormDataType maps the column to the dialect's DATE type
func (Date) GormDataType() string {
	return "date"
}
