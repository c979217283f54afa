package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/yukikurage/marketplace-api/internal/errors"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("02/08/2013")
	require.NoError(t, err)

	tm := time.Time(d)
	assert.Equal(t, 2013, tm.Year())
	assert.Equal(t, time.February, tm.Month())
	assert.Equal(t, 8, tm.Day())
	assert.Equal(t, "02/08/2013", d.String())
}

func TestParseDate_InvalidFormat(t *testing.T) {
	for _, s := range []string{"2013-02-08", "13/01/2020", "02/08/13", ""} {
		_, err := ParseDate(s)
		assert.True(t, errors.Is(err, apperrors.ErrFormat), "expected format error for %q", s)
	}
}

func TestDate_JSON(t *testing.T) {
	var order struct {
		StartDate *Date `json:"start_date"`
		EndDate   *Date `json:"end_date"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"start_date":"12/31/2020","end_date":null}`), &order))
	require.NotNil(t, order.StartDate)
	assert.Nil(t, order.EndDate)

	out, err := json.Marshal(order)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start_date":"12/31/2020","end_date":null}`, string(out))
}

func TestDate_UnmarshalRejectsBadValues(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`"2020/12/31"`), &d)
	assert.True(t, errors.Is(err, apperrors.ErrFormat))

	err = json.Unmarshal([]byte(`20201231`), &d)
	assert.True(t, errors.Is(err, apperrors.ErrFormat))
}

func TestDate_Value(t *testing.T) {
	d := MustParseDate("07/04/2021")
	v, err := d.Value()
	require.NoError(t, err)

	tm, ok := v.(time.Time)
	require.True(t, ok)
	assert.Equal(t, time.Date(2021, time.July, 4, 0, 0, 0, 0, time.UTC), tm)

	var scanned Date
	require.NoError(t, scanned.Scan(tm))
	assert.Equal(t, "07/04/2021", scanned.String())
}
