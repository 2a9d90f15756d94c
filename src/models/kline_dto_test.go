package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKlineDataToRecords(t *testing.T) {
	t.Run("parses a well-formed kline", func(t *testing.T) {
		data := &KlineData{
			Code: "600519",
			Klines: []string{
				"2001-08-27,34.51,35.55,37.78,32.85,406318,1410347008.00,14.28,0.92,0.32,56.83",
			},
		}

		records, err := data.ToRecords()
		require.NoError(t, err)
		require.Len(t, records, 1)

		r := records[0]
		assert.Equal(t, "2001-08-27", r.Date)
		assert.Equal(t, 34.51, *r.Open)
		assert.Equal(t, 35.55, *r.Close)
		assert.Equal(t, 37.78, *r.High)
		assert.Equal(t, 32.85, *r.Low)
		assert.Equal(t, 406318.0, *r.Volume)
		assert.Equal(t, 1410347008.0, *r.Amount)
		assert.Equal(t, 14.28, *r.Amplitude)
		assert.Equal(t, 0.92, *r.PctChange)
		assert.Equal(t, 0.32, *r.PriceChange)
		assert.Equal(t, 56.83, *r.Turnover)
	})

	t.Run("accepts compact dates and reformats them", func(t *testing.T) {
		data := &KlineData{
			Klines: []string{"20010827,34.51,35.55,37.78,32.85,406318,1410347008.00,14.28,0.92,0.32,56.83"},
		}

		records, err := data.ToRecords()
		require.NoError(t, err)
		assert.Equal(t, "2001-08-27", records[0].Date)
	})

	t.Run("unparseable numerics become missing values", func(t *testing.T) {
		data := &KlineData{
			Klines: []string{"2001-08-27,-,35.55,n/a,32.85,,1410347008.00,14.28,0.92,0.32,56.83"},
		}

		records, err := data.ToRecords()
		require.NoError(t, err)

		r := records[0]
		assert.Nil(t, r.Open)
		assert.Nil(t, r.High)
		assert.Nil(t, r.Volume)
		assert.Equal(t, 35.55, *r.Close)
		assert.True(t, r.HasEssentialData())
	})

	t.Run("malformed date is an error", func(t *testing.T) {
		data := &KlineData{
			Klines: []string{"not-a-date,34.51,35.55,37.78,32.85,406318,1410347008.00,14.28,0.92,0.32,56.83"},
		}

		_, err := data.ToRecords()
		assert.Error(t, err)
	})

	t.Run("wrong field count is an error", func(t *testing.T) {
		data := &KlineData{
			Klines: []string{"2001-08-27,34.51,35.55"},
		}

		_, err := data.ToRecords()
		assert.Error(t, err)
	})

	t.Run("preserves provider order", func(t *testing.T) {
		data := &KlineData{
			Klines: []string{
				"2001-08-27,34.51,35.55,37.78,32.85,406318,1410347008.00,14.28,0.92,0.32,56.83",
				"2001-08-28,34.99,36.86,37.00,34.61,129647,464463104.00,6.72,3.68,1.31,18.52",
			},
		}

		records, err := data.ToRecords()
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "2001-08-27", records[0].Date)
		assert.Equal(t, "2001-08-28", records[1].Date)
	})
}
