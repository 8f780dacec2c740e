package core

import (
	"time"
)

// Canonical bar table column names
const (
	ColumnOpen   = "open"
	ColumnHigh   = "high"
	ColumnLow    = "low"
	ColumnClose  = "close"
	ColumnVolume = "volume"
)

// Frame is a time series container for OHLCV bars and custom indicator data.
// All series share one positional index; Time carries the temporal axis.
type Frame struct {
	Pair string

	Open   Series[float64]
	High   Series[float64]
	Low    Series[float64]
	Close  Series[float64]
	Volume Series[float64]

	Time       []time.Time
	LastUpdate time.Time

	// Custom user metadata for indicator outputs
	Metadata map[string]Series[float64]
}

// Len returns the number of bars in the frame, taken from the longest
// canonical column so partially populated frames still report a size
func (f *Frame) Len() int {
	size := len(f.Time)
	for _, s := range []Series[float64]{f.Open, f.High, f.Low, f.Close, f.Volume} {
		if len(s) > size {
			size = len(s)
		}
	}
	return size
}

// Column returns the series stored under name. Canonical OHLCV names map to
// the struct fields; any other name is looked up in Metadata.
func (f *Frame) Column(name string) (Series[float64], bool) {
	switch name {
	case ColumnOpen:
		return f.Open, f.Open != nil
	case ColumnHigh:
		return f.High, f.High != nil
	case ColumnLow:
		return f.Low, f.Low != nil
	case ColumnClose:
		return f.Close, f.Close != nil
	case ColumnVolume:
		return f.Volume, f.Volume != nil
	}
	s, ok := f.Metadata[name]
	return s, ok
}

// SetColumn stores a series under name, overwriting any previous column of
// that name. Canonical OHLCV names replace the struct fields.
func (f *Frame) SetColumn(name string, s Series[float64]) {
	switch name {
	case ColumnOpen:
		f.Open = s
		return
	case ColumnHigh:
		f.High = s
		return
	case ColumnLow:
		f.Low = s
		return
	case ColumnClose:
		f.Close = s
		return
	case ColumnVolume:
		f.Volume = s
		return
	}
	if f.Metadata == nil {
		f.Metadata = make(map[string]Series[float64])
	}
	f.Metadata[name] = s
}

// Sample returns a subset of the frame with the last 'positions' bars
func (f *Frame) Sample(positions int) Frame {
	size := f.Len()
	start := size - positions

	// Return the entire frame if the requested sample is larger than the frame
	if start <= 0 {
		return *f
	}

	sample := Frame{
		Pair:       f.Pair,
		Open:       f.Open.LastValues(positions),
		High:       f.High.LastValues(positions),
		Low:        f.Low.LastValues(positions),
		Close:      f.Close.LastValues(positions),
		Volume:     f.Volume.LastValues(positions),
		LastUpdate: f.LastUpdate,
		Metadata:   make(map[string]Series[float64]),
	}
	if len(f.Time) >= positions {
		sample.Time = f.Time[len(f.Time)-positions:]
	} else {
		sample.Time = f.Time
	}

	for key := range f.Metadata {
		sample.Metadata[key] = f.Metadata[key].LastValues(positions)
	}

	return sample
}
