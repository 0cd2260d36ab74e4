package entity

import (
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Amount is a monetary value in whole rupees. Valid is false when the stored
// field was missing, null, or not a number; such amounts count as zero in every
// sum. Decoding never fails on bad data, it degrades to an invalid Amount so
// that one mistyped document cannot break an aggregate.
type Amount struct {
	Value int64
	Valid bool
}

// AmountOf returns a valid Amount holding v.
func AmountOf(v int64) Amount {
	return Amount{Value: v, Valid: true}
}

// Or returns the amount value, or fallback when the amount is invalid.
func (a Amount) Or(fallback int64) int64 {
	if !a.Valid {
		return fallback
	}
	return a.Value
}

// MarshalBSONValue stores valid amounts as int64 and invalid ones as null.
func (a Amount) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if !a.Valid {
		return bson.MarshalValue(primitive.Null{})
	}
	return bson.MarshalValue(a.Value)
}

// UnmarshalBSONValue accepts any numeric BSON representation, including
// numeric strings. Everything else decodes as an invalid Amount.
func (a *Amount) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Int32:
		*a = AmountOf(int64(rv.Int32()))
	case bsontype.Int64:
		*a = AmountOf(rv.Int64())
	case bsontype.Double:
		*a = fromFloat(rv.Double())
	case bsontype.Decimal128:
		if f, err := strconv.ParseFloat(rv.Decimal128().String(), 64); err == nil {
			*a = fromFloat(f)
		} else {
			*a = Amount{}
		}
	case bsontype.String:
		*a = fromString(rv.StringValue())
	default:
		*a = Amount{}
	}
	return nil
}

// MarshalJSON renders valid amounts as plain numbers and invalid ones as null.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, a.Value, 10), nil
}

// UnmarshalJSON mirrors the BSON leniency for API payloads.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*a = Amount{}
		return nil
	}
	s = strings.Trim(s, `"`)
	*a = fromString(s)
	return nil
}

func fromFloat(f float64) Amount {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Amount{}
	}
	return AmountOf(int64(math.Round(f)))
}

func fromString(s string) Amount {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return AmountOf(v)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return fromFloat(f)
	}
	return Amount{}
}
