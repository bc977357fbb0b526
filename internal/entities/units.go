package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type WeightUnit string

const (
	Kilogram WeightUnit = "kg"
	Pound    WeightUnit = "lb"
	Gram     WeightUnit = "g"
)

const DefaultWeightUnit = Kilogram

func (u WeightUnit) String() string {
	return string(u)
}

func ParseWeightUnit(s string) (WeightUnit, error) {
	switch unit := WeightUnit(strings.ToLower(strings.TrimSpace(s))); unit {
	case Kilogram, Pound, Gram:
		return unit, nil
	default:
		return "", fmt.Errorf("%w: weight unit %q", ErrUnsupportedUnit, s)
	}
}

type DimensionUnit string

const (
	Centimeter DimensionUnit = "cm"
	Inch       DimensionUnit = "in"
	Meter      DimensionUnit = "m"
)

const DefaultDimensionUnit = Centimeter

func (u DimensionUnit) String() string {
	return string(u)
}

func ParseDimensionUnit(s string) (DimensionUnit, error) {
	switch unit := DimensionUnit(strings.ToLower(strings.TrimSpace(s))); unit {
	case Centimeter, Inch, Meter:
		return unit, nil
	default:
		return "", fmt.Errorf("%w: dimension unit %q", ErrUnsupportedUnit, s)
	}
}

var (
	kgPerPound = decimal.RequireFromString("0.45359237")
	kgPerGram  = decimal.RequireFromString("0.001")
	cmPerInch  = decimal.RequireFromString("2.54")
	cmPerMeter = decimal.NewFromInt(100)
)

type Weight struct {
	Value decimal.Decimal
	Unit  WeightUnit
}

// ToKg никогда не угадывает единицу: неизвестная - ошибка ErrUnsupportedUnit.
func (w Weight) ToKg() (decimal.Decimal, error) {
	switch w.Unit {
	case Kilogram:
		return w.Value, nil
	case Pound:
		return w.Value.Mul(kgPerPound), nil
	case Gram:
		return w.Value.Mul(kgPerGram), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: weight unit %q", ErrUnsupportedUnit, w.Unit)
	}
}

type Dimensions struct {
	Height decimal.Decimal
	Width  decimal.Decimal
	Length decimal.Decimal
	Unit   DimensionUnit
}

func (d Dimensions) IsZero() bool {
	return d.Height.IsZero() && d.Width.IsZero() && d.Length.IsZero()
}

// ToCm возвращает копию в сантиметрах.
func (d Dimensions) ToCm() (Dimensions, error) {
	var factor decimal.Decimal
	switch d.Unit {
	case Centimeter:
		factor = decimal.NewFromInt(1)
	case Inch:
		factor = cmPerInch
	case Meter:
		factor = cmPerMeter
	default:
		return Dimensions{}, fmt.Errorf("%w: dimension unit %q", ErrUnsupportedUnit, d.Unit)
	}

	return Dimensions{
		Height: d.Height.Mul(factor),
		Width:  d.Width.Mul(factor),
		Length: d.Length.Mul(factor),
		Unit:   Centimeter,
	}, nil
}
