package lbytes

import (
	"math"
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// ExecuteInstructions create the final value t with type T by running the
// instructions in order and assigning each value to the field of t whose
// JSON name is the instruction key. Values are assigned as read, so strings
// keep their bytes even when they are not valid UTF-8.
func ExecuteInstructions[T any](instructions []Instruction) (*T, error) {
	var t T
	tValue := reflect.ValueOf(&t).Elem()
	if tValue.Kind() != reflect.Struct {
		return nil, errors.Errorf(`ExecuteInstructions error: type "%T" is not a struct`, t)
	}
	fields := fieldsByKey(tValue.Type())

	for _, instruction := range instructions {
		value, err := instruction.ReadFunction()
		if err != nil {
			err := errors.Wrapf(err, `ExecuteInstructions error reading key "%v"`, instruction.Key)
			return nil, err
		}
		index, ok := fields[instruction.Key]
		if !ok {
			return nil, errors.Errorf(`ExecuteInstructions error: type "%T" has no field for key "%v"`, t, instruction.Key)
		}
		if err := assign(tValue.FieldByIndex(index), value); err != nil {
			err := errors.Wrapf(err, `ExecuteInstructions error assigning key "%v"`, instruction.Key)
			return nil, err
		}
	}

	return &t, nil
}

// fieldsByKey indexes the exported fields of a struct type, promoted ones
// included, by the name part of their json tag.
func fieldsByKey(t reflect.Type) map[string][]int {
	fields := map[string][]int{}
	for _, field := range reflect.VisibleFields(t) {
		if !field.IsExported() || field.Anonymous {
			continue
		}
		key, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if key == "" {
			key = field.Name
		}
		if key == "-" {
			continue
		}
		fields[key] = field.Index
	}
	return fields
}

// assign sets field to value, converting only between types of the same
// kind family so that no value is silently truncated.
func assign(field reflect.Value, value any) error {
	v := reflect.ValueOf(value)
	if !v.IsValid() {
		return errors.New("nil value")
	}
	if v.Type().AssignableTo(field.Type()) {
		field.Set(v)
		return nil
	}

	switch {
	case isInt(v.Kind()) && isInt(field.Kind()):
		if field.OverflowInt(v.Int()) {
			return errors.Errorf("%d overflows %s", v.Int(), field.Type())
		}
		field.SetInt(v.Int())
	case isUint(v.Kind()) && isUint(field.Kind()):
		if field.OverflowUint(v.Uint()) {
			return errors.Errorf("%d overflows %s", v.Uint(), field.Type())
		}
		field.SetUint(v.Uint())
	case isUint(v.Kind()) && isInt(field.Kind()):
		if v.Uint() > math.MaxInt64 || field.OverflowInt(int64(v.Uint())) {
			return errors.Errorf("%d overflows %s", v.Uint(), field.Type())
		}
		field.SetInt(int64(v.Uint()))
	case isFloat(v.Kind()) && isFloat(field.Kind()):
		field.SetFloat(v.Float())
	case v.Kind() == reflect.String && field.Kind() == reflect.String:
		field.SetString(v.String())
	default:
		return errors.Errorf("cannot assign %s to %s", v.Type(), field.Type())
	}
	return nil
}

func isInt(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(kind reflect.Kind) bool {
	switch kind {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func isFloat(kind reflect.Kind) bool {
	return kind == reflect.Float32 || kind == reflect.Float64
}

func CreateUint16ReadFunction(reader *Reader) ReadFunction {
	return func() (any, error) {
		return reader.ReadUint16()
	}
}

func CreateInt16ReadFunction(reader *Reader) ReadFunction {
	return func() (any, error) {
		return reader.ReadInt16()
	}
}

func CreateUint32ReadFunction(reader *Reader) ReadFunction {
	return func() (any, error) {
		return reader.ReadUint32()
	}
}

func CreateInt32ReadFunction(reader *Reader) ReadFunction {
	return func() (any, error) {
		return reader.ReadInt32()
	}
}

func CreateFixedStringReadFunction(reader *Reader, n int) ReadFunction {
	return func() (any, error) {
		return reader.ReadFixedString(n)
	}
}

// CreateRawStringReadFunction reads n bytes as they are, padding included,
// for codes whose meaning depends on byte positions.
func CreateRawStringReadFunction(reader *Reader, n int) ReadFunction {
	return func() (any, error) {
		bs, err := reader.ReadBytes(n)
		if err != nil {
			return nil, err
		}
		return string(bs), nil
	}
}

func CreateStringReadFunction(reader *Reader) ReadFunction {
	return func() (any, error) {
		return reader.ReadZeroTerminatedString()
	}
}

// CreateScaledReadFunction yields raw × factor.
func CreateScaledReadFunction[T constraints.Integer](read func() (T, error), factor float64) ReadFunction {
	return func() (any, error) {
		raw, err := read()
		if err != nil {
			return nil, err
		}
		return float64(raw) * factor, nil
	}
}

// CreateDividedReadFunction yields raw ÷ divisor. It is kept apart from
// CreateScaledReadFunction since raw/10 and raw*0.1 are not the same float.
func CreateDividedReadFunction[T constraints.Integer](read func() (T, error), divisor float64) ReadFunction {
	return func() (any, error) {
		raw, err := read()
		if err != nil {
			return nil, err
		}
		return float64(raw) / divisor, nil
	}
}
