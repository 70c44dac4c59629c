package fabrikate

import (
	"reflect"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ErrUnsupportedType is returned when a type has no registered fabricator and cannot be
// built from its parts: channels, functions, unsafe pointers and interfaces other than any.
var ErrUnsupportedType = errors.New("unsupported type")

func unsupported(t reflect.Type) error {
	return errors.Wrapf(ErrUnsupportedType, "%v", t)
}

// mapKeyAttempts bounds key draws per map entry.
const mapKeyAttempts = 10

// tagName is the struct tag read on fields; `fabrikate:"-"` leaves a field at its zero value.
const tagName = "fabrikate"

var (
	int64Type   = typeOf[int64]()
	uint64Type  = typeOf[uint64]()
	float32Type = typeOf[float32]()
	float64Type = typeOf[float64]()
)

// Value returns a random value of type t.
func (f *Fabrikate) Value(t reflect.Type) (reflect.Value, error) {
	return f.value(t, 0)
}

func (f *Fabrikate) value(t reflect.Type, depth int) (reflect.Value, error) {
	if e, ok := f.entries[t]; ok {
		return e.produce(), nil
	}

	out := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.Bool, reflect.String:
		// named bool and string types convert from the registered base type
		v, err := f.value(basicType(t.Kind()), depth)
		if err != nil {
			return out, err
		}
		out.Set(v.Convert(t))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := f.value(int64Type, depth)
		if err != nil {
			return out, err
		}
		out.SetInt(v.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v, err := f.value(uint64Type, depth)
		if err != nil {
			return out, err
		}
		out.SetUint(v.Uint())

	case reflect.Float32:
		v, err := f.value(float32Type, depth)
		if err != nil {
			return out, err
		}
		out.SetFloat(v.Float())

	case reflect.Float64:
		v, err := f.value(float64Type, depth)
		if err != nil {
			return out, err
		}
		out.SetFloat(v.Float())

	case reflect.Complex64, reflect.Complex128:
		re, err := f.value(float64Type, depth)
		if err != nil {
			return out, err
		}
		im, err := f.value(float64Type, depth)
		if err != nil {
			return out, err
		}
		out.SetComplex(complex(re.Float(), im.Float()))

	case reflect.Pointer:
		if depth >= f.config.MaxDepth {
			return out, nil
		}
		v, err := f.value(t.Elem(), depth+1)
		if err != nil {
			return out, err
		}
		p := reflect.New(t.Elem())
		p.Elem().Set(v)
		out.Set(p)

	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() || field.Tag.Get(tagName) == "-" {
				continue
			}
			v, err := f.value(field.Type, depth)
			if err != nil {
				return out, errors.Wrapf(err, "%v.%v", t, field.Name)
			}
			out.Field(i).Set(v)
		}

	case reflect.Array:
		for i := 0; i < t.Len(); i++ {
			v, err := f.value(t.Elem(), depth)
			if err != nil {
				return out, err
			}
			out.Index(i).Set(v)
		}

	case reflect.Slice:
		if depth >= f.config.MaxDepth {
			return out, nil
		}
		n := f.collectionSize()
		s := reflect.MakeSlice(t, n, n)
		for i := 0; i < n; i++ {
			v, err := f.value(t.Elem(), depth+1)
			if err != nil {
				return out, err
			}
			s.Index(i).Set(v)
		}
		out.Set(s)

	case reflect.Map:
		if depth >= f.config.MaxDepth {
			return out, nil
		}
		n := f.collectionSize()
		m := reflect.MakeMapWithSize(t, n)
		// colliding keys are redrawn, up to a bound for key types with few values
		for attempts := 0; m.Len() < n && attempts < n*mapKeyAttempts; attempts++ {
			k, err := f.value(t.Key(), depth+1)
			if err != nil {
				return out, err
			}
			if m.MapIndex(k).IsValid() {
				continue
			}
			v, err := f.value(t.Elem(), depth+1)
			if err != nil {
				return out, err
			}
			m.SetMapIndex(k, v)
		}
		out.Set(m)

	default:
		f.logger.Debug("no fabricator registered", zap.Stringer("type", t))
		return out, unsupported(t)
	}
	return out, nil
}

func (f *Fabrikate) collectionSize() int {
	return int(f.src.Range(int64(f.config.CollectionMin), int64(f.config.CollectionMax)+1))
}

func basicType(kind reflect.Kind) reflect.Type {
	if kind == reflect.Bool {
		return typeOf[bool]()
	}
	return typeOf[string]()
}
