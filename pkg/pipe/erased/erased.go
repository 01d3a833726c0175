package erased

import (
	"reflect"

	"github.com/corvid-agent/pipe/pkg/pipe"
)

// Stage is a type-erased unary stage.
type Stage = func(any) any

// Pipe threads value through stages left to right. With no stages the value
// comes back unchanged. There is no arity bound.
func Pipe(value any, stages ...Stage) any {
	result := value
	for _, stage := range stages {
		result = stage(result)
	}
	return result
}

// Compose returns a function applying stages right to left: the stage
// passed last runs first.
func Compose(stages ...Stage) Stage {
	return func(value any) any {
		result := value
		for i := len(stages) - 1; i >= 0; i-- {
			result = stages[i](result)
		}
		return result
	}
}

// Flow returns a reusable function applying stages left to right.
// Flow(stages...)(v) is identical to Pipe(v, stages...).
func Flow(stages ...Stage) Stage {
	return func(value any) any {
		return Pipe(value, stages...)
	}
}

// Field returns a stage projecting a named struct field or string map key
// out of its input by reflection. Missing fields or keys, nil inputs and
// unsupported kinds all yield nil. Pointers are followed to their element.
func Field(name string) Stage {
	return func(in any) any {
		if pipe.IsNil(in) {
			return nil
		}

		v := reflect.ValueOf(in)
		for v.Kind() == reflect.Ptr {
			if v.IsNil() {
				return nil
			}
			v = v.Elem()
		}

		switch v.Kind() {
		case reflect.Struct:
			f := v.FieldByName(name)
			if !f.IsValid() || !f.CanInterface() {
				return nil
			}
			return f.Interface()
		case reflect.Map:
			if v.Type().Key().Kind() != reflect.String {
				return nil
			}
			e := v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
			if !e.IsValid() {
				return nil
			}
			return e.Interface()
		default:
			return nil
		}
	}
}
