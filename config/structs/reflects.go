package structs

import (
	"reflect"
	"strconv"
)

// BuildDefault 按 default 标签填充字段，嵌套结构体递归处理
func BuildDefault[T any](obj T) T {
	v := reflect.ValueOf(&obj).Elem()
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return obj
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		panic("BuildDefault: obj must be a struct or a pointer to a struct")
	}
	fillDefaults(v)
	return obj
}

func fillDefaults(v reflect.Value) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		fv := v.Field(i)
		if !fv.CanSet() {
			continue
		}
		switch fv.Kind() {
		case reflect.Struct:
			fillDefaults(fv)
			continue
		case reflect.Pointer:
			if fv.Type().Elem().Kind() == reflect.Struct {
				if fv.IsNil() {
					fv.Set(reflect.New(fv.Type().Elem()))
				}
				fillDefaults(fv.Elem())
			}
			continue
		}

		tag := t.Field(i).Tag.Get("default")
		if tag == "" {
			continue
		}
		if err := setValue(fv, tag); err != nil {
			panic(err)
		}
	}
}

func setValue(fv reflect.Value, tag string) error {
	switch fv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(tag, 10, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetInt(n)
	case reflect.String:
		fv.SetString(tag)
	case reflect.Bool:
		b, err := strconv.ParseBool(tag)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	}
	return nil
}
