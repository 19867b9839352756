// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"

	"cogentcore.org/webgl/base/errors"
)

// SetFromDefaults sets the fields of the given config struct pointer
// from their `default:` struct tag values, recursing into struct
// fields. Errors are automatically logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return errors.Log(fmt.Errorf("config.SetFromDefaults: expected a pointer to a struct, not %T", cfg))
	}
	return errors.Log(setDefaults(v.Elem()))
}

func setDefaults(v reflect.Value) error {
	var errs []error
	typ := v.Type()
	for i := range typ.NumField() {
		sf := typ.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := v.Field(i)
		if sf.Type.Kind() == reflect.Struct {
			errs = append(errs, setDefaults(fv))
			continue
		}
		def, ok := sf.Tag.Lookup("default")
		if !ok {
			continue
		}
		if err := setString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("field %s: %w", sf.Name, err))
		}
	}
	return errors.Join(errs...)
}

func setString(v reflect.Value, s string) error {
	if tu, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
		return tu.UnmarshalText([]byte(s))
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	default:
		return fmt.Errorf("unsupported kind %v", v.Kind())
	}
	return nil
}
