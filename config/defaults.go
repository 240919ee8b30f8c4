// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// SetFromDefaults sets the zero-valued fields of the given
// struct pointer from their `default:` struct field tag values.
func SetFromDefaults(cfg any) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("config.SetFromDefaults: expected pointer to struct, got %T", cfg)
	}
	v = v.Elem()
	typ := v.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		def, ok := f.Tag.Lookup("default")
		if !ok || !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		if !fv.IsZero() {
			continue
		}
		if err := setFromString(fv, def); err != nil {
			return fmt.Errorf("config.SetFromDefaults: field %s: %w", f.Name, err)
		}
	}
	return nil
}

func setFromString(fv reflect.Value, s string) error {
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 0, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetInt(n)
	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(s, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetFloat(n)
	case reflect.Slice:
		fields := strings.Fields(s)
		sl := reflect.MakeSlice(fv.Type(), len(fields), len(fields))
		for i, e := range fields {
			if err := setFromString(sl.Index(i), e); err != nil {
				return err
			}
		}
		fv.Set(sl)
	default:
		return fmt.Errorf("unsupported kind %v", fv.Kind())
	}
	return nil
}
