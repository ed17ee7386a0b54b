// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FlexInt decodes integers the upstream API sends either as JSON numbers or
// as quoted strings. Empty strings and null decode to zero.
// ErrFlexIntRange is returned when a numeric value is not integral or does
// not fit in int64.
var ErrFlexIntRange = errors.New("not an integer in int64 range")

type FlexInt int64

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	s, err := flexScalar(b)
	if err != nil {
		return err
	}
	if s == "" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		fv, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return fmt.Errorf("flex int %q: %w", s, err)
		}
		// 2^63 itself is out of range; -2^63 is exact.
		if fv != math.Trunc(fv) || fv < math.MinInt64 || fv >= math.MaxInt64 {
			return fmt.Errorf("flex int %q: %w", s, ErrFlexIntRange)
		}
		v = int64(fv)
	}
	*f = FlexInt(v)
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(f), 10)), nil
}

// FlexFloat is the float counterpart of [FlexInt]. A decimal comma is
// accepted as well.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	s, err := flexScalar(b)
	if err != nil {
		return err
	}
	if s == "" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return fmt.Errorf("flex float %q: %w", s, err)
	}
	*f = FlexFloat(v)
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(f), 'f', -1, 64)), nil
}

// FlexBool accepts true/false, 0/1 and "0"/"1".
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(b []byte) error {
	s, err := flexScalar(b)
	if err != nil {
		return err
	}
	switch strings.ToLower(s) {
	case "", "0", "false":
		*f = false
	case "1", "true":
		*f = true
	default:
		return fmt.Errorf("flex bool %q: unsupported value", s)
	}
	return nil
}

func (f FlexBool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}

// FlexString accepts strings and numbers, keeping the textual form.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	s, err := flexScalar(b)
	if err != nil {
		return err
	}
	*f = FlexString(s)
	return nil
}

func flexScalar(b []byte) (string, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return "", nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	}
	return string(b), nil
}
