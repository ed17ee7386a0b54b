// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Response is the outer object of every upstream answer.
type Response struct {
	Operation    string          `json:"qType"`
	APIVersion   version         `json:"APIVersion"`
	Result       json.RawMessage `json:"result"`
	Error        json.RawMessage `json:"error,omitempty"`
	ErrorMessage string          `json:"errorMessage,omitempty"`
}

// version tolerates APIVersion being sent as a string or a number.
type version string

func (v *version) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*v = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = version(s)
		return nil
	}
	*v = version(b)
	return nil
}

// Validate parses raw, confirms that it echoes operation and expectedVersion
// and returns the nested result object byte-for-byte.
//
// Any parse failure or echo mismatch yields a [*ContractError]. A response
// carrying an error indicator yields an [*APIError].
func Validate(raw []byte, operation, expectedVersion string) ([]byte, error) {
	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &ContractError{Operation: operation, Reason: fmt.Sprintf("parse: %v", err), Raw: raw}
	}

	if resp.Operation != operation {
		return nil, &ContractError{
			Operation: operation,
			Reason:    fmt.Sprintf("qType echo %q does not match", resp.Operation),
			Raw:       raw,
		}
	}
	if string(resp.APIVersion) != expectedVersion {
		return nil, &ContractError{
			Operation: operation,
			Reason:    fmt.Sprintf("APIVersion %q, expected %q", resp.APIVersion, expectedVersion),
			Raw:       raw,
		}
	}

	if msg := errorIndicator(resp); msg != "" {
		return nil, &APIError{Operation: operation, Message: msg}
	}

	if len(resp.Result) == 0 || bytes.Equal(bytes.TrimSpace(resp.Result), []byte("null")) {
		return nil, &ContractError{Operation: operation, Reason: "missing result", Raw: raw}
	}

	return resp.Result, nil
}

func errorIndicator(resp Response) string {
	if resp.ErrorMessage != "" {
		return resp.ErrorMessage
	}

	e := bytes.TrimSpace(resp.Error)
	if len(e) == 0 || bytes.Equal(e, []byte("null")) || bytes.Equal(e, []byte("false")) ||
		bytes.Equal(e, []byte("0")) || bytes.Equal(e, []byte(`""`)) {
		return ""
	}

	var s string
	if err := json.Unmarshal(e, &s); err == nil {
		return strings.TrimSpace(s)
	}
	return string(e)
}
