// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"strings"

	"github.com/MKhiriev/go-myweblog/models"
)

// removalOK is the success marker of deleteBooking and cutBooking.
const removalOK = "OK"

// createResult is the loose shape of a createBooking result object. An
// absent field and an empty one are the same.
type createResult struct {
	InfoMessageTitle string `json:"infoMessageTitle"`
	InfoMessage      string `json:"infoMessage"`
	ErrorMessage     string `json:"errorMessage"`
}

// interpretCreateResult treats a non-empty info title or message as success
// and a non-empty errorMessage as failure. Anything else, including a result
// that is not an object, is ambiguous.
func interpretCreateResult(result json.RawMessage) models.MutationResult {
	res := models.MutationResult{Kind: models.MutationAmbiguous, Raw: result}

	var body createResult
	if err := json.Unmarshal(result, &body); err != nil {
		return res
	}

	switch {
	case body.InfoMessageTitle != "" || body.InfoMessage != "":
		res.Kind = models.MutationSuccess
		res.Title = body.InfoMessageTitle
		res.Message = body.InfoMessage
	case body.ErrorMessage != "":
		res.Kind = models.MutationFailure
		res.Message = body.ErrorMessage
	}

	return res
}

type removalResult struct {
	Result       string `json:"Result"`
	ErrorMessage string `json:"errorMessage"`
}

// interpretRemovalResult treats Result == "OK" as success. A non-empty
// errorMessage is a failure; any other shape is ambiguous.
func interpretRemovalResult(result json.RawMessage) models.MutationResult {
	res := models.MutationResult{Kind: models.MutationAmbiguous, Raw: result}

	var body removalResult
	if err := json.Unmarshal(result, &body); err != nil {
		return res
	}

	switch {
	case strings.TrimSpace(body.Result) == removalOK:
		res.Kind = models.MutationSuccess
		res.Message = removalOK
	case body.ErrorMessage != "":
		res.Kind = models.MutationFailure
		res.Message = body.ErrorMessage
	}

	return res
}
