// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envelope

import (
	"time"

	"github.com/MKhiriev/go-myweblog/models"
)

// Wire names of the protocol fields carried by every request.
const (
	FieldOperation  = "qtype"
	FieldUsername   = "mwl_u"
	FieldPassword   = "mwl_p"
	FieldReturnType = "returnType"
	FieldCharset    = "charset"
	FieldAppToken   = "app_token"
	FieldLanguage   = "language"
)

const (
	ReturnTypeJSON = "JSON"
	CharsetUTF8    = "UTF-8"
	DefaultLocale  = "se"
)

var protocolFields = map[string]struct{}{
	FieldOperation:  {},
	FieldUsername:   {},
	FieldPassword:   {},
	FieldReturnType: {},
	FieldCharset:    {},
	FieldAppToken:   {},
	FieldLanguage:   {},
}

// IsProtocolField reports whether key is reserved for the envelope itself.
func IsProtocolField(key string) bool {
	_, ok := protocolFields[key]
	return ok
}

// Fields holds the operation-specific part of a request. Values keep their
// JSON type: integers and 0/1 flags are numbers, dates and text are
// strings. Setters return the receiver so calls can be chained.
type Fields map[string]any

func (f Fields) Str(key, value string) Fields {
	f[key] = value
	return f
}

func (f Fields) Int(key string, value int64) Fields {
	f[key] = value
	return f
}

// Bool encodes value as the integer 0 or 1.
func (f Fields) Bool(key string, value bool) Fields {
	if value {
		f[key] = int64(1)
	} else {
		f[key] = int64(0)
	}
	return f
}

// Date encodes value as yyyy-mm-dd.
func (f Fields) Date(key string, value time.Time) Fields {
	f[key] = value.Format(models.DateLayout)
	return f
}

// OptionalDate sets key only when value is non-nil.
func (f Fields) OptionalDate(key string, value *time.Time) Fields {
	if value != nil {
		f.Date(key, *value)
	}
	return f
}

// OptionalString sets key only when value is non-empty.
func (f Fields) OptionalString(key, value string) Fields {
	if value != "" {
		f[key] = value
	}
	return f
}

// OptionalInt sets key only when value is non-nil.
func (f Fields) OptionalInt(key string, value *int64) Fields {
	if value != nil {
		f.Int(key, *value)
	}
	return f
}

// Request is one fully-formed upstream request. It is never reused across
// operations.
type Request struct {
	Operation   string
	Credentials models.Credentials
	Token       models.AppToken
	ReturnType  string
	Charset     string
	Locale      string
	Fields      Fields
}

// Payload flattens the request into the JSON body. Protocol fields are
// written last so operation fields can never shadow them.
func (r Request) Payload() map[string]any {
	payload := make(map[string]any, len(r.Fields)+len(protocolFields))
	for k, v := range r.Fields {
		payload[k] = v
	}

	payload[FieldOperation] = r.Operation
	payload[FieldUsername] = r.Credentials.Username
	payload[FieldPassword] = r.Credentials.Password
	payload[FieldReturnType] = r.ReturnType
	payload[FieldCharset] = r.Charset
	payload[FieldAppToken] = r.Token.Value
	payload[FieldLanguage] = r.Locale

	return payload
}

// Codec builds requests for one session's credentials and locale.
type Codec struct {
	credentials models.Credentials
	locale      string
	version     string
}

// NewCodec returns a codec for the given credentials. An empty locale falls
// back to [DefaultLocale]. version is the API version responses must echo.
func NewCodec(credentials models.Credentials, locale, version string) *Codec {
	if locale == "" {
		locale = DefaultLocale
	}
	return &Codec{credentials: credentials, locale: locale, version: version}
}

// Version returns the API version responses are validated against.
func (c *Codec) Version() string {
	return c.version
}

// Build merges the fixed protocol fields with fields for operation. fields
// is copied; the caller's map is left untouched.
func (c *Codec) Build(operation string, token models.AppToken, fields Fields) Request {
	own := make(Fields, len(fields))
	for k, v := range fields {
		if IsProtocolField(k) {
			continue
		}
		own[k] = v
	}

	return Request{
		Operation:   operation,
		Credentials: c.credentials,
		Token:       token,
		ReturnType:  ReturnTypeJSON,
		Charset:     CharsetUTF8,
		Locale:      c.locale,
		Fields:      own,
	}
}

// Validate checks raw against operation and the codec's version.
func (c *Codec) Validate(raw []byte, operation string) ([]byte, error) {
	return Validate(raw, operation, c.version)
}
