package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"ulascansenturk/weather-forecast-api/internal/forecast"
)

type APIVersion string

const (
	V1 APIVersion = "1.0"
	V2 APIVersion = "2.0"

	VersionParam  = "api-version"
	VersionHeader = "api-version"

	SupportedVersionsHeader = "api-supported-versions"
)

var (
	ErrUnsupportedVersion = errors.New("unsupported api version")
	ErrAmbiguousVersion   = errors.New("ambiguous api version")
)

// projections is the single dispatch table; a version absent from it is
// unsupported.
var projections = map[APIVersion]func([]forecast.Record) interface{}{
	V1: func(records []forecast.Record) interface{} { return ToV1(records) },
	V2: func(records []forecast.Record) interface{} { return ToV2(records) },
}

var supportedVersions = strings.Join([]string{string(V1), string(V2)}, ", ")

// ParseVersion accepts both the short ("2") and the major.minor ("2.0") forms.
func ParseVersion(raw string) (APIVersion, error) {
	v := strings.TrimSpace(raw)
	if !strings.Contains(v, ".") {
		v += ".0"
	}

	version := APIVersion(v)
	if _, ok := projections[version]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedVersion, raw)
	}
	return version, nil
}

// resolveVersion reads every api-version value from the query string and
// headers. Any number may be given as long as they all name the same version.
func resolveVersion(r *http.Request, fallback APIVersion) (APIVersion, error) {
	var values []string
	values = append(values, r.URL.Query()[VersionParam]...)
	values = append(values, r.Header.Values(VersionHeader)...)

	var resolved APIVersion
	var first string
	for _, raw := range values {
		if raw == "" {
			continue
		}

		version, err := ParseVersion(raw)
		if err != nil {
			return "", err
		}
		if resolved != "" && version != resolved {
			return "", fmt.Errorf("%w: %q and %q", ErrAmbiguousVersion, first, raw)
		}
		if resolved == "" {
			resolved, first = version, raw
		}
	}

	if resolved == "" {
		return fallback, nil
	}
	return resolved, nil
}
