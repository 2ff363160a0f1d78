package server

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"git.appkode.ru/pub/go/failure"

	"djtracker/internal/domain/service/score"
	"djtracker/internal/domain/value"
	"djtracker/pkg/errcodes"
)

const checkCookieMaxAge = 365 * 24 * 60 * 60

var eventAnchor = regexp.MustCompile(`^event-\d+$`) //nolint:gochecknoglobals

// playMode reads a SP/DP query parameter. DP is the default.
func playMode(r *http.Request, param string, code failure.ErrorCode) (value.PlayMode, error) {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		return value.PlayModeDP, nil
	}

	mode, err := value.ParsePlayMode(raw)
	if err != nil {
		return "", failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParsePlayMode: %w", err),
			failure.WithCode(code),
			failure.WithDescription(param+" must be SP or DP"),
		)
	}

	return mode, nil
}

// level returns score.DefaultLevel when the parameter is absent and "" (all
// levels) when it is present but empty or "all".
func level(r *http.Request) (string, error) {
	query := r.URL.Query()
	if !query.Has("level") {
		return score.DefaultLevel, nil
	}

	raw := strings.TrimSpace(query.Get("level"))
	if raw == "" || strings.EqualFold(raw, "all") {
		return "", nil
	}

	if n, err := strconv.Atoi(raw); err != nil || n <= 0 {
		return "", failure.NewInvalidArgumentError(
			"level must be a positive number",
			failure.WithCode(errcodes.InvalidLevel),
			failure.WithDescription("level must be a positive number"),
		)
	}

	return raw, nil
}

func intervalMs(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("interval")
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("strconv.Atoi: %w", err),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("interval must be a number of milliseconds"),
		)
	}

	return n, nil
}

func eventID(id string) (string, error) {
	if !eventAnchor.MatchString(id) {
		return "", failure.NewInvalidArgumentError(
			"invalid event id "+strconv.Quote(id),
			failure.WithCode(errcodes.InvalidEventID),
			failure.WithDescription("event id must look like event-<n>"),
		)
	}

	return id, nil
}

// checkedCookies reports the stored checkbox state of an event anchor.
func checkedCookies(r *http.Request) func(anchor string) bool {
	return func(anchor string) bool {
		c, err := r.Cookie(anchor)

		return err == nil && c.Value == "true"
	}
}

func checkCookie(anchor string, checked bool) *http.Cookie {
	return &http.Cookie{
		Name:     anchor,
		Value:    strconv.FormatBool(checked),
		Path:     "/",
		MaxAge:   checkCookieMaxAge,
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	}
}

// exportFilters collects every query parameter except type as a column filter.
func exportFilters(r *http.Request) map[string]string {
	filters := make(map[string]string)

	for column, values := range r.URL.Query() {
		if column == "type" || len(values) == 0 || values[0] == "" {
			continue
		}

		filters[column] = values[0]
	}

	return filters
}
