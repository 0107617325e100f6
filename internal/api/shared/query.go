package shared

import (
	"log/slog"
	"net/url"
	"strconv"
)

// Pagination bounds shared by the list and search query processors.
const (
	// DefaultTake is the page size used when the client supplies none, or
	// when the list query fails re-validation.
	DefaultTake = 10

	// MaxTake caps the page size.
	MaxTake = 100

	// maxSkip bounds the derived offset during re-validation; anything
	// beyond it means a nonsensical page value and degrades to defaults.
	maxSkip = 10_000_000

	// maxFilterLen bounds each text-filter value during re-validation.
	maxFilterLen = 255
)

// PageParams is a normalized pagination window. Both fields are always
// well-formed by the time a processor returns them.
type PageParams struct {
	Skip int
	Take int
}

// listQuery is the re-validation shape for a processed list query. It
// checks the derived window and the collected filter values against
// stricter bounds than the lenient first parse.
type listQuery struct {
	Skip    int               `validate:"gte=0,lte=10000000"`
	Take    int               `validate:"gte=1,lte=100"`
	Filters map[string]string `validate:"dive,max=255"`
}

// ParseListQuery converts the raw list-query values into a pagination
// window plus the present filter values for the given keys.
//
// limit is honored when it parses as an integer in [1, MaxTake] and falls
// back to DefaultTake otherwise; page shifts the window only when it
// parses as a positive integer. The derived result is then re-validated;
// on failure the whole query degrades to the default window with all
// filters dropped. This function never fails the request.
func ParseListQuery(
	values url.Values,
	filterKeys []string,
	logger *slog.Logger,
) (PageParams, map[string]string) {
	take := DefaultTake
	if raw := values.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= MaxTake {
			take = n
		}
	}

	skip := 0
	if raw := values.Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			skip = (n - 1) * take
		}
	}

	filters := make(map[string]string)
	for _, key := range filterKeys {
		if v := values.Get(key); v != "" {
			filters[key] = v
		}
	}

	if err := Validate.Struct(listQuery{Skip: skip, Take: take, Filters: filters}); err != nil {
		logger.Warn("list query failed re-validation, using defaults",
			"skip", skip,
			"take", take,
			"error", err)
		return PageParams{Skip: 0, Take: DefaultTake}, nil
	}

	return PageParams{Skip: skip, Take: take}, filters
}

// ParseSearchPage converts the raw search-query pagination values into a
// window. Unlike the list processor, an out-of-range limit is clamped to
// the nearest bound rather than reset to the default, and page is clamped
// to 1 so the offset can never go negative.
func ParseSearchPage(values url.Values) PageParams {
	take := DefaultTake
	if raw := values.Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			take = n
		}
	}
	if take < 1 {
		take = 1
	}
	if take > MaxTake {
		take = MaxTake
	}

	page := 1
	if raw := values.Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			page = n
		}
	}
	if page < 1 {
		page = 1
	}

	return PageParams{Skip: (page - 1) * take, Take: take}
}
