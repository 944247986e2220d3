package controller

import (
	"fmt"
	"net/url"
	"strconv"
)

const (
	defaultRecommendationsLimit = 20
	maxRecommendationsLimit     = 100
)

func parseLimit(q url.Values) (int, error) {
	limit := defaultRecommendationsLimit

	if q.Has("limit") {
		l, err := strconv.ParseInt(q.Get("limit"), 10, 32)
		if err != nil {
			return 0, fmt.Errorf("unable to parse limit from query: %w", err)
		}
		if l < 1 {
			return 0, fmt.Errorf("invalid limit value [%d]", l)
		}
		if l > maxRecommendationsLimit {
			return 0, fmt.Errorf("limit [%d] exceeds maximum [%d]", l, maxRecommendationsLimit)
		}
		limit = int(l)
	}

	return limit, nil
}
