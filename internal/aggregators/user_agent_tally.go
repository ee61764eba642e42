package aggregators

import (
	"sort"

	"access-log-analyzer/internal/models"

	"github.com/mileusna/useragent"
)

// UserAgentTally counts requests per user-agent family.
type UserAgentTally interface {
	Add(userAgent string)
	// Top returns at most n families ordered by request count, highest first.
	// Ties are broken by name. n <= 0 returns nil.
	Top(n int) []models.UserAgentCount
}

type userAgentTally struct {
	counts map[string]int64
}

func NewUserAgentTally() UserAgentTally {
	return &userAgentTally{counts: make(map[string]int64)}
}

func (t *userAgentTally) Add(userAgent string) {
	t.counts[normalizeUserAgent(userAgent)]++
}

func (t *userAgentTally) Top(n int) []models.UserAgentCount {
	if n <= 0 || len(t.counts) == 0 {
		return nil
	}

	all := make([]models.UserAgentCount, 0, len(t.counts))
	for name, requests := range t.counts {
		all = append(all, models.UserAgentCount{Name: name, Requests: requests})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Requests != all[j].Requests {
			return all[i].Requests > all[j].Requests
		}
		return all[i].Name < all[j].Name
	})

	if len(all) > n {
		all = all[:n]
	}
	return all
}

// normalizeUserAgent parses user agent to extract family, or returns original if parsing fails.
func normalizeUserAgent(ua string) string {
	parsed := useragent.Parse(ua)
	if parsed.Name != "" {
		return parsed.Name
	}

	return ua
}
