package unresolver

import (
	"net/url"
	"strings"

	"github.com/hailystevens/unresolver/vo"
)

var specialProtocols = map[string]bool{
	"mailto":     true,
	"tel":        true,
	"javascript": true,
	"data":       true,
}

// Classify decides how a raw reference target has to be resolved.
// Fragment and special protocol detection takes precedence, then anything
// with both a scheme and a host is external, the rest is a local path.
func Classify(rawURL string) vo.Category {
	if strings.HasPrefix(rawURL, "#") {
		return vo.CategoryFragment
	}
	u, errParse := url.Parse(rawURL)
	if errParse != nil {
		// unparseable targets get the local treatment, best effort
		return vo.CategoryLocal
	}
	if specialProtocols[strings.ToLower(u.Scheme)] {
		return vo.CategorySpecialProtocol
	}
	if u.Scheme != "" && u.Host != "" {
		return vo.CategoryExternal
	}
	return vo.CategoryLocal
}
