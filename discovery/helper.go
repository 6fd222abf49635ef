package discovery

import (
	"strings"
)

const (
	zeroconfServiceType = "_hostdeck._tcp"
	zeroconfDomain      = "local."
)

// convert the TXT records into a key value map, elements without a value are ignored
func parseTxt(txt []string) map[string]string {
	result := make(map[string]string)

	for _, element := range txt {
		key, value, found := strings.Cut(element, "=")
		if !found || len(key) == 0 {
			continue
		}
		result[key] = value
	}

	return result
}
