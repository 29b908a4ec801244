package frontmatter

import (
	"maps"
	"strings"

	"github.com/inful/mdfp"
)

// UIDField holds the stable identifier of a generated page.
const UIDField = "uid"

// FingerprintField is the header key the content fingerprint is stored under.
const FingerprintField = mdfp.FingerprintField

// Fingerprint hashes a page's fields and body. The fingerprint and uid fields
// are excluded so storing them does not change the result.
func Fingerprint(fields map[string]any, body []byte) (string, error) {
	hashed := maps.Clone(fields)
	delete(hashed, FingerprintField)
	delete(hashed, UIDField)

	header := ""
	if len(hashed) > 0 {
		serialized, err := SerializeYAML(hashed, "\n")
		if err != nil {
			return "", err
		}
		header = strings.TrimSuffix(string(serialized), "\n")
	}
	return mdfp.CalculateFingerprintFromParts(header, string(body)), nil
}
