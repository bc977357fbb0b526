package status

import "strings"

func isValidReference(reference string) bool {
	return strings.TrimSpace(reference) != ""
}
