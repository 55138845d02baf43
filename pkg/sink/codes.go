package sink

import "strings"

// RenderCodes renders the code list, one code per line in the given order.
func RenderCodes(codes []string) []byte {
	if len(codes) == 0 {
		return nil
	}
	return []byte(strings.Join(codes, "\n") + "\n")
}
