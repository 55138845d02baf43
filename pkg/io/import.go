package io

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/qrlabels/pkg/codegen"
	"github.com/matzehuels/qrlabels/pkg/errors"
)

// ReadCodes reads a code list from r: one code per line, surrounding
// whitespace ignored, blank lines and lines starting with '#' skipped.
//
// Every code must be valid for codegen and appear only once; the list must
// not be empty. Codes are returned in file order.
func ReadCodes(r io.Reader) ([]string, error) {
	var codes []string
	seen := map[string]int{}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		code := strings.TrimSpace(scanner.Text())
		if code == "" || strings.HasPrefix(code, "#") {
			continue
		}
		if err := codegen.Validate(code); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "line %d", line)
		}
		if prev, dup := seen[code]; dup {
			return nil, errors.New(errors.ErrCodeInvalidInput, "line %d: code %s already listed on line %d", line, code, prev)
		}
		seen[code] = line
		codes = append(codes, code)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read codes")
	}
	if len(codes) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "code list is empty")
	}
	return codes, nil
}

// ImportCodes reads a code list file at path.
// This is a convenience wrapper around [ReadCodes] for file-based input.
func ImportCodes(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()

	codes, err := ReadCodes(f)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "import %s", path)
	}
	return codes, nil
}
