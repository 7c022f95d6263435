package jsonpointer

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type partType string

const (
	partTypeKey   partType = "key"
	partTypeIndex partType = "index"
)

type navigationPart struct {
	Type  partType
	Value string
}

func (n navigationPart) unescapeValue() string {
	val := strings.ReplaceAll(n.Value, "~1", "/")
	val = strings.ReplaceAll(val, "~0", "~")
	return val
}

func (n navigationPart) getIndex() int {
	index, _ := strconv.Atoi(n.Value)
	return index
}

var tokenRegex = regexp.MustCompile("^(?:[\x00-\x2E\x30-\x7D\x7F-\uffff]|~[01])+$")

// isIndexToken reports whether part is an array index as per RFC6901: digits without a leading zero.
func isIndexToken(part string) bool {
	if part == "" || (len(part) > 1 && part[0] == '0') {
		return false
	}
	for i := 0; i < len(part); i++ {
		if part[i] < '0' || part[i] > '9' {
			return false
		}
	}
	return true
}

func (j JSONPointer) getNavigationStack() ([]navigationPart, error) {
	if len(j) == 0 {
		return nil, errors.New("jsonpointer must not be empty")
	}

	if j == Root {
		return nil, nil
	}

	if !strings.HasPrefix(string(j), "/") {
		return nil, fmt.Errorf("jsonpointer must start with /: %s", string(j))
	}

	strParts := strings.Split(strings.TrimPrefix(string(j), "/"), "/")
	stack := make([]navigationPart, 0, len(strParts))

	for _, part := range strParts {
		if len(part) == 0 {
			return nil, fmt.Errorf("jsonpointer part must not be empty: %s", string(j))
		}

		if !tokenRegex.MatchString(part) {
			return nil, fmt.Errorf("jsonpointer part must be a valid token [%s]: %s", tokenRegex.String(), string(j))
		}

		typ := partTypeKey
		if isIndexToken(part) {
			typ = partTypeIndex
		}
		stack = append(stack, navigationPart{Type: typ, Value: part})
	}

	return stack, nil
}
