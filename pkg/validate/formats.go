package validate

import (
	"net/url"
	"regexp"
	"sync"
	"time"
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{8}|[0-9a-fA-F]{3})$`)

func isURL(text string) bool {
	parsed, err := url.Parse(text)
	if err != nil {
		return false
	}
	return parsed.Scheme != "" && parsed.Host != ""
}

func isDateTime(text string) bool {
	_, err := time.Parse(time.RFC3339, text)
	return err == nil
}

func isHexColor(text string) bool {
	return hexColorPattern.MatchString(text)
}

var patternCache sync.Map

func compiledPattern(source string) (*regexp.Regexp, error) {
	if cached, ok := patternCache.Load(source); ok {
		return cached.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(source)
	if err != nil {
		return nil, err
	}
	patternCache.Store(source, re)
	return re, nil
}
