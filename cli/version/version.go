// Package version reports create-app build version.
package version

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	goVersion "github.com/hashicorp/go-version"
)

const (
	unknownVersion  = "<unknown>"
	cliVersionTitle = "create-app"
)

// Get the value of this variables at build time.
// See magefile for more details.
var (
	gitTag       string
	gitCommit    string
	versionLabel string
)

// normalizeTag converts git tag like v1.2 to 1.2.0. Tags that are not versions
// are returned as is.
func normalizeTag(tag string) string {
	parsed, err := goVersion.NewVersion(tag)
	if err != nil {
		return tag
	}

	segments := parsed.Segments()
	numbers := make([]string, 0, len(segments))
	for _, num := range segments {
		numbers = append(numbers, strconv.Itoa(num))
	}
	return strings.Join(numbers, ".")
}

// GetVersion return string with create-app version info. Short form contains
// version only, commit hash is appended if needCommit is set.
func GetVersion(showShort bool, needCommit bool) string {
	version := unknownVersion
	if gitTag != "" {
		version = normalizeTag(gitTag)
		if versionLabel != "" {
			version = fmt.Sprintf("%s/%s", version, versionLabel)
		}
	}

	switch {
	case needCommit:
		return fmt.Sprintf("%s.%s", version, gitCommit)
	case showShort:
		return version
	}

	return fmt.Sprintf("%s version %s, %s/%s. commit: %s",
		cliVersionTitle, version, runtime.GOOS, runtime.GOARCH, gitCommit)
}
