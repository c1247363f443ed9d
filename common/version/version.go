package version

import (
	"bytes"
	"runtime"
	"strings"
	"text/template"

	"github.com/NilFoundation/ledger-gateway/common/check"
)

// Set with -ldflags "-X github.com/NilFoundation/ledger-gateway/common/version.gitTag=..."
var (
	gitTag      string
	gitCommit   string
	gitRevision string
)

const (
	unknownRevision = "0"
	unknownVersion  = "<unknown>"
)

var versionTmpl = template.Must(template.New("version").Parse(`{{ .Title }}
 Version:	{{ .Version }}
 OS/Arch: 	{{ .OS }}/{{ .Arch }}
 Git commit:	{{ .Commit }}
 Revision:	{{ .Revision }}`))

func BuildVersionString(appTitle string) string {
	ver := gitTag
	if ver == "" {
		ver = unknownVersion
	}

	parts := strings.SplitN(ver, "-", 2)
	check.PanicIfNot(len(parts) > 0)

	buf := new(bytes.Buffer)
	check.PanicIfErr(versionTmpl.Execute(buf, map[string]string{
		"Title":    appTitle,
		"Version":  parts[0],
		"OS":       runtime.GOOS,
		"Arch":     runtime.GOARCH,
		"Commit":   gitCommit,
		"Revision": GetGitRevision(),
	}))
	return buf.String()
}

func GetGitRevision() string {
	if gitRevision == "" {
		return unknownRevision
	}
	return gitRevision
}
