package filesystem

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ParsedPath is an analysis root: a local directory, or a directory on an SFTP server.
type ParsedPath struct {
	IsRemote  bool
	LocalPath string // set when !IsRemote

	Host string
	Port int
	User string
	Path string // remote root as passed to the SFTP client
}

// ParsePath classifies an analysis root as a local path or an sftp://user@host[:port]/path URL.
// The port defaults to 22. The remote path follows the usual sftp convention:
//   - sftp://joe@myserver.com/data    → "data", relative to the login directory
//   - sftp://joe@myserver.com//srv/x  → "/srv/x", absolute
//   - sftp://joe@myserver.com         → ".", the login directory itself
//
// Anything else is a local path and is returned untouched.
func ParsePath(path string) (*ParsedPath, error) {
	if !strings.HasPrefix(path, "sftp://") {
		return &ParsedPath{LocalPath: path}, nil
	}

	return parseSFTPURL(path)
}

// parseSFTPURL splits an sftp URL into connection parameters and a remote root. Roots are
// echoed into every reported path, so URLs carrying a password, a query or a fragment are
// refused rather than silently trimmed.
//
//nolint:cyclop // One check per URL component
func parseSFTPURL(sftpURL string) (*ParsedPath, error) {
	u, err := url.Parse(sftpURL) //nolint:varnamelen // u is idiomatic for URL
	if err != nil {
		return nil, fmt.Errorf("invalid SFTP URL: %w", err)
	}

	if u.User == nil || u.User.Username() == "" {
		return nil, fmt.Errorf("SFTP URL must include username (sftp://user@host/path)") //nolint:err113,perfsprint,lll // URL validation with format guidance
	}

	if _, hasPassword := u.User.Password(); hasPassword {
		return nil, fmt.Errorf("SFTP URL must not contain a password; use ssh-agent or a key in ~/.ssh") //nolint:err113,perfsprint,lll // URL validation with guidance
	}

	if u.Hostname() == "" {
		return nil, fmt.Errorf("SFTP URL must include host") //nolint:err113,perfsprint // URL validation error
	}

	if u.RawQuery != "" || u.Fragment != "" {
		return nil, fmt.Errorf("SFTP URL must not have a query or fragment: %s", sftpURL) //nolint:err113 // URL validation error
	}

	port := DefaultSFTPPort

	if portStr := u.Port(); portStr != "" {
		port, err = strconv.Atoi(portStr)
		if err != nil || port < 1 || port > maxPort {
			return nil, fmt.Errorf("invalid port number: %q", portStr) //nolint:err113 // URL validation error
		}
	}

	var remotePath string

	switch {
	case u.Path == "" || u.Path == "/":
		remotePath = "."
	case strings.HasPrefix(u.Path, "//"):
		remotePath = u.Path[1:]
	default:
		remotePath = strings.TrimPrefix(u.Path, "/")
	}

	return &ParsedPath{
		IsRemote: true,
		Host:     u.Hostname(),
		Port:     port,
		User:     u.User.Username(),
		Path:     remotePath,
	}, nil
}

const maxPort = 65535
