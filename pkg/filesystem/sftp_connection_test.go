//nolint:varnamelen // Test files use idiomatic short variable names (t, etc.)
package filesystem_test

import (
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/dir-insight/pkg/filesystem"
)

// TestConnect_UnresolvableHost verifies that a connection failure surfaces as an SSH error
// rather than a client configuration error.
func TestConnect_UnresolvableHost(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	conn, err := filesystem.Connect("nonexistent.invalid", filesystem.DefaultSFTPPort, "testuser")
	g.Expect(conn).To(BeNil())
	g.Expect(err).To(HaveOccurred())
	g.Expect(err.Error()).To(Or(
		ContainSubstring("SSH connection failed"),
		ContainSubstring("no SSH authentication methods available"),
	))
}

func TestCreateFileSystem_UnreachableHostNamesAddress(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, _, err := filesystem.CreateFileSystem("sftp://joe@nonexistent.invalid:2222/data")
	g.Expect(err).To(MatchError(ContainSubstring("joe@nonexistent.invalid:2222")))
}
