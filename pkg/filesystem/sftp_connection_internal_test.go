package filesystem

import "testing"

func TestSFTPConnection_CloseWithNilClients(t *testing.T) {
	t.Parallel()

	conn := &SFTPConnection{}
	if err := conn.Close(); err != nil {
		t.Errorf("Close() with nil clients should succeed, got %v", err)
	}

	if conn.Client() != nil {
		t.Error("Client() should return nil when no session is open")
	}
}

func TestSFTPConnection_Addr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		host string
		port int
		want string
	}{
		{"example.com", 22, "joe@example.com:22"},
		{"::1", 2222, "joe@[::1]:2222"},
	}

	for _, tt := range tests {
		conn := &SFTPConnection{host: tt.host, port: tt.port, user: "joe"}
		if got := conn.Addr(); got != tt.want {
			t.Errorf("Addr() = %q, want %q", got, tt.want)
		}
	}
}
