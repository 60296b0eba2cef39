package transport

import (
	"context"
	"fmt"
	"path"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// SFTP uploads messages to a remote directory. A connection is dialed per
// send; message volume is interactive, not batch.
type SFTP struct {
	Addr      string // host:port
	Username  string
	Password  string
	RemoteDir string

	// HostKeyCallback defaults to ssh.InsecureIgnoreHostKey, matching the
	// demo setups this replaces. Production configs must pin the host key.
	HostKeyCallback ssh.HostKeyCallback
}

func NewSFTP(addr, username, password, remoteDir string) *SFTP {
	return &SFTP{Addr: addr, Username: username, Password: password, RemoteDir: remoteDir}
}

func (s *SFTP) Name() string { return "sftp" }

func (s *SFTP) Send(_ context.Context, filename string, payload []byte) error {
	hostKey := s.HostKeyCallback
	if hostKey == nil {
		hostKey = ssh.InsecureIgnoreHostKey()
	}
	conn, err := ssh.Dial("tcp", s.Addr, &ssh.ClientConfig{
		User:            s.Username,
		Auth:            []ssh.AuthMethod{ssh.Password(s.Password)},
		HostKeyCallback: hostKey,
	})
	if err != nil {
		return fmt.Errorf("sftp dial: %w", err)
	}
	defer conn.Close()

	client, err := sftp.NewClient(conn)
	if err != nil {
		return fmt.Errorf("sftp client: %w", err)
	}
	defer client.Close()

	remote := path.Join(s.RemoteDir, filename)
	f, err := client.Create(remote)
	if err != nil {
		return fmt.Errorf("sftp create %s: %w", remote, err)
	}
	defer f.Close()

	if _, err := f.Write(payload); err != nil {
		return fmt.Errorf("sftp write %s: %w", remote, err)
	}
	return nil
}
