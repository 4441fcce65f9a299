// Package server serves the chessgame TUI over SSH. Each connection gets the
// binary on its own pty and plays its own private game; connections share
// nothing.
package server

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"syscall"
	"time"
	"unsafe"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
)

const ServerIdleTimeout = 5 * time.Minute

// Server is an SSH server that spawns the TUI binary per session.
type Server struct {
	*ssh.Server
	cmdPath string
}

// New configures a server listening on addr that runs cmdPath for every
// session. hostKeyFile may be empty, in which case the SSH library generates
// an ephemeral host key.
func New(addr, cmdPath, hostKeyFile string) (*Server, error) {
	server := &Server{cmdPath: cmdPath}
	s := &ssh.Server{
		Addr:        addr,
		IdleTimeout: ServerIdleTimeout,
		Handler:     server.handle,
	}
	if hostKeyFile != "" {
		if err := s.SetOption(ssh.HostKeyFile(hostKeyFile)); err != nil {
			return nil, err
		}
	}
	server.Server = s
	return server, nil
}

func setWinsize(f *os.File, w, h int) {
	syscall.Syscall(syscall.SYS_IOCTL, f.Fd(), uintptr(syscall.TIOCSWINSZ),
		uintptr(unsafe.Pointer(&struct{ h, w, x, y uint16 }{uint16(h), uint16(w), 0, 0})))
}

func (s *Server) handle(sess ssh.Session) {
	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		io.WriteString(sess, "non-interactive terminals are not supported\n")
		sess.Exit(1)
		return
	}

	cmdCtx, cancelCmd := context.WithCancel(sess.Context())
	defer cancelCmd()

	cmd := exec.CommandContext(cmdCtx, s.cmdPath)
	cmd.Env = append(sess.Environ(), fmt.Sprintf("TERM=%s", ptyReq.Term))

	f, err := pty.Start(cmd)
	if err != nil {
		io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sess.Exit(1)
		return
	}
	defer f.Close()

	log.Printf("session started for %s", sess.User())

	go func() {
		for win := range winCh {
			setWinsize(f, win.Width, win.Height)
		}
	}()
	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	f.Close()
	cmd.Wait()
	log.Printf("session ended for %s", sess.User())
}
