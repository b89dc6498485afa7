package pptx2pdf

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/alnah/go-pptx2pdf/internal/process"
)

// Engine launch defaults. The control endpoint is a fixed local
// address: two engine instances cannot listen on it at the same time,
// which is why any stale instance is killed before a new launch.
const (
	defaultEngineBinary = "soffice"
	defaultEnginePort   = 2002
	engineHost          = "127.0.0.1"

	// staleSettleDelay gives the OS time to release the port after a
	// stale instance is killed.
	staleSettleDelay = 1 * time.Second

	// defaultStopTimeout bounds the graceful shutdown wait before the
	// process group is force-killed.
	defaultStopTimeout = 5 * time.Second
)

// EngineSession is a running headless engine process. It is created by
// Supervisor.Start, owned by a single conversion run, and must be
// passed to Supervisor.Stop on every exit path.
type EngineSession struct {
	Addr string // control endpoint, host:port

	cmd        *exec.Cmd
	profileDir string
	stopped    bool
}

// Running reports whether the session still owns a live process.
func (s *EngineSession) Running() bool {
	return s != nil && s.cmd != nil && !s.stopped
}

// Supervisor launches, verifies, and tears down the headless engine
// process.
type Supervisor struct {
	binary      string
	port        int
	stopTimeout time.Duration
	resolver    *Resolver
	logf        func(format string, args ...any)
}

// NewSupervisor creates a Supervisor for the given engine binary and
// control port.
func NewSupervisor(binary string, port int, resolver *Resolver, logf func(string, ...any)) *Supervisor {
	if binary == "" {
		binary = defaultEngineBinary
	}
	if port == 0 {
		port = defaultEnginePort
	}
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Supervisor{
		binary:      binary,
		port:        port,
		stopTimeout: defaultStopTimeout,
		resolver:    resolver,
		logf:        logf,
	}
}

// signature returns the command-line substrings identifying an engine
// instance bound to this supervisor's control port.
func (s *Supervisor) signature() []string {
	return []string{filepath.Base(s.binary), fmt.Sprintf("port=%d", s.port)}
}

// Start launches the engine in headless mode with its socket control
// endpoint and waits until the endpoint accepts connections.
//
// Any prior instance matching the engine signature is force-killed
// first: the control port is fixed, so a leftover process from a
// crashed run would otherwise shadow the new session.
func (s *Supervisor) Start(ctx context.Context) (*EngineSession, error) {
	if killed, err := process.KillMatching(s.signature()...); err == nil && killed > 0 {
		s.logf("killed %d stale engine process(es)", killed)
		time.Sleep(staleSettleDelay)
	}

	profileDir, err := os.MkdirTemp("", "pptx2pdf-profile-*")
	if err != nil {
		return nil, fmt.Errorf("%w: creating profile dir: %v", ErrEngineStart, err)
	}

	addr := fmt.Sprintf("%s:%d", engineHost, s.port)
	args := []string{
		"--headless",
		"--invisible",
		"--nodefault",
		"--nologo",
		"--norestore",
		fmt.Sprintf("--accept=socket,host=%s,port=%d;urp;", engineHost, s.port),
		fmt.Sprintf("-env:UserInstallation=file://%s", profileDir),
	}

	cmd := exec.Command(s.binary, args...)
	cmd.SysProcAttr = sysProcAttr()
	if err := cmd.Start(); err != nil {
		_ = os.RemoveAll(profileDir)
		return nil, fmt.Errorf("%w: %v", ErrEngineStart, err)
	}

	session := &EngineSession{
		Addr:       addr,
		cmd:        cmd,
		profileDir: profileDir,
	}
	s.logf("engine started (pid %d), probing %s", cmd.Process.Pid, addr)

	// Readiness: probe the control endpoint instead of sleeping a fixed
	// warm-up interval. Reuses the resolver's bounded retry.
	if err := s.resolver.Probe(ctx, addr); err != nil {
		_ = s.Stop(session)
		return nil, err
	}
	return session, nil
}

// Stop terminates the session's engine process: graceful termination
// with a bounded wait, escalating to a force kill of the process group
// if the wait expires. It must be called on every code path that
// obtained a session, and is safe to call more than once.
func (s *Supervisor) Stop(session *EngineSession) error {
	if session == nil || session.stopped {
		return nil
	}
	session.stopped = true
	defer func() {
		if session.profileDir != "" {
			_ = os.RemoveAll(session.profileDir)
		}
	}()

	if session.cmd == nil || session.cmd.Process == nil {
		return nil
	}
	pid := session.cmd.Process.Pid

	done := make(chan error, 1)
	go func() { done <- session.cmd.Wait() }()

	if err := terminate(session.cmd.Process); err != nil {
		// Graceful signal unsupported or process already gone.
		process.KillProcessGroup(pid)
	}

	select {
	case <-done:
		s.logf("engine stopped (pid %d)", pid)
		return nil
	case <-time.After(s.stopTimeout):
		s.logf("engine did not exit in %s, force-killing (pid %d)", s.stopTimeout, pid)
		process.KillProcessGroup(pid)
		<-done
		return nil
	}
}
