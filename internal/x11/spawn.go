package x11

import (
	"os/exec"
	"syscall"
)

// Spawn implements wm.DisplayBackend's `spawn` command: fork-and-exec argv
// detached from the window manager's process group (via Setsid), the
// dwm-family convention for launching a client that must survive the WM
// being killed or restarted.
func (c *Connection) Spawn(argv []string) {
	if len(argv) == 0 {
		return
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	_ = cmd.Start()
}
