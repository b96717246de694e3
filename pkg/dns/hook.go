package dns

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"text/template"

	"github.com/google/shlex"
	log "github.com/sirupsen/logrus"
)

// CommandHook runs a configured shell command after a record has been
// deleted, e.g. to notify a chat channel or update an inventory.
type CommandHook struct {
	command *template.Template
}

func (c *CommandHook) Run(name, target string) error {
	if c == nil {
		return nil
	}

	var buf bytes.Buffer
	if err := c.command.Execute(&buf, map[string]string{"name": name, "target": target}); err != nil {
		return fmt.Errorf("unable to render delete-hook command: %s", err.Error())
	}

	return run(buf.String())
}

func run(command string) error {
	log.Debugf("executing: %s", command)

	parts, err := shlex.Split(command)
	if err != nil {
		return err
	}

	proc := exec.Command(parts[0], parts[1:]...)
	proc.Env = os.Environ()
	out, err := proc.CombinedOutput()
	log.Debugln(string(out))

	return err
}

// NewCommandHook returns nil when no command is configured; a nil hook
// is safe to invoke.
func NewCommandHook(command string) (*CommandHook, error) {
	if command == "" {
		return nil, nil
	}

	t, err := template.New("deleteHook").Parse(command)
	if err != nil {
		return nil, fmt.Errorf("unable to parse dns.delete-hook: %s", err.Error())
	}

	return &CommandHook{command: t}, nil
}
