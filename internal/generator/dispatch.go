package generator

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/fjglira/suitegen/internal/domain"
	"github.com/fjglira/suitegen/internal/schema"
)

// command renders a single command. nested is true while expanding a
// snippet; references found there are not followed.
func (r *run) command(cmd domain.Command, nested bool) (out fragment, err error) {
	if cmd.Disabled {
		return fragment{}, nil
	}
	if cmd.IsRef {
		if nested {
			r.commandLog(cmd).Debug("nested snippet reference not expanded")
			return fragment{}, nil
		}
		return r.reference(cmd.Ref, cmd.Variables)
	}

	defer func() {
		if p := recover(); p != nil {
			out = fragment{}
			err = r.commandError(cmd, fmt.Errorf("renderer panicked: %v", p))
		}
	}()

	kind := schema.KindOf(cmd.Target)
	renderer, ok := r.schema.Methods.Lookup(kind, cmd.Method)
	if !ok {
		r.commandLog(cmd).Debugf("no %s renderer for method %q, skipping", kind, cmd.Method)
		return fragment{}, nil
	}

	chunk, err := renderer.Render(schema.MethodParams{
		Target:   cmd.Target,
		Assert:   cmd.Assert,
		Params:   cmd.Params,
		Selector: r.table.Selector(cmd.Target),
		Method:   cmd.Method,
		ID:       cmd.ID,
		TestID:   cmd.TestID,
	})
	if err != nil {
		return fragment{}, r.commandError(cmd, err)
	}

	if r.in.Options.Trace {
		chunk += traceFragment(kind, cmd)
	}
	if r.in.Options.InteractiveMode && !r.denylist[cmd.Method] {
		chunk += interactiveFragment(cmd.ID)
		out.interactive = []string{cmd.ID}
	}
	if r.in.Runner == domain.RunnerEmbedded {
		chunk = commandMarker(cmd) + "\n" + chunk
	}
	out.source = chunk
	return out, nil
}

func (r *run) commandLog(cmd domain.Command) *logrus.Entry {
	return r.log.WithFields(logrus.Fields{
		"group":   cmd.GroupID,
		"test":    cmd.TestID,
		"command": cmd.ID,
		"target":  cmd.Target,
		"method":  cmd.Method,
	})
}

func (r *run) commandError(cmd domain.Command, cause error) error {
	r.commandLog(cmd).WithError(cause).Warn("TestGenerator.parseCommand failed")
	return domain.NewCommandError(cmd, cause)
}

// commandMarker encodes the command position as groupId:testId:commandId.
func commandMarker(cmd domain.Command) string {
	return fmt.Sprintf("      %s%s:%s:%s", domain.CommandMarker, cmd.GroupID, cmd.TestID, cmd.ID)
}
