package domain

import (
	"errors"
	"fmt"
)

// Stages reported by GeneratorError.
const (
	StageConfig   = "config"
	StageLoad     = "load"
	StageSchema   = "schema"
	StageCommand  = "command"
	StageGenerate = "generate"
	StageWrite    = "write"
)

// GeneratorError is the single error type surfaced by suitegen. Command-level
// failures carry enough context to highlight the authored command again.
type GeneratorError struct {
	Stage     string
	File      string
	Target    string
	Method    string
	GroupID   string
	TestID    string
	CommandID string
	Message   string
	Cause     error
}

func (e *GeneratorError) Error() string {
	s := fmt.Sprintf("[%s]", e.Stage)
	if e.File != "" {
		s += fmt.Sprintf(" %s", e.File)
	}
	msg := e.Message
	if e.Cause != nil {
		if msg == "" {
			msg = e.Cause.Error()
		} else {
			msg = fmt.Sprintf("%s: %v", msg, e.Cause)
		}
	}
	s += ": " + msg
	if e.Target != "" || e.Method != "" {
		s += fmt.Sprintf(" in %s.%s", e.Target, e.Method)
	}
	return s
}

func (e *GeneratorError) Unwrap() error {
	return e.Cause
}

// NewError creates a GeneratorError without command context.
func NewError(stage, file, message string, cause error) *GeneratorError {
	return &GeneratorError{
		Stage:   stage,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// NewCommandError wraps a failure to render cmd.
func NewCommandError(cmd Command, cause error) *GeneratorError {
	return &GeneratorError{
		Stage:     StageCommand,
		Target:    cmd.Target,
		Method:    cmd.Method,
		GroupID:   cmd.GroupID,
		TestID:    cmd.TestID,
		CommandID: cmd.ID,
		Cause:     cause,
	}
}

// AsGeneratorError reports whether err is, or wraps, a GeneratorError.
func AsGeneratorError(err error) (*GeneratorError, bool) {
	var ge *GeneratorError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}
