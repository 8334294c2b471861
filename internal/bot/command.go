package bot

import (
	"errors"
	"strings"
)

// Command identifies a supported bot command. Dispatch is an exhaustive
// switch over this type, so an unhandled command is a compile-time smell
// rather than a silently missing map entry.
type Command int

const (
	cmdInvalid Command = iota
	CmdCreatePair
	CmdUpdatePair
	CmdDeletePair
	CmdShowDict
	CmdAnswer
	CmdHelp
)

var (
	// ErrNotACommand means the message doesn't start with a slash.
	ErrNotACommand = errors.New("not a command")

	// ErrUnknownCommand means the command name is not recognized.
	ErrUnknownCommand = errors.New("unknown command")
)

// ParseCommand splits raw message text into a command and its argument
// tokens. The first whitespace-delimited token is the command name,
// matched case-sensitively including the slash.
func ParseCommand(text string) (Command, []string, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return cmdInvalid, nil, ErrNotACommand
	}

	args := fields[1:]

	switch fields[0] {
	case "/create_pair":
		return CmdCreatePair, args, nil
	case "/update_pair":
		return CmdUpdatePair, args, nil
	case "/delete_pair":
		return CmdDeletePair, args, nil
	case "/show_dict":
		return CmdShowDict, args, nil
	case "/answer":
		return CmdAnswer, args, nil
	case "/help":
		return CmdHelp, args, nil
	default:
		return cmdInvalid, nil, ErrUnknownCommand
	}
}
