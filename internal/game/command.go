package game

import "context"

// Command is one player input consumed per tick.
type Command uint8

const (
	// CommandNone is ignored by the session.
	CommandNone Command = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	Action
	CommandQuit
)

// String returns the name of the command.
func (c Command) String() string {
	switch c {
	case MoveUp:
		return "MoveUp"
	case MoveDown:
		return "MoveDown"
	case MoveLeft:
		return "MoveLeft"
	case MoveRight:
		return "MoveRight"
	case Action:
		return "Action"
	case CommandQuit:
		return "Quit"
	default:
		return "None"
	}
}

// Direction returns the movement direction of a move command.
func (c Command) Direction() (Direction, bool) {
	switch c {
	case MoveUp:
		return Up, true
	case MoveDown:
		return Down, true
	case MoveLeft:
		return Left, true
	case MoveRight:
		return Right, true
	default:
		return Direction{}, false
	}
}

// CommandSource supplies commands to Session.Run. NextCommand blocks until a
// command is available or ctx is done.
type CommandSource interface {
	NextCommand(ctx context.Context) (Command, error)
}

// CommandFunc adapts a function to CommandSource.
type CommandFunc func(ctx context.Context) (Command, error)

// NextCommand calls f.
func (f CommandFunc) NextCommand(ctx context.Context) (Command, error) {
	return f(ctx)
}
