package game

import (
	"context"
	"errors"

	"github.com/osse101/MuForge_Go/internal/domain"
	"github.com/osse101/MuForge_Go/internal/economy"
	"github.com/osse101/MuForge_Go/internal/event"
	"github.com/osse101/MuForge_Go/internal/logger"
)

// CommandOutput is what an interpreter reports for one command
type CommandOutput struct {
	OK      bool
	Message string
}

// CommandInterpreter executes free-form commands against a live session.
// It runs under the session lock and may mutate sess.
type CommandInterpreter interface {
	Execute(ctx context.Context, sess *domain.Session, command string, args []string) (CommandOutput, error)
}

// CommandResult is the normalised reply to any command. Error repeats the
// message when the command failed and is null otherwise.
type CommandResult struct {
	OK      bool           `json:"ok"`
	Message string         `json:"msg"`
	Error   *string        `json:"error"`
	Player  *domain.Player `json:"player"`
}

type unavailableInterpreter struct{}

func (unavailableInterpreter) Execute(context.Context, *domain.Session, string, []string) (CommandOutput, error) {
	return CommandOutput{}, domain.ErrCommandUnavailable
}

// ExecuteCommand runs deposit_scrap itself and hands every other command to
// the configured interpreter. Command failures are reported in the result;
// only an unknown session is returned as an error.
func (s *service) ExecuteCommand(ctx context.Context, sessionID, command string, args []string) (*CommandResult, error) {
	ctx = logger.WithSessionID(ctx, sessionID)
	log := logger.FromContext(ctx)
	log.Info(LogMsgActionCalled, "action", ActionCommand, "command", command)

	var (
		out       CommandOutput
		player    *domain.Player
		deposited *economy.DepositResult
	)
	err := s.store.Update(ctx, sessionID, func(sess *domain.Session) error {
		if command == CommandDepositScrap {
			out, deposited = s.depositCommand(ctx, sess, args)
		} else {
			var execErr error
			out, execErr = s.interpreter.Execute(ctx, sess, command, args)
			if execErr != nil {
				out = CommandOutput{OK: false, Message: commandErrorMessage(execErr)}
			}
		}
		player = sess.Player.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if deposited != nil {
		s.publish(ctx, event.ScrapDeposited, sessionID, deposited.ScrapType, deposited.CreditsGained, economy.SourceDeposit)
	}
	if !out.OK {
		log.Debug(LogMsgCommandFailed, "command", command, "msg", out.Message)
	}
	return normaliseCommand(out, player), nil
}

func (s *service) depositCommand(ctx context.Context, sess *domain.Session, args []string) (CommandOutput, *economy.DepositResult) {
	if len(args) == 0 {
		return CommandOutput{OK: false, Message: MsgInvalidScrapType}, nil
	}
	res, err := s.economy.Deposit(ctx, sess.Player, args[0])
	if err != nil {
		return CommandOutput{OK: false, Message: MsgInvalidScrapType}, nil
	}
	return CommandOutput{OK: true, Message: res.Message}, res
}

func commandErrorMessage(err error) string {
	if errors.Is(err, domain.ErrCommandUnavailable) {
		return MsgCommandUnavailable
	}
	return err.Error()
}

func normaliseCommand(out CommandOutput, player *domain.Player) *CommandResult {
	result := &CommandResult{
		OK:      out.OK,
		Message: out.Message,
		Player:  player,
	}
	if !out.OK {
		msg := out.Message
		result.Error = &msg
	}
	return result
}
