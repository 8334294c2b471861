package bot

import (
	"errors"
	"fmt"
	"strings"

	"pairbot/internal/domain"
	"pairbot/internal/service"

	"go.uber.org/zap"
)

// Fixed reply texts.
const (
	replyCreated       = "Created"
	replyExist         = "Exist"
	replyUpdated       = "Updated"
	replyNotUpdated    = "Not updated"
	replyDeleted       = "Deleted"
	replyNotDeleted    = "Not deleted"
	replyPairNotFound  = "Pair not found"
	replyAmbiguous     = "Can not tell which word is russian and which is english. Send one russian and one english word."
	replyNoDictionary  = "You have no dictionary yet. Add a pair with /create_pair first."
	replyNotRecognized = "Command not recognized. Send /help for the list of commands."
	replyInternal      = "Something went wrong. Try again later."

	replyHelp = `I keep your personal russian-english dictionary.

/create_pair <w1> <w2> - add a pair to your dictionary
/update_pair <w1> <w2> - fix a stored pair
/delete_pair <w1> <w2> - remove a pair
/show_dict - list your dictionary
/answer <w1> <w2> - check your translation
/help - this message

Word order doesn't matter, I sort out which word is which.`
)

func usage(name string) string {
	return fmt.Sprintf("Usage: %s <word> <word>", name)
}

// Handler turns one incoming message into reply text. Every failure path
// produces a user-facing string; no error escapes past it.
type Handler struct {
	dict   *service.DictionaryService
	logger *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(dict *service.DictionaryService, logger *zap.Logger) *Handler {
	return &Handler{
		dict:   dict,
		logger: logger,
	}
}

// Handle routes raw message text to the matching command handler and
// returns the reply. Unroutable text gets the fixed fallback reply.
func (h *Handler) Handle(chatID int64, name, text string) string {
	cmd, args, err := ParseCommand(text)
	if err != nil {
		return replyNotRecognized
	}

	for i, arg := range args {
		args[i] = domain.NormalizeWord(arg)
	}

	switch cmd {
	case CmdCreatePair:
		return h.createPair(chatID, name, args)
	case CmdUpdatePair:
		return h.updatePair(chatID, args)
	case CmdDeletePair:
		return h.deletePair(chatID, args)
	case CmdShowDict:
		return h.showDict(chatID)
	case CmdAnswer:
		return h.answer(chatID, args)
	case CmdHelp:
		return replyHelp
	default:
		return replyNotRecognized
	}
}

func (h *Handler) createPair(chatID int64, name string, args []string) string {
	if len(args) != 2 {
		return usage("/create_pair")
	}

	created, err := h.dict.AddPair(chatID, name, args[0], args[1])
	if err != nil {
		return h.errorReply(err, "create pair", chatID, replyInternal)
	}

	if !created {
		return replyExist
	}
	return replyCreated
}

func (h *Handler) updatePair(chatID int64, args []string) string {
	if len(args) != 2 {
		return usage("/update_pair")
	}

	if err := h.dict.UpdatePair(chatID, args[0], args[1]); err != nil {
		return h.errorReply(err, "update pair", chatID, replyNotUpdated)
	}

	return replyUpdated
}

func (h *Handler) deletePair(chatID int64, args []string) string {
	if len(args) != 2 {
		return usage("/delete_pair")
	}

	if err := h.dict.DeletePair(chatID, args[0], args[1]); err != nil {
		return h.errorReply(err, "delete pair", chatID, replyNotDeleted)
	}

	return replyDeleted
}

func (h *Handler) showDict(chatID int64) string {
	pairs, err := h.dict.ListPairs(chatID)
	if err != nil {
		return h.errorReply(err, "show dict", chatID, replyInternal)
	}

	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		lines = append(lines, fmt.Sprintf("%s: %s", p.RussianWord, p.EnglishWord))
	}

	return strings.Join(lines, "\n")
}

func (h *Handler) answer(chatID int64, args []string) string {
	if len(args) != 2 {
		return usage("/answer")
	}

	verdict, err := h.dict.CheckAnswer(chatID, args[0], args[1])
	if err != nil {
		return h.errorReply(err, "check answer", chatID, replyInternal)
	}

	expected := fmt.Sprintf("%s: %s", verdict.Expected.RussianWord, verdict.Expected.EnglishWord)
	if verdict.Correct {
		return fmt.Sprintf("Correct! %s", expected)
	}
	return fmt.Sprintf("Wrong. The right answer is %s", expected)
}

// errorReply maps service errors to reply text. storeFailure is the
// command-specific reply for a store operation that did not take effect.
func (h *Handler) errorReply(err error, op string, chatID int64, storeFailure string) string {
	switch {
	case errors.Is(err, domain.ErrAmbiguousPair):
		return replyAmbiguous
	case errors.Is(err, domain.ErrNoDictionary):
		return replyNoDictionary
	case errors.Is(err, domain.ErrPairNotFound):
		return replyPairNotFound
	case errors.Is(err, domain.ErrNotPersisted):
		return storeFailure
	default:
		h.logger.Error("Handler failed",
			zap.String("op", op),
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return storeFailure
	}
}
