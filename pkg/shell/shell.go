// Package shell implements the interactive query menu.
//
// The shell is a finite-state dispatcher over an operator terminal: the
// state is the current menu context, a transition is a validated operator
// selection, and each action calls one store lookup and renders the result.
// Malformed input is reported and re-prompted without corrupting any state;
// only connectivity failures abort the session.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"registrar-hq/registrar/pkg/cli"
	"registrar-hq/registrar/pkg/store"
)

// Menu options, in the order they are presented.
const (
	optionAllStudents = iota + 1
	optionSubjectsByStudent
	optionAddressLookup
	optionReviewsByStudent
	optionCoursesByTeacher
	optionIncomplete
	optionLowMarks
	optionExit
)

const menuText = `
What would you like to do?

    1 - View all students
    2 - View subjects taken by a student
    3 - Lookup address for a student
    4 - List reviews for a student
    5 - List all courses given by a teacher
    6 - List all students who have not completed their course
    7 - List all students who have completed their course and achieved 30 or below
    8 - Exit this program

Type your option here: `

// Config contains configuration for a Shell.
type Config struct {
	// Store is the query layer the shell dispatches to.
	Store *store.Store

	// In is the operator input stream. Defaults to os.Stdin.
	In io.Reader

	// Out is the operator output stream. Defaults to os.Stdout.
	Out io.Writer

	// ExportDir is the base directory relative export filenames are
	// resolved against. Empty means the current directory.
	ExportDir string

	// Logger receives session events. Defaults to slog.Default.
	Logger *slog.Logger
}

// Shell runs the interactive menu over one operator session.
type Shell struct {
	store     *store.Store
	in        *lineReader
	out       io.Writer
	exportDir string
	logger    *slog.Logger
	sessionID string
}

// New creates a Shell for one operator session. Each session is tagged
// with a fresh session ID for log correlation.
func New(cfg Config) *Shell {
	in := cfg.In
	if in == nil {
		in = os.Stdin
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	sessionID := uuid.NewString()

	return &Shell{
		store:     cfg.Store,
		in:        newLineReader(in),
		out:       out,
		exportDir: cfg.ExportDir,
		logger:    logger.With("component", "shell", "session_id", sessionID),
		sessionID: sessionID,
	}
}

// Run drives the menu loop until the operator exits, input ends, the
// context is canceled, or a connectivity failure occurs. Operator mistakes
// never end the session.
//
// Cancellation is observed between prompts: a read already blocked on
// stdin finishes with the next line or EOF before the loop notices the
// canceled context.
func (sh *Shell) Run(ctx context.Context) error {
	actions := map[int]func(context.Context) error{
		optionAllStudents:       sh.viewAllStudents,
		optionSubjectsByStudent: sh.viewSubjectsByStudent,
		optionAddressLookup:     sh.lookupAddressByName,
		optionReviewsByStudent:  sh.listReviewsByStudent,
		optionCoursesByTeacher:  sh.listCoursesByTeacher,
		optionIncomplete:        sh.listIncomplete,
		optionLowMarks:          sh.listLowMarks,
	}

	fmt.Fprintln(sh.out, "Welcome to the Registrar query shell!")
	sh.logger.Info("session started")

	for {
		if ctx.Err() != nil {
			sh.logger.Info("session interrupted")
			return nil
		}

		choice, err := sh.promptInt(menuText)
		if errors.Is(err, io.EOF) {
			sh.logger.Info("session ended", "reason", "input closed")
			return nil
		}
		var inputErr *cli.InputError
		if errors.As(err, &inputErr) {
			fmt.Fprintln(sh.out, "\nInvalid input. Please enter a valid number.")
			continue
		}
		if err != nil {
			return err
		}

		if choice == optionExit {
			fmt.Fprintln(sh.out, "\nProgram exited successfully!")
			sh.logger.Info("session ended", "reason", "operator exit")
			return nil
		}

		action, ok := actions[choice]
		if !ok {
			fmt.Fprintln(sh.out, "\nInvalid option. Please select a number between 1 and 8.")
			continue
		}

		sh.logger.Debug("dispatching menu option", "option", choice)
		if err := action(ctx); err != nil {
			if errors.Is(err, io.EOF) {
				sh.logger.Info("session ended", "reason", "input closed")
				return nil
			}
			return err
		}
	}
}
