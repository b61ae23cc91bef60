// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/ameledin/go-note-vault/internal/logger"
	"github.com/ameledin/go-note-vault/internal/service"
	"github.com/ameledin/go-note-vault/internal/store"
	"github.com/ameledin/go-note-vault/models"
)

type App struct {
	services *service.Services
	logger   *logger.Logger
	out      io.Writer
}

func NewApp(services *service.Services, logger *logger.Logger, out io.Writer) *App {
	return &App{services: services, logger: logger, out: out}
}

// Run executes a single subcommand. args is os.Args[1:] after flag parsing.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return nil
	}

	cmd, rest := args[0], args[1:]

	switch cmd {
	case "list":
		return a.list(ctx, rest)
	case "show":
		return a.show(ctx, rest)
	case "create":
		return a.create(ctx, rest)
	case "delete":
		return a.delete(ctx, rest)
	case "encrypt":
		return a.encrypt(ctx, rest)
	case "decrypt":
		return a.decrypt(ctx, rest)
	case "unlock":
		return a.unlock(ctx, rest)
	case "delete-encrypted":
		return a.deleteEncrypted(ctx, rest)
	case "genpass":
		return a.genpass(rest)
	case "assess":
		return a.assess(rest)
	case "grammar":
		return a.grammar(ctx, rest)
	case "summarize":
		return a.summarize(ctx, rest)
	case "suggest-tags":
		return a.suggestTags(ctx, rest)
	case "translate":
		return a.translate(ctx, rest)
	default:
		a.printUsage()
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

func (a *App) printUsage() {
	fmt.Fprintln(a.out, `Usage: notevault <command> [arguments]

Notes:
  list [category] [tag]                list notes, optionally filtered
  show <id>                           print a note
  create <title> <content> [category] create a plain note
  delete <id>                         delete a plain note

Encryption:
  encrypt <id> <password>             encrypt a note
  decrypt <id> <password>             print decrypted fields (stays encrypted)
  unlock <id> <password>              permanently decrypt a note
  delete-encrypted <id> <password>    delete an encrypted note

Passwords:
  genpass [length]                    generate a password (copied to clipboard)
  assess <password>                   score a password

AI (plain notes only):
  grammar <id>                        check grammar
  summarize <id>                      summarize the note
  suggest-tags <id>                   suggest tags
  translate <id> <language>           translate the note`)
}

func (a *App) list(ctx context.Context, args []string) error {
	var filter store.NoteFilter
	if len(args) > 0 {
		filter.Category = args[0]
	}
	if len(args) > 1 {
		filter.Tag = args[1]
	}

	notes, err := a.services.NoteService.ListNotes(ctx, filter)
	if err != nil {
		return err
	}

	if len(notes) == 0 {
		fmt.Fprintln(a.out, "no notes found")
		return nil
	}
	for _, n := range notes {
		fmt.Fprintf(a.out, "%s\t%s\n", n.ID, n.Title)
	}
	return nil
}

func (a *App) show(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: show <id>")
	}

	note, err := a.services.NoteService.GetNote(ctx, args[0])
	if err != nil {
		return err
	}

	a.printNote(note)
	return nil
}

func (a *App) create(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: create <title> <content> [category]")
	}

	note := models.Note{Title: args[0], Content: args[1]}
	if len(args) > 2 {
		note.Category = args[2]
	}

	created, err := a.services.NoteService.CreateNote(ctx, note)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "created note %s\n", created.ID)
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: delete <id>")
	}

	if err := a.services.NoteService.DeleteNote(ctx, args[0]); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "deleted")
	return nil
}

func (a *App) encrypt(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: encrypt <id> <password>")
	}

	note, err := a.services.NoteService.EncryptNote(ctx, args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "encrypted note %s\n", note.ID)
	return nil
}

func (a *App) decrypt(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: decrypt <id> <password>")
	}

	note, err := a.services.NoteService.DecryptNote(ctx, args[0], args[1])
	if err != nil {
		return err
	}

	a.printNote(note)
	return nil
}

func (a *App) unlock(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: unlock <id> <password>")
	}

	note, err := a.services.NoteService.SwitchToDecrypted(ctx, args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "note %s is now stored decrypted\n", note.ID)
	return nil
}

func (a *App) deleteEncrypted(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: delete-encrypted <id> <password>")
	}

	if err := a.services.NoteService.DeleteEncrypted(ctx, args[0], args[1]); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "deleted")
	return nil
}

func (a *App) genpass(args []string) error {
	length := 0
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid length %q: %w", args[0], err)
		}
		length = parsed
	}

	password, err := a.services.NoteService.GeneratePassword(length)
	if err != nil {
		return err
	}

	assessment := a.services.NoteService.AssessPassword(password)
	fmt.Fprintf(a.out, "%s\n(strength %d/6)\n", password, assessment.Score)

	if err = clipboard.WriteAll(password); err != nil {
		a.logger.Warn().Err(err).Msg("clipboard unavailable, password printed only")
		return nil
	}
	fmt.Fprintln(a.out, "copied to clipboard")
	return nil
}

func (a *App) assess(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: assess <password>")
	}

	assessment := a.services.NoteService.AssessPassword(args[0])
	fmt.Fprintf(a.out, "strength %d/6\n", assessment.Score)
	for _, hint := range assessment.Feedback {
		fmt.Fprintf(a.out, "  - %s\n", hint)
	}
	return nil
}

func (a *App) grammar(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: grammar <id>")
	}

	issues, err := a.services.AIService.CheckGrammar(ctx, args[0])
	if err != nil {
		return err
	}

	if len(issues) == 0 {
		fmt.Fprintln(a.out, "no issues found")
		return nil
	}
	for _, issue := range issues {
		fmt.Fprintf(a.out, "at %d: %s", issue.Offset, issue.Message)
		if issue.Suggestion != "" {
			fmt.Fprintf(a.out, " (suggestion: %s)", issue.Suggestion)
		}
		fmt.Fprintln(a.out)
	}
	return nil
}

func (a *App) summarize(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: summarize <id>")
	}

	insight, err := a.services.AIService.Summarize(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, insight.Summary)
	for _, point := range insight.KeyPoints {
		fmt.Fprintf(a.out, "  - %s\n", point)
	}
	return nil
}

func (a *App) suggestTags(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: suggest-tags <id>")
	}

	tags, err := a.services.AIService.SuggestTags(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, strings.Join(tags, ", "))
	return nil
}

func (a *App) translate(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: translate <id> <language>")
	}

	translation, err := a.services.AIService.Translate(ctx, args[0], args[1])
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, translation.Text)
	return nil
}

func (a *App) printNote(note models.Note) {
	fmt.Fprintf(a.out, "ID:       %s\n", note.ID)
	fmt.Fprintf(a.out, "Title:    %s\n", note.Title)
	if note.Category != "" {
		fmt.Fprintf(a.out, "Category: %s\n", note.Category)
	}
	if len(note.Tags) > 0 {
		fmt.Fprintf(a.out, "Tags:     %s\n", strings.Join(note.Tags, ", "))
	}
	if note.IsEncrypted {
		fmt.Fprintln(a.out, "Status:   encrypted")
	}
	fmt.Fprintf(a.out, "\n%s\n", note.Content)
}
