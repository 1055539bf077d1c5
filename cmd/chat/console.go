package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"adaptive-response-engine/internal/model"
	"adaptive-response-engine/internal/session"
	"adaptive-response-engine/pkg/speech"
)

type consoleOptions struct {
	Language string
	SpeakDir string
}

// console drives one session from a line-oriented reader.
type console struct {
	uc   session.UseCase
	out  io.Writer
	opts consoleOptions
}

func newConsole(uc session.UseCase, out io.Writer, opts consoleOptions) *console {
	return &console{uc: uc, out: out, opts: opts}
}

// Run processes lines until EOF or ctx is cancelled. Trivial lines are skipped silently.
func (c *console) Run(ctx context.Context, in io.Reader) error {
	created, err := c.uc.Create(ctx)
	if err != nil {
		return err
	}
	defer c.uc.Close(context.Background(), created.SessionID)

	names := make([]string, len(created.Agents))
	for i, a := range created.Agents {
		names[i] = a.Name
	}
	fmt.Fprintf(c.out, "Session %s ready with %s. Type and press Enter; Ctrl+D to quit.\n", created.SessionID, strings.Join(names, ", "))

	scanner := bufio.NewScanner(in)
	turn := 0
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}

		text := strings.TrimSpace(scanner.Text())
		out, err := c.uc.ProcessTurn(ctx, session.ProcessTurnInput{
			SessionID: created.SessionID,
			Text:      text,
			Language:  c.opts.Language,
			Speak:     c.opts.SpeakDir != "",
		})
		switch {
		case errors.Is(err, session.ErrEmptyText), errors.Is(err, session.ErrTrivialUtterance):
			continue
		case err != nil:
			return err
		}

		turn++
		fmt.Fprintf(c.out, "[%s]: %s\n", model.PrimarySpeaker, text)
		fmt.Fprintf(c.out, "[%s]: %s\n", out.Speaker, out.Text)

		if len(out.Audio) > 0 {
			path := filepath.Join(c.opts.SpeakDir, fmt.Sprintf("turn-%03d-%s%s", turn, out.Speaker, speech.FileExtension(out.AudioMIMEType)))
			if err := os.WriteFile(path, out.Audio, 0o644); err != nil {
				fmt.Fprintf(c.out, "could not save audio: %v\n", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	fmt.Fprintln(c.out, "Goodbye.")
	return nil
}
