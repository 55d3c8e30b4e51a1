package session

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// MaxLineSize is the longest script line Feed accepts.
const MaxLineSize = 1024 * 1024

// Run executes commands one by one in the order they are received.
// Lists in the store are touched by this goroutine only.
func Run(
	ctx context.Context,
	store Store,
	commandCh <-chan Command,
	resultCh chan<- Result,
) error {
	defer close(resultCh)

	// 1 is here so index matches the ordinal number of the command
	for index := uint64(1); ; index++ {
		var command Command
		var ok bool

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case command, ok = <-commandCh:
			if !ok {
				return nil
			}
		}

		output, errHandler := execute(ctx, store, command.HandlerFunc)
		result := Result{
			Index:  index,
			LineNo: command.LineNo,
			Line:   command.Line,
			Output: output,
			Err:    errHandler,
		}

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case resultCh <- result:
		}
	}
}

func execute(ctx context.Context, store Store, handlerFunc HandlerFunc) (output string, errHandler error) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				errHandler = err
			} else {
				errHandler = errors.Errorf("panic: %s", r)
			}
		}
	}()
	return handlerFunc(ctx, store)
}

// Feed parses script read from r and sends commands to commandCh.
func Feed(ctx context.Context, r io.Reader, commandCh chan<- Command) error {
	defer close(commandCh)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		handlerFunc, err := Parse(line)
		if err != nil {
			return errors.WithMessagef(err, "line %d", lineNo)
		}
		if handlerFunc == nil {
			continue
		}

		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case commandCh <- Command{LineNo: lineNo, Line: strings.TrimSpace(line), HandlerFunc: handlerFunc}:
		}
	}
	return errors.WithStack(scanner.Err())
}
