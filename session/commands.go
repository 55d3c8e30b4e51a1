package session

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/outofforest/circledrawer"
)

var (
	// ErrUnknownCommand is returned when script line does not start with known command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrInvalidArguments is returned when command arguments can't be parsed.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrUnknownList is returned when command refers to the list which does not exist.
	ErrUnknownList = errors.New("unknown list")
)

// Parse converts script line into handler.
// Nil handler is returned for empty lines and comments.
func Parse(line string) (HandlerFunc, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}

	fields := strings.Fields(line)
	command, args := fields[0], fields[1:]
	switch command {
	case "set":
		if len(args) < 1 || len(args) > 2 {
			return nil, errors.Wrap(ErrInvalidArguments, "usage: set <name> [v1,v2,...]")
		}
		var values string
		if len(args) == 2 {
			values = args[1]
		}
		items, err := parseValues(values)
		if err != nil {
			return nil, err
		}
		return setHandler(args[0], items), nil
	case "transfer":
		if len(args) != 2 {
			return nil, errors.Wrap(ErrInvalidArguments, "usage: transfer <source> <destination>")
		}
		return transferHandler(args[0], args[1]), nil
	case "print":
		if len(args) != 1 {
			return nil, errors.Wrap(ErrInvalidArguments, "usage: print <name>")
		}
		return printHandler(args[0]), nil
	case "delete":
		if len(args) != 1 {
			return nil, errors.Wrap(ErrInvalidArguments, "usage: delete <name>")
		}
		return deleteHandler(args[0]), nil
	default:
		return nil, errors.Wrapf(ErrUnknownCommand, "command %q", command)
	}
}

func parseValues(values string) ([]int, error) {
	items := []int{}
	if values == "" {
		return items, nil
	}
	for _, v := range strings.Split(values, ",") {
		item, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidArguments, "value %q is not an integer", v)
		}
		items = append(items, item)
	}
	return items, nil
}

func setHandler(name string, items []int) HandlerFunc {
	return func(ctx context.Context, store Store) (string, error) {
		list := circledrawer.ArrayToList(items)
		store.Set(name, list)
		return format(name, list), nil
	}
}

func transferHandler(sourceName, destinationName string) HandlerFunc {
	return func(ctx context.Context, store Store) (string, error) {
		source, exists := store.Get(sourceName)
		if !exists {
			return "", errors.Wrapf(ErrUnknownList, "list %q", sourceName)
		}
		// missing destination is the empty list
		destination, _ := store.Get(destinationName)

		newSource, newDestination, err := circledrawer.TransferHead(source, destination)
		if err != nil {
			return "", errors.WithMessagef(err, "transferring head from %q to %q", sourceName, destinationName)
		}
		store.Set(sourceName, newSource)
		store.Set(destinationName, newDestination)

		return format(sourceName, newSource) + "\n" + format(destinationName, newDestination), nil
	}
}

func printHandler(name string) HandlerFunc {
	return func(ctx context.Context, store Store) (string, error) {
		list, exists := store.Get(name)
		if !exists {
			return "", errors.Wrapf(ErrUnknownList, "list %q", name)
		}
		values, err := circledrawer.ListToArray(list)
		if err != nil {
			return "", errors.WithMessagef(err, "reading list %q", name)
		}
		return fmt.Sprintf("%s = %v", name, values), nil
	}
}

func deleteHandler(name string) HandlerFunc {
	return func(ctx context.Context, store Store) (string, error) {
		if _, exists := store.Get(name); !exists {
			return "", errors.Wrapf(ErrUnknownList, "list %q", name)
		}
		store.Delete(name)
		return fmt.Sprintf("%s deleted", name), nil
	}
}

func format(name string, list *List) string {
	return fmt.Sprintf("%s = %s", name, list)
}
