/*
File    : sugar/builtins/exec.go
Package : builtins

Call executes one built-in against already-evaluated argument Values,
writing/reading through the interpreter's configured streams. Grounded
on the teacher's eval/evaluator.go InvokeBuiltin dispatch, adapted from
go-mix's variadic-object builtin table to Sugar's fixed per-built-in
arg lists.
*/
package builtins

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sugarlang/sugar/objects"
)

// Call dispatches tag. Returns an error only for panic (the caller
// turns it into an aborting runtime error) or a malformed tag.
func Call(tag Tag, w io.Writer, r *bufio.Reader, args []objects.Value) (objects.Value, error) {
	switch tag {
	case PrintString:
		fmt.Fprint(w, args[0].Str)
		return objects.NewVoid(), nil

	case PrintI32:
		fmt.Fprintf(w, "%d", args[0].Int)
		return objects.NewVoid(), nil

	case ReadChar:
		line, err := readLine(r)
		runes := []rune(line)
		if err != nil && line == "" {
			return readCharFailure(), nil
		}
		if len(runes) == 0 {
			return readCharFailure(), nil
		}
		return objects.NewStruct([]string{"value", "success"},
			[]objects.Value{objects.NewChar(runes[0]), objects.NewBool(true)}), nil

	case ReadI32:
		line, err := readLine(r)
		if err != nil && line == "" {
			return readI32Failure(), nil
		}
		n, scanErr := strconv.ParseInt(strings.TrimSpace(line), 10, 32)
		if scanErr != nil {
			return readI32Failure(), nil
		}
		return objects.NewStruct([]string{"value", "success"},
			[]objects.Value{objects.NewInt(n), objects.NewBool(true)}), nil

	case Panic:
		return objects.Value{}, fmt.Errorf("%s", args[0].Str)
	}
	return objects.Value{}, fmt.Errorf("builtins: unknown built-in %q", tag)
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	return strings.TrimRight(line, "\r\n"), err
}

func readCharFailure() objects.Value {
	return objects.NewStruct([]string{"value", "success"},
		[]objects.Value{objects.NewChar(0), objects.NewBool(false)})
}

func readI32Failure() objects.Value {
	return objects.NewStruct([]string{"value", "success"},
		[]objects.Value{objects.NewInt(0), objects.NewBool(false)})
}
